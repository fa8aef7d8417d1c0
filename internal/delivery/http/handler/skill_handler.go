package handler

import (
	"skill-swap/internal/domain/profile"
	"skill-swap/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// SkillHandler serves the fixed catalog; ?q= narrows it for the suggestion
// list the way the profile form filters while typing.
type SkillHandler struct{}

func NewSkillHandler() *SkillHandler {
	return &SkillHandler{}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/skills", h.List)
}

func (h *SkillHandler) List(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, profile.SuggestSkills(c.Query("q")))
}
