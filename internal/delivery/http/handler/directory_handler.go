package handler

import (
	"skill-swap/internal/delivery/http/dto"
	"skill-swap/internal/delivery/http/middleware"
	"skill-swap/internal/pkg/response"
	"skill-swap/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type DirectoryHandler struct {
	uc usecase.DirectoryUsecase
}

func NewDirectoryHandler(uc usecase.DirectoryUsecase) *DirectoryHandler {
	return &DirectoryHandler{uc: uc}
}

func (h *DirectoryHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/users")
	grp.Get("/", h.Browse)
	grp.Get("/:id", h.GetUser)
}

func (h *DirectoryHandler) Browse(c fiber.Ctx) error {
	profiles, err := h.uc.Browse(c.Context(), usecase.DirectoryFilter{
		Search:       c.Query("search"),
		Availability: c.Query("availability"),
	})
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	res := make([]dto.DirectoryEntryResponse, 0, len(profiles))
	for _, p := range profiles {
		res = append(res, dto.NewDirectoryEntryResponse(p))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *DirectoryHandler) GetUser(c fiber.Ctx) error {
	p, err := h.uc.GetUser(c.Context(), c.Params("id"))
	if err != nil {
		return mapProfileError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(p))
}
