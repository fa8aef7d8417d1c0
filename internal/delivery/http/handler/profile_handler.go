package handler

import (
	"errors"
	"strconv"

	"skill-swap/internal/delivery/http/dto"
	"skill-swap/internal/delivery/http/middleware"
	"skill-swap/internal/domain/profile"
	"skill-swap/internal/pkg/response"
	"skill-swap/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

type saveProfileRequest struct {
	Name          string           `json:"name"`
	Location      string           `json:"location"`
	About         string           `json:"about"`
	Availability  string           `json:"availability"`
	SkillsOffered []string         `json:"skillsOffered"`
	SkillsWanted  []string         `json:"skillsWanted"`
	Projects      []dto.ProjectDTO `json:"projects"`
	ProfilePic    string           `json:"profilePic"`
}

type addSkillRequest struct {
	Skill string `json:"skill"`
	List  string `json:"list"`
}

type addProjectRequest struct {
	Name string `json:"name"`
	Link string `json:"link"`
	Desc string `json:"desc"`
}

type setAvatarRequest struct {
	Image string `json:"image"`
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.Get)
	r.Put("/", h.Save)
	r.Post("/skills", h.AddSkill)
	r.Delete("/skills/:index", h.RemoveSkill)
	r.Post("/projects", h.AddProject)
	r.Delete("/projects/:index", h.RemoveProject)
	r.Put("/avatar", h.SetAvatar)
	r.Delete("/avatar", h.ClearAvatar)
}

func (h *ProfileHandler) Get(c fiber.Ctx) error {
	userID, email, ok := sessionFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	p, err := h.uc.GetProfile(c.Context(), userID, email)
	if err != nil {
		return mapProfileError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(p))
}

func (h *ProfileHandler) Save(c fiber.Ctx) error {
	userID, email, ok := sessionFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req saveProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	projects := make([]profile.Project, 0, len(req.Projects))
	for _, proj := range req.Projects {
		projects = append(projects, profile.Project{Name: proj.Name, Link: proj.Link, Desc: proj.Desc})
	}

	p, err := h.uc.SaveProfile(c.Context(), userID, email, usecase.SaveProfileInput{
		Name:          req.Name,
		Location:      req.Location,
		About:         req.About,
		Availability:  req.Availability,
		SkillsOffered: req.SkillsOffered,
		SkillsWanted:  req.SkillsWanted,
		Projects:      projects,
		ProfilePic:    req.ProfilePic,
	})
	if err != nil {
		return mapProfileError(err)
	}
	return response.Success(c, fiber.StatusOK, "Profile updated successfully", dto.NewProfileResponse(p))
}

func (h *ProfileHandler) AddSkill(c fiber.Ctx) error {
	userID, email, ok := sessionFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req addSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	p, err := h.uc.AddSkill(c.Context(), userID, email, req.Skill, profile.SkillList(req.List))
	if err != nil {
		return mapProfileError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(p))
}

func (h *ProfileHandler) RemoveSkill(c fiber.Ctx) error {
	userID, email, ok := sessionFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	p, err := h.uc.RemoveSkill(c.Context(), userID, email, index, profile.SkillList(c.Query("list")))
	if err != nil {
		return mapProfileError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(p))
}

func (h *ProfileHandler) AddProject(c fiber.Ctx) error {
	userID, email, ok := sessionFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req addProjectRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	p, err := h.uc.AddProject(c.Context(), userID, email, req.Name, req.Link, req.Desc)
	if err != nil {
		return mapProfileError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(p))
}

func (h *ProfileHandler) RemoveProject(c fiber.Ctx) error {
	userID, email, ok := sessionFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	p, err := h.uc.RemoveProject(c.Context(), userID, email, index)
	if err != nil {
		return mapProfileError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(p))
}

func (h *ProfileHandler) SetAvatar(c fiber.Ctx) error {
	userID, email, ok := sessionFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req setAvatarRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	p, err := h.uc.SetAvatar(c.Context(), userID, email, req.Image)
	if err != nil {
		return mapProfileError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(p))
}

func (h *ProfileHandler) ClearAvatar(c fiber.Ctx) error {
	userID, email, ok := sessionFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	p, err := h.uc.ClearAvatar(c.Context(), userID, email)
	if err != nil {
		return mapProfileError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(p))
}

func sessionFromCtx(c fiber.Ctx) (userID, email string, ok bool) {
	userID, uok := c.Locals(middleware.CtxUserIDKey).(string)
	if !uok || userID == "" {
		return "", "", false
	}
	email, _ = c.Locals(middleware.CtxEmailKey).(string)
	return userID, email, true
}

func mapProfileError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, profile.ErrUnknownSkill):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Skill is not in the catalog", nil, err)
	case errors.Is(err, profile.ErrDuplicateSkill):
		return middleware.NewAppError(fiber.StatusConflict, "Skill already added", nil, err)
	case errors.Is(err, profile.ErrUnknownSkillList):
		return middleware.NewAppError(fiber.StatusBadRequest, "Unknown skill list", nil, err)
	case errors.Is(err, profile.ErrIndexOutOfRange):
		return middleware.NewAppError(fiber.StatusBadRequest, "Index out of range", nil, err)
	case errors.Is(err, profile.ErrMissingProjectField):
		return middleware.NewAppError(fiber.StatusBadRequest, "Project name and link are required", nil, err)
	case errors.Is(err, profile.ErrInvalidProjectLink):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Invalid GitHub repository link", nil, err)
	case errors.Is(err, profile.ErrInvalidAvailability):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid availability", nil, err)
	case errors.Is(err, profile.ErrInvalidAvatar):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid avatar image", nil, err)
	case errors.Is(err, profile.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
