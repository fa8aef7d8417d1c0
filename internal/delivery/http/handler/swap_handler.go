package handler

import (
	"errors"

	"skill-swap/internal/delivery/http/dto"
	"skill-swap/internal/delivery/http/middleware"
	"skill-swap/internal/domain/swap"
	"skill-swap/internal/pkg/response"
	"skill-swap/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SwapHandler struct {
	uc usecase.SwapUsecase
}

type createRequestRequest struct {
	ToUserID     string `json:"toUserId"`
	OfferedSkill string `json:"offeredSkill"`
	WantedSkill  string `json:"wantedSkill"`
	Message      string `json:"message"`
}

type setStatusRequest struct {
	Status string `json:"status"`
}

func NewSwapHandler(uc usecase.SwapUsecase) *SwapHandler {
	return &SwapHandler{uc: uc}
}

func (h *SwapHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/requests", h.Create)
	r.Get("/me/requests", h.ListIncoming)
	r.Patch("/requests/:id/status", h.SetStatus)
}

func (h *SwapHandler) Create(c fiber.Ctx) error {
	userID, _, ok := sessionFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req createRequestRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	id, err := h.uc.CreateRequest(c.Context(), userID, usecase.CreateRequestInput{
		ToUserID:     req.ToUserID,
		OfferedSkill: req.OfferedSkill,
		WantedSkill:  req.WantedSkill,
		Message:      req.Message,
	})
	if err != nil {
		return mapSwapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Request sent successfully", map[string]any{"id": id})
}

func (h *SwapHandler) ListIncoming(c fiber.Ctx) error {
	userID, _, ok := sessionFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	items, err := h.uc.ListIncoming(c.Context(), userID, usecase.IncomingFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
	})
	if err != nil {
		return mapSwapUsecaseError(err)
	}

	res := make([]dto.SwapRequestResponse, 0, len(items))
	for _, it := range items {
		res = append(res, dto.NewIncomingRequestResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *SwapHandler) SetStatus(c fiber.Ctx) error {
	userID, _, ok := sessionFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req setStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.uc.SetStatus(c.Context(), userID, c.Params("id"), req.Status)
	if err != nil {
		return mapSwapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSwapRequestResponse(updated))
}

func mapSwapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrMissingField):
		return middleware.NewAppError(fiber.StatusBadRequest, "Please fill out all fields", nil, err)
	case errors.Is(err, usecase.ErrSelfRequest):
		return middleware.NewAppError(fiber.StatusBadRequest, "Cannot send a request to yourself", nil, err)
	case errors.Is(err, usecase.ErrRecipientNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Recipient not found", nil, err)
	case errors.Is(err, usecase.ErrSkillNotOffered):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Offered skill is not in your list", nil, err)
	case errors.Is(err, usecase.ErrSkillNotWanted):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Wanted skill is not in the recipient's list", nil, err)
	case errors.Is(err, usecase.ErrNotRecipient):
		return middleware.NewAppError(fiber.StatusForbidden, "Only the recipient can update a request", nil, err)
	case errors.Is(err, swap.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Request not found", nil, err)
	case errors.Is(err, swap.ErrInvalidStatus):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid status", nil, err)
	case errors.Is(err, swap.ErrInvalidTransition):
		return middleware.NewAppError(fiber.StatusConflict, "Request is no longer pending", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
