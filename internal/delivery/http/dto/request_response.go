package dto

import (
	"skill-swap/internal/domain/swap"
	"skill-swap/internal/usecase"
)

type SenderResponse struct {
	Name       string `json:"name"`
	ProfilePic string `json:"profilePic"`
}

type SwapRequestResponse struct {
	ID           string          `json:"id"`
	FromUserID   string          `json:"fromUserId"`
	ToUserID     string          `json:"toUserId"`
	OfferedSkill string          `json:"offeredSkill"`
	WantedSkill  string          `json:"wantedSkill"`
	Message      string          `json:"message"`
	Status       string          `json:"status"`
	Timestamp    int64           `json:"timestamp"`
	Sender       *SenderResponse `json:"sender,omitempty"`
}

func NewSwapRequestResponse(r swap.Request) SwapRequestResponse {
	return SwapRequestResponse{
		ID:           r.ID,
		FromUserID:   r.FromUserID,
		ToUserID:     r.ToUserID,
		OfferedSkill: r.OfferedSkill,
		WantedSkill:  r.WantedSkill,
		Message:      r.Message,
		Status:       r.Status,
		Timestamp:    r.Timestamp,
	}
}

func NewIncomingRequestResponse(r usecase.RequestWithSender) SwapRequestResponse {
	resp := NewSwapRequestResponse(r.Request)
	resp.Sender = &SenderResponse{Name: r.Sender.Name, ProfilePic: r.Sender.ProfilePic}
	return resp
}
