package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"skill-swap/internal/domain/profile"
	"skill-swap/internal/domain/swap"
	"skill-swap/internal/repository"
)

// senderAvatarFallback keys the placeholder to the sender id so each sender
// gets a stable image.
const senderAvatarFallback = "https://i.pravatar.cc/80?u="

var (
	ErrMissingField      = errors.New("missing required field")
	ErrSelfRequest       = errors.New("cannot send a request to yourself")
	ErrRecipientNotFound = errors.New("recipient not found")
	ErrSkillNotOffered   = errors.New("skill is not in sender's offered list")
	ErrSkillNotWanted    = errors.New("skill is not in recipient's wanted list")
	ErrNotRecipient      = errors.New("only the recipient can update a request")
)

type CreateRequestInput struct {
	ToUserID     string
	OfferedSkill string
	WantedSkill  string
	Message      string
}

// SenderInfo is the joined sender snapshot an incoming request carries;
// zero-valued when the sender profile is missing.
type SenderInfo struct {
	Name       string `json:"name,omitempty"`
	ProfilePic string `json:"profilePic,omitempty"`
}

type RequestWithSender struct {
	swap.Request
	Sender SenderInfo `json:"sender"`
}

type IncomingFilter struct {
	Status string
	Search string
}

type SwapUsecase interface {
	CreateRequest(ctx context.Context, fromUserID string, in CreateRequestInput) (string, error)
	ListIncoming(ctx context.Context, userID string, filter IncomingFilter) ([]RequestWithSender, error)
	SetStatus(ctx context.Context, userID, requestID, newStatus string) (swap.Request, error)
}

type Swap struct {
	requests repository.SwapRepository
	profiles repository.ProfileRepository

	now func() int64
}

func NewSwapUsecase(requests repository.SwapRepository, profiles repository.ProfileRepository) *Swap {
	return &Swap{
		requests: requests,
		profiles: profiles,
		now:      func() int64 { return time.Now().UnixMilli() },
	}
}

// CreateRequest validates and appends a new pending request. The offered
// skill must be one the sender actually offers, and the wanted skill one the
// recipient actually wants.
func (u *Swap) CreateRequest(ctx context.Context, fromUserID string, in CreateRequestInput) (string, error) {
	offered := strings.TrimSpace(in.OfferedSkill)
	wanted := strings.TrimSpace(in.WantedSkill)
	message := strings.TrimSpace(in.Message)
	toUserID := strings.TrimSpace(in.ToUserID)

	if offered == "" || wanted == "" || message == "" || toUserID == "" {
		return "", ErrMissingField
	}
	if toUserID == fromUserID {
		return "", ErrSelfRequest
	}

	sender, err := u.profiles.Get(ctx, fromUserID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return "", ErrSkillNotOffered
		}
		return "", err
	}
	if !sender.HasOffered(offered) {
		return "", ErrSkillNotOffered
	}

	recipient, err := u.profiles.Get(ctx, toUserID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return "", ErrRecipientNotFound
		}
		return "", err
	}
	if !recipient.HasWanted(wanted) {
		return "", ErrSkillNotWanted
	}

	return u.requests.Create(ctx, swap.Request{
		FromUserID:   fromUserID,
		ToUserID:     toUserID,
		OfferedSkill: offered,
		WantedSkill:  wanted,
		Message:      message,
		Status:       swap.StatusPending,
		Timestamp:    u.now(),
	})
}

// ListIncoming scans the full request set, keeps those addressed to userID,
// joins each to its sender profile, then applies the search and status
// filters in that order.
func (u *Swap) ListIncoming(ctx context.Context, userID string, filter IncomingFilter) ([]RequestWithSender, error) {
	requests, err := u.requests.List(ctx)
	if err != nil {
		return nil, err
	}
	users, err := u.profiles.List(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]profile.Profile, len(users))
	for _, p := range users {
		byID[p.ID] = p
	}

	incoming := make([]RequestWithSender, 0)
	for _, req := range requests {
		if req.ToUserID != userID {
			continue
		}

		var sender SenderInfo
		if p, ok := byID[req.FromUserID]; ok {
			sender.Name = p.Name
			sender.ProfilePic = p.ProfilePic
		}
		if sender.ProfilePic == "" {
			sender.ProfilePic = senderAvatarFallback + req.FromUserID
		}

		incoming = append(incoming, RequestWithSender{Request: req, Sender: sender})
	}

	return FilterByStatus(FilterBySender(incoming, filter.Search), filter.Status), nil
}

// SetStatus transitions a pending request to accepted or rejected. Only the
// recipient may do this, and terminal requests stay terminal.
func (u *Swap) SetStatus(ctx context.Context, userID, requestID, newStatus string) (swap.Request, error) {
	req, err := u.requests.Get(ctx, requestID)
	if err != nil {
		return swap.Request{}, err
	}
	if req.ToUserID != userID {
		return swap.Request{}, ErrNotRecipient
	}
	if err := req.Transition(newStatus); err != nil {
		return swap.Request{}, err
	}
	if err := u.requests.SetStatus(ctx, requestID, req.Status); err != nil {
		return swap.Request{}, err
	}
	return req, nil
}

// FilterByStatus keeps requests with exactly the given status; "all" or an
// empty status is the identity filter.
func FilterByStatus(requests []RequestWithSender, status string) []RequestWithSender {
	if status == "" || status == "all" {
		return requests
	}
	out := make([]RequestWithSender, 0, len(requests))
	for _, r := range requests {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out
}

// FilterBySender keeps requests whose joined sender name contains text,
// case-insensitively.
func FilterBySender(requests []RequestWithSender, text string) []RequestWithSender {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return requests
	}
	out := make([]RequestWithSender, 0, len(requests))
	for _, r := range requests {
		if strings.Contains(strings.ToLower(r.Sender.Name), text) {
			out = append(out, r)
		}
	}
	return out
}
