package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"skill-swap/internal/domain/profile"
	"skill-swap/internal/domain/swap"
)

type fakeSwapRepo struct {
	items []swap.Request
	err   error
}

func (f *fakeSwapRepo) Create(_ context.Context, req swap.Request) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	req.ID = fmt.Sprintf("r%d", len(f.items)+1)
	f.items = append(f.items, req)
	return req.ID, nil
}

func (f *fakeSwapRepo) Get(_ context.Context, id string) (swap.Request, error) {
	if f.err != nil {
		return swap.Request{}, f.err
	}
	for _, r := range f.items {
		if r.ID == id {
			return r, nil
		}
	}
	return swap.Request{}, swap.ErrNotFound
}

func (f *fakeSwapRepo) List(context.Context) ([]swap.Request, error) {
	return f.items, f.err
}

func (f *fakeSwapRepo) SetStatus(_ context.Context, id, status string) error {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Status = status
			return nil
		}
	}
	return swap.ErrNotFound
}

func swapFixture() *stubProfileRepo {
	return &stubProfileRepo{items: []profile.Profile{
		{ID: "alice", Name: "Alice", ProfilePic: "https://example.com/alice.png",
			SkillsOffered: []string{"Python"}, SkillsWanted: []string{"Graphic Design"}},
		{ID: "bob", Name: "Bob",
			SkillsOffered: []string{"Graphic Design"}, SkillsWanted: []string{"Python"}},
	}}
}

func newTestSwap(requests *fakeSwapRepo, profiles *stubProfileRepo) *Swap {
	uc := NewSwapUsecase(requests, profiles)
	uc.now = func() int64 { return 1700000000000 }
	return uc
}

func TestCreateRequest_Success(t *testing.T) {
	repo := &fakeSwapRepo{}
	uc := newTestSwap(repo, swapFixture())

	id, err := uc.CreateRequest(context.Background(), "alice", CreateRequestInput{
		ToUserID:     "bob",
		OfferedSkill: "Python",
		WantedSkill:  "Python",
		Message:      "let's trade",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if id == "" {
		t.Fatal("expected generated id")
	}

	created := repo.items[0]
	if created.Status != swap.StatusPending {
		t.Fatalf("expected pending, got %s", created.Status)
	}
	if created.Timestamp != 1700000000000 {
		t.Fatalf("expected stamped creation time, got %d", created.Timestamp)
	}
	if created.FromUserID != "alice" || created.ToUserID != "bob" {
		t.Fatalf("unexpected endpoints: %+v", created)
	}
}

func TestCreateRequest_MissingFields(t *testing.T) {
	uc := newTestSwap(&fakeSwapRepo{}, swapFixture())

	cases := []CreateRequestInput{
		{ToUserID: "bob", OfferedSkill: "Python", WantedSkill: "Python"},
		{ToUserID: "bob", OfferedSkill: "  ", WantedSkill: "Python", Message: "hi"},
		{OfferedSkill: "Python", WantedSkill: "Python", Message: "hi"},
	}
	for i, in := range cases {
		if _, err := uc.CreateRequest(context.Background(), "alice", in); !errors.Is(err, ErrMissingField) {
			t.Fatalf("case %d: expected ErrMissingField, got %v", i, err)
		}
	}
}

func TestCreateRequest_SelfRequest(t *testing.T) {
	uc := newTestSwap(&fakeSwapRepo{}, swapFixture())

	_, err := uc.CreateRequest(context.Background(), "alice", CreateRequestInput{
		ToUserID: "alice", OfferedSkill: "Python", WantedSkill: "Python", Message: "hi",
	})
	if !errors.Is(err, ErrSelfRequest) {
		t.Fatalf("expected ErrSelfRequest, got %v", err)
	}
}

func TestCreateRequest_SkillMembership(t *testing.T) {
	uc := newTestSwap(&fakeSwapRepo{}, swapFixture())

	_, err := uc.CreateRequest(context.Background(), "alice", CreateRequestInput{
		ToUserID: "bob", OfferedSkill: "Java", WantedSkill: "Python", Message: "hi",
	})
	if !errors.Is(err, ErrSkillNotOffered) {
		t.Fatalf("expected ErrSkillNotOffered, got %v", err)
	}

	_, err = uc.CreateRequest(context.Background(), "alice", CreateRequestInput{
		ToUserID: "bob", OfferedSkill: "Python", WantedSkill: "SQL", Message: "hi",
	})
	if !errors.Is(err, ErrSkillNotWanted) {
		t.Fatalf("expected ErrSkillNotWanted, got %v", err)
	}
}

func TestCreateRequest_RecipientNotFound(t *testing.T) {
	uc := newTestSwap(&fakeSwapRepo{}, swapFixture())

	_, err := uc.CreateRequest(context.Background(), "alice", CreateRequestInput{
		ToUserID: "ghost", OfferedSkill: "Python", WantedSkill: "Python", Message: "hi",
	})
	if !errors.Is(err, ErrRecipientNotFound) {
		t.Fatalf("expected ErrRecipientNotFound, got %v", err)
	}
}

func TestListIncoming_JoinsSenderAndFallsBack(t *testing.T) {
	repo := &fakeSwapRepo{items: []swap.Request{
		{ID: "r1", FromUserID: "alice", ToUserID: "bob", Status: swap.StatusPending},
		{ID: "r2", FromUserID: "ghost", ToUserID: "bob", Status: swap.StatusPending},
		{ID: "r3", FromUserID: "bob", ToUserID: "alice", Status: swap.StatusPending},
	}}
	uc := newTestSwap(repo, swapFixture())

	got, err := uc.ListIncoming(context.Background(), "bob", IncomingFilter{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 incoming, got %d", len(got))
	}
	if got[0].Sender.Name != "Alice" || got[0].Sender.ProfilePic != "https://example.com/alice.png" {
		t.Fatalf("unexpected joined sender: %+v", got[0].Sender)
	}
	if got[1].Sender.Name != "" {
		t.Fatalf("unknown sender should have no name, got %q", got[1].Sender.Name)
	}
	if got[1].Sender.ProfilePic != senderAvatarFallback+"ghost" {
		t.Fatalf("expected fallback avatar, got %q", got[1].Sender.ProfilePic)
	}
}

func TestListIncoming_StatusReflectsAccept(t *testing.T) {
	repo := &fakeSwapRepo{items: []swap.Request{
		{ID: "r1", FromUserID: "alice", ToUserID: "bob", Status: swap.StatusPending},
	}}
	uc := newTestSwap(repo, swapFixture())

	updated, err := uc.SetStatus(context.Background(), "bob", "r1", swap.StatusAccepted)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.Status != swap.StatusAccepted {
		t.Fatalf("expected accepted, got %s", updated.Status)
	}

	pending, err := uc.ListIncoming(context.Background(), "bob", IncomingFilter{Status: swap.StatusPending})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("accepted request still listed as pending: %v", pending)
	}

	accepted, err := uc.ListIncoming(context.Background(), "bob", IncomingFilter{Status: swap.StatusAccepted})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(accepted) != 1 || accepted[0].ID != "r1" {
		t.Fatalf("expected r1 under accepted, got %v", accepted)
	}
}

func TestSetStatus_OnlyRecipient(t *testing.T) {
	repo := &fakeSwapRepo{items: []swap.Request{
		{ID: "r1", FromUserID: "alice", ToUserID: "bob", Status: swap.StatusPending},
	}}
	uc := newTestSwap(repo, swapFixture())

	if _, err := uc.SetStatus(context.Background(), "alice", "r1", swap.StatusAccepted); !errors.Is(err, ErrNotRecipient) {
		t.Fatalf("expected ErrNotRecipient, got %v", err)
	}
	if repo.items[0].Status != swap.StatusPending {
		t.Fatal("status must not change on rejected update")
	}
}

func TestSetStatus_TerminalStaysTerminal(t *testing.T) {
	repo := &fakeSwapRepo{items: []swap.Request{
		{ID: "r1", FromUserID: "alice", ToUserID: "bob", Status: swap.StatusRejected},
	}}
	uc := newTestSwap(repo, swapFixture())

	if _, err := uc.SetStatus(context.Background(), "bob", "r1", swap.StatusAccepted); !errors.Is(err, swap.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestSetStatus_NotFound(t *testing.T) {
	uc := newTestSwap(&fakeSwapRepo{}, swapFixture())
	if _, err := uc.SetStatus(context.Background(), "bob", "missing", swap.StatusAccepted); !errors.Is(err, swap.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFilterByStatus(t *testing.T) {
	requests := []RequestWithSender{
		{Request: swap.Request{ID: "r1", Status: swap.StatusPending}},
		{Request: swap.Request{ID: "r2", Status: swap.StatusAccepted}},
	}

	for _, identity := range []string{"", "all"} {
		if got := FilterByStatus(requests, identity); len(got) != 2 {
			t.Fatalf("status %q: expected identity filter, got %v", identity, got)
		}
	}

	got := FilterByStatus(requests, swap.StatusAccepted)
	if len(got) != 1 || got[0].ID != "r2" {
		t.Fatalf("expected [r2], got %v", got)
	}
}

func TestFilterBySender(t *testing.T) {
	requests := []RequestWithSender{
		{Request: swap.Request{ID: "r1"}, Sender: SenderInfo{Name: "Alice"}},
		{Request: swap.Request{ID: "r2"}, Sender: SenderInfo{Name: "Joanna"}},
		{Request: swap.Request{ID: "r3"}, Sender: SenderInfo{Name: "Anna"}},
	}

	got := FilterBySender(requests, "ANN")
	if len(got) != 2 || got[0].ID != "r2" || got[1].ID != "r3" {
		t.Fatalf("expected [r2 r3], got %v", got)
	}

	if got := FilterBySender(requests, "  "); len(got) != 3 {
		t.Fatalf("blank search must be identity, got %v", got)
	}
}
