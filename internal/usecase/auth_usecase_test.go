package usecase

import (
	"context"
	"testing"

	"skill-swap/internal/domain/account"
	"skill-swap/internal/pkg/jwt"
	"skill-swap/internal/recordstore/memory"
	"skill-swap/internal/repository"
	ucauth "skill-swap/internal/usecase/auth"
)

type memAccountRepo struct {
	items []account.Account
}

func (m *memAccountRepo) Create(_ context.Context, a account.Account) error {
	m.items = append(m.items, a)
	return nil
}

func (m *memAccountRepo) GetByID(_ context.Context, id string) (account.Account, error) {
	for _, a := range m.items {
		if a.ID == id {
			return a, nil
		}
	}
	return account.Account{}, account.ErrNotFound
}

func (m *memAccountRepo) GetByEmail(_ context.Context, email string) (account.Account, error) {
	for _, a := range m.items {
		if a.Email == email {
			return a, nil
		}
	}
	return account.Account{}, account.ErrNotFound
}

func (m *memAccountRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, a := range m.items {
		if a.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type stubJWT struct{}

func (stubJWT) GenerateAccessToken(userID, _ string) (string, error) { return "access-" + userID, nil }
func (stubJWT) GenerateRefreshToken(userID string) (string, error)   { return "refresh-" + userID, nil }
func (stubJWT) ValidateToken(string) (jwt.Claims, error)             { return jwt.Claims{}, nil }
func (stubJWT) IsRefreshToken(jwt.Claims) bool                       { return false }

func TestRegister_NewMemberVisibleInDirectory(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	profileRepo := repository.NewRecordProfileRepository(store)
	cache := &stubCache{}

	if err := profileRepo.Init(ctx, "u1", "Ann", "ann@example.com"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	dirUC := NewDirectoryUsecase(profileRepo, cache)
	warm, err := dirUC.Browse(ctx, DirectoryFilter{})
	if err != nil {
		t.Fatalf("warm browse: %v", err)
	}
	if len(warm) != 1 {
		t.Fatalf("expected 1 member before registration, got %d", len(warm))
	}

	authUC := NewAuthUsecase(&memAccountRepo{}, profileRepo, cache, stubJWT{})
	_, _, _, err = authUC.Register(ctx, ucauth.RegisterInput{
		Name:     "Bob",
		Email:    "bob@example.com",
		Password: "supersecret",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if cache.deletes == 0 {
		t.Fatal("registration must invalidate the directory snapshot")
	}

	got, err := dirUC.Browse(ctx, DirectoryFilter{})
	if err != nil {
		t.Fatalf("browse: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 members after registration, got %d", len(got))
	}
	found := false
	for _, p := range got {
		if p.Name == "Bob" {
			found = true
		}
	}
	if !found {
		t.Fatalf("new member missing from directory: %v", got)
	}
}
