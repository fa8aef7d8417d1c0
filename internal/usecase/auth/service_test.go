package auth

import (
	"context"
	"errors"
	"testing"

	"skill-swap/internal/domain/account"
	"skill-swap/internal/domain/profile"
)

type fakeAccountRepo struct {
	byEmail map[string]account.Account
	err     error
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{byEmail: make(map[string]account.Account)}
}

func (f *fakeAccountRepo) Create(_ context.Context, a account.Account) error {
	if f.err != nil {
		return f.err
	}
	f.byEmail[a.Email] = a
	return nil
}

func (f *fakeAccountRepo) GetByID(_ context.Context, id string) (account.Account, error) {
	for _, a := range f.byEmail {
		if a.ID == id {
			return a, nil
		}
	}
	return account.Account{}, account.ErrNotFound
}

func (f *fakeAccountRepo) GetByEmail(_ context.Context, email string) (account.Account, error) {
	if f.err != nil {
		return account.Account{}, f.err
	}
	a, ok := f.byEmail[email]
	if !ok {
		return account.Account{}, account.ErrNotFound
	}
	return a, nil
}

func (f *fakeAccountRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.byEmail[email]
	return ok, nil
}

type profileRepoStub struct {
	initUserID string
	initName   string
	initEmail  string
	initErr    error
}

func (s *profileRepoStub) Get(context.Context, string) (profile.Profile, error) {
	return profile.Profile{}, profile.ErrNotFound
}

func (s *profileRepoStub) List(context.Context) ([]profile.Profile, error) { return nil, nil }

func (s *profileRepoStub) SaveFields(context.Context, string, map[string]any) error { return nil }

func (s *profileRepoStub) Init(_ context.Context, userID, name, email string) error {
	if s.initErr != nil {
		return s.initErr
	}
	s.initUserID, s.initName, s.initEmail = userID, name, email
	return nil
}

func TestRegisterAndLogin(t *testing.T) {
	accounts := newFakeAccountRepo()
	profiles := &profileRepoStub{}
	svc := NewService(accounts, profiles)

	a, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Alice",
		Email:    "  Alice@Example.COM ",
		Password: "supersecret",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if a.Email != "alice@example.com" {
		t.Fatalf("email not normalized: %q", a.Email)
	}
	if a.PasswordHash != "" {
		t.Fatal("hash must not leave the service")
	}
	if profiles.initUserID != a.ID || profiles.initName != "Alice" {
		t.Fatalf("initial profile not written: %+v", profiles)
	}

	got, err := svc.Login(context.Background(), LoginInput{Email: "alice@example.com", Password: "supersecret"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if got.ID != a.ID {
		t.Fatalf("expected account %s, got %s", a.ID, got.ID)
	}

	if _, err := svc.Login(context.Background(), LoginInput{Email: "alice@example.com", Password: "wrongpass"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	accounts := newFakeAccountRepo()
	svc := NewService(accounts, &profileRepoStub{})

	if _, err := svc.Register(context.Background(), RegisterInput{Name: "Alice", Email: "a@example.com", Password: "supersecret"}); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(context.Background(), RegisterInput{Name: "Alice2", Email: "A@example.com", Password: "supersecret"}); !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestRegister_InvalidInput(t *testing.T) {
	svc := NewService(newFakeAccountRepo(), &profileRepoStub{})

	cases := []RegisterInput{
		{Name: "", Email: "a@example.com", Password: "supersecret"},
		{Name: "Alice", Email: "", Password: "supersecret"},
		{Name: "Alice", Email: "a@example.com", Password: "short"},
	}
	for i, in := range cases {
		if _, err := svc.Register(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := NewService(newFakeAccountRepo(), &profileRepoStub{})
	if _, err := svc.Login(context.Background(), LoginInput{Email: "nobody@example.com", Password: "supersecret"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
