package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"skill-swap/internal/domain/profile"
)

type stubProfileRepo struct {
	items []profile.Profile
	err   error

	savedID     string
	savedFields map[string]any
	initCalls   int
}

func (s *stubProfileRepo) Get(_ context.Context, userID string) (profile.Profile, error) {
	if s.err != nil {
		return profile.Profile{}, s.err
	}
	for _, p := range s.items {
		if p.ID == userID {
			return p, nil
		}
	}
	return profile.Profile{}, profile.ErrNotFound
}

func (s *stubProfileRepo) List(context.Context) ([]profile.Profile, error) {
	return s.items, s.err
}

func (s *stubProfileRepo) SaveFields(_ context.Context, userID string, fields map[string]any) error {
	s.savedID = userID
	s.savedFields = fields
	return nil
}

func (s *stubProfileRepo) Init(context.Context, string, string, string) error {
	s.initCalls++
	return nil
}

// stubCache is a single-key DirectoryCache that remembers deletes.
type stubCache struct {
	doc     json.RawMessage
	deletes int
}

func (c *stubCache) GetJSON(_ context.Context, _ string, out any) (bool, error) {
	if c.doc == nil {
		return false, nil
	}
	return true, json.Unmarshal(c.doc, out)
}

func (c *stubCache) SetJSON(_ context.Context, _ string, value any, _ time.Duration) error {
	doc, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.doc = doc
	return nil
}

func (c *stubCache) Delete(context.Context, string) error {
	c.doc = nil
	c.deletes++
	return nil
}

func directoryFixture() []profile.Profile {
	return []profile.Profile{
		{ID: "u1", Name: "Anna", Availability: profile.AvailabilityWeekends},
		{ID: "u2", Name: "Joanna", Availability: profile.AvailabilityWeekdays},
		{ID: "u3", Name: "Marco", Availability: profile.AvailabilityWeekends},
		{ID: "u4", Name: "   "},
	}
}

func TestDirectoryBrowse_DropsNamelessRecords(t *testing.T) {
	uc := NewDirectoryUsecase(&stubProfileRepo{items: directoryFixture()}, nil)

	got, err := uc.Browse(context.Background(), DirectoryFilter{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 listable profiles, got %d", len(got))
	}
	for _, p := range got {
		if p.ID == "u4" {
			t.Fatal("nameless record must not be listed")
		}
		if p.ProfilePic == "" {
			t.Fatalf("profile %s missing placeholder avatar", p.ID)
		}
	}
}

func TestDirectoryBrowse_FiltersAreANDed(t *testing.T) {
	uc := NewDirectoryUsecase(&stubProfileRepo{items: directoryFixture()}, nil)

	got, err := uc.Browse(context.Background(), DirectoryFilter{
		Search:       "ann",
		Availability: profile.AvailabilityWeekends,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].ID != "u1" {
		t.Fatalf("expected only u1, got %v", got)
	}
}

func TestDirectoryBrowse_OrderPreserved(t *testing.T) {
	uc := NewDirectoryUsecase(&stubProfileRepo{items: directoryFixture()}, nil)

	got, err := uc.Browse(context.Background(), DirectoryFilter{Availability: profile.AvailabilityWeekends})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 || got[0].ID != "u1" || got[1].ID != "u3" {
		t.Fatalf("expected [u1 u3] in store order, got %v", got)
	}
}

func TestDirectoryBrowse_CacheRoundTripKeepsIDs(t *testing.T) {
	repo := &stubProfileRepo{items: directoryFixture()}
	cache := &stubCache{}
	uc := NewDirectoryUsecase(repo, cache)

	if _, err := uc.Browse(context.Background(), DirectoryFilter{}); err != nil {
		t.Fatalf("warm-up err: %v", err)
	}

	// Second call is served from the cache; IDs must survive the trip even
	// though Profile does not serialize them.
	repo.items = nil
	got, err := uc.Browse(context.Background(), DirectoryFilter{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected cached snapshot of 3, got %d", len(got))
	}
	if got[0].ID != "u1" || got[1].ID != "u2" || got[2].ID != "u3" {
		t.Fatalf("ids lost through cache: %v", got)
	}
}

func TestDirectoryGetUser(t *testing.T) {
	uc := NewDirectoryUsecase(&stubProfileRepo{items: directoryFixture()}, nil)

	p, err := uc.GetUser(context.Background(), "u3")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.Name != "Marco" || p.ProfilePic != profile.DefaultAvatarURL {
		t.Fatalf("unexpected profile: %+v", p)
	}

	if _, err := uc.GetUser(context.Background(), "missing"); !errors.Is(err, profile.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFilterProfiles_SearchIsCaseInsensitive(t *testing.T) {
	got := FilterProfiles(directoryFixture(), DirectoryFilter{Search: "ANNA"})
	if len(got) != 2 || got[0].ID != "u1" || got[1].ID != "u2" {
		t.Fatalf("expected [u1 u2], got %v", got)
	}
}
