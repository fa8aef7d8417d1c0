package usecase

import (
	"context"
	"strings"

	"skill-swap/internal/domain/profile"
	"skill-swap/internal/repository"
)

type DirectoryFilter struct {
	Search       string
	Availability string
}

type DirectoryUsecase interface {
	Browse(ctx context.Context, filter DirectoryFilter) ([]profile.Profile, error)
	GetUser(ctx context.Context, userID string) (profile.Profile, error)
}

type Directory struct {
	profiles repository.ProfileRepository
	cache    DirectoryCache
}

func NewDirectoryUsecase(profiles repository.ProfileRepository, cache DirectoryCache) *Directory {
	return &Directory{profiles: profiles, cache: cache}
}

// Browse returns the filtered browse listing. The unfiltered snapshot is
// cached; filtering always happens on the snapshot so the two predicates
// behave the same with or without Redis.
func (u *Directory) Browse(ctx context.Context, filter DirectoryFilter) ([]profile.Profile, error) {
	snapshot, err := u.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return FilterProfiles(snapshot, filter), nil
}

func (u *Directory) GetUser(ctx context.Context, userID string) (profile.Profile, error) {
	p, err := u.profiles.Get(ctx, userID)
	if err != nil {
		return profile.Profile{}, err
	}
	if p.ProfilePic == "" {
		p.ProfilePic = profile.DefaultAvatarURL
	}
	return p, nil
}

// snapshot is every listable profile: records without a name are dropped as
// partially initialized.
func (u *Directory) snapshot(ctx context.Context) ([]profile.Profile, error) {
	if u.cache != nil {
		var cached []cacheEntry
		if ok, err := u.cache.GetJSON(ctx, directoryCacheKey, &cached); err == nil && ok {
			return fromCache(cached), nil
		}
	}

	all, err := u.profiles.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]profile.Profile, 0, len(all))
	for _, p := range all {
		if strings.TrimSpace(p.Name) == "" {
			continue
		}
		if p.ProfilePic == "" {
			p.ProfilePic = profile.DefaultAvatarURL
		}
		out = append(out, p)
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, directoryCacheKey, cacheable(out), 0)
	}
	return out, nil
}

// FilterProfiles applies the browse predicates: case-insensitive substring
// match on name, exact match on availability, ANDed, order preserved.
func FilterProfiles(profiles []profile.Profile, filter DirectoryFilter) []profile.Profile {
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	out := make([]profile.Profile, 0, len(profiles))
	for _, p := range profiles {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if filter.Availability != "" && p.Availability != filter.Availability {
			continue
		}
		out = append(out, p)
	}
	return out
}

// cacheEntry carries the id explicitly since Profile does not serialize it.
type cacheEntry struct {
	ID string `json:"id"`
	profile.Profile
}

func cacheable(profiles []profile.Profile) []cacheEntry {
	out := make([]cacheEntry, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, cacheEntry{ID: p.ID, Profile: p})
	}
	return out
}

func fromCache(entries []cacheEntry) []profile.Profile {
	out := make([]profile.Profile, 0, len(entries))
	for _, e := range entries {
		p := e.Profile
		p.ID = e.ID
		out = append(out, p)
	}
	return out
}
