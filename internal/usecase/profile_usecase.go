package usecase

import (
	"context"
	"errors"
	"time"

	"skill-swap/internal/domain/profile"
	"skill-swap/internal/repository"
)

// DirectoryCache is the slice of the Redis cache the listing path uses.
// A nil cache disables caching entirely.
type DirectoryCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

const directoryCacheKey = "directory:profiles"

type SaveProfileInput struct {
	Name          string
	Location      string
	About         string
	Availability  string
	SkillsOffered []string
	SkillsWanted  []string
	Projects      []profile.Project
	ProfilePic    string
}

type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID, sessionEmail string) (profile.Profile, error)
	SaveProfile(ctx context.Context, userID, sessionEmail string, in SaveProfileInput) (profile.Profile, error)
	AddSkill(ctx context.Context, userID, sessionEmail, term string, list profile.SkillList) (profile.Profile, error)
	RemoveSkill(ctx context.Context, userID, sessionEmail string, index int, list profile.SkillList) (profile.Profile, error)
	AddProject(ctx context.Context, userID, sessionEmail, name, link, desc string) (profile.Profile, error)
	RemoveProject(ctx context.Context, userID, sessionEmail string, index int) (profile.Profile, error)
	SetAvatar(ctx context.Context, userID, sessionEmail, image string) (profile.Profile, error)
	ClearAvatar(ctx context.Context, userID, sessionEmail string) (profile.Profile, error)
}

type Profile struct {
	profiles repository.ProfileRepository
	cache    DirectoryCache
}

func NewProfileUsecase(profiles repository.ProfileRepository, cache DirectoryCache) *Profile {
	return &Profile{profiles: profiles, cache: cache}
}

// GetProfile loads users/{id}; an absent record yields a profile defaulted
// from the session email. The email always comes from the session, never
// from the stored document.
func (u *Profile) GetProfile(ctx context.Context, userID, sessionEmail string) (profile.Profile, error) {
	p, err := u.profiles.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return profile.Default(userID, sessionEmail), nil
		}
		return profile.Profile{}, err
	}

	p.Email = sessionEmail
	if p.ProfilePic == "" {
		p.ProfilePic = profile.DefaultAvatarURL
	}
	return p, nil
}

// SaveProfile writes the whole editable field set in one merge, after the
// same validation the per-item operations enforce. Submitted skills are
// folded to their catalog casing before the duplicate check.
func (u *Profile) SaveProfile(ctx context.Context, userID, sessionEmail string, in SaveProfileInput) (profile.Profile, error) {
	offered, err := canonicalizeSkills(in.SkillsOffered)
	if err != nil {
		return profile.Profile{}, err
	}
	wanted, err := canonicalizeSkills(in.SkillsWanted)
	if err != nil {
		return profile.Profile{}, err
	}

	pic := in.ProfilePic
	if pic == "" {
		pic = profile.DefaultAvatarURL
	}

	p := profile.Profile{
		ID:            userID,
		Name:          in.Name,
		Email:         sessionEmail,
		Location:      in.Location,
		About:         in.About,
		Availability:  in.Availability,
		SkillsOffered: offered,
		SkillsWanted:  wanted,
		Projects:      in.Projects,
		ProfilePic:    pic,
	}
	if err := p.Validate(); err != nil {
		return profile.Profile{}, err
	}

	if err := u.persist(ctx, &p); err != nil {
		return profile.Profile{}, err
	}
	return p, nil
}

func (u *Profile) AddSkill(ctx context.Context, userID, sessionEmail, term string, list profile.SkillList) (profile.Profile, error) {
	return u.mutate(ctx, userID, sessionEmail, func(p *profile.Profile) error {
		return p.AddSkill(term, list)
	})
}

func (u *Profile) RemoveSkill(ctx context.Context, userID, sessionEmail string, index int, list profile.SkillList) (profile.Profile, error) {
	return u.mutate(ctx, userID, sessionEmail, func(p *profile.Profile) error {
		return p.RemoveSkill(index, list)
	})
}

func (u *Profile) AddProject(ctx context.Context, userID, sessionEmail, name, link, desc string) (profile.Profile, error) {
	return u.mutate(ctx, userID, sessionEmail, func(p *profile.Profile) error {
		return p.AddProject(name, link, desc)
	})
}

func (u *Profile) RemoveProject(ctx context.Context, userID, sessionEmail string, index int) (profile.Profile, error) {
	return u.mutate(ctx, userID, sessionEmail, func(p *profile.Profile) error {
		return p.RemoveProject(index)
	})
}

func (u *Profile) SetAvatar(ctx context.Context, userID, sessionEmail, image string) (profile.Profile, error) {
	return u.mutate(ctx, userID, sessionEmail, func(p *profile.Profile) error {
		return p.SetAvatar(image)
	})
}

func (u *Profile) ClearAvatar(ctx context.Context, userID, sessionEmail string) (profile.Profile, error) {
	return u.mutate(ctx, userID, sessionEmail, func(p *profile.Profile) error {
		p.ClearAvatar()
		return nil
	})
}

// mutate is the load-modify-merge cycle every per-item operation shares.
func (u *Profile) mutate(ctx context.Context, userID, sessionEmail string, fn func(*profile.Profile) error) (profile.Profile, error) {
	p, err := u.GetProfile(ctx, userID, sessionEmail)
	if err != nil {
		return profile.Profile{}, err
	}
	if err := fn(&p); err != nil {
		return profile.Profile{}, err
	}
	if err := u.persist(ctx, &p); err != nil {
		return profile.Profile{}, err
	}
	return p, nil
}

func (u *Profile) persist(ctx context.Context, p *profile.Profile) error {
	if err := u.profiles.SaveFields(ctx, p.ID, p.EditableFields()); err != nil {
		return err
	}
	if u.cache != nil {
		_ = u.cache.Delete(ctx, directoryCacheKey)
	}
	return nil
}

func canonicalizeSkills(raw []string) ([]string, error) {
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		canonical, ok := profile.CanonicalSkill(s)
		if !ok {
			return nil, profile.ErrUnknownSkill
		}
		out = append(out, canonical)
	}
	return out, nil
}
