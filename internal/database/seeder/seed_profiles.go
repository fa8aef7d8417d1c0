package seeder

import (
	"context"
	"errors"
	"fmt"

	"skill-swap/internal/domain/profile"
	"skill-swap/internal/recordstore"
)

// ProfilesSeeder writes a handful of demo members so a fresh install has a
// browsable directory. Existing records are never overwritten.
type ProfilesSeeder struct{}

func (ProfilesSeeder) Name() string { return "profiles" }

func (ProfilesSeeder) Run(ctx context.Context, store recordstore.Store) error {
	items := []struct {
		ID      string
		Profile profile.Profile
	}{
		{
			ID: "demo-ananya",
			Profile: profile.Profile{
				Name:          "Ananya Rao",
				Email:         "ananya@example.com",
				Location:      "Bengaluru",
				About:         "Backend developer happy to trade code reviews for design feedback.",
				Availability:  profile.AvailabilityWeekends,
				SkillsOffered: []string{"Python", "Machine Learning"},
				SkillsWanted:  []string{"Graphic Design"},
				ProfilePic:    profile.DefaultAvatarURL,
			},
		},
		{
			ID: "demo-marco",
			Profile: profile.Profile{
				Name:          "Marco Vitale",
				Email:         "marco@example.com",
				Location:      "Milan",
				About:         "Designer learning to code.",
				Availability:  profile.AvailabilityWeekdays,
				SkillsOffered: []string{"Graphic Design", "UI/UX Design"},
				SkillsWanted:  []string{"Web Development"},
				ProfilePic:    profile.DefaultAvatarURL,
			},
		},
		{
			ID: "demo-priya",
			Profile: profile.Profile{
				Name:          "Priya Nair",
				Email:         "priya@example.com",
				Location:      "Kochi",
				Availability:  profile.AvailabilityWeekends,
				SkillsOffered: []string{"SQL", "Cloud Computing"},
				SkillsWanted:  []string{"DevOps"},
				ProfilePic:    profile.DefaultAvatarURL,
			},
		},
	}

	for _, it := range items {
		path := "users/" + it.ID

		var existing map[string]any
		err := store.Get(ctx, path, &existing)
		if err == nil {
			continue
		}
		if !errors.Is(err, recordstore.ErrNotFound) {
			return fmt.Errorf("check %s: %w", path, err)
		}

		if err := store.Set(ctx, path, it.Profile); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	return nil
}
