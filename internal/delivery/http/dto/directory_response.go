package dto

import "skill-swap/internal/domain/profile"

// DirectoryEntryResponse is the browse-card slice of a profile: enough to
// render the listing, nothing private.
type DirectoryEntryResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Location      string   `json:"location,omitempty"`
	Availability  string   `json:"availability,omitempty"`
	SkillsOffered []string `json:"skillsOffered"`
	SkillsWanted  []string `json:"skillsWanted"`
	ProfilePic    string   `json:"profilePic"`
	Rating        *float64 `json:"rating,omitempty"`
}

func NewDirectoryEntryResponse(p profile.Profile) DirectoryEntryResponse {
	skillsOffered := p.SkillsOffered
	if skillsOffered == nil {
		skillsOffered = []string{}
	}
	skillsWanted := p.SkillsWanted
	if skillsWanted == nil {
		skillsWanted = []string{}
	}

	return DirectoryEntryResponse{
		ID:            p.ID,
		Name:          p.Name,
		Location:      p.Location,
		Availability:  p.Availability,
		SkillsOffered: skillsOffered,
		SkillsWanted:  skillsWanted,
		ProfilePic:    p.ProfilePic,
		Rating:        p.Rating,
	}
}
