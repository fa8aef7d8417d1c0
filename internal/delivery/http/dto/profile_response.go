package dto

import "skill-swap/internal/domain/profile"

type ProjectDTO struct {
	Name string `json:"name"`
	Link string `json:"link"`
	Desc string `json:"desc"`
}

type ProfileResponse struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Email         string       `json:"email"`
	Location      string       `json:"location"`
	About         string       `json:"about"`
	Availability  string       `json:"availability"`
	SkillsOffered []string     `json:"skillsOffered"`
	SkillsWanted  []string     `json:"skillsWanted"`
	Projects      []ProjectDTO `json:"projects"`
	ProfilePic    string       `json:"profilePic"`
	Rating        *float64     `json:"rating,omitempty"`
	Feedback      string       `json:"feedback,omitempty"`
}

func NewProfileResponse(p profile.Profile) ProfileResponse {
	projects := make([]ProjectDTO, 0, len(p.Projects))
	for _, proj := range p.Projects {
		projects = append(projects, ProjectDTO{Name: proj.Name, Link: proj.Link, Desc: proj.Desc})
	}

	skillsOffered := p.SkillsOffered
	if skillsOffered == nil {
		skillsOffered = []string{}
	}
	skillsWanted := p.SkillsWanted
	if skillsWanted == nil {
		skillsWanted = []string{}
	}

	return ProfileResponse{
		ID:            p.ID,
		Name:          p.Name,
		Email:         p.Email,
		Location:      p.Location,
		About:         p.About,
		Availability:  p.Availability,
		SkillsOffered: skillsOffered,
		SkillsWanted:  skillsWanted,
		Projects:      projects,
		ProfilePic:    p.ProfilePic,
		Rating:        p.Rating,
		Feedback:      p.Feedback,
	}
}
