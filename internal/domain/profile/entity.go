package profile

import (
	"errors"
	"regexp"
	"strings"
)

const DefaultAvatarURL = "https://i.pravatar.cc/150"

const (
	AvailabilityUnset    = ""
	AvailabilityWeekdays = "Weekdays"
	AvailabilityWeekends = "Weekends"
)

var (
	ErrNotFound            = errors.New("profile not found")
	ErrMalformedRecord     = errors.New("malformed profile record")
	ErrUnknownSkill        = errors.New("skill not in catalog")
	ErrDuplicateSkill      = errors.New("skill already in list")
	ErrUnknownSkillList    = errors.New("unknown skill list")
	ErrIndexOutOfRange     = errors.New("index out of range")
	ErrMissingProjectField = errors.New("project name and link are required")
	ErrInvalidProjectLink  = errors.New("invalid github repository link")
	ErrInvalidAvailability = errors.New("invalid availability")
	ErrInvalidAvatar       = errors.New("invalid avatar image")
)

// SkillList selects which of the two skill sequences an operation targets.
type SkillList string

const (
	ListOffered SkillList = "offered"
	ListWanted  SkillList = "wanted"
)

type Project struct {
	Name string `json:"name"`
	Link string `json:"link"`
	Desc string `json:"desc"`
}

// Profile is the editable user record stored at users/{id}. The id is the
// record path segment and is never written into the document; rating and
// feedback have no write path here and are carried through reads untouched.
type Profile struct {
	ID            string    `json:"-"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Location      string    `json:"location,omitempty"`
	About         string    `json:"about,omitempty"`
	Availability  string    `json:"availability,omitempty"`
	SkillsOffered []string  `json:"skillsOffered,omitempty"`
	SkillsWanted  []string  `json:"skillsWanted,omitempty"`
	Projects      []Project `json:"projects,omitempty"`
	ProfilePic    string    `json:"profilePic,omitempty"`
	Rating        *float64  `json:"rating,omitempty"`
	Feedback      string    `json:"feedback,omitempty"`
}

var githubLinkRe = regexp.MustCompile(`^https://(www\.)?github\.com/[A-Za-z0-9_.-]+/[A-Za-z0-9_.-]+$`)

func IsValidGitHubLink(link string) bool {
	return githubLinkRe.MatchString(link)
}

func ValidAvailability(v string) bool {
	switch v {
	case AvailabilityUnset, AvailabilityWeekdays, AvailabilityWeekends:
		return true
	}
	return false
}

// Default returns the profile shown on first load after registration, before
// any record exists: everything empty except the session email.
func Default(id, email string) Profile {
	return Profile{ID: id, Email: email, ProfilePic: DefaultAvatarURL}
}

func (p *Profile) skills(list SkillList) (*[]string, error) {
	switch list {
	case ListOffered:
		return &p.SkillsOffered, nil
	case ListWanted:
		return &p.SkillsWanted, nil
	}
	return nil, ErrUnknownSkillList
}

// AddSkill appends the canonical form of term to the target list. The term
// must match a catalog entry exactly (case-insensitively) and must not
// already be present.
func (p *Profile) AddSkill(term string, list SkillList) error {
	target, err := p.skills(list)
	if err != nil {
		return err
	}

	canonical, ok := CanonicalSkill(term)
	if !ok {
		return ErrUnknownSkill
	}
	for _, s := range *target {
		if s == canonical {
			return ErrDuplicateSkill
		}
	}

	*target = append(*target, canonical)
	return nil
}

// RemoveSkill removes the entry at index from the target list, preserving
// the order of the rest.
func (p *Profile) RemoveSkill(index int, list SkillList) error {
	target, err := p.skills(list)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(*target) {
		return ErrIndexOutOfRange
	}
	*target = append((*target)[:index], (*target)[index+1:]...)
	return nil
}

func (p *Profile) AddProject(name, link, desc string) error {
	name = strings.TrimSpace(name)
	link = strings.TrimSpace(link)
	if name == "" || link == "" {
		return ErrMissingProjectField
	}
	if !IsValidGitHubLink(link) {
		return ErrInvalidProjectLink
	}
	p.Projects = append(p.Projects, Project{Name: name, Link: link, Desc: strings.TrimSpace(desc)})
	return nil
}

func (p *Profile) RemoveProject(index int) error {
	if index < 0 || index >= len(p.Projects) {
		return ErrIndexOutOfRange
	}
	p.Projects = append(p.Projects[:index], p.Projects[index+1:]...)
	return nil
}

// SetAvatar accepts an https URL or an inline data-URI encoding of an
// uploaded image.
func (p *Profile) SetAvatar(image string) error {
	image = strings.TrimSpace(image)
	if image == "" {
		return ErrInvalidAvatar
	}
	if !strings.HasPrefix(image, "https://") && !strings.HasPrefix(image, "data:image/") {
		return ErrInvalidAvatar
	}
	p.ProfilePic = image
	return nil
}

func (p *Profile) ClearAvatar() {
	p.ProfilePic = DefaultAvatarURL
}

// Validate checks the invariants a batch save must hold: skills resolve to
// catalog entries in canonical casing without duplicates, project links pass
// the GitHub check, availability is one of the known values.
func (p *Profile) Validate() error {
	if !ValidAvailability(p.Availability) {
		return ErrInvalidAvailability
	}
	for _, list := range [][]string{p.SkillsOffered, p.SkillsWanted} {
		seen := make(map[string]bool, len(list))
		for _, s := range list {
			canonical, ok := CanonicalSkill(s)
			if !ok || canonical != s {
				return ErrUnknownSkill
			}
			if seen[s] {
				return ErrDuplicateSkill
			}
			seen[s] = true
		}
	}
	for _, proj := range p.Projects {
		if strings.TrimSpace(proj.Name) == "" || strings.TrimSpace(proj.Link) == "" {
			return ErrMissingProjectField
		}
		if !IsValidGitHubLink(proj.Link) {
			return ErrInvalidProjectLink
		}
	}
	return nil
}

// HasOffered reports whether the canonical skill is in skillsOffered.
func (p *Profile) HasOffered(skill string) bool {
	return containsSkill(p.SkillsOffered, skill)
}

// HasWanted reports whether the canonical skill is in skillsWanted.
func (p *Profile) HasWanted(skill string) bool {
	return containsSkill(p.SkillsWanted, skill)
}

func containsSkill(list []string, skill string) bool {
	for _, s := range list {
		if s == skill {
			return true
		}
	}
	return false
}

// EditableFields is the exact field set a save writes: never the id, never
// rating or feedback. Nil sequences are written as empty ones so a save can
// clear a previously stored list.
func (p *Profile) EditableFields() map[string]any {
	skillsOffered := p.SkillsOffered
	if skillsOffered == nil {
		skillsOffered = []string{}
	}
	skillsWanted := p.SkillsWanted
	if skillsWanted == nil {
		skillsWanted = []string{}
	}
	projects := p.Projects
	if projects == nil {
		projects = []Project{}
	}

	return map[string]any{
		"name":          p.Name,
		"email":         p.Email,
		"location":      p.Location,
		"availability":  p.Availability,
		"about":         p.About,
		"skillsOffered": skillsOffered,
		"skillsWanted":  skillsWanted,
		"projects":      projects,
		"profilePic":    p.ProfilePic,
	}
}
