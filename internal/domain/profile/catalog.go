package profile

import "strings"

// Catalog is the fixed vocabulary a skill entry must resolve against.
// Commit-time matching is exact (case-insensitive); substring matching is
// only used for suggestions.
var Catalog = []string{
	"Web Development",
	"App Development",
	"Python",
	"Java",
	"C++",
	"Machine Learning",
	"UI/UX Design",
	"Graphic Design",
	"Cybersecurity",
	"Blockchain",
	"React",
	"Node.js",
	"Firebase",
	"SQL",
	"MongoDB",
	"Cloud Computing",
	"DevOps",
}

// CanonicalSkill resolves raw input against the catalog and returns the
// catalog's casing.
func CanonicalSkill(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	for _, s := range Catalog {
		if strings.EqualFold(s, raw) {
			return s, true
		}
	}
	return "", false
}

// SuggestSkills returns catalog entries containing q, case-insensitively.
// An empty query returns the whole catalog.
func SuggestSkills(q string) []string {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		out := make([]string, len(Catalog))
		copy(out, Catalog)
		return out
	}

	out := make([]string, 0)
	for _, s := range Catalog {
		if strings.Contains(strings.ToLower(s), q) {
			out = append(out, s)
		}
	}
	return out
}
