// Package filter applies the dashboard's composable project filters. Each
// dimension is an inclusive OR over its values; dimensions combine with AND.
// An empty dimension imposes no constraint, and the input order is preserved.
package filter

import (
	"strings"

	"lesmarvelous-backend/models"
)

// Filter is one filter configuration. The zero value matches everything.
type Filter struct {
	Country     []string `json:"country" form:"country"`
	Type        []string `json:"type" form:"type"`
	Status      []string `json:"status" form:"status"`
	WeddingType []string `json:"wedding_type" form:"wedding_type"`
	Search      string   `json:"search" form:"search"`
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

// Matches reports whether a single project passes every dimension.
func (f Filter) Matches(p *models.Project) bool {
	if len(f.Country) > 0 && !contains(f.Country, p.Country) {
		return false
	}
	if len(f.Type) > 0 && !contains(f.Type, string(p.Type)) {
		return false
	}
	if len(f.Status) > 0 && !contains(f.Status, string(p.Status)) {
		return false
	}
	// The wedding-type dimension only constrains wedding projects; studio and
	// corporate projects pass it unconditionally even when it is set.
	if len(f.WeddingType) > 0 && p.Type == models.ProjectWedding && !contains(f.WeddingType, p.WeddingType) {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(p.Couple), strings.ToLower(f.Search)) {
		return false
	}
	return true
}

// Apply returns the projects passing the filter, in their original order.
func Apply(projects []models.Project, f Filter) []models.Project {
	out := make([]models.Project, 0, len(projects))
	for i := range projects {
		if f.Matches(&projects[i]) {
			out = append(out, projects[i])
		}
	}
	return out
}
