package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lesmarvelous-backend/models"
)

func sampleProjects() []models.Project {
	return []models.Project{
		{ID: 1, Type: models.ProjectWedding, Couple: "Alice & Bob", Country: "fr", Status: models.StatusEnCours, WeddingType: "french"},
		{ID: 2, Type: models.ProjectStudio, Couple: "Séance Dupont", Country: "fr", Status: models.StatusEnRetard},
		{ID: 3, Type: models.ProjectWedding, Couple: "Chantal & Denis", Country: "cm", Status: models.StatusEnRetard, WeddingType: "cameroonian"},
		{ID: 4, Type: models.ProjectCorporate, Couple: "Total Energies", Country: "cm", Status: models.StatusAVenir},
		{ID: 5, Type: models.ProjectWedding, Couple: "Emma & Félix", Country: "fr", Status: models.StatusTermine, WeddingType: "french"},
	}
}

func ids(projects []models.Project) []uint {
	out := make([]uint, len(projects))
	for i, p := range projects {
		out[i] = p.ID
	}
	return out
}

func TestEmptyFilterReturnsAllInOrder(t *testing.T) {
	projects := sampleProjects()
	result := Apply(projects, Filter{})
	assert.Equal(t, []uint{1, 2, 3, 4, 5}, ids(result))
}

func TestStatusFilterKeepsOrder(t *testing.T) {
	// 2 of 5 projects are en_retard; original relative order must hold.
	result := Apply(sampleProjects(), Filter{Status: []string{"en_retard"}})
	assert.Equal(t, []uint{2, 3}, ids(result))
}

func TestCountryFilter(t *testing.T) {
	result := Apply(sampleProjects(), Filter{Country: []string{"cm"}})
	assert.Equal(t, []uint{3, 4}, ids(result))
}

func TestDimensionsCombineWithAnd(t *testing.T) {
	result := Apply(sampleProjects(), Filter{
		Country: []string{"fr"},
		Type:    []string{"wedding"},
	})
	assert.Equal(t, []uint{1, 5}, ids(result))
}

func TestValuesWithinDimensionCombineWithOr(t *testing.T) {
	result := Apply(sampleProjects(), Filter{Status: []string{"en_retard", "a_venir"}})
	assert.Equal(t, []uint{2, 3, 4}, ids(result))
}

func TestToggleIsIdempotent(t *testing.T) {
	projects := sampleProjects()
	original := Apply(projects, Filter{})

	// Apply a country filter, then remove it: back to the original set.
	f := Filter{Country: []string{"fr"}}
	_ = Apply(projects, f)
	f.Country = nil
	assert.Equal(t, ids(original), ids(Apply(projects, f)))
}

func TestWeddingTypePassesNonWeddingProjects(t *testing.T) {
	// The weddingType dimension only constrains wedding projects; studio and
	// corporate entries pass it even when it is set.
	result := Apply(sampleProjects(), Filter{WeddingType: []string{"french"}})
	assert.Equal(t, []uint{1, 2, 4, 5}, ids(result))
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	result := Apply(sampleProjects(), Filter{Search: "alice"})
	assert.Equal(t, []uint{1}, ids(result))

	result = Apply(sampleProjects(), Filter{Search: "CHANTAL"})
	assert.Equal(t, []uint{3}, ids(result))
}

func TestSearchNoMatch(t *testing.T) {
	result := Apply(sampleProjects(), Filter{Search: "zzz"})
	assert.Empty(t, result)
}
