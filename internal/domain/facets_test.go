package domain

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveFacets(t *testing.T) {
	facets := DeriveFacets(sampleLocations())

	assert.Equal(t, []string{"Chardonnay", "Dry Cider", "Gin", "IPA", "Pale Ale", "Riesling", "Rkatsiteli", "Whiskey"}, facets.Specialties)
	assert.Equal(t, []string{"Cayuga", "Keuka", "Seneca"}, facets.Lakes)
	assert.Equal(t, []string{TagBeer, TagEvents, TagFood, TagLakeView, TagSpirits, TagTastingRoom, TagTours, "unknownTag", TagWine}, facets.Tags)
}

func TestDeriveFacets_SortedAndUnique(t *testing.T) {
	facets := DeriveFacets(sampleLocations())

	for name, values := range map[string][]string{
		"specialties": facets.Specialties,
		"lakes":       facets.Lakes,
		"tags":        facets.Tags,
	} {
		assert.True(t, sort.StringsAreSorted(values), "%s not sorted", name)

		seen := make(map[string]bool)
		for _, v := range values {
			assert.False(t, seen[v], "%s has duplicate %q", name, v)
			seen[v] = true
		}
	}
}

func TestDeriveFacets_EmptyCatalog(t *testing.T) {
	facets := DeriveFacets(nil)

	assert.NotNil(t, facets.Specialties)
	assert.NotNil(t, facets.Lakes)
	assert.NotNil(t, facets.Tags)
	assert.Empty(t, facets.Specialties)
	assert.Empty(t, facets.Lakes)
	assert.Empty(t, facets.Tags)
}
