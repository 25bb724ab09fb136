package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter_EmptyQueryAllFacet_ReturnsFullCatalogInOrder(t *testing.T) {
	got := Filter(All(), "", FacetAll)
	assert.Equal(t, ids(All()), ids(got))
}

func TestFilter_FreeFacet(t *testing.T) {
	got := Filter(All(), "", FacetFree)
	assert.Equal(t, []string{"1", "3", "5", "7"}, ids(got))
}

func TestFilter_PremiumFacet(t *testing.T) {
	got := Filter(All(), "", FacetPremium)
	assert.Equal(t, []string{"2", "4", "6", "8"}, ids(got))
}

func TestFilter_LevelFacets(t *testing.T) {
	tests := []struct {
		facet Facet
		want  []string
	}{
		{FacetBeginner, []string{"1", "5", "7"}},
		{FacetIntermediate, []string{"3", "4", "8"}},
		{FacetAdvanced, []string{"2", "6"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.facet), func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Filter(All(), "", tt.facet)))
		})
	}
}

func TestFilter_QueryMatchesTitleDescriptionOrInstructor(t *testing.T) {
	// "java" hits course 2 by title and course 1 by description
	// ("...including HTML, CSS, and JavaScript...").
	assert.Equal(t, []string{"1", "2"}, ids(Filter(All(), "java", FacetAll)))

	// Instructor match.
	assert.Equal(t, []string{"4"}, ids(Filter(All(), "emma thompson", FacetAll)))

	// Description-only match.
	assert.Equal(t, []string{"2"}, ids(Filter(All(), "closures", FacetAll)))
}

func TestFilter_QueryIsCaseInsensitive(t *testing.T) {
	lower := Filter(All(), "javascript", FacetAll)
	upper := Filter(All(), "JAVASCRIPT", FacetAll)
	assert.Equal(t, ids(lower), ids(upper))
	require.NotEmpty(t, lower)
}

func TestFilter_QueryAndFacetAreANDed(t *testing.T) {
	got := Filter(All(), "java", FacetPremium)
	assert.Equal(t, []string{"2"}, ids(got))
}

func TestFilter_Idempotent(t *testing.T) {
	once := Filter(All(), "web", FacetFree)
	twice := Filter(once, "web", FacetFree)
	assert.Equal(t, ids(once), ids(twice))
}

func TestFilter_PreservesRelativeOrder(t *testing.T) {
	got := Filter(All(), "", FacetFree)

	position := map[string]int{}
	for i, c := range All() {
		position[c.ID] = i
	}
	for i := 1; i < len(got); i++ {
		assert.Less(t, position[got[i-1].ID], position[got[i].ID])
	}
}

func TestFilter_NoMatches(t *testing.T) {
	assert.Empty(t, Filter(All(), "quantum chromodynamics", FacetAll))
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	input := All()
	_ = Filter(input, "java", FacetPremium)
	assert.Equal(t, ids(All()), ids(input))
}

func TestParseFacet(t *testing.T) {
	tests := []struct {
		in      string
		want    Facet
		wantErr bool
	}{
		{"all", FacetAll, false},
		{"FREE", FacetFree, false},
		{"premium", FacetPremium, false},
		{"beginner", FacetBeginner, false},
		{"Intermediate", FacetIntermediate, false},
		{"advanced", FacetAdvanced, false},
		{"expert", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFacet(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
