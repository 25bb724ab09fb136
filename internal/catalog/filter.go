package catalog

import (
	"fmt"
	"strings"
)

// Facet is the category dimension applied alongside free-text search.
type Facet string

const (
	FacetAll     Facet = "All"
	FacetFree    Facet = "Free"
	FacetPremium Facet = "Premium"

	FacetBeginner     = Facet(LevelBeginner)
	FacetIntermediate = Facet(LevelIntermediate)
	FacetAdvanced     = Facet(LevelAdvanced)
)

// ParseFacet maps user input to a Facet, case-insensitively.
func ParseFacet(s string) (Facet, error) {
	for _, f := range []Facet{
		FacetAll, FacetFree, FacetPremium,
		FacetBeginner, FacetIntermediate, FacetAdvanced,
	} {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown facet %q", s)
}

func (f Facet) matches(c Course) bool {
	switch f {
	case FacetAll, "":
		return true
	case FacetFree:
		return !c.Locked
	case FacetPremium:
		return c.Locked
	default:
		return c.Level == Level(f)
	}
}

func matchesQuery(c Course, q string) bool {
	return strings.Contains(strings.ToLower(c.Title), q) ||
		strings.Contains(strings.ToLower(c.Description), q) ||
		strings.Contains(strings.ToLower(c.Instructor), q)
}

// Filter returns the courses matching both the free-text query and the
// facet, preserving their relative order. The query is matched
// case-insensitively as a substring of title, description, or instructor;
// an empty query matches everything. The input is never mutated.
func Filter(courses []Course, query string, facet Facet) []Course {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]Course, 0, len(courses))
	for _, c := range courses {
		if !facet.matches(c) {
			continue
		}
		if q != "" && !matchesQuery(c, q) {
			continue
		}
		out = append(out, c)
	}
	return out
}
