// Package catalog holds the fixed set of course records the application
// knows about and the pure operations over it: featured subset, id lookup,
// and the faceted free-text filter.
package catalog

import (
	"fmt"

	"github.com/avasiljevs/learnkeeper/internal/common"
)

// Level classifies course difficulty.
type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
)

// Course is a single catalog entry. Records are immutable for the process
// lifetime. DocumentURL is empty when the content is not viewable in-app;
// for locked courses a present DocumentURL must still never be surfaced
// without an entitlement (see the access package).
type Course struct {
	ID          string
	Title       string
	Description string
	ImageURL    string
	Locked      bool
	DocumentURL string
	Duration    string
	Lessons     int
	Instructor  string
	Level       Level
}

// All returns the full catalog in its canonical order.
func All() []Course {
	out := make([]Course, len(courses))
	copy(out, courses)
	return out
}

// Featured returns the featured subset (the first three catalog entries).
func Featured() []Course {
	out := make([]Course, 3)
	copy(out, courses[:3])
	return out
}

// ByID looks a course up by id. A missing id yields an error wrapping
// common.ErrNotFound.
func ByID(id string) (Course, error) {
	for _, c := range courses {
		if c.ID == id {
			return c, nil
		}
	}
	return Course{}, fmt.Errorf("course %q: %w", id, common.ErrNotFound)
}
