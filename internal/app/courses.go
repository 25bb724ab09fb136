package app

import (
	"errors"
	"fmt"

	"github.com/avasiljevs/learnkeeper/internal/catalog"
	"github.com/avasiljevs/learnkeeper/internal/common"
)

func (a *App) printCourseLine(c catalog.Course) {
	lock := " "
	if c.Locked {
		lock = "*"
	}
	fmt.Fprintf(a.out, "%s [%s] %-35s %-12s %-8s %2d lessons  %s\n",
		lock, c.ID, c.Title, c.Level, c.Duration, c.Lessons, c.Instructor)
}

// home renders the featured subset, the landing screen of the original app.
func (a *App) home() {
	fmt.Fprintln(a.out, "Featured courses:")
	for _, c := range catalog.Featured() {
		a.printCourseLine(c)
	}
	fmt.Fprintln(a.out, "(* premium; 'show <id>' for details)")
}

// courses renders the catalog filtered by the free-text query and the
// currently selected facet. The view is re-derived from the full catalog on
// every call; nothing is cached or mutated.
func (a *App) courses(query string) {
	matched := catalog.Filter(catalog.All(), query, a.facet)
	if len(matched) == 0 {
		fmt.Fprintln(a.out, "No courses match.")
		return
	}
	for _, c := range matched {
		a.printCourseLine(c)
	}
}

func (a *App) setFacet(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: facet <all|free|premium|beginner|intermediate|advanced>")
		return
	}
	facet, err := catalog.ParseFacet(args[0])
	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}
	a.facet = facet
	fmt.Fprintf(a.out, "Facet set to %s.\n", facet)
}

// show renders the course detail screen: metadata always, and either the
// document link or the paywall affordance depending on the access policy.
func (a *App) show(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: show <id>")
		return
	}

	c, err := catalog.ByID(args[0])
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fmt.Fprintln(a.out, "Course not found.")
			return
		}
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	fmt.Fprintf(a.out, "%s\n", c.Title)
	fmt.Fprintf(a.out, "%s | %s | %d lessons | by %s\n", c.Level, c.Duration, c.Lessons, c.Instructor)
	fmt.Fprintln(a.out, c.Description)

	if !a.policy.CanView(c, a.controller.CurrentUser()) {
		fmt.Fprintln(a.out, "Premium content. Type 'upgrade' to unlock.")
		return
	}
	if c.DocumentURL == "" {
		fmt.Fprintln(a.out, "No course document available yet.")
		return
	}
	fmt.Fprintf(a.out, "Read: %s\n", c.DocumentURL)
}

func (a *App) profile() {
	u := a.controller.CurrentUser()
	if u == nil {
		fmt.Fprintln(a.out, "Not signed in.")
		return
	}
	fmt.Fprintf(a.out, "%s <%s>\n", u.Name, u.Email)
	if u.Avatar != "" {
		fmt.Fprintf(a.out, "Avatar: %s\n", u.Avatar)
	}
	if u.Entitlement != "" {
		fmt.Fprintln(a.out, "Plan: premium")
	} else {
		fmt.Fprintln(a.out, "Plan: free ('upgrade' to unlock premium courses)")
	}
}
