// Package access decides whether course content is viewable or must be
// shown behind a paywall.
package access

import (
	"github.com/avasiljevs/learnkeeper/internal/catalog"
	"github.com/avasiljevs/learnkeeper/internal/session"
)

// GrantVerifier checks an entitlement grant carried by a user record.
type GrantVerifier interface {
	Verify(grant string) error
}

// Policy is the single seam where entitlements attach to content gating.
// It is pure: no I/O, no mutation, safe from any goroutine.
type Policy struct {
	verifier GrantVerifier
}

func NewPolicy(v GrantVerifier) *Policy {
	return &Policy{verifier: v}
}

// CanView reports whether the course's content may be surfaced to the given
// user. Unlocked courses are viewable by anyone, session or not. Locked
// courses require a valid premium grant; an expired or tampered grant is
// treated as absent. When CanView is false the presentation layer must show
// the paywall affordance instead of the document URL.
func (p *Policy) CanView(c catalog.Course, u *session.User) bool {
	if !c.Locked {
		return true
	}
	if u == nil || u.Entitlement == "" {
		return false
	}
	return p.verifier.Verify(u.Entitlement) == nil
}
