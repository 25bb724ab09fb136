// Package navigation maps session state to a target screen. It exists so
// the session controller never triggers navigation itself: the controller
// reports state, and this collaborator decides where the presentation layer
// should go.
package navigation

import "github.com/avasiljevs/learnkeeper/internal/session"

// Screen identifies a presentation-layer destination.
type Screen string

const (
	ScreenLogin Screen = "login"
	ScreenHome  Screen = "home"
)

// Decide returns the screen the presentation layer should show for the
// given session state. Anything short of an authenticated session lands on
// the login screen.
func Decide(s session.State) Screen {
	if s == session.StateAuthenticated {
		return ScreenHome
	}
	return ScreenLogin
}
