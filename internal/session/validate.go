package session

import (
	"fmt"
	"regexp"

	"github.com/avasiljevs/learnkeeper/internal/common"
)

const minPasswordLen = 6

var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateCredentials is the caller-side shape check every presentation
// layer must run before Controller.Login. The controller itself accepts any
// syntactically-shaped credential (mocked backend, no verification), so this
// is the only gate keeping malformed input away from the session store.
func ValidateCredentials(email, password string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", common.ErrValidation)
	}
	if !emailShape.MatchString(email) {
		return fmt.Errorf("%w: please enter a valid email", common.ErrValidation)
	}
	if password == "" {
		return fmt.Errorf("%w: password is required", common.ErrValidation)
	}
	if len(password) < minPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", common.ErrValidation, minPasswordLen)
	}
	return nil
}
