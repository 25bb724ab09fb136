package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/avasiljevs/learnkeeper/internal/common"
	"github.com/avasiljevs/learnkeeper/internal/logging"
)

// State is the session lifecycle state.
type State int

const (
	StateUnauthenticated State = iota
	StateAuthenticating
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// The fabricated identity issued on every login. There is no backend; the
// only caller-supplied field is the email.
const (
	demoUserID   = "1"
	demoUserName = "Demo User"
	demoAvatar   = "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=300"
)

// GrantIssuer mints entitlement grants for Upgrade.
type GrantIssuer interface {
	Issue(userID string) (string, error)
}

// Controller is the session state machine exposed to the presentation
// layer. Exactly one transition (login, logout, upgrade, or the startup
// check) may be in flight at a time; a second call while busy fails with
// common.ErrBusy instead of queueing.
//
// The controller performs no credential validation: callers are expected to
// run ValidateCredentials first, and any syntactically-shaped credential is
// accepted.
type Controller struct {
	store      *Store
	issuer     GrantIssuer
	log        logging.Logger
	loginDelay time.Duration

	mu      sync.Mutex
	state   State
	user    *User
	subs    map[int]func(State)
	nextSub int
}

func NewController(store *Store, issuer GrantIssuer, log logging.Logger, loginDelay time.Duration) *Controller {
	return &Controller{
		store:      store,
		issuer:     issuer,
		log:        log,
		loginDelay: loginDelay,
		subs:       make(map[int]func(State)),
	}
}

// begin moves the controller into Authenticating, failing with
// common.ErrBusy if another transition is already in flight. It returns the
// user as of the start of the transition so failure paths can restore it.
func (c *Controller) begin() (*User, error) {
	c.mu.Lock()
	if c.state == StateAuthenticating {
		c.mu.Unlock()
		return nil, common.ErrBusy
	}
	prev := c.user
	c.state = StateAuthenticating
	c.mu.Unlock()

	c.notify(StateAuthenticating)
	return prev, nil
}

// commit finishes a transition and fires subscribers with the new state.
func (c *Controller) commit(state State, u *User) {
	c.mu.Lock()
	c.state = state
	c.user = u
	c.mu.Unlock()

	c.notify(state)
}

// notify runs subscriber callbacks outside the controller lock so a
// callback may call back into the controller (it will observe either Busy
// or the committed state, never a half-applied transition).
func (c *Controller) notify(state State) {
	c.mu.Lock()
	callbacks := make([]func(State), 0, len(c.subs))
	for _, fn := range c.subs {
		callbacks = append(callbacks, fn)
	}
	c.mu.Unlock()

	for _, fn := range callbacks {
		fn(state)
	}
}

// Subscribe registers a callback fired on every state transition. The
// returned function removes the registration; the caller owns that
// lifecycle.
func (c *Controller) Subscribe(fn func(State)) func() {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

// Start resolves the initial session state from the persisted record. Any
// storage failure is downgraded to the unauthenticated state so the
// application always boots; the failure is only logged. The presentation
// layer must wait for Start before rendering auth-gated screens.
func (c *Controller) Start(ctx context.Context) error {
	if _, err := c.begin(); err != nil {
		return err
	}

	u, err := c.store.Load(ctx)
	if err != nil {
		c.log.Warn(ctx, "session restore failed, starting unauthenticated", "error", err)
		u = nil
	}

	if u == nil {
		c.commit(StateUnauthenticated, nil)
	} else {
		c.commit(StateAuthenticated, u)
	}
	return nil
}

// Login fabricates a user for the supplied email and persists it. The
// record is persisted before the in-memory state flips to Authenticated:
// if the save fails the login fails and the session reverts to
// Unauthenticated, because persistence is the source of truth, not a cache.
func (c *Controller) Login(ctx context.Context, email, password string) error {
	if _, err := c.begin(); err != nil {
		return err
	}

	// Simulated backend latency, as the mocked API had.
	if c.loginDelay > 0 {
		select {
		case <-time.After(c.loginDelay):
		case <-ctx.Done():
			c.commit(StateUnauthenticated, nil)
			return ctx.Err()
		}
	}

	u := &User{
		ID:     demoUserID,
		Name:   demoUserName,
		Email:  email,
		Avatar: demoAvatar,
	}

	if err := c.store.Save(ctx, u); err != nil {
		c.commit(StateUnauthenticated, nil)
		return fmt.Errorf("persist session: %w", err)
	}

	c.commit(StateAuthenticated, u)
	return nil
}

// Logout clears the persisted record and always ends Unauthenticated: a
// failing clear is reported for diagnostics but never blocks logging out.
// This asymmetry with Login is deliberate.
func (c *Controller) Logout(ctx context.Context) error {
	prev, err := c.begin()
	if err != nil {
		return err
	}
	if prev == nil {
		c.commit(StateUnauthenticated, nil)
		return common.ErrUnauthenticated
	}

	clearErr := c.store.Clear(ctx)
	c.commit(StateUnauthenticated, nil)

	if clearErr != nil {
		c.log.Warn(ctx, "session clear failed during logout", "error", clearErr)
		return fmt.Errorf("clear session: %w", clearErr)
	}
	return nil
}

// Upgrade attaches a premium entitlement grant to the current user and
// persists the updated record. Like Login, persistence decides: a failed
// save leaves the session exactly as it was.
func (c *Controller) Upgrade(ctx context.Context) error {
	prev, err := c.begin()
	if err != nil {
		return err
	}
	if prev == nil {
		c.commit(StateUnauthenticated, nil)
		return common.ErrUnauthenticated
	}

	grant, err := c.issuer.Issue(prev.ID)
	if err != nil {
		c.commit(StateAuthenticated, prev)
		return fmt.Errorf("issue entitlement: %w", err)
	}

	upgraded := *prev
	upgraded.Entitlement = grant

	if err := c.store.Save(ctx, &upgraded); err != nil {
		c.commit(StateAuthenticated, prev)
		return fmt.Errorf("persist session: %w", err)
	}

	c.commit(StateAuthenticated, &upgraded)
	return nil
}

// CurrentUser returns the authenticated user, or nil.
func (c *Controller) CurrentUser() *User {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.user == nil {
		return nil
	}
	u := *c.user
	return &u
}

// IsAuthenticated reports whether a user is logged in.
func (c *Controller) IsAuthenticated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == StateAuthenticated
}

// IsBusy reports whether a transition is in flight.
func (c *Controller) IsBusy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == StateAuthenticating
}
