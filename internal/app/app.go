// Package app is the text-mode presentation layer: a prompt loop over the
// session controller, catalog, and access policy. It owns input validation
// and navigation; the core packages only report state.
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/avasiljevs/learnkeeper/internal/access"
	"github.com/avasiljevs/learnkeeper/internal/catalog"
	"github.com/avasiljevs/learnkeeper/internal/config"
	"github.com/avasiljevs/learnkeeper/internal/logging"
	"github.com/avasiljevs/learnkeeper/internal/navigation"
	"github.com/avasiljevs/learnkeeper/internal/session"
)

type App struct {
	config     *config.Config
	controller *session.Controller
	policy     *access.Policy
	log        logging.Logger

	reader *bufio.Reader
	out    io.Writer

	facet catalog.Facet
}

func New(cfg *config.Config, ctrl *session.Controller, policy *access.Policy, log logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		config:     cfg,
		controller: ctrl,
		policy:     policy,
		log:        log,
		reader:     bufio.NewReader(in),
		out:        out,
		facet:      catalog.FacetAll,
	}
}

func (a *App) status() string {
	s := ""
	if u := a.controller.CurrentUser(); u != nil {
		s = u.Email
	}
	if a.facet != catalog.FacetAll {
		if s != "" {
			s += " "
		}
		s += strings.ToLower(string(a.facet))
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Run resolves the initial session state and enters the command loop. It
// returns when the user exits or input is exhausted.
func (a *App) Run(ctx context.Context) error {
	// The one required suspension point: no auth-gated screen renders
	// until the startup check resolves.
	if err := a.controller.Start(ctx); err != nil {
		return err
	}

	unsubscribe := a.controller.Subscribe(func(s session.State) {
		a.log.Debug(ctx, "session state changed", "state", s.String())
	})
	defer unsubscribe()

	fmt.Fprintln(a.out, "Welcome to learnkeeper (type 'help' for commands)")
	a.showLanding()

	for {
		fmt.Fprintf(a.out, "lk %s> ", a.status())
		line, err := a.reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if cmd == "exit" || cmd == "quit" {
			fmt.Fprintln(a.out, "Bye!")
			return nil
		}

		a.dispatch(ctx, cmd, args)
	}
}

func (a *App) dispatch(ctx context.Context, cmd string, args []string) {
	switch cmd {
	case "help":
		a.help()
	case "login":
		a.login(ctx)
	case "logout":
		a.logout(ctx)
	case "home":
		a.requireAuth(func() { a.home() })
	case "courses":
		a.requireAuth(func() { a.courses(strings.Join(args, " ")) })
	case "facet":
		a.requireAuth(func() { a.setFacet(args) })
	case "show":
		a.requireAuth(func() { a.show(args) })
	case "upgrade":
		a.requireAuth(func() { a.upgrade(ctx) })
	case "profile":
		a.requireAuth(func() { a.profile() })
	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
	}
}

func (a *App) help() {
	if a.controller.IsAuthenticated() {
		fmt.Fprintln(a.out, "Available commands: home, courses [query], facet <name>, show <id>, upgrade, profile, logout, exit")
	} else {
		fmt.Fprintln(a.out, "Available commands: login, exit")
	}
}

// showLanding renders the screen the navigation collaborator picks for the
// current session state.
func (a *App) showLanding() {
	state := session.StateUnauthenticated
	if a.controller.IsAuthenticated() {
		state = session.StateAuthenticated
	}
	switch navigation.Decide(state) {
	case navigation.ScreenHome:
		a.home()
	default:
		fmt.Fprintln(a.out, "Please 'login' to continue.")
	}
}

// requireAuth gates content screens behind an authenticated session.
func (a *App) requireAuth(fn func()) {
	if !a.controller.IsAuthenticated() {
		fmt.Fprintln(a.out, "Please 'login' first.")
		return
	}
	fn()
}
