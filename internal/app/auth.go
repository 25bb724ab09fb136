package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/avasiljevs/learnkeeper/internal/common"
	"github.com/avasiljevs/learnkeeper/internal/session"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// login prompts for credentials, validates their shape, and asks the
// controller to sign in. Input that fails validation never reaches the
// controller or the session store.
func (a *App) login(ctx context.Context) {
	if a.controller.IsAuthenticated() {
		fmt.Fprintln(a.out, "Already signed in.")
		return
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	password, err := getPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	defer common.WipeByteArray(password)

	if err := session.ValidateCredentials(email, string(password)); err != nil {
		fmt.Fprintln(a.out, err)
		return
	}

	if err := a.controller.Login(ctx, email, string(password)); err != nil {
		if errors.Is(err, common.ErrBusy) {
			fmt.Fprintln(a.out, "Another operation is in progress.")
			return
		}
		fmt.Fprintf(a.out, "Sign in failed: %v\n", err)
		return
	}

	fmt.Fprintf(a.out, "Signed in as %s\n", email)
	a.home()
}

func (a *App) logout(ctx context.Context) {
	err := a.controller.Logout(ctx)
	switch {
	case errors.Is(err, common.ErrUnauthenticated):
		fmt.Fprintln(a.out, "Not signed in.")
		return
	case errors.Is(err, common.ErrBusy):
		fmt.Fprintln(a.out, "Another operation is in progress.")
		return
	case err != nil:
		// Logged out regardless; the storage failure is diagnostics only.
		a.log.Warn(ctx, "logout completed with storage failure", "error", err)
	}
	fmt.Fprintln(a.out, "Signed out.")
}

// upgrade turns the "Upgrade Now" affordance into a real operation: it
// attaches a premium entitlement grant to the session.
func (a *App) upgrade(ctx context.Context) {
	if err := a.controller.Upgrade(ctx); err != nil {
		if errors.Is(err, common.ErrBusy) {
			fmt.Fprintln(a.out, "Another operation is in progress.")
			return
		}
		fmt.Fprintf(a.out, "Upgrade failed: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Upgraded! Premium courses are now unlocked.")
}
