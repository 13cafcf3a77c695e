package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	s := ""
	if a.isLoggedIn() {
		s = a.session.User.Username
	}
	if a.Mode != "" {
		if s != "" {
			s += " "
		}
		s += string(a.Mode)
	}
	if a.query.Active() {
		s += " filtered"
	}
	if s != "" {
		s = fmt.Sprintf(" (%s)", s)
	}
	return s
}

// Root is the navigation shell. A stored session opens the home stack
// directly; without one the user is asked to log in before the REPL starts.
func (a *App) Root(ctx context.Context) {
	a.println("Welcome to the address book (type 'help' for commands)")

	pingCtx, cancel := a.callCtx(ctx)
	if err := a.authService.Ping(pingCtx); err != nil {
		a.log.Warn(ctx, "directory API unreachable", "error", err)
		a.setMode(ctx, ModeOffline)
		a.println("The directory service is unreachable; the user list will not load")
	} else {
		a.setMode(ctx, ModeOnline)
	}
	cancel()

	a.restoreSession(ctx)
	if !a.isLoggedIn() {
		_ = a.Login(ctx)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) restoreSession(ctx context.Context) {
	callCtx, cancel := a.callCtx(ctx)
	defer cancel()

	s, err := a.sessionService.Restore(callCtx)
	if err != nil {
		a.log.Debug(ctx, "no stored session", "error", err)
		return
	}

	a.session = s
	a.printf("Welcome back, %s\n", displayName(s.User.FullName(), s.User.Username))
	if !s.ExpiresAt.IsZero() && s.ExpiresAt.Before(a.now()) {
		a.println("Your access token has expired; log out and in again if the API rejects requests")
	}
}
