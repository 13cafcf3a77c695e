package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/addressbook/internal/client/client"
	"github.com/dmitrijs2005/addressbook/internal/client/directory"
	"github.com/dmitrijs2005/addressbook/internal/client/services"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for a username and password and authenticates against the
// directory API. Validation problems are printed before anything is sent;
// API rejections print the server's message, anything else "Login failed".
// On success the session becomes active and the home commands unlock.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	callCtx, cancel := a.callCtx(ctx)
	defer cancel()

	session, err := a.authService.Login(callCtx, userName, password)
	if err != nil {
		var verr *services.ValidationError
		switch {
		case errors.As(err, &verr):
			a.println(verr.Message)
		case errors.Is(err, client.ErrUnavailable):
			a.setMode(ctx, ModeOffline)
			a.println("Login failed: the directory service is unreachable")
		default:
			a.println(client.UserMessage(err, "Login failed"))
		}
		return err
	}

	a.setMode(ctx, ModeOnline)
	a.session = session
	a.printf("Welcome, %s\n", displayName(session.User.FullName(), session.User.Username))
	return nil
}

// Logout wipes the store and drops the in-memory session and list state,
// returning the shell to the login stack.
func (a *App) Logout(ctx context.Context) error {
	callCtx, cancel := a.callCtx(ctx)
	defer cancel()

	if err := a.authService.Logout(callCtx); err != nil {
		a.println("Logout failed:", err)
		return err
	}

	a.session = services.Session{}
	a.entries = nil
	a.query = directory.Query{Key: directory.DefaultFilterKey}
	a.println("Logged out")
	return nil
}
