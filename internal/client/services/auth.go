package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/addressbook/internal/client/client"
	"github.com/dmitrijs2005/addressbook/internal/client/models"
	"github.com/dmitrijs2005/addressbook/internal/logging"
)

// AuthService drives the login and logout flows.
//
// Contract:
//   - Login:  trim and validate credentials (a *ValidationError comes back
//     before any network call), authenticate remotely, persist the session.
//   - Logout: clear every persisted key.
//   - Ping:   check the remote API answers.
type AuthService interface {
	Login(ctx context.Context, username, password string) (Session, error)
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
}

type authService struct {
	client   client.Client
	sessions SessionService
	log      logging.Logger
}

func NewAuthService(c client.Client, sessions SessionService, log logging.Logger) AuthService {
	return &authService{client: c, sessions: sessions, log: log}
}

func (a *authService) Login(ctx context.Context, username, password string) (Session, error) {
	creds := models.Credentials{
		Username: strings.TrimSpace(username),
		Password: strings.TrimSpace(password),
	}
	if err := validateStruct(creds); err != nil {
		return Session{}, err
	}

	user, err := a.client.Login(ctx, creds)
	if err != nil {
		a.log.Warn(ctx, "login failed", "username", creds.Username, "error", err)
		return Session{}, fmt.Errorf("login: %w", err)
	}

	session, err := a.sessions.SetUserData(ctx, user)
	if err != nil {
		return Session{}, err
	}

	a.log.Info(ctx, "logged in", "username", user.Username, "session", session.ID)
	return session, nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.sessions.Clear(ctx); err != nil {
		a.log.Error(ctx, "error clearing storage", "error", err)
		return err
	}
	a.log.Info(ctx, "logged out")
	return nil
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}
