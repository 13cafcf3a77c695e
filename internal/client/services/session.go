package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/addressbook/internal/client/models"
	"github.com/dmitrijs2005/addressbook/internal/client/storage"
	"github.com/dmitrijs2005/addressbook/internal/common"
	"github.com/dmitrijs2005/addressbook/internal/logging"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Session is the explicit login context handed from the session service to
// the navigation shell and the screens. The zero value means logged out.
type Session struct {
	ID        string
	User      *models.User
	StartedAt time.Time
	// ExpiresAt is the access token's exp claim; zero when the token is
	// missing or carries no expiry.
	ExpiresAt time.Time
}

func (s Session) Active() bool {
	return s.User != nil
}

// SessionService owns the persisted session record.
//
// Contract:
//   - SetUserData: persist user under userData and return the new Session.
//   - GetUserData: read it back; common.ErrNotFound if absent or unparsable.
//   - Restore:     rebuild a Session from the stored record (start-up).
//   - Clear:       wipe the whole store (logout).
type SessionService interface {
	SetUserData(ctx context.Context, user *models.User) (Session, error)
	GetUserData(ctx context.Context) (*models.User, error)
	Restore(ctx context.Context) (Session, error)
	Clear(ctx context.Context) error
}

type sessionService struct {
	store storage.Store
	log   logging.Logger
	now   func() time.Time
}

func NewSessionService(store storage.Store, log logging.Logger) SessionService {
	return &sessionService{store: store, log: log, now: time.Now}
}

func (s *sessionService) SetUserData(ctx context.Context, user *models.User) (Session, error) {
	data, err := json.Marshal(user)
	if err != nil {
		return Session{}, fmt.Errorf("encode user data: %w", err)
	}
	if err := s.store.Set(ctx, common.KeyUserData, data); err != nil {
		return Session{}, fmt.Errorf("save user data: %w", err)
	}
	return s.newSession(user), nil
}

func (s *sessionService) GetUserData(ctx context.Context) (*models.User, error) {
	data, err := s.store.Get(ctx, common.KeyUserData)
	if err != nil {
		return nil, fmt.Errorf("read user data: %w", err)
	}
	if data == nil {
		return nil, fmt.Errorf("user data: %w", common.ErrNotFound)
	}

	var u models.User
	if err := json.Unmarshal(data, &u); err != nil {
		s.log.Warn(ctx, "stored user data is unreadable", "error", err)
		return nil, fmt.Errorf("user data: %w", common.ErrNotFound)
	}
	return &u, nil
}

func (s *sessionService) Restore(ctx context.Context) (Session, error) {
	u, err := s.GetUserData(ctx)
	if err != nil {
		return Session{}, err
	}
	return s.newSession(u), nil
}

func (s *sessionService) Clear(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear storage: %w", err)
	}
	return nil
}

func (s *sessionService) newSession(u *models.User) Session {
	return Session{
		ID:        uuid.NewString(),
		User:      u,
		StartedAt: s.now(),
		ExpiresAt: tokenExpiry(u.AccessToken),
	}
}

// tokenExpiry reads the exp claim without verifying the signature; the
// client never holds the signing key.
func tokenExpiry(token string) time.Time {
	if token == "" {
		return time.Time{}
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
