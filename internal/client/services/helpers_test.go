package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/addressbook/internal/client/client"
	"github.com/dmitrijs2005/addressbook/internal/client/models"
	"github.com/dmitrijs2005/addressbook/internal/client/storage"
	jsoniter "github.com/json-iterator/go"
)

var errStore = errors.New("storage unavailable")

// brokenStore fails every call.
type brokenStore struct{}

func (brokenStore) Get(context.Context, string) ([]byte, error)     { return nil, errStore }
func (brokenStore) Set(context.Context, string, []byte) error       { return errStore }
func (brokenStore) Delete(context.Context, string) error            { return errStore }
func (brokenStore) List(context.Context) (map[string][]byte, error) { return nil, errStore }
func (brokenStore) Clear(context.Context) error                     { return errStore }
func (brokenStore) Close() error                                    { return nil }

// plainStore hides MemoryStore.Update so the get/set fallback is used.
type plainStore struct {
	m *storage.MemoryStore
}

func newPlainStore() plainStore { return plainStore{m: storage.NewMemoryStore()} }

func (p plainStore) Get(ctx context.Context, k string) ([]byte, error) { return p.m.Get(ctx, k) }
func (p plainStore) Set(ctx context.Context, k string, v []byte) error { return p.m.Set(ctx, k, v) }
func (p plainStore) Delete(ctx context.Context, k string) error        { return p.m.Delete(ctx, k) }
func (p plainStore) List(ctx context.Context) (map[string][]byte, error) {
	return p.m.List(ctx)
}
func (p plainStore) Clear(ctx context.Context) error { return p.m.Clear(ctx) }
func (p plainStore) Close() error                    { return nil }

// fakeClient implements client.Client for unit tests.
type fakeClient struct {
	loginUser  *models.User
	loginErr   error
	loginCalls int
	lastCreds  models.Credentials

	users    []jsoniter.RawMessage
	usersErr error
	lastPage client.Page

	pingErr error
}

func (f *fakeClient) Login(_ context.Context, creds models.Credentials) (*models.User, error) {
	f.loginCalls++
	f.lastCreds = creds
	return f.loginUser, f.loginErr
}

func (f *fakeClient) ListUsers(_ context.Context, page client.Page) ([]jsoniter.RawMessage, error) {
	f.lastPage = page
	return f.users, f.usersErr
}

func (f *fakeClient) Ping(context.Context) error { return f.pingErr }
