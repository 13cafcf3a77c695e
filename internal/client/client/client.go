package client

import (
	"context"

	"github.com/dmitrijs2005/addressbook/internal/client/models"
	jsoniter "github.com/json-iterator/go"
)

// Page selects a slice of the remote user list. Limit 0 asks for every
// user; Select, when non-empty, is a comma separated list of fields.
type Page struct {
	Limit  int
	Skip   int
	Select string
}

type Client interface {
	Login(ctx context.Context, creds models.Credentials) (*models.User, error)
	ListUsers(ctx context.Context, page Page) ([]jsoniter.RawMessage, error)
	Ping(ctx context.Context) error
}
