package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/addressbook/internal/client/client"
	"github.com/dmitrijs2005/addressbook/internal/logging"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectoryLoad_FetchesEverything(t *testing.T) {
	fc := &fakeClient{users: []jsoniter.RawMessage{
		jsoniter.RawMessage(`{"id":1,"firstName":"Emily","lastName":"Johnson","email":"e@x.com"}`),
		jsoniter.RawMessage(`{"id":"oops"}`),
		jsoniter.RawMessage(`{"id":2,"firstName":"Michael","lastName":"Williams"}`),
	}}

	entries, err := NewDirectoryService(fc, logging.Nop()).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, client.Page{Limit: 0}, fc.lastPage)

	require.Len(t, entries, 2)
	assert.Equal(t, "Emily Johnson", entries[0].Name)
	assert.Equal(t, "e@x.com", entries[0].Email)
	assert.Equal(t, 2, entries[1].ID)
}

func TestDirectoryLoad_Empty(t *testing.T) {
	entries, err := NewDirectoryService(&fakeClient{}, logging.Nop()).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDirectoryLoad_PropagatesClientError(t *testing.T) {
	fc := &fakeClient{usersErr: client.ErrNoData}

	entries, err := NewDirectoryService(fc, logging.Nop()).Load(context.Background())
	require.ErrorIs(t, err, client.ErrNoData)
	assert.Nil(t, entries)
}
