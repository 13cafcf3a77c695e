package models

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rawEmily = `{"id":1,"firstName":"Emily","lastName":"Johnson","email":"emily.johnson@x.dummyjson.com",
"phone":"+81 965-431-3024","university":"University of Wisconsin--Madison","image":"https://dummyjson.com/icon/emilys/128",
"hair":{"color":"Brown","type":"Curly"},"address":{"city":"Phoenix","state":"Mississippi"}}`

func TestNewDirectoryEntry_Projects(t *testing.T) {
	e, err := NewDirectoryEntry(jsoniter.RawMessage(rawEmily))
	require.NoError(t, err)

	assert.Equal(t, 1, e.ID)
	assert.Equal(t, "Emily Johnson", e.Name)
	assert.Equal(t, "emily.johnson@x.dummyjson.com", e.Email)
	assert.Equal(t, "+81 965-431-3024", e.Phone)
	assert.Equal(t, "University of Wisconsin--Madison", e.University)
	assert.Equal(t, "https://dummyjson.com/icon/emilys/128", e.Image)
	assert.JSONEq(t, rawEmily, string(e.Raw))
}

func TestNewDirectoryEntry_BadJSON(t *testing.T) {
	_, err := NewDirectoryEntry(jsoniter.RawMessage(`{"id":"one"`))
	require.ErrorContains(t, err, "decode user")
}

func TestDirectoryEntry_String(t *testing.T) {
	e := DirectoryEntry{ID: 7, Name: "Ann Lee", Email: "ann@example.com", Phone: "+1 555"}
	s := e.String()
	assert.Contains(t, s, "#7")
	assert.Contains(t, s, "Ann Lee")
	assert.Contains(t, s, "ann@example.com")
}

func TestUser_RoundTripAndFullName(t *testing.T) {
	u := User{ID: 1, Username: "emilys", FirstName: "Emily", LastName: "Johnson",
		Address: &Address{City: "Phoenix"}, AccessToken: "tok"}

	b, err := jsoniter.Marshal(u)
	require.NoError(t, err)

	var got User
	require.NoError(t, jsoniter.Unmarshal(b, &got))
	assert.Equal(t, u, got)
	assert.Equal(t, "Emily Johnson", got.FullName())
	assert.Equal(t, "Emily", (&User{FirstName: "Emily"}).FullName())
}
