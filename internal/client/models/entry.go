package models

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// DirectoryEntry is the list projection of a remote user. Raw keeps the
// complete record so filters can address any nested field.
type DirectoryEntry struct {
	ID         int
	Name       string
	Email      string
	Phone      string
	University string
	Image      string
	Raw        jsoniter.RawMessage
}

// NewDirectoryEntry projects a raw user record.
func NewDirectoryEntry(raw jsoniter.RawMessage) (DirectoryEntry, error) {
	var u User
	if err := jsoniter.Unmarshal(raw, &u); err != nil {
		return DirectoryEntry{}, fmt.Errorf("decode user: %w", err)
	}
	return DirectoryEntry{
		ID:         u.ID,
		Name:       u.FirstName + " " + u.LastName,
		Email:      u.Email,
		Phone:      u.Phone,
		University: u.University,
		Image:      u.Image,
		Raw:        raw,
	}, nil
}

func (e DirectoryEntry) String() string {
	return fmt.Sprintf("#%-4d %-28s %-34s %s", e.ID, e.Name, e.Email, e.Phone)
}
