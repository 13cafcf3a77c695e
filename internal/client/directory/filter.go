// Package directory holds the pure list operations behind the users and
// favourites views: name search, dot-path field filter and the favourites
// join. Nothing here does I/O.
package directory

import (
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/addressbook/internal/client/models"
	jsoniter "github.com/json-iterator/go"
)

// FilterKey is a field of the raw user record the list can be filtered on.
type FilterKey struct {
	Label string
	Path  string
}

var FilterKeys = []FilterKey{
	{Label: "First Name", Path: "firstName"},
	{Label: "Last Name", Path: "lastName"},
	{Label: "Email", Path: "email"},
	{Label: "Phone", Path: "phone"},
	{Label: "University", Path: "university"},
	{Label: "Hair Color", Path: "hair.color"},
	{Label: "Hair Type", Path: "hair.type"},
	{Label: "City", Path: "address.city"},
	{Label: "State", Path: "address.state"},
}

// DefaultFilterKey is selected when a filter is cleared.
var DefaultFilterKey = FilterKeys[0].Path

// Query is the view state of the users list. Empty Search or Value turns
// the corresponding predicate off.
type Query struct {
	Search string
	Key    string
	Value  string
}

// Active reports whether any predicate is on.
func (q Query) Active() bool {
	return q.Search != "" || q.Value != ""
}

// Apply returns the entries matching both predicates, in input order.
func Apply(entries []models.DirectoryEntry, q Query) []models.DirectoryEntry {
	search := strings.ToLower(q.Search)
	value := strings.ToLower(q.Value)

	out := make([]models.DirectoryEntry, 0, len(entries))
	for _, e := range entries {
		if search != "" && !strings.Contains(strings.ToLower(e.Name), search) {
			continue
		}
		if value != "" {
			field, ok := NestedValue(e.Raw, q.Key)
			if !ok || !strings.Contains(strings.ToLower(field), value) {
				continue
			}
		}
		out = append(out, e)
	}
	return out
}

// NestedValue resolves a dot path such as "address.city" inside raw and
// returns it as text. Strings are returned as is, numbers and booleans are
// formatted; objects, arrays, null and missing paths report false.
func NestedValue(raw jsoniter.RawMessage, path string) (string, bool) {
	if len(raw) == 0 || path == "" {
		return "", false
	}

	parts := strings.Split(path, ".")
	keys := make([]any, len(parts))
	for i, p := range parts {
		keys[i] = p
	}

	v := jsoniter.Get(raw, keys...)
	switch v.ValueType() {
	case jsoniter.StringValue:
		return v.ToString(), true
	case jsoniter.NumberValue:
		return strconv.FormatFloat(v.ToFloat64(), 'f', -1, 64), true
	case jsoniter.BoolValue:
		return strconv.FormatBool(v.ToBool()), true
	default:
		return "", false
	}
}

// Favourites returns the entries whose id is in ids, keeping list order.
func Favourites(entries []models.DirectoryEntry, ids []int) []models.DirectoryEntry {
	out := make([]models.DirectoryEntry, 0, len(ids))
	for _, e := range entries {
		if slices.Contains(ids, e.ID) {
			out = append(out, e)
		}
	}
	return out
}

// FindKey looks up a filter key by path or by label, case-insensitively.
func FindKey(name string) (FilterKey, bool) {
	for _, k := range FilterKeys {
		if strings.EqualFold(k.Path, name) || strings.EqualFold(k.Label, name) {
			return k, true
		}
	}
	return FilterKey{}, false
}
