package services

import (
	"testing"

	"github.com/dmitrijs2005/addressbook/internal/client/directory"
	"github.com/dmitrijs2005/addressbook/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilter(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		want    directory.Query
		wantMsg string
	}{
		{name: "by path", key: "hair.color", value: "Brown", want: directory.Query{Key: "hair.color", Value: "Brown"}},
		{name: "trimmed", key: " address.city ", value: "  Phoenix ", want: directory.Query{Key: "address.city", Value: "Phoenix"}},
		{name: "missing key", key: "", value: "x", wantMsg: "Please choose a filter"},
		{name: "unknown key", key: "password", value: "x", wantMsg: "Unknown filter"},
		{name: "missing value", key: "email", value: "   ", wantMsg: "Please enter a value"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFilter(tt.key, tt.value)
			if tt.wantMsg != "" {
				require.ErrorIs(t, err, common.ErrValidation)
				assert.EqualError(t, err, tt.wantMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFilter_AcceptsLabel(t *testing.T) {
	k := directory.FilterKeys[0]
	got, err := ParseFilter(k.Label, "a")
	require.NoError(t, err)
	assert.Equal(t, k.Path, got.Key)
}
