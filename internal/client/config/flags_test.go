package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    func(c *Config)
		wantErr bool
	}{
		{
			name: "all flags",
			args: []string{"-u", "http://127.0.0.1:8080", "-s", "redis", "-d", "/tmp/x", "-r", "r:1", "-t", "2s", "-l", "debug"},
			want: func(c *Config) {
				c.APIBaseURL = "http://127.0.0.1:8080"
				c.Storage = "redis"
				c.DataDir = "/tmp/x"
				c.RedisAddr = "r:1"
				c.RequestTimeout = 2 * time.Second
				c.LogLevel = "debug"
			},
		},
		{
			name: "foreign flags are ignored",
			args: []string{"-c", "cfg.json", "-s=memory", "--verbose"},
			want: func(c *Config) { c.Storage = "memory" },
		},
		{name: "incorrect timeout", args: []string{"-t", "abc"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			err := parseFlags(&cfg, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			want := defaults()
			tt.want(&want)
			assert.Empty(t, cmp.Diff(want, cfg))
		})
	}
}
