package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-c", "conf.json", "-u", "http://localhost"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-c", "conf.json"},
		},
		{
			name:         "equals form",
			args:         []string{"-config=alt.json", "-u", "http://localhost"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-config=alt.json"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "flag without value at end is kept as-is",
			args:         []string{"-c"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "next dash token is not a value",
			args:         []string{"-c", "-notvalue"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "value that looks like a flag in equals form",
			args:         []string{"-config=--weird.json"},
			allowedFlags: []string{"-config"},
			want:         []string{"-config=--weird.json"},
		},
		{
			name:         "several allowed flags keep their order",
			args:         []string{"-s", "redis", "-c", "conf.json", "--other", "x", "-t", "5"},
			allowedFlags: []string{"-s", "-c", "-t"},
			want:         []string{"-s", "redis", "-c", "conf.json", "-t", "5"},
		},
		{
			name:         "empty args",
			args:         []string{},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestConfigFile(t *testing.T) {
	t.Run("short -c", func(t *testing.T) {
		t.Setenv(ConfigFileEnv, "")
		assert.Equal(t, "/path/short.json", ConfigFile([]string{"-c", "/path/short.json"}))
	})

	t.Run("long -config", func(t *testing.T) {
		t.Setenv(ConfigFileEnv, "")
		assert.Equal(t, "/path/long.json", ConfigFile([]string{"-config", "/path/long.json"}))
	})

	t.Run("last wins", func(t *testing.T) {
		t.Setenv(ConfigFileEnv, "")
		assert.Equal(t, "/2.json", ConfigFile([]string{"-c", "/1.json", "-config", "/2.json"}))
	})

	t.Run("env fallback", func(t *testing.T) {
		t.Setenv(ConfigFileEnv, "/from/env.json")
		assert.Equal(t, "/from/env.json", ConfigFile([]string{"-x", "1"}))
	})

	t.Run("flag beats env", func(t *testing.T) {
		t.Setenv(ConfigFileEnv, "/from/env.json")
		assert.Equal(t, "/flag.json", ConfigFile([]string{"-c", "/flag.json"}))
	})

	t.Run("nothing given", func(t *testing.T) {
		t.Setenv(ConfigFileEnv, "")
		assert.Empty(t, ConfigFile(nil))
	})
}
