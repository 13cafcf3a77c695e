package stubapi

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/addressbook/internal/flagx"
)

// Config holds runtime settings for the stub API server.
//
// Fields:
//   - Addr: listen address.
//   - SecretKey: HMAC secret for the issued JWTs (HS256).
//   - ShutdownTimeout: grace period for in-flight requests on exit.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	Addr            string
	SecretKey       string
	ShutdownTimeout time.Duration
	LogLevel        string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.Addr = "127.0.0.1:8080"
	c.SecretKey = "secretKey"
	c.ShutdownTimeout = 5 * time.Second
	c.LogLevel = "info"
}

// LoadConfig applies defaults and then the flags in args:
//
//	-a string   listen address
//	-k string   token signing secret
//	-l string   log level
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	fs := flag.NewFlagSet("stubapi", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.Addr, "a", cfg.Addr, "listen address")
	fs.StringVar(&cfg.SecretKey, "k", cfg.SecretKey, "token signing secret")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(flagx.FilterArgs(args, []string{"-a", "-k", "-l"})); err != nil {
		return nil, err
	}
	return cfg, nil
}
