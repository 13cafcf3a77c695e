package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds runtime settings for the address book client.
//
// Fields:
//   - APIBaseURL: root of the remote directory API.
//   - Storage: key-value backend, one of sqlite, redis, memory.
//   - DataDir, DatabaseFile: where the SQLite file lives.
//   - RedisAddr, RedisPassword, RedisDB, RedisPrefix: Redis backend settings.
//   - RequestTimeout: per-call budget for HTTP and storage operations.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	APIBaseURL     string
	Storage        string
	DataDir        string
	DatabaseFile   string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	RedisPrefix    string
	RequestTimeout time.Duration
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://dummyjson.com"
	c.Storage = "sqlite"
	c.DataDir = "./data"
	c.DatabaseFile = "addressbook.db"
	c.RedisAddr = "127.0.0.1:6379"
	c.RedisPassword = ""
	c.RedisDB = 0
	c.RedisPrefix = "addressbook:"
	c.RequestTimeout = 10 * time.Second
	c.LogLevel = "warn"
}

// Load builds a Config from defaults, the environment (with an optional
// .env file underneath it), the JSON file named by -c/-config and finally
// the flags in args. Later sources win.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg, envFile, os.LookupEnv); err != nil {
		return nil, fmt.Errorf("env: %w", err)
	}
	if err := parseJson(cfg, args); err != nil {
		return nil, fmt.Errorf("json config: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}

// LoadConfig is Load over os.Args. It panics on a bad source, since the
// client cannot start without a usable configuration.
func LoadConfig() *Config {
	cfg, err := Load(os.Args[1:])
	if err != nil {
		panic(err)
	}
	return cfg
}
