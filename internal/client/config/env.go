package config

import (
	"errors"
	"io/fs"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// envFile is read, when present, as a fallback for variables missing from
// the process environment.
var envFile = ".env"

const envPrefix = "ADDRESSBOOK_"

type lookupFunc func(key string) (string, bool)

// parseEnv overlays cfg with ADDRESSBOOK_* variables. Values in the real
// environment shadow those in the .env file.
func parseEnv(cfg *Config, file string, lookup lookupFunc) error {
	dotenv := map[string]string{}
	if file != "" {
		m, err := godotenv.Read(file)
		switch {
		case err == nil:
			dotenv = m
		case !errors.Is(err, fs.ErrNotExist):
			return err
		}
	}

	get := func(name string) (string, bool) {
		if v, ok := lookup(envPrefix + name); ok {
			return v, true
		}
		v, ok := dotenv[envPrefix+name]
		return v, ok
	}

	strs := map[string]*string{
		"API_URL":        &cfg.APIBaseURL,
		"STORAGE":        &cfg.Storage,
		"DATA_DIR":       &cfg.DataDir,
		"DB_FILE":        &cfg.DatabaseFile,
		"REDIS_ADDR":     &cfg.RedisAddr,
		"REDIS_PASSWORD": &cfg.RedisPassword,
		"REDIS_PREFIX":   &cfg.RedisPrefix,
		"LOG_LEVEL":      &cfg.LogLevel,
	}
	for name, dst := range strs {
		if v, ok := get(name); ok {
			*dst = v
		}
	}

	if v, ok := get("REDIS_DB"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		cfg.RedisDB = n
	}

	if v, ok := get("REQUEST_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return err
		}
		cfg.RequestTimeout = d
	}

	return nil
}
