package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/addressbook/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-u string     API base URL
//	-s string     storage backend (sqlite, redis, memory)
//	-d string     data directory for the SQLite file
//	-r string     redis address
//	-t duration   request timeout, e.g. 5s
//	-l string     log level
//
// args is filtered with flagx.FilterArgs first so flags owned by other
// loaders (-c) do not make parsing fail.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-u", "-s", "-d", "-r", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "u", cfg.APIBaseURL, "base URL of the directory API")
	fs.StringVar(&cfg.Storage, "s", cfg.Storage, "storage backend: sqlite, redis or memory")
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "redis address")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "request timeout")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	return fs.Parse(args)
}
