// Package config loads runtime configuration for the address book client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables ADDRESSBOOK_*; a .env file in the working
//     directory fills in whatever the process environment does not set.
//  3. Optional JSON file selected with -c or -config (or ADDRESSBOOK_CONFIG).
//  4. Command-line flags, which override everything above.
//
// Supported flags
//
//	-u string     API base URL (default https://dummyjson.com)
//	-s string     storage backend: sqlite, redis, memory
//	-d string     data directory
//	-r string     redis address
//	-t duration   request timeout
//	-l string     log level
//
// Environment
//
//	ADDRESSBOOK_API_URL, ADDRESSBOOK_STORAGE, ADDRESSBOOK_DATA_DIR,
//	ADDRESSBOOK_DB_FILE, ADDRESSBOOK_REDIS_ADDR, ADDRESSBOOK_REDIS_PASSWORD,
//	ADDRESSBOOK_REDIS_DB, ADDRESSBOOK_REDIS_PREFIX,
//	ADDRESSBOOK_REQUEST_TIMEOUT, ADDRESSBOOK_LOG_LEVEL
//
// # JSON schema
//
// Intervals use timex.Duration, so they may be strings like "5s" or integer
// nanoseconds. Keys that are missing leave the current value alone:
//
//	{
//	  "api_base_url": "http://127.0.0.1:8080",
//	  "storage": "redis",
//	  "redis_addr": "127.0.0.1:6379",
//	  "redis_db": 2,
//	  "request_timeout": "5s"
//	}
package config
