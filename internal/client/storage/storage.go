// Package storage is the key-value adapter under the session and favourites
// services. A Store maps string keys to opaque byte values; the services put
// JSON text in them.
//
// Backends
//
//   - SQLiteStore: default, a single kv table in a local SQLite file whose
//     schema is applied with embedded goose migrations.
//   - RedisStore:  keys live under a configurable prefix in a Redis database.
//   - MemoryStore: process-local map, used by tests and "-s memory".
//
// Contract
//
// Get returns (nil, nil) for an absent key. Delete is idempotent. Clear
// removes every key owned by the store. Errors wrap the driver error and
// name the key: "failed to get kv[userData]: ...".
//
// Every backend also implements Updater, which runs a read-modify-write
// step atomically with respect to other Update calls on the same key.
package storage

import (
	"context"
	"fmt"
)

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
	Close() error
}

// UpdateFunc receives the current value (nil when absent) and returns the
// value to store. Returning an error aborts the update and nothing is written.
type UpdateFunc func(old []byte) ([]byte, error)

type Updater interface {
	Update(ctx context.Context, key string, fn UpdateFunc) error
}

// Backend names accepted by Open.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Options selects and configures a backend for Open.
type Options struct {
	Backend       string
	SQLitePath    string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string
}

// Open builds the Store named by opts.Backend.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Backend {
	case BackendSQLite, "":
		return OpenSQLite(ctx, opts.SQLitePath)
	case BackendRedis:
		return OpenRedis(ctx, opts.RedisAddr, opts.RedisPassword, opts.RedisDB, opts.RedisPrefix)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", opts.Backend)
	}
}
