// Package cli provides the interactive address book client.
//
// It wires configuration, the key-value store, the directory API client and
// the services into a REPL. The shell picks its stack from the persisted
// session: with a stored user it opens straight on the home commands,
// otherwise it asks for credentials first.
//
// Commands:
//   - login / logout
//   - users (reload), list, search, filter, clear, keys
//   - fav <id> (toggle), favs
//   - profile
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
