// Package client talks to the remote directory API.
//
// # Overview
//
// The Client interface is what the services depend on: Login posts
// credentials to /auth/login and returns the user record, ListUsers fetches
// /users and returns the raw records untouched, and Ping checks that the
// API answers at all. HTTPClient is the net/http implementation; JSON is
// handled by json-iterator.
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable. A non-2xx response becomes an
// *APIError carrying the server's message; 400 and 401 additionally match
// ErrUnauthorized. A users response without a "users" array is ErrNoData.
// UserMessage turns any of these into the text the CLI prints.
//
// Nothing is retried or cached here.
package client
