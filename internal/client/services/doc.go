// Package services contains the application services of the addressbook
// client: the session record, the favourites set, the login/logout flow and
// the directory loader. Services depend on the storage.Store and
// client.Client interfaces and log through logging.Logger.
package services
