package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/addressbook/internal/client/client"
	"github.com/dmitrijs2005/addressbook/internal/client/directory"
	"github.com/dmitrijs2005/addressbook/internal/client/models"
	"github.com/dmitrijs2005/addressbook/internal/client/services"
)

// Users reloads the full user list from the API and renders it.
func (a *App) Users(ctx context.Context) error {
	if err := a.load(ctx); err != nil {
		return err
	}
	return a.List(ctx)
}

func (a *App) load(ctx context.Context) error {
	callCtx, cancel := a.callCtx(ctx)
	defer cancel()

	entries, err := a.directoryService.Load(callCtx)
	if err != nil {
		if errors.Is(err, client.ErrUnavailable) {
			a.setMode(ctx, ModeOffline)
		}
		a.println(client.UserMessage(err, "Failed to load users"))
		return err
	}
	a.setMode(ctx, ModeOnline)
	a.entries = entries
	return nil
}

// List renders the current view: the loaded list narrowed by the search
// text and the field filter. The list is fetched on first use.
func (a *App) List(ctx context.Context) error {
	if a.entries == nil {
		if err := a.load(ctx); err != nil {
			return err
		}
	}

	view := directory.Apply(a.entries, a.query)
	if a.query.Active() {
		a.println(describeQuery(a.query))
	}
	a.render(ctx, view, "No users found")
	return nil
}

// Search sets the name search (empty text turns it off) and re-renders.
func (a *App) Search(ctx context.Context, text string) error {
	a.query.Search = strings.TrimSpace(text)
	return a.List(ctx)
}

// Filter validates the key and value, applies them and re-renders.
func (a *App) Filter(ctx context.Context, key, value string) error {
	q, err := services.ParseFilter(key, value)
	if err != nil {
		a.println(err.Error())
		return err
	}
	a.query.Key, a.query.Value = q.Key, q.Value
	return a.List(ctx)
}

// ClearFilter resets search, filter key and value.
func (a *App) ClearFilter(ctx context.Context) error {
	a.query = directory.Query{Key: directory.DefaultFilterKey}
	a.println("Search and filter cleared")
	return a.List(ctx)
}

// Keys prints the fields the list can be filtered on.
func (a *App) Keys(context.Context) error {
	for _, k := range directory.FilterKeys {
		a.printf("  %-14s %s\n", k.Path, k.Label)
	}
	return nil
}

func (a *App) render(ctx context.Context, entries []models.DirectoryEntry, empty string) {
	if len(entries) == 0 {
		a.println(empty)
		return
	}

	favs := a.favouritesService.GetFavourites(ctx)
	for _, e := range entries {
		mark := " "
		for _, id := range favs {
			if id == e.ID {
				mark = "*"
				break
			}
		}
		a.println(mark, e.String())
	}
	a.printf("%d user(s)\n", len(entries))
}

func describeQuery(q directory.Query) string {
	var parts []string
	if q.Search != "" {
		parts = append(parts, "name contains "+quote(q.Search))
	}
	if q.Value != "" {
		parts = append(parts, q.Key+" contains "+quote(q.Value))
	}
	return "Showing users where " + strings.Join(parts, " and ")
}

func quote(s string) string {
	return `"` + s + `"`
}
