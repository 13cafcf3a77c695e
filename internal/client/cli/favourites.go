package cli

import (
	"context"
	"slices"
	"strconv"

	"github.com/dmitrijs2005/addressbook/internal/client/directory"
)

// Fav toggles the favourite flag of the user with the given id.
func (a *App) Fav(ctx context.Context, arg string) error {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		a.println("Please enter a numeric user id")
		return err
	}

	callCtx, cancel := a.callCtx(ctx)
	defer cancel()

	favs, err := a.favouritesService.ToggleFavourite(callCtx, id)
	if err != nil {
		a.println("Could not update favourites")
		return err
	}

	if slices.Contains(favs, id) {
		a.printf("Added #%d to favourites\n", id)
	} else {
		a.printf("Removed #%d from favourites\n", id)
	}
	return nil
}

// Favs renders the loaded users whose ids are stored as favourites, in list
// order.
func (a *App) Favs(ctx context.Context) error {
	if a.entries == nil {
		if err := a.load(ctx); err != nil {
			return err
		}
	}

	ids := a.favouritesService.GetFavourites(ctx)
	a.render(ctx, directory.Favourites(a.entries, ids), "No favourites yet")
	return nil
}
