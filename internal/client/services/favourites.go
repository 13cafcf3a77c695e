package services

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/dmitrijs2005/addressbook/internal/client/storage"
	"github.com/dmitrijs2005/addressbook/internal/common"
	"github.com/dmitrijs2005/addressbook/internal/logging"
)

// FavouritesService manages the favourite user ids stored under
// userFavourites.
//
// Reads are best-effort: an absent, unreadable or unparsable record is an
// empty list. SetFavourites swallows write failures after logging them;
// SaveFavourites is the same write with the error returned.
//
// ToggleFavourite is serialized: concurrent toggles within the process take
// turns, and when the store implements storage.Updater the read-modify-write
// also runs atomically in the store, so no toggle is lost.
type FavouritesService interface {
	GetFavourites(ctx context.Context) []int
	SetFavourites(ctx context.Context, ids []int)
	SaveFavourites(ctx context.Context, ids []int) error
	ToggleFavourite(ctx context.Context, id int) ([]int, error)
	IsFavourite(ctx context.Context, id int) bool
}

type favouritesService struct {
	mu    sync.Mutex
	store storage.Store
	log   logging.Logger
}

func NewFavouritesService(store storage.Store, log logging.Logger) FavouritesService {
	return &favouritesService{store: store, log: log}
}

func (s *favouritesService) GetFavourites(ctx context.Context) []int {
	data, err := s.store.Get(ctx, common.KeyFavourites)
	if err != nil {
		s.log.Warn(ctx, "error reading favourites", "error", err)
		return []int{}
	}
	return decodeIDs(data)
}

func (s *favouritesService) SetFavourites(ctx context.Context, ids []int) {
	if err := s.SaveFavourites(ctx, ids); err != nil {
		s.log.Error(ctx, "error saving favourites", "error", err)
	}
}

func (s *favouritesService) SaveFavourites(ctx context.Context, ids []int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := encodeIDs(normalize(ids))
	if err != nil {
		return err
	}
	return s.store.Set(ctx, common.KeyFavourites, data)
}

func (s *favouritesService) ToggleFavourite(ctx context.Context, id int) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var updated []int
	step := func(old []byte) ([]byte, error) {
		updated = toggle(decodeIDs(old), id)
		return encodeIDs(updated)
	}

	var err error
	if u, ok := s.store.(storage.Updater); ok {
		err = u.Update(ctx, common.KeyFavourites, step)
	} else {
		err = s.toggleUnsafe(ctx, step)
	}
	if err != nil {
		s.log.Error(ctx, "error toggling favourite", "id", id, "error", err)
		return nil, fmt.Errorf("toggle favourite %d: %w", id, err)
	}

	s.log.Debug(ctx, "favourite toggled", "id", id, "favourites", updated)
	return updated, nil
}

// toggleUnsafe is the plain get/set fallback; only the mutex protects it.
func (s *favouritesService) toggleUnsafe(ctx context.Context, step storage.UpdateFunc) error {
	old, err := s.store.Get(ctx, common.KeyFavourites)
	if err != nil {
		return err
	}
	value, err := step(old)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, common.KeyFavourites, value)
}

func (s *favouritesService) IsFavourite(ctx context.Context, id int) bool {
	return slices.Contains(s.GetFavourites(ctx), id)
}

func toggle(ids []int, id int) []int {
	if i := slices.Index(ids, id); i >= 0 {
		return slices.Delete(slices.Clone(ids), i, i+1)
	}
	return append(slices.Clone(ids), id)
}

func encodeIDs(ids []int) ([]byte, error) {
	if ids == nil {
		ids = []int{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return nil, fmt.Errorf("encode favourites: %w", err)
	}
	return data, nil
}

// decodeIDs parses the stored array leniently: integral numbers and numeric
// strings are kept, anything else is dropped, duplicates collapse onto the
// first occurrence. A missing or malformed record yields an empty list.
func decodeIDs(data []byte) []int {
	if len(data) == 0 {
		return []int{}
	}

	var raw []any
	if err := json.Unmarshal(data, &raw); err != nil {
		return []int{}
	}

	ids := make([]int, 0, len(raw))
	for _, v := range raw {
		if id, ok := toID(v); ok {
			ids = append(ids, id)
		}
	}
	return normalize(ids)
}

func toID(v any) (int, bool) {
	switch x := v.(type) {
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) || x != math.Trunc(x) {
			return 0, false
		}
		return int(x), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func normalize(ids []int) []int {
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}
