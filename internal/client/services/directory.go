package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/addressbook/internal/client/client"
	"github.com/dmitrijs2005/addressbook/internal/client/models"
	"github.com/dmitrijs2005/addressbook/internal/logging"
)

// DirectoryService fetches the full user list and projects it into
// directory entries. Records that cannot be decoded are skipped.
type DirectoryService interface {
	Load(ctx context.Context) ([]models.DirectoryEntry, error)
}

type directoryService struct {
	client client.Client
	log    logging.Logger
}

func NewDirectoryService(c client.Client, log logging.Logger) DirectoryService {
	return &directoryService{client: c, log: log}
}

func (s *directoryService) Load(ctx context.Context) ([]models.DirectoryEntry, error) {
	start := time.Now()

	// Limit 0 asks the API for every user in one response.
	raw, err := s.client.ListUsers(ctx, client.Page{Limit: 0})
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}

	entries := make([]models.DirectoryEntry, 0, len(raw))
	for i, r := range raw {
		e, err := models.NewDirectoryEntry(r)
		if err != nil {
			s.log.Warn(ctx, "skipping user record", "index", i, "error", err)
			continue
		}
		entries = append(entries, e)
	}

	s.log.Debug(ctx, "users loaded", "count", len(entries), "elapsed", time.Since(start))
	return entries, nil
}
