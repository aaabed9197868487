package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/glabrego/gameshelf/internal/catalog"
	"github.com/glabrego/gameshelf/internal/storage"
)

const DefaultHistoryLimit = 20

// ErrNoArchive is returned by History when no snapshot archive is configured.
var ErrNoArchive = errors.New("no snapshot archive configured")

type CatalogLoader interface {
	Load(ctx context.Context) (catalog.Catalog, error)
	Source() string
}

type Archive interface {
	SaveSnapshot(ctx context.Context, source string, c catalog.Catalog) error
	ListSnapshots(ctx context.Context, limit int) ([]storage.Snapshot, error)
}

type Service struct {
	loader  CatalogLoader
	archive Archive
	logger  *slog.Logger
}

// NewService wires a loader to an optional archive. archive may be nil.
func NewService(loader CatalogLoader, archive Archive, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{loader: loader, archive: archive, logger: logger}
}

// Load fetches the catalog once and records a snapshot when an archive is
// configured. Archive failures never fail the load.
func (s *Service) Load(ctx context.Context) (catalog.Catalog, error) {
	c, err := s.loader.Load(ctx)
	if err != nil {
		return catalog.Catalog{}, err
	}

	if s.archive != nil {
		if err := s.archive.SaveSnapshot(ctx, s.loader.Source(), c); err != nil {
			s.logger.Warn("archive snapshot failed", "source", s.loader.Source(), "err", err)
		}
	}
	return c, nil
}

func (s *Service) Source() string {
	return s.loader.Source()
}

func (s *Service) History(ctx context.Context, limit int) ([]storage.Snapshot, error) {
	if s.archive == nil {
		return nil, ErrNoArchive
	}
	if limit < 1 {
		limit = DefaultHistoryLimit
	}
	snapshots, err := s.archive.ListSnapshots(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("load snapshots from archive: %w", err)
	}
	return snapshots, nil
}
