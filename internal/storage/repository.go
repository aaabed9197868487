package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/glabrego/gameshelf/internal/catalog"
)

const defaultListLimit = 20

// Snapshot is one archived fetch of a catalog.
type Snapshot struct {
	ID         int64
	Source     string
	UpdatedUTC string
	GameCount  int
	Payload    []byte
	FetchedAt  time.Time
}

type Repository struct {
	db *sql.DB
}

func NewRepository(path string) (*Repository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

func (r *Repository) Init(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  source TEXT NOT NULL,
  updated_utc TEXT NOT NULL,
  game_count INTEGER NOT NULL,
  payload TEXT NOT NULL,
  fetched_at TEXT NOT NULL
);
`
	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

func (r *Repository) SaveSnapshot(ctx context.Context, source string, c catalog.Catalog) error {
	payload, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
INSERT INTO snapshots (source, updated_utc, game_count, payload, fetched_at)
VALUES (?, ?, ?, ?, ?)
`,
		source,
		c.UpdatedUTC,
		len(c.Games),
		string(payload),
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// ListSnapshots returns up to limit snapshots, newest first.
func (r *Repository) ListSnapshots(ctx context.Context, limit int) ([]Snapshot, error) {
	if limit < 1 {
		limit = defaultListLimit
	}

	rows, err := r.db.QueryContext(ctx, `
SELECT id, source, updated_utc, game_count, payload, fetched_at
FROM snapshots
ORDER BY id DESC
LIMIT ?
`, limit)
	if err != nil {
		return nil, fmt.Errorf("query snapshots: %w", err)
	}
	defer rows.Close()

	snapshots := make([]Snapshot, 0, limit)
	for rows.Next() {
		var snap Snapshot
		var payload, fetchedAt string
		if err := rows.Scan(
			&snap.ID,
			&snap.Source,
			&snap.UpdatedUTC,
			&snap.GameCount,
			&payload,
			&fetchedAt,
		); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}

		snap.Payload = []byte(payload)
		snap.FetchedAt, err = time.Parse(time.RFC3339Nano, fetchedAt)
		if err != nil {
			return nil, fmt.Errorf("parse snapshot fetched_at %q: %w", fetchedAt, err)
		}
		snapshots = append(snapshots, snap)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	return snapshots, nil
}
