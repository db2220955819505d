package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/flowgrid/internal/grid"
	"github.com/roach88/flowgrid/internal/levelfile"
)

// ErrLevelNotFound is returned by LoadLevel for unknown ids.
var ErrLevelNotFound = errors.New("level not found")

// SaveLevel persists a level as its YAML document. Duplicate ids are
// silently ignored; level ids are content hashes, so a duplicate is
// the same level.
func (s *Store) SaveLevel(ctx context.Context, level *grid.Level) error {
	doc, err := levelfile.Encode(level)
	if err != nil {
		return fmt.Errorf("save level: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO levels (id, name, tier, document)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`, level.ID, level.Name, level.Tier, doc)
	if err != nil {
		return fmt.Errorf("save level: %w", err)
	}
	return nil
}

// LoadLevel reads a persisted level back through the document decoder,
// so anything it returns has passed schema validation.
func (s *Store) LoadLevel(ctx context.Context, id string) (*grid.Level, error) {
	var doc []byte
	err := s.db.QueryRowContext(ctx, `SELECT document FROM levels WHERE id = ?`, id).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("load level %q: %w", id, ErrLevelNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load level %q: %w", id, err)
	}

	level, err := levelfile.Decode(doc)
	if err != nil {
		return nil, fmt.Errorf("load level %q: %w", id, err)
	}
	return level, nil
}

// LevelInfo is one row of the persisted level listing.
type LevelInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Tier int    `json:"tier"`
}

// ListLevels returns persisted levels ordered by tier then name.
func (s *Store) ListLevels(ctx context.Context) ([]LevelInfo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, tier
		FROM levels
		ORDER BY tier ASC, name COLLATE BINARY ASC, id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list levels: %w", err)
	}
	defer rows.Close()

	infos := []LevelInfo{}
	for rows.Next() {
		var info LevelInfo
		if err := rows.Scan(&info.ID, &info.Name, &info.Tier); err != nil {
			return nil, fmt.Errorf("scan level: %w", err)
		}
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate levels: %w", err)
	}
	return infos, nil
}
