package store

import (
	"context"
	"fmt"
	"time"
)

// PlayRecord is one finished session.
type PlayRecord struct {
	ID        string    `json:"id"`
	LevelID   string    `json:"level_id"`
	Mode      string    `json:"mode"`
	Status    string    `json:"status"` // "won" or "lost"
	Moves     int       `json:"moves"`
	MinMoves  int       `json:"min_moves"`
	ElapsedMS int64     `json:"elapsed_ms"`
	CreatedAt time.Time `json:"created_at"`
}

// WritePlay appends a play record. Duplicate IDs are silently ignored,
// so a retried write after a crash cannot double-count a session.
func (s *Store) WritePlay(ctx context.Context, rec PlayRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO plays (id, level_id, mode, status, moves, min_moves, elapsed_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		rec.ID,
		rec.LevelID,
		rec.Mode,
		rec.Status,
		rec.Moves,
		rec.MinMoves,
		rec.ElapsedMS,
	)
	if err != nil {
		return fmt.Errorf("write play: %w", err)
	}
	return nil
}

// ReadPlays returns every play for a level, oldest first. Ordering is
// deterministic: created_at, then id with binary collation for ties.
//
// Returns an empty slice (not nil) when no plays exist.
func (s *Store) ReadPlays(ctx context.Context, levelID string) ([]PlayRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, level_id, mode, status, moves, min_moves, elapsed_ms, created_at
		FROM plays
		WHERE level_id = ?
		ORDER BY created_at ASC, id COLLATE BINARY ASC
	`, levelID)
	if err != nil {
		return nil, fmt.Errorf("query plays: %w", err)
	}
	defer rows.Close()

	plays := []PlayRecord{}
	for rows.Next() {
		var rec PlayRecord
		var created string
		if err := rows.Scan(&rec.ID, &rec.LevelID, &rec.Mode, &rec.Status, &rec.Moves, &rec.MinMoves, &rec.ElapsedMS, &created); err != nil {
			return nil, fmt.Errorf("scan play: %w", err)
		}
		rec.CreatedAt, err = time.Parse("2006-01-02T15:04:05.000Z", created)
		if err != nil {
			return nil, fmt.Errorf("parse play timestamp: %w", err)
		}
		plays = append(plays, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate plays: %w", err)
	}
	return plays, nil
}

// LevelStats aggregates the play log for one level.
type LevelStats struct {
	LevelID   string `json:"level_id"`
	Plays     int    `json:"plays"`
	Wins      int    `json:"wins"`
	BestMoves int    `json:"best_moves,omitempty"` // fewest moves among wins; 0 with no wins
	MinMoves  int    `json:"min_moves,omitempty"`  // solver minimum recorded with the plays
}

// Stats aggregates plays per level, ordered by level id for stable
// output.
func (s *Store) Stats(ctx context.Context) ([]LevelStats, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT
			level_id,
			COUNT(*),
			COALESCE(SUM(status = 'won'), 0),
			COALESCE(MIN(CASE WHEN status = 'won' THEN moves END), 0),
			COALESCE(MAX(min_moves), 0)
		FROM plays
		GROUP BY level_id
		ORDER BY level_id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query stats: %w", err)
	}
	defer rows.Close()

	stats := []LevelStats{}
	for rows.Next() {
		var st LevelStats
		if err := rows.Scan(&st.LevelID, &st.Plays, &st.Wins, &st.BestMoves, &st.MinMoves); err != nil {
			return nil, fmt.Errorf("scan stats: %w", err)
		}
		stats = append(stats, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stats: %w", err)
	}
	return stats, nil
}
