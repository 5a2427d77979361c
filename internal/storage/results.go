package storage

import (
	"fmt"
	"time"
)

// PuzzleResult is one solved puzzle.
type PuzzleResult struct {
	ID         int64
	SessionID  string
	VariantID  string
	Rows       int
	Cols       int
	Level      int
	Moves      int
	Par        int // -1 when the board had no known optimum
	Scramble   int
	Hints      int
	DurationMS int64
	CreatedAt  time.Time
}

// Perfect reports whether the puzzle was solved within par. Par is not always
// a true minimum on large boards, so beating it also counts.
func (r PuzzleResult) Perfect() bool {
	return r.Par >= 0 && r.Moves <= r.Par
}

// PuzzleStats aggregates the solved puzzles of a variant.
type PuzzleStats struct {
	VariantID   string
	Solved      int
	Perfect     int // solved within par
	FewestMoves int
	AvgMoves    float64
	BestLevel   int
	FastestMS   int64
	HintsUsed   int
}

// SaveResult records a solved puzzle and returns its row ID.
func (s *Store) SaveResult(r PuzzleResult) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO puzzle_results
		 (session_id, game_id, board_rows, board_cols, level, moves, par, scramble, hints, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.SessionID,
		r.VariantID,
		r.Rows,
		r.Cols,
		r.Level,
		r.Moves,
		r.Par,
		r.Scramble,
		r.Hints,
		r.DurationMS,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save puzzle result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentResults returns the latest solved puzzles for a variant, newest first.
func (s *Store) RecentResults(variantID string, limit int) ([]PuzzleResult, error) {
	if limit <= 0 {
		limit = 20
	}

	return s.queryResults(
		`SELECT id, session_id, game_id, board_rows, board_cols, level, moves, par,
		        scramble, hints, duration_ms, created_at
		 FROM puzzle_results
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		variantID, limit,
	)
}

// SessionResults returns every puzzle solved in one session, oldest first.
func (s *Store) SessionResults(sessionID string) ([]PuzzleResult, error) {
	return s.queryResults(
		`SELECT id, session_id, game_id, board_rows, board_cols, level, moves, par,
		        scramble, hints, duration_ms, created_at
		 FROM puzzle_results
		 WHERE session_id = ?
		 ORDER BY id ASC`,
		sessionID,
	)
}

func (s *Store) queryResults(query string, args ...any) ([]PuzzleResult, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query puzzle results: %w", err)
	}
	defer rows.Close()

	var results []PuzzleResult
	for rows.Next() {
		var r PuzzleResult
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.SessionID,
			&r.VariantID,
			&r.Rows,
			&r.Cols,
			&r.Level,
			&r.Moves,
			&r.Par,
			&r.Scramble,
			&r.Hints,
			&r.DurationMS,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// ResultStats aggregates the solved puzzles of a variant. A variant with no
// results yields zero stats.
func (s *Store) ResultStats(variantID string) (*PuzzleStats, error) {
	stats := &PuzzleStats{VariantID: variantID}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN par >= 0 AND moves <= par THEN 1 ELSE 0 END), 0),
		        COALESCE(MIN(moves), 0),
		        COALESCE(AVG(moves), 0),
		        COALESCE(MAX(level), 0),
		        COALESCE(MIN(duration_ms), 0),
		        COALESCE(SUM(hints), 0)
		 FROM puzzle_results WHERE game_id = ?`,
		variantID,
	).Scan(
		&stats.Solved,
		&stats.Perfect,
		&stats.FewestMoves,
		&stats.AvgMoves,
		&stats.BestLevel,
		&stats.FastestMS,
		&stats.HintsUsed,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get puzzle stats: %w", err)
	}

	return stats, nil
}
