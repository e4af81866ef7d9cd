package daily

import (
	"context"
	"database/sql"
	"fmt"
)

// Result is one solved daily word. Player is a public id, never a credential.
type Result struct {
	Player    string
	Date      string
	WordIndex int
	SessionID string
	Guesses   int
	ElapsedMs int
}

// Entry is one leaderboard line. Rejected counts the words the dictionary
// turned down on the way, read from the session's first round.
type Entry struct {
	Rank      int    `json:"rank"`
	Player    string `json:"player"`
	Guesses   int    `json:"guesses"`
	ElapsedMs int    `json:"elapsedMs"`
	Rejected  int    `json:"rejected"`
}

// Store keeps daily results next to the rounds they came from.
type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Played reports whether player already has a result for date.
func (s *Store) Played(ctx context.Context, player, date string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM daily_results WHERE user_id=? AND date=? LIMIT 1`, player, date).Scan(&one)
	switch {
	case err == sql.ErrNoRows:
		return false, nil
	case err != nil:
		return false, fmt.Errorf("daily played: %w", err)
	}
	return true, nil
}

// Record stores r. Only the first result per player and date counts.
func (s *Store) Record(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO daily_results (user_id, date, word_index, session_id, guesses, elapsed_ms)
		 VALUES (?,?,?,?,?,?)`,
		r.Player, r.Date, r.WordIndex, r.SessionID, r.Guesses, r.ElapsedMs)
	if err != nil {
		return fmt.Errorf("daily record: %w", err)
	}
	return nil
}

// Leaderboard ranks the results of date, fastest first. limit <= 0 means 20.
func (s *Store) Leaderboard(ctx context.Context, date string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT d.user_id, d.guesses, d.elapsed_ms, COALESCE(r.rejected, 0)
		 FROM daily_results d
		 LEFT JOIN rounds r ON r.session_id = d.session_id AND r.round = 1
		 WHERE d.date=?
		 ORDER BY d.elapsed_ms, d.guesses, d.created_at
		 LIMIT ?`, date, limit)
	if err != nil {
		return nil, fmt.Errorf("daily leaderboard: %w", err)
	}
	defer rows.Close()

	out := []Entry{}
	for rows.Next() {
		e := Entry{Rank: len(out) + 1}
		if err := rows.Scan(&e.Player, &e.Guesses, &e.ElapsedMs, &e.Rejected); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
