package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordboard/internal/game"
)

// Round statuses stored in rounds.status.
const (
	StatusPlaying   = "playing"
	StatusWon       = "won"
	StatusLost      = "lost"
	StatusAbandoned = "abandoned"
)

// Owner identifies who plays a session: a signed-in user or a guest cookie.
type Owner struct {
	UserID string
	AnonID string
}

// Recorder persists engine events of one session as rows in rounds and
// keeps the owner's games_played/wins/streak counters current.
// Writes are best effort: failures are logged, never surfaced to the engine.
type Recorder struct {
	db        *sql.DB
	sessionID string
	mode      string
	owner     Owner
	now       func() time.Time
}

var _ game.Listener = (*Recorder)(nil)

// NewRecorder returns a Recorder for one session.
func NewRecorder(db *sql.DB, sessionID, mode string, owner Owner) *Recorder {
	return &Recorder{db: db, sessionID: sessionID, mode: mode, owner: owner, now: time.Now}
}

// OnEvent implements game.Listener.
func (r *Recorder) OnEvent(ev game.Event) {
	ctx := context.Background()
	var err error
	switch ev.Kind {
	case game.EventRoundStarted:
		err = r.startRound(ctx, ev.Round)
	case game.EventRowEvaluated:
		err = r.exec(ctx, `UPDATE rounds SET rows_used = rows_used + 1 WHERE session_id=? AND round=?`,
			r.sessionID, ev.Round)
	case game.EventRowRejected:
		err = r.exec(ctx, `UPDATE rounds SET rejected = rejected + 1 WHERE session_id=? AND round=?`,
			r.sessionID, ev.Round)
	case game.EventRoundWon:
		err = r.finish(ctx, ev.Round, StatusWon, ev.Row+1)
	case game.EventRoundLost:
		err = r.finish(ctx, ev.Round, StatusLost, ev.Row+1)
	}
	if err != nil {
		log.Warn().Err(err).Str("session", r.sessionID).Str("event", string(ev.Kind)).Msg("record round event")
	}
}

// startRound abandons the previous round if it is still open and inserts the
// new one. Won and lost rounds are already closed by their own events.
func (r *Recorder) startRound(ctx context.Context, round int) error {
	if round > 1 {
		var rowsUsed int
		err := r.db.QueryRowContext(ctx,
			`SELECT rows_used FROM rounds WHERE session_id=? AND round=? AND status=?`,
			r.sessionID, round-1, StatusPlaying).Scan(&rowsUsed)
		switch {
		case errors.Is(err, sql.ErrNoRows):
		case err != nil:
			return err
		default:
			if err := r.finish(ctx, round-1, StatusAbandoned, rowsUsed); err != nil {
				return err
			}
		}
	}
	return r.exec(ctx, `INSERT INTO rounds (session_id, round, user_id, anonymous_id, mode, status, started_at)
	                    VALUES (?,?,?,?,?,?,?)`,
		r.sessionID, round, nullable(r.owner.UserID), nullable(r.owner.AnonID), r.mode, StatusPlaying, r.stamp())
}

// finish closes a round and bumps the owner's counters in one transaction.
func (r *Recorder) finish(ctx context.Context, round int, status string, rowsUsed int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`UPDATE rounds SET status=?, rows_used=?, finished_at=? WHERE session_id=? AND round=?`,
		status, rowsUsed, r.stamp(), r.sessionID, round); err != nil {
		return err
	}
	if r.owner.UserID != "" && status != StatusAbandoned {
		if err := BumpStats(ctx, tx, r.owner.UserID, status == StatusWon); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *Recorder) exec(ctx context.Context, q string, args ...any) error {
	_, err := r.db.ExecContext(ctx, q, args...)
	return err
}

func (r *Recorder) stamp() string { return r.now().UTC().Format(time.RFC3339) }

// BumpStats increments games played and updates wins and streak (within tx).
func BumpStats(ctx context.Context, tx *sql.Tx, userID string, won bool) error {
	var gp, wins, streak int
	row := tx.QueryRowContext(ctx, `SELECT games_played, wins, streak FROM users WHERE id=?`, userID)
	if err := row.Scan(&gp, &wins, &streak); err != nil {
		return err
	}
	gp++
	if won {
		wins++
		streak++
	} else {
		streak = 0
	}
	_, err := tx.ExecContext(ctx, `UPDATE users SET games_played=?, wins=?, streak=? WHERE id=?`, gp, wins, streak, userID)
	return err
}

// AbandonSession closes every open round of a session that is going away.
func AbandonSession(ctx context.Context, db *sql.DB, sessionID string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE rounds SET status=?, finished_at=? WHERE session_id=? AND status=?`,
		StatusAbandoned, time.Now().UTC().Format(time.RFC3339), sessionID, StatusPlaying)
	return err
}

// ClaimAnonRounds moves a guest's rounds to a user account after sign-in.
func ClaimAnonRounds(ctx context.Context, db *sql.DB, anonID, userID string) error {
	if anonID == "" || userID == "" {
		return nil
	}
	_, err := db.ExecContext(ctx, `UPDATE rounds SET user_id=?, anonymous_id=NULL WHERE anonymous_id=?`, userID, anonID)
	return err
}

// RoundRow is one entry of a player's history.
type RoundRow struct {
	SessionID  string `json:"sessionId"`
	Round      int    `json:"round"`
	Mode       string `json:"mode"`
	Status     string `json:"status"`
	RowsUsed   int    `json:"rowsUsed"`
	Rejected   int    `json:"rejected"`
	StartedAt  string `json:"startedAt"`
	FinishedAt string `json:"finishedAt,omitempty"`
}

// RecentRounds returns up to limit rounds of userID, newest first.
func RecentRounds(ctx context.Context, db *sql.DB, userID string, limit int) ([]RoundRow, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.QueryContext(ctx,
		`SELECT session_id, round, mode, status, rows_used, rejected, started_at, COALESCE(finished_at,'')
		 FROM rounds WHERE user_id=? ORDER BY started_at DESC, id DESC LIMIT ?`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []RoundRow{}
	for rows.Next() {
		var rr RoundRow
		if err := rows.Scan(&rr.SessionID, &rr.Round, &rr.Mode, &rr.Status, &rr.RowsUsed,
			&rr.Rejected, &rr.StartedAt, &rr.FinishedAt); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
