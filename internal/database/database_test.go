package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordboard/internal/game"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "data", "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, Migrate(db))
	return db
}

func insertUser(t *testing.T, db *sql.DB, id, name string) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO users (id, username, password_hash, created_at) VALUES (?,?,?,?)`,
		id, name, "x", time.Now().UTC().Format(time.RFC3339))
	require.NoError(t, err)
}

type roundStatus struct {
	Status   string
	RowsUsed int
	Rejected int
}

func readRound(t *testing.T, db *sql.DB, session string, round int) roundStatus {
	t.Helper()
	var rs roundStatus
	err := db.QueryRow(`SELECT status, rows_used, rejected FROM rounds WHERE session_id=? AND round=?`,
		session, round).Scan(&rs.Status, &rs.RowsUsed, &rs.Rejected)
	require.NoError(t, err)
	return rs
}

// fixedSource always picks the same secret.
type fixedSource struct {
	secret string
	dict   map[string]bool
}

func (f fixedSource) RandomWord() string        { return f.secret }
func (f fixedSource) IsProper(word string) bool { return f.dict[word] }

func typeWord(e *game.Engine, w string) {
	for _, r := range w {
		e.SubmitLetter(r)
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(1) FROM _migrations`).Scan(&n))
	assert.Equal(t, 3, n)
}

func TestRecorderTracksWin(t *testing.T) {
	db := openTestDB(t)
	insertUser(t, db, "u1", "alice")

	rec := NewRecorder(db, "s1", "normal", Owner{UserID: "u1"})
	src := fixedSource{secret: "crane", dict: map[string]bool{"trace": true}}
	e := game.New(src, rec)

	typeWord(e, "trace")
	typeWord(e, "qzxjv")
	e.SubmitBackspace()
	e.SubmitBackspace()
	e.SubmitBackspace()
	e.SubmitBackspace()
	e.SubmitBackspace()
	typeWord(e, "crane")

	assert.Equal(t, roundStatus{Status: StatusWon, RowsUsed: 2, Rejected: 1}, readRound(t, db, "s1", 1))
	assert.Equal(t, roundStatus{Status: StatusPlaying}, readRound(t, db, "s1", 2))

	var gp, wins, streak int
	require.NoError(t, db.QueryRow(`SELECT games_played, wins, streak FROM users WHERE id='u1'`).Scan(&gp, &wins, &streak))
	assert.Equal(t, []int{1, 1, 1}, []int{gp, wins, streak})

	rows, err := RecentRounds(context.Background(), db, "u1", 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)
}

func TestRecorderTracksLossAndAbandon(t *testing.T) {
	db := openTestDB(t)
	insertUser(t, db, "u1", "alice")

	rec := NewRecorder(db, "s1", "normal", Owner{UserID: "u1"})
	guesses := []string{"trace", "slate", "plant", "drink", "thing", "blame"}
	dict := map[string]bool{}
	for _, w := range guesses {
		dict[w] = true
	}
	e := game.New(fixedSource{secret: "crane", dict: dict}, rec)

	for _, w := range guesses {
		typeWord(e, w)
	}
	require.True(t, e.Snapshot().Lost)
	assert.Equal(t, roundStatus{Status: StatusLost, RowsUsed: game.Rows}, readRound(t, db, "s1", 1))
	e.NewRound()
	typeWord(e, "trace")
	e.NewRound()

	assert.Equal(t, StatusLost, readRound(t, db, "s1", 1).Status)
	assert.Equal(t, roundStatus{Status: StatusAbandoned, RowsUsed: 1}, readRound(t, db, "s1", 2))

	var gp, wins, streak int
	require.NoError(t, db.QueryRow(`SELECT games_played, wins, streak FROM users WHERE id='u1'`).Scan(&gp, &wins, &streak))
	assert.Equal(t, []int{1, 0, 0}, []int{gp, wins, streak})
}

func TestAbandonSession(t *testing.T) {
	db := openTestDB(t)
	insertUser(t, db, "u1", "alice")

	e := game.New(fixedSource{secret: "crane", dict: map[string]bool{"trace": true}},
		NewRecorder(db, "s1", "normal", Owner{UserID: "u1"}))
	typeWord(e, "crane")
	typeWord(e, "trace")

	require.NoError(t, AbandonSession(context.Background(), db, "s1"))
	assert.Equal(t, StatusWon, readRound(t, db, "s1", 1).Status)
	assert.Equal(t, roundStatus{Status: StatusAbandoned, RowsUsed: 1}, readRound(t, db, "s1", 2))

	var gp int
	require.NoError(t, db.QueryRow(`SELECT games_played FROM users WHERE id='u1'`).Scan(&gp))
	assert.Equal(t, 1, gp)
}

func TestClaimAnonRounds(t *testing.T) {
	db := openTestDB(t)
	insertUser(t, db, "u1", "alice")

	rec := NewRecorder(db, "s1", "normal", Owner{AnonID: "guest"})
	game.New(fixedSource{secret: "crane"}, rec)

	ctx := context.Background()
	require.NoError(t, ClaimAnonRounds(ctx, db, "guest", "u1"))
	rows, err := RecentRounds(ctx, db, "u1", 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "s1", rows[0].SessionID)
	assert.Equal(t, StatusPlaying, rows[0].Status)
}
