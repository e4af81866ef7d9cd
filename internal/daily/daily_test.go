package daily

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordboard/internal/database"
	"github.com/robalobadob/wordboard/internal/game"
)

type stubSource struct{ calls int }

func (s *stubSource) RandomWord() string {
	s.calls++
	return "zzzzz"
}

func (s *stubSource) IsProper(w string) bool { return w == "trace" }

func TestPickIsStablePerDay(t *testing.T) {
	morning := time.Date(2026, 10, 18, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 10, 18, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-10-18", DateKey(morning))
	assert.Equal(t, "2026-10-18", DateKey(morning.In(time.FixedZone("x", -5*3600))))

	assert.Equal(t, pick(DateKey(morning), "salt", 100), pick(DateKey(evening), "salt", 100))
	assert.Equal(t, 0, pick("2026-10-18", "salt", 0))
	for _, n := range []int{1, 7, 372} {
		i := pick("2026-10-18", "salt", n)
		assert.GreaterOrEqual(t, i, 0)
		assert.Less(t, i, n)
	}
}

func TestSourceServesDailyWordFirst(t *testing.T) {
	next := &stubSource{}
	answers := []string{"crane", "slate", "plant"}
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	s := NewSource(next, answers, now, "salt")
	want := answers[pick("2026-10-18", "salt", len(answers))]
	assert.Equal(t, "2026-10-18", s.Date)
	assert.Equal(t, want, answers[s.WordIndex])
	assert.Equal(t, want, s.RandomWord())
	assert.True(t, s.IsDailyWord(want))
	assert.Equal(t, "zzzzz", s.RandomWord())
	assert.Equal(t, 1, next.calls)
	assert.True(t, s.IsProper("trace"))
}

func TestSourceWithoutAnswers(t *testing.T) {
	next := &stubSource{}
	s := NewSource(next, nil, time.Now(), "salt")
	assert.Equal(t, "zzzzz", s.RandomWord())
	assert.False(t, s.IsDailyWord(""))
}

func TestStoreLeaderboard(t *testing.T) {
	db, err := database.Open(filepath.Join(t.TempDir(), "daily.db"))
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, database.Migrate(db))
	ctx := context.Background()

	// s2 rejected one word before winning.
	e := game.New(&stubSource{}, database.NewRecorder(db, "s2", "daily", database.Owner{AnonID: "a"}))
	for _, r := range "qqqqq" {
		e.SubmitLetter(r)
	}

	st := NewStore(db)
	played, err := st.Played(ctx, "p1", "2026-10-18")
	require.NoError(t, err)
	assert.False(t, played)

	require.NoError(t, st.Record(ctx, Result{Player: "p1", Date: "2026-10-18", SessionID: "s1", Guesses: 4, ElapsedMs: 9000}))
	require.NoError(t, st.Record(ctx, Result{Player: "p2", Date: "2026-10-18", SessionID: "s2", Guesses: 3, ElapsedMs: 5000}))
	// only the first result of a day counts
	require.NoError(t, st.Record(ctx, Result{Player: "p1", Date: "2026-10-18", Guesses: 1, ElapsedMs: 1}))

	played, err = st.Played(ctx, "p1", "2026-10-18")
	require.NoError(t, err)
	assert.True(t, played)

	top, err := st.Leaderboard(ctx, "2026-10-18", 0)
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Rank: 1, Player: "p2", Guesses: 3, ElapsedMs: 5000, Rejected: 1},
		{Rank: 2, Player: "p1", Guesses: 4, ElapsedMs: 9000},
	}, top)

	empty, err := st.Leaderboard(ctx, "2000-01-01", 5)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
