package tui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordboard/internal/game"
)

type oneWord struct{}

func (oneWord) RandomWord() string        { return "crane" }
func (oneWord) IsProper(word string) bool { return word == "trace" }

func newSimApp(t *testing.T) (*App, tcell.SimulationScreen, *game.Engine) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, sim.Init())
	t.Cleanup(sim.Fini)
	sim.SetSize(80, 30)

	e := game.New(oneWord{})
	return New(sim, e), sim, e
}

func line(sim tcell.SimulationScreen, y int) string {
	cells, w, _ := sim.GetContents()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			sb.WriteRune(' ')
			continue
		}
		sb.WriteRune(c.Runes[0])
	}
	return strings.TrimRight(sb.String(), " ")
}

func press(a *App, r rune) bool {
	return a.HandleKey(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
}

func TestDrawShowsTypedLetters(t *testing.T) {
	a, sim, _ := newSimApp(t)
	for _, r := range "tra" {
		press(a, r)
	}
	a.Draw()

	assert.Contains(t, line(sim, 0), "round 1")
	assert.Equal(t, "   T   R   A   ·   ·", line(sim, boardTop))
	assert.Contains(t, line(sim, statusLine), "Type a word")
}

func TestDrawColorsEvaluatedRow(t *testing.T) {
	a, sim, _ := newSimApp(t)
	for _, r := range "trace" {
		press(a, r)
	}
	a.Draw()

	cells, w, _ := sim.GetContents()
	// R sits at column 1 of row 0.
	fg, bg, _ := cells[boardTop*w+boardLeft+cellWidth+1].Style.Decompose()
	assert.Equal(t, tcell.ColorGreen, bg)
	assert.Equal(t, tcell.ColorWhite, fg)
}

func TestBlockedAndQuit(t *testing.T) {
	a, sim, e := newSimApp(t)
	for _, r := range "qzxjv" {
		press(a, r)
	}
	a.Draw()
	require.True(t, e.Snapshot().Blocked)
	assert.Contains(t, line(sim, statusLine), "Not in the word list")

	assert.False(t, a.HandleKey(tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone)))
	assert.False(t, e.Snapshot().Blocked)

	assert.True(t, a.HandleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.True(t, a.HandleKey(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone)))
}
