package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/robalobadob/wordboard/internal/game"
)

func TestFromKeyName(t *testing.T) {
	tests := map[string]Action{
		"a":         {Kind: Letter, Letter: 'a'},
		"Q":         {Kind: Letter, Letter: 'q'},
		"Backspace": {Kind: Backspace},
		"Enter":     {Kind: NewRound},
		"1":         {},
		"é":         {},
		"Shift":     {},
		"":          {},
	}
	for name, want := range tests {
		assert.Equal(t, want, FromKeyName(name), name)
	}
}

func TestFromTerminal(t *testing.T) {
	assert.Equal(t, Action{Kind: Letter, Letter: 'k'}, FromTerminal(tcell.NewEventKey(tcell.KeyRune, 'K', tcell.ModNone)))
	assert.Equal(t, Action{Kind: Backspace}, FromTerminal(tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone)))
	assert.Equal(t, Action{Kind: Backspace}, FromTerminal(tcell.NewEventKey(tcell.KeyBackspace, 0, tcell.ModNone)))
	assert.Equal(t, Action{Kind: NewRound}, FromTerminal(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)))
	assert.Equal(t, Action{}, FromTerminal(tcell.NewEventKey(tcell.KeyRune, '7', tcell.ModNone)))
	assert.Equal(t, Action{}, FromTerminal(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone)))
}

func TestLayoutCoversAlphabet(t *testing.T) {
	seen := map[rune]bool{}
	for _, row := range Layout {
		for _, r := range row {
			seen[r] = true
		}
	}
	assert.Len(t, seen, 26)
}

type recorder struct {
	calls []string
	lost  bool
}

func (r *recorder) SubmitLetter(ch rune) { r.calls = append(r.calls, "letter:"+string(ch)) }
func (r *recorder) SubmitBackspace()     { r.calls = append(r.calls, "backspace") }
func (r *recorder) NewRound()            { r.calls = append(r.calls, "new") }
func (r *recorder) Snapshot() game.Snapshot {
	return game.Snapshot{Lost: r.lost}
}

func TestApply(t *testing.T) {
	r := &recorder{}
	Apply(r, FromKeyName("x"))
	Apply(r, FromKeyName("Backspace"))
	Apply(r, FromKeyName("Enter"))
	Apply(r, FromKeyName("Tab"))
	r.lost = true
	Apply(r, FromKeyName("Enter"))

	assert.Equal(t, []string{"letter:x", "backspace", "new"}, r.calls)
}
