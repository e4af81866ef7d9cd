// Package input translates raw key events into board engine calls.
package input

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/robalobadob/wordboard/internal/game"
)

// Kind classifies a key press.
type Kind int

const (
	None Kind = iota
	Letter
	Backspace
	NewRound
)

// Action is a key press reduced to what the engine understands.
type Action struct {
	Kind   Kind
	Letter rune
}

// Layout is the on-screen keyboard, top row first.
var Layout = []string{"qwertyuiop", "asdfghjkl", "zxcvbnm"}

// Target is the engine surface an Action drives.
type Target interface {
	SubmitLetter(ch rune)
	SubmitBackspace()
	NewRound()
	Snapshot() game.Snapshot
}

// FromKeyName maps browser-style key names ("a", "A", "Backspace", "Enter").
func FromKeyName(name string) Action {
	switch name {
	case "Backspace":
		return Action{Kind: Backspace}
	case "Enter":
		return Action{Kind: NewRound}
	}
	if utf8.RuneCountInString(name) != 1 {
		return Action{}
	}
	r, _ := utf8.DecodeRuneInString(name)
	return letter(r)
}

// FromTerminal maps a tcell key event.
func FromTerminal(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return Action{Kind: Backspace}
	case tcell.KeyEnter:
		return Action{Kind: NewRound}
	case tcell.KeyRune:
		return letter(ev.Rune())
	}
	return Action{}
}

func letter(r rune) Action {
	switch {
	case r >= 'a' && r <= 'z':
		return Action{Kind: Letter, Letter: r}
	case r >= 'A' && r <= 'Z':
		return Action{Kind: Letter, Letter: r - 'A' + 'a'}
	}
	return Action{}
}

// Apply forwards a to t. NewRound only acts on a lost board, so a stray
// Enter never discards a round in progress.
func Apply(t Target, a Action) {
	switch a.Kind {
	case Letter:
		t.SubmitLetter(a.Letter)
	case Backspace:
		t.SubmitBackspace()
	case NewRound:
		if t.Snapshot().Lost {
			t.NewRound()
		}
	}
}
