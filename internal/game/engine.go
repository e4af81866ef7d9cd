// internal/game/engine.go
//
// Board engine for one player's sequence of rounds.
// Responsibilities:
//   - Accept letter and backspace input, keeping filled cells a contiguous
//     row-major prefix.
//   - Evaluate a row as soon as it is complete: win, scored guess, or a
//     rejected word that blocks further letters.
//   - Start a fresh round immediately after a win; report a loss once the
//     last row is evaluated.
//   - Hand out copies of the board plus derived keyboard feedback.
//
// Notes:
//   - Invalid input is dropped silently; there is no error channel.
//   - Calls are serialized with a mutex. Listeners run under that lock and
//     must not call back into the engine.
package game

import (
	"strings"
	"sync"
)

// Engine owns the live round. The zero value is not usable; call New.
type Engine struct {
	mu        sync.Mutex
	src       WordSource
	listeners []Listener

	secret  string
	board   Board
	round   int
	forced  bool // the current full row was rejected by the dictionary
	blocked bool
}

// New starts the first round with a secret word drawn from src.
func New(src WordSource, listeners ...Listener) *Engine {
	e := &Engine{src: src, listeners: listeners}
	e.startRound()
	return e
}

// SubmitLetter types ch into the first empty cell.
// Dropped while blocked, for non-Latin letters, or when the board is full.
func (e *Engine) SubmitLetter(ch rune) {
	switch {
	case ch >= 'A' && ch <= 'Z':
		ch += 'a' - 'A'
	case ch < 'a' || ch > 'z':
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.blocked {
		return
	}
	n := e.board.filled()
	if n == cellCount {
		return
	}
	e.board.at(n).Letter = ch
	e.settle()
}

// SubmitBackspace clears the most recently filled cell.
//
// The request is ignored while the current row is complete and input is not
// blocked, which covers an evaluated row. A rejected row (blocked) can be
// edited.
func (e *Engine) SubmitBackspace() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.board.CurrentWord()) == WordLength && !e.blocked {
		return
	}
	n := e.board.filled()
	if n == 0 {
		return
	}
	*e.board.at(n - 1) = Cell{}
	e.settle()
}

// NewRound abandons the current round and starts another one.
// Adapters call it once a snapshot reports Lost.
func (e *Engine) NewRound() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.startRound()
}

// Snapshot returns a copy of the board with derived keyboard feedback.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Snapshot{
		Board:    e.board,
		Keyboard: Feedback(e.board),
		Blocked:  e.blocked,
		Round:    e.round,
		Lost:     computeLost(e.board),
	}
}

// settle runs after every board mutation: it evaluates a freshly completed
// row and recomputes blocking.
func (e *Engine) settle() {
	e.forced = false
	if word := e.board.CurrentWord(); len(word) == WordLength {
		row, _ := e.board.currentRow()
		if !e.board.rowEvaluated(row) {
			if e.evaluate(row, word) {
				return
			}
		}
	}
	e.blocked = computeBlocked(e.board, e.forced)
}

// evaluate scores a complete row. It returns true when the row won and a new
// round has already been started.
func (e *Engine) evaluate(row int, word string) bool {
	switch {
	case word == e.secret:
		e.emit(Event{Kind: EventRoundWon, Round: e.round, Row: row, Word: word})
		e.startRound()
		return true
	case e.src.IsProper(word):
		variants := Score(e.secret, word)
		for i := range e.board[row] {
			e.board[row][i].Variant = variants[i]
		}
		e.emit(Event{Kind: EventRowEvaluated, Round: e.round, Row: row, Word: word, Variants: variants})
		if computeLost(e.board) {
			e.emit(Event{Kind: EventRoundLost, Round: e.round, Row: row, Word: word})
		}
	default:
		e.forced = true
		e.emit(Event{Kind: EventRowRejected, Round: e.round, Row: row, Word: word})
	}
	return false
}

// startRound resets the board with a new secret word.
func (e *Engine) startRound() {
	e.secret = strings.ToLower(e.src.RandomWord())
	e.board = Board{}
	e.round++
	e.forced = false
	e.blocked = computeBlocked(e.board, e.forced)
	e.emit(Event{Kind: EventRoundStarted, Round: e.round})
}

func (e *Engine) emit(ev Event) {
	for _, l := range e.listeners {
		l.OnEvent(ev)
	}
}
