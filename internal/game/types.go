// internal/game/types.go
//
// Core type definitions for the board engine.
// Defines:
//   - Variant: per-cell feedback for an evaluated row.
//   - Cell / Board: the fixed 6x5 grid, held by value.
//   - Snapshot: the read-only view handed to input adapters.
//   - WordSource: the dictionary capability the engine consumes.

package game

const (
	// WordLength is the number of letters in every row and secret word.
	WordLength = 5
	// Rows is the number of guesses available in one round.
	Rows = 6

	cellCount = Rows * WordLength
)

// Variant is the evaluation result for a single cell.
//   - "":             not evaluated yet (or empty cell).
//   - "correct":      right letter, right position.
//   - "semi-correct": letter occurs elsewhere in the secret word.
//   - "incorrect":    letter absent from the secret word.
type Variant string

const (
	VariantUnset       Variant = ""
	VariantCorrect     Variant = "correct"
	VariantSemiCorrect Variant = "semi-correct"
	VariantIncorrect   Variant = "incorrect"
)

// Cell is one letter slot. Letter is 0 while the cell is empty.
type Cell struct {
	Letter  rune
	Variant Variant
}

// Empty reports whether no letter has been typed into the cell.
func (c Cell) Empty() bool { return c.Letter == 0 }

// Board is the grid of cells in row-major order. It is an array so that
// assignment copies it; snapshots never alias engine state.
type Board [Rows][WordLength]Cell

// KeyboardFeedback maps a letter to the variant of its latest evaluated cell.
type KeyboardFeedback map[rune]Variant

// Snapshot is a render-ready copy of the engine state.
type Snapshot struct {
	Board    Board
	Keyboard KeyboardFeedback
	Blocked  bool // a full row was rejected; only backspace is accepted
	Round    int  // 1-based round counter, bumped on every new round
	Lost     bool // all rows evaluated without a win
}

// WordSource supplies secret words and dictionary membership.
// Both sides use lowercase words.
type WordSource interface {
	RandomWord() string
	IsProper(word string) bool
}
