package game

import "strings"

// at returns the cell at row-major index i.
func (b *Board) at(i int) *Cell {
	return &b[i/WordLength][i%WordLength]
}

// filled returns the length of the filled prefix, i.e. the index of the
// first empty cell, or cellCount when the board is full.
func (b *Board) filled() int {
	for i := 0; i < cellCount; i++ {
		if b.at(i).Empty() {
			return i
		}
	}
	return cellCount
}

// Full reports whether every cell holds a letter.
func (b *Board) Full() bool { return b.filled() == cellCount }

// currentRow returns the row holding the most recently filled cell.
// ok is false on an empty board.
func (b *Board) currentRow() (row int, ok bool) {
	n := b.filled()
	if n == 0 {
		return 0, false
	}
	return (n - 1) / WordLength, true
}

// CurrentWord returns the letters typed into the current row.
func (b *Board) CurrentWord() string {
	row, ok := b.currentRow()
	if !ok {
		return ""
	}
	var sb strings.Builder
	for _, c := range b[row] {
		if c.Empty() {
			break
		}
		sb.WriteRune(c.Letter)
	}
	return sb.String()
}

// rowEvaluated reports whether a row has received its variants.
func (b *Board) rowEvaluated(row int) bool {
	return b[row][0].Variant != VariantUnset
}

// computeBlocked derives the blocked flag from the board. A forced block
// only holds while the current row is still complete.
func computeBlocked(b Board, forced bool) bool {
	return forced && len(b.CurrentWord()) == WordLength
}

// computeLost reports whether the rows are exhausted: the board is full and
// its last row was evaluated (a winning row never stays on the board).
func computeLost(b Board) bool {
	return b.Full() && b.rowEvaluated(Rows-1)
}
