package httpserver

import "github.com/robalobadob/wordboard/internal/game"

// cellJSON is one board cell on the wire; an empty cell has letter "".
type cellJSON struct {
	Letter  string       `json:"letter"`
	Variant game.Variant `json:"variant,omitempty"`
}

// snapshotJSON is the render-ready view sent to clients.
type snapshotJSON struct {
	Board    [][]cellJSON            `json:"board"`
	Keyboard map[string]game.Variant `json:"keyboard"`
	Blocked  bool                    `json:"blocked"`
	Round    int                     `json:"round"`
	Lost     bool                    `json:"lost"`
}

func toSnapshotJSON(sn game.Snapshot) snapshotJSON {
	out := snapshotJSON{
		Board:    make([][]cellJSON, len(sn.Board)),
		Keyboard: make(map[string]game.Variant, len(sn.Keyboard)),
		Blocked:  sn.Blocked,
		Round:    sn.Round,
		Lost:     sn.Lost,
	}
	for r, row := range sn.Board {
		out.Board[r] = make([]cellJSON, len(row))
		for c, cell := range row {
			if !cell.Empty() {
				out.Board[r][c].Letter = string(cell.Letter)
			}
			out.Board[r][c].Variant = cell.Variant
		}
	}
	for letter, v := range sn.Keyboard {
		out.Keyboard[string(letter)] = v
	}
	return out
}
