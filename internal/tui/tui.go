// Package tui is a terminal front end for the board engine.
//
// It draws the grid and the on-screen keyboard, feeds key presses through
// package input and redraws from a fresh snapshot after every event.
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/robalobadob/wordboard/internal/game"
	"github.com/robalobadob/wordboard/internal/input"
)

var (
	styleBase    = tcell.StyleDefault
	styleTitle   = tcell.StyleDefault.Bold(true)
	styleEmpty   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	styleTyped   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkSlateGray).Bold(true)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	variantStyle = map[game.Variant]tcell.Style{
		game.VariantCorrect:     tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorGreen).Bold(true),
		game.VariantSemiCorrect: tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow).Bold(true),
		game.VariantIncorrect:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorGray),
	}
)

const (
	cellWidth  = 4 // " X " plus a gap
	boardTop   = 2
	boardLeft  = 2
	keysTop    = boardTop + game.Rows*2 + 1
	statusLine = keysTop + 7
)

// App drives one engine on one screen.
type App struct {
	screen tcell.Screen
	engine input.Target
}

// New binds an engine to an initialized screen.
func New(screen tcell.Screen, engine input.Target) *App {
	return &App{screen: screen, engine: engine}
}

// Run draws and handles events until the player quits.
func (a *App) Run() {
	a.Draw()
	for {
		switch ev := a.screen.PollEvent().(type) {
		case nil:
			return // screen finalized
		case *tcell.EventResize:
			a.screen.Sync()
			a.Draw()
		case *tcell.EventKey:
			if a.HandleKey(ev) {
				return
			}
			a.Draw()
		}
	}
}

// HandleKey applies one key event and reports whether the app should quit.
func (a *App) HandleKey(ev *tcell.EventKey) (quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	}
	input.Apply(a.engine, input.FromTerminal(ev))
	return false
}

// Draw renders the current snapshot.
func (a *App) Draw() {
	snap := a.engine.Snapshot()
	a.screen.Clear()

	a.text(boardLeft, 0, styleTitle, fmt.Sprintf("wordboard  round %d", snap.Round))

	for r, row := range snap.Board {
		for c, cell := range row {
			a.cell(boardLeft+c*cellWidth, boardTop+r*2, cell)
		}
	}

	for i, keys := range input.Layout {
		x := boardLeft + i*2
		for j, k := range keys {
			st, ok := variantStyle[snap.Keyboard[k]]
			if !ok {
				st = styleTyped
			}
			a.text(x+j*cellWidth, keysTop+i*2, st, " "+string(k-'a'+'A')+" ")
		}
	}

	switch {
	case snap.Lost:
		a.text(boardLeft, statusLine, styleStatus, "Out of rows. Enter starts a new round.")
	case snap.Blocked:
		a.text(boardLeft, statusLine, styleStatus, "Not in the word list. Backspace to edit.")
	default:
		a.text(boardLeft, statusLine, styleBase, "Type a word. Esc quits.")
	}
	a.screen.Show()
}

func (a *App) cell(x, y int, c game.Cell) {
	st := styleEmpty
	ch := '·'
	if !c.Empty() {
		ch = c.Letter - 'a' + 'A'
		st = styleTyped
		if vs, ok := variantStyle[c.Variant]; ok {
			st = vs
		}
	}
	a.screen.SetContent(x, y, ' ', nil, st)
	a.screen.SetContent(x+1, y, ch, nil, st)
	a.screen.SetContent(x+2, y, ' ', nil, st)
}

func (a *App) text(x, y int, st tcell.Style, s string) {
	for i, r := range []rune(s) {
		a.screen.SetContent(x+i, y, r, nil, st)
	}
}
