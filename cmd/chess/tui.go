package main

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/config"
	"github.com/lgbarn/chessboard-go/internal/engine"
	"github.com/lgbarn/chessboard-go/internal/output"
)

// Board geometry on screen: each square is cellWidth columns by one row,
// with the a8 corner at (originX, originY).
const (
	cellWidth = 3
	originX   = 2
	originY   = 1
)

var (
	lightSquare  = tcell.NewRGBColor(240, 217, 181)
	darkSquare   = tcell.NewRGBColor(181, 136, 99)
	selectedCell = tcell.NewRGBColor(205, 210, 106)
	targetCell   = tcell.NewRGBColor(130, 151, 105)
)

// boardView draws a game and maps mouse positions back to squares.
type boardView struct {
	screen  tcell.Screen
	cfg     *config.Config
	game    *engine.Game
	sel     *Selector
	message string
}

// runInteractive runs the board on an initialised screen until the player
// presses Escape, q or Ctrl-C. The first click on a piece of the side to
// move selects it and highlights its legal targets; the next click moves it.
func runInteractive(s tcell.Screen, cfg *config.Config, g *engine.Game) error {
	v := &boardView{screen: s, cfg: cfg, game: g, sel: NewSelector(g)}
	var buttons tcell.ButtonMask

	for {
		v.draw()
		switch ev := s.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			s.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				cfg.Logf(config.Results, "Game stopped after %d moves\n", len(g.Moves()))
				return nil
			}
			if ev.Key() == tcell.KeyRune && ev.Rune() == 'r' && g.State() == engine.Ongoing {
				loser := g.ToMove()
				g.Resign(loser)
				v.sel.Clear()
				v.message = fmt.Sprintf("%s resigns", loser)
				cfg.Logf(config.Results, "%s resigns: %s\n", loser, g.State().Result())
			}
		case *tcell.EventMouse:
			pressed := ev.Buttons()&tcell.Button1 != 0 && buttons&tcell.Button1 == 0
			buttons = ev.Buttons()
			if pressed {
				v.click(ev.Position())
			}
		}
	}
}

// click handles a press at screen coordinates (x, y).
func (v *boardView) click(x, y int) {
	pos, ok := squareAt(x, y)
	if !ok {
		v.sel.Clear()
		return
	}
	if _, active := v.sel.Selected(); !active {
		v.sel.Click(pos)
		if from, ok := v.sel.Selected(); ok {
			v.message = "Selected " + from.String()
		}
		return
	}

	from, _ := v.sel.Selected()
	mover := v.game.ToMove()
	if v.sel.Click(pos) {
		v.message = fmt.Sprintf("%s moved %s to %s", mover, from, pos)
		v.cfg.Logf(config.Commentary, "%d. %s: %s\n", len(v.game.Moves()), mover, v.game.Moves()[len(v.game.Moves())-1])
		reportEnd(v.cfg, v.game)
		return
	}
	if now, ok := v.sel.Selected(); ok {
		v.message = "Selected " + now.String()
		return
	}
	if pos != from {
		v.message = fmt.Sprintf("Invalid move %s to %s", from, pos)
		v.cfg.Logf(config.Results, "Rejected %s%s\n", from, pos)
	} else {
		v.message = ""
	}
}

// squareAt maps screen coordinates to the square drawn there.
func squareAt(x, y int) (chess.Position, bool) {
	if x < originX || y < originY {
		return chess.Position{}, false
	}
	row, col := y-originY, (x-originX)/cellWidth
	if !chess.IsValid(row, col) {
		return chess.Position{}, false
	}
	return chess.MustPosition(row, col), true
}

// cellText centres a square's token in a cell.
func cellText(sq chess.Square, unicode bool) string {
	if sq.Empty() {
		return strings.Repeat(" ", cellWidth)
	}
	token := strings.TrimSpace(output.SquareToken(sq, unicode))
	if utf8.RuneCountInString(token) == 1 {
		return " " + token + " "
	}
	return token + " "
}

func (v *boardView) draw() {
	s := v.screen
	s.Clear()
	base := tcell.StyleDefault

	v.text(0, 0, output.Header(v.game), base.Bold(true))

	targets := make(map[chess.Position]bool)
	for _, p := range v.sel.Highlights() {
		targets[p] = true
	}
	selected, active := v.sel.Selected()
	snap := v.game.Snapshot()

	for row := 0; row < chess.BoardSize; row++ {
		v.text(0, originY+row, string(rune('8'-row)), base)
		for col := 0; col < chess.BoardSize; col++ {
			pos := chess.MustPosition(row, col)
			sq := snap.At(pos)

			bg := lightSquare
			if (row+col)%2 == 1 {
				bg = darkSquare
			}
			switch {
			case active && pos == selected:
				bg = selectedCell
			case targets[pos]:
				bg = targetCell
			}
			fg := tcell.ColorBlack
			if sq.Colour == chess.White {
				fg = tcell.ColorWhite
			}
			style := base.Background(bg).Foreground(fg).Bold(true)
			v.text(originX+col*cellWidth, originY+row, cellText(sq, v.cfg.Output.Unicode), style)
		}
	}

	for col := 0; col < chess.BoardSize; col++ {
		v.text(originX+col*cellWidth+1, originY+chess.BoardSize, string(rune('a'+col)), base)
	}
	v.text(0, originY+chess.BoardSize+2, v.message, base)
	v.text(0, originY+chess.BoardSize+3, "Click a piece, then a square. r resigns, Esc quits.", base.Dim(true))
	s.Show()
}

// text draws str starting at (x, y).
func (v *boardView) text(x, y int, str string, style tcell.Style) {
	for _, r := range str {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
