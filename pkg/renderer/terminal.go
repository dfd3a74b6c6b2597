package renderer

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
	"github.com/trytobebee/termsnake/pkg/config"
	"github.com/trytobebee/termsnake/pkg/game"
)

// ANSI escape sequences
const (
	escClear      = "\033[2J"
	escHome       = "\033[H"
	escReset      = "\033[0m"
	escBold       = "\033[1m"
	escFgRed      = "\033[31m"
	escFgGreen    = "\033[32m"
	escFgBlack    = "\033[30m"
	escBgWhite    = "\033[107m"
	escShowCursor = "\033[?25h"
	escHideCursor = "\033[?25l"
)

// TerminalRenderer draws the game with cursor addressing. Nothing reaches
// the terminal until Flush; every call reports the first write error.
type TerminalRenderer struct {
	out    *bufio.Writer
	width  int
	height int
	err    error
}

// NewTerminalRenderer creates a renderer for a width x height board
func NewTerminalRenderer(w io.Writer, width, height int) *TerminalRenderer {
	return &TerminalRenderer{
		out:    bufio.NewWriterSize(w, 16*1024),
		width:  width,
		height: height,
	}
}

func (r *TerminalRenderer) write(s string) {
	if r.err != nil {
		return
	}
	_, r.err = r.out.WriteString(s)
}

// moveTo moves the cursor to a 1-based column and row
func (r *TerminalRenderer) moveTo(x, y int) {
	r.write(fmt.Sprintf("\033[%d;%dH", y, x))
}

func (r *TerminalRenderer) put(p game.Position, s string) {
	r.moveTo(p.X, p.Y)
	r.write(s)
}

// Flush sends the buffered output to the terminal
func (r *TerminalRenderer) Flush() error {
	if r.err != nil {
		return r.err
	}
	r.err = r.out.Flush()
	return r.err
}

// Setup hides the cursor and clears the screen (call on start)
func (r *TerminalRenderer) Setup() error {
	r.write(escReset + escHideCursor + escClear + escHome)
	return r.Flush()
}

// Teardown shows the cursor and clears the screen (call on exit)
func (r *TerminalRenderer) Teardown() error {
	r.write(escClear + escReset + escShowCursor + escHome)
	return r.Flush()
}

// Banner draws the title screen
func (r *TerminalRenderer) Banner() error {
	r.write(escClear + escReset + escHome)
	r.write(escFgRed)
	for i, line := range bannerArt {
		r.moveTo(1, i+1)
		r.write(line)
	}
	r.write(escReset)

	row := len(bannerArt) + 2
	r.moveTo(1, row)
	r.write(fmt.Sprintf("Press %sSPACE%s to start, %sQ%s to quit", escBold, escReset, escBold, escReset))
	r.moveTo(1, row+1)
	r.write(fmt.Sprintf("Steer with %sh j k l%s, the arrow keys or %sw a s d%s", escBold, escReset, escBold, escReset))
	return r.Flush()
}

// Redraw clears the screen and draws the whole board
func (r *TerminalRenderer) Redraw(g *game.Game) error {
	r.write(escHome + escClear + escReset)
	r.drawGrid()
	r.drawMunchie(g.Munchie.Pos)

	r.write(escBold + escFgGreen)
	for _, f := range g.Snake.Fragments {
		r.put(f.Pos, config.CharFragment)
	}
	r.write(escReset)
	return r.Flush()
}

func (r *TerminalRenderer) drawGrid() {
	r.put(game.Position{X: 1, Y: 1}, config.CharTopLeft)
	r.put(game.Position{X: r.width, Y: 1}, config.CharTopRight)
	r.put(game.Position{X: 1, Y: r.height}, config.CharBottomLeft)
	r.put(game.Position{X: r.width, Y: r.height}, config.CharBottomRight)

	horizontal := strings.Repeat(config.CharHorizontal, r.width-2)
	r.put(game.Position{X: 2, Y: 1}, horizontal)
	r.put(game.Position{X: 2, Y: r.height}, horizontal)

	for y := 2; y < r.height; y++ {
		r.put(game.Position{X: 1, Y: y}, config.CharVertical)
		r.put(game.Position{X: r.width, Y: y}, config.CharVertical)
	}
}

// borderGlyph returns the border character that belongs at p
func (r *TerminalRenderer) borderGlyph(p game.Position) string {
	switch {
	case p.X == 1 && p.Y == 1:
		return config.CharTopLeft
	case p.X == r.width && p.Y == 1:
		return config.CharTopRight
	case p.X == 1 && p.Y == r.height:
		return config.CharBottomLeft
	case p.X == r.width && p.Y == r.height:
		return config.CharBottomRight
	case p.X == 1 || p.X == r.width:
		return config.CharVertical
	default:
		return config.CharHorizontal
	}
}

func (r *TerminalRenderer) drawMunchie(p game.Position) {
	r.write(escBold + escFgRed)
	r.put(p, config.CharMunchie)
	r.write(escReset)
}

// DrawTick updates only the cells that changed during a tick
func (r *TerminalRenderer) DrawTick(res game.TickResult) error {
	if res.HasVacated {
		r.put(res.Vacated, config.CharEmpty)
	}

	switch res.Collision {
	case game.CollisionWall:
		r.put(res.NewHead, r.borderGlyph(res.NewHead))
	case game.CollisionSelf:
		r.write(escBold + escFgRed)
		r.put(res.NewHead, config.CharCrash)
		r.write(escReset)
	case game.CollisionNone:
		r.write(escBold + escFgGreen)
		r.put(res.NewHead, config.CharFragment)
		r.write(escReset)
	}

	if res.Ate && res.NewMunchie != res.OldMunchie {
		r.drawMunchie(res.NewMunchie)
	}
	return r.err
}

// DrawStatus writes the score line below the board
func (r *TerminalRenderer) DrawStatus(score int, now time.Time) error {
	line := fmt.Sprintf("= Score: %s | %s | Time: %s =",
		humanize.Comma(int64(score)), config.TextControls, now.Format(config.TimeLayout))
	line = runewidth.FillRight(runewidth.Truncate(line, r.width, ""), r.width)

	r.write(escBold + escBgWhite + escFgBlack)
	r.put(game.Position{X: 1, Y: r.height + 1}, line)
	r.write(escReset)
	return r.err
}

// Paused draws the pause overlay
func (r *TerminalRenderer) Paused() error {
	r.overlay(r.height/2, config.TextPaused)
	return r.Flush()
}

// GameOver draws the end-of-game overlay with the given title
func (r *TerminalRenderer) GameOver(title string) error {
	r.overlay(r.height/2-1, title)
	r.overlay(r.height/2+1, config.TextRestart)
	return r.Flush()
}

// overlay writes text centered on row y
func (r *TerminalRenderer) overlay(y int, text string) {
	x := r.width/2 - runewidth.StringWidth(text)/2
	if x < 1 {
		x = 1
	}
	r.write(escBold + escBgWhite + escFgBlack)
	r.put(game.Position{X: x, Y: y}, text)
	r.write(escReset)
}
