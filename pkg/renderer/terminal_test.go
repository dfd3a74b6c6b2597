package renderer

import (
	"bytes"
	"errors"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trytobebee/termsnake/pkg/config"
	"github.com/trytobebee/termsnake/pkg/game"
)

func newTestRenderer() (*TerminalRenderer, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewTerminalRenderer(&buf, config.Width, config.Height), &buf
}

func TestRedraw_DrawsBoard(t *testing.T) {
	r, buf := newTestRenderer()
	g := game.NewGame(config.Width, config.Height, rand.New(rand.NewSource(1)))

	require.NoError(t, r.Redraw(g))
	out := buf.String()

	assert.Contains(t, out, escClear)
	assert.Contains(t, out, "\033[1;1H"+config.CharTopLeft)
	assert.Contains(t, out, "\033[36;80H"+config.CharBottomRight)
	assert.Contains(t, out, strings.Repeat(config.CharHorizontal, config.Width-2))
	assert.Contains(t, out, "\033[20;20H"+config.CharMunchie)
	for x := 40; x <= 45; x++ {
		assert.Contains(t, out, "\033[20;"+strconv.Itoa(x)+"H"+config.CharFragment)
	}
}

func TestDrawTick_OnlyChangedCells(t *testing.T) {
	r, buf := newTestRenderer()

	res := game.TickResult{
		OldHead:    game.Position{X: 40, Y: 20},
		NewHead:    game.Position{X: 39, Y: 20},
		Vacated:    game.Position{X: 45, Y: 20},
		HasVacated: true,
		OldMunchie: game.Position{X: 20, Y: 20},
		NewMunchie: game.Position{X: 20, Y: 20},
	}
	require.NoError(t, r.DrawTick(res))
	require.NoError(t, r.Flush())
	out := buf.String()

	assert.Contains(t, out, "\033[20;45H"+config.CharEmpty)
	assert.Contains(t, out, "\033[20;39H"+config.CharFragment)
	assert.NotContains(t, out, config.CharMunchie)
	assert.NotContains(t, out, escClear)
}

func TestDrawTick_EatAndCollide(t *testing.T) {
	r, buf := newTestRenderer()

	require.NoError(t, r.DrawTick(game.TickResult{
		NewHead:    game.Position{X: 20, Y: 20},
		Ate:        true,
		OldMunchie: game.Position{X: 20, Y: 20},
		NewMunchie: game.Position{X: 33, Y: 7},
	}))
	require.NoError(t, r.DrawTick(game.TickResult{
		NewHead:   game.Position{X: 1, Y: 12},
		Collision: game.CollisionWall,
	}))
	require.NoError(t, r.DrawTick(game.TickResult{
		NewHead:   game.Position{X: 30, Y: 12},
		Collision: game.CollisionSelf,
	}))
	require.NoError(t, r.Flush())
	out := buf.String()

	assert.Contains(t, out, "\033[7;33H"+config.CharMunchie)
	assert.Contains(t, out, "\033[12;1H"+config.CharVertical)
	assert.Contains(t, out, "\033[12;30H"+config.CharCrash)
}

func TestBorderGlyph(t *testing.T) {
	r, _ := newTestRenderer()

	assert.Equal(t, config.CharTopLeft, r.borderGlyph(game.Position{X: 1, Y: 1}))
	assert.Equal(t, config.CharBottomRight, r.borderGlyph(game.Position{X: config.Width, Y: config.Height}))
	assert.Equal(t, config.CharVertical, r.borderGlyph(game.Position{X: config.Width, Y: 5}))
	assert.Equal(t, config.CharHorizontal, r.borderGlyph(game.Position{X: 5, Y: config.Height}))
}

func TestDrawStatus(t *testing.T) {
	r, buf := newTestRenderer()
	now := time.Date(2024, 3, 1, 14, 5, 9, 0, time.Local)

	require.NoError(t, r.DrawStatus(1234, now))
	require.NoError(t, r.Flush())
	out := buf.String()

	assert.Contains(t, out, "\033[37;1H")
	assert.Contains(t, out, "Score: 1,234")
	assert.Contains(t, out, config.TextControls)
	assert.Contains(t, out, "Time: 14:05:09")
}

var ansiEscape = regexp.MustCompile("\x1b\\[[0-9;?]*[A-Za-z]")

func TestDrawStatus_FitsBoardWidth(t *testing.T) {
	now := time.Date(2024, 3, 1, 14, 5, 9, 0, time.Local)
	for _, score := range []int{0, 9, 10, 1234, 9999999, 1 << 40} {
		r, buf := newTestRenderer()
		require.NoError(t, r.DrawStatus(score, now))
		require.NoError(t, r.Flush())

		plain := ansiEscape.ReplaceAllString(buf.String(), "")
		assert.Equal(t, config.Width, runewidth.StringWidth(plain), "score %d", score)
		if score < 1000000000 {
			assert.Contains(t, plain, "Time: 14:05:09", "score %d", score)
		}
	}
}

func TestOverlays(t *testing.T) {
	r, buf := newTestRenderer()

	require.NoError(t, r.Paused())
	assert.Contains(t, buf.String(), "\033[18;34H"+config.TextPaused)

	buf.Reset()
	require.NoError(t, r.GameOver(config.TextGameOver))
	out := buf.String()
	assert.Contains(t, out, "\033[17;33H"+config.TextGameOver)
	assert.Contains(t, out, "\033[19;31H"+config.TextRestart)
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errWrite
}

func TestWriteErrorIsSticky(t *testing.T) {
	r := NewTerminalRenderer(failingWriter{}, config.Width, config.Height)
	g := game.NewGame(config.Width, config.Height, rand.New(rand.NewSource(1)))

	assert.Equal(t, errWrite, r.Redraw(g))
	assert.Equal(t, errWrite, r.DrawStatus(0, time.Now()))
	assert.Equal(t, errWrite, r.Flush())
}
