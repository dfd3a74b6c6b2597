package renderer

import (
	"io"
	"math/rand"
	"testing"
	"time"

	"github.com/trytobebee/termsnake/pkg/config"
	"github.com/trytobebee/termsnake/pkg/game"
)

// BenchmarkFullRedraw redraws the whole board every frame
func BenchmarkFullRedraw(b *testing.B) {
	g := game.NewGame(config.Width, config.Height, rand.New(rand.NewSource(1)))
	r := NewTerminalRenderer(io.Discard, config.Width, config.Height)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := r.Redraw(g); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkIncrementalTick draws only the cells a tick changed, plus the
// status line, the way the game loop does
func BenchmarkIncrementalTick(b *testing.B) {
	r := NewTerminalRenderer(io.Discard, config.Width, config.Height)
	res := game.TickResult{
		OldHead:    game.Position{X: 40, Y: 20},
		NewHead:    game.Position{X: 39, Y: 20},
		Vacated:    game.Position{X: 45, Y: 20},
		HasVacated: true,
	}
	now := time.Now()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.DrawTick(res)
		r.DrawStatus(i, now)
		if err := r.Flush(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGameTick runs the game update and its incremental draw together
func BenchmarkGameTick(b *testing.B) {
	g := game.NewGame(config.Width, config.Height, rand.New(rand.NewSource(1)))
	r := NewTerminalRenderer(io.Discard, config.Width, config.Height)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if i%20 == 0 {
			g.Reset()
		}
		res, err := g.Tick()
		if err != nil {
			b.Fatal(err)
		}
		r.DrawTick(res)
		if err := r.Flush(); err != nil {
			b.Fatal(err)
		}
	}
}
