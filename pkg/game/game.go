package game

import (
	"fmt"
	"math/rand"

	"github.com/trytobebee/termsnake/pkg/config"
)

// NewGame creates a new game on a width x height board, border included
func NewGame(width, height int, rng *rand.Rand) *Game {
	g := &Game{
		Width:  width,
		Height: height,
		rng:    rng,
	}
	g.Reset()
	return g
}

// Reset puts the game back to its starting values
func (g *Game) Reset() {
	row := g.Height/2 + 2
	g.Score = 0
	g.Interval = config.StartInterval
	g.Snake = NewSnake(Position{X: g.Width / 2, Y: row}, config.InitialLength, Left)
	g.Munchie = Munchie{Pos: Position{X: g.Width / 4, Y: row}}
}

// SetDirection turns the snake, ignoring a reversal
func (g *Game) SetDirection(dir Direction) bool {
	return g.Snake.Turn(dir)
}

// CheckMunchie reports whether the head is on the munchie. When it is,
// the score and speed go up and the munchie is respawned. The munchie still
// counts as eaten when ErrBoardFull is returned.
func (g *Game) CheckMunchie() (bool, error) {
	if g.Snake.Head() != g.Munchie.Pos {
		return false, nil
	}

	g.recordMunchie()

	// The cell the head moves into this tick is taken too
	occupied := g.Snake.Positions()
	occupied[g.Snake.Head().Add(g.Snake.Direction.Delta())] = true

	pos, err := Respawn(occupied, g.Width, g.Height, g.rng)
	if err != nil {
		return true, err
	}
	g.Munchie = Munchie{Pos: pos}
	return true, nil
}

// recordMunchie applies the score and speed-up for one munchie
func (g *Game) recordMunchie() {
	g.Score++
	g.Interval -= config.IntervalDelta
	if g.Interval < config.MinInterval {
		g.Interval = config.MinInterval
	}
}

// Collision tells whether the head hit the border or the body
func (g *Game) Collision() Collision {
	head := g.Snake.Head()

	if head.X == 1 || head.X == g.Width || head.Y == 1 || head.Y == g.Height {
		return CollisionWall
	}

	for i, f := range g.Snake.Fragments {
		if i != 0 && f.Pos == head {
			return CollisionSelf
		}
	}
	return CollisionNone
}

// CheckCollision reports whether the snake died
func (g *Game) CheckCollision() bool {
	return g.Collision() != CollisionNone
}

// Tick runs one step: munchie check, advance, collision check.
// ErrBoardFull is returned when the eaten munchie has nowhere to respawn;
// the snake has still grown and the result is valid.
func (g *Game) Tick() (TickResult, error) {
	res := TickResult{
		OldHead:    g.Snake.Head(),
		OldMunchie: g.Munchie.Pos,
	}

	ate, spawnErr := g.CheckMunchie()
	res.Ate = ate
	res.NewMunchie = g.Munchie.Pos

	if !ate {
		res.Vacated = g.Snake.Tail()
		res.HasVacated = true
	}
	g.Snake.Advance(ate)
	res.NewHead = g.Snake.Head()
	res.Collision = g.Collision()

	if spawnErr != nil {
		return res, fmt.Errorf("tick at %v: %w", res.NewHead, spawnErr)
	}
	return res, nil
}
