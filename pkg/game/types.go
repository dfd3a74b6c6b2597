package game

import (
	"fmt"
	"math/rand"
	"time"
)

// Position is a 1-based cell on the board
type Position struct {
	X int
	Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns p shifted by d
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// Direction is the heading of the snake
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Opposite returns the direction pointing the other way
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	panic(fmt.Sprintf("game: unknown direction %d", int(d)))
}

// Delta returns the one-cell offset for a move in direction d.
// The y axis grows downwards, as on the terminal.
func (d Direction) Delta() Position {
	switch d {
	case Up:
		return Position{X: 0, Y: -1}
	case Down:
		return Position{X: 0, Y: 1}
	case Left:
		return Position{X: -1, Y: 0}
	case Right:
		return Position{X: 1, Y: 0}
	}
	panic(fmt.Sprintf("game: unknown direction %d", int(d)))
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Fragment is one cell of the snake body
type Fragment struct {
	Pos Position
}

// Munchie is the item the snake eats
type Munchie struct {
	Pos Position
}

// Collision tells what the head ran into
type Collision int

const (
	CollisionNone Collision = iota
	CollisionWall
	CollisionSelf
)

func (c Collision) String() string {
	switch c {
	case CollisionNone:
		return "none"
	case CollisionWall:
		return "wall"
	case CollisionSelf:
		return "self"
	}
	return fmt.Sprintf("Collision(%d)", int(c))
}

// Game represents the state of one play session
type Game struct {
	Width    int
	Height   int
	Score    int
	Interval time.Duration // Sleep between ticks
	Snake    *Snake
	Munchie  Munchie

	rng *rand.Rand
}

// TickResult describes what changed during one tick, for incremental drawing
type TickResult struct {
	OldHead    Position
	NewHead    Position
	Vacated    Position // Old tail cell, valid only when HasVacated
	HasVacated bool
	Ate        bool
	OldMunchie Position
	NewMunchie Position
	Collision  Collision
}
