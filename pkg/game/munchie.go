package game

import (
	"errors"
	"math/rand"

	"github.com/trytobebee/termsnake/pkg/config"
)

// ErrBoardFull is returned when no interior cell is left for a munchie
var ErrBoardFull = errors.New("game: no free cell left for a munchie")

// Respawn picks a random interior cell not in occupied. Interior means
// 2 <= x < width and 2 <= y < height, so the border is never chosen.
//
// Random draws are capped; past the cap a free cell is chosen directly
// from the list of remaining ones.
func Respawn(occupied map[Position]bool, width, height int, rng *rand.Rand) (Position, error) {
	cols, rows := width-2, height-2
	if cols <= 0 || rows <= 0 {
		return Position{}, ErrBoardFull
	}

	taken := 0
	for p := range occupied {
		if inInterior(p, width, height) {
			taken++
		}
	}
	free := cols*rows - taken
	if free <= 0 {
		return Position{}, ErrBoardFull
	}

	for attempts := 0; attempts < config.RespawnAttemptFactor*free; attempts++ {
		pos := Position{
			X: rng.Intn(cols) + 2,
			Y: rng.Intn(rows) + 2,
		}
		if !occupied[pos] {
			return pos, nil
		}
	}

	cells := make([]Position, 0, free)
	for y := 2; y < height; y++ {
		for x := 2; x < width; x++ {
			p := Position{X: x, Y: y}
			if !occupied[p] {
				cells = append(cells, p)
			}
		}
	}
	return cells[rng.Intn(len(cells))], nil
}

func inInterior(p Position, width, height int) bool {
	return p.X >= 2 && p.X < width && p.Y >= 2 && p.Y < height
}
