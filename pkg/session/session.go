// Package session runs the game loop and its screen state machine.
package session

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/trytobebee/termsnake/pkg/config"
	"github.com/trytobebee/termsnake/pkg/game"
	"github.com/trytobebee/termsnake/pkg/input"
)

// State is the screen the session is on
type State int

const (
	Start State = iota
	Playing
	Paused
	GameOver
	Terminated
)

func (s State) String() string {
	switch s {
	case Start:
		return "start"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case GameOver:
		return "game-over"
	case Terminated:
		return "terminated"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// KeySource delivers key presses
type KeySource interface {
	// Poll returns a pending key without blocking
	Poll() (input.KeyInput, bool, error)
	// Wait blocks until a key arrives
	Wait() (input.KeyInput, error)
}

// Screen is what the session draws on
type Screen interface {
	Banner() error
	Redraw(g *game.Game) error
	DrawTick(res game.TickResult) error
	DrawStatus(score int, now time.Time) error
	Paused() error
	GameOver(title string) error
	Flush() error
}

// Session owns one game and drives it from the keyboard
type Session struct {
	game   *game.Game
	keys   KeySource
	screen Screen
	state  State

	// Sleep paces the ticks; Now stamps the status line
	Sleep func(time.Duration)
	Now   func() time.Time
}

// New creates a session on the title screen
func New(g *game.Game, keys KeySource, screen Screen) *Session {
	return &Session{
		game:   g,
		keys:   keys,
		screen: screen,
		state:  Start,
		Sleep:  time.Sleep,
		Now:    time.Now,
	}
}

// State returns the current screen
func (s *Session) State() State {
	return s.state
}

// Game returns the game being played
func (s *Session) Game() *game.Game {
	return s.game
}

// Run loops until the player quits. A non-nil error means the terminal
// failed and the display can no longer be trusted.
func (s *Session) Run() error {
	if err := s.screen.Banner(); err != nil {
		return fmt.Errorf("draw banner: %w", err)
	}
	for s.state != Terminated {
		if err := s.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Step runs the current state once: a tick while playing, or one key
// press on any other screen.
func (s *Session) Step() error {
	var (
		next State
		err  error
	)
	switch s.state {
	case Start:
		next, err = s.stepStart()
	case Playing:
		next, err = s.stepPlaying()
	case Paused:
		next, err = s.stepPaused()
	case GameOver:
		next, err = s.stepGameOver()
	case Terminated:
		return nil
	default:
		panic(fmt.Sprintf("session: unknown state %v", s.state))
	}
	if err != nil {
		return err
	}
	if next != s.state {
		log.Printf("session: %v -> %v (score %d)", s.state, next, s.game.Score)
		s.state = next
	}
	return nil
}

func (s *Session) stepStart() (State, error) {
	key, err := s.keys.Wait()
	if err != nil {
		return s.state, fmt.Errorf("wait for start: %w", err)
	}
	switch {
	case input.IsBegin(key):
		s.game.Reset()
		return s.resume()
	case input.IsQuit(key):
		return Terminated, nil
	}
	return Start, nil
}

func (s *Session) stepPlaying() (State, error) {
	key, ok, err := s.keys.Poll()
	if err != nil {
		return s.state, fmt.Errorf("poll keyboard: %w", err)
	}
	if ok {
		switch {
		case input.IsQuit(key):
			return Terminated, nil
		case input.IsPause(key):
			if err := s.screen.Paused(); err != nil {
				return s.state, fmt.Errorf("draw pause: %w", err)
			}
			return Paused, nil
		default:
			if dir, valid := input.ParseDirection(key); valid {
				s.game.SetDirection(dir)
			}
		}
	}

	// overTitle is set once the game has ended this tick
	var overTitle string
	res, err := s.game.Tick()
	switch {
	case errors.Is(err, game.ErrBoardFull):
		log.Printf("session: board full at score %d", s.game.Score)
		overTitle = config.TextBoardFull
	case err != nil:
		return s.state, err
	case res.Ate:
		log.Printf("session: munchie eaten, respawned at %v, interval %v", res.NewMunchie, s.game.Interval)
	}

	if err := s.screen.DrawTick(res); err != nil {
		return s.state, fmt.Errorf("draw tick: %w", err)
	}

	if res.Collision != game.CollisionNone {
		log.Printf("session: %v collision at %v", res.Collision, res.NewHead)
		if overTitle == "" {
			overTitle = config.TextGameOver
		}
	}

	if err := s.screen.DrawStatus(s.game.Score, s.Now()); err != nil {
		return s.state, fmt.Errorf("draw status: %w", err)
	}

	if overTitle != "" {
		if err := s.screen.GameOver(overTitle); err != nil {
			return s.state, fmt.Errorf("draw game over: %w", err)
		}
		return GameOver, nil
	}

	if err := s.screen.Flush(); err != nil {
		return s.state, fmt.Errorf("flush: %w", err)
	}
	s.Sleep(s.game.Interval)
	return Playing, nil
}

func (s *Session) stepPaused() (State, error) {
	key, err := s.keys.Wait()
	if err != nil {
		return s.state, fmt.Errorf("wait while paused: %w", err)
	}
	switch {
	case input.IsPause(key):
		return s.resume()
	case input.IsQuit(key):
		return Terminated, nil
	}
	return Paused, nil
}

func (s *Session) stepGameOver() (State, error) {
	key, err := s.keys.Wait()
	if err != nil {
		return s.state, fmt.Errorf("wait after game over: %w", err)
	}
	switch {
	case input.IsRestart(key):
		s.game.Reset()
		return s.resume()
	case input.IsQuit(key):
		return Terminated, nil
	}
	return GameOver, nil
}

// resume redraws the whole board and goes back to playing
func (s *Session) resume() (State, error) {
	if err := s.screen.Redraw(s.game); err != nil {
		return s.state, fmt.Errorf("redraw: %w", err)
	}
	return Playing, nil
}
