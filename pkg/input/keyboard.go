package input

import (
	"errors"
	"fmt"

	"github.com/eiannone/keyboard"
	"github.com/trytobebee/termsnake/pkg/game"
)

// ErrClosed is returned once the keyboard event stream has ended
var ErrClosed = errors.New("input: keyboard closed")

// KeyboardHandler handles keyboard input
type KeyboardHandler struct {
	events <-chan keyboard.KeyEvent
}

// KeyInput represents a keyboard input event
type KeyInput struct {
	Char rune
	Key  keyboard.Key
}

// NewKeyboardHandler creates a new keyboard input handler
func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{}
}

// Start puts the terminal in raw mode and begins listening for keys
func (h *KeyboardHandler) Start() error {
	events, err := keyboard.GetKeys(16)
	if err != nil {
		return fmt.Errorf("open keyboard: %w", err)
	}
	h.events = events
	return nil
}

// Stop restores the terminal mode
func (h *KeyboardHandler) Stop() error {
	return keyboard.Close()
}

// Poll returns the next pending key without blocking. ok is false when no
// key was waiting.
func (h *KeyboardHandler) Poll() (in KeyInput, ok bool, err error) {
	select {
	case ev, open := <-h.events:
		return fromEvent(ev, open)
	default:
		return KeyInput{}, false, nil
	}
}

// Wait blocks until a key is pressed
func (h *KeyboardHandler) Wait() (KeyInput, error) {
	ev, open := <-h.events
	in, _, err := fromEvent(ev, open)
	return in, err
}

func fromEvent(ev keyboard.KeyEvent, open bool) (KeyInput, bool, error) {
	if !open {
		return KeyInput{}, false, ErrClosed
	}
	if ev.Err != nil {
		return KeyInput{}, false, fmt.Errorf("read key: %w", ev.Err)
	}
	return KeyInput{Char: ev.Rune, Key: ev.Key}, true, nil
}

// ParseDirection parses a key input into a direction
func ParseDirection(input KeyInput) (dir game.Direction, isValid bool) {
	// Handle arrow keys
	switch input.Key {
	case keyboard.KeyArrowUp:
		return game.Up, true
	case keyboard.KeyArrowDown:
		return game.Down, true
	case keyboard.KeyArrowLeft:
		return game.Left, true
	case keyboard.KeyArrowRight:
		return game.Right, true
	}

	// Handle vi and WASD keys
	switch input.Char {
	case 'k', 'K', 'w', 'W':
		return game.Up, true
	case 'j', 'J', 's', 'S':
		return game.Down, true
	case 'h', 'H', 'a', 'A':
		return game.Left, true
	case 'l', 'L', 'd', 'D':
		return game.Right, true
	}

	return game.Up, false
}

// IsQuit checks if the input is a quit command
func IsQuit(input KeyInput) bool {
	return input.Char == 'q' || input.Char == 'Q' || input.Key == keyboard.KeyCtrlC
}

// IsRestart checks if the input is a restart command
func IsRestart(input KeyInput) bool {
	return input.Char == 'r' || input.Char == 'R'
}

// IsPause checks if the input toggles pause; the same key resumes
func IsPause(input KeyInput) bool {
	return input.Char == 'p' || input.Char == 'P'
}

// IsBegin checks if the input starts the game from the title screen
func IsBegin(input KeyInput) bool {
	return input.Char == ' ' || input.Key == keyboard.KeySpace
}
