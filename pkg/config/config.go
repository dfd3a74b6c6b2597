package config

import "time"

// Game board dimensions, border included
const (
	Width  = 80
	Height = 36
)

// Speed settings
const (
	StartInterval = 100 * time.Millisecond // Tick interval of a fresh game
	MinInterval   = 75 * time.Millisecond  // Fastest the game ever gets
	IntervalDelta = 2 * time.Millisecond   // Speed-up per munchie eaten
)

// Snake settings
const (
	InitialLength = 6
)

// Munchie spawn settings
const (
	// RespawnAttemptFactor caps random sampling at this many draws per free cell
	RespawnAttemptFactor = 8
)

// Characters for rendering
const (
	CharTopLeft     = "╔"
	CharTopRight    = "╗"
	CharBottomLeft  = "╚"
	CharBottomRight = "╝"
	CharVertical    = "║"
	CharHorizontal  = "═"
	CharFragment    = "@"
	CharMunchie     = "¤"
	CharCrash       = "X"
	CharEmpty       = " "
)

// Overlay and status text
const (
	TextPaused    = "===PAUSED==="
	TextGameOver  = "===GAME OVER==="
	TextBoardFull = "===BOARD FULL==="
	TextRestart   = "Press r to restart"
	TextControls  = "Move: h/j/k/l / Pause: p / Quit: q"
	TimeLayout    = "15:04:05"
)

// Debug turns on the log file when set to "ON" at build time:
//
//	go build -ldflags "-X github.com/trytobebee/termsnake/pkg/config.Debug=ON" ./cmd/snake
var Debug = "OFF"

// LogFile is where the debug log goes; it starts empty on every run
const LogFile = "snake.log"
