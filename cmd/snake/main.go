package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/go-errors/errors"
	isatty "github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/trytobebee/termsnake/pkg/config"
	"github.com/trytobebee/termsnake/pkg/game"
	"github.com/trytobebee/termsnake/pkg/input"
	"github.com/trytobebee/termsnake/pkg/renderer"
	"github.com/trytobebee/termsnake/pkg/session"
)

func main() {
	os.Exit(run())
}

// checkTerminal makes sure we are drawing on a terminal big enough for the
// board plus its status line
func checkTerminal() error {
	if !isatty.IsTerminal(os.Stdin.Fd()) || !isatty.IsTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("snake must be run in an interactive terminal")
	}
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return fmt.Errorf("read terminal size: %w", err)
	}
	if cols < config.Width || rows < config.Height+1 {
		return fmt.Errorf("terminal is %dx%d, need at least %dx%d", cols, rows, config.Width, config.Height+1)
	}
	return nil
}

func run() (code int) {
	closeLog := InitLog()
	defer closeLog()

	if err := checkTerminal(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}

	// Initialize input handler
	inputHandler := input.NewKeyboardHandler()
	if err := inputHandler.Start(); err != nil {
		fmt.Fprintln(os.Stderr, "Error opening keyboard:", err)
		return 1
	}

	// Initialize renderer
	render := renderer.NewTerminalRenderer(os.Stdout, config.Width, config.Height)

	restore := func() {
		if err := render.Teardown(); err != nil {
			log.Printf("restore screen: %v", err)
		}
		if err := inputHandler.Stop(); err != nil {
			log.Printf("restore keyboard: %v", err)
		}
	}

	defer func() {
		if r := recover(); r != nil {
			restore()
			fmt.Println("snake encountered an error:", errors.Wrap(r, 2).ErrorStack())
			code = 1
		}
	}()

	if err := render.Setup(); err != nil {
		restore()
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	g := game.NewGame(config.Width, config.Height, rng)
	s := session.New(g, inputHandler, render)

	err := s.Run()
	restore()
	if err != nil {
		log.Printf("terminal failure: %v", err)
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	log.Printf("quit with score %d", g.Score)
	return 0
}
