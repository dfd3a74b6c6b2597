package main

import (
	"io"
	"log"
	"os"

	"github.com/trytobebee/termsnake/pkg/config"
)

// InitLog sends the log to config.LogFile when the debug build flag is on,
// and nowhere otherwise. The terminal is never written to.
func InitLog() func() {
	log.SetOutput(io.Discard)
	if config.Debug != "ON" {
		return func() {}
	}

	f, err := os.Create(config.LogFile)
	if err != nil {
		return func() {}
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.Println("snake started with logging enabled")
	return func() {
		log.SetOutput(io.Discard)
		f.Close()
	}
}
