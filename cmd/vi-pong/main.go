package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/core"
)

var (
	configFlag  = flag.String("config", "", "Path to TOML config file")
	seedFlag    = flag.Uint64("seed", 0, "Bounce direction seed, 0 = time based")
	logFlag     = flag.String("log", "", "Append debug log to this file")
	noMouseFlag = flag.Bool("no-mouse", false, "Disable mouse tracking, use arrow keys")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *logFlag != "" {
		cfg.LogFile = *logFlag
	}
	if *noMouseFlag {
		cfg.Terminal.Mouse = false
	}

	logFile, err := setupLogging(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashCleanup(screen.Fini)

	// Panic Recovery: restore the terminal before printing the trace
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mVI-PONG CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	a, err := newApp(screen, cfg)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to start game: %v\n", err)
		os.Exit(1)
	}
	a.run()
	screen.Fini()
}

// setupLogging points the standard logger at path, or discards output when path is empty
func setupLogging(path string) (*os.File, error) {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	if path == "" {
		log.SetOutput(io.Discard)
		return nil, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	log.SetOutput(f)
	log.Printf("=== vi-pong started ===")
	return f, nil
}
