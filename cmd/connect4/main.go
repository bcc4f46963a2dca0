package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/iamasit07/connect4/internal/config"
	"github.com/iamasit07/connect4/internal/service/announce"
	"github.com/iamasit07/connect4/internal/service/game"
	"github.com/iamasit07/connect4/internal/transport/terminal"
)

func main() {
	verbose := flag.Bool("v", false, "log game events to stderr")
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	config.LoadEnvFile()
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		fatal("invalid configuration: %v", err)
	}

	labels := announce.Labels{Player1: cfg.Player1Label, Player2: cfg.Player2Label}
	console := terminal.NewConsole(os.Stdout, labels)

	sessionManager := game.NewSessionManager(cfg.BoardRows, cfg.BoardColumns, announce.NewAnnouncer(labels, cfg.AnnounceDelay))
	session, err := sessionManager.CreateSession(console)
	if err != nil {
		fatal("could not start game: %v", err)
	}
	defer sessionManager.RemoveSession(session.GameID)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := terminal.Run(ctx, session, console, os.Stdin); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "game ended with error: %v\n", err)
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
