// Package main implements the deckpush command-line tool, which converts
// structured quiz-card JSON files into richly formatted interactive
// flashcards inside a running Anki instance over the AnkiConnect HTTP API.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/phrazzld/deckpush/internal/config"
	"github.com/phrazzld/deckpush/internal/platform/logger"
)

const usageText = `Usage: deckpush <file.json> [file2.json ...]
       deckpush --delete-deck <deck-name>

Pushes quiz-card deck files to Anki through AnkiConnect, or deletes every
note of a deck. Requires Anki running with the AnkiConnect add-on.
Configuration comes from DECKPUSH_* environment variables, optionally via
a .env file in the working directory.
`

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes one invocation and returns the process exit code: 0 on
// success, 1 on a runtime failure, 2 on a usage error.
func run(args []string) int {
	flags := flag.NewFlagSet("deckpush", flag.ContinueOnError)
	flags.SetOutput(os.Stderr)
	flags.Usage = func() {
		fmt.Fprint(os.Stderr, usageText)
	}
	deleteDeck := flags.String(
		"delete-deck", "",
		"delete every note in the named deck instead of pushing files",
	)

	if err := flags.Parse(args); err != nil {
		return 2
	}

	files := flags.Args()
	switch {
	case *deleteDeck != "" && len(files) > 0:
		fmt.Fprintln(os.Stderr, "deckpush: --delete-deck cannot be combined with deck files")
		flags.Usage()
		return 2
	case *deleteDeck == "" && len(files) == 0:
		flags.Usage()
		return 2
	}

	loadDotenv()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "deckpush: %v\n", err)
		return 1
	}

	log := logger.Setup(cfg.Log)
	runLog := log.With(slog.String("run_id", uuid.New().String()))

	app, err := newApplication(cfg, runLog)
	if err != nil {
		runLog.Error("failed to initialize application", slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "deckpush: %v\n", err)
		return 1
	}

	ctx := context.Background()
	if *deleteDeck != "" {
		return app.runDeleteDeck(ctx, *deleteDeck)
	}
	return app.runPush(ctx, files)
}

// loadDotenv pulls in an optional .env file from the working directory.
// A missing file is the normal case; any other failure means a .env exists
// but cannot be used, which is worth a warning because the run would proceed
// with the wrong environment. Real environment variables win either way.
func loadDotenv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "deckpush: could not load .env: %v\n", err)
	}
}
