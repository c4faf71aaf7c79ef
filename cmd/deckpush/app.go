package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/phrazzld/deckpush/internal/config"
	"github.com/phrazzld/deckpush/internal/domain"
	"github.com/phrazzld/deckpush/internal/platform/ankiconnect"
	"github.com/phrazzld/deckpush/internal/redact"
	"github.com/phrazzld/deckpush/internal/render"
	"github.com/phrazzld/deckpush/internal/service"
)

// application bundles the wired dependencies of one run.
type application struct {
	config *config.Config
	logger *slog.Logger
	pusher *service.PushService
}

// newApplication wires the AnkiConnect client, the renderer, the note
// builder and the push service from the loaded configuration.
func newApplication(cfg *config.Config, log *slog.Logger) (*application, error) {
	client, err := ankiconnect.NewClient(cfg.Anki, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create AnkiConnect client: %w", err)
	}

	builder, err := service.NewNoteBuilder(render.New(render.DefaultStyles()), cfg.Anki.ModelName)
	if err != nil {
		return nil, fmt.Errorf("failed to create note builder: %w", err)
	}

	pusher, err := service.NewPushService(client, builder, cfg.Anki, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create push service: %w", err)
	}

	return &application{
		config: cfg,
		logger: log,
		pusher: pusher,
	}, nil
}

// runPush processes every deck file in argument order and prints per-file
// and total created/duplicate counts to stdout. Missing files are reported
// and skipped; any other failure aborts the run.
func (a *application) runPush(ctx context.Context, files []string) int {
	a.logger.Info("starting push",
		slog.Int("file_count", len(files)),
		slog.String("model", a.config.Anki.ModelName))

	version, err := a.pusher.CheckConnection(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "AnkiConnect not available: %v\n", err)
		return 1
	}
	fmt.Printf("AnkiConnect v%d connected\n", version)

	if err := a.pusher.EnsureModel(ctx); err != nil {
		a.logger.Error("model provisioning failed", slog.String("error", redact.Error(err)))
		fmt.Fprintf(os.Stderr, "deckpush: %v\n", err)
		return 1
	}

	var totalCreated, totalDuplicates int
	for _, path := range files {
		result, err := a.pusher.ProcessFile(ctx, path)
		if err != nil {
			a.logger.Error("deck file failed",
				slog.String("path", path),
				slog.String("error", redact.Error(err)))
			fmt.Fprintf(os.Stderr, "deckpush: %v\n", err)
			return 1
		}
		if result.Skipped {
			fmt.Fprintf(os.Stderr, "File not found: %s\n", path)
			continue
		}

		fmt.Printf("\n--- %s (%d cards: %s) ---\n",
			result.DeckName, result.CardCount, formatTypeCounts(result.TypeCounts))
		fmt.Printf("  Created: %d\n", result.Created)
		fmt.Printf("  Duplicates: %d\n", result.Duplicates)

		totalCreated += result.Created
		totalDuplicates += result.Duplicates
	}

	fmt.Printf("\n=== Total: %d created, %d duplicates ===\n", totalCreated, totalDuplicates)

	a.logger.Info("push complete",
		slog.Int("created", totalCreated),
		slog.Int("duplicates", totalDuplicates))
	return 0
}

// runDeleteDeck removes every note of the named deck and prints the count.
func (a *application) runDeleteDeck(ctx context.Context, deckName string) int {
	a.logger.Info("starting deck deletion", slog.String("deck", deckName))

	version, err := a.pusher.CheckConnection(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "AnkiConnect not available: %v\n", err)
		return 1
	}
	fmt.Printf("AnkiConnect v%d connected\n", version)

	count, err := a.pusher.DeleteDeck(ctx, deckName)
	if err != nil {
		a.logger.Error("deck deletion failed",
			slog.String("deck", deckName),
			slog.String("error", redact.Error(err)))
		fmt.Fprintf(os.Stderr, "deckpush: %v\n", err)
		return 1
	}

	fmt.Printf("Deleted %d notes from '%s'\n", count, deckName)
	return 0
}

// formatTypeCounts renders a card count breakdown like
// "ordering: 1, single-choice: 3", sorted by type name.
func formatTypeCounts(counts map[domain.CardType]int) string {
	names := make([]string, 0, len(counts))
	for typ := range counts {
		names = append(names, string(typ))
	}
	slices.Sort(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %d", name, counts[domain.CardType(name)]))
	}
	return strings.Join(parts, ", ")
}
