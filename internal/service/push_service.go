package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"slices"

	"github.com/phrazzld/deckpush/internal/config"
	"github.com/phrazzld/deckpush/internal/domain"
	"github.com/phrazzld/deckpush/internal/platform/ankiconnect"
	"github.com/phrazzld/deckpush/internal/redact"
	"github.com/phrazzld/deckpush/internal/render"
)

// AnkiClient defines the AnkiConnect operations the push pipeline depends on.
type AnkiClient interface {
	// Version returns the protocol version of the running AnkiConnect add-on
	Version(ctx context.Context) (int, error)

	// CreateDeck creates the named deck, succeeding silently if it exists
	CreateDeck(ctx context.Context, deckName string) error

	// ModelNames lists the note models known to the target installation
	ModelNames(ctx context.Context) ([]string, error)

	// ModelFieldNames lists the field names of the named note model
	ModelFieldNames(ctx context.Context, modelName string) ([]string, error)

	// CreateModel creates a note model with fields, templates and styling
	CreateModel(ctx context.Context, params ankiconnect.CreateModelParams) error

	// AddNotes uploads notes in one call; the result carries one entry per
	// note, nil when the server skipped it as a duplicate
	AddNotes(ctx context.Context, notes []domain.Note) ([]*int64, error)

	// FindNotes returns the ids of notes matching an Anki search query
	FindNotes(ctx context.Context, query string) ([]int64, error)

	// DeleteNotes deletes notes by id
	DeleteNotes(ctx context.Context, noteIDs []int64) error
}

// Ensure ankiconnect.Client implements AnkiClient interface
var _ AnkiClient = (*ankiconnect.Client)(nil)

// FileResult summarizes the outcome of pushing one deck file.
type FileResult struct {
	// Path is the input file the result describes
	Path string

	// DeckName is the target deck parsed from the file
	DeckName string

	// CardCount is the number of cards the file contained
	CardCount int

	// TypeCounts breaks CardCount down by normalized card type
	TypeCounts map[domain.CardType]int

	// Created is the number of notes newly added by the server
	Created int

	// Duplicates is the number of notes the server skipped as duplicates
	Duplicates int

	// Skipped reports that the file was missing and contributed nothing
	Skipped bool
}

// PushService orchestrates the deck push pipeline: connection probe, model
// provisioning, per-file deck creation, note building and batched upload.
type PushService struct {
	client    AnkiClient
	builder   *NoteBuilder
	batchSize int
	modelName string
	logger    *slog.Logger
}

// NewPushService creates a new PushService.
// It returns an error if any of the required dependencies are nil.
func NewPushService(
	client AnkiClient,
	builder *NoteBuilder,
	cfg config.AnkiConfig,
	logger *slog.Logger,
) (*PushService, error) {
	// Validate dependencies
	if client == nil {
		return nil, NewPushError("new_push_service", "client cannot be nil", nil)
	}
	if builder == nil {
		return nil, NewPushError("new_push_service", "builder cannot be nil", nil)
	}
	if cfg.BatchSize <= 0 {
		return nil, NewPushError(
			"new_push_service",
			fmt.Sprintf("batch size must be positive, got %d", cfg.BatchSize),
			nil,
		)
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	return &PushService{
		client:    client,
		builder:   builder,
		batchSize: cfg.BatchSize,
		modelName: builder.ModelName(),
		logger:    logger.With(slog.String("component", "push_service")),
	}, nil
}

// CheckConnection verifies AnkiConnect is reachable and returns its protocol
// version. It is the first call of every run so a stopped Anki fails fast.
func (s *PushService) CheckConnection(ctx context.Context) (int, error) {
	version, err := s.client.Version(ctx)
	if err != nil {
		// Transport errors echo the configured URL, which may carry userinfo
		s.logger.Error("AnkiConnect is not reachable",
			slog.String("error", redact.Error(err)))
		return 0, NewPushError("check_connection", "AnkiConnect is not reachable", err)
	}

	s.logger.Debug("AnkiConnect reachable", slog.Int("version", version))
	return version, nil
}

// EnsureModel guarantees the note model exists with every field the notes
// use. An existing model missing any expected field is a fatal mismatch:
// AnkiConnect cannot alter a model's fields in place, so the model has to be
// deleted and recreated, or the fields added by hand.
func (s *PushService) EnsureModel(ctx context.Context) error {
	names, err := s.client.ModelNames(ctx)
	if err != nil {
		return NewPushError("ensure_model", "failed to list note models", err)
	}

	if slices.Contains(names, s.modelName) {
		fields, err := s.client.ModelFieldNames(ctx, s.modelName)
		if err != nil {
			return NewPushError("ensure_model", "failed to list model fields", err)
		}

		var missing []string
		for _, field := range domain.ModelFieldNames {
			if !slices.Contains(fields, field) {
				missing = append(missing, field)
			}
		}
		if len(missing) > 0 {
			s.logger.Error("note model is missing fields",
				slog.String("model", s.modelName),
				slog.Any("missing_fields", missing))
			return NewPushError(
				"ensure_model",
				fmt.Sprintf(
					"model %q is missing fields %v; delete and recreate the model, or add the fields manually",
					s.modelName, missing),
				ErrModelMismatch,
			)
		}

		s.logger.Debug("note model present", slog.String("model", s.modelName))
		return nil
	}

	s.logger.Info("creating note model", slog.String("model", s.modelName))

	err = s.client.CreateModel(ctx, ankiconnect.CreateModelParams{
		ModelName:     s.modelName,
		InOrderFields: domain.ModelFieldNames,
		CSS:           render.CardCSS,
		CardTemplates: []ankiconnect.CardTemplate{
			{
				Name:  render.TemplateName,
				Front: render.FrontTemplate,
				Back:  render.BackTemplate,
			},
		},
	})
	if err != nil {
		return NewPushError("ensure_model", "failed to create note model", err)
	}

	s.logger.Info("note model created", slog.String("model", s.modelName))
	return nil
}

// ProcessFile reads one deck file, ensures its deck exists, builds a note for
// every card and pushes them in batches. A missing file is tolerated: the
// result comes back with Skipped set and zero counts so the caller can move
// on to the next file. Any other failure, including a single invalid card,
// aborts the run.
func (s *PushService) ProcessFile(ctx context.Context, path string) (*FileResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("input file not found", slog.String("path", path))
			return &FileResult{Path: path, Skipped: true}, nil
		}
		return nil, NewPushError("process_file", fmt.Sprintf("failed to read %s", path), err)
	}

	var deck domain.Deck
	if err := json.Unmarshal(data, &deck); err != nil {
		return nil, NewPushError("process_file", fmt.Sprintf("failed to parse %s", path), err)
	}
	if err := deck.Validate(); err != nil {
		return nil, NewPushError("process_file", fmt.Sprintf("invalid deck in %s", path), err)
	}

	s.logger.Info("processing deck file",
		slog.String("path", path),
		slog.String("deck", deck.DeckName),
		slog.Int("card_count", len(deck.Cards)))

	if err := s.client.CreateDeck(ctx, deck.DeckName); err != nil {
		return nil, NewPushError(
			"process_file",
			fmt.Sprintf("failed to create deck %q", deck.DeckName),
			err,
		)
	}

	notes := make([]domain.Note, 0, len(deck.Cards))
	for i := range deck.Cards {
		note, err := s.builder.BuildNote(&deck.Cards[i], deck.DeckName)
		if err != nil {
			return nil, NewPushError(
				"process_file",
				fmt.Sprintf("failed to build note from %s", path),
				err,
			)
		}
		notes = append(notes, *note)
	}

	created, duplicates, err := s.PushNotes(ctx, notes)
	if err != nil {
		return nil, err
	}

	return &FileResult{
		Path:       path,
		DeckName:   deck.DeckName,
		CardCount:  len(deck.Cards),
		TypeCounts: deck.TypeCounts(),
		Created:    created,
		Duplicates: duplicates,
	}, nil
}

// PushNotes uploads notes in fixed-size batches and tallies the server's
// verdict per note: a non-nil id means created, nil means the server skipped
// the note as a duplicate of an existing one.
func (s *PushService) PushNotes(ctx context.Context, notes []domain.Note) (int, int, error) {
	var created, duplicates int

	for start := 0; start < len(notes); start += s.batchSize {
		end := start + s.batchSize
		if end > len(notes) {
			end = len(notes)
		}
		batch := notes[start:end]

		ids, err := s.client.AddNotes(ctx, batch)
		if err != nil {
			return 0, 0, NewPushError("push_notes", "failed to add notes", err)
		}

		for _, id := range ids {
			if id == nil {
				duplicates++
			} else {
				created++
			}
		}

		s.logger.Debug("pushed note batch",
			slog.Int("batch_size", len(batch)),
			slog.Int("created_so_far", created),
			slog.Int("duplicates_so_far", duplicates))
	}

	return created, duplicates, nil
}

// DeleteDeck removes every note in the named deck and returns how many were
// deleted. A deck with no notes, or no deck at all, deletes nothing and
// returns zero.
func (s *PushService) DeleteDeck(ctx context.Context, deckName string) (int, error) {
	if deckName == "" {
		return 0, NewPushError("delete_deck", "deck name cannot be empty", domain.ErrDeckNameEmpty)
	}

	noteIDs, err := s.client.FindNotes(ctx, ankiconnect.DeckQuery(deckName))
	if err != nil {
		return 0, NewPushError(
			"delete_deck",
			fmt.Sprintf("failed to find notes in deck %q", deckName),
			err,
		)
	}
	if len(noteIDs) == 0 {
		s.logger.Info("no notes to delete", slog.String("deck", deckName))
		return 0, nil
	}

	if err := s.client.DeleteNotes(ctx, noteIDs); err != nil {
		return 0, NewPushError(
			"delete_deck",
			fmt.Sprintf("failed to delete notes in deck %q", deckName),
			err,
		)
	}

	s.logger.Info("deleted notes",
		slog.String("deck", deckName),
		slog.Int("note_count", len(noteIDs)))
	return len(noteIDs), nil
}
