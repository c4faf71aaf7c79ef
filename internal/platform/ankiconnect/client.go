package ankiconnect

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/deckpush/internal/config"
	"github.com/phrazzld/deckpush/internal/domain"
	"github.com/phrazzld/deckpush/internal/redact"
)

// Client talks to a local AnkiConnect endpoint.
type Client struct {
	// logger is used for structured logging
	logger *slog.Logger

	// url is the AnkiConnect endpoint
	url string

	// http is the underlying HTTP client. It carries no timeout: the
	// pipeline is synchronous and a slow Anki simply makes the run slow.
	http *http.Client
}

// NewClient creates a Client for the configured AnkiConnect endpoint.
func NewClient(cfg config.AnkiConfig, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.URL == "" {
		return nil, errors.New("AnkiConnect URL cannot be empty")
	}

	clientLogger := logger.With(slog.String("component", "ankiconnect"))
	clientLogger.Debug("AnkiConnect client configured",
		slog.String("url", redact.String(cfg.URL)))

	return &Client{
		logger: clientLogger,
		url:    cfg.URL,
		http:   &http.Client{},
	}, nil
}

// invoke posts one AnkiConnect action and decodes the result slot into out
// when out is non-nil. A scalar error slot fails the call; a list-shaped
// error slot on batch actions is tolerated, because the affected notes
// already surface as null result slots.
func (c *Client) invoke(ctx context.Context, action string, params, out any) error {
	if params == nil {
		params = struct{}{}
	}
	body, err := json.Marshal(request{
		Action:  action,
		Version: ProtocolVersion,
		Params:  params,
	})
	if err != nil {
		return fmt.Errorf("failed to encode %s request: %w", action, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", action, err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.DebugContext(ctx, "calling AnkiConnect", slog.String("action", action))

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.WarnContext(ctx, "failed to close response body",
				slog.String("action", action),
				slog.Any("error", cerr))
		}
	}()

	var envelope response
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", action, err)
	}

	if err := c.checkError(ctx, action, envelope.Error); err != nil {
		return err
	}

	if out != nil && len(envelope.Result) > 0 && string(envelope.Result) != "null" {
		if err := json.Unmarshal(envelope.Result, out); err != nil {
			return fmt.Errorf("failed to decode %s result: %w", action, err)
		}
	}

	return nil
}

// checkError interprets the error slot of a reply.
func (c *Client) checkError(ctx context.Context, action string, raw json.RawMessage) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return nil
	}

	if trimmed[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err == nil {
			if len(items) > 0 {
				c.logger.WarnContext(ctx, "AnkiConnect reported per-note errors",
					slog.String("action", action),
					slog.Int("count", len(items)))
			}
			return nil
		}
	}

	var message string
	if err := json.Unmarshal(trimmed, &message); err != nil {
		message = string(trimmed)
	}
	return &APIError{Action: action, Message: message}
}

// Version probes connectivity and returns the AnkiConnect API version.
func (c *Client) Version(ctx context.Context) (int, error) {
	var version int
	if err := c.invoke(ctx, "version", nil, &version); err != nil {
		return 0, err
	}
	return version, nil
}

// CreateDeck ensures the named deck exists. Creating a deck that already
// exists is a server-side no-op.
func (c *Client) CreateDeck(ctx context.Context, name string) error {
	return c.invoke(ctx, "createDeck", deckParams{Deck: name}, nil)
}

// ModelNames returns the note models registered in the target Anki
// installation.
func (c *Client) ModelNames(ctx context.Context) ([]string, error) {
	var names []string
	if err := c.invoke(ctx, "modelNames", nil, &names); err != nil {
		return nil, err
	}
	return names, nil
}

// ModelFieldNames returns the field names of the given model, in model
// order.
func (c *Client) ModelFieldNames(ctx context.Context, modelName string) ([]string, error) {
	var fields []string
	if err := c.invoke(ctx, "modelFieldNames", modelNameParams{ModelName: modelName}, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// CreateModel registers a new note model.
func (c *Client) CreateModel(ctx context.Context, params CreateModelParams) error {
	return c.invoke(ctx, "createModel", params, nil)
}

// AddNotes submits one batch of notes. The result carries one slot per
// submitted note, in order: the new note's id, or nil when AnkiConnect
// skipped the note as a duplicate of an existing one.
func (c *Client) AddNotes(ctx context.Context, notes []domain.Note) ([]*int64, error) {
	var ids []*int64
	if err := c.invoke(ctx, "addNotes", addNotesParams{Notes: notes}, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// FindNotes returns the ids of every note matching an Anki search query.
func (c *Client) FindNotes(ctx context.Context, query string) ([]int64, error) {
	var ids []int64
	if err := c.invoke(ctx, "findNotes", findNotesParams{Query: query}, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// DeleteNotes removes the given notes from the collection.
func (c *Client) DeleteNotes(ctx context.Context, ids []int64) error {
	return c.invoke(ctx, "deleteNotes", deleteNotesParams{Notes: ids}, nil)
}

// DeckQuery returns the Anki search query selecting every note of one deck.
func DeckQuery(deckName string) string {
	return fmt.Sprintf(`deck:"%s"`, deckName)
}
