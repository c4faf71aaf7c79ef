package ankiconnect

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/deckpush/internal/config"
	"github.com/phrazzld/deckpush/internal/domain"
)

// recordedRequest captures one envelope received by the fake endpoint.
type recordedRequest struct {
	Action  string          `json:"action"`
	Version int             `json:"version"`
	Params  json.RawMessage `json:"params"`
}

// newTestClient starts a fake AnkiConnect endpoint that answers every
// action with the scripted body and returns a client pointed at it plus
// the recorded envelopes.
func newTestClient(t *testing.T, responses map[string]string) (*Client, *[]recordedRequest) {
	t.Helper()

	var requests []recordedRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req recordedRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		requests = append(requests, req)

		body, ok := responses[req.Action]
		if !ok {
			body = `{"result": null, "error": null}`
		}
		w.Header().Set("Content-Type", "application/json")
		_, err := io.WriteString(w, body)
		require.NoError(t, err)
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(
		config.AnkiConfig{URL: server.URL},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	require.NoError(t, err)

	return client, &requests
}

func TestNewClientValidation(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := NewClient(config.AnkiConfig{URL: "http://127.0.0.1:8765"}, nil)
	assert.Error(t, err, "nil logger should be rejected")

	_, err = NewClient(config.AnkiConfig{}, logger)
	assert.Error(t, err, "empty URL should be rejected")

	client, err := NewClient(config.AnkiConfig{URL: "http://127.0.0.1:8765"}, logger)
	assert.NoError(t, err)
	assert.NotNil(t, client)
}

func TestVersion(t *testing.T) {
	client, requests := newTestClient(t, map[string]string{
		"version": `{"result": 6, "error": null}`,
	})

	version, err := client.Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 6, version)
	require.Len(t, *requests, 1)
	assert.Equal(t, "version", (*requests)[0].Action)
	assert.Equal(t, ProtocolVersion, (*requests)[0].Version)
	assert.JSONEq(t, `{}`, string((*requests)[0].Params),
		"parameterless actions still send an empty params object")
}

func TestCreateDeck(t *testing.T) {
	client, requests := newTestClient(t, nil)

	err := client.CreateDeck(context.Background(), "Networking::TCP")

	require.NoError(t, err)
	require.Len(t, *requests, 1)
	assert.Equal(t, "createDeck", (*requests)[0].Action)
	assert.JSONEq(t, `{"deck": "Networking::TCP"}`, string((*requests)[0].Params))
}

func TestModelNames(t *testing.T) {
	client, _ := newTestClient(t, map[string]string{
		"modelNames": `{"result": ["Basic", "Cloze", "Deckpush Interactive"], "error": null}`,
	})

	names, err := client.ModelNames(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"Basic", "Cloze", "Deckpush Interactive"}, names)
}

func TestModelFieldNames(t *testing.T) {
	client, requests := newTestClient(t, map[string]string{
		"modelFieldNames": `{"result": ["Question", "Type"], "error": null}`,
	})

	fields, err := client.ModelFieldNames(context.Background(), "Deckpush Interactive")

	require.NoError(t, err)
	assert.Equal(t, []string{"Question", "Type"}, fields)
	assert.JSONEq(t, `{"modelName": "Deckpush Interactive"}`, string((*requests)[0].Params))
}

func TestCreateModel(t *testing.T) {
	client, requests := newTestClient(t, nil)

	err := client.CreateModel(context.Background(), CreateModelParams{
		ModelName:     "Deckpush Interactive",
		InOrderFields: domain.ModelFieldNames,
		CSS:           ".card { }",
		CardTemplates: []CardTemplate{{Name: "Card 1", Front: "{{Question}}", Back: "{{Answer}}"}},
	})

	require.NoError(t, err)
	require.Len(t, *requests, 1)
	assert.Equal(t, "createModel", (*requests)[0].Action)

	var params struct {
		ModelName     string   `json:"modelName"`
		InOrderFields []string `json:"inOrderFields"`
		CardTemplates []struct {
			Name  string `json:"Name"`
			Front string `json:"Front"`
		} `json:"cardTemplates"`
	}
	require.NoError(t, json.Unmarshal((*requests)[0].Params, &params))
	assert.Equal(t, "Deckpush Interactive", params.ModelName)
	assert.Equal(t, domain.ModelFieldNames, params.InOrderFields)
	require.Len(t, params.CardTemplates, 1)
	assert.Equal(t, "Card 1", params.CardTemplates[0].Name)
}

func TestAddNotes(t *testing.T) {
	client, requests := newTestClient(t, map[string]string{
		"addNotes": `{"result": [1496198395707, null, 1496198395708], "error": null}`,
	})

	notes := []domain.Note{
		{DeckName: "D", ModelName: "M", Tags: []string{}},
		{DeckName: "D", ModelName: "M", Tags: []string{}},
		{DeckName: "D", ModelName: "M", Tags: []string{}},
	}
	ids, err := client.AddNotes(context.Background(), notes)

	require.NoError(t, err)
	require.Len(t, ids, 3)
	require.NotNil(t, ids[0])
	assert.Equal(t, int64(1496198395707), *ids[0])
	assert.Nil(t, ids[1], "a null slot marks a duplicate")
	require.NotNil(t, ids[2])
	assert.Equal(t, int64(1496198395708), *ids[2])

	var params struct {
		Notes []json.RawMessage `json:"notes"`
	}
	require.NoError(t, json.Unmarshal((*requests)[0].Params, &params))
	assert.Len(t, params.Notes, 3)
}

func TestAddNotesToleratesListErrors(t *testing.T) {
	client, _ := newTestClient(t, map[string]string{
		"addNotes": `{"result": [null, 42], "error": ["cannot create note because it is a duplicate"]}`,
	})

	ids, err := client.AddNotes(context.Background(), []domain.Note{{}, {}})

	require.NoError(t, err, "list-shaped errors must not fail the call")
	require.Len(t, ids, 2)
	assert.Nil(t, ids[0])
	require.NotNil(t, ids[1])
	assert.Equal(t, int64(42), *ids[1])
}

func TestScalarErrorFailsCall(t *testing.T) {
	client, _ := newTestClient(t, map[string]string{
		"createDeck": `{"result": null, "error": "collection is not available"}`,
	})

	err := client.CreateDeck(context.Background(), "D")

	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "createDeck", apiErr.Action)
	assert.Equal(t, "collection is not available", apiErr.Message)
	assert.Contains(t, err.Error(), "createDeck")
}

func TestFindNotes(t *testing.T) {
	client, requests := newTestClient(t, map[string]string{
		"findNotes": `{"result": [101, 102, 103], "error": null}`,
	})

	ids, err := client.FindNotes(context.Background(), DeckQuery("My Deck"))

	require.NoError(t, err)
	assert.Equal(t, []int64{101, 102, 103}, ids)
	assert.JSONEq(t, `{"query": "deck:\"My Deck\""}`, string((*requests)[0].Params))
}

func TestDeleteNotes(t *testing.T) {
	client, requests := newTestClient(t, nil)

	err := client.DeleteNotes(context.Background(), []int64{101, 102})

	require.NoError(t, err)
	assert.Equal(t, "deleteNotes", (*requests)[0].Action)
	assert.JSONEq(t, `{"notes": [101, 102]}`, string((*requests)[0].Params))
}

func TestConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client, err := NewClient(
		config.AnkiConfig{URL: url},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	require.NoError(t, err)

	_, err = client.Version(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConnectionFailed)
}

func TestDeckQuery(t *testing.T) {
	assert.Equal(t, `deck:"AZ-204::App Service"`, DeckQuery("AZ-204::App Service"))
}
