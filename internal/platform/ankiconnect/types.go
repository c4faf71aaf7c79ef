package ankiconnect

import (
	"encoding/json"

	"github.com/phrazzld/deckpush/internal/domain"
)

// ProtocolVersion is the AnkiConnect API version this client speaks.
const ProtocolVersion = 6

// request is the envelope for every AnkiConnect call. Params is always
// present on the wire, an empty object for parameterless actions.
type request struct {
	Action  string `json:"action"`
	Version int    `json:"version"`
	Params  any    `json:"params"`
}

// response is the envelope of every AnkiConnect reply. The error slot is
// kept raw because its shape varies: null on success, a string for failed
// calls, and a list of per-note errors on batch actions.
type response struct {
	Result json.RawMessage `json:"result"`
	Error  json.RawMessage `json:"error"`
}

// CardTemplate is one card template of a note model. The capitalized JSON
// keys are what the createModel action expects.
type CardTemplate struct {
	Name  string `json:"Name"`
	Front string `json:"Front"`
	Back  string `json:"Back"`
}

// CreateModelParams describes a note model to create.
type CreateModelParams struct {
	ModelName     string         `json:"modelName"`
	InOrderFields []string       `json:"inOrderFields"`
	CSS           string         `json:"css"`
	CardTemplates []CardTemplate `json:"cardTemplates"`
}

type deckParams struct {
	Deck string `json:"deck"`
}

type modelNameParams struct {
	ModelName string `json:"modelName"`
}

type addNotesParams struct {
	Notes []domain.Note `json:"notes"`
}

type findNotesParams struct {
	Query string `json:"query"`
}

type deleteNotesParams struct {
	Notes []int64 `json:"notes"`
}
