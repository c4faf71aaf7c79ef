package ankiconnect

import (
	"errors"
	"fmt"
)

// ErrConnectionFailed marks transport-level failures reaching the
// AnkiConnect endpoint, typically because Anki is not running or the
// add-on is not installed.
var ErrConnectionFailed = errors.New("cannot reach AnkiConnect")

// APIError is a failed AnkiConnect call: the response carried a non-null,
// non-list error value.
type APIError struct {
	// Action is the AnkiConnect action that failed.
	Action string

	// Message is the error text reported by AnkiConnect.
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("ankiconnect %s failed: %s", e.Action, e.Message)
}
