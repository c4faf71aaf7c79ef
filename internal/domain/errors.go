package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrMissingField is returned when a card omits a required field or
	// leaves it empty.
	ErrMissingField = errors.New("required field missing")

	// ErrAnswerShape is returned when a card's answer does not have the
	// JSON shape its type demands.
	ErrAnswerShape = errors.New("answer does not match card type")

	// ErrUnknownCardType is returned when a card declares a type outside
	// the supported set.
	ErrUnknownCardType = errors.New("unknown card type")

	// ErrDeckNameEmpty is returned when a deck file does not name its
	// target deck.
	ErrDeckNameEmpty = errors.New("deck name cannot be empty")
)

// CardError reports a validation failure for a single card, naming the card
// and the offending field so the user can locate it in the deck file.
type CardError struct {
	// CardID is the card's declared id, or "unknown" when the deck file
	// did not assign one.
	CardID string

	// Field is the deck-file field that failed validation.
	Field string

	// Err is the underlying cause, one of the sentinel errors above.
	Err error
}

// Error implements the error interface.
func (e *CardError) Error() string {
	return fmt.Sprintf("card %s: field %q: %v", e.CardID, e.Field, e.Err)
}

// Unwrap returns the underlying error, supporting errors.Is checks against
// the sentinel errors.
func (e *CardError) Unwrap() error {
	return e.Err
}

// NewCardError creates a CardError for the given card and field.
func NewCardError(cardID, field string, err error) *CardError {
	return &CardError{
		CardID: cardID,
		Field:  field,
		Err:    err,
	}
}
