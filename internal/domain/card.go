package domain

import (
	"encoding/json"
	"fmt"
)

// CardType identifies the interactive format of a quiz card.
type CardType string

// Supported card types. A card that omits the type field is treated as
// single-choice for compatibility with older deck files.
const (
	CardTypeSingleChoice CardType = "single-choice"
	CardTypeMultiSelect  CardType = "multi-select"
	CardTypeOrdering     CardType = "ordering"
	CardTypeCodeHotarea  CardType = "code-hotarea"
)

// isValidCardType checks if the provided card type is one of the supported
// types.
func isValidCardType(t CardType) bool {
	switch t {
	case CardTypeSingleChoice, CardTypeMultiSelect, CardTypeOrdering, CardTypeCodeHotarea:
		return true
	default:
		return false
	}
}

// Card is one quiz card as declared in a deck file. Answer is kept raw
// because its JSON shape depends on Type: a single option letter for
// single-choice, a list of letters for multi-select, and a list of
// zero-based positions for ordering and code-hotarea.
type Card struct {
	ID          string          `json:"id"`
	Type        CardType        `json:"type"`
	Question    string          `json:"question"`
	Options     []string        `json:"options"`
	Answer      json.RawMessage `json:"answer"`
	OrderItems  []string        `json:"orderItems"`
	CodeLines   []string        `json:"codeLines"`
	Language    string          `json:"language"`
	Explanation string          `json:"explanation"`
	KeyPoints   []string        `json:"keyPoints"`
	Reference   string          `json:"reference"`
	Tags        []string        `json:"tags"`
}

// EffectiveType returns the card's declared type, defaulting to
// single-choice when the type field is absent.
func (c *Card) EffectiveType() CardType {
	if c.Type == "" {
		return CardTypeSingleChoice
	}
	return c.Type
}

// DisplayID returns the card's id for use in diagnostics, or "unknown" when
// the deck file did not assign one.
func (c *Card) DisplayID() string {
	if c.ID == "" {
		return "unknown"
	}
	return c.ID
}

// AnswerLetter decodes the answer as the single option letter used by
// single-choice cards.
func (c *Card) AnswerLetter() (string, error) {
	var letter string
	if err := json.Unmarshal(c.Answer, &letter); err != nil {
		return "", NewCardError(c.DisplayID(), "answer",
			fmt.Errorf("%w: single-choice expects an option letter", ErrAnswerShape))
	}
	return letter, nil
}

// AnswerLetters decodes the answer as the list of option letters used by
// multi-select cards.
func (c *Card) AnswerLetters() ([]string, error) {
	var letters []string
	if err := json.Unmarshal(c.Answer, &letters); err != nil || letters == nil {
		return nil, NewCardError(c.DisplayID(), "answer",
			fmt.Errorf("%w: multi-select expects a list of option letters", ErrAnswerShape))
	}
	return letters, nil
}

// AnswerPositions decodes the answer as the list of zero-based positions
// used by ordering and code-hotarea cards.
func (c *Card) AnswerPositions() ([]int, error) {
	var positions []int
	if err := json.Unmarshal(c.Answer, &positions); err != nil || positions == nil {
		return nil, NewCardError(c.DisplayID(), "answer",
			fmt.Errorf("%w: expects a list of zero-based positions", ErrAnswerShape))
	}
	return positions, nil
}

// AnswerCount returns the number of entries in a list-shaped answer and
// zero for any other shape. It feeds the "Select N answers" hint on
// multi-select fronts.
func (c *Card) AnswerCount() int {
	var items []json.RawMessage
	if err := json.Unmarshal(c.Answer, &items); err != nil {
		return 0
	}
	return len(items)
}

// Validate checks that the card carries every required field and that its
// answer matches the shape its type demands. It fails fast with an error
// naming the card and the first offending field. Single-choice answers are
// deliberately not shape-checked here; they are decoded when the note is
// built.
func (c *Card) Validate() error {
	if c.Question == "" {
		return NewCardError(c.DisplayID(), "question", ErrMissingField)
	}
	if c.Explanation == "" {
		return NewCardError(c.DisplayID(), "explanation", ErrMissingField)
	}
	if len(c.KeyPoints) == 0 {
		return NewCardError(c.DisplayID(), "keyPoints", ErrMissingField)
	}
	if c.Reference == "" {
		return NewCardError(c.DisplayID(), "reference", ErrMissingField)
	}

	typ := c.EffectiveType()
	if !isValidCardType(typ) {
		return NewCardError(c.DisplayID(), "type", ErrUnknownCardType)
	}

	switch typ {
	case CardTypeMultiSelect:
		if _, err := c.AnswerLetters(); err != nil {
			return err
		}
	case CardTypeOrdering, CardTypeCodeHotarea:
		if _, err := c.AnswerPositions(); err != nil {
			return err
		}
	}

	return nil
}
