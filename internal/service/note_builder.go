package service

import (
	"errors"

	"github.com/phrazzld/deckpush/internal/domain"
	"github.com/phrazzld/deckpush/internal/render"
)

// NoteBuilder renders validated cards into upload-ready notes.
type NoteBuilder struct {
	// renderer produces the HTML fragments stored in note fields
	renderer *render.Renderer

	// modelName is the note model every built note is bound to
	modelName string
}

// NewNoteBuilder creates a NoteBuilder that binds notes to the given model.
func NewNoteBuilder(renderer *render.Renderer, modelName string) (*NoteBuilder, error) {
	if renderer == nil {
		return nil, errors.New("renderer cannot be nil")
	}
	if modelName == "" {
		return nil, errors.New("model name cannot be empty")
	}

	return &NoteBuilder{
		renderer:  renderer,
		modelName: modelName,
	}, nil
}

// ModelName returns the note model the builder binds notes to.
func (b *NoteBuilder) ModelName() string {
	return b.modelName
}

// BuildNote validates one card and renders it into the fixed nine-field
// note for the given deck. Fields that do not apply to the card's type stay
// empty strings so every note matches the model schema. Validation and
// answer-decoding failures abort the build with an error naming the card.
func (b *NoteBuilder) BuildNote(card *domain.Card, deckName string) (*domain.Note, error) {
	if err := card.Validate(); err != nil {
		return nil, err
	}

	typ := card.EffectiveType()
	language := card.Language
	if language == "" {
		language = "text"
	}

	fields := domain.NoteFields{
		Type:        string(typ),
		Question:    b.renderer.Question(card.Question, typ, card.AnswerCount()),
		Explanation: b.renderer.Explanation(card.Explanation),
		KeyPoints:   b.renderer.KeyPoints(card.KeyPoints),
		Reference:   b.renderer.Reference(card.Reference),
	}

	switch typ {
	case domain.CardTypeSingleChoice:
		letter, err := card.AnswerLetter()
		if err != nil {
			return nil, err
		}
		fields.Options = b.renderer.OptionsSingle(card.Options)
		fields.Answer = b.renderer.AnswerSingle(letter, card.Options)

	case domain.CardTypeMultiSelect:
		letters, err := card.AnswerLetters()
		if err != nil {
			return nil, err
		}
		fields.Options = b.renderer.OptionsMulti(card.Options)
		fields.Answer = b.renderer.AnswerMulti(letters, card.Options)

	case domain.CardTypeOrdering:
		fields.OrderItems = b.renderer.OrderItems(card.OrderItems)
		fields.Answer = b.renderer.AnswerOrdering(card.OrderItems)

	case domain.CardTypeCodeHotarea:
		positions, err := card.AnswerPositions()
		if err != nil {
			return nil, err
		}
		fields.CodeBlock = b.renderer.CodeHotarea(card.CodeLines, language)
		fields.Answer = b.renderer.AnswerCodeHotarea(card.CodeLines, positions)

	default:
		return nil, domain.NewCardError(card.DisplayID(), "type", domain.ErrUnknownCardType)
	}

	tags := card.Tags
	if tags == nil {
		tags = []string{}
	}

	return &domain.Note{
		DeckName:  deckName,
		ModelName: b.modelName,
		Fields:    fields,
		Tags:      tags,
	}, nil
}
