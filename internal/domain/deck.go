package domain

// Deck is the content of one deck file: a target deck name and the cards to
// create in it.
type Deck struct {
	DeckName string `json:"deckName"`
	Cards    []Card `json:"cards"`
}

// Validate checks the deck-level fields. Per-card validation happens when
// notes are built so failures can name the offending card.
func (d *Deck) Validate() error {
	if d.DeckName == "" {
		return ErrDeckNameEmpty
	}
	return nil
}

// TypeCounts returns how many cards of each type the deck holds, keyed by
// effective card type.
func (d *Deck) TypeCounts() map[CardType]int {
	counts := make(map[CardType]int)
	for i := range d.Cards {
		counts[d.Cards[i].EffectiveType()]++
	}
	return counts
}
