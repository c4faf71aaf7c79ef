package domain

// ModelFieldNames lists the note model's fields in creation order. Every
// note fills all of them; slots that do not apply to a card's type carry
// empty strings so the schema stays uniform across types.
var ModelFieldNames = []string{
	"Question",
	"Type",
	"Options",
	"Answer",
	"Explanation",
	"KeyPoints",
	"Reference",
	"OrderItems",
	"CodeBlock",
}

// NoteFields holds the nine model fields of one note, each an HTML fragment
// or plain string ready for upload. JSON tags match the field names the
// note model declares.
type NoteFields struct {
	Question    string `json:"Question"`
	Type        string `json:"Type"`
	Options     string `json:"Options"`
	Answer      string `json:"Answer"`
	Explanation string `json:"Explanation"`
	KeyPoints   string `json:"KeyPoints"`
	Reference   string `json:"Reference"`
	OrderItems  string `json:"OrderItems"`
	CodeBlock   string `json:"CodeBlock"`
}

// Note is the unit uploaded to Anki: one card rendered into the fixed field
// set, bound to a deck and a note model.
type Note struct {
	DeckName  string     `json:"deckName"`
	ModelName string     `json:"modelName"`
	Fields    NoteFields `json:"fields"`
	Tags      []string   `json:"tags"`
}
