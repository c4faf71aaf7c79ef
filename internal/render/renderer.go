package render

import "html"

// Renderer produces the HTML fragments stored in note fields. The zero
// value is not usable; construct one with New.
type Renderer struct {
	styles Styles
}

// New returns a Renderer using the given styles.
func New(styles Styles) *Renderer {
	return &Renderer{styles: styles}
}

// esc HTML-escapes user-supplied text before it is embedded in a fragment.
// This is the only injection defense the fragments carry, so every embedded
// piece of deck-file text must pass through it exactly once.
func esc(s string) string {
	return html.EscapeString(s)
}

// optionLetter returns the display letter for an option index: A for 0,
// B for 1, and so on.
func optionLetter(i int) string {
	return string(rune('A' + i))
}
