// Package domain contains the core entities of the push pipeline: quiz
// cards as they are declared in deck files, the decks that group them, and
// the Anki notes built from them. It is independent of rendering, transport,
// and CLI concerns.
package domain
