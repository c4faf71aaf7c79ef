// Package service contains the application-specific use cases of the push
// pipeline. It orchestrates interactions between domain objects, the
// renderers and the AnkiConnect client to turn deck files into notes inside
// a running Anki instance.
//
// Key components:
//
// 1. NoteBuilder:
//   - Validates each card and dispatches on its type to the renderer pair
//   - Lays the rendered fragments into the fixed nine-field note layout
//
// 2. PushService:
//   - Probes the AnkiConnect connection before any work starts
//   - Provisions the shared note model, refusing to touch a mismatched one
//   - Processes deck files sequentially: create deck, build notes, push in
//     fixed-size batches, tally created and duplicate counts
//   - Deletes all notes of a deck on request
//
// 3. Dependency Management:
//   - Services receive dependencies through constructor injection
//   - The AnkiConnect client is consumed through the AnkiClient interface so
//     tests can substitute a mock
//
// 4. Error Handling:
//   - Failures are wrapped in PushError with the failing operation and a
//     human-readable message, preserving the cause for errors.Is/errors.As
//
// The service layer depends on domain entities and the client interface, but
// never on transport details, keeping the delivery mechanism (the CLI in
// cmd/deckpush) free to format results however it likes.
package service
