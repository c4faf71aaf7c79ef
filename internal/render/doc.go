// Package render turns card fields into the self-contained HTML fragments
// stored in note fields. Front-side fragments carry inline JavaScript for
// interactivity (option highlighting, drag-free reordering, clickable code
// lines); back-side fragments are static. All user-supplied text is
// HTML-escaped exactly once, at the point it is embedded.
package render
