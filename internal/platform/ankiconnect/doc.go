// Package ankiconnect implements the HTTP client for the AnkiConnect
// add-on's local control API. Every call is a synchronous JSON POST of an
// envelope {action, version, params}; replies carry a result slot and an
// error slot. The client performs no retries and sets no timeout, so a call
// blocks until AnkiConnect answers and any failure surfaces immediately.
package ankiconnect
