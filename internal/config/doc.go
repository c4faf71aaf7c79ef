// Package config handles configuration loading, parsing, and validation
// from environment variables. It provides type-safe access to the settings
// the tool needs (AnkiConnect endpoint, note model, batching, logging)
// while keeping configuration details separate from the push logic.
package config
