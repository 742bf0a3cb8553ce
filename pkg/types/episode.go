// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data types for the transcript binder:
// episodes, page layout settings, and the configuration structs consumed
// by the CLI.
package types

// Episode is one transcript unit: a numeric ordering key and the decoded
// text body.
type Episode struct {
	// Number is the episode number extracted from the source filename
	// (the first run of decimal digits). A filename with no digits gets
	// number 0; such episodes sort first, in directory order.
	Number int `json:"number" yaml:"number"`

	// Path is the source file the episode was read from.
	Path string `json:"path" yaml:"path"`

	// Text is the full decoded transcript body.
	Text string `json:"-" yaml:"-"`
}

// LedgerBackend selects the completion-ledger storage.
type LedgerBackend string

const (
	// LedgerFile is a newline-delimited list of episode numbers. This is
	// the default and the on-disk format shared with earlier versions of
	// the tool.
	LedgerFile LedgerBackend = "file"

	// LedgerSQLite stores completions in a SQLite database.
	LedgerSQLite LedgerBackend = "sqlite"
)
