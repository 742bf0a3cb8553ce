// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ledger tracks which episodes have been fully written to a
// document, making repeated assembly runs idempotent.
//
// An episode is appended only after every one of its lines has been drawn;
// a crash mid-episode leaves it absent from the ledger and eligible for
// full reprocessing on the next run. Concurrent runs over the same ledger
// path are undefined behavior; the tool assumes single-instance execution.
package ledger

import (
	"fmt"

	"github.com/makeorbreakshop/making-it-transcript/pkg/types"
)

// Ledger is a durable set of completed episode identifiers.
type Ledger interface {
	// Completed returns the identifiers recorded as fully written. The
	// returned map reflects appends made through this Ledger instance.
	Completed() map[string]bool

	// Append durably records one identifier. It must not return before
	// the record is flushed to storage.
	Append(id string) error

	// Close releases the underlying storage.
	Close() error
}

// Open returns the ledger backend selected by cfg. An empty backend
// defaults to the newline-delimited file format.
func Open(cfg types.LedgerConfig) (Ledger, error) {
	switch cfg.Backend {
	case types.LedgerFile, "":
		return OpenFile(cfg.Path)
	case types.LedgerSQLite:
		return OpenSQLite(cfg.Path)
	default:
		return nil, fmt.Errorf("unknown ledger backend %q: use file or sqlite", cfg.Backend)
	}
}
