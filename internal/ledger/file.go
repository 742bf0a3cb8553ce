// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ledger

import (
	"fmt"
	"os"
	"strings"
)

// FileLedger is the newline-delimited ledger format: one identifier per
// line, in insertion order. The file is never deduplicated or compacted,
// so an identifier can appear more than once after manual edits; readers
// treat the file as a set.
type FileLedger struct {
	path string
	done map[string]bool
}

// OpenFile loads the ledger at path. A missing file is an empty ledger.
func OpenFile(path string) (*FileLedger, error) {
	done := make(map[string]bool)

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading ledger %s: %w", path, err)
		}
	} else {
		for _, line := range strings.Split(string(data), "\n") {
			if line != "" {
				done[line] = true
			}
		}
	}

	return &FileLedger{path: path, done: done}, nil
}

// Completed returns the set of recorded identifiers.
func (l *FileLedger) Completed() map[string]bool {
	return l.done
}

// Append writes one identifier and syncs the file before returning.
func (l *FileLedger) Append(id string) error {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening ledger %s: %w", l.path, err)
	}
	if _, err := fmt.Fprintf(f, "%s\n", id); err != nil {
		f.Close()
		return fmt.Errorf("appending to ledger: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("syncing ledger: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing ledger: %w", err)
	}
	l.done[id] = true
	return nil
}

// Close is a no-op: the file is opened per append.
func (l *FileLedger) Close() error {
	return nil
}
