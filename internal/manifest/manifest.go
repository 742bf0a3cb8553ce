// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package manifest writes a YAML summary of each assembly run next to the
// output document.
package manifest

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"
)

// Manifest describes one completed assembly run.
type Manifest struct {
	// GeneratedAt is the run completion time, RFC 3339 UTC.
	GeneratedAt string `yaml:"generated_at"`

	// OutputPDF is the document the run wrote.
	OutputPDF string `yaml:"output_pdf"`

	// Emitted lists episode numbers written in this run, in order.
	Emitted []int `yaml:"emitted"`

	// Skipped lists episode numbers already in the ledger.
	Skipped []int `yaml:"skipped"`
}

// New returns a Manifest for a run that just finished, timestamped now.
func New(outputPDF string, emitted, skipped []int) Manifest {
	return Manifest{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		OutputPDF:   outputPDF,
		Emitted:     emitted,
		Skipped:     skipped,
	}
}

// Write serializes m to path as YAML.
func Write(path string, m Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}
