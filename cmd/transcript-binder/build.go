// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/makeorbreakshop/making-it-transcript/internal/assemble"
	"github.com/makeorbreakshop/making-it-transcript/internal/ledger"
	"github.com/makeorbreakshop/making-it-transcript/internal/manifest"
	"github.com/makeorbreakshop/making-it-transcript/internal/render"
	"github.com/makeorbreakshop/making-it-transcript/internal/source"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Assemble transcripts into the combined PDF",
	Long: `Build scans the input directory for *.txt transcripts, sorts them by
episode number, and writes one PDF containing an index of all episodes
followed by the body of every episode not yet in the completion ledger.
Each finished episode is recorded in the ledger, so interrupted or
repeated runs pick up exactly where the last one left off.`,
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := binderConfig(cmd)
	if err != nil {
		return err
	}

	episodes, err := source.Scan(cfg.InputDir)
	if err != nil {
		return err
	}
	if len(episodes) == 0 {
		fmt.Fprintf(os.Stderr, "no transcripts found in %s\n", cfg.InputDir)
		return nil
	}

	led, err := ledger.Open(cfg.Ledger)
	if err != nil {
		return err
	}
	defer led.Close()

	pdf := render.NewPDF(cfg.OutputPDF, cfg.Layout.PageSize)

	summary, err := assemble.New(pdf, led, cfg.Layout).Build(episodes, os.Stdout)
	if err != nil {
		return err
	}

	if err := pdf.Close(); err != nil {
		return err
	}

	if cfg.ManifestPath != "" {
		m := manifest.New(cfg.OutputPDF, summary.Emitted, summary.Skipped)
		if err := manifest.Write(cfg.ManifestPath, m); err != nil {
			return err
		}
	}

	fmt.Printf("PDF created at: %s\n", cfg.OutputPDF)
	return nil
}

func init() {
	buildCmd.Flags().String("output", "", "output PDF path (default: <input>/transcripts.pdf)")
	buildCmd.Flags().String("manifest", "", "run manifest path (default: next to the output PDF)")

	rootCmd.AddCommand(buildCmd)
}
