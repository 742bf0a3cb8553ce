// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/makeorbreakshop/making-it-transcript/internal/ledger"
	"github.com/makeorbreakshop/making-it-transcript/internal/source"
)

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List discovered transcripts and their ledger status",
	Long: `Ls scans the input directory the same way build does and prints each
episode with its number, completion status, and source file, in the
order build would process them.`,
	RunE: runLs,
}

func runLs(cmd *cobra.Command, args []string) error {
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
	done := led.Completed()

	fmt.Fprintf(os.Stdout, "%-8s  %-8s  %s\n", "Episode", "Status", "File")
	var pending int
	for _, ep := range episodes {
		status := "pending"
		if done[strconv.Itoa(ep.Number)] {
			status = "done"
		} else {
			pending++
		}
		fmt.Fprintf(os.Stdout, "%-8d  %-8s  %s\n", ep.Number, status, filepath.Base(ep.Path))
	}
	fmt.Fprintf(os.Stdout, "\n%d episodes, %d pending\n", len(episodes), pending)
	return nil
}

func init() {
	rootCmd.AddCommand(lsCmd)
}
