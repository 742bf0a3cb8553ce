// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/makeorbreakshop/making-it-transcript/internal/ledger"
)

var ledgerCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Inspect or reset the completion ledger",
}

var ledgerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List episodes recorded as completed",
	RunE:  runLedgerList,
}

func runLedgerList(cmd *cobra.Command, args []string) error {
	cfg, err := binderConfig(cmd)
	if err != nil {
		return err
	}

	led, err := ledger.Open(cfg.Ledger)
	if err != nil {
		return err
	}
	defer led.Close()

	done := led.Completed()
	if len(done) == 0 {
		fmt.Println("Ledger is empty.")
		return nil
	}

	ids := make([]string, 0, len(done))
	for id := range done {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, _ := strconv.Atoi(ids[i])
		b, _ := strconv.Atoi(ids[j])
		return a < b
	})

	for _, id := range ids {
		fmt.Println(id)
	}
	fmt.Printf("\n%d completed episodes\n", len(ids))
	return nil
}

var ledgerResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the completion ledger",
	Long: `Reset removes the ledger file entirely. The next build will re-emit
every episode. The output PDF is not touched.`,
	RunE: runLedgerReset,
}

func runLedgerReset(cmd *cobra.Command, args []string) error {
	cfg, err := binderConfig(cmd)
	if err != nil {
		return err
	}

	if err := os.Remove(cfg.Ledger.Path); err != nil {
		if os.IsNotExist(err) {
			fmt.Println("Ledger does not exist; nothing to reset.")
			return nil
		}
		return fmt.Errorf("removing ledger: %w", err)
	}
	// SQLite in WAL mode leaves sidecar files next to the database.
	os.Remove(cfg.Ledger.Path + "-wal")
	os.Remove(cfg.Ledger.Path + "-shm")
	fmt.Printf("Removed %s\n", cfg.Ledger.Path)
	return nil
}

func init() {
	ledgerCmd.AddCommand(ledgerListCmd)
	ledgerCmd.AddCommand(ledgerResetCmd)

	rootCmd.AddCommand(ledgerCmd)
}
