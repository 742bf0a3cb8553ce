// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the transcript-binder CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/makeorbreakshop/making-it-transcript/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the transcript-binder CLI.
var rootCmd = &cobra.Command{
	Use:   "transcript-binder",
	Short: "Assemble numbered transcripts into one paginated PDF",
	Long: `transcript-binder scans a directory of numbered plain-text transcripts
and assembles them into a single PDF with an index page, running
"Episode N" headers and footers, and one episode per page sequence.

A completion ledger makes runs incremental: episodes recorded in the
ledger are listed in the index but never re-emitted, so the tool can be
re-run as new transcripts arrive.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./transcript-binder.yaml or ~/.config/transcript-binder/config.yaml)")
	rootCmd.PersistentFlags().String("input", "", "directory scanned for *.txt transcripts (default: transcribe)")
	rootCmd.PersistentFlags().String("ledger", "", "completion ledger path (default: <input>/processed_episodes.log)")
	rootCmd.PersistentFlags().String("ledger-backend", "", "ledger storage: file or sqlite (default: file)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("transcript-binder")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "transcript-binder"))
		}
	}

	viper.SetEnvPrefix("TRANSCRIPT_BINDER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// binderConfig resolves the run configuration from flags, config file, and
// defaults, in that order of precedence.
func binderConfig(cmd *cobra.Command) (types.BinderConfig, error) {
	cfg := types.BinderConfig{
		InputDir:     stringSetting(cmd, "input", "input_dir", "transcribe"),
		OutputPDF:    stringSetting(cmd, "output", "output_pdf", ""),
		ManifestPath: stringSetting(cmd, "manifest", "manifest_path", ""),
		Layout:       types.DefaultLayout(),
	}
	cfg.Ledger = types.LedgerConfig{
		Backend: types.LedgerBackend(stringSetting(cmd, "ledger-backend", "ledger.backend", string(types.LedgerFile))),
		Path:    stringSetting(cmd, "ledger", "ledger.path", ""),
	}

	if cfg.OutputPDF == "" {
		cfg.OutputPDF = filepath.Join(cfg.InputDir, "transcripts.pdf")
	}
	if cfg.ManifestPath == "" {
		cfg.ManifestPath = strings.TrimSuffix(cfg.OutputPDF, ".pdf") + ".manifest.yaml"
	}
	if cfg.Ledger.Path == "" {
		name := "processed_episodes.log"
		if cfg.Ledger.Backend == types.LedgerSQLite {
			name = "processed_episodes.db"
		}
		cfg.Ledger.Path = filepath.Join(cfg.InputDir, name)
	}

	if viper.IsSet("layout") {
		// LayoutConfig is tagged for yaml, not mapstructure.
		yamlTags := func(dc *mapstructure.DecoderConfig) { dc.TagName = "yaml" }
		if err := viper.UnmarshalKey("layout", &cfg.Layout, yamlTags); err != nil {
			return cfg, fmt.Errorf("parsing layout config: %w", err)
		}
	}
	return cfg, nil
}

// stringSetting reads a flag, falling back to the config file key and then
// the built-in default.
func stringSetting(cmd *cobra.Command, flag, key, def string) string {
	if v, err := cmd.Flags().GetString(flag); err == nil && v != "" {
		return v
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return def
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
