// Package cmd implements the CLI commands for StyleCheck using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var flagVerbose bool

var rootCmd = &cobra.Command{
	Use:   "stylecheck",
	Short: "StyleCheck — find a phrase in a document and report its surrounding formatting",
	Long: `StyleCheck extracts text with per-character formatting from HTML, DOCX,
RTF, Markdown, and PDF files, locates a search phrase, and reports the
style of the characters around the match.

Usage:
  stylecheck check <file> <phrase>
  stylecheck interactive`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		if flagVerbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
