package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var quiet bool

var rootCmd = &cobra.Command{
	Use:           "datctl",
	Short:         "Build and query double-array trie snapshots",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress progress and log output")
	rootCmd.AddCommand(buildCmd, lookupCmd, prefixCmd, segmentCmd)
}

// logger returns the shared CLI logger, dropped to zerolog.Nop() under
// --quiet so a scripted caller gets a clean stdout/stderr.
func logger() zerolog.Logger {
	if quiet {
		return zerolog.Nop()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}
