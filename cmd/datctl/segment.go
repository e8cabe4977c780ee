package main

import (
	"fmt"

	"github.com/spf13/cobra"

	dat "github.com/go-dat/darts"
)

var segmentCmd = &cobra.Command{
	Use:   "segment <snapshot.dat> <text>",
	Short: "Forward-maximum-match text against a trie snapshot",
	Args:  cobra.ExactArgs(2),
	RunE:  runSegment,
}

func runSegment(cmd *cobra.Command, args []string) error {
	trie, err := loadSnapshot(args[0])
	if err != nil {
		return err
	}

	tok := trie.Search(args[1])
	out := cmd.OutOrStdout()
	for {
		step := tok.Next()
		switch step.Kind {
		case dat.Done:
			fmt.Fprintln(out)
			return nil
		case dat.Match:
			fmt.Fprintf(out, "%s/n ", args[1][step.Start:step.End])
		case dat.Reject:
			fmt.Fprintf(out, "%s/x ", args[1][step.Start:step.End])
		}
	}
}
