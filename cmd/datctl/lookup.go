package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	dat "github.com/go-dat/darts"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <snapshot.dat> <key>",
	Short: "Exact-match a single key against a trie snapshot",
	Args:  cobra.ExactArgs(2),
	RunE:  runLookup,
}

var prefixCmd = &cobra.Command{
	Use:   "prefix <snapshot.dat> <key>",
	Short: "List every dictionary entry that is a prefix of key",
	Args:  cobra.ExactArgs(2),
	RunE:  runPrefix,
}

func loadSnapshot(path string) (*dat.Trie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot: %w", err)
	}
	defer f.Close()

	trie, err := dat.Load(f)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}
	return trie, nil
}

func runLookup(cmd *cobra.Command, args []string) error {
	trie, err := loadSnapshot(args[0])
	if err != nil {
		return err
	}

	value, ok := trie.ExactMatchSearch(args[1])
	if !ok {
		fmt.Fprintf(cmd.OutOrStdout(), "%q: not found\n", args[1])
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%q: %d\n", args[1], value)
	return nil
}

func runPrefix(cmd *cobra.Command, args []string) error {
	trie, err := loadSnapshot(args[0])
	if err != nil {
		return err
	}

	matches := trie.CommonPrefixSearch(args[1])
	if len(matches) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "%q: no prefix matches\n", args[1])
		return nil
	}
	for _, m := range matches {
		fmt.Fprintf(cmd.OutOrStdout(), "%q: %d\n", args[1][:m.ByteEnd], m.Value)
	}
	return nil
}
