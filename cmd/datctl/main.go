// Command datctl builds, inspects, and queries double-array trie
// snapshots from the command line.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
