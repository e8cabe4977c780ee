package main

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	dat "github.com/go-dat/darts"
)

var buildCmd = &cobra.Command{
	Use:   "build <dictionary.txt> <snapshot.dat>",
	Short: "Build a trie snapshot from a newline-delimited, pre-sorted dictionary",
	Args:  cobra.ExactArgs(2),
	RunE:  runBuild,
}

func runBuild(cmd *cobra.Command, args []string) (err error) {
	dictPath, snapshotPath := args[0], args[1]

	keys, err := readKeys(dictPath)
	if err != nil {
		return fmt.Errorf("datctl build: %w", err)
	}
	if len(keys) == 0 {
		return fmt.Errorf("datctl build: %s contains no keys", dictPath)
	}

	var bar *progressbar.ProgressBar
	if !quiet {
		bar = progressbar.Default(int64(len(keys)), "building")
	}

	log := logger()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("datctl build: %v (is %s sorted by code point, with no duplicates?)", r, dictPath)
		}
	}()

	start := time.Now()
	trie, buildErr := dat.Build(keys,
		dat.WithLogger(log),
		dat.WithProgress(func(done, total int) {
			if bar != nil {
				_ = bar.Set(done)
			}
		}),
	)
	if buildErr != nil {
		return fmt.Errorf("datctl build: %w", buildErr)
	}

	out, err := os.Create(snapshotPath)
	if err != nil {
		return fmt.Errorf("datctl build: %w", err)
	}
	defer out.Close()

	if err := trie.Save(out); err != nil {
		return fmt.Errorf("datctl build: %w", err)
	}

	log.Info().
		Str("keys", humanize.Comma(int64(len(keys)))).
		Str("size", humanize.Bytes(uint64(trie.Size())*8)).
		Str("elapsed", time.Since(start).String()).
		Msg("wrote snapshot")
	return nil
}

func readKeys(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var keys []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		keys = append(keys, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}
