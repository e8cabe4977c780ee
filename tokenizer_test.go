package dat

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenizerEmptyHaystack(t *testing.T) {
	t.Parallel()

	trie, err := Build([]string{"a"}, WithInitialAlloc(256))
	require.NoError(t, err)

	tok := trie.Search("")
	step := tok.Next()
	require.Equal(t, Done, step.Kind)
}

func TestTokenizerForwardMaximumMatch(t *testing.T) {
	t.Parallel()

	keys := []string{"she", "he", "his", "hers"}
	sort.Strings(keys)

	trie, err := Build(keys, WithInitialAlloc(256))
	require.NoError(t, err)

	tok := trie.Search("ushers")

	step := tok.Next()
	require.Equal(t, Reject, step.Kind)
	require.Equal(t, 0, step.Start)
	require.Equal(t, 1, step.End)

	step = tok.Next()
	require.Equal(t, Match, step.Kind)
	require.Equal(t, 1, step.Start)
	require.Equal(t, 4, step.End)
	require.Equal(t, 3, step.Value)

	step = tok.Next()
	require.Equal(t, Reject, step.Kind)
	require.Equal(t, 4, step.Start)
	require.Equal(t, 5, step.End)

	step = tok.Next()
	require.Equal(t, Reject, step.Kind)
	require.Equal(t, 5, step.Start)
	require.Equal(t, 6, step.End)

	step = tok.Next()
	require.Equal(t, Done, step.Kind)
}

func TestTokenizerPartitionsHaystack(t *testing.T) {
	t.Parallel()

	keys := []string{"江西", "鄱阳湖", "干枯", "中国", "最大", "淡水湖", "变成", "大", "草原"}
	sort.Strings(keys)

	trie, err := Build(keys, WithInitialAlloc(4096))
	require.NoError(t, err)

	haystack := "江西鄱阳湖干枯，中国最大淡水湖变成大草原"
	tok := trie.Search(haystack)

	var words []string
	for {
		step := tok.Next()
		if step.Kind == Done {
			break
		}
		word := haystack[step.Start:step.End]
		if step.Kind == Match {
			words = append(words, word)
		} else {
			words = append(words, word)
		}
	}

	require.Equal(t, []string{
		"江西", "鄱阳湖", "干枯", "，", "中国", "最大", "淡水湖", "变成", "大", "草原",
	}, words)
}

func TestTokenizerRangesPartitionHaystack(t *testing.T) {
	t.Parallel()

	keys := []string{"a", "ab", "abc", "xyz"}
	sort.Strings(keys)
	trie, err := Build(keys, WithInitialAlloc(256))
	require.NoError(t, err)

	haystack := "zzzabcxyzqqq"
	tok := trie.Search(haystack)

	pos := 0
	for {
		step := tok.Next()
		if step.Kind == Done {
			break
		}
		require.Equal(t, pos, step.Start, "steps must tile the haystack with no gap")
		require.Less(t, step.Start, step.End)
		pos = step.End
	}
	require.Equal(t, len(haystack), pos)
}
