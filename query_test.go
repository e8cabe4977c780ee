package dat

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExactMatchSearch(t *testing.T) {
	t.Parallel()

	keys := []string{"a"}
	trie, err := Build(keys, WithInitialAlloc(256))
	require.NoError(t, err)

	v, ok := trie.ExactMatchSearch("a")
	require.True(t, ok)
	require.Equal(t, 0, v)

	_, ok = trie.ExactMatchSearch("ab")
	require.False(t, ok)

	_, ok = trie.ExactMatchSearch("")
	require.False(t, ok)
}

func TestExactMatchSearchKeyIsPrefixOfAnother(t *testing.T) {
	t.Parallel()

	keys := []string{"a", "ab"}
	trie, err := Build(keys, WithInitialAlloc(256))
	require.NoError(t, err)

	va, ok := trie.ExactMatchSearch("a")
	require.True(t, ok)
	require.Equal(t, 0, va)

	vab, ok := trie.ExactMatchSearch("ab")
	require.True(t, ok)
	require.Equal(t, 1, vab)
}

func TestCommonPrefixSearch(t *testing.T) {
	t.Parallel()

	keys := []string{"a", "ab", "abc"}
	trie, err := Build(keys, WithInitialAlloc(256))
	require.NoError(t, err)

	matches := trie.CommonPrefixSearch("abc")
	require.Equal(t, []PrefixMatch{
		{ByteEnd: 1, Value: 0},
		{ByteEnd: 2, Value: 1},
		{ByteEnd: 3, Value: 2},
	}, matches)
}

func TestCommonPrefixSearchNoMatch(t *testing.T) {
	t.Parallel()

	trie, err := Build([]string{"a", "ab"}, WithInitialAlloc(256))
	require.NoError(t, err)

	require.Empty(t, trie.CommonPrefixSearch("xyz"))
}

func TestCommonPrefixSearchMultibyteOffsets(t *testing.T) {
	t.Parallel()

	keys := []string{"中国", "中华", "中华人民", "中华人民共和国"}
	sorted := append([]string(nil), keys...)
	sort.Strings(sorted)

	trie, err := Build(sorted, WithInitialAlloc(1024))
	require.NoError(t, err)

	valueOf := func(key string) int {
		idx := sort.SearchStrings(sorted, key)
		require.Less(t, idx, len(sorted))
		require.Equal(t, key, sorted[idx])
		return idx
	}

	matches := trie.CommonPrefixSearch("中华人民共和国万岁")
	require.Equal(t, []PrefixMatch{
		{ByteEnd: 6, Value: valueOf("中华")},
		{ByteEnd: 12, Value: valueOf("中华人民")},
		{ByteEnd: 21, Value: valueOf("中华人民共和国")},
	}, matches)
}
