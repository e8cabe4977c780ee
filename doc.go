// Package dat implements a double-array trie (DAT): a compact,
// array-backed deterministic finite automaton over Unicode-scalar-indexed
// keys.
//
// A DAT stores an entire trie in two parallel integer slices, base and
// check, so that a child transition is a single array index computed as
// parent.base + (scalar + 1). That makes exact lookup, prefix enumeration
// and forward-maximum-matching tokenization all branch-free walks over two
// flat int32/uint32 slices, with no pointer chasing and no per-node
// allocation at query time.
//
// Build the trie once, from a key list already sorted by code point, with
// Build. Query it with (*Trie).ExactMatchSearch and
// (*Trie).CommonPrefixSearch, or tokenize running text with (*Trie).Search.
// A built *Trie is immutable and safe for concurrent use by any number of
// goroutines; a *Tokenizer obtained from Search carries private cursor
// state and must not be shared across goroutines without external
// synchronization.
package dat
