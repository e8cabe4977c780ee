package dat

// siblingNode is one outgoing transition from a trie node under
// construction: the transition symbol it carries (code), the depth its
// children will be fetched at, and the half-open range of the sorted key
// list that shares this transition.
type siblingNode struct {
	code  int
	depth int
	left  int
	right int
}

// fetch walks keys[parent.left:parent.right], which all share the
// (parent.depth)-scalar prefix, and groups them by their (parent.depth)-th
// transition symbol: c+1 for the scalar at that position, or 0 if the key
// ends exactly at this depth. Consecutive keys with the same symbol become
// one siblingNode.
//
// An empty return means every key in the range terminated at the parent
// depth — the leaf signal the placement engine uses to stamp a terminal
// base value instead of recursing.
//
// Global key sortedness guarantees the symbols encountered are
// non-decreasing across the range; fetch asserts this with a panic rather
// than an error, since an out-of-order key is a caller precondition
// violation that cannot be repaired here without silently renumbering
// every key's positional value. Two keys can legitimately share a
// non-zero symbol here (they still diverge deeper in), but two keys
// both terminating at this same node (symbol 0) share every scalar up to
// and including the key's end — they are the same string twice, so that
// case panics too instead of silently merging.
func (b *builder) fetch(parent siblingNode) []siblingNode {
	var siblings []siblingNode
	prev := -1 // no symbol seen yet; -1 never collides with a real code (>= 0)

	for i := parent.left; i < parent.right; i++ {
		k := b.keys[i]
		if len(k) < parent.depth {
			continue
		}

		cur := 0
		if len(k) != parent.depth {
			cur = int(k[parent.depth]) + 1
		}

		if prev != -1 && cur < prev {
			panic(&PreconditionError{
				Prev:  string(b.keys[i-1]),
				Cur:   string(k),
				Depth: parent.depth,
			})
		}

		if cur == prev && len(siblings) > 0 {
			if cur == 0 {
				panic(&PreconditionError{
					Prev:  string(b.keys[i-1]),
					Cur:   string(k),
					Depth: parent.depth,
				})
			}
			continue
		}

		if len(siblings) > 0 {
			siblings[len(siblings)-1].right = i
		}
		siblings = append(siblings, siblingNode{
			code:  cur,
			depth: parent.depth + 1,
			left:  i,
			right: 0, // filled in by the next sibling, or below on completion
		})
		prev = cur
	}

	if len(siblings) > 0 {
		siblings[len(siblings)-1].right = parent.right
	}
	return siblings
}
