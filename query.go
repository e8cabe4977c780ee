package dat

// ExactMatchSearch looks up key and reports its positional value.
// ExactMatchSearch("") always returns (0, false): the empty key never
// matches, because the root slot's base is always the top-level sibling
// group's offset and is never itself a negative terminal value.
func (t *Trie) ExactMatchSearch(key string) (value int, ok bool) {
	b := t.base[0]

	for _, c := range key {
		p := int(b) + int(c) + 1
		if p < 0 || p >= len(t.check) || t.check[p] != uint32(b) {
			return 0, false
		}
		b = t.base[p]
	}

	p := int(b)
	if p < 0 || p >= len(t.base) || t.check[p] != uint32(b) {
		return 0, false
	}
	n := t.base[p]
	if n < 0 {
		return int(-n - 1), true
	}
	return 0, false
}

// CommonPrefixSearch returns every dictionary entry that is a prefix of
// key, in ascending length order, as byte offsets into key. It returns
// nil if no dictionary entry prefixes key. The last element's ByteEnd
// equals len(key) iff key is itself a dictionary entry.
func (t *Trie) CommonPrefixSearch(key string) []PrefixMatch {
	var result []PrefixMatch

	b := t.base[0]

	for i, c := range key {
		p := int(b)
		if p >= 0 && p < len(t.base) && t.check[p] == uint32(b) {
			if n := t.base[p]; n < 0 {
				result = append(result, PrefixMatch{ByteEnd: i, Value: int(-n - 1)})
			}
		}

		p = int(b) + int(c) + 1
		if p < 0 || p >= len(t.check) || t.check[p] != uint32(b) {
			return result
		}
		b = t.base[p]
	}

	p := int(b)
	if p >= 0 && p < len(t.base) && t.check[p] == uint32(b) {
		if n := t.base[p]; n < 0 {
			result = append(result, PrefixMatch{ByteEnd: len(key), Value: int(-n - 1)})
		}
	}
	return result
}
