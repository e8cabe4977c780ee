package dat

import "unicode/utf8"

// StepKind distinguishes the three outcomes a Tokenizer's Next call can
// produce.
type StepKind int

const (
	// Done means the cursor has reached the end of the haystack; no
	// further Next calls will produce Match or Reject.
	Done StepKind = iota
	// Match means haystack[Start:End] is a dictionary entry.
	Match
	// Reject means no dictionary entry starts at Start. haystack[Start:End]
	// is a single Unicode scalar, except when the walk reaches the end of
	// the haystack without finding any entry: then the Reject runs from
	// Start to the end of the haystack.
	Reject
)

// Step is one emission from (*Tokenizer).Next.
type Step struct {
	Kind  StepKind
	Start int
	End   int
	Value int // meaningful only when Kind == Match
}

// Tokenizer is a stateful forward-maximum-matching cursor over a
// haystack, obtained from (*Trie).Search. Its Next calls produce a
// stream of Match/Reject steps whose ranges partition the haystack
// exactly, terminated by exactly one Done. A Tokenizer carries private,
// mutable cursor state and must not be shared across goroutines without
// external synchronization, unlike the Trie it reads from.
type Tokenizer struct {
	trie     *Trie
	haystack string
	startPos int
}

// Search returns a Tokenizer that performs forward maximum matching over
// haystack using t's dictionary.
func (t *Trie) Search(haystack string) *Tokenizer {
	return &Tokenizer{trie: t, haystack: haystack}
}

// Next advances the cursor by one step and returns it.
func (tk *Tokenizer) Next() Step {
	if tk.startPos >= len(tk.haystack) {
		return Step{Kind: Done}
	}

	base, check := tk.trie.base, tk.trie.check
	startPos := tk.startPos

	b := base[0]
	var pendingEnd int
	havePending := false
	var pendingValue int

	for i, c := range tk.haystack[startPos:] {
		p := int(b)
		if p >= 0 && p < len(base) && check[p] == uint32(b) {
			if n := base[p]; n < 0 {
				pendingEnd = startPos + i
				pendingValue = int(-n - 1)
				havePending = true
			}
		}

		p = int(b) + int(c) + 1
		if p >= 0 && p < len(check) && check[p] == uint32(b) {
			b = base[p]
			continue
		}

		if havePending {
			tk.startPos = pendingEnd
			return Step{Kind: Match, Start: startPos, End: pendingEnd, Value: pendingValue}
		}
		tk.startPos = startPos + i + utf8.RuneLen(c)
		return Step{Kind: Reject, Start: startPos, End: tk.startPos}
	}

	// Reached end of haystack while still extending a match: probe the
	// sentinel child of the final node for a match longer than any found
	// mid-walk before falling back to the last one pending.
	p := int(b)
	if p >= 0 && p < len(base) && check[p] == uint32(b) {
		if n := base[p]; n < 0 {
			tk.startPos = len(tk.haystack)
			return Step{Kind: Match, Start: startPos, End: tk.startPos, Value: int(-n - 1)}
		}
	}
	if havePending {
		tk.startPos = pendingEnd
		return Step{Kind: Match, Start: startPos, End: pendingEnd, Value: pendingValue}
	}
	tk.startPos = len(tk.haystack)
	return Step{Kind: Reject, Start: startPos, End: tk.startPos}
}
