package dat

import (
	"errors"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a call to Build.
type Option func(*builder)

// WithProgress installs a callback invoked exactly once per terminal leaf
// stamped during the build, with the cumulative count and the total key
// count. The final invocation always has done == total. Build invokes it
// synchronously, on the calling goroutine, never concurrently.
func WithProgress(fn func(done, total int)) Option {
	return func(b *builder) { b.onProgress = fn }
}

// WithLogger installs a zerolog.Logger the builder uses to report array
// resizes (debug level) and build completion (info level). The default is
// zerolog.Nop(), so a caller who never supplies one pays nothing.
func WithLogger(logger zerolog.Logger) Option {
	return func(b *builder) { b.logger = logger }
}

// WithInitialAlloc overrides the default initial allocation of
// scalarSpace (0x110000) slots. Useful for tests on tiny dictionaries, or
// for callers who know their key alphabet is narrow (e.g. ASCII-only
// keys) and want to avoid the first build's largest resize.
func WithInitialAlloc(n int) Option {
	return func(b *builder) { b.initialAlloc = n }
}

// builder holds all mutable state used only during Build; none of it
// survives into the immutable *Trie that Build returns.
type builder struct {
	arrayPair

	keys    [][]rune
	keySize int

	size         int // high-water mark of (begin + last sibling code + 1) across all placements
	progress     int // count of terminal leaves stamped so far
	nextCheckPos int

	onProgress   func(done, total int)
	logger       zerolog.Logger
	initialAlloc int
}

// Build compiles a sorted, duplicate-free, NUL-free key list into an
// immutable *Trie. Keys must already be sorted by ascending code-point
// order; Build panics with a *PreconditionError if it detects otherwise,
// since silently re-sorting would renumber every key's positional value.
//
// Build returns an error only when keys is empty.
func Build(keys []string, opts ...Option) (*Trie, error) {
	if len(keys) == 0 {
		return nil, errors.New("dat: build: empty key list")
	}

	b := &builder{
		logger:       zerolog.Nop(),
		initialAlloc: scalarSpace,
	}
	for _, opt := range opts {
		opt(b)
	}

	start := time.Now()

	b.keys = make([][]rune, len(keys))
	for i, s := range keys {
		b.keys[i] = []rune(s)
	}
	b.keySize = len(keys)

	b.resize(b.initialAlloc)
	b.nextCheckPos = 0
	b.base[0] = 1
	b.check[0] = 0

	root := siblingNode{code: 0, depth: 0, left: 0, right: b.keySize}
	siblings := b.fetch(root)
	b.place(siblings)

	b.logger.Info().
		Int("keys", b.keySize).
		Int("size", b.size).
		Dur("elapsed", time.Since(start)).
		Msg("dat: build complete")

	lastUsed := b.size + scalarSpace
	if lastUsed > b.allocSize {
		lastUsed = b.allocSize
	}
	trie := &Trie{
		base:  append([]int32(nil), b.base[:lastUsed]...),
		check: append([]uint32(nil), b.check[:lastUsed]...),
	}
	return trie, nil
}

// resize wraps arrayPair.resize with a debug log of the old/new
// allocation size, so a caller who opted into logging can see how many
// times (and how far) a dictionary made the arrays grow.
func (b *builder) resize(newSize int) {
	if newSize <= b.allocSize {
		return
	}
	old := b.allocSize
	b.arrayPair.resize(newSize)
	b.logger.Debug().Int("from", old).Int("to", newSize).Msg("dat: resize")
}

// place finds a begin offset at which every sibling in siblings lands on
// a free check slot, stamps the transitions, and recurses depth-first
// into each sibling's own children. It returns begin so the caller can
// record it as the parent's base.
func (b *builder) place(siblings []siblingNode) int {
	pos := siblings[0].code
	if b.nextCheckPos > siblings[0].code {
		pos = b.nextCheckPos - 1
	}

	var begin int
	firstFree := true
	occupied := 0
	firstPos := pos + 1

outer:
	for {
		pos++

		if b.allocSize <= pos {
			b.resize(pos + 1)
		}

		if b.check[pos] != 0 {
			occupied++
			continue
		}
		if firstFree {
			b.nextCheckPos = pos
			firstFree = false
			firstPos = pos
		}

		begin = pos - siblings[0].code

		if need := begin + siblings[len(siblings)-1].code + 1; need > b.allocSize {
			rate := 1.05
			if pr := float64(b.keySize) / float64(b.progress+1); pr > rate {
				rate = pr
			}
			b.resize(int(float64(need) * rate))
		}

		if b.used[begin] {
			continue
		}
		for i := 1; i < len(siblings); i++ {
			if b.check[begin+siblings[i].code] != 0 {
				continue outer
			}
		}
		break
	}

	if need := begin + siblings[len(siblings)-1].code + 1; need > b.size {
		b.size = need
	}

	if span := pos - firstPos + 1; float64(occupied)/float64(span) >= 0.95 {
		b.nextCheckPos = pos
	}

	b.used[begin] = true
	for _, s := range siblings {
		b.check[begin+s.code] = uint32(begin)
	}

	for _, s := range siblings {
		children := b.fetch(s)
		if len(children) == 0 {
			// s.left is the leaf's original index into the sorted key list,
			// which is also its positional value.
			b.base[begin+s.code] = int32(-s.left - 1)
			b.progress++
			if b.onProgress != nil {
				b.onProgress(b.progress, b.keySize)
			}
			continue
		}
		child := b.place(children)
		b.base[begin+s.code] = int32(child)
	}

	return begin
}
