package bitset

import (
	"fmt"
	"iter"
	"math/bits"
	"strings"
)

const (
	wordBits = 64

	// inlineWords is the number of words stored directly in the Set value.
	// 3 words = 192 bits, enough for realistic ingredient universes.
	inlineWords = 3
)

// Set is a bit vector over non-negative indices.
//
// The zero value is an empty set ready for use. Mutating methods (Add) use a
// pointer receiver; all binary operations are pure and return fresh sets, so
// results never alias their operands. A Set value that has spilled past the
// inline range shares its spill slice when copied by assignment; use Clone
// before storing a copy that outlives the original.
type Set struct {
	inline [inlineWords]uint64
	spill  []uint64
}

// New returns an empty set.
func New() Set {
	return Set{}
}

// WithCapacity returns an empty set that can address indices in [0, n)
// without further allocation.
func WithCapacity(n int) Set {
	if n <= inlineWords*wordBits {
		return Set{}
	}
	words := (n + wordBits - 1) / wordBits
	return Set{spill: make([]uint64, words-inlineWords)}
}

// FromIndices returns a set containing the given indices.
func FromIndices(indices ...int) Set {
	var s Set
	for _, i := range indices {
		s.Add(i)
	}
	return s
}

// numWords returns the total addressable word count, inline words included.
func (s *Set) numWords() int {
	return inlineWords + len(s.spill)
}

// word returns the k-th word, zero-extending past the allocated range.
func (s *Set) word(k int) uint64 {
	if k < inlineWords {
		return s.inline[k]
	}
	if k-inlineWords < len(s.spill) {
		return s.spill[k-inlineWords]
	}
	return 0
}

func (s *Set) setWord(k int, v uint64) {
	if k < inlineWords {
		s.inline[k] = v
		return
	}
	s.spill[k-inlineWords] = v
}

// Add inserts index i, growing the spill storage if needed.
// A negative index is a programming error and panics.
func (s *Set) Add(i int) {
	if i < 0 {
		panic(fmt.Sprintf("bitset: negative index %d", i))
	}
	k := i / wordBits
	if k >= s.numWords() {
		grown := make([]uint64, k+1-inlineWords)
		copy(grown, s.spill)
		s.spill = grown
	}
	s.setWord(k, s.word(k)|1<<(i%wordBits))
}

// Contains reports whether index i is in the set.
// Indices past the allocated range are absent, not an error.
func (s Set) Contains(i int) bool {
	if i < 0 {
		return false
	}
	return s.word(i/wordBits)&(1<<(i%wordBits)) != 0
}

// Count returns the number of indices in the set.
func (s Set) Count() int {
	n := 0
	for k := 0; k < s.numWords(); k++ {
		n += bits.OnesCount64(s.word(k))
	}
	return n
}

// IsEmpty reports whether the set has no indices.
func (s Set) IsEmpty() bool {
	for k := 0; k < s.numWords(); k++ {
		if s.word(k) != 0 {
			return false
		}
	}
	return true
}

// Union returns a new set containing every index present in s or t.
func (s Set) Union(t Set) Set {
	n := max(s.numWords(), t.numWords())
	out := withWords(n)
	for k := 0; k < n; k++ {
		out.setWord(k, s.word(k)|t.word(k))
	}
	out.trim()
	return out
}

// Intersect returns a new set containing every index present in both s and t.
func (s Set) Intersect(t Set) Set {
	n := min(s.numWords(), t.numWords())
	out := withWords(n)
	for k := 0; k < n; k++ {
		out.setWord(k, s.word(k)&t.word(k))
	}
	out.trim()
	return out
}

// Difference returns a new set containing every index present in s but not t.
func (s Set) Difference(t Set) Set {
	n := s.numWords()
	out := withWords(n)
	for k := 0; k < n; k++ {
		out.setWord(k, s.word(k)&^t.word(k))
	}
	out.trim()
	return out
}

// IsSubset reports whether every index in s is also in t.
func (s Set) IsSubset(t Set) bool {
	for k := 0; k < s.numWords(); k++ {
		if s.word(k)&^t.word(k) != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether s and t contain exactly the same indices,
// regardless of allocated length.
func (s Set) Equal(t Set) bool {
	n := max(s.numWords(), t.numWords())
	for k := 0; k < n; k++ {
		if s.word(k) != t.word(k) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy that shares no storage with s.
func (s Set) Clone() Set {
	out := s
	if s.spill != nil {
		out.spill = make([]uint64, len(s.spill))
		copy(out.spill, s.spill)
	}
	return out
}

// All iterates the indices of the set in ascending order.
func (s Set) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for k := 0; k < s.numWords(); k++ {
			w := s.word(k)
			for w != 0 {
				i := k*wordBits + bits.TrailingZeros64(w)
				if !yield(i) {
					return
				}
				w &= w - 1
			}
		}
	}
}

// Indices returns the indices of the set in ascending order.
func (s Set) Indices() []int {
	out := make([]int, 0, s.Count())
	for i := range s.All() {
		out = append(out, i)
	}
	return out
}

func (s Set) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for i := range s.All() {
		if !first {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", i)
		first = false
	}
	b.WriteByte('}')
	return b.String()
}

func withWords(n int) Set {
	if n <= inlineWords {
		return Set{}
	}
	return Set{spill: make([]uint64, n-inlineWords)}
}

// trim drops trailing all-zero spill words so repeated unions do not keep
// dead storage alive.
func (s *Set) trim() {
	n := len(s.spill)
	for n > 0 && s.spill[n-1] == 0 {
		n--
	}
	if n == 0 {
		s.spill = nil
	} else {
		s.spill = s.spill[:n]
	}
}
