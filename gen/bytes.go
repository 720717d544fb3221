package gen

import (
	"fmt"
	"iter"
	"math/rand/v2"
	"slices"
)

// Bytes generates byte sequences with a length drawn uniformly from
// [MinLen, MaxLen] and every byte drawn uniformly from [0, 255].
type Bytes struct {
	MinLen int
	MaxLen int
}

// NewBytes returns a byte sequence generator with lengths in [minLen, maxLen].
func NewBytes(minLen, maxLen int) *Bytes {
	if minLen < 0 || minLen > maxLen {
		panic(fmt.Sprintf("gen: invalid byte length bounds [%d,%d]", minLen, maxLen))
	}
	return &Bytes{MinLen: minLen, MaxLen: maxLen}
}

func (g *Bytes) Generate(r *rand.Rand) any {
	data := make([]byte, intBetween(r, g.MinLen, g.MaxLen))
	for i := range data {
		data[i] = byte(r.IntN(256))
	}
	return data
}

// Shrink yields, in order: the first-half prefix, a single-byte prefix, an
// all-zero sequence of the same length (when any byte is nonzero), the
// sequence without its first byte, and the sequence without its last byte.
// Inputs of length 0 or 1 are already minimal and yield nothing. No candidate
// is ever longer than the input.
func (g *Bytes) Shrink(v any) iter.Seq[any] {
	data := v.([]byte)
	return func(yield func(any) bool) {
		if len(data) <= 1 {
			return
		}
		if !yield(slices.Clone(data[:len(data)/2])) {
			return
		}
		if !yield(slices.Clone(data[:1])) {
			return
		}
		if slices.ContainsFunc(data, func(b byte) bool { return b != 0 }) {
			if !yield(make([]byte, len(data))) {
				return
			}
		}
		if !yield(slices.Clone(data[1:])) {
			return
		}
		yield(slices.Clone(data[:len(data)-1]))
	}
}

func (g *Bytes) String() string {
	return fmt.Sprintf("bytes[%d,%d]", g.MinLen, g.MaxLen)
}
