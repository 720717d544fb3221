// Package gen provides composable random value generators with shrinking.
//
// A Generator produces random values from an explicit RNG handle and, given a
// value, enumerates strictly simpler candidate values as a lazy, finite
// sequence. Shrink sequences are restartable: ranging over the same sequence
// twice yields the same candidates.
package gen

import (
	"iter"
	"math/rand/v2"
)

// Generator produces random values and shrinks them.
type Generator interface {
	// Generate draws one random value from the injected RNG.
	Generate(r *rand.Rand) any
	// Shrink enumerates candidate values simpler than v. The sequence is
	// finite for any finite input but makes no exhaustiveness guarantee.
	// Values already minimal yield an empty sequence.
	Shrink(v any) iter.Seq[any]
	// String names the generator for logs and error messages.
	String() string
}

// intBetween draws uniformly from [min, max].
func intBetween(r *rand.Rand, min, max int) int {
	return min + r.IntN(max-min+1)
}
