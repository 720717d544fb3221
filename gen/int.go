package gen

import (
	"fmt"
	"iter"
	"math/rand/v2"
	"sort"
)

// Int generates integers uniformly distributed in [Min, Max].
type Int struct {
	Min int
	Max int
}

// NewInt returns an integer generator bounded by [min, max].
func NewInt(min, max int) *Int {
	if min > max {
		panic(fmt.Sprintf("gen: invalid int bounds [%d,%d]", min, max))
	}
	return &Int{Min: min, Max: max}
}

func (g *Int) Generate(r *rand.Rand) any {
	return intBetween(r, g.Min, g.Max)
}

// Shrink yields candidates ordered by ascending magnitude: zero, half the
// value, one step toward zero, and the range bounds. Candidates outside
// [Min, Max], equal to the value, or not strictly smaller in magnitude are
// dropped, so repeated shrinking always terminates at a local minimum.
func (g *Int) Shrink(v any) iter.Seq[any] {
	value := v.(int)

	var candidates []int
	if value > 0 {
		candidates = append(candidates, 0, value/2, value-1)
	} else if value < 0 {
		candidates = append(candidates, 0, value/2, value+1)
	}
	if value != g.Min {
		candidates = append(candidates, g.Min)
	}
	if value != g.Max {
		candidates = append(candidates, g.Max)
	}

	seen := make(map[int]bool, len(candidates))
	kept := candidates[:0]
	for _, c := range candidates {
		if c == value || c < g.Min || c > g.Max || seen[c] {
			continue
		}
		if absInt(c) >= absInt(value) {
			continue
		}
		seen[c] = true
		kept = append(kept, c)
	}
	sort.Slice(kept, func(i, j int) bool {
		if absInt(kept[i]) != absInt(kept[j]) {
			return absInt(kept[i]) < absInt(kept[j])
		}
		return kept[i] < kept[j]
	})

	return func(yield func(any) bool) {
		for _, c := range kept {
			if !yield(c) {
				return
			}
		}
	}
}

func (g *Int) String() string {
	return fmt.Sprintf("int[%d,%d]", g.Min, g.Max)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
