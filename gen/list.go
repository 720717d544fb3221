package gen

import (
	"fmt"
	"iter"
	"math/rand/v2"
	"slices"
)

// List generates homogeneous slices by repeated delegation to an element
// generator. The element generator is owned exclusively by its List.
type List struct {
	Elem   Generator
	MinLen int
	MaxLen int
}

// NewList returns a list generator producing slices with lengths in
// [minLen, maxLen], each element drawn from elem.
func NewList(elem Generator, minLen, maxLen int) *List {
	if minLen < 0 || minLen > maxLen {
		panic(fmt.Sprintf("gen: invalid list length bounds [%d,%d]", minLen, maxLen))
	}
	return &List{Elem: elem, MinLen: minLen, MaxLen: maxLen}
}

func (g *List) Generate(r *rand.Rand) any {
	items := make([]any, intBetween(r, g.MinLen, g.MaxLen))
	for i := range items {
		items[i] = g.Elem.Generate(r)
	}
	return items
}

// Shrink first reduces the list structurally (empty, first-half prefix,
// single-element prefix, drop-first, drop-last), then yields every element
// shrink at every index with the remaining elements held fixed. The
// per-element pass lets the search localize a minimal failing element inside
// an otherwise passing list.
func (g *List) Shrink(v any) iter.Seq[any] {
	items := v.([]any)
	return func(yield func(any) bool) {
		if len(items) == 0 {
			return
		}
		if !yield([]any{}) {
			return
		}
		if len(items) > 1 {
			if !yield(slices.Clone(items[:len(items)/2])) {
				return
			}
			if !yield(slices.Clone(items[:1])) {
				return
			}
			if !yield(slices.Clone(items[1:])) {
				return
			}
			if !yield(slices.Clone(items[:len(items)-1])) {
				return
			}
		}
		for i := range items {
			for candidate := range g.Elem.Shrink(items[i]) {
				next := slices.Clone(items)
				next[i] = candidate
				if !yield(next) {
					return
				}
			}
		}
	}
}

func (g *List) String() string {
	return fmt.Sprintf("list[%s][%d,%d]", g.Elem, g.MinLen, g.MaxLen)
}
