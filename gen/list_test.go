package gen

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestList_GenerateDelegates(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 3))
	g := NewList(NewInt(1, 6), 2, 5)

	for i := 0; i < 200; i++ {
		items := g.Generate(r).([]any)
		require.GreaterOrEqual(t, len(items), 2)
		require.LessOrEqual(t, len(items), 5)
		for _, item := range items {
			v := item.(int)
			require.GreaterOrEqual(t, v, 1)
			require.LessOrEqual(t, v, 6)
		}
	}
}

func TestList_ShrinkStructureThenElements(t *testing.T) {
	g := NewList(NewInt(0, 5), 0, 10)

	var got [][]any
	for c := range g.Shrink([]any{3, 1}) {
		got = append(got, c.([]any))
	}

	want := [][]any{
		{},        // empty
		{3},       // first-half prefix
		{3},       // single-element prefix
		{1},       // drop first
		{3},       // drop last
		{0, 1},    // element 0 shrinks
		{1, 1},
		{2, 1},
		{3, 0},    // element 1 shrinks
	}
	require.Equal(t, want, got)
}

func TestList_ShrinkSingleElement(t *testing.T) {
	g := NewList(NewInt(0, 5), 0, 10)

	var got [][]any
	for c := range g.Shrink([]any{4}) {
		got = append(got, c.([]any))
	}

	// No structural candidates besides empty; then the lone element shrinks.
	want := [][]any{
		{},
		{0},
		{2},
		{3},
	}
	require.Equal(t, want, got)
}

func TestList_ShrinkEmpty(t *testing.T) {
	g := NewList(NewInt(0, 5), 0, 10)

	for range g.Shrink([]any{}) {
		t.Fatal("empty list must not yield shrink candidates")
	}
}

func TestList_ShrinkDoesNotAliasInput(t *testing.T) {
	g := NewList(NewInt(0, 9), 0, 10)
	original := []any{5, 6, 7}

	for c := range g.Shrink(original) {
		items := c.([]any)
		for i := range items {
			items[i] = -1
		}
	}
	require.Equal(t, []any{5, 6, 7}, original)
}
