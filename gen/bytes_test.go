package gen

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func collectBytes(g *Bytes, value []byte) [][]byte {
	var out [][]byte
	for c := range g.Shrink(value) {
		out = append(out, c.([]byte))
	}
	return out
}

func TestBytes_GenerateBounds(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 7))
	g := NewBytes(2, 9)

	for i := 0; i < 500; i++ {
		data := g.Generate(r).([]byte)
		require.GreaterOrEqual(t, len(data), 2)
		require.LessOrEqual(t, len(data), 9)
	}
}

func TestBytes_ShrinkOrder(t *testing.T) {
	g := NewBytes(0, 16)

	got := collectBytes(g, []byte{1, 2, 3, 4})
	want := [][]byte{
		{1, 2},          // first-half prefix
		{1},             // single-byte prefix
		{0, 0, 0, 0},    // all zeros, same length
		{2, 3, 4},       // drop first
		{1, 2, 3},       // drop last
	}
	require.Equal(t, want, got)
}

func TestBytes_ShrinkAllZeroSkipsZeroCandidate(t *testing.T) {
	g := NewBytes(0, 16)

	got := collectBytes(g, []byte{0, 0, 0})
	want := [][]byte{
		{0},
		{0},
		{0, 0},
		{0, 0},
	}
	require.Equal(t, want, got)
}

func TestBytes_ShrinkMinimalInputs(t *testing.T) {
	g := NewBytes(0, 16)

	require.Empty(t, collectBytes(g, []byte{}))
	require.Empty(t, collectBytes(g, []byte{0xFF}))
}

func TestBytes_ShrinkDoesNotAliasInput(t *testing.T) {
	g := NewBytes(0, 16)
	original := []byte{9, 8, 7}

	for c := range g.Shrink(original) {
		data := c.([]byte)
		for i := range data {
			data[i] = 0xAA
		}
	}
	require.Equal(t, []byte{9, 8, 7}, original)
}

func TestBytes_ShrinkNeverLengthens(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		data := rapid.SliceOfN(rapid.Byte(), 0, 64).Draw(rt, "data")

		g := NewBytes(0, 64)
		for c := range g.Shrink(data) {
			candidate := c.([]byte)
			if len(candidate) > len(data) {
				rt.Fatalf("candidate length %d exceeds original %d", len(candidate), len(data))
			}
		}
	})
}
