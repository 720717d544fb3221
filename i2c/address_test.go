package i2c

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func collectAddrs(g *Address, value int) []int {
	var out []int
	for c := range g.Shrink(value) {
		out = append(out, c.(int))
	}
	return out
}

func TestAddress_GenerateValid(t *testing.T) {
	r := rand.New(rand.NewPCG(11, 11))
	g := NewAddress(true)

	for i := 0; i < 1000; i++ {
		addr := g.Generate(r).(int)
		require.GreaterOrEqual(t, addr, AddrMin)
		require.LessOrEqual(t, addr, AddrMax)
		require.False(t, Reserved(addr), "generated reserved address 0x%02X", addr)
	}
}

func TestAddress_ShrinkOrder(t *testing.T) {
	tests := []struct {
		name  string
		value int
		want  []int
	}{
		{
			name:  "mid-range address gets all common addresses then neighbors",
			value: 0x30,
			want:  []int{0x48, 0x50, 0x68, 0x76, 0x2F, 0x31},
		},
		{
			name:  "common address is excluded from its own candidates",
			value: 0x48,
			want:  []int{0x50, 0x68, 0x76, 0x47, 0x49},
		},
		{
			name:  "lower bound only moves up",
			value: AddrMin,
			want:  []int{0x48, 0x50, 0x68, 0x76, 0x09},
		},
		{
			name:  "upper bound only moves down",
			value: AddrMax,
			want:  []int{0x48, 0x50, 0x68, 0x76, 0x76},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewAddress(true)
			require.Equal(t, tt.want, collectAddrs(g, tt.value))
		})
	}
}

func TestReserved(t *testing.T) {
	for addr := 0x00; addr <= 0x07; addr++ {
		require.True(t, Reserved(addr), "0x%02X", addr)
	}
	for addr := 0x78; addr <= 0x7F; addr++ {
		require.True(t, Reserved(addr), "0x%02X", addr)
	}
	for addr := AddrMin; addr <= AddrMax; addr++ {
		require.False(t, Reserved(addr), "0x%02X", addr)
	}
}
