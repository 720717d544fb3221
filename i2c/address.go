// Package i2c provides generators modeling I2C bus traffic shapes: 7-bit
// device addresses and read/write transactions. No hardware I/O is performed;
// the generators only model the address and data domains drivers must handle.
package i2c

import (
	"fmt"
	"iter"
	"math/rand/v2"
)

// 7-bit address space usable by devices. Addresses outside this range are
// reserved by the I2C specification (general call, CBUS, 10-bit prefixes).
const (
	AddrMin = 0x08
	AddrMax = 0x77
)

var reservedAddresses = map[int]bool{
	0x00: true, 0x01: true, 0x02: true, 0x03: true,
	0x04: true, 0x05: true, 0x06: true, 0x07: true,
	0x78: true, 0x79: true, 0x7A: true, 0x7B: true,
	0x7C: true, 0x7D: true, 0x7E: true, 0x7F: true,
}

// Addresses used by common sensors (TMP102, EEPROM, MPU6050, BMP280).
// Shrinking prefers these so counterexamples land on recognizable devices.
var commonAddresses = []int{0x48, 0x50, 0x68, 0x76}

// Reserved reports whether addr is reserved by the I2C specification.
func Reserved(addr int) bool {
	return reservedAddresses[addr]
}

// Address generates valid 7-bit device addresses.
type Address struct {
	// ExcludeReserved rejects reserved addresses during generation and
	// shrinking.
	ExcludeReserved bool
}

// NewAddress returns an address generator over [AddrMin, AddrMax].
func NewAddress(excludeReserved bool) *Address {
	return &Address{ExcludeReserved: excludeReserved}
}

// Generate draws addresses by rejection sampling: reserved hits are retried,
// never widened into the reserved range.
func (g *Address) Generate(r *rand.Rand) any {
	for {
		addr := AddrMin + r.IntN(AddrMax-AddrMin+1)
		if !g.ExcludeReserved || !Reserved(addr) {
			return addr
		}
	}
}

// Shrink offers the common sensor addresses first, then the two neighbors of
// the value clamped to the address range.
func (g *Address) Shrink(v any) iter.Seq[any] {
	addr := v.(int)
	return func(yield func(any) bool) {
		for _, common := range commonAddresses {
			if common == addr {
				continue
			}
			if g.ExcludeReserved && Reserved(common) {
				continue
			}
			if !yield(common) {
				return
			}
		}
		if addr > AddrMin {
			if !yield(max(AddrMin, addr-1)) {
				return
			}
		}
		if addr < AddrMax {
			yield(min(AddrMax, addr+1))
		}
	}
}

func (g *Address) String() string {
	return fmt.Sprintf("i2c-address[0x%02X,0x%02X]", AddrMin, AddrMax)
}
