package i2c

import (
	"iter"
	"math/rand/v2"

	"github.com/propgo/propgo/gen"
)

// Largest payload a single transaction may carry, in bytes.
const MaxPayload = 32

// Kind tags the shape of a transaction.
type Kind string

const (
	KindRead      Kind = "read"
	KindWrite     Kind = "write"
	KindWriteRead Kind = "write_read"
)

// Transaction is one bus transaction. Exactly the fields relevant to its
// Kind are populated: Length for reads, Data for writes, Data and ReadLength
// for write-reads.
type Transaction struct {
	Kind       Kind   `json:"type"`
	Address    int    `json:"address"`
	Length     int    `json:"length,omitempty"`
	Data       []byte `json:"data,omitempty"`
	ReadLength int    `json:"read_length,omitempty"`
}

// TransactionGen generates complete transactions by composing an address
// generator with a payload generator.
type TransactionGen struct {
	addr *Address
	data *gen.Bytes
}

// NewTransactionGen returns a transaction generator over non-reserved
// addresses and payloads of up to MaxPayload bytes.
func NewTransactionGen() *TransactionGen {
	return &TransactionGen{
		addr: NewAddress(true),
		data: gen.NewBytes(1, MaxPayload),
	}
}

func (g *TransactionGen) Generate(r *rand.Rand) any {
	kind := []Kind{KindRead, KindWrite, KindWriteRead}[r.IntN(3)]
	addr := g.addr.Generate(r).(int)

	switch kind {
	case KindRead:
		return Transaction{
			Kind:    KindRead,
			Address: addr,
			Length:  1 + r.IntN(MaxPayload),
		}
	case KindWrite:
		return Transaction{
			Kind:    KindWrite,
			Address: addr,
			Data:    g.data.Generate(r).([]byte),
		}
	default:
		return Transaction{
			Kind:       KindWriteRead,
			Address:    addr,
			Data:       g.data.Generate(r).([]byte),
			ReadLength: 1 + r.IntN(MaxPayload),
		}
	}
}

// Shrink reduces transaction complexity in stages: collapse a write-read to
// a minimal read or minimal write, shrink the payload or length with all
// other fields fixed, then shrink the address the same way.
func (g *TransactionGen) Shrink(v any) iter.Seq[any] {
	tx := v.(Transaction)
	return func(yield func(any) bool) {
		if tx.Kind == KindWriteRead {
			if !yield(Transaction{Kind: KindRead, Address: tx.Address, Length: 1}) {
				return
			}
			if !yield(Transaction{Kind: KindWrite, Address: tx.Address, Data: []byte{0x00}}) {
				return
			}
		}

		if len(tx.Data) > 1 {
			for candidate := range g.data.Shrink(tx.Data) {
				next := tx
				next.Data = candidate.([]byte)
				if !yield(next) {
					return
				}
			}
		}
		if tx.Length > 1 {
			next := tx
			next.Length = 1
			if !yield(next) {
				return
			}
		}

		for candidate := range g.addr.Shrink(tx.Address) {
			next := tx
			next.Address = candidate.(int)
			if !yield(next) {
				return
			}
		}
	}
}

func (g *TransactionGen) String() string {
	return "i2c-transaction"
}
