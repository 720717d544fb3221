package i2c

import (
	"github.com/propgo/propgo/gen"
	"github.com/propgo/propgo/prop"
)

// Suite returns the built-in driver property suite: address validity,
// transaction payload bounds, write-read consistency, and buffer overflow
// prevention.
func Suite() []prop.Property {
	return []prop.Property{
		{
			Name:       "I2C Address Validity",
			Generators: []gen.Generator{NewAddress(true)},
			Predicate: func(inputs []any) (bool, error) {
				addr := inputs[0].(int)
				return AddrMin <= addr && addr <= AddrMax, nil
			},
		},
		{
			Name:       "I2C Transaction Length",
			Generators: []gen.Generator{NewTransactionGen()},
			Predicate: func(inputs []any) (bool, error) {
				tx := inputs[0].(Transaction)
				switch tx.Kind {
				case KindWrite:
					return len(tx.Data) <= MaxPayload, nil
				case KindRead:
					return 0 < tx.Length && tx.Length <= MaxPayload, nil
				case KindWriteRead:
					return len(tx.Data) <= MaxPayload &&
						0 < tx.ReadLength && tx.ReadLength <= MaxPayload, nil
				}
				return true, nil
			},
		},
		{
			Name: "I2C Write-Read Consistency",
			Generators: []gen.Generator{
				NewAddress(true),
				gen.NewBytes(1, MaxPayload),
				gen.NewInt(1, MaxPayload),
			},
			Predicate: func(inputs []any) (bool, error) {
				addr := inputs[0].(int)
				writeData := inputs[1].([]byte)
				readLength := inputs[2].(int)

				if addr < AddrMin || addr > AddrMax {
					return false, nil
				}
				if len(writeData) == 0 || len(writeData) > MaxPayload {
					return false, nil
				}
				if readLength <= 0 || readLength > MaxPayload {
					return false, nil
				}
				return true, nil
			},
		},
		{
			Name: "Buffer Overflow Prevention",
			Generators: []gen.Generator{
				gen.NewBytes(1, 64),
				gen.NewInt(16, MaxPayload),
			},
			Predicate: func(inputs []any) (bool, error) {
				data := inputs[0].([]byte)
				bufferSize := inputs[1].(int)
				return len(data) <= bufferSize, nil
			},
		},
	}
}
