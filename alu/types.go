package alu

// Word is the universal 64-bit operand/result carrier. Every opcode
// reinterprets it differently: as two's-complement integer, as packed
// SIMD lanes, as a float32/float64 bit pattern, as an ECC codeword, or as
// a packed quantum amplitude.
type Word = uint64

// RoundingMode selects the IEEE-754 rounding attribute applied by the
// float32 and float64 engines. Values outside the four named modes round
// to nearest, ties to even; no mode persists from one call to the next.
type RoundingMode uint8

const (
	RNE RoundingMode = 0 // round to nearest, ties to even
	RTZ RoundingMode = 1 // round toward zero
	RDN RoundingMode = 2 // round toward negative infinity
	RUP RoundingMode = 3 // round toward positive infinity
)

// FpFlags is a sticky bitmask of IEEE-754 exceptions raised by a float32
// or float64 operation. Flags accumulate within one call and are never
// cleared by the unit; the caller owns when to reset them.
type FpFlags uint8

const (
	FlagInvalid FpFlags = 1 << 0
	FlagDivZero FpFlags = 1 << 1
	FlagOverflow FpFlags = 1 << 2
	FlagUnderflow FpFlags = 1 << 3
	FlagInexact FpFlags = 1 << 4
)

// Has reports whether all bits in mask are set.
func (f FpFlags) Has(mask FpFlags) bool { return f&mask == mask }

// Amplitude is the decoded logical form of a quantum amplitude word: a
// 4-bit tag and a Q29 fixed-point complex value, unpacked to float64 for
// convenient arithmetic. Pack/unpack against the wire uint64 form live in
// bits.go.
type Amplitude struct {
	Tag  byte
	Real float64
	Imag float64
}
