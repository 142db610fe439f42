package alu

import "math/bits"

// Hamming(64,57) SECDED: 57 data bits protected by 6 Hamming parity bits
// at the power-of-two positions (1,2,4,8,16,32) plus one overall parity
// bit, for a 64-bit codeword. Single-bit errors are corrected; double-bit
// errors are detected but not corrected.
//
// Codeword bit layout (bit 0 is the least significant bit):
//   - bits at positions 1,2,4,8,16,32 (1-indexed) carry parity.
//   - bit at position 64 (the MSB) carries overall parity.
//   - the remaining 57 positions carry data, filled low-to-high.

const eccDataBits = 57

// parityPositions lists the 1-indexed codeword positions reserved for
// the 6 Hamming parity bits.
var parityPositions = [6]int{1, 2, 4, 8, 16, 32}

func isParityPosition(pos int) bool {
	for _, p := range parityPositions {
		if pos == p {
			return true
		}
	}
	return false
}

// dataPositions lists, in order, the 1-indexed codeword positions that
// carry the 57 data bits (every position from 1 to 63 that isn't a
// parity position; position 64 is the overall parity bit).
var dataPositions = buildDataPositions()

func buildDataPositions() [eccDataBits]int {
	var out [eccDataBits]int
	n := 0
	for pos := 1; pos <= 63 && n < eccDataBits; pos++ {
		if !isParityPosition(pos) {
			out[n] = pos
			n++
		}
	}
	return out
}

// hammingEncode packs 57 data bits (the low 57 bits of data) into a
// 64-bit SECDED codeword.
func hammingEncode(data uint64) uint64 {
	data &= (1<<eccDataBits - 1)

	var code uint64
	for i, pos := range dataPositions {
		if data&(1<<uint(i)) != 0 {
			code |= 1 << uint(pos-1)
		}
	}

	for _, p := range parityPositions {
		var parity uint64
		for pos := 1; pos <= 63; pos++ {
			if pos&p != 0 && code&(1<<uint(pos-1)) != 0 {
				parity ^= 1
			}
		}
		if parity != 0 {
			code |= 1 << uint(p-1)
		}
	}

	if bits.OnesCount64(code)%2 != 0 {
		code |= 1 << 63
	}

	return code
}

// hammingDecode checks and, if possible, corrects a single-bit error in
// code, returning the extracted 57-bit data payload. corrected reports a
// single-bit error was found and fixed; uncorrectable reports a
// detected-but-unfixable (typically double-bit) error. The data bits are
// extracted from the (possibly corrected) codeword regardless.
func hammingDecode(code uint64) (data uint64, corrected, uncorrectable bool) {
	var syndrome int
	for _, p := range parityPositions {
		var parity uint64
		for pos := 1; pos <= 63; pos++ {
			if pos&p != 0 && code&(1<<uint(pos-1)) != 0 {
				parity ^= 1
			}
		}
		if parity != 0 {
			syndrome |= p
		}
	}

	overallClean := bits.OnesCount64(code)%2 == 0

	switch {
	case syndrome == 0 && overallClean:
		// No error.
	case syndrome == 0 && !overallClean:
		// The only bit the 6 Hamming parities can't see is the overall
		// parity bit itself (position 64); a dirty overall parity with a
		// zero syndrome means that bit, and only that bit, flipped.
		code ^= 1 << 63
		corrected = true
	case syndrome != 0 && !overallClean:
		if syndrome >= 1 && syndrome <= 64 {
			code ^= 1 << uint(syndrome-1)
		}
		corrected = true
	case syndrome != 0 && overallClean:
		uncorrectable = true
	}

	for i, pos := range dataPositions {
		if code&(1<<uint(pos-1)) != 0 {
			data |= 1 << uint(i)
		}
	}
	return data, corrected, uncorrectable
}
