package alu

// DecodeResult carries the outcome of decoding a Hamming(64,57)
// codeword, including the diagnostic booleans the legacy source computed
// but never returned to its caller.
type DecodeResult struct {
	Data          uint64
	Corrected     bool
	Uncorrectable bool
}

// DecodeWithStatus decodes word and reports whether a single-bit error
// was corrected or a double-bit error was detected but uncorrectable.
// Decode (used internally by the ECC opcodes) discards these booleans,
// matching the dispatcher's literal behavior; this is offered for
// callers that want the diagnostic.
func DecodeWithStatus(word uint64) DecodeResult {
	data, corrected, uncorrectable := hammingDecode(word)
	return DecodeResult{Data: data, Corrected: corrected, Uncorrectable: uncorrectable}
}

// Decode returns the 57-bit data payload of an ECC codeword, correcting
// a single-bit error if present.
func Decode(word uint64) uint64 {
	data, _, _ := hammingDecode(word)
	return data
}

// Encode builds a Hamming(64,57) SECDED codeword from a 57-bit payload.
func Encode(data uint64) uint64 {
	return hammingEncode(data)
}

// execEcc dispatches ecc_check/ecc_add/ecc_sub/ecc_mul/ecc_div: decode
// both operands, perform the integer operation on the extracted
// payloads, and re-encode.
func execEcc(op Op, a, b uint64) uint64 {
	if op == OpEccCheck {
		return Decode(a)
	}

	da, db := Decode(a), Decode(b)
	var result uint64
	switch op {
	case OpEccAdd:
		result = da + db
	case OpEccSub:
		result = da - db
	case OpEccMul:
		result = da * db
	case OpEccDiv:
		if db == 0 {
			result = 0
		} else {
			result = da / db
		}
	default:
		return 0
	}
	return Encode(result)
}
