package alu

import "math"

// execInteger handles scalar integer arithmetic, logic, shifts,
// comparisons, and every SIMD family. It never touches floating point or
// the rounding-mode scope.
func execInteger(op Op, a, b uint64) (uint64, bool) {
	switch op {
	case OpAdd:
		sa, sb := int64(a), int64(b)
		result := sa + sb
		overflow := (sa > 0 && sb > 0 && result < 0) || (sa < 0 && sb < 0 && result >= 0)
		return uint64(result), overflow
	case OpAddW:
		sa, sb := int32(a), int32(b)
		result := sa + sb
		overflow := (sa > 0 && sb > 0 && result < 0) || (sa < 0 && sb < 0 && result >= 0)
		return uint64(uint32(int64(result))), overflow
	case OpSub:
		sa, sb := int64(a), int64(b)
		result := sa - sb
		overflow := (sb < 0 && result < sa) || (sb > 0 && result > sa)
		return uint64(result), overflow
	case OpSubW:
		sa, sb := int32(a), int32(b)
		result := sa - sb
		overflow := (sb < 0 && result < sa) || (sb > 0 && result > sa)
		return uint64(uint32(int64(result))), overflow
	case OpMul:
		sa, sb := int64(a), int64(b)
		result := sa * sb
		overflow := sa != 0 && result/sa != sb
		return uint64(result), overflow
	case OpMulh:
		return uint64(mulHigh64(int64(a), int64(b))), false
	case OpMulhsu:
		return uint64(mulHighSU64(int64(a), b)), false
	case OpMulhu:
		return mulHighU64(a, b), false
	case OpMulW:
		sa, sb := int32(a), int32(b)
		result := int64(sa) * int64(sb)
		lower := int32(result)
		overflow := result != int64(lower)
		return uint64(uint32(lower)), overflow
	case OpDiv:
		sa, sb := int64(a), int64(b)
		if sb == 0 {
			return 0, false
		}
		if sa == math.MinInt64 && sb == -1 {
			return uint64(int64(math.MaxInt64)), true
		}
		return uint64(sa / sb), false
	case OpDivW:
		sa, sb := int32(a), int32(b)
		if sb == 0 {
			return 0, false
		}
		if sa == math.MinInt32 && sb == -1 {
			minInt32 := int32(math.MinInt32)
			return uint64(uint32(minInt32)), true
		}
		return uint64(uint32(sa / sb)), false
	case OpDivu:
		if b == 0 {
			return 0, false
		}
		return a / b, false
	case OpDivuW:
		ua, ub := uint32(a), uint32(b)
		if ub == 0 {
			return 0, false
		}
		return uint64(ua / ub), false
	case OpRem:
		sa, sb := int64(a), int64(b)
		if sb == 0 {
			return 0, false
		}
		return uint64(sa % sb), false
	case OpRemW:
		sa, sb := int32(a), int32(b)
		if sb == 0 {
			return 0, false
		}
		return uint64(uint32(sa % sb)), false
	case OpRemu:
		if b == 0 {
			return 0, false
		}
		return a % b, false
	case OpRemuW:
		ua, ub := uint32(a), uint32(b)
		if ub == 0 {
			return 0, false
		}
		return uint64(ua % ub), false
	case OpAnd:
		return a & b, false
	case OpOr:
		return a | b, false
	case OpXor:
		return a ^ b, false
	case OpSll:
		return a << (b & 63), false
	case OpSllW:
		ua, ub := uint32(a), uint32(b)
		return uint64(uint32(int32(ua << (ub & 31)))), false
	case OpSrl:
		return a >> (b & 63), false
	case OpSrlW:
		ua, ub := uint32(a), uint32(b)
		return uint64(uint32(int32(ua >> (ub & 31)))), false
	case OpSra:
		return uint64(int64(a) >> (b & 63)), false
	case OpSraW:
		return uint64(uint32(int32(a) >> (b & 31))), false
	case OpSlt:
		if int64(a) < int64(b) {
			return 1, false
		}
		return 0, false
	case OpSltu:
		if a < b {
			return 1, false
		}
		return 0, false
	}

	if result, overflow, ok := execSimd(op, a, b); ok {
		return result, overflow
	}
	return 0, false
}

func mulHigh64(a, b int64) int64 {
	hi, _ := bitsMul64(a, b)
	return hi
}

func mulHighSU64(a int64, b uint64) int64 {
	neg := a < 0
	ua := uint64(a)
	if neg {
		ua = -ua
	}
	hi, lo := mul128(ua, b)
	if neg {
		hi, lo = negate128(hi, lo)
	}
	return int64(hi)
}

func mulHighU64(a, b uint64) uint64 {
	hi, _ := mul128(a, b)
	return hi
}

// bitsMul64 returns the signed 128-bit product of a and b as (high, low).
func bitsMul64(a, b int64) (int64, uint64) {
	negResult := (a < 0) != (b < 0)
	ua, ub := uint64(a), uint64(b)
	if a < 0 {
		ua = -ua
	}
	if b < 0 {
		ub = -ub
	}
	hi, lo := mul128(ua, ub)
	if negResult {
		hi, lo = negate128(hi, lo)
	}
	return int64(hi), lo
}

func mul128(a, b uint64) (hi, lo uint64) {
	aLo, aHi := a&0xFFFFFFFF, a>>32
	bLo, bHi := b&0xFFFFFFFF, b>>32

	t0 := aLo * bLo
	t1 := aHi*bLo + t0>>32
	t2 := aLo*bHi + t1&0xFFFFFFFF
	hi = aHi*bHi + t1>>32 + t2>>32
	lo = t2<<32 | t0&0xFFFFFFFF
	return hi, lo
}

func negate128(hi, lo uint64) (uint64, uint64) {
	lo = ^lo + 1
	hi = ^hi
	if lo == 0 {
		hi++
	}
	return hi, lo
}
