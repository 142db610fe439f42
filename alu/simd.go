package alu

import "github.com/samber/lo"

// execSimd dispatches every packed-lane integer family (widths 32, 16,
// 8, 4, 2, and the reserved bit family). ok is false for non-SIMD
// opcodes so execInteger can fall through to its "unknown" path.
func execSimd(op Op, a, b uint64) (result uint64, overflow, ok bool) {
	switch op {
	case OpAddSimd32, OpSubSimd32, OpMulSimd32, OpDivSimd32, OpRemSimd32, OpLoadSimd32:
		return simdWord32(op, a, b), false, true
	case OpAddSimd16, OpSubSimd16, OpMulSimd16, OpDivSimd16, OpRemSimd16, OpLoadSimd16:
		return simdLaneMSF(op, a, b, 16, 4), false, true
	case OpAddSimd8, OpSubSimd8, OpMulSimd8, OpDivSimd8, OpRemSimd8, OpLoadSimd8:
		return simdLaneMSF(op, a, b, 8, 8), false, true
	case OpAddSimd4, OpSubSimd4, OpMulSimd4, OpDivSimd4, OpRemSimd4, OpLoadSimd4:
		return simdLaneLSF(op, a, b, 4, 16), false, true
	case OpAddSimd2, OpSubSimd2, OpMulSimd2, OpDivSimd2, OpRemSimd2, OpLoadSimd2:
		return simdLaneLSF(op, a, b, 2, 32), false, true
	case OpAddSimdB, OpSubSimdB, OpMulSimdB, OpDivSimdB, OpRemSimdB, OpLoadSimdB:
		return 0, false, true
	}
	return 0, false, false
}

// simdWord32 is the width-32 family, kept separate from simdLaneMSF
// because its load variant and its div/rem zero-check both operate on
// the whole word rather than per-lane, a literal quirk of the legacy
// source.
func simdWord32(op Op, a, b uint64) uint64 {
	if op == OpLoadSimd32 {
		sa1 := int64(a) << 32
		sb1 := int32(b)
		return uint64(sa1 + int64(sb1))
	}

	if op == OpDivSimd32 || op == OpRemSimd32 {
		if b == 0 {
			return 0
		}
	}

	sa1, sa2 := int32(int64(a)>>32), int32(int64(a))
	sb1, sb2 := int32(int64(b)>>32), int32(int64(b))

	var sr1, sr2 int64
	switch op {
	case OpAddSimd32:
		sr1, sr2 = int64(sa1)+int64(sb1), int64(sa2)+int64(sb2)
	case OpSubSimd32:
		sr1, sr2 = int64(sa1)-int64(sb1), int64(sa2)-int64(sb2)
	case OpMulSimd32:
		sr1, sr2 = int64(sa1)*int64(sb1), int64(sa2)*int64(sb2)
	case OpDivSimd32:
		sr1, sr2 = int64(sa1)/int64(sb1), int64(sa2)/int64(sb2)
	case OpRemSimd32:
		sr1, sr2 = int64(sa1)%int64(sb1), int64(sa2)%int64(sb2)
	}

	sr1 = sat(sr1, 32)
	sr2 = sat(sr2, 32)
	return (uint64(sr2) & 0xFFFF_FFFF) | uint64(sr1)<<32
}

// simdLaneMSF implements the width-16/8 families: most-significant-lane-
// first, sign-extended lanes, per-lane divide-by-zero guard.
func simdLaneMSF(op Op, a, b uint64, width, n int) uint64 {
	if isLoadOp(op) {
		return 0
	}
	la := extractLanesMSF(a, width, n)
	lb := extractLanesMSF(b, width, n)
	raw := lo.ZipBy2(la, lb, func(x, y int64) int64 { return laneOp(op, x, y) })
	res := lo.Map(raw, func(v int64, _ int) int64 { return sat(v, width) })
	return packLanesMSF(res, width)
}

// simdLaneLSF implements the width-4/2 families: least-significant-lane-
// first, raw unsigned lanes with no sign extension (a legacy-source
// quirk kept verbatim), and divide-by-zero saturating to the positive
// limit rather than returning 0.
func simdLaneLSF(op Op, a, b uint64, width, n int) uint64 {
	if isLoadOp(op) {
		return 0
	}
	la := extractLanesLSF(a, width, n)
	lb := extractLanesLSF(b, width, n)
	_, max := laneBounds(width)
	res := make([]int64, n)
	for i := range res {
		if (op == OpDivSimd4 || op == OpRemSimd4 || op == OpDivSimd2 || op == OpRemSimd2) && lb[i] == 0 {
			res[i] = max
			continue
		}
		sum := laneOp(op, la[i], lb[i])
		min, max := laneBounds(width)
		if op == OpAddSimd4 {
			// Legacy source checks sum > 15 instead of sum > 7, so
			// values 8..15 pass through unclamped until the final
			// 4-bit mask reinterprets them as negative. Preserved
			// verbatim.
			switch {
			case sum > 15:
				sum = max
			case sum < min:
				sum = min
			}
		} else {
			sum = sat(sum, width)
		}
		res[i] = sum
	}
	return packLanesLSF(res, width)
}

func isLoadOp(op Op) bool {
	switch op {
	case OpLoadSimd32, OpLoadSimd16, OpLoadSimd8, OpLoadSimd4, OpLoadSimd2, OpLoadSimdB:
		return true
	}
	return false
}

func laneOp(op Op, a, b int64) int64 {
	switch op {
	case OpAddSimd16, OpAddSimd8, OpAddSimd4, OpAddSimd2:
		return a + b
	case OpSubSimd16, OpSubSimd8, OpSubSimd4, OpSubSimd2:
		return a - b
	case OpMulSimd16, OpMulSimd8, OpMulSimd4, OpMulSimd2:
		return a * b
	case OpDivSimd16, OpDivSimd8, OpDivSimd4, OpDivSimd2:
		if b == 0 {
			return 0
		}
		return a / b
	case OpRemSimd16, OpRemSimd8, OpRemSimd4, OpRemSimd2:
		if b == 0 {
			return 0
		}
		return a % b
	}
	return 0
}
