package alu

import "math"

// Packed lane ops for bfloat16, binary16 (fp16), and microscaling
// (msfp16) all follow the same shape: unpack 4 lanes from each 64-bit
// operand, compute each lane pairwise in float32, and repack. Every
// lane arithmetic op rounds its float32 result back to the narrower
// format; fmax for bf16 specifically preserves the legacy "plain >"
// comparison instead of the NaN-aware fmax32 used by the scalar
// fmax_s: a NaN lane in a yields b's lane, and a NaN lane in b is
// returned as is.

func unpackBf16Lanes(word uint64) [4]float32 {
	var out [4]float32
	for i := 0; i < 4; i++ {
		out[i] = bfloat16FromBits(uint16(word >> uint(i*16)))
	}
	return out
}

func packBf16Lanes(lanes [4]float32) uint64 {
	var out uint64
	for i, f := range lanes {
		out |= uint64(bfloat16ToBits(f)) << uint(i*16)
	}
	return out
}

func execPackedBf16(op Op, a, b uint64) uint64 {
	la, lb := unpackBf16Lanes(a), unpackBf16Lanes(b)
	var res [4]float32
	for i := 0; i < 4; i++ {
		switch op {
		case OpFaddBf16:
			res[i] = la[i] + lb[i]
		case OpFsubBf16:
			res[i] = la[i] - lb[i]
		case OpFmulBf16:
			res[i] = la[i] * lb[i]
		case OpFmaxBf16:
			if la[i] > lb[i] {
				res[i] = la[i]
			} else {
				res[i] = lb[i]
			}
		}
	}
	return packBf16Lanes(res)
}

func execPackedBf16Fma(a, b, c uint64) uint64 {
	la, lb, lc := unpackBf16Lanes(a), unpackBf16Lanes(b), unpackBf16Lanes(c)
	var res [4]float32
	for i := 0; i < 4; i++ {
		res[i] = float32(float64(la[i])*float64(lb[i]) + float64(lc[i]))
	}
	return packBf16Lanes(res)
}

func unpackFp16Lanes(word uint64) [4]float32 {
	var out [4]float32
	for i := 0; i < 4; i++ {
		out[i] = fp16ToFloat32(fp16Lane(word, i))
	}
	return out
}

func packFp16Lanes(lanes [4]float32) uint64 {
	var out uint64
	for i, f := range lanes {
		out = fp16SetLane(out, i, float32ToFp16(f))
	}
	return out
}

func execPackedFp16(op Op, a, b uint64) uint64 {
	la, lb := unpackFp16Lanes(a), unpackFp16Lanes(b)
	var res [4]float32
	for i := 0; i < 4; i++ {
		switch op {
		case OpFaddFp16:
			res[i] = la[i] + lb[i]
		case OpFsubFp16:
			res[i] = la[i] - lb[i]
		case OpFmulFp16:
			res[i] = la[i] * lb[i]
		case OpFmaxFp16:
			res[i] = fmax32(la[i], lb[i])
		}
	}
	return packFp16Lanes(res)
}

func execPackedFp16Fma(a, b, c uint64) uint64 {
	la, lb, lc := unpackFp16Lanes(a), unpackFp16Lanes(b), unpackFp16Lanes(c)
	var res [4]float32
	for i := 0; i < 4; i++ {
		res[i] = float32(float64(la[i])*float64(lb[i]) + float64(lc[i]))
	}
	return packFp16Lanes(res)
}

// execFdotFp16 computes the dot product of the two operands' 4 fp16
// lanes in float32 and broadcasts the scalar result into all 4 lanes
// of the packed return value.
func execFdotFp16(a, b uint64) uint64 {
	la, lb := unpackFp16Lanes(a), unpackFp16Lanes(b)
	var sum float32
	for i := 0; i < 4; i++ {
		sum += la[i] * lb[i]
	}
	h := float32ToFp16(sum)
	var out uint64
	for i := 0; i < 4; i++ {
		out = fp16SetLane(out, i, h)
	}
	return out
}

func execPackedMsfp16(op Op, a, b uint64) uint64 {
	la, lb := msfp16Unpack(a), msfp16Unpack(b)
	var res [4]float32
	for i := 0; i < 4; i++ {
		switch op {
		case OpFaddMsfp16:
			res[i] = la[i] + lb[i]
		case OpFsubMsfp16:
			res[i] = la[i] - lb[i]
		case OpFmulMsfp16:
			res[i] = la[i] * lb[i]
		case OpFmaxMsfp16:
			res[i] = msfp16Max(la[i], lb[i])
		}
	}
	return msfp16Pack(res)
}

func msfp16Max(a, b float32) float32 {
	aNaN, bNaN := math.IsNaN(float64(a)), math.IsNaN(float64(b))
	if aNaN || bNaN {
		return float32(math.NaN())
	}
	if a > b {
		return a
	}
	return b
}

func execPackedMsfp16Fma(a, b, c uint64) uint64 {
	la, lb, lc := msfp16Unpack(a), msfp16Unpack(b), msfp16Unpack(c)
	var res [4]float32
	for i := 0; i < 4; i++ {
		res[i] = float32(float64(la[i])*float64(lb[i]) + float64(lc[i]))
	}
	return msfp16Pack(res)
}
