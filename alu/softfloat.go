package alu

import (
	"math"
	"math/big"
)

// softfloat realizes the "acquire the host rounding-mode register, run
// the op, read back exceptions, release the register" contract from a
// hardware floating-point unit using math/big.Float instead: Go exposes
// no fesetround equivalent, but big.Float's SetMode/SetPrec let every
// individual arithmetic step round to a chosen IEEE attribute at a
// chosen mantissa width, which is the portable software equivalent.
//
// A result's accumulated FpFlags come from two sources: the sticky
// Accuracy report big.Float gives back (rounded away from the exact
// value => inexact) and explicit range checks against the target
// format's normal exponent window (overflow/underflow). big.Float models
// an idealized unbounded exponent, so subnormal narrowing is approximated
// here by an explicit threshold rather than true denormal bit arithmetic.

func toBigMode(rm RoundingMode) big.RoundingMode {
	switch rm {
	case RTZ:
		return big.ToZero
	case RDN:
		return big.ToNegativeInf
	case RUP:
		return big.ToPositiveInf
	default:
		return big.ToNearestEven
	}
}

const (
	f32MantBits = 24
	f64MantBits = 53
)

func newBigFloat32(f float32) *big.Float {
	return new(big.Float).SetPrec(f32MantBits).SetFloat64(float64(f))
}

func newBigFloat64(f float64) *big.Float {
	return new(big.Float).SetPrec(f64MantBits).SetFloat64(f)
}

// roundedFloat32 narrows z (already rounded to f32MantBits significant
// bits by the caller) to a float32, flagging overflow/underflow against
// binary32's normal exponent range and inexact from big.Float's own
// accuracy report.
func roundedFloat32(z *big.Float, acc big.Accuracy) (float32, FpFlags) {
	var flags FpFlags
	if acc != big.Exact {
		flags |= FlagInexact
	}
	if z.IsInf() {
		flags |= FlagOverflow
		if z.Signbit() {
			return float32(negInf), flags
		}
		return float32(posInf), flags
	}
	f, _ := z.Float32()
	if isFloat32Overflow(f) {
		flags |= FlagOverflow
	} else if isFloat32Underflow(f, z) {
		flags |= FlagUnderflow
	}
	return f, flags
}

func roundedFloat64(z *big.Float, acc big.Accuracy) (float64, FpFlags) {
	var flags FpFlags
	if acc != big.Exact {
		flags |= FlagInexact
	}
	if z.IsInf() {
		flags |= FlagOverflow
		if z.Signbit() {
			return negInf, flags
		}
		return posInf, flags
	}
	f, _ := z.Float64()
	if isFloat64Overflow(f) {
		flags |= FlagOverflow
	} else if isFloat64Underflow(f, z) {
		flags |= FlagUnderflow
	}
	return f, flags
}

var (
	posInf = math.Inf(1)
	negInf = math.Inf(-1)
)

func isFloat32Overflow(f float32) bool {
	return f > 3.4028235e38 || f < -3.4028235e38
}

func isFloat32Underflow(f float32, z *big.Float) bool {
	return f != 0 && !z.IsInf() && absFloat32(f) < 1.1754944e-38
}

func isFloat64Overflow(f float64) bool {
	return f > 1.7976931348623157e+308 || f < -1.7976931348623157e+308
}

func isFloat64Underflow(f float64, z *big.Float) bool {
	return f != 0 && !z.IsInf() && (f < 2.2250738585072014e-308 && f > -2.2250738585072014e-308)
}

// fpAdd32/Sub32/Mul32/Div32 perform a single correctly-rounded float32
// operation under the given rounding mode.
func fpAdd32(a, b float32, rm RoundingMode) (float32, FpFlags) {
	x, y := newBigFloat32(a), newBigFloat32(b)
	z := new(big.Float).SetPrec(f32MantBits).SetMode(toBigMode(rm))
	z.Add(x, y)
	return roundedFloat32(z, z.Acc())
}

func fpSub32(a, b float32, rm RoundingMode) (float32, FpFlags) {
	x, y := newBigFloat32(a), newBigFloat32(b)
	z := new(big.Float).SetPrec(f32MantBits).SetMode(toBigMode(rm))
	z.Sub(x, y)
	return roundedFloat32(z, z.Acc())
}

func fpMul32(a, b float32, rm RoundingMode) (float32, FpFlags) {
	x, y := newBigFloat32(a), newBigFloat32(b)
	z := new(big.Float).SetPrec(f32MantBits).SetMode(toBigMode(rm))
	z.Mul(x, y)
	return roundedFloat32(z, z.Acc())
}

func fpDiv32(a, b float32, rm RoundingMode) (float32, FpFlags) {
	x, y := newBigFloat32(a), newBigFloat32(b)
	z := new(big.Float).SetPrec(f32MantBits).SetMode(toBigMode(rm))
	z.Quo(x, y)
	return roundedFloat32(z, z.Acc())
}

func fpSqrt32(a float32, rm RoundingMode) (float32, FpFlags) {
	x := newBigFloat32(a)
	z := new(big.Float).SetPrec(f32MantBits).SetMode(toBigMode(rm))
	z.Sqrt(x)
	return roundedFloat32(z, z.Acc())
}

// fpFma32 computes sign1*(a*b) + sign2*c with a single final rounding:
// the product and addition are carried at high intermediate precision
// before the one rounding step to f32MantBits.
func fpFma32(a, b, c float32, sign1, sign2 int, rm RoundingMode) (float32, FpFlags) {
	const wide = 4 * f32MantBits
	x := new(big.Float).SetPrec(wide).SetFloat64(float64(a))
	y := new(big.Float).SetPrec(wide).SetFloat64(float64(b))
	cc := new(big.Float).SetPrec(wide).SetFloat64(float64(c))

	prod := new(big.Float).SetPrec(wide).Mul(x, y)
	if sign1 < 0 {
		prod.Neg(prod)
	}
	if sign2 < 0 {
		cc.Neg(cc)
	}
	sum := new(big.Float).SetPrec(wide).Add(prod, cc)

	z := new(big.Float).SetPrec(f32MantBits).SetMode(toBigMode(rm))
	z.Set(sum)
	return roundedFloat32(z, z.Acc())
}

func fpAdd64(a, b float64, rm RoundingMode) (float64, FpFlags) {
	x, y := newBigFloat64(a), newBigFloat64(b)
	z := new(big.Float).SetPrec(f64MantBits).SetMode(toBigMode(rm))
	z.Add(x, y)
	return roundedFloat64(z, z.Acc())
}

func fpSub64(a, b float64, rm RoundingMode) (float64, FpFlags) {
	x, y := newBigFloat64(a), newBigFloat64(b)
	z := new(big.Float).SetPrec(f64MantBits).SetMode(toBigMode(rm))
	z.Sub(x, y)
	return roundedFloat64(z, z.Acc())
}

func fpMul64(a, b float64, rm RoundingMode) (float64, FpFlags) {
	x, y := newBigFloat64(a), newBigFloat64(b)
	z := new(big.Float).SetPrec(f64MantBits).SetMode(toBigMode(rm))
	z.Mul(x, y)
	return roundedFloat64(z, z.Acc())
}

func fpDiv64(a, b float64, rm RoundingMode) (float64, FpFlags) {
	x, y := newBigFloat64(a), newBigFloat64(b)
	z := new(big.Float).SetPrec(f64MantBits).SetMode(toBigMode(rm))
	z.Quo(x, y)
	return roundedFloat64(z, z.Acc())
}

func fpSqrt64(a float64, rm RoundingMode) (float64, FpFlags) {
	x := newBigFloat64(a)
	z := new(big.Float).SetPrec(f64MantBits).SetMode(toBigMode(rm))
	z.Sqrt(x)
	return roundedFloat64(z, z.Acc())
}

func fpFma64(a, b, c float64, sign1, sign2 int, rm RoundingMode) (float64, FpFlags) {
	const wide = 4 * f64MantBits
	x := new(big.Float).SetPrec(wide).SetFloat64(a)
	y := new(big.Float).SetPrec(wide).SetFloat64(b)
	cc := new(big.Float).SetPrec(wide).SetFloat64(c)

	prod := new(big.Float).SetPrec(wide).Mul(x, y)
	if sign1 < 0 {
		prod.Neg(prod)
	}
	if sign2 < 0 {
		cc.Neg(cc)
	}
	sum := new(big.Float).SetPrec(wide).Add(prod, cc)

	z := new(big.Float).SetPrec(f64MantBits).SetMode(toBigMode(rm))
	z.Set(sum)
	return roundedFloat64(z, z.Acc())
}
