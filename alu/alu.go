package alu

import "math/rand"

// Unit is the numeric execution unit: a single-entry cache per cached
// opcode and a private random source for the fault injector and the
// quantum amplitude engine's noise/collapse sampling. Every Unit owns
// its own state so concurrent units never interfere.
type Unit struct {
	cache [4]opCache
	rng   *rand.Rand
}

// UnitOption is a functional option for configuring a Unit.
type UnitOption func(*Unit)

// WithSeed fixes the Unit's random source to a deterministic seed,
// useful for reproducing a fault-injection or quantum-measurement trace.
func WithSeed(seed int64) UnitOption {
	return func(u *Unit) {
		u.rng = rand.New(rand.NewSource(seed))
	}
}

// WithSource installs a caller-supplied random source, e.g. one shared
// across Units for a reproducible multi-unit run.
func WithSource(src rand.Source) UnitOption {
	return func(u *Unit) {
		u.rng = rand.New(src)
	}
}

// New creates a Unit with an empty cache and, unless overridden by
// WithSeed/WithSource, a random source with the fixed seed 1.
func New(opts ...UnitOption) *Unit {
	u := &Unit{
		rng: rand.New(rand.NewSource(1)),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Execute dispatches every integer-domain opcode: scalar arithmetic,
// logic, shifts, comparisons, every packed SIMD width, the cached
// arithmetic wrappers, the random bit-flip fault injector, the ECC
// codec family, and the quantum amplitude family. overflow reports
// whether the scalar arithmetic op (add/sub/mul/div/divw family)
// overflowed; opcodes outside this domain return (0, false).
func (u *Unit) Execute(op Op, a, b uint64) (result uint64, overflow bool) {
	switch {
	case isEccOp(op):
		return execEcc(op, a, b), false
	case isCacheOp(op):
		return u.execCached(op, a, b), false
	case op == OpRandomFlip:
		return u.randomFlip(a), false
	case isQuantumOp(op):
		return u.execQuantum(op, a, b), false
	default:
		return execInteger(op, a, b)
	}
}

// FPExecute dispatches the binary32 family and the packed bfloat16/
// binary16/microscaling lane families, returning the result's low 32
// bits sign-extended to a Word (scalar) or the packed lanes unmodified
// (packed families), plus any IEEE exception flags raised.
func (u *Unit) FPExecute(op Op, a, b, c uint64, rm RoundingMode) (uint64, FpFlags) {
	return execFloat32(op, a, b, c, rm)
}

// DFPExecute dispatches the binary64 family. It returns (result, ok)
// rather than a flags byte, preserving the legacy narrowing of FP
// exception state to a single success bit at the binary64 call site;
// ok is false whenever the op raises invalid or divide-by-zero (fdiv_d
// by zero, fsqrt_d of a negative, a saturating fcvt to integer).
// Overflow, underflow and inexact are not reported.
func (u *Unit) DFPExecute(op Op, a, b, c uint64, rm RoundingMode) (uint64, bool) {
	result, flags := execFloat64(op, a, b, c, rm)
	ok := !flags.Has(FlagInvalid) && !flags.Has(FlagDivZero)
	return result, ok
}

func isEccOp(op Op) bool {
	switch op {
	case OpEccCheck, OpEccAdd, OpEccSub, OpEccMul, OpEccDiv:
		return true
	}
	return false
}

func isCacheOp(op Op) bool {
	switch op {
	case OpAddCache, OpSubCache, OpMulCache, OpDivCache:
		return true
	}
	return false
}

func isQuantumOp(op Op) bool {
	switch op {
	case OpQallocA, OpQallocB, OpQha, OpQhb, OpQphase, OpQxa, OpQxb, OpQmeas, OpQnormA, OpQnormB:
		return true
	}
	return false
}

var defaultUnit = New()

// Execute is a package-level convenience wrapper around a shared
// default Unit, for callers that don't need per-instance cache or RNG
// isolation.
func Execute(op Op, a, b uint64) (uint64, bool) {
	return defaultUnit.Execute(op, a, b)
}

// FPExecute wraps the default Unit's FPExecute.
func FPExecute(op Op, a, b, c uint64, rm RoundingMode) (uint64, FpFlags) {
	return defaultUnit.FPExecute(op, a, b, c, rm)
}

// DFPExecute wraps the default Unit's DFPExecute.
func DFPExecute(op Op, a, b, c uint64, rm RoundingMode) (uint64, bool) {
	return defaultUnit.DFPExecute(op, a, b, c, rm)
}
