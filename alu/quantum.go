package alu

import "math"

// sqrt2Inv is the Hadamard-style normalization constant 1/sqrt(2),
// applied by qha/qhb to keep the amplitude pair normalized under an
// equal-weight superposition.
const sqrt2Inv = 0.7071067811865476

// execQuantum dispatches the fixed-point complex amplitude family.
// Every operation decodes its Word operands into Amplitude, works in
// float64, and re-encodes through packAmplitude — except qmeas, which
// returns a classical 0/1 outcome rather than a packed amplitude, and
// qxa/qxb, which are pure swaps.
func (u *Unit) execQuantum(op Op, a, b uint64) uint64 {
	switch op {
	case OpQallocA, OpQallocB:
		ampA := unpackAmplitude(a)
		tag := ampA.Tag
		if b != 0 {
			tag = unpackAmplitude(b).Tag
		}
		return packAmplitude(Amplitude{Tag: tag, Real: ampA.Real, Imag: ampA.Imag})

	case OpQha:
		ampA, ampB := unpackAmplitude(a), unpackAmplitude(b)
		r := (ampA.Real + ampB.Real) * sqrt2Inv
		i := (ampA.Imag + ampB.Imag) * sqrt2Inv
		if ampA.Tag == 1 {
			r, i = u.applyNoise(r), u.applyNoise(i)
		}
		return packAmplitude(Amplitude{Tag: ampA.Tag, Real: r, Imag: i})

	case OpQhb:
		ampA, ampB := unpackAmplitude(a), unpackAmplitude(b)
		r := (ampA.Real - ampB.Real) * sqrt2Inv
		i := (ampA.Imag - ampB.Imag) * sqrt2Inv
		if ampA.Tag == 1 {
			r, i = u.applyNoise(r), u.applyNoise(i)
		}
		return packAmplitude(Amplitude{Tag: ampA.Tag, Real: r, Imag: i})

	case OpQphase:
		ampA, ampB := unpackAmplitude(a), unpackAmplitude(b)
		br, bi := ampA.Real, ampA.Imag
		theta := ampB.Imag
		cosT, sinT := math.Cos(theta), math.Sin(theta)
		r := br*cosT - bi*sinT
		i := br*sinT + bi*cosT
		if ampA.Tag == 1 {
			r, i = u.applyNoise(r), u.applyNoise(i)
		}
		return packAmplitude(Amplitude{Tag: ampA.Tag, Real: r, Imag: i})

	case OpQxa:
		return b

	case OpQxb:
		return a

	case OpQmeas:
		ampA, ampB := unpackAmplitude(a), unpackAmplitude(b)
		p0 := normSquared(ampA)
		p1 := normSquared(ampB)
		total := p0 + p1
		if total < 1e-9 {
			return 0
		}
		if u.rng.Float64() < p0/total {
			return 0
		}
		return 1

	case OpQnormA:
		ampA, ampB := unpackAmplitude(a), unpackAmplitude(b)
		normSq := normSquared(ampA) + normSquared(ampB)
		if normSq < 1e-9 {
			return a
		}
		norm := math.Sqrt(normSq)
		return packAmplitude(Amplitude{Tag: ampA.Tag, Real: ampA.Real / norm, Imag: ampA.Imag / norm})

	case OpQnormB:
		ampA, ampB := unpackAmplitude(a), unpackAmplitude(b)
		normSq := normSquared(ampA) + normSquared(ampB)
		if normSq < 1e-9 {
			return b
		}
		norm := math.Sqrt(normSq)
		return packAmplitude(Amplitude{Tag: ampB.Tag, Real: ampB.Real / norm, Imag: ampB.Imag / norm})
	}
	return 0
}

func normSquared(amp Amplitude) float64 {
	return amp.Real*amp.Real + amp.Imag*amp.Imag
}

// applyNoise perturbs val by uniform noise in [-0.01, 0.01], gated by the
// caller on tag == 1 as a simple decoherence simulation.
func (u *Unit) applyNoise(val float64) float64 {
	noise := u.rng.Float64()*0.02 - 0.01
	return val + noise
}
