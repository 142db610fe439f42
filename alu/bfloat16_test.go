package alu

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("bfloat16 conversion", func() {
	Describe("round trip", func() {
		It("recovers an exactly representable value", func() {
			f := float32(1.5)
			Expect(bfloat16FromBits(bfloat16ToBits(f))).To(Equal(f))
		})

		It("stays within one bfloat16 ULP for values that don't fit exactly", func() {
			f := float32(1.0 / 3.0)
			back := bfloat16FromBits(bfloat16ToBits(f))
			// One bfloat16 ULP in [0.25, 0.5) is 2^-9.
			Expect(math.Abs(float64(back-f))).To(BeNumerically("<=", 1.0/512))
		})
	})

	Describe("NaN canonicalization", func() {
		It("preserves the sign bit of a NaN input", func() {
			neg := math.Float32frombits(0xFFC0_0000)
			bits := bfloat16ToBits(neg)
			Expect(bits & 0x8000).To(Equal(uint16(0x8000)))
			Expect(bits & 0x7FFF).To(Equal(uint16(0x7FC0)))
		})
	})

	Describe("infinity", func() {
		It("keeps +Inf's sign and exponent field", func() {
			bits := bfloat16ToBits(float32(math.Inf(1)))
			Expect(bits).To(Equal(uint16(0x7F80)))
		})

		It("keeps -Inf's sign and exponent field", func() {
			bits := bfloat16ToBits(float32(math.Inf(-1)))
			Expect(bits).To(Equal(uint16(0xFF80)))
		})
	})
})
