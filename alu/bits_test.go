package alu

import (
	"github.com/davecgh/go-spew/spew"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Lane and fixed-point codecs", func() {
	Describe("MSF lane convention", func() {
		It("round trips sign-extended lanes, most-significant lane first", func() {
			lanes := []int64{-1, 2, -3, 4}
			word := packLanesMSF(lanes, 16)
			Expect(extractLanesMSF(word, 16, 4)).To(Equal(lanes))
		})
	})

	Describe("LSF lane convention", func() {
		It("round trips unsigned magnitudes, least-significant lane first", func() {
			lanes := []int64{1, 2, 3, 4}
			word := packLanesLSF(lanes, 4)
			Expect(extractLanesLSF(word, 4, 4)).To(Equal(lanes))
		})
	})

	Describe("sat", func() {
		It("clamps to the signed bounds of the given width", func() {
			Expect(sat(200, 8)).To(Equal(int64(127)))
			Expect(sat(-200, 8)).To(Equal(int64(-128)))
			Expect(sat(10, 8)).To(Equal(int64(10)))
		})
	})

	Describe("Q29 codec", func() {
		It("round trips a fractional value within quantization error", func() {
			x := 0.3333333
			bits := packQ29(x)
			back := unpackQ29(bits)
			Expect(back).To(BeNumerically("~", x, 1e-8))
		})

		It("saturates magnitudes above 1.0", func() {
			bits := packQ29(5.0)
			back := unpackQ29(bits)
			Expect(back).To(BeNumerically("~", 1.0, 1e-6))
		})

		It("saturates magnitudes below -1.0", func() {
			bits := packQ29(-5.0)
			back := unpackQ29(bits)
			Expect(back).To(BeNumerically("~", -1.0, 1e-6))
		})
	})

	Describe("Amplitude codec", func() {
		It("round trips tag, real, and imaginary fields", func() {
			amp := Amplitude{Tag: 9, Real: 0.25, Imag: -0.5}
			word := packAmplitude(amp)
			back := unpackAmplitude(word)
			msg := spew.Sdump(amp, back)
			Expect(back.Tag).To(Equal(amp.Tag), msg)
			Expect(back.Real).To(BeNumerically("~", amp.Real, 1e-8), msg)
			Expect(back.Imag).To(BeNumerically("~", amp.Imag, 1e-8), msg)
		})
	})
})
