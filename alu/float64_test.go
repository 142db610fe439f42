package alu_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/numex/alu"
)

func f64bits(f float64) uint64 {
	return math.Float64bits(f)
}

var _ = Describe("Float64 engine", func() {
	var u *alu.Unit

	BeforeEach(func() {
		u = alu.New(alu.WithSeed(1))
	})

	Describe("fadd_d", func() {
		It("computes 1.5 + 2.5 = 4.0 exactly", func() {
			result, flags := u.DFPExecute(alu.OpFaddD, f64bits(1.5), f64bits(2.5), 0, alu.RNE)
			Expect(math.Float64frombits(result)).To(Equal(4.0))
			Expect(flags).To(BeTrue())
		})
	})

	Describe("fdiv_d", func() {
		It("reports not-ok on divide by zero", func() {
			_, ok := u.DFPExecute(alu.OpFdivD, f64bits(1.0), f64bits(0.0), 0, alu.RNE)
			Expect(ok).To(BeFalse())
		})
	})

	Describe("fcvt_s_d / fcvt_d_s", func() {
		It("round-trips an exactly representable float32 value", func() {
			widened, _ := u.DFPExecute(alu.OpFcvtDS, f32bits(1.25), 0, 0, alu.RNE)
			narrowed, _ := u.DFPExecute(alu.OpFcvtSD, widened, 0, 0, alu.RNE)
			Expect(math.Float32frombits(uint32(narrowed))).To(Equal(float32(1.25)))
		})
	})

	Describe("fmv_x_d / fmv_d_x", func() {
		It("reinterprets bits without conversion", func() {
			bits := f64bits(-2.0)
			result, _ := u.DFPExecute(alu.OpFmvXD, bits, 0, 0, alu.RNE)
			Expect(result).To(Equal(bits))
		})
	})

	Describe("fclass_d", func() {
		It("is one-hot", func() {
			result, _ := u.DFPExecute(alu.OpFclassD, f64bits(-0.0), 0, 0, alu.RNE)
			Expect(popcount(result)).To(Equal(1))
		})
	})
})
