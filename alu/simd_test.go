package alu_test

import (
	"github.com/google/go-cmp/cmp"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/numex/alu"
)

var _ = Describe("Packed SIMD integer ops", func() {
	var u *alu.Unit

	BeforeEach(func() {
		u = alu.New(alu.WithSeed(1))
	})

	Describe("width 32", func() {
		It("adds two lanes with carry confined to its own half", func() {
			a := uint64(0x1000_0000_FFFF_FFF0)
			b := uint64(0x2000_0000_0000_0015)
			result, _ := u.Execute(alu.OpAddSimd32, a, b)
			Expect(result).To(Equal(uint64(0x3000_0000_0000_0005)))
		})

		It("saturates each lane independently", func() {
			a := uint64(0x7FFF_FFFF_0000_0000)
			b := uint64(0x0000_0001_0000_0000)
			result, _ := u.Execute(alu.OpAddSimd32, a, b)
			Expect(int32(result >> 32)).To(Equal(int32(0x7FFF_FFFF)))
		})

		It("guards div/rem by zero on the whole word, not per lane", func() {
			result, _ := u.Execute(alu.OpDivSimd32, 0x1, 0)
			Expect(result).To(Equal(uint64(0)))
		})

		It("load_simd32 overflows through the high 32 bits", func() {
			result, _ := u.Execute(alu.OpLoadSimd32, 1, 0xFFFF_FFFF)
			highBits := uint32(0xFFFF_FFFF)
			Expect(int64(result)).To(Equal(int64(1)<<32 + int64(int32(highBits))))
		})
	})

	Describe("width 16", func() {
		It("saturates a lane that overflows positive", func() {
			a := uint64(0x7FFF_0000_0000_0000)
			b := uint64(0x0001_0000_0000_0000)
			result, _ := u.Execute(alu.OpAddSimd16, a, b)
			Expect(uint16(result >> 48)).To(Equal(uint16(0x7FFF)))
		})

		It("zeroes a lane on divide by zero without affecting others", func() {
			a := uint64(0x0010_0010_0010_0010)
			b := uint64(0x0002_0000_0002_0002)
			result, _ := u.Execute(alu.OpDivSimd16, a, b)
			Expect(uint16(result >> 32)).To(Equal(uint16(0)))
		})
	})

	Describe("width 4 (preserved bug)", func() {
		It("add passes sums in [8,15] through unclamped before the 4-bit mask", func() {
			// 7 + 2 = 9: the legacy `sum > 15` check doesn't fire, so the
			// raw 9 survives to the 4-bit mask and reinterprets as -7.
			a := uint64(0x7)
			b := uint64(0x2)
			result, _ := u.Execute(alu.OpAddSimd4, a, b)
			Expect(int64(int8(result<<4)) >> 4).To(Equal(int64(-7)))
		})

		It("divide by zero saturates to the positive limit, not zero", func() {
			result, _ := u.Execute(alu.OpDivSimd4, 0x5, 0x0)
			Expect(result & 0xF).To(Equal(uint64(7)))
		})
	})

	Describe("width 2 divide by zero", func() {
		It("saturates to the positive limit", func() {
			result, _ := u.Execute(alu.OpDivSimd2, 0x1, 0x0)
			Expect(result & 0x3).To(Equal(uint64(1)))
		})
	})

	Describe("saturation invariant", func() {
		It("every add_simd8 lane equals the saturated sum of its inputs", func() {
			a := uint64(0x7F01_0200_0102_0304)
			b := uint64(0x0102_0304_0506_0708)
			result, _ := u.Execute(alu.OpAddSimd8, a, b)

			var got, want [8]int8
			for i := 0; i < 8; i++ {
				shift := uint(56 - i*8)
				la := int8(a >> shift)
				lb := int8(b >> shift)
				sum := int16(la) + int16(lb)
				switch {
				case sum > 127:
					want[i] = 127
				case sum < -128:
					want[i] = -128
				default:
					want[i] = int8(sum)
				}
				got[i] = int8(result >> shift)
			}
			Expect(cmp.Diff(want, got)).To(BeEmpty())
		})
	})
})
