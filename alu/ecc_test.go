package alu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/numex/alu"
)

var _ = Describe("ECC engine", func() {
	var u *alu.Unit

	BeforeEach(func() {
		u = alu.New(alu.WithSeed(1))
	})

	Describe("Encode/Decode round trip", func() {
		It("decodes a clean codeword back to the original payload", func() {
			for _, payload := range []uint64{0, 1, 5, 7, 12, 0x1FF_FFFF_FFFF_FFFF} {
				code := alu.Encode(payload)
				status := alu.DecodeWithStatus(code)
				Expect(status.Data).To(Equal(payload))
				Expect(status.Corrected).To(BeFalse())
				Expect(status.Uncorrectable).To(BeFalse())
			}
		})
	})

	Describe("single-bit error correction", func() {
		It("corrects a single flipped bit in the codeword", func() {
			payload := uint64(12345)
			code := alu.Encode(payload)
			for bit := 0; bit < 64; bit++ {
				flipped := code ^ (1 << uint(bit))
				status := alu.DecodeWithStatus(flipped)
				Expect(status.Data).To(Equal(payload), "bit %d", bit)
				Expect(status.Corrected).To(BeTrue(), "bit %d", bit)
			}
		})
	})

	Describe("ecc_add", func() {
		It("computes 5+7 on the decoded payloads and re-encodes", func() {
			a := alu.Encode(5)
			b := alu.Encode(7)
			result, _ := u.Execute(alu.OpEccAdd, a, b)
			Expect(result).To(Equal(alu.Encode(12)))
		})
	})

	Describe("ecc_check", func() {
		It("returns the decoded payload", func() {
			code := alu.Encode(99)
			result, _ := u.Execute(alu.OpEccCheck, code, 0)
			Expect(result).To(Equal(uint64(99)))
		})
	})

	Describe("ecc_div", func() {
		It("returns 0 rather than dividing by a decoded-zero payload", func() {
			a := alu.Encode(10)
			b := alu.Encode(0)
			result, _ := u.Execute(alu.OpEccDiv, a, b)
			Expect(result).To(Equal(alu.Encode(0)))
		})
	})
})
