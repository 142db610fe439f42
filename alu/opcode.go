// Package alu implements the numeric execution unit: a dispatcher over
// scalar and packed integer arithmetic, IEEE-754 float32/float64, the
// bfloat16/binary16/microscaling packed formats, an ECC-protected operand
// path, a random fault injector, and a fixed-point quantum amplitude
// register.
package alu

// Op identifies a single numeric operation dispatched through Execute,
// FPExecute, or DFPExecute. The set is closed; every member is known at
// build time and handled by a plain switch in alu.go, float32.go, and
// float64.go.
type Op uint16

const (
	OpUnknown Op = iota

	// Scalar integer.
	OpAdd
	OpAddW
	OpSub
	OpSubW
	OpMul
	OpMulh
	OpMulhsu
	OpMulhu
	OpMulW
	OpDiv
	OpDivW
	OpDivu
	OpDivuW
	OpRem
	OpRemW
	OpRemu
	OpRemuW
	OpAnd
	OpOr
	OpXor
	OpSll
	OpSllW
	OpSrl
	OpSrlW
	OpSra
	OpSraW
	OpSlt
	OpSltu

	// SIMD, width 32.
	OpAddSimd32
	OpSubSimd32
	OpMulSimd32
	OpDivSimd32
	OpRemSimd32
	OpLoadSimd32

	// SIMD, width 16.
	OpAddSimd16
	OpSubSimd16
	OpMulSimd16
	OpDivSimd16
	OpRemSimd16
	OpLoadSimd16

	// SIMD, width 8.
	OpAddSimd8
	OpSubSimd8
	OpMulSimd8
	OpDivSimd8
	OpRemSimd8
	OpLoadSimd8

	// SIMD, width 4.
	OpAddSimd4
	OpSubSimd4
	OpMulSimd4
	OpDivSimd4
	OpRemSimd4
	OpLoadSimd4

	// SIMD, width 2.
	OpAddSimd2
	OpSubSimd2
	OpMulSimd2
	OpDivSimd2
	OpRemSimd2
	OpLoadSimd2

	// SIMD, bit lanes (reserved family).
	OpAddSimdB
	OpSubSimdB
	OpMulSimdB
	OpDivSimdB
	OpRemSimdB
	OpLoadSimdB

	// Cached scalar ops.
	OpAddCache
	OpSubCache
	OpMulCache
	OpDivCache

	// Fault injection.
	OpRandomFlip

	// ECC.
	OpEccCheck
	OpEccAdd
	OpEccSub
	OpEccMul
	OpEccDiv

	// Float32.
	OpFaddS
	OpFsubS
	OpFmulS
	OpFdivS
	OpFsqrtS
	OpFmaddS
	OpFmsubS
	OpFnmaddS
	OpFnmsubS
	OpFsgnjS
	OpFsgnjnS
	OpFsgnjxS
	OpFminS
	OpFmaxS
	OpFeqS
	OpFltS
	OpFleS
	OpFclassS
	OpFcvtWS
	OpFcvtWuS
	OpFcvtLS
	OpFcvtLuS
	OpFcvtSW
	OpFcvtSWu
	OpFcvtSL
	OpFcvtSLu
	OpFmvXW
	OpFmvWX

	// Float64.
	OpFaddD
	OpFsubD
	OpFmulD
	OpFdivD
	OpFsqrtD
	OpFmaddD
	OpFmsubD
	OpFnmaddD
	OpFnmsubD
	OpFsgnjD
	OpFsgnjnD
	OpFsgnjxD
	OpFminD
	OpFmaxD
	OpFeqD
	OpFltD
	OpFleD
	OpFclassD
	OpFcvtWD
	OpFcvtWuD
	OpFcvtLD
	OpFcvtLuD
	OpFcvtDW
	OpFcvtDWu
	OpFcvtDL
	OpFcvtDLu
	OpFcvtSD
	OpFcvtDS
	OpFmvXD
	OpFmvDX

	// Packed bfloat16.
	OpFaddBf16
	OpFsubBf16
	OpFmulBf16
	OpFmaxBf16
	OpFmaddBf16

	// Packed binary16.
	OpFaddFp16
	OpFsubFp16
	OpFmulFp16
	OpFmaxFp16
	OpFmaddFp16
	OpFdotFp16

	// Packed microscaling.
	OpFaddMsfp16
	OpFsubMsfp16
	OpFmulMsfp16
	OpFmaxMsfp16
	OpFmaddMsfp16

	// Quantum amplitude.
	OpQallocA
	OpQallocB
	OpQha
	OpQhb
	OpQphase
	OpQxa
	OpQxb
	OpQmeas
	OpQnormA
	OpQnormB

	opCount
)

var opNames = map[Op]string{
	OpUnknown: "unknown",

	OpAdd: "add", OpAddW: "addw", OpSub: "sub", OpSubW: "subw",
	OpMul: "mul", OpMulh: "mulh", OpMulhsu: "mulhsu", OpMulhu: "mulhu", OpMulW: "mulw",
	OpDiv: "div", OpDivW: "divw", OpDivu: "divu", OpDivuW: "divuw",
	OpRem: "rem", OpRemW: "remw", OpRemu: "remu", OpRemuW: "remuw",
	OpAnd: "and", OpOr: "or", OpXor: "xor",
	OpSll: "sll", OpSllW: "sllw", OpSrl: "srl", OpSrlW: "srlw", OpSra: "sra", OpSraW: "sraw",
	OpSlt: "slt", OpSltu: "sltu",

	OpAddSimd32: "add_simd32", OpSubSimd32: "sub_simd32", OpMulSimd32: "mul_simd32",
	OpDivSimd32: "div_simd32", OpRemSimd32: "rem_simd32", OpLoadSimd32: "load_simd32",

	OpAddSimd16: "add_simd16", OpSubSimd16: "sub_simd16", OpMulSimd16: "mul_simd16",
	OpDivSimd16: "div_simd16", OpRemSimd16: "rem_simd16", OpLoadSimd16: "load_simd16",

	OpAddSimd8: "add_simd8", OpSubSimd8: "sub_simd8", OpMulSimd8: "mul_simd8",
	OpDivSimd8: "div_simd8", OpRemSimd8: "rem_simd8", OpLoadSimd8: "load_simd8",

	OpAddSimd4: "add_simd4", OpSubSimd4: "sub_simd4", OpMulSimd4: "mul_simd4",
	OpDivSimd4: "div_simd4", OpRemSimd4: "rem_simd4", OpLoadSimd4: "load_simd4",

	OpAddSimd2: "add_simd2", OpSubSimd2: "sub_simd2", OpMulSimd2: "mul_simd2",
	OpDivSimd2: "div_simd2", OpRemSimd2: "rem_simd2", OpLoadSimd2: "load_simd2",

	OpAddSimdB: "add_simdb", OpSubSimdB: "sub_simdb", OpMulSimdB: "mul_simdb",
	OpDivSimdB: "div_simdb", OpRemSimdB: "rem_simdb", OpLoadSimdB: "load_simdb",

	OpAddCache: "add_cache", OpSubCache: "sub_cache", OpMulCache: "mul_cache", OpDivCache: "div_cache",

	OpRandomFlip: "random_flip",

	OpEccCheck: "ecc_check", OpEccAdd: "ecc_add", OpEccSub: "ecc_sub", OpEccMul: "ecc_mul", OpEccDiv: "ecc_div",

	OpFaddS: "fadd_s", OpFsubS: "fsub_s", OpFmulS: "fmul_s", OpFdivS: "fdiv_s", OpFsqrtS: "fsqrt_s",
	OpFmaddS: "fmadd_s", OpFmsubS: "fmsub_s", OpFnmaddS: "fnmadd_s", OpFnmsubS: "fnmsub_s",
	OpFsgnjS: "fsgnj_s", OpFsgnjnS: "fsgnjn_s", OpFsgnjxS: "fsgnjx_s",
	OpFminS: "fmin_s", OpFmaxS: "fmax_s",
	OpFeqS: "feq_s", OpFltS: "flt_s", OpFleS: "fle_s", OpFclassS: "fclass_s",
	OpFcvtWS: "fcvt_w_s", OpFcvtWuS: "fcvt_wu_s", OpFcvtLS: "fcvt_l_s", OpFcvtLuS: "fcvt_lu_s",
	OpFcvtSW: "fcvt_s_w", OpFcvtSWu: "fcvt_s_wu", OpFcvtSL: "fcvt_s_l", OpFcvtSLu: "fcvt_s_lu",
	OpFmvXW: "fmv_x_w", OpFmvWX: "fmv_w_x",

	OpFaddD: "fadd_d", OpFsubD: "fsub_d", OpFmulD: "fmul_d", OpFdivD: "fdiv_d", OpFsqrtD: "fsqrt_d",
	OpFmaddD: "fmadd_d", OpFmsubD: "fmsub_d", OpFnmaddD: "fnmadd_d", OpFnmsubD: "fnmsub_d",
	OpFsgnjD: "fsgnj_d", OpFsgnjnD: "fsgnjn_d", OpFsgnjxD: "fsgnjx_d",
	OpFminD: "fmin_d", OpFmaxD: "fmax_d",
	OpFeqD: "feq_d", OpFltD: "flt_d", OpFleD: "fle_d", OpFclassD: "fclass_d",
	OpFcvtWD: "fcvt_w_d", OpFcvtWuD: "fcvt_wu_d", OpFcvtLD: "fcvt_l_d", OpFcvtLuD: "fcvt_lu_d",
	OpFcvtDW: "fcvt_d_w", OpFcvtDWu: "fcvt_d_wu", OpFcvtDL: "fcvt_d_l", OpFcvtDLu: "fcvt_d_lu",
	OpFcvtSD: "fcvt_s_d", OpFcvtDS: "fcvt_d_s", OpFmvXD: "fmv_x_d", OpFmvDX: "fmv_d_x",

	OpFaddBf16: "fadd_bf16", OpFsubBf16: "fsub_bf16", OpFmulBf16: "fmul_bf16",
	OpFmaxBf16: "fmax_bf16", OpFmaddBf16: "fmadd_bf16",

	OpFaddFp16: "fadd_fp16", OpFsubFp16: "fsub_fp16", OpFmulFp16: "fmul_fp16",
	OpFmaxFp16: "fmax_fp16", OpFmaddFp16: "fmadd_fp16", OpFdotFp16: "fdot_fp16",

	OpFaddMsfp16: "fadd_msfp16", OpFsubMsfp16: "fsub_msfp16", OpFmulMsfp16: "fmul_msfp16",
	OpFmaxMsfp16: "fmax_msfp16", OpFmaddMsfp16: "fmadd_msfp16",

	OpQallocA: "qalloc_a", OpQallocB: "qalloc_b", OpQha: "qha", OpQhb: "qhb",
	OpQphase: "qphase", OpQxa: "qxa", OpQxb: "qxb", OpQmeas: "qmeas",
	OpQnormA: "qnorma", OpQnormB: "qnormb",
}

// String renders the opcode's canonical name, matching spec surface names.
func (o Op) String() string {
	if name, ok := opNames[o]; ok {
		return name
	}
	return "unknown"
}
