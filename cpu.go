package ljson

import "github.com/klauspost/cpuid/v2"

// CPUFeatures reports the SIMD-relevant instruction sets cpuid found on the
// running host. This package's parser and serializer are plain scalar Go —
// there is no vectorized kernel here to switch on these — so the value is
// purely diagnostic: Stats callers can log it, and it lets benchmark code
// explain a slow host without guessing.
type CPUFeatures struct {
	SSE42   bool
	AVX2    bool
	AVX512F bool
}

// SupportedCPU always returns true for this package: unlike a SIMD-kernel
// implementation, there's no minimum instruction set this pure-Go parser
// requires. It is kept, with this CPUFeatures-reporting signature, so code
// ported from a SIMD-backed sibling package compiles against the same
// capability-check shape.
func SupportedCPU() bool {
	return true
}

// DetectCPUFeatures probes the host CPU via cpuid.
func DetectCPUFeatures() CPUFeatures {
	return CPUFeatures{
		SSE42:   cpuid.CPU.Supports(cpuid.SSE42),
		AVX2:    cpuid.CPU.Supports(cpuid.AVX2),
		AVX512F: cpuid.CPU.Supports(cpuid.AVX512F),
	}
}
