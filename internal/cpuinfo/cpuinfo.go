// Package cpuinfo reports whether the host CPU can execute the instruction
// set a binary was compiled against. It exists so that build-time selected
// backends can fail loudly at startup on an unsupported host instead of
// faulting inside a kernel. It performs no dispatch: the backend choice is
// already fixed when these functions run.
package cpuinfo

// HasAVX2 reports whether the host supports AVX2 (and FMA, which every
// AVX2 kernel in this module assumes).
func HasAVX2() bool {
	return hasAVX2
}

// HasAVX512 reports whether the host supports the AVX-512 foundation
// subset used by the avx512 backend (F/BW/DQ/VL).
func HasAVX512() bool {
	return hasAVX512
}
