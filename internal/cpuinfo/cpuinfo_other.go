//go:build !amd64

package cpuinfo

// Non-x86 hosts never run the AVX backends.
var (
	hasAVX2   = false
	hasAVX512 = false
)
