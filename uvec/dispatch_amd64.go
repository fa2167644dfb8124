//go:build amd64

package uvec

import "golang.org/x/sys/cpu"

func init() {
	// SSE2 is part of the x86-64 baseline, so the detected tier is at
	// least TierSSE2. AVX2 widens registers to 256 bits and unlocks the
	// native 32-bit multiply, FMA and gather paths.
	detected := TierSSE2
	if cpu.X86.HasAVX2 {
		detected = TierAVX2
	}
	active = selectTier(detected)
}
