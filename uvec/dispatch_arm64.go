//go:build arm64

package uvec

import "golang.org/x/sys/cpu"

func init() {
	// ARM64 always has NEON (ASIMD) as part of the ARMv8-A base
	// architecture; it maps onto the portable 128-bit tier. The cpu
	// check is kept for symmetry with future SVE detection.
	detected := TierScalar
	if cpu.ARM64.HasASIMD {
		detected = TierPortable
	}
	active = selectTier(detected)
}
