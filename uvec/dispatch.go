package uvec

import (
	"os"
	"strconv"
	"unsafe"
)

// Tier is a vector-instruction capability level. Exactly one tier is
// active per build target; tiers are ordered by capability so that a
// higher tier provides at least the operations of a lower one, native
// or emulated.
type Tier int

const (
	// TierScalar is the pure scalar fallback with no native vector forms.
	TierScalar Tier = iota

	// TierPortable models a generic portable vector library
	// (128-bit registers, most operations native).
	TierPortable

	// TierSSE2 models the legacy fixed 128-bit x86 ISA baseline.
	TierSSE2

	// TierAVX2 models the modern wide (256-bit) x86 ISA.
	TierAVX2
)

// String returns the tier's short name.
func (t Tier) String() string {
	switch t {
	case TierScalar:
		return "scalar"
	case TierPortable:
		return "portable"
	case TierSSE2:
		return "sse2"
	case TierAVX2:
		return "avx2"
	default:
		return "unknown"
	}
}

// ParseTier converts a tier name back to a Tier. The second result is
// false if the name is not recognized.
func ParseTier(name string) (Tier, bool) {
	switch name {
	case "scalar":
		return TierScalar, true
	case "portable":
		return TierPortable, true
	case "sse2":
		return TierSSE2, true
	case "avx2":
		return TierAVX2, true
	}
	return TierScalar, false
}

// active is the capability descriptor selected at init by the
// dispatch_*.go file for the build's GOARCH. It is written once during
// package init and treated as immutable afterwards.
var active Target

// Current returns the active capability descriptor for this build.
func Current() Target {
	return active
}

// selectTier resolves the tier chosen by hardware detection against the
// UVEC_NO_SIMD and UVEC_TIER environment overrides. An override may only
// lower the tier; requesting a tier the hardware cannot back is ignored.
func selectTier(detected Tier) Target {
	if noSimdEnv() {
		return TargetFor(TierScalar)
	}
	if name := os.Getenv("UVEC_TIER"); name != "" {
		if t, ok := ParseTier(name); ok && t <= detected {
			return TargetFor(t)
		}
	}
	return TargetFor(detected)
}

// noSimdEnv reports whether the UVEC_NO_SIMD environment variable
// requests the scalar fallback regardless of CPU capabilities.
func noSimdEnv() bool {
	val := os.Getenv("UVEC_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// MaxLanes returns the number of lanes of type T in the active tier's
// registers: register width in bytes divided by the element size.
func MaxLanes[T Lanes]() int {
	var dummy T
	elementSize := int(unsafe.Sizeof(dummy))
	if elementSize == 0 {
		return 0
	}
	return active.Width() / elementSize
}
