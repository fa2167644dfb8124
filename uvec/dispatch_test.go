package uvec

import (
	"testing"
	"unsafe"
)

func TestTierOrdering(t *testing.T) {
	if !(TierScalar < TierPortable && TierPortable < TierSSE2 && TierSSE2 < TierAVX2) {
		t.Error("tiers are not ordered by capability")
	}
}

func TestParseTierRoundTrip(t *testing.T) {
	for _, tier := range []Tier{TierScalar, TierPortable, TierSSE2, TierAVX2} {
		got, ok := ParseTier(tier.String())
		if !ok || got != tier {
			t.Errorf("ParseTier(%q) = %v, %v", tier.String(), got, ok)
		}
	}
	if _, ok := ParseTier("mmx"); ok {
		t.Error("ParseTier accepted an unknown name")
	}
}

func TestTargetLanes(t *testing.T) {
	for _, target := range Targets() {
		for _, k := range Kinds() {
			want := target.Width() / k.Size()
			if got := target.Lanes(k); got != want {
				t.Errorf("%s: Lanes(%s) = %d, want %d", target.Name(), k, got, want)
			}
		}
	}

	sse2 := TargetFor(TierSSE2)
	if got := sse2.Lanes(KindF32); got != 4 {
		t.Errorf("sse2 f32 lanes = %d, want 4", got)
	}
	avx2 := TargetFor(TierAVX2)
	if got := avx2.Lanes(KindU8); got != 32 {
		t.Errorf("avx2 u8 lanes = %d, want 32", got)
	}
}

func TestScalarTierHasNoNativeCaps(t *testing.T) {
	scalar := TargetFor(TierScalar)
	for _, k := range Kinds() {
		if scalar.Caps(k) != (Caps{}) {
			t.Errorf("scalar tier reports native capability for %s", k)
		}
	}
}

func TestCapabilityTables(t *testing.T) {
	sse2 := TargetFor(TierSSE2)
	avx2 := TargetFor(TierAVX2)

	// 8-bit multiply is emulated on every modeled tier.
	for _, target := range Targets() {
		if target.Caps(KindU8).NativeMul || target.Caps(KindS8).NativeMul {
			t.Errorf("%s: claims native 8-bit multiply", target.Name())
		}
	}

	// 32-bit multiply arrives with the wide tier.
	if sse2.Caps(KindU32).NativeMul {
		t.Error("sse2 claims native 32-bit multiply")
	}
	if !avx2.Caps(KindU32).NativeMul {
		t.Error("avx2 missing native 32-bit multiply")
	}

	// Saturating forms exist only at 8/16-bit widths.
	for _, target := range Targets()[1:] {
		if target.Caps(KindU32).NativeSaturatingAdd || target.Caps(KindF32).NativeSaturatingAdd {
			t.Errorf("%s: saturating flag set for a wide/float kind", target.Name())
		}
	}

	// FMA is a float capability.
	if avx2.Caps(KindS32).NativeFMA {
		t.Error("avx2 claims integer FMA")
	}
	if !avx2.Caps(KindF64).NativeFMA {
		t.Error("avx2 missing f64 FMA")
	}

	// Gather needs 4-byte or wider elements; no modeled tier scatters.
	if avx2.Caps(KindU8).Gather || !avx2.Caps(KindF32).Gather {
		t.Error("avx2 gather table wrong")
	}
	for _, target := range Targets() {
		for _, k := range Kinds() {
			if target.Caps(k).Scatter {
				t.Errorf("%s: claims native scatter for %s", target.Name(), k)
			}
		}
	}
}

func TestMaxLanesMatchesActiveWidth(t *testing.T) {
	var f32 float32
	want := Current().Width() / int(unsafe.Sizeof(f32))
	if got := MaxLanes[float32](); got != want {
		t.Errorf("MaxLanes[float32] = %d, want %d", got, want)
	}
	if got := LanesOf[float32](Current()); got != want {
		t.Errorf("LanesOf[float32](Current()) = %d, want %d", got, want)
	}
}

func TestKindTags(t *testing.T) {
	if KindOf[uint8]() != KindU8 || KindOf[int64]() != KindS64 || KindOf[float32]() != KindF32 {
		t.Error("KindOf mapping wrong")
	}
	if KindU16.String() != "u16" || KindF64.String() != "f64" {
		t.Error("Kind tags wrong")
	}
	if KindS8.Size() != 1 || KindF32.Size() != 4 || KindU64.Size() != 8 {
		t.Error("Kind sizes wrong")
	}
}
