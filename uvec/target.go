package uvec

import "unsafe"

// Kind tags one of the ten supported element types. It is the runtime
// counterpart of the Lanes type parameter, used for capability queries
// and display; arithmetic itself stays generic.
type Kind int

const (
	KindU8 Kind = iota
	KindS8
	KindU16
	KindS16
	KindU32
	KindS32
	KindU64
	KindS64
	KindF32
	KindF64
)

// Kinds lists all element type tags in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindU8, KindS8, KindU16, KindS16, KindU32,
		KindS32, KindU64, KindS64, KindF32, KindF64,
	}
}

// String returns the conventional short tag: u8, s8, ..., f32, f64.
func (k Kind) String() string {
	switch k {
	case KindU8:
		return "u8"
	case KindS8:
		return "s8"
	case KindU16:
		return "u16"
	case KindS16:
		return "s16"
	case KindU32:
		return "u32"
	case KindS32:
		return "s32"
	case KindU64:
		return "u64"
	case KindS64:
		return "s64"
	case KindF32:
		return "f32"
	case KindF64:
		return "f64"
	default:
		return "invalid"
	}
}

// Size returns the element width in bytes.
func (k Kind) Size() int {
	switch k {
	case KindU8, KindS8:
		return 1
	case KindU16, KindS16:
		return 2
	case KindU32, KindS32, KindF32:
		return 4
	default:
		return 8
	}
}

// IsFloat reports whether the kind is a floating-point type.
func (k Kind) IsFloat() bool {
	return k == KindF32 || k == KindF64
}

// KindOf returns the Kind tag for element type T.
func KindOf[T Lanes]() Kind {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return KindU8
	case int8:
		return KindS8
	case uint16:
		return KindU16
	case int16:
		return KindS16
	case uint32:
		return KindU32
	case int32:
		return KindS32
	case uint64:
		return KindU64
	case int64:
		return KindS64
	case float32:
		return KindF32
	default:
		return KindF64
	}
}

// Caps is the capability flag set of one (tier, element type) pair.
// A flag is true only when the tier's instruction set provides the
// operation without emulation. When a flag is false the corresponding
// operation is emulated with identical results (ReduceSum reassociation
// on floats excepted).
type Caps struct {
	NativeAdd           bool
	NativeSaturatingAdd bool
	NativeMul           bool
	NativeFMA           bool
	NativeHorizontalAdd bool
	Gather              bool
	Scatter             bool
}

// Target is the immutable capability descriptor of one tier: register
// width plus the per-kind capability flags. It is a plain value; code
// that needs tier-specific behavior takes a Target instead of consulting
// global state.
type Target struct {
	tier  Tier
	width int
}

// TargetFor returns the descriptor for the given tier.
func TargetFor(t Tier) Target {
	width := 16
	if t == TierAVX2 {
		width = 32
	}
	return Target{tier: t, width: width}
}

// Targets returns descriptors for every tier, lowest first.
// Useful for tests and capability inspection; operations always run on
// the single descriptor chosen at init.
func Targets() []Target {
	return []Target{
		TargetFor(TierScalar),
		TargetFor(TierPortable),
		TargetFor(TierSSE2),
		TargetFor(TierAVX2),
	}
}

// Tier returns the tier this descriptor belongs to.
func (t Target) Tier() Tier {
	return t.tier
}

// Width returns the register width in bytes.
func (t Target) Width() int {
	return t.width
}

// Name returns the tier's short name.
func (t Target) Name() string {
	return t.tier.String()
}

// Lanes returns the number of elements of the given kind per register:
// register width divided by element width. A compile-time constant per
// build in spirit; constant per Target value here.
func (t Target) Lanes(k Kind) int {
	return t.width / k.Size()
}

// LanesOf returns the lane count of element type T under this target.
func LanesOf[T Lanes](t Target) int {
	var dummy T
	return t.width / int(unsafe.Sizeof(dummy))
}

// Caps returns the capability flags of this tier for the given kind.
// The tables mirror the real instruction sets the tiers model: SSE2 has
// a native multiply only at 16-bit width, AVX2 adds 32-bit multiply,
// FMA, horizontal add and gather but still no 8-bit multiply and no
// scatter, and the portable tier behaves like a generic vector library.
func (t Target) Caps(k Kind) Caps {
	saturable := k == KindU8 || k == KindS8 || k == KindU16 || k == KindS16
	switch t.tier {
	case TierPortable:
		return Caps{
			NativeAdd:           true,
			NativeSaturatingAdd: saturable,
			NativeMul:           k != KindU8 && k != KindS8 && k != KindU64 && k != KindS64,
			NativeFMA:           k.IsFloat(),
		}
	case TierSSE2:
		return Caps{
			NativeAdd:           true,
			NativeSaturatingAdd: saturable,
			NativeMul:           k == KindU16 || k == KindS16 || k.IsFloat(),
		}
	case TierAVX2:
		mul := k == KindU16 || k == KindS16 || k == KindU32 || k == KindS32 || k.IsFloat()
		hadd := k == KindU16 || k == KindS16 || k == KindU32 || k == KindS32 || k.IsFloat()
		return Caps{
			NativeAdd:           true,
			NativeSaturatingAdd: saturable,
			NativeMul:           mul,
			NativeFMA:           k.IsFloat(),
			NativeHorizontalAdd: hadd,
			Gather:              k.Size() >= 4,
		}
	default: // TierScalar: everything emulated.
		return Caps{}
	}
}
