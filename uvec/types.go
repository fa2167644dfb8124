// Package uvec provides portable vector arithmetic with build-time tier dispatch.
//
// It exposes a fixed set of
// arithmetic operations (add, subtract, multiply, fused multiply-add,
// horizontal reduction, saturating variants) exposed under one generic
// contract, backed by whichever instruction tier the build selects.
// Operations a tier cannot do natively are emulated with the exact
// algorithms the native paths would use, so results are identical across
// tiers (floating-point reductions excepted, see ReduceSum).
//
// Basic usage:
//
//	a := uvec.Load(data1)
//	b := uvec.Load(data2)
//	sum := uvec.Add(a, b)
//	uvec.Store(sum, out)
package uvec

// Floats is a constraint for floating-point element types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer element types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer element types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer element types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can occupy vector lanes.
type Lanes interface {
	Floats | Integers
}

// Vec is a transient vector register value. It holds at most
// MaxLanes[T]() elements of one element type and carries no identity
// beyond normal value semantics: registers are created by Load, Set,
// Zero or Iota, consumed by operations, and never outlive a call.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of populated lanes in this register.
// Partial loads zero-fill, so a register produced by LoadN reports the
// full register lane count.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the slice representation of the register.
// Intended for tests and diagnostics, not hot paths.
func (v Vec[T]) Data() []T {
	return v.data
}

// Mask is a lanewise boolean vector produced by comparisons or FirstN,
// consumed by IfThenElse, MaskLoad and MaskStore.
type Mask[T Lanes] struct {
	bits []bool
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
}

// AllTrue reports whether every lane is active.
func (m Mask[T]) AllTrue() bool {
	for _, bit := range m.bits {
		if !bit {
			return false
		}
	}
	return true
}

// AnyTrue reports whether at least one lane is active.
func (m Mask[T]) AnyTrue() bool {
	for _, bit := range m.bits {
		if bit {
			return true
		}
	}
	return false
}

// CountTrue returns the number of active lanes.
func (m Mask[T]) CountTrue() int {
	count := 0
	for _, bit := range m.bits {
		if bit {
			count++
		}
	}
	return count
}

// FirstN returns a mask with the first count lanes active, clamped to
// [0, MaxLanes]. This is the tail mask for a remainder of count elements.
func FirstN[T Lanes](count int) Mask[T] {
	maxLanes := MaxLanes[T]()
	if count < 0 {
		count = 0
	}
	if count > maxLanes {
		count = maxLanes
	}
	bits := make([]bool, maxLanes)
	for i := 0; i < count; i++ {
		bits[i] = true
	}
	return Mask[T]{bits: bits}
}
