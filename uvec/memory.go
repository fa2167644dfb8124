package uvec

// This file provides the memory movement operations: full and partial
// contiguous loads and stores, constant construction, and masked forms.
// Partial operations touch exactly the requested number of elements and
// never issue a full-width access, which is what makes the tail path of
// a transform memory safe.

// Load creates a register by loading up to MaxLanes elements from src.
// This is the full-width unaligned load.
func Load[T Lanes](src []T) Vec[T] {
	n := min(len(src), MaxLanes[T]())
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// LoadN loads exactly n elements from src into the low n lanes and
// zeroes the remaining lanes. Reads only src[:n]; n must satisfy
// 0 <= n <= len(src).
func LoadN[T Lanes](src []T, n int) Vec[T] {
	lanes := MaxLanes[T]()
	if n > lanes {
		n = lanes
	}
	data := make([]T, lanes)
	copy(data[:n], src[:n])
	return Vec[T]{data: data}
}

// Store writes the register's populated lanes to dst.
func Store[T Lanes](v Vec[T], dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// StoreN writes exactly the low n lanes of v to dst[:n]. Writes nothing
// past dst[n-1]; n must satisfy 0 <= n <= len(dst).
func StoreN[T Lanes](v Vec[T], dst []T, n int) {
	if n > len(v.data) {
		n = len(v.data)
	}
	copy(dst[:n], v.data[:n])
}

// Set creates a register with all lanes holding the same value.
func Set[T Lanes](value T) Vec[T] {
	data := make([]T, MaxLanes[T]())
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Zero creates a register with all lanes zero.
func Zero[T Lanes]() Vec[T] {
	return Vec[T]{data: make([]T, MaxLanes[T]())}
}

// Iota returns a register with lanes set to [0, 1, 2, ...].
func Iota[T Lanes]() Vec[T] {
	data := make([]T, MaxLanes[T]())
	for i := range data {
		data[i] = T(i)
	}
	return Vec[T]{data: data}
}

// MaskLoad loads src only at lanes where the mask is true; other lanes
// are zero.
func MaskLoad[T Lanes](mask Mask[T], src []T) Vec[T] {
	n := min(len(src), len(mask.bits))
	result := make([]T, len(mask.bits))
	for i := range n {
		if mask.bits[i] {
			result[i] = src[i]
		}
	}
	return Vec[T]{data: result}
}

// MaskStore stores v to dst only at lanes where the mask is true.
// Lanes with a false mask leave dst untouched.
func MaskStore[T Lanes](mask Mask[T], v Vec[T], dst []T) {
	n := min(len(dst), min(len(v.data), len(mask.bits)))
	for i := range n {
		if mask.bits[i] {
			dst[i] = v.data[i]
		}
	}
}
