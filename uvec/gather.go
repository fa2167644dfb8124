package uvec

// This file provides gather and scatter: indexed, non-contiguous vector
// loads and stores. Tiers without native gather/scatter run the same
// per-lane sequence the hardware microcode would; results are
// identical either way, so there is no capability branch here.
//
// Indices are the caller's contract: every addressed element must lie
// inside the slice. A violating index faults the process via the
// runtime bounds check; there is no error return and no recovery path
// at this layer.

// GatherIndex loads src[indices[i]] into lane i.
func GatherIndex[T Lanes, I ~int32 | ~int64](src []T, indices Vec[I]) Vec[T] {
	n := len(indices.data)
	result := make([]T, n)
	for i := range n {
		result[i] = src[indices.data[i]]
	}
	return Vec[T]{data: result}
}

// GatherIndexN loads src[indices[i]] for the first n lanes only and
// zeroes the rest. Lanes past n read no memory; this is the gather form
// of a partial load.
func GatherIndexN[T Lanes, I ~int32 | ~int64](src []T, indices Vec[I], n int) Vec[T] {
	if n > len(indices.data) {
		n = len(indices.data)
	}
	result := make([]T, len(indices.data))
	for i := range n {
		result[i] = src[indices.data[i]]
	}
	return Vec[T]{data: result}
}

// GatherOffset loads src[base+indices[i]] into lane i. The base shifts
// a fixed relative index pattern along the buffer, which is how strided
// loops reuse one precomputed per-lane offset vector.
func GatherOffset[T Lanes, I ~int32 | ~int64](src []T, base int, indices Vec[I]) Vec[T] {
	n := len(indices.data)
	result := make([]T, n)
	for i := range n {
		result[i] = src[base+int(indices.data[i])]
	}
	return Vec[T]{data: result}
}

// GatherOffsetN is GatherOffset restricted to the first n lanes, with
// the remaining lanes zeroed and untouched in memory.
func GatherOffsetN[T Lanes, I ~int32 | ~int64](src []T, base int, indices Vec[I], n int) Vec[T] {
	if n > len(indices.data) {
		n = len(indices.data)
	}
	result := make([]T, len(indices.data))
	for i := range n {
		result[i] = src[base+int(indices.data[i])]
	}
	return Vec[T]{data: result}
}

// ScatterIndex stores lane i of v to dst[indices[i]].
func ScatterIndex[T Lanes, I ~int32 | ~int64](v Vec[T], dst []T, indices Vec[I]) {
	n := min(len(indices.data), len(v.data))
	for i := range n {
		dst[indices.data[i]] = v.data[i]
	}
}

// ScatterOffset stores lane i of v to dst[base+indices[i]].
func ScatterOffset[T Lanes, I ~int32 | ~int64](v Vec[T], dst []T, base int, indices Vec[I]) {
	n := min(len(indices.data), len(v.data))
	for i := range n {
		dst[base+int(indices.data[i])] = v.data[i]
	}
}

// ScatterOffsetN stores only the first n lanes of v to
// dst[base+indices[i]]. Lanes past n write no memory; this is the
// scatter form of a partial store.
func ScatterOffsetN[T Lanes, I ~int32 | ~int64](v Vec[T], dst []T, base int, indices Vec[I], n int) {
	if n > min(len(indices.data), len(v.data)) {
		n = min(len(indices.data), len(v.data))
	}
	for i := range n {
		dst[base+int(indices.data[i])] = v.data[i]
	}
}

// IndicesIota creates an index vector [0, 1, 2, ...] of numLanes lanes.
func IndicesIota[I ~int32 | ~int64](numLanes int) Vec[I] {
	result := make([]I, numLanes)
	for i := range numLanes {
		result[i] = I(i)
	}
	return Vec[I]{data: result}
}

// IndicesStride creates an index vector [start, start+stride,
// start+2*stride, ...] of numLanes lanes. Negative strides are valid.
func IndicesStride[I ~int32 | ~int64](numLanes int, start, stride I) Vec[I] {
	result := make([]I, numLanes)
	for i := range numLanes {
		result[i] = start + I(i)*stride
	}
	return Vec[I]{data: result}
}
