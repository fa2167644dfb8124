package transform

import "github.com/numgo/uvec"

// View is a strided buffer view: a backing slice, a start offset and an
// element stride. Element i of the view lives at Data[Off+i*Stride].
// Strides may be negative; a stride of 1 marks the view contiguous and
// eligible for full-width loads and stores.
//
// Views are constructed per call and never retained. The caller
// guarantees every addressed element is inside Data; a violating
// (offset, stride, count) combination faults via the runtime bounds
// check rather than returning an error.
type View[T uvec.Lanes] struct {
	Data   []T
	Off    int
	Stride int
}

// Contiguous returns a stride-1 view over data starting at its first
// element.
func Contiguous[T uvec.Lanes](data []T) View[T] {
	return View[T]{Data: data, Stride: 1}
}

// Strided returns a view over data with the given start offset and
// element stride. For a reversed walk over n elements use off = n-1,
// stride = -1.
func Strided[T uvec.Lanes](data []T, off, stride int) View[T] {
	return View[T]{Data: data, Off: off, Stride: stride}
}

// At returns element i of the view. Intended for tests and scalar
// reference code, not the vector path.
func (v View[T]) At(i int) T {
	return v.Data[v.Off+i*v.Stride]
}

// contiguous reports whether the view can use full-width unaligned
// loads and stores instead of gather/scatter.
func (v View[T]) contiguous() bool {
	return v.Stride == 1
}
