package transform_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numgo/uvec"
	"github.com/numgo/uvec/transform"
)

func addConst[T uvec.Lanes](c T) transform.Func[T] {
	return func(v uvec.Vec[T]) uvec.Vec[T] {
		return uvec.Add(v, uvec.Set(c))
	}
}

// The add-10 walkthrough: count 5 with 4 lanes takes one full group
// plus a tail of one.
func TestAddTenScenario(t *testing.T) {
	eng := transform.New[float32](uvec.TargetFor(uvec.TierSSE2))
	require.Equal(t, 4, eng.Lanes())

	in := []float32{1, 2, 3, 4, 5}
	out := make([]float32, 5)
	eng.Transform(transform.Contiguous(in), transform.Contiguous(out), 5, addConst[float32](10))

	assert.Equal(t, []float32{11, 12, 13, 14, 15}, out)
}

// For every tier and every count up to 10 vector groups, the transform
// over contiguous buffers must match the scalar reference exactly.
func TestElementwiseEquivalence(t *testing.T) {
	for _, target := range uvec.Targets() {
		t.Run(target.Name(), func(t *testing.T) {
			testEquivalence[float32](t, target, 10)
			testEquivalence[float64](t, target, 1000)
			testEquivalence[int32](t, target, -3)
			testEquivalence[uint8](t, target, 200)
			testEquivalence[int16](t, target, 7)
			testEquivalence[uint64](t, target, 1)
		})
	}
}

func testEquivalence[T uvec.Lanes](t *testing.T, target uvec.Target, c T) {
	t.Helper()
	eng := transform.New[T](target)
	lanes := eng.Lanes()
	for count := 0; count <= 10*lanes; count++ {
		in := make([]T, count)
		out := make([]T, count)
		for i := range in {
			in[i] = T(i % 97)
		}
		eng.Transform(transform.Contiguous(in), transform.Contiguous(out), count, addConst(c))
		for i := range in {
			if want := in[i] + c; out[i] != want {
				t.Fatalf("%s %T count=%d: out[%d] = %v, want %v", target.Name(), c, count, i, out[i], want)
			}
		}
	}
}

// Tail sweep: count = k*lanes + r for k in {0,1,3} and every remainder.
func TestTailBoundary(t *testing.T) {
	eng := transform.New[int32](uvec.Current())
	lanes := eng.Lanes()
	for _, k := range []int{0, 1, 3} {
		for r := 0; r < lanes; r++ {
			count := k*lanes + r
			in := make([]int32, count)
			out := make([]int32, count)
			for i := range in {
				in[i] = int32(3*i - 50)
			}
			eng.Transform(transform.Contiguous(in), transform.Contiguous(out), count, addConst[int32](1000))
			for i := range in {
				require.Equal(t, in[i]+1000, out[i], "k=%d r=%d index %d", k, r, i)
			}
		}
	}
}

const sentinel = int32(-0x5A5A5A5A)

// guarded builds a buffer with sentinel guard regions surrounding the
// exact span a (count, stride) view may touch, and returns the view.
func guarded(count, stride int) ([]int32, transform.View[int32]) {
	const guard = 8
	span := 1
	if count > 0 {
		span = (count-1)*abs(stride) + 1
	}
	buf := make([]int32, guard+span+guard)
	for i := range buf {
		buf[i] = sentinel
	}
	off := guard
	if stride < 0 {
		off = guard + span - 1
	}
	return buf, transform.Strided(buf, off, stride)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// No byte outside the addressed span may be read or written, for any
// stride sign and any count, including ragged tails.
func TestStridedSafety(t *testing.T) {
	eng := transform.New[int32](uvec.Current())
	lanes := eng.Lanes()
	counts := []int{0, 1, 2, lanes - 1, lanes, lanes + 1, 3*lanes + 1, 4 * lanes}

	for _, inStride := range []int{1, 2, 5, -1} {
		for _, outStride := range []int{1, 2, 5, -1} {
			for _, count := range counts {
				name := fmt.Sprintf("in%+d_out%+d_n%d", inStride, outStride, count)
				t.Run(name, func(t *testing.T) {
					inBuf, inView := guarded(count, inStride)
					outBuf, outView := guarded(count, outStride)
					inSnapshot := make([]int32, len(inBuf))
					copy(inSnapshot, inBuf)
					for i := 0; i < count; i++ {
						inBuf[inView.Off+i*inView.Stride] = int32(i * 11)
						inSnapshot[inView.Off+i*inView.Stride] = int32(i * 11)
					}

					eng.Transform(inView, outView, count, addConst[int32](5))

					// Input untouched, including its guards.
					assert.Equal(t, inSnapshot, inBuf, "input buffer modified")

					// Output exact inside the span, sentinel outside it.
					written := make(map[int]bool, count)
					for i := 0; i < count; i++ {
						idx := outView.Off + i*outView.Stride
						written[idx] = true
						assert.Equal(t, int32(i*11+5), outBuf[idx], "output element %d", i)
					}
					for idx, v := range outBuf {
						if !written[idx] {
							assert.Equal(t, sentinel, v, "guard at %d overwritten", idx)
						}
					}
				})
			}
		}
	}
}

// A reversed view (stride -1) is a plain permutation of the input.
func TestReversedOutput(t *testing.T) {
	in := []int32{1, 2, 3, 4, 5, 6, 7}
	out := make([]int32, 7)
	transform.Apply(
		transform.Contiguous(in),
		transform.Strided(out, len(out)-1, -1),
		len(in),
		addConst[int32](0),
	)
	assert.Equal(t, []int32{7, 6, 5, 4, 3, 2, 1}, out)
}

func TestZeroAndNegativeCount(t *testing.T) {
	in := []float64{1, 2, 3}
	out := []float64{9, 9, 9}
	eng := transform.New[float64](uvec.Current())

	eng.Transform(transform.Contiguous(in), transform.Contiguous(out), 0, addConst[float64](1))
	assert.Equal(t, []float64{9, 9, 9}, out, "count=0 wrote memory")

	eng.Transform(transform.Contiguous(in), transform.Contiguous(out), -4, addConst[float64](1))
	assert.Equal(t, []float64{9, 9, 9}, out, "negative count wrote memory")
}

// The function parameter is expressed over registers, so a non-trivial
// kernel (here a*x+b via MulAdd) vectorizes without engine changes.
func TestRegisterLevelFunction(t *testing.T) {
	in := make([]float64, 23)
	out := make([]float64, 23)
	for i := range in {
		in[i] = float64(i)
	}
	transform.Apply(transform.Contiguous(in), transform.Contiguous(out), len(in),
		func(v uvec.Vec[float64]) uvec.Vec[float64] {
			return uvec.MulAdd(v, uvec.Set(2.0), uvec.Set(1.0))
		})
	for i := range in {
		require.Equal(t, 2*in[i]+1, out[i], "index %d", i)
	}
}

func TestEngineTargetClamped(t *testing.T) {
	eng := transform.New[float32](uvec.TargetFor(uvec.TierAVX2))
	assert.Equal(t, uvec.TierAVX2, eng.Target().Tier())
	assert.LessOrEqual(t, eng.Lanes(), uvec.MaxLanes[float32]())
}

func BenchmarkTransformContiguous(b *testing.B) {
	in := make([]float32, 4096)
	out := make([]float32, 4096)
	for i := range in {
		in[i] = float32(i)
	}
	f := addConst[float32](1)
	b.SetBytes(int64(len(in) * 4))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		transform.Apply(transform.Contiguous(in), transform.Contiguous(out), len(in), f)
	}
}

func BenchmarkTransformStrided(b *testing.B) {
	in := make([]float32, 4096*2)
	out := make([]float32, 4096*2)
	for i := range in {
		in[i] = float32(i)
	}
	f := addConst[float32](1)
	b.SetBytes(int64(4096 * 4))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		transform.Apply(transform.Strided(in, 0, 2), transform.Strided(out, 0, 2), 4096, f)
	}
}
