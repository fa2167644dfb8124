package uvec

import (
	"math"
	"math/rand"
	"testing"
)

func TestReduceSumInt(t *testing.T) {
	v := Load([]int32{1, 2, 3, 4})
	if got := ReduceSum(v); got != 10 {
		t.Errorf("ReduceSum: got %d, want 10", got)
	}
}

// Integer reductions are exact, so every tier must agree with the
// sequential sum regardless of reduction order.
func TestReduceSumIntAllTiers(t *testing.T) {
	for _, tier := range []Tier{TierScalar, TierPortable, TierSSE2, TierAVX2} {
		withTier(t, tier, func() {
			data := make([]int64, MaxLanes[int64]())
			var want int64
			for i := range data {
				data[i] = int64(i*i - 3)
				want += data[i]
			}
			if got := ReduceSum(Load(data)); got != want {
				t.Errorf("%v: ReduceSum: got %d, want %d", tier, got, want)
			}
		})
	}
}

// Float reduction order differs between the pairwise emulation and the
// native adjacent-pair path. The results may diverge, but only by a
// reassociation error on the order of a few ULPs.
func TestReduceSumFloatTolerance(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, n := range []int{2, 4, 8, 16} {
		data := make([]float32, n)
		var exact float64
		for i := range data {
			data[i] = rng.Float32()*2 - 1
			exact += float64(data[i])
		}

		halves := sumHalves(data)
		adjacent := sumAdjacentPairs(data)

		// Bound: O(log n) relative error against the exact sum,
		// never a catastrophic divergence.
		scale := float32(0)
		for _, x := range data {
			scale += float32(math.Abs(float64(x)))
		}
		tol := float32(math.Log2(float64(n))+1) * scale * 1e-6
		if diff := float32(math.Abs(float64(halves - adjacent))); diff > tol {
			t.Errorf("n=%d: pairwise %g vs adjacent %g differ by %g (tol %g)", n, halves, adjacent, diff, tol)
		}
		if diff := math.Abs(float64(halves) - exact); diff > float64(tol) {
			t.Errorf("n=%d: pairwise %g vs exact %g differ by %g", n, halves, exact, diff)
		}
	}
}

func TestSumOrdersAgreeOnExactInputs(t *testing.T) {
	// Sums of small integers are exact in float32, so both orders must
	// match bit for bit.
	data := []float32{1, 2, 3, 4, 5, 6, 7, 8}
	if a, b := sumHalves(data), sumAdjacentPairs(data); a != b || a != 36 {
		t.Errorf("sum orders disagree on exact input: halves=%g adjacent=%g", a, b)
	}
}

func TestSumOddLaneCounts(t *testing.T) {
	for n := 1; n <= 9; n++ {
		data := make([]float64, n)
		var want float64
		for i := range data {
			data[i] = float64(i + 1)
			want += data[i]
		}
		if got := sumHalves(data); got != want {
			t.Errorf("sumHalves n=%d: got %g, want %g", n, got, want)
		}
		if got := sumAdjacentPairs(data); got != want {
			t.Errorf("sumAdjacentPairs n=%d: got %g, want %g", n, got, want)
		}
	}
}

func TestReduceMinMax(t *testing.T) {
	v := Load([]int16{4, -7, 12, 0})
	if got := ReduceMin(v); got != -7 {
		t.Errorf("ReduceMin: got %d, want -7", got)
	}
	if got := ReduceMax(v); got != 12 {
		t.Errorf("ReduceMax: got %d, want 12", got)
	}
}
