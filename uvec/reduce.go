// Copyright 2025 uvec Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package uvec

// ReduceSum sums all populated lanes into one scalar.
//
// Tiers with a native horizontal add use its adjacent-pair order; tiers
// without one emulate by repeatedly adding the high half of the
// register to the low half until one lane remains. The two orders are
// equivalent for integers; for floats they may differ by a few ULPs
// because floating-point addition is not associative. Callers must not
// depend on a particular reduction order across tiers.
func ReduceSum[T Lanes](v Vec[T]) T {
	if active.Caps(KindOf[T]()).NativeHorizontalAdd {
		return sumAdjacentPairs(v.data)
	}
	return sumHalves(v.data)
}

// ReduceMin returns the minimum across all populated lanes.
func ReduceMin[T Lanes](v Vec[T]) T {
	if len(v.data) == 0 {
		var zero T
		return zero
	}
	m := v.data[0]
	for _, x := range v.data[1:] {
		m = min(m, x)
	}
	return m
}

// ReduceMax returns the maximum across all populated lanes.
func ReduceMax[T Lanes](v Vec[T]) T {
	if len(v.data) == 0 {
		var zero T
		return zero
	}
	m := v.data[0]
	for _, x := range v.data[1:] {
		m = max(m, x)
	}
	return m
}

// sumHalves is the shuffle-and-add emulation: pad to a power of two,
// then halve the active lane count by adding the high half onto the low
// half until one lane remains. Zero padding is exact.
func sumHalves[T Lanes](lanes []T) T {
	if len(lanes) == 0 {
		var zero T
		return zero
	}
	n := 1
	for n < len(lanes) {
		n <<= 1
	}
	scratch := make([]T, n)
	copy(scratch, lanes)
	for n > 1 {
		half := n / 2
		for i := 0; i < half; i++ {
			scratch[i] += scratch[i+half]
		}
		n = half
	}
	return scratch[0]
}

// sumAdjacentPairs is the native horizontal-add order: each step sums
// adjacent lane pairs, halving the count, with an odd trailing lane
// carried through unchanged.
func sumAdjacentPairs[T Lanes](lanes []T) T {
	if len(lanes) == 0 {
		var zero T
		return zero
	}
	scratch := make([]T, len(lanes))
	copy(scratch, lanes)
	n := len(scratch)
	for n > 1 {
		half := (n + 1) / 2
		for i := 0; i < n/2; i++ {
			scratch[i] = scratch[2*i] + scratch[2*i+1]
		}
		if n%2 == 1 {
			scratch[n/2] = scratch[n-1]
		}
		n = half
	}
	return scratch[0]
}
