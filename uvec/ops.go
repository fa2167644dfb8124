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

import "math"

// This file defines the lanewise arithmetic operations. Each operation
// is pure: register operands in, register result out, no side effects
// and no error cases. Where the active tier lacks a native instruction
// the operation routes through the emulation sequences in emulate.go,
// which produce results identical to the scalar definition.

// Add performs lanewise addition with the element type's standard
// wraparound/IEEE behavior.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i] + b.data[i]
	}
	return Vec[T]{data: result}
}

// Sub performs lanewise subtraction.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i] - b.data[i]
	}
	return Vec[T]{data: result}
}

// Mul performs lanewise wraparound multiplication.
//
// Tiers without a native multiply at the element width take the
// emulated path: 8-bit lanes use the even/odd 16-bit-lane sequence and
// 32-bit lanes use the even/odd 64-bit partial products, both exact for
// signed and unsigned interpretations.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	if !active.Caps(KindOf[T]()).NativeMul {
		switch any(a.data).(type) {
		case []uint8:
			return mulU8(a, b, n)
		case []int8:
			return mulS8(a, b, n)
		case []uint32:
			return mulU32(a, b, n)
		case []int32:
			return mulS32(a, b, n)
		}
		// 64-bit lanes: no dedicated sequence, lanewise is the emulation.
	}
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i] * b.data[i]
	}
	return Vec[T]{data: result}
}

// Div performs lanewise division. Float types only; NaN and infinity
// follow IEEE semantics of the element type.
func Div[T Floats](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i] / b.data[i]
	}
	return Vec[T]{data: result}
}

// MulAdd computes a*b + c per lane. On tiers with native FMA the float
// product is not rounded before the add (math.FMA); without it the
// result is the two-rounding multiply-then-add, matching the non-FMA
// hardware fallback. Integer lanes always use plain multiply-add.
func MulAdd[T Lanes](a, b, c Vec[T]) Vec[T] {
	n := min(len(c.data), min(len(b.data), len(a.data)))
	result := make([]T, n)
	if active.Caps(KindOf[T]()).NativeFMA {
		switch av := any(a.data).(type) {
		case []float32:
			bv := any(b.data).([]float32)
			cv := any(c.data).([]float32)
			rv := any(result).([]float32)
			for i := range n {
				rv[i] = float32(math.FMA(float64(av[i]), float64(bv[i]), float64(cv[i])))
			}
			return Vec[T]{data: result}
		case []float64:
			bv := any(b.data).([]float64)
			cv := any(c.data).([]float64)
			rv := any(result).([]float64)
			for i := range n {
				rv[i] = math.FMA(av[i], bv[i], cv[i])
			}
			return Vec[T]{data: result}
		}
	}
	for i := range n {
		result[i] = a.data[i]*b.data[i] + c.data[i]
	}
	return Vec[T]{data: result}
}

// Neg negates all lanes. Unsigned lanes wrap.
func Neg[T Lanes](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = -x
	}
	return Vec[T]{data: result}
}

// Min returns the lanewise minimum.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = min(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

// Max returns the lanewise maximum.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = max(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

// IfThenElse selects a where the mask is true, b otherwise. This is the
// lanewise blend all emulated merge steps build on.
func IfThenElse[T Lanes](mask Mask[T], a, b Vec[T]) Vec[T] {
	n := min(len(b.data), min(len(a.data), len(mask.bits)))
	result := make([]T, n)
	for i := range n {
		if mask.bits[i] {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}

// Equal performs lanewise equality comparison.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(len(b.data), len(a.data))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.data[i] == b.data[i]
	}
	return Mask[T]{bits: bits}
}

// LessThan performs lanewise less-than comparison.
func LessThan[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(len(b.data), len(a.data))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.data[i] < b.data[i]
	}
	return Mask[T]{bits: bits}
}

// GreaterThan performs lanewise greater-than comparison.
func GreaterThan[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(len(b.data), len(a.data))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.data[i] > b.data[i]
	}
	return Mask[T]{bits: bits}
}
