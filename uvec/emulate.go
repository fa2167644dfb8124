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

// This file holds the multiply emulation sequences used when the active
// tier has no native multiply at the element width. Both reproduce the
// wraparound scalar definition exactly for signed and unsigned
// interpretations, because only the low-order product bits survive at
// each lane position and two's-complement multiplication is
// representation-agnostic in those bits.

// mul8Lanes multiplies 8-bit lanes through 16-bit arithmetic:
// adjacent byte pairs are treated as one 16-bit lane. The plain 16-bit
// product already carries the correct low byte at even positions; the
// odd positions come from multiplying both operands arithmetically
// shifted right by 8 (sign-extending), shifting the product left by 8,
// and blending the two through the fixed alternating 0xFF00 byte mask.
func mul8Lanes(dst, a, b []uint8) {
	i := 0
	for ; i+1 < len(a); i += 2 {
		a16 := uint16(a[i]) | uint16(a[i+1])<<8
		b16 := uint16(b[i]) | uint16(b[i+1])<<8
		even := a16 * b16
		odd := (uint16(int16(a16)>>8) * uint16(int16(b16)>>8)) << 8
		merged := odd&0xFF00 | even&0x00FF
		dst[i] = uint8(merged)
		dst[i+1] = uint8(merged >> 8)
	}
	// Unpaired trailing lane: a one-byte group is the scalar definition.
	if i < len(a) {
		dst[i] = a[i] * b[i]
	}
}

// mul32Lanes multiplies 32-bit lanes through 64-bit partial products:
// adjacent 32-bit lane pairs are treated as one 64-bit group. The even
// product multiplies the low halves, the odd product multiplies both
// groups shifted right by 32, and the low 32 bits of each partial
// product are interleaved back into lane order.
func mul32Lanes(dst, a, b []uint32) {
	i := 0
	for ; i+1 < len(a); i += 2 {
		ga := uint64(a[i]) | uint64(a[i+1])<<32
		gb := uint64(b[i]) | uint64(b[i+1])<<32
		even := (ga & 0xFFFFFFFF) * (gb & 0xFFFFFFFF)
		odd := (ga >> 32) * (gb >> 32)
		dst[i] = uint32(even)
		dst[i+1] = uint32(odd)
	}
	if i < len(a) {
		dst[i] = a[i] * b[i]
	}
}

func mulU8[T Lanes](a, b Vec[T], n int) Vec[T] {
	av := any(a.data).([]uint8)
	bv := any(b.data).([]uint8)
	result := make([]uint8, n)
	mul8Lanes(result, av[:n], bv[:n])
	return Vec[T]{data: any(result).([]T)}
}

// mulS8 reuses the unsigned byte sequence on the raw bit patterns.
func mulS8[T Lanes](a, b Vec[T], n int) Vec[T] {
	av := any(a.data).([]int8)
	bv := any(b.data).([]int8)
	ab := make([]uint8, n)
	bb := make([]uint8, n)
	for i := range n {
		ab[i] = uint8(av[i])
		bb[i] = uint8(bv[i])
	}
	rb := make([]uint8, n)
	mul8Lanes(rb, ab, bb)
	result := make([]int8, n)
	for i := range n {
		result[i] = int8(rb[i])
	}
	return Vec[T]{data: any(result).([]T)}
}

func mulU32[T Lanes](a, b Vec[T], n int) Vec[T] {
	av := any(a.data).([]uint32)
	bv := any(b.data).([]uint32)
	result := make([]uint32, n)
	mul32Lanes(result, av[:n], bv[:n])
	return Vec[T]{data: any(result).([]T)}
}

// mulS32 reuses the unsigned word sequence on the raw bit patterns.
func mulS32[T Lanes](a, b Vec[T], n int) Vec[T] {
	av := any(a.data).([]int32)
	bv := any(b.data).([]int32)
	ab := make([]uint32, n)
	bb := make([]uint32, n)
	for i := range n {
		ab[i] = uint32(av[i])
		bb[i] = uint32(bv[i])
	}
	rb := make([]uint32, n)
	mul32Lanes(rb, ab, bb)
	result := make([]int32, n)
	for i := range n {
		result[i] = int32(rb[i])
	}
	return Vec[T]{data: any(result).([]T)}
}
