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

// Saturating arithmetic clamps to the representable range instead of
// wrapping on overflow. Hardware provides it for 8- and 16-bit lanes;
// the wider emulations here follow the same clamp semantics so the
// contract is uniform across element types.

// SaturatedAdd performs lanewise addition clamped to the element range.
// For example uint8: 250 + 10 = 255, not 4.
func SaturatedAdd[T Integers](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = saturatedAdd(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

// SaturatedSub performs lanewise subtraction clamped to the element
// range. For example uint8: 10 - 20 = 0, not 246.
func SaturatedSub[T Integers](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = saturatedSub(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

func saturatedAdd[T Integers](a, b T) T {
	switch av := any(a).(type) {
	case int8:
		return T(clampSigned(int64(av)+int64(any(b).(int8)), math.MinInt8, math.MaxInt8))
	case int16:
		return T(clampSigned(int64(av)+int64(any(b).(int16)), math.MinInt16, math.MaxInt16))
	case int32:
		return T(clampSigned(int64(av)+int64(any(b).(int32)), math.MinInt32, math.MaxInt32))
	case int64:
		bv := any(b).(int64)
		if bv > 0 && av > math.MaxInt64-bv {
			hi := int64(math.MaxInt64)
			return T(hi)
		}
		if bv < 0 && av < math.MinInt64-bv {
			lo := int64(math.MinInt64)
			return T(lo)
		}
		return T(av + bv)
	case uint8:
		return T(clampUnsigned(uint64(av)+uint64(any(b).(uint8)), math.MaxUint8))
	case uint16:
		return T(clampUnsigned(uint64(av)+uint64(any(b).(uint16)), math.MaxUint16))
	case uint32:
		return T(clampUnsigned(uint64(av)+uint64(any(b).(uint32)), math.MaxUint32))
	case uint64:
		bv := any(b).(uint64)
		if av > math.MaxUint64-bv {
			hi := uint64(math.MaxUint64)
			return T(hi)
		}
		return T(av + bv)
	default:
		return a + b
	}
}

func saturatedSub[T Integers](a, b T) T {
	switch av := any(a).(type) {
	case int8:
		return T(clampSigned(int64(av)-int64(any(b).(int8)), math.MinInt8, math.MaxInt8))
	case int16:
		return T(clampSigned(int64(av)-int64(any(b).(int16)), math.MinInt16, math.MaxInt16))
	case int32:
		return T(clampSigned(int64(av)-int64(any(b).(int32)), math.MinInt32, math.MaxInt32))
	case int64:
		bv := any(b).(int64)
		if bv < 0 && av > math.MaxInt64+bv {
			hi := int64(math.MaxInt64)
			return T(hi)
		}
		if bv > 0 && av < math.MinInt64+bv {
			lo := int64(math.MinInt64)
			return T(lo)
		}
		return T(av - bv)
	case uint8:
		if bv := any(b).(uint8); bv <= av {
			return T(av - bv)
		}
		return 0
	case uint16:
		if bv := any(b).(uint16); bv <= av {
			return T(av - bv)
		}
		return 0
	case uint32:
		if bv := any(b).(uint32); bv <= av {
			return T(av - bv)
		}
		return 0
	case uint64:
		if bv := any(b).(uint64); bv <= av {
			return T(av - bv)
		}
		return 0
	default:
		return a - b
	}
}

func clampSigned(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampUnsigned(v, hi uint64) uint64 {
	if v > hi {
		return hi
	}
	return v
}
