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

// Package transform provides the generic strided elementwise transform
// engine: one loop that drives a vector-level function over an
// arbitrary pair of strided buffer views, handling contiguous and
// strided access, full vector groups and the ragged tail without
// duplicating the loop body.
package transform

import "github.com/numgo/uvec"

// Func is the caller-supplied elementwise function, expressed over
// vector registers so it runs unchanged on every tier. It must return
// a register with at least as many populated lanes as its input.
type Func[T uvec.Lanes] func(uvec.Vec[T]) uvec.Vec[T]

// Engine applies elementwise functions over strided views. It is
// parameterized by an immutable capability descriptor taken at
// construction; it holds no per-call state, so one engine may be used
// concurrently from independent goroutines on disjoint buffers.
type Engine[T uvec.Lanes] struct {
	target uvec.Target
	lanes  int
}

// New returns an engine for the given capability descriptor. The group
// width is the descriptor's lane count for T, clamped to the build's
// active register width: an engine cannot issue wider groups than the
// registers the build provides.
func New[T uvec.Lanes](target uvec.Target) *Engine[T] {
	lanes := uvec.LanesOf[T](target)
	if maxLanes := uvec.MaxLanes[T](); lanes > maxLanes {
		lanes = maxLanes
	}
	return &Engine[T]{target: target, lanes: lanes}
}

// Target returns the capability descriptor the engine was built with.
func (e *Engine[T]) Target() uvec.Target {
	return e.target
}

// Lanes returns the engine's vector group width in elements.
func (e *Engine[T]) Lanes() int {
	return e.lanes
}

// Apply runs f elementwise over count elements using an engine bound to
// the build's active tier: out[i] = f(in[i]) for 0 <= i < count.
func Apply[T uvec.Lanes](in, out View[T], count int, f Func[T]) {
	New[T](uvec.Current()).Transform(in, out, count, f)
}

// Transform computes out[i] = f(in[i]) for 0 <= i < count.
//
// Full groups of lanes elements load through an unaligned vector load
// when the input view is contiguous, otherwise through a gather with a
// precomputed per-lane offset vector (lane*stride), and store through
// the analogous store or scatter. A final remainder 0 < r < lanes is
// handled with partial loads and stores restricted to exactly r
// elements; no full-width memory access is ever issued for a short
// remainder, so all accesses stay inside the two views for any count.
//
// Reads, writes and count are always equal; count <= 0 is a no-op.
func (e *Engine[T]) Transform(in, out View[T], count int, f Func[T]) {
	if count <= 0 {
		return
	}
	lanes := e.lanes
	var srcIdx, dstIdx uvec.Vec[int64]
	if !in.contiguous() {
		srcIdx = uvec.IndicesStride[int64](lanes, 0, int64(in.Stride))
	}
	if !out.contiguous() {
		dstIdx = uvec.IndicesStride[int64](lanes, 0, int64(out.Stride))
	}

	inBase, outBase := in.Off, out.Off
	remaining := count
	for ; remaining >= lanes; remaining -= lanes {
		var v uvec.Vec[T]
		if in.contiguous() {
			v = uvec.Load(in.Data[inBase : inBase+lanes])
		} else {
			v = uvec.GatherOffset(in.Data, inBase, srcIdx)
		}
		r := f(v)
		if out.contiguous() {
			uvec.Store(r, out.Data[outBase:outBase+lanes])
		} else {
			uvec.ScatterOffset(r, out.Data, outBase, dstIdx)
		}
		// Required by tiers that pay a penalty when mixing vector widths.
		uvec.Cleanup()
		inBase += lanes * in.Stride
		outBase += lanes * out.Stride
	}
	if remaining == 0 {
		return
	}

	// Tail: 0 < remaining < lanes. Touch exactly remaining elements.
	var v uvec.Vec[T]
	if in.contiguous() {
		v = uvec.LoadN(in.Data[inBase:], remaining)
	} else {
		v = uvec.GatherOffsetN(in.Data, inBase, srcIdx, remaining)
	}
	r := f(v)
	if out.contiguous() {
		uvec.StoreN(r, out.Data[outBase:], remaining)
	} else {
		uvec.ScatterOffsetN(r, out.Data, outBase, dstIdx, remaining)
	}
	uvec.Cleanup()
}
