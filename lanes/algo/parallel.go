// Copyright 2025 go-lanes Authors
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

package algo

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/gosimd/go-lanes/lanes"
)

// ParallelFor splits [0, n) into contiguous ranges and runs fn on each
// range concurrently. Range boundaries are rounded to the vector lane
// count for T so no vector straddles two workers and each worker's tail
// handling stays local. workers <= 0 uses GOMAXPROCS.
//
// fn must be safe to call concurrently on disjoint ranges. The first
// error cancels the context passed to the remaining calls and is
// returned.
func ParallelFor[T lanes.Lanes](ctx context.Context, n, workers int, fn func(ctx context.Context, lo, hi int) error) error {
	if n <= 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	maxLanes := lanes.MaxLanes[T]()
	chunk := (n + workers - 1) / workers
	chunk = lanes.AlignedSize[T](chunk)
	if chunk < maxLanes {
		chunk = maxLanes
	}

	g, gctx := errgroup.WithContext(ctx)
	for lo := 0; lo < n; lo += chunk {
		lo := lo
		hi := min(lo+chunk, n)
		g.Go(func() error {
			return fn(gctx, lo, hi)
		})
	}
	return g.Wait()
}

// ParallelAddTo is AddTo across multiple goroutines, for slices large
// enough that memory bandwidth per core is the bottleneck. Same length
// contract as AddTo.
func ParallelAddTo[T lanes.Lanes](ctx context.Context, dst, a, b []T, workers int) error {
	checkBinary(len(dst), len(a), len(b))
	return ParallelFor[T](ctx, len(dst), workers, func(_ context.Context, lo, hi int) error {
		AddTo(dst[lo:hi], a[lo:hi], b[lo:hi])
		return nil
	})
}

// ParallelTransform is Transform across multiple goroutines. vecFn and
// scalarFn must be safe for concurrent use.
func ParallelTransform[T lanes.Lanes](ctx context.Context, in, out []T, workers int, vecFn func(lanes.Vec[T]) lanes.Vec[T], scalarFn func(T) T) error {
	checkUnary(len(out), len(in))
	return ParallelFor[T](ctx, len(in), workers, func(_ context.Context, lo, hi int) error {
		Transform(in[lo:hi], out[lo:hi], vecFn, scalarFn)
		return nil
	})
}

// ParallelSum sums a across multiple goroutines and combines the partial
// sums. Float results can differ in the last bits from the sequential
// Sum; integer sums are identical because wraparound addition is
// associative.
func ParallelSum[T lanes.Lanes](ctx context.Context, a []T, workers int) (T, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	partials := make([]T, workers)
	slot := 0
	n := len(a)
	chunk := (n + workers - 1) / workers
	chunk = lanes.AlignedSize[T](chunk)
	if chunk < lanes.MaxLanes[T]() {
		chunk = lanes.MaxLanes[T]()
	}

	g, _ := errgroup.WithContext(ctx)
	for lo := 0; lo < n; lo += chunk {
		lo := lo
		hi := min(lo+chunk, n)
		out := &partials[slot]
		slot++
		g.Go(func() error {
			*out = Sum(a[lo:hi])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return *new(T), err
	}

	var total T
	for _, p := range partials[:slot] {
		total += p
	}
	return total, nil
}
