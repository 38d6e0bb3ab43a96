// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package parallel runs fixed teams of workers over disjoint slices of
// an index space: plain fork-join, no work stealing, no cancellation.
//
// The package is the runtime side of ispace.Space.Partition: Run hands
// each worker goroutine its zero-based identity and the team size, the
// two values partitioning needs, and ForEachIn composes the whole
// partition -> traverse -> body sweep.
package parallel

import (
	"runtime"
	"sync"

	"github.com/gomlx/ispace"
	"k8s.io/klog/v2"
)

// Run executes body on a team of workers goroutines and blocks until
// every one of them returns. Each invocation receives its zero-based
// worker identity and the team size.
//
// A workers value <= 0 selects runtime.NumCPU(). There is no error
// channel and no cancellation: bodies are expected to be pure sweeps
// that run to completion.
func Run(workers int, body func(worker, workers int)) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	klog.V(2).Infof("parallel.Run: forking a team of %d workers", workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for worker := 0; worker < workers; worker++ {
		go func() {
			defer wg.Done()
			body(worker, workers)
		}()
	}
	wg.Wait()
}

// ForEachIn sweeps space with a team of workers: each worker owns the
// slice of the given axis selected by its identity, traverses the
// slice row-major and calls body for every index it owns.
//
// The slices are disjoint and cover space exactly once, so bodies that
// write only at their own index never race with other workers. A
// workers value <= 0 selects runtime.NumCPU().
func ForEachIn[I ispace.Index](workers, axis int, space ispace.Space[I], body func(I)) {
	Run(workers, func(worker, workers int) {
		slice := space.Partition(axis, worker, workers)
		for idx := range ispace.RowMajor(slice).All() {
			body(idx)
		}
	})
}
