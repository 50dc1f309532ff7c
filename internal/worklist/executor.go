// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2023 HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package worklist implements the bounded-thread-pool task executor that
// the IFDS solver uses to run path-edge processing tasks concurrently.
//
// Its quiescence detection follows a completion-tracking pattern for "wait
// until a changing set of pending work has drained" problems: rather than
// tracking named items, the Executor just tracks a pending+active count and
// wakes every registered waiter once that count returns to zero, which
// correctly accounts for a task that submits further tasks before it
// finishes.
package worklist

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/dataflow-tools/ifds-solver/internal/errorhandling"
	"github.com/dataflow-tools/ifds-solver/internal/logging"
)

// DefaultParallelism returns max(1, cores-1), the pool size the spec
// requires when the caller hasn't chosen an explicit size.
func DefaultParallelism() int {
	if n := runtime.GOMAXPROCS(0) - 1; n > 1 {
		return n
	}
	return 1
}

// Executor is a bounded-parallelism task pool with completion detection and
// cooperative interruption.
//
// All exported methods are safe for concurrent use.
type Executor struct {
	sem *semaphore.Weighted

	runCtx    context.Context
	runCancel context.CancelFunc

	mu          sync.Mutex
	pending     int
	doneWaiters []chan struct{}
	killed      bool
	terminating bool
	terminated  bool
	firstErr    error

	log interface {
		Trace(msg string, args ...any)
	}
}

// NewExecutor creates an Executor bounded to run at most parallelism tasks
// at once. A non-positive parallelism is treated as 1.
func NewExecutor(parallelism int) *Executor {
	if parallelism < 1 {
		parallelism = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Executor{
		sem:       semaphore.NewWeighted(int64(parallelism)),
		runCtx:    ctx,
		runCancel: cancel,
		log:       logging.HCLogger().Named("worklist"),
	}
}

// Submit schedules task to run, possibly immediately, possibly once a pool
// slot frees up. If the executor has been killed or is shutting down, the
// task is silently dropped, matching the spec's requirement that
// scheduleEdgeProcessing become a no-op after termination is requested.
//
// task's returned error, if any, is captured the first time any submitted
// task reports one; later errors (from this or any other task) are
// discarded. A panic inside task is recovered and treated the same as a
// returned error.
func (e *Executor) Submit(task func() error) {
	e.mu.Lock()
	if e.killed || e.terminating {
		e.mu.Unlock()
		return
	}
	e.pending++
	e.mu.Unlock()

	go func() {
		defer e.finishOne()
		if err := e.sem.Acquire(e.runCtx, 1); err != nil {
			// Interrupted before we even got a slot; drop the task.
			return
		}
		defer e.sem.Release(1)

		e.mu.Lock()
		killed := e.killed
		e.mu.Unlock()
		if killed {
			return
		}

		if err := errorhandling.Safe(task); err != nil {
			e.recordFailure(err)
		}
	}()
}

func (e *Executor) recordFailure(err error) {
	e.mu.Lock()
	if e.firstErr == nil {
		e.firstErr = err
	}
	e.mu.Unlock()
	e.log.Trace("worklist task failed", "error", err)
}

func (e *Executor) finishOne() {
	e.mu.Lock()
	e.pending--
	if e.pending == 0 {
		for _, ch := range e.doneWaiters {
			close(ch)
		}
		e.doneWaiters = nil
	}
	e.mu.Unlock()
}

// AwaitCompletion blocks until there are no queued or active tasks and no
// new ones have been submitted in the meantime, or until ctx is done.
//
// Because Submit always increments the pending count before the goroutine
// it starts can do anything else, a task that submits more work right
// before finishing cannot cause AwaitCompletion to wake early: the pending
// count simply never reaches zero until that new work also completes.
func (e *Executor) AwaitCompletion(ctx context.Context) error {
	for {
		e.mu.Lock()
		if e.pending == 0 {
			e.mu.Unlock()
			return nil
		}
		ch := make(chan struct{})
		e.doneWaiters = append(e.doneWaiters, ch)
		e.mu.Unlock()

		select {
		case <-ch:
			// Loop again: pending might have already become non-zero if
			// another goroutine raced a new Submit in between our checks,
			// but reading pending==0 under the lock above and then waiting
			// for this specific close means it's safe to just recheck.
			continue
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Interrupt sets the kill flag and cancels any tasks currently blocked
// waiting for a pool slot. Already-running tasks are not forcibly stopped;
// they finish their current edge and then the pool naturally drains.
func (e *Executor) Interrupt() {
	e.mu.Lock()
	e.killed = true
	e.mu.Unlock()
	e.runCancel()
}

// Shutdown waits for the pool to quiesce and then marks the executor
// terminated, after which Submit permanently drops new tasks.
func (e *Executor) Shutdown(ctx context.Context) error {
	e.mu.Lock()
	e.terminating = true
	e.mu.Unlock()
	err := e.AwaitCompletion(ctx)
	e.mu.Lock()
	e.terminated = true
	e.mu.Unlock()
	return err
}

// IsTerminated reports whether Shutdown has completed.
func (e *Executor) IsTerminated() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.terminated
}

// IsKilled reports whether Interrupt was ever called.
func (e *Executor) IsKilled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.killed
}

// ShouldDrop reports whether newly-scheduled work should be silently
// dropped: true once the executor has been killed or has begun shutting
// down.
func (e *Executor) ShouldDrop() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.killed || e.terminating
}

// GetException returns the first task failure captured since the executor
// was created, or nil if none has occurred.
func (e *Executor) GetException() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.firstErr
}
