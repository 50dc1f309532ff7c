// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2023 HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package worklist_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dataflow-tools/ifds-solver/internal/worklist"
)

func TestExecutor_AwaitCompletion_Empty(t *testing.T) {
	e := worklist.NewExecutor(4)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := e.AwaitCompletion(ctx); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
}

func TestExecutor_RunsAllTasks(t *testing.T) {
	e := worklist.NewExecutor(4)
	var count atomic.Int32
	const n = 200
	for i := 0; i < n; i++ {
		e.Submit(func() error {
			count.Add(1)
			return nil
		})
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.AwaitCompletion(ctx); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got := count.Load(); got != n {
		t.Fatalf("expected %d tasks to run, got %d", n, got)
	}
}

func TestExecutor_TaskSubmitsMoreTasks(t *testing.T) {
	e := worklist.NewExecutor(2)
	var count atomic.Int32
	var submit func(depth int)
	submit = func(depth int) {
		e.Submit(func() error {
			count.Add(1)
			if depth > 0 {
				submit(depth - 1)
			}
			return nil
		})
	}
	submit(50)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.AwaitCompletion(ctx); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got := count.Load(); got != 51 {
		t.Fatalf("expected 51 tasks to run, got %d", got)
	}
}

func TestExecutor_CapturesFirstFailure(t *testing.T) {
	e := worklist.NewExecutor(1)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	// Tasks run on their own goroutines, so submission order is not run
	// order; let the first failure be reported before submitting the second.
	e.Submit(func() error {
		return errors.New("boom")
	})
	if err := e.AwaitCompletion(ctx); err != nil {
		t.Fatalf("AwaitCompletion itself should not fail: %s", err)
	}
	e.Submit(func() error {
		return errors.New("second boom")
	})
	if err := e.AwaitCompletion(ctx); err != nil {
		t.Fatalf("AwaitCompletion itself should not fail: %s", err)
	}
	err := e.GetException()
	if err == nil || err.Error() != "boom" {
		t.Fatalf("expected first failure %q to be preserved, got %v", "boom", err)
	}
}

func TestExecutor_RecoversPanics(t *testing.T) {
	e := worklist.NewExecutor(1)
	e.Submit(func() error {
		panic("kaboom")
	})
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := e.AwaitCompletion(ctx); err != nil {
		t.Fatalf("AwaitCompletion itself should not fail: %s", err)
	}
	if e.GetException() == nil {
		t.Fatal("expected the panic to be captured as an exception")
	}
}

func TestExecutor_InterruptDropsLaterSubmissions(t *testing.T) {
	e := worklist.NewExecutor(1)
	var ran atomic.Int32
	// Occupy the sole slot, interrupt, then submit more work: Submit must
	// refuse every task handed to it after Interrupt.
	block := make(chan struct{})
	e.Submit(func() error {
		<-block
		return nil
	})
	e.Interrupt()
	for i := 0; i < 10; i++ {
		e.Submit(func() error {
			ran.Add(1)
			return nil
		})
	}
	close(block)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := e.AwaitCompletion(ctx); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got := ran.Load(); got != 0 {
		t.Fatalf("expected interrupted executor to drop tasks submitted after Interrupt, but %d ran", got)
	}
	if !e.IsKilled() {
		t.Fatal("expected IsKilled to be true after Interrupt")
	}
}

func TestExecutor_ShutdownTerminates(t *testing.T) {
	e := worklist.NewExecutor(2)
	e.Submit(func() error { return nil })
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !e.IsTerminated() {
		t.Fatal("expected IsTerminated to be true after Shutdown")
	}
	var ran atomic.Bool
	e.Submit(func() error {
		ran.Store(true)
		return nil
	})
	time.Sleep(10 * time.Millisecond)
	if ran.Load() {
		t.Fatal("expected Submit after Shutdown to be dropped")
	}
}
