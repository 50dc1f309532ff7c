// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2023 HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package ifds

import (
	"sync"

	"github.com/google/uuid"
)

// StatusListener observes a solver's lifecycle. Implementations should
// return quickly since callbacks run on the goroutine driving Solve.
type StatusListener interface {
	// Started is called at the start of the solve run identified by
	// runID, just before its seeds are submitted.
	Started(runID uuid.UUID)
	// Terminated is called once the worklist has quiesced, just before
	// the executor is shut down. killed reports whether termination was
	// forced rather than reaching a natural fixed point.
	Terminated(runID uuid.UUID, killed bool)
}

// listenerSet is an add-only collection of StatusListener, safe for
// concurrent registration. The spec only requires add-only semantics
// during Solve; no removal is specified.
type listenerSet struct {
	mu        sync.Mutex
	listeners []StatusListener
}

func (s *listenerSet) Add(l StatusListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

func (s *listenerSet) snapshot() []StatusListener {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]StatusListener, len(s.listeners))
	copy(out, s.listeners)
	return out
}

func (s *listenerSet) notifyStarted(runID uuid.UUID) {
	for _, l := range s.snapshot() {
		l.Started(runID)
	}
}

func (s *listenerSet) notifyTerminated(runID uuid.UUID, killed bool) {
	for _, l := range s.snapshot() {
		l.Terminated(runID, killed)
	}
}
