// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2023 HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package ifds

import (
	"sync"

	"github.com/dataflow-tools/ifds-solver/internal/collections"
)

// edgeInfo is the value side of the jump-function table: the fact the edge
// carries, plus whether it was propagated as an unbalanced return. The flag
// is carried here rather than recomputed, since whether an edge is an
// unbalanced return is a property of how it was derived, not of its
// ⟨d1,n,d2⟩ key alone.
type edgeInfo[D comparable] struct {
	D2         D
	Unbalanced bool
}

// jumpFunctionTable is the per-direction set of path edges already
// propagated, guarded by a single mutex rather than a sync.Map: insertion
// needs an atomic "insert if absent, tell me which" rather than sync.Map's
// LoadOrStore alone, and the table is also walked wholesale by
// Solver.PathEdges, which wants a consistent snapshot.
type jumpFunctionTable[N comparable, D comparable] struct {
	mu    sync.RWMutex
	edges map[SolverState[N, D]]edgeInfo[D]
}

func newJumpFunctionTable[N comparable, D comparable]() *jumpFunctionTable[N, D] {
	return &jumpFunctionTable[N, D]{edges: make(map[SolverState[N, D]]edgeInfo[D])}
}

// insertIfAbsent records state if it hasn't been seen before and reports
// whether it was newly inserted. This is the single de-duplication point
// invariant I1 depends on: two concurrent callers proposing the same edge
// must see exactly one of them get true back.
func (t *jumpFunctionTable[N, D]) insertIfAbsent(state SolverState[N, D], unbalanced bool) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.edges[state]; ok {
		return false
	}
	t.edges[state] = edgeInfo[D]{D2: state.D2, Unbalanced: unbalanced}
	return true
}

func (t *jumpFunctionTable[N, D]) isUnbalanced(state SolverState[N, D]) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	info, ok := t.edges[state]
	return ok && info.Unbalanced
}

func (t *jumpFunctionTable[N, D]) len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.edges)
}

// snapshot returns a defensive copy of every path edge recorded so far.
func (t *jumpFunctionTable[N, D]) snapshot() []SolverState[N, D] {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]SolverState[N, D], 0, len(t.edges))
	for edge := range t.edges {
		out = append(out, edge)
	}
	return out
}

// endSummaryKey identifies an end-summary bucket: a method reached with a
// given entry fact.
type endSummaryKey[M comparable, D comparable] struct {
	M  M
	D1 D
}

// endSummaryTable maps (method, entry-fact) to the set of (exit-node,
// exit-fact) pairs discovered for it so far. Buckets are
// internal/collections.Set[exitFact[N,D]] values, the same generic set type
// the teacher codebase uses elsewhere for small deduplicated collections;
// here it's wrapped in a mutex because membership tests and inserts must be
// atomic with respect to each other (addEndSummary's "insert, tell me if
// new" is a compound operation a bare map can't provide safely).
type endSummaryTable[M comparable, N comparable, D comparable] struct {
	mu      sync.Mutex
	entries map[endSummaryKey[M, D]]collections.Set[exitFact[N, D]]
}

func newEndSummaryTable[M comparable, N comparable, D comparable]() *endSummaryTable[M, N, D] {
	return &endSummaryTable[M, N, D]{entries: make(map[endSummaryKey[M, D]]collections.Set[exitFact[N, D]])}
}

// add records (exitNode, d2) under (m, d1) and reports whether it is new.
func (t *endSummaryTable[M, N, D]) add(m M, d1 D, exitNode N, d2 D) bool {
	key := endSummaryKey[M, D]{M: m, D1: d1}
	fact := exitFact[N, D]{ExitNode: exitNode, D2: d2}

	t.mu.Lock()
	defer t.mu.Unlock()
	set, ok := t.entries[key]
	if !ok {
		set = collections.NewSet[exitFact[N, D]]()
		t.entries[key] = set
	}
	if set.Has(fact) {
		return false
	}
	set[fact] = struct{}{}
	return true
}

// snapshot returns a defensive copy of the exit facts recorded for (m, d1).
func (t *endSummaryTable[M, N, D]) snapshot(m M, d1 D) []exitFact[N, D] {
	key := endSummaryKey[M, D]{M: m, D1: d1}

	t.mu.Lock()
	defer t.mu.Unlock()
	set, ok := t.entries[key]
	if !ok {
		return nil
	}
	out := make([]exitFact[N, D], 0, len(set))
	for fact := range set {
		out = append(out, fact)
	}
	return out
}

// purgeIf removes every (eP, d2) entry across the whole table for which
// drop returns true, and drops any bucket left empty. Used at the start of
// [PhaseSecond] to discard phase-one summaries that carry source context.
func (t *endSummaryTable[M, N, D]) purgeIf(drop func(d2 D) bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for key, set := range t.entries {
		for fact := range set {
			if drop(fact.D2) {
				delete(set, fact)
			}
		}
		if len(set) == 0 {
			delete(t.entries, key)
		}
	}
}

// snapshotAll returns a defensive copy of the whole table, keyed the same
// way the spec describes endSummary: (M, d1) -> set of (eP, d2).
func (t *endSummaryTable[M, N, D]) snapshotAll() map[endSummaryKey[M, D]][]exitFact[N, D] {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make(map[endSummaryKey[M, D]][]exitFact[N, D], len(t.entries))
	for key, set := range t.entries {
		facts := make([]exitFact[N, D], 0, len(set))
		for fact := range set {
			facts = append(facts, fact)
		}
		out[key] = facts
	}
	return out
}

// Bits returned by incomingTable.add, matching the spec's
// {NEW_INCOMING, NEW_CALLEE} bitmask from processCall step (b).
const (
	newIncoming = 1 << iota
	newCallee
)

type incomingKey[M comparable, D comparable] struct {
	M  M
	D3 D
}

// incomingTable maps (callee method, callee-entry-fact) to, per call site,
// the map from caller-entry-fact to call-site-fact: every caller context
// recorded as having caused that callee to be entered with that fact.
//
// Like endSummaryTable, this needs compound insert-if-absent-and-classify
// semantics (step (b) of processCall needs to know both "was this exact
// (call site, d1) pair new" and "was the (M, d3) bucket itself new"), so a
// single mutex over the nested maps replaces what would otherwise be an
// awkward pair of sync.Map operations with no way to make them atomic
// together.
type incomingTable[M comparable, N comparable, D comparable] struct {
	mu      sync.Mutex
	entries map[incomingKey[M, D]]map[N]map[D]D
}

func newIncomingTable[M comparable, N comparable, D comparable]() *incomingTable[M, N, D] {
	return &incomingTable[M, N, D]{entries: make(map[incomingKey[M, D]]map[N]map[D]D)}
}

// add records that callSite, reached with caller-entry d1 and call-site
// fact d2, caused callee m to be entered with d3. It returns a bitmask of
// newIncoming (this exact (callSite, d1) pair hadn't been recorded under
// (m, d3) before) and newCallee (the (m, d3) bucket itself didn't exist
// before this call).
func (t *incomingTable[M, N, D]) add(m M, d3 D, callSite N, d1 D, d2 D) int {
	key := incomingKey[M, D]{M: m, D3: d3}

	t.mu.Lock()
	defer t.mu.Unlock()

	mask := 0
	perCallSite, ok := t.entries[key]
	if !ok {
		mask |= newCallee
		perCallSite = make(map[N]map[D]D)
		t.entries[key] = perCallSite
	}
	perCaller, ok := perCallSite[callSite]
	if !ok {
		perCaller = make(map[D]D)
		perCallSite[callSite] = perCaller
	}
	if _, existed := perCaller[d1]; !existed {
		mask |= newIncoming
	}
	perCaller[d1] = d2
	return mask
}

// snapshot returns a defensive deep copy of incoming[(m, d3)]: call site to
// (caller-entry fact -> call-site fact).
func (t *incomingTable[M, N, D]) snapshot(m M, d3 D) map[N]map[D]D {
	key := incomingKey[M, D]{M: m, D3: d3}

	t.mu.Lock()
	defer t.mu.Unlock()
	perCallSite, ok := t.entries[key]
	if !ok {
		return nil
	}
	out := make(map[N]map[D]D, len(perCallSite))
	for callSite, perCaller := range perCallSite {
		copied := make(map[D]D, len(perCaller))
		for d1, d2 := range perCaller {
			copied[d1] = d2
		}
		out[callSite] = copied
	}
	return out
}
