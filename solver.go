// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2023 HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package ifds

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/dataflow-tools/ifds-solver/internal/logging"
	"github.com/dataflow-tools/ifds-solver/internal/worklist"
)

// Solver is the tabulation engine: given an IFDSTabulationProblem and an
// AbstractionDomain, it computes the exploded super-graph's reachability by
// worklist-driven propagation of path edges.
//
// A Solver is not reusable across directions: a forward analysis and a
// backward analysis each get their own instance, their own tables, and
// (per SetSolverID) their own diagnostic label.
type Solver[N comparable, M comparable, D comparable] struct {
	problem IFDSTabulationProblem[N, M, D]
	domain  AbstractionDomain[D]
	icfg    ICFG[N, M]
	flows   FlowFunctions[N, M, D]
	config  *Config

	jumpFn     *jumpFunctionTable[N, D]
	endSummary *endSummaryTable[M, N, D]
	incoming   *incomingTable[M, N, D]

	mu         sync.RWMutex
	memMgr     MemoryManager[D]
	phase      Phase
	direction  Direction
	executor   *worklist.Executor
	killed     bool
	reason     TerminationReason
	reasonText string

	listeners listenerSet

	propagationCount atomic.Int64

	log hclog.Logger
}

// NewSolver validates problem and domain and constructs a Solver ready to
// run. config may be nil, in which case NewConfig's defaults apply.
func NewSolver[N comparable, M comparable, D comparable](problem IFDSTabulationProblem[N, M, D], domain AbstractionDomain[D], config *Config) (*Solver[N, M, D], error) {
	if err := validateProblem[N, M, D](problem, domain); err != nil {
		return nil, err
	}
	if config == nil {
		config = NewConfig()
	}

	cache, err := NewFlowFunctionCache[N, M, D](problem.FlowFunctions(), DefaultFlowFunctionCacheSize)
	if err != nil {
		return nil, err
	}

	parallelism := config.Parallelism()
	if parallelism <= 0 {
		parallelism = worklist.DefaultParallelism()
	}

	s := &Solver[N, M, D]{
		problem:    problem,
		domain:     domain,
		icfg:       problem.InterproceduralCFG(),
		flows:      cache,
		config:     config,
		jumpFn:     newJumpFunctionTable[N, D](),
		endSummary: newEndSummaryTable[M, N, D](),
		incoming:   newIncomingTable[M, N, D](),
		executor:   worklist.NewExecutor(parallelism),
		direction:  Forward,
		log:        logging.HCLogger().Named("solver"),
	}
	return s, nil
}

// SetMemoryManager registers mm as the optional fact-rewriting hook. It
// must be set before Solve is called; the solver does not guard against
// changing it mid-run.
func (s *Solver[N, M, D]) SetMemoryManager(mm MemoryManager[D]) *Solver[N, M, D] {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.memMgr = mm
	return s
}

// SetSolverPhase selects FIRST_PHASE or SECOND_PHASE for the next call to
// Solve.
func (s *Solver[N, M, D]) SetSolverPhase(p Phase) *Solver[N, M, D] {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = p
	return s
}

// Phase returns the currently configured phase.
func (s *Solver[N, M, D]) Phase() Phase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phase
}

// SetSolverID labels this instance as Forward or Backward, for diagnostics
// and hash-partitioning only; it never affects propagation semantics.
func (s *Solver[N, M, D]) SetSolverID(d Direction) *Solver[N, M, D] {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.direction = d
	return s
}

// SetExecutor replaces the worklist executor. Since Solve shuts its
// executor down on every return, a solver that's run to completion once
// needs a fresh executor installed before Solve is called again (for
// example, between phase one and phase two of the same analysis).
func (s *Solver[N, M, D]) SetExecutor(e *worklist.Executor) *Solver[N, M, D] {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.executor = e
	return s
}

// Config returns the solver's configuration.
func (s *Solver[N, M, D]) Config() *Config { return s.config }

// Solve runs the driver described in spec §4.1: it clears the kill flag,
// purges stale phase-one summaries if in PhaseSecond, notifies listeners,
// submits seeds, waits for the worklist to quiesce, notifies listeners
// again, and shuts the executor down. It returns a non-nil *SolverFailure
// if any task captured a failure.
func (s *Solver[N, M, D]) Solve(ctx context.Context) error {
	s.mu.Lock()
	s.killed = false
	executor := s.executor
	phase := s.phase
	direction := s.direction
	s.mu.Unlock()

	runID := uuid.New()
	log := s.log.With("run_id", runID.String(), "direction", direction.String(), "phase", phase.String())

	if phase == PhaseSecond {
		s.purgePhaseOneSummaries()
	}

	s.listeners.notifyStarted(runID)
	log.Debug("solve started")

	s.submitSeeds(executor)

	if err := executor.AwaitCompletion(ctx); err != nil {
		log.Warn("interrupted while awaiting worklist completion", "error", err)
	}

	killed := s.IsKilled()
	s.listeners.notifyTerminated(runID, killed)

	if err := executor.Shutdown(context.Background()); err != nil {
		log.Warn("error shutting down executor", "error", err)
	}

	if taskErr := executor.GetException(); taskErr != nil {
		s.setTerminationReason(TerminatedByFailure, taskErr.Error())
		log.Error("solve failed", "error", taskErr)
		return &SolverFailure{Direction: direction, Err: taskErr}
	}
	if killed {
		s.setTerminationReason(TerminatedByForce, s.reasonText)
		log.Debug("solve terminated by force")
		return nil
	}
	s.setTerminationReason(TerminatedNormally, "")
	log.Debug("solve reached a fixed point", "propagations", s.propagationCount.Load())
	return nil
}

func (s *Solver[N, M, D]) purgePhaseOneSummaries() {
	s.endSummary.purgeIf(func(d2 D) bool { return s.domain.HasSourceContext(d2) })
}

func (s *Solver[N, M, D]) submitSeeds(executor *worklist.Executor) {
	zero := s.domain.ZeroValue()
	for n, facts := range s.problem.InitialSeeds() {
		for _, d := range facts {
			s.propagate(executor, SolverState[N, D]{D1: zero, N: n, D2: d}, nil, false)
		}
	}
}

// ForceTerminate sets the kill flag, records reason, and interrupts the
// executor. Already-running tasks finish their current edge; queued tasks
// are dropped.
func (s *Solver[N, M, D]) ForceTerminate(reason string) {
	s.mu.Lock()
	s.killed = true
	s.reasonText = reason
	executor := s.executor
	s.mu.Unlock()
	executor.Interrupt()
}

// IsKilled reports whether ForceTerminate was ever called for the current
// run.
func (s *Solver[N, M, D]) IsKilled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.killed
}

// IsTerminated reports whether the executor has finished shutting down.
func (s *Solver[N, M, D]) IsTerminated() bool {
	s.mu.RLock()
	executor := s.executor
	s.mu.RUnlock()
	return executor.IsTerminated()
}

// Reset clears the kill flag but preserves the accumulated tables, matching
// spec §3's lifecycle note for transitioning between phases on the same
// solver instance. Callers transitioning phases still need to call
// SetExecutor first, since Solve always shuts its executor down.
func (s *Solver[N, M, D]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.killed = false
	s.reasonText = ""
}

// AddStatusListener registers l to be notified of future Solve runs.
func (s *Solver[N, M, D]) AddStatusListener(l StatusListener) {
	s.listeners.Add(l)
}

func (s *Solver[N, M, D]) setTerminationReason(r TerminationReason, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reason = r
	s.reasonText = text
}

// GetTerminationReason reports why the most recent call to Solve returned.
func (s *Solver[N, M, D]) GetTerminationReason() TerminationReason {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reason
}

// TerminationDetail returns the forced-termination reason string passed to
// ForceTerminate, or the captured failure's message, whichever produced the
// current TerminationReason. It's empty after a normal termination.
func (s *Solver[N, M, D]) TerminationDetail() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reasonText
}

// PropagationCount returns the number of path edges propagated so far
// across all runs of this solver instance. It is monotone non-decreasing
// within the solver's lifetime, per spec invariant 6.
func (s *Solver[N, M, D]) PropagationCount() int64 {
	return s.propagationCount.Load()
}

// PathEdges returns a defensive copy of every path edge this solver has
// recorded in its jump-function table.
func (s *Solver[N, M, D]) PathEdges() []SolverState[N, D] {
	return s.jumpFn.snapshot()
}

// DebugRepr dumps the path-edge and end-summary tables in a human-readable
// form, for diagnostics when a test or an operator needs to see exactly
// what the solver has accumulated rather than just a pass/fail assertion.
func (s *Solver[N, M, D]) DebugRepr() string {
	return spew.Sdump(struct {
		PathEdges  []SolverState[N, D]
		EndSummary map[endSummaryKey[M, D]][]exitFact[N, D]
	}{
		PathEdges:  s.jumpFn.snapshot(),
		EndSummary: s.endSummary.snapshotAll(),
	})
}

// IsUnbalancedReturn reports whether state was propagated as an unbalanced
// return (see processExit's step 3).
func (s *Solver[N, M, D]) IsUnbalancedReturn(state SolverState[N, D]) bool {
	return s.jumpFn.isUnbalanced(state)
}

// EndSummaryEntry mirrors the spec's (eP, d2) pair stored in the end-summary
// table, exposed for observability and testing.
type EndSummaryEntry[N comparable, D comparable] struct {
	ExitNode N
	D2       D
}

// EndSummaries returns the (exit-node, exit-fact) pairs recorded for method
// m reached with entry fact d1.
func (s *Solver[N, M, D]) EndSummaries(m M, d1 D) []EndSummaryEntry[N, D] {
	facts := s.endSummary.snapshot(m, d1)
	out := make([]EndSummaryEntry[N, D], len(facts))
	for i, f := range facts {
		out[i] = EndSummaryEntry[N, D]{ExitNode: f.ExitNode, D2: f.D2}
	}
	return out
}

// Incoming returns, per call site, the map from caller-entry fact to
// call-site fact recorded for callee m entered with fact d3.
func (s *Solver[N, M, D]) Incoming(m M, d3 D) map[N]map[D]D {
	return s.incoming.snapshot(m, d3)
}

// ---- propagation engine (spec §4.4-4.9) ----

func (s *Solver[N, M, D]) propagate(executor *worklist.Executor, state SolverState[N, D], relatedCallSite *N, isUnbalancedReturn bool) {
	if executor.ShouldDrop() {
		return
	}

	d1, d2 := state.D1, state.D2
	if mm := s.memoryManager(); mm != nil {
		var ok bool
		d1, ok = mm.HandleMemoryObject(d1)
		if !ok {
			return
		}
		d2, ok = mm.HandleMemoryObject(d2)
		if !ok {
			return
		}
		state = SolverState[N, D]{D1: d1, N: state.N, D2: d2}
	}

	if maxLen := s.config.MaxAbstractionPathLength(); maxLen >= 0 && s.domain.PathLength(state.D2) > maxLen {
		return
	}

	if !s.jumpFn.insertIfAbsent(state, isUnbalancedReturn) {
		return
	}
	s.propagationCount.Add(1)

	callSite := relatedCallSite
	unbalanced := isUnbalancedReturn
	executor.Submit(func() error {
		return s.processEdge(executor, state, callSite, unbalanced)
	})
}

func (s *Solver[N, M, D]) memoryManager() MemoryManager[D] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.memMgr
}

// processEdge is the dispatcher described in spec §4.4.
func (s *Solver[N, M, D]) processEdge(executor *worklist.Executor, state SolverState[N, D], relatedCallSite *N, isUnbalancedReturn bool) error {
	n := state.N

	if s.icfg.IsCallStmt(n) {
		return s.processCall(executor, state)
	}

	if s.icfg.IsExitStmt(n) {
		if err := s.processExit(executor, state); err != nil {
			return err
		}
		if succs := s.icfg.SuccsOf(n); len(succs) > 0 {
			return s.processNormalFlow(executor, state, succs)
		}
		return nil
	}

	if succs := s.icfg.SuccsOf(n); len(succs) > 0 {
		return s.processNormalFlow(executor, state, succs)
	}
	return nil
}

// processNormalFlow implements spec §4.5.
func (s *Solver[N, M, D]) processNormalFlow(executor *worklist.Executor, state SolverState[N, D], succs []N) error {
	n, d2 := state.N, state.D2
	mm := s.memoryManager()

	for _, m := range succs {
		if executor.ShouldDrop() {
			return nil
		}
		ff := s.flows.NormalFlowFunction(n, m)
		for _, d3 := range ff(d2) {
			if mm != nil && d2 != d3 {
				var ok bool
				d3, ok = mm.HandleGeneratedMemoryObject(d2, d3)
				if !ok {
					continue
				}
			}
			s.propagate(executor, state.Derive(m, d3), nil, false)
		}
	}
	return nil
}

// processCall implements spec §4.6.
func (s *Solver[N, M, D]) processCall(executor *worklist.Executor, state SolverState[N, D]) error {
	n, d1, d2 := state.N, state.D1, state.D2
	mm := s.memoryManager()

	returnSites := s.icfg.ReturnSitesOfCallAt(n)
	callees := s.icfg.CalleesOfCallAt(n)

	maxCallees := s.config.MaxCalleesPerCallSite()
	if maxCallees < 0 || len(callees) <= maxCallees {
		for _, callee := range callees {
			if executor.ShouldDrop() {
				break
			}
			callFF := s.flows.CallFlowFunction(n, callee)
			for _, raw := range callFF(d2) {
				d3 := s.propagateSourceContext(raw, d1)

				if mm != nil {
					var ok bool
					d3, ok = mm.HandleGeneratedMemoryObject(d2, d3)
					if !ok {
						continue
					}
				}

				mask := s.incoming.add(callee, d3, n, d1, d2)
				if mask&newIncoming == 0 {
					continue
				}

				foundSummary, err := s.applyEndSummaryOnCall(executor, d1, n, returnSites, callee, d3)
				if err != nil {
					return err
				}
				if foundSummary {
					continue
				}
				if mask&newCallee == 0 {
					continue
				}
				for _, sp := range s.icfg.StartPointsOf(callee) {
					s.propagate(executor, SolverState[N, D]{D1: d3, N: sp, D2: d3}, &n, false)
				}
			}
		}
	}

	for _, r := range returnSites {
		if executor.ShouldDrop() {
			break
		}
		c2rFF := s.flows.CallToReturnFlowFunction(n, r)
		for _, d3 := range c2rFF(d2) {
			if mm != nil {
				var ok bool
				d3, ok = mm.HandleGeneratedMemoryObject(d2, d3)
				if !ok {
					continue
				}
			}
			s.propagate(executor, state.Derive(r, d3), nil, false)
		}
	}
	return nil
}

// propagateSourceContext is the one phase-dependent hook in the propagation
// engine (spec §4.1, §4.6): in PhaseSecond it tags child with the source
// context carried by the caller-entry fact; in PhaseFirst it's the
// identity.
func (s *Solver[N, M, D]) propagateSourceContext(child, callerEntry D) D {
	if s.Phase() != PhaseSecond {
		return child
	}
	return s.domain.DeriveSourceContext(child, callerEntry)
}

// applyEndSummaryOnCall implements spec §4.7.
func (s *Solver[N, M, D]) applyEndSummaryOnCall(executor *worklist.Executor, d1 D, n N, returnSites []N, callee M, d3 D) (bool, error) {
	exits := s.endSummary.snapshot(callee, d3)
	if len(exits) == 0 {
		return false, nil
	}

	mm := s.memoryManager()
	propagated := false
	for _, exit := range exits {
		if executor.ShouldDrop() {
			break
		}
		for _, r := range returnSites {
			retFF := s.flows.ReturnFlowFunction(n, callee, exit.ExitNode, r)
			for _, d5 := range retFF(exit.D2) {
				if mm != nil {
					var ok bool
					d5, ok = mm.HandleGeneratedMemoryObject(exit.D2, d5)
					if !ok {
						continue
					}
				}
				s.propagate(executor, SolverState[N, D]{D1: d1, N: r, D2: d5}, &n, false)
				propagated = true
			}
		}
	}
	return propagated, nil
}

// processExit implements spec §4.8.
func (s *Solver[N, M, D]) processExit(executor *worklist.Executor, state SolverState[N, D]) error {
	n, d1, d2 := state.N, state.D1, state.D2
	method := s.icfg.MethodOf(n)

	if !s.endSummary.add(method, d1, n, d2) {
		return nil
	}

	mm := s.memoryManager()
	incoming := s.incoming.snapshot(method, d1)

	for callSite, callerMap := range incoming {
		if executor.ShouldDrop() {
			break
		}
		for _, r := range s.icfg.ReturnSitesOfCallAt(callSite) {
			retFF := s.flows.ReturnFlowFunction(callSite, method, n, r)
			for _, d5 := range retFF(d2) {
				if mm != nil {
					var ok bool
					d5, ok = mm.HandleGeneratedMemoryObject(d2, d5)
					if !ok {
						continue
					}
				}
				for d4 := range callerMap {
					s.propagate(executor, SolverState[N, D]{D1: d4, N: r, D2: d5}, &callSite, false)
				}
			}
		}
	}

	followReturnsPastSeeds := s.config.FollowReturnsPastSeeds() || s.problem.FollowReturnsPastSeeds()
	if followReturnsPastSeeds && d1 == s.domain.ZeroValue() && len(incoming) == 0 {
		callers := s.icfg.CallersOf(method)
		if len(callers) == 0 {
			var zeroCallSite, zeroReturnSite N
			retFF := s.flows.ReturnFlowFunction(zeroCallSite, method, n, zeroReturnSite)
			_ = retFF(d2)
			return nil
		}
		zero := s.domain.ZeroValue()
		for _, c := range callers {
			if executor.ShouldDrop() {
				break
			}
			for _, r := range s.icfg.ReturnSitesOfCallAt(c) {
				retFF := s.flows.ReturnFlowFunction(c, method, n, r)
				for _, d5 := range retFF(d2) {
					if mm != nil {
						var ok bool
						d5, ok = mm.HandleGeneratedMemoryObject(d2, d5)
						if !ok {
							continue
						}
					}
					s.propagate(executor, SolverState[N, D]{D1: zero, N: r, D2: d5}, &c, true)
				}
			}
		}
	}
	return nil
}
