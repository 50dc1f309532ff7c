// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2023 HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package ifds

// AbstractionDomain describes the operations the solver needs to perform on
// data-flow facts of type D, independent of any particular tabulation
// problem.
//
// D is expected to be a comparable type so that facts can be used directly
// as Go map keys; equality of D values is equality of facts for the purpose
// of the path-edge, end-summary, and incoming tables. Implementers whose
// natural fact representation isn't directly comparable (for example, one
// containing a slice) should define their own comparable wrapper, such as
// an interned integer ID, and implement AbstractionDomain over that wrapper.
type AbstractionDomain[D comparable] interface {
	// ZeroValue returns the designated "zero fact": the lattice bottom
	// representing unconditional flow, used as the entry fact for seeds
	// and as the caller-entry fact for unbalanced returns.
	ZeroValue() D

	// PathLength returns the number of derivation steps that produced d,
	// used to enforce Solver.Config's MaxAbstractionPathLength.
	PathLength(d D) int

	// DeriveSourceContext returns a copy of child tagged with the source
	// context carried by parent. It is only invoked during
	// [PhaseSecond] re-propagation; implementations that don't track
	// source context may return child unchanged.
	DeriveSourceContext(child, parent D) D

	// HasSourceContext reports whether d carries a non-null source
	// context. The [PhaseSecond] driver uses this to purge phase-one
	// end-summary entries before re-propagating with real sources
	// attached. Implementations that don't track source context may
	// always return false, since nothing will ever need purging.
	HasSourceContext(d D) bool
}

// ICFG is the interprocedural control-flow graph that the solver walks.
// All query methods are treated as pure by the solver: they may be
// expensive or may block inside an adapter implementation, but the solver
// never mutates the graph and may call them concurrently from multiple
// worklist tasks.
type ICFG[N comparable, M comparable] interface {
	// SuccsOf returns the successor statements of n within its own
	// method, in no particular order.
	SuccsOf(n N) []N

	// CalleesOfCallAt returns the possibly-multiple concrete methods that
	// a call at n might invoke.
	CalleesOfCallAt(n N) []M

	// ReturnSitesOfCallAt returns the statements that control may resume
	// at after a call at n returns.
	ReturnSitesOfCallAt(n N) []N

	// StartPointsOf returns the entry statements of method m.
	StartPointsOf(m M) []N

	// CallersOf returns the call-site statements that may invoke m.
	CallersOf(m M) []N

	// MethodOf returns the method that contains statement n.
	MethodOf(n N) M

	// IsCallStmt reports whether n is a call statement.
	IsCallStmt(n N) bool

	// IsExitStmt reports whether n is a method exit statement. A
	// statement may be both an exit statement and have successors (for
	// example, a throw that both exits the current method along an
	// exceptional edge and also has a successor modeling that edge).
	IsExitStmt(n N) bool
}

// FlowFunction computes the facts that hold after a single flow-graph edge,
// given a fact that held before it.
type FlowFunction[D comparable] func(source D) []D

// FlowFunctions supplies the four kinds of flow function the tabulation
// algorithm needs. Implementations are assumed to be stateless or
// internally synchronized: the solver may call any of these methods
// concurrently from multiple worklist tasks.
type FlowFunctions[N comparable, M comparable, D comparable] interface {
	// NormalFlowFunction describes how facts flow across the
	// intraprocedural edge from curr to succ.
	NormalFlowFunction(curr, succ N) FlowFunction[D]

	// CallFlowFunction describes how facts flow from a call site into
	// the entry of callee.
	CallFlowFunction(callSite N, callee M) FlowFunction[D]

	// ReturnFlowFunction describes how facts flow from the exit of
	// callee back into returnSite in the caller of callSite.
	ReturnFlowFunction(callSite N, callee M, exitStmt, returnSite N) FlowFunction[D]

	// CallToReturnFlowFunction describes how facts flow directly from a
	// call site to its return site without entering the callee, used for
	// facts that aren't affected by the call (for example, facts about
	// variables the callee cannot see).
	CallToReturnFlowFunction(callSite, returnSite N) FlowFunction[D]
}

// MemoryManager is an optional hook that lets a caller rewrite or discard
// facts as they flow through the solver, typically to intern facts into a
// shared arena or to bound memory use. If supplied, it must be safe for
// concurrent use.
type MemoryManager[D comparable] interface {
	// HandleMemoryObject rewrites a fact that is about to be inserted
	// into a solver table. Returning ok=false drops the derivation
	// entirely, as if the flow function had not produced it.
	HandleMemoryObject(d D) (rewritten D, ok bool)

	// HandleGeneratedMemoryObject rewrites a fact child that was derived
	// from parent by a flow function. Returning ok=false drops the
	// derivation.
	HandleGeneratedMemoryObject(parent, child D) (rewritten D, ok bool)
}

// IFDSTabulationProblem bundles everything the solver needs to know about a
// specific analysis: where facts start, how the ICFG is shaped, and how
// facts flow across it.
type IFDSTabulationProblem[N comparable, M comparable, D comparable] interface {
	// ZeroValue returns the zero fact, identical to what the paired
	// AbstractionDomain would return; it's repeated here because the
	// spec this solver implements exposes it at the problem level.
	ZeroValue() D

	// InterproceduralCFG returns the ICFG to analyze.
	InterproceduralCFG() ICFG[N, M]

	// FlowFunctions returns the flow functions to use.
	FlowFunctions() FlowFunctions[N, M, D]

	// InitialSeeds returns the facts to propagate from each given node
	// before any flow functions are invoked.
	InitialSeeds() map[N][]D

	// FollowReturnsPastSeeds reports whether the solver should propagate
	// unbalanced returns: returns from a method reached with the zero
	// fact for which no caller context was ever recorded.
	FollowReturnsPastSeeds() bool
}
