// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2023 HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package ifds_test

import (
	"sync"

	ifds "github.com/dataflow-tools/ifds-solver"
)

// node and method are the opaque comparable identifiers used across the
// solver's scenario tests: plain strings, matching how the spec's
// description of N and M as "opaque identifiers" translates most directly
// into Go's comparable constraint without needing an interned-id scheme.
type node = string
type method = string

// fact is the test package's data-flow fact: a name plus whether it carries
// a source context, enough to exercise AbstractionDomain.HasSourceContext
// and DeriveSourceContext without modeling a real taint lattice.
type fact struct {
	name          string
	sourceContext string
}

const zeroFactName = "Z"

func zeroFact() fact { return fact{name: zeroFactName} }

// testDomain implements ifds.AbstractionDomain[fact] for the test suite.
type testDomain struct{}

func (testDomain) ZeroValue() fact { return zeroFact() }

func (testDomain) PathLength(d fact) int {
	if d.name == zeroFactName {
		return 0
	}
	return len(d.name)
}

func (testDomain) DeriveSourceContext(child, parent fact) fact {
	if parent.sourceContext == "" {
		return child
	}
	child.sourceContext = parent.sourceContext
	return child
}

func (testDomain) HasSourceContext(d fact) bool { return d.sourceContext != "" }

var _ ifds.AbstractionDomain[fact] = testDomain{}

// fabricICFG is a small, hand-wired ICFG builder used by the scenario
// tests: nodes and methods are registered explicitly rather than parsed
// from any real program representation, since this package's Non-goals
// exclude ICFG construction.
type fabricICFG struct {
	mu sync.Mutex

	succs        map[node][]node
	callees      map[node][]method
	returnSites  map[node][]node
	startPoints  map[method][]node
	callers      map[method][]node
	methodOf     map[node]method
	callStmts    map[node]bool
	exitStmts    map[node]bool
}

func newFabricICFG() *fabricICFG {
	return &fabricICFG{
		succs:       map[node][]node{},
		callees:     map[node][]method{},
		returnSites: map[node][]node{},
		startPoints: map[method][]node{},
		callers:     map[method][]node{},
		methodOf:    map[node]method{},
		callStmts:   map[node]bool{},
		exitStmts:   map[node]bool{},
	}
}

func (g *fabricICFG) addEdge(from, to node) {
	g.succs[from] = append(g.succs[from], to)
}

func (g *fabricICFG) addCall(callSite node, m method, returnSite node) {
	g.callStmts[callSite] = true
	g.callees[callSite] = append(g.callees[callSite], m)
	g.returnSites[callSite] = append(g.returnSites[callSite], returnSite)
	g.callers[m] = append(g.callers[m], callSite)
}

func (g *fabricICFG) setMethod(m method, entry, exit node) {
	g.startPoints[m] = append(g.startPoints[m], entry)
	g.methodOf[entry] = m
	g.methodOf[exit] = m
	g.exitStmts[exit] = true
}

func (g *fabricICFG) registerNode(n node, m method) {
	g.methodOf[n] = m
}

func (g *fabricICFG) SuccsOf(n node) []node {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]node(nil), g.succs[n]...)
}

func (g *fabricICFG) CalleesOfCallAt(n node) []method {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]method(nil), g.callees[n]...)
}

func (g *fabricICFG) ReturnSitesOfCallAt(n node) []node {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]node(nil), g.returnSites[n]...)
}

func (g *fabricICFG) StartPointsOf(m method) []node {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]node(nil), g.startPoints[m]...)
}

func (g *fabricICFG) CallersOf(m method) []node {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]node(nil), g.callers[m]...)
}

func (g *fabricICFG) MethodOf(n node) method {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.methodOf[n]
}

func (g *fabricICFG) IsCallStmt(n node) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.callStmts[n]
}

func (g *fabricICFG) IsExitStmt(n node) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.exitStmts[n]
}

var _ ifds.ICFG[node, method] = (*fabricICFG)(nil)

// identityFlows implements ifds.FlowFunctions[node, method, fact] where
// every kind of flow function is the identity (a single input fact maps to
// itself), except where a scenario registers an override for a specific
// query tuple.
type identityFlows struct {
	mu sync.Mutex

	normalOverride       map[[2]node]ifds.FlowFunction[fact]
	callOverride         map[node]ifds.FlowFunction[fact]
	returnOverride       map[string]ifds.FlowFunction[fact]
	callToReturnOverride map[[2]node]ifds.FlowFunction[fact]
}

func newIdentityFlows() *identityFlows {
	return &identityFlows{
		normalOverride:       map[[2]node]ifds.FlowFunction[fact]{},
		callOverride:         map[node]ifds.FlowFunction[fact]{},
		returnOverride:       map[string]ifds.FlowFunction[fact]{},
		callToReturnOverride: map[[2]node]ifds.FlowFunction[fact]{},
	}
}

func identity(d fact) []fact { return []fact{d} }

func empty(fact) []fact { return nil }

func (f *identityFlows) NormalFlowFunction(curr, succ node) ifds.FlowFunction[fact] {
	f.mu.Lock()
	defer f.mu.Unlock()
	if ff, ok := f.normalOverride[[2]node{curr, succ}]; ok {
		return ff
	}
	return identity
}

func (f *identityFlows) CallFlowFunction(callSite node, callee method) ifds.FlowFunction[fact] {
	f.mu.Lock()
	defer f.mu.Unlock()
	if ff, ok := f.callOverride[callSite]; ok {
		return ff
	}
	return identity
}

func returnKey(callSite, callee, exitStmt, returnSite string) string {
	return callSite + "|" + callee + "|" + exitStmt + "|" + returnSite
}

func (f *identityFlows) ReturnFlowFunction(callSite node, callee method, exitStmt, returnSite node) ifds.FlowFunction[fact] {
	f.mu.Lock()
	defer f.mu.Unlock()
	if ff, ok := f.returnOverride[returnKey(callSite, callee, exitStmt, returnSite)]; ok {
		return ff
	}
	return identity
}

func (f *identityFlows) CallToReturnFlowFunction(callSite, returnSite node) ifds.FlowFunction[fact] {
	f.mu.Lock()
	defer f.mu.Unlock()
	if ff, ok := f.callToReturnOverride[[2]node{callSite, returnSite}]; ok {
		return ff
	}
	return empty
}

var _ ifds.FlowFunctions[node, method, fact] = (*identityFlows)(nil)

// testProblem implements ifds.IFDSTabulationProblem[node, method, fact].
type testProblem struct {
	icfg                    *fabricICFG
	flows                   *identityFlows
	seeds                   map[node][]fact
	followReturnsPastSeeds_ bool
}

func (p *testProblem) ZeroValue() fact                            { return zeroFact() }
func (p *testProblem) InterproceduralCFG() ifds.ICFG[node, method] { return p.icfg }
func (p *testProblem) FlowFunctions() ifds.FlowFunctions[node, method, fact] {
	return p.flows
}
func (p *testProblem) InitialSeeds() map[node][]fact { return p.seeds }
func (p *testProblem) FollowReturnsPastSeeds() bool  { return p.followReturnsPastSeeds_ }

var _ ifds.IFDSTabulationProblem[node, method, fact] = (*testProblem)(nil)
