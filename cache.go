// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2023 HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package ifds

import (
	lru "github.com/hashicorp/golang-lru"

	"github.com/dataflow-tools/ifds-solver/internal/logging"
)

// DefaultFlowFunctionCacheSize is used when NewFlowFunctionCache is given a
// non-positive size.
const DefaultFlowFunctionCacheSize = 4096

// normalFlowKey, callFlowKey, returnFlowKey, and callToReturnFlowKey are the
// four query-tuple shapes spec.md §4.10 lists for the flow-function cache,
// one per FlowFunctions method.
type normalFlowKey[N comparable] struct {
	Curr, Succ N
}

type callFlowKey[N comparable, M comparable] struct {
	CallSite N
	Callee   M
}

type returnFlowKey[N comparable, M comparable] struct {
	CallSite, ExitStmt, ReturnSite N
	Callee                        M
}

type callToReturnFlowKey[N comparable] struct {
	CallSite, ReturnSite N
}

// FlowFunctionCache wraps a FlowFunctions provider, memoizing the
// FlowFunction value each query method returns. golang-lru's Cache is
// itself mutex-guarded, which is what makes this safe under the concurrent
// access the solver's worklist tasks perform; there's no additional locking
// here.
//
// This is the practical stand-in for "soft/weak value retention": rather
// than relying on GC weak references (which Go doesn't expose), capacity is
// bounded and least-recently-used entries are evicted under pressure. A
// cache miss after eviction simply re-invokes the underlying provider, so
// eviction can never affect correctness, only how often the provider is
// called.
type FlowFunctionCache[N comparable, M comparable, D comparable] struct {
	underlying FlowFunctions[N, M, D]

	normal       *lru.Cache
	call         *lru.Cache
	ret          *lru.Cache
	callToReturn *lru.Cache

	log interface {
		Trace(msg string, args ...any)
	}
}

// NewFlowFunctionCache wraps underlying with a cache of the given capacity
// per query kind. A non-positive size falls back to
// DefaultFlowFunctionCacheSize.
func NewFlowFunctionCache[N comparable, M comparable, D comparable](underlying FlowFunctions[N, M, D], size int) (*FlowFunctionCache[N, M, D], error) {
	if size <= 0 {
		size = DefaultFlowFunctionCacheSize
	}
	normal, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	call, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	ret, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	callToReturn, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &FlowFunctionCache[N, M, D]{
		underlying:   underlying,
		normal:       normal,
		call:         call,
		ret:          ret,
		callToReturn: callToReturn,
		log:          logging.HCLogger().Named("flowcache"),
	}, nil
}

func (c *FlowFunctionCache[N, M, D]) NormalFlowFunction(curr, succ N) FlowFunction[D] {
	key := normalFlowKey[N]{Curr: curr, Succ: succ}
	if v, ok := c.normal.Get(key); ok {
		c.log.Trace("normal flow function cache hit", "curr", curr, "succ", succ)
		return v.(FlowFunction[D])
	}
	c.log.Trace("normal flow function cache miss", "curr", curr, "succ", succ)
	ff := c.underlying.NormalFlowFunction(curr, succ)
	c.normal.Add(key, ff)
	return ff
}

func (c *FlowFunctionCache[N, M, D]) CallFlowFunction(callSite N, callee M) FlowFunction[D] {
	key := callFlowKey[N, M]{CallSite: callSite, Callee: callee}
	if v, ok := c.call.Get(key); ok {
		c.log.Trace("call flow function cache hit", "call_site", callSite, "callee", callee)
		return v.(FlowFunction[D])
	}
	c.log.Trace("call flow function cache miss", "call_site", callSite, "callee", callee)
	ff := c.underlying.CallFlowFunction(callSite, callee)
	c.call.Add(key, ff)
	return ff
}

func (c *FlowFunctionCache[N, M, D]) ReturnFlowFunction(callSite N, callee M, exitStmt, returnSite N) FlowFunction[D] {
	key := returnFlowKey[N, M]{CallSite: callSite, ExitStmt: exitStmt, ReturnSite: returnSite, Callee: callee}
	if v, ok := c.ret.Get(key); ok {
		c.log.Trace("return flow function cache hit", "call_site", callSite, "callee", callee, "exit_stmt", exitStmt, "return_site", returnSite)
		return v.(FlowFunction[D])
	}
	c.log.Trace("return flow function cache miss", "call_site", callSite, "callee", callee, "exit_stmt", exitStmt, "return_site", returnSite)
	ff := c.underlying.ReturnFlowFunction(callSite, callee, exitStmt, returnSite)
	c.ret.Add(key, ff)
	return ff
}

func (c *FlowFunctionCache[N, M, D]) CallToReturnFlowFunction(callSite, returnSite N) FlowFunction[D] {
	key := callToReturnFlowKey[N]{CallSite: callSite, ReturnSite: returnSite}
	if v, ok := c.callToReturn.Get(key); ok {
		c.log.Trace("call-to-return flow function cache hit", "call_site", callSite, "return_site", returnSite)
		return v.(FlowFunction[D])
	}
	c.log.Trace("call-to-return flow function cache miss", "call_site", callSite, "return_site", returnSite)
	ff := c.underlying.CallToReturnFlowFunction(callSite, returnSite)
	c.callToReturn.Add(key, ff)
	return ff
}

var _ FlowFunctions[int, int, int] = (*FlowFunctionCache[int, int, int])(nil)
