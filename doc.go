// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2023 HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package ifds implements the tabulation core of an IFDS (Interprocedural,
// Finite, Distributive, Subset) data-flow solver: a worklist-driven,
// concurrent fixed-point engine that computes summaries over the exploded
// super-graph of an interprocedural control-flow graph.
//
// This package implements the Naeem/Lhotak/Rodriguez tabulation algorithm
// and its concurrent worklist executor. It does not define a data-flow
// lattice, flow functions, or an ICFG: those are supplied by the caller
// through the [ICFG], [FlowFunctions], and [AbstractionDomain] contracts.
// A typical caller is a taint-style information-flow analysis that defines
// its own fact type, wires up flow functions describing how facts move
// through each kind of statement, and then uses [Solver] to compute the
// resulting summaries.
//
// # Usage
//
// Construct a [Solver] with [NewSolver], passing an implementation of
// [IFDSTabulationProblem] and [AbstractionDomain], then call [Solver.Solve].
// Results accumulate in the tables returned by [Solver.EndSummaries],
// [Solver.Incoming], and [Solver.PathEdges].
package ifds
