// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2023 HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

//go:generate go tool go.uber.org/mock/mockgen -destination mock.go -package ifdsmock github.com/dataflow-tools/ifds-solver ICFG,FlowFunctions,IFDSTabulationProblem

// Package ifdsmock provides gomock doubles for the solver's own small
// consumed interfaces (ICFG, FlowFunctions, IFDSTabulationProblem), for
// tests that only need to assert how the solver calls a problem rather
// than exercise a real graph's traversal behavior.
package ifdsmock
