// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2023 HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package ifds_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	ifds "github.com/dataflow-tools/ifds-solver"
	"github.com/dataflow-tools/ifds-solver/internal/ifdsmock"
)

// TestNewSolver_QueriesProblemExactlyTwice pins down NewSolver's
// construction-time contract with IFDSTabulationProblem: InterproceduralCFG
// and FlowFunctions are each consulted once by validateProblem and once more
// while wiring the solver's own fields. Expressing this as call-count
// expectations (rather than a fabricated graph) is what gomock is for; the
// fabricICFG-backed scenario tests cover traversal behavior separately.
func TestNewSolver_QueriesProblemExactlyTwice(t *testing.T) {
	ctrl := gomock.NewController(t)

	icfg := ifdsmock.NewMockICFG[node, method](ctrl)
	flows := ifdsmock.NewMockFlowFunctions[node, method, fact](ctrl)
	problem := ifdsmock.NewMockIFDSTabulationProblem[node, method, fact](ctrl)

	problem.EXPECT().InterproceduralCFG().Return(icfg).Times(2)
	problem.EXPECT().FlowFunctions().Return(flows).Times(2)

	solver, err := ifds.NewSolver[node, method, fact](problem, testDomain{}, nil)
	require.NoError(t, err)
	require.NotNil(t, solver)
}

// TestNewSolver_RejectsMockedProblemWithNilICFG exercises validateProblem's
// nil-ICFG branch against a mock that deliberately returns nil, something a
// hand-rolled testProblem fixture would need a dedicated field for.
func TestNewSolver_RejectsMockedProblemWithNilICFG(t *testing.T) {
	ctrl := gomock.NewController(t)

	flows := ifdsmock.NewMockFlowFunctions[node, method, fact](ctrl)
	problem := ifdsmock.NewMockIFDSTabulationProblem[node, method, fact](ctrl)

	problem.EXPECT().InterproceduralCFG().Return(nil)
	problem.EXPECT().FlowFunctions().Return(flows)

	_, err := ifds.NewSolver[node, method, fact](problem, testDomain{}, nil)
	require.ErrorIs(t, err, ifds.ErrInvalidProblem)
}
