// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2023 HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package ifds

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// ErrInvalidProblem is wrapped into the error NewSolver returns when the
// supplied IFDSTabulationProblem is missing required pieces. Configuration
// errors are fatal and surfaced at construction time, before any
// propagation begins.
var ErrInvalidProblem = errors.New("invalid IFDS tabulation problem")

// validateProblem collects every configuration problem it can find, rather
// than stopping at the first one, matching the teacher codebase's
// go-multierror idiom for aggregating independent validation failures.
func validateProblem[N comparable, M comparable, D comparable](problem IFDSTabulationProblem[N, M, D], domain AbstractionDomain[D]) error {
	var result *multierror.Error
	if problem == nil {
		result = multierror.Append(result, fmt.Errorf("%w: problem is nil", ErrInvalidProblem))
		return result.ErrorOrNil()
	}
	if problem.InterproceduralCFG() == nil {
		result = multierror.Append(result, fmt.Errorf("%w: InterproceduralCFG() returned nil", ErrInvalidProblem))
	}
	if problem.FlowFunctions() == nil {
		result = multierror.Append(result, fmt.Errorf("%w: FlowFunctions() returned nil", ErrInvalidProblem))
	}
	if domain == nil {
		result = multierror.Append(result, fmt.Errorf("%w: AbstractionDomain is nil", ErrInvalidProblem))
	}
	return result.ErrorOrNil()
}

// SolverFailure wraps the first unhandled failure captured from a worklist
// task, such as a recovered panic raised inside a flow function.
// Per the spec, nothing is retried and the analysis is abandoned once this
// occurs, since IFDS tabulation is deterministic given its flow functions
// and so retrying cannot help.
type SolverFailure struct {
	Direction Direction
	Err       error
}

func (f *SolverFailure) Error() string {
	return fmt.Sprintf("ifds solver failure (%s direction): %s", f.Direction, f.Err)
}

func (f *SolverFailure) Unwrap() error { return f.Err }

// TerminationReason describes why a call to Solver.Solve returned.
type TerminationReason int

const (
	// TerminatedNormally means the worklist quiesced with no seeded kill
	// and no captured failure.
	TerminatedNormally TerminationReason = iota
	// TerminatedByForce means ForceTerminate was called.
	TerminatedByForce
	// TerminatedByFailure means a task failure was captured; Solve
	// returns a *SolverFailure in this case.
	TerminatedByFailure
)

func (r TerminationReason) String() string {
	switch r {
	case TerminatedNormally:
		return "normal"
	case TerminatedByForce:
		return "forced"
	case TerminatedByFailure:
		return "failure"
	default:
		return "unknown"
	}
}
