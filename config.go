// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2023 HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package ifds

// Phase selects whether the solver is doing its source-agnostic first pass
// or its source-context-tagged second pass. See Solver.SetSolverPhase.
type Phase int

const (
	// PhaseFirst propagates abstractions ignoring source identity.
	PhaseFirst Phase = iota
	// PhaseSecond re-propagates with source contexts attached via
	// AbstractionDomain.DeriveSourceContext.
	PhaseSecond
)

func (p Phase) String() string {
	switch p {
	case PhaseFirst:
		return "first"
	case PhaseSecond:
		return "second"
	default:
		return "unknown"
	}
}

// PredecessorShorteningMode is reserved configuration carried over from the
// system this solver's design is based on. It has no effect in this core;
// see the "Open questions" section of the design notes for why it's kept
// as inert configuration rather than removed or guessed at.
type PredecessorShorteningMode int

const (
	// PredecessorShorteningNone is the only mode this core implements:
	// no predecessor shortening occurs.
	PredecessorShorteningNone PredecessorShorteningMode = iota
)

// Config holds the solver's tunable limits and toggles. Use NewConfig to
// get one populated with defaults, then the SetX methods to adjust it.
type Config struct {
	maxCalleesPerCallSite     int
	maxJoinPointAbstractions  int
	maxAbstractionPathLength  int
	followReturnsPastSeeds    bool
	predecessorShorteningMode PredecessorShorteningMode
	parallelism               int
}

// NewConfig returns a Config populated with the spec's defaults:
// MaxCalleesPerCallSite=75, MaxJoinPointAbstractions=-1 (reserved, no
// effect), MaxAbstractionPathLength=100, FollowReturnsPastSeeds=false.
func NewConfig() *Config {
	return &Config{
		maxCalleesPerCallSite:    75,
		maxJoinPointAbstractions: -1,
		maxAbstractionPathLength: 100,
	}
}

// SetMaxCalleesPerCallSite bounds how many concrete callees a single call
// site may have before the solver skips its call-flow and end-summary
// processing entirely (call-to-return processing still happens). A
// negative value disables the limit.
func (c *Config) SetMaxCalleesPerCallSite(n int) *Config {
	c.maxCalleesPerCallSite = n
	return c
}

// MaxCalleesPerCallSite returns the current limit.
func (c *Config) MaxCalleesPerCallSite() int { return c.maxCalleesPerCallSite }

// SetMaxJoinPointAbstractions is reserved for a future join-point
// abstraction limit; it has no effect in this core.
func (c *Config) SetMaxJoinPointAbstractions(n int) *Config {
	c.maxJoinPointAbstractions = n
	return c
}

// MaxJoinPointAbstractions returns the reserved, currently-unused limit.
func (c *Config) MaxJoinPointAbstractions() int { return c.maxJoinPointAbstractions }

// SetMaxAbstractionPathLength bounds how long a fact's derivation chain may
// be before the solver drops it instead of scheduling it for processing. A
// negative value disables the limit.
func (c *Config) SetMaxAbstractionPathLength(n int) *Config {
	c.maxAbstractionPathLength = n
	return c
}

// MaxAbstractionPathLength returns the current limit.
func (c *Config) MaxAbstractionPathLength() int { return c.maxAbstractionPathLength }

// SetFollowReturnsPastSeeds enables propagation of unbalanced returns: a
// return from a method reached with the zero fact for which no caller
// context was ever recorded.
func (c *Config) SetFollowReturnsPastSeeds(v bool) *Config {
	c.followReturnsPastSeeds = v
	return c
}

// FollowReturnsPastSeeds returns the current setting.
func (c *Config) FollowReturnsPastSeeds() bool { return c.followReturnsPastSeeds }

// SetPredecessorShorteningMode is reserved configuration; it has no effect
// in this core. See PredecessorShorteningMode.
func (c *Config) SetPredecessorShorteningMode(m PredecessorShorteningMode) *Config {
	c.predecessorShorteningMode = m
	return c
}

// PredecessorShorteningMode returns the reserved, currently-unused mode.
func (c *Config) PredecessorShorteningMode() PredecessorShorteningMode {
	return c.predecessorShorteningMode
}

// SetParallelism overrides the worklist executor's pool size. It is read
// once, when NewSolver creates the executor; a non-positive value falls
// back to max(1, cores-1) there.
func (c *Config) SetParallelism(n int) *Config {
	c.parallelism = n
	return c
}

// Parallelism returns the configured pool size, or 0 if none was set.
func (c *Config) Parallelism() int { return c.parallelism }
