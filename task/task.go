// Package task defines the capability boundary between the evolutionary
// engine and a concrete problem: dimensionality, the executable op pool, and
// (for classification) strict argmax decoding or (for reinforcement
// learning) environment stepping with random tie-break decoding.
//
// It is a small trait-like boundary implemented by the caller's concrete
// type and never inspected by the engine, generic over the task's Action
// type since a register-machine program's decoded output is a label or an
// action index rather than a single float64 fitness.
package task

import (
	"github.com/cbarrick/lgp"
	"github.com/cbarrick/lgp/rng"
)

// Adapter exposes the shape every task must provide: the op pool used for
// instruction generation, the permissible operand modes, and the register
// bank's action/input partition.
type Adapter[Action comparable] interface {
	Executables() []lgp.Executable
	Modes() []lgp.Mode
	NActionRegisters() int
	NInputRegisters() int
}

// Record is one labelled input to a classification task: a feature vector
// and the ground-truth label.
type Record[Action any] interface {
	Features() []float32
	Label() Action
}

// ClassificationAdapter decodes a set of tied argmax indices into an action
// under the "strict" policy: ambiguous ties (more than one index tied for
// the max) decode to ok == false, counted as a misclassification rather than
// an error.
type ClassificationAdapter[Action comparable] interface {
	Adapter[Action]
	Decode(tiedIndices []int) (action Action, ok bool)
}

// StepResult is the outcome of one environment step. The engine accumulates
// Reward identically whether or not Terminal is set; Terminal only
// short-circuits the episode loop.
type StepResult struct {
	State    []float32
	Reward   float32
	Terminal bool
}

// Environment is an opaque, mutable RL environment handle. It is not safe
// for concurrent use: exactly one program evaluation mutates it at a time.
type Environment[Action comparable] interface {
	Init()
	Reset()
	State() []float32
	Act(action Action) StepResult
	Finish()
}

// ReinforcementAdapter decodes a set of tied argmax indices into an action
// under the "random tie-break" policy, and maps a decoded action back to its
// register index for bookkeeping.
type ReinforcementAdapter[Action comparable] interface {
	Adapter[Action]
	DecodeAction(r *rng.Source, tiedIndices []int) Action
	ActionIndex(a Action) int
}
