// Package lgp implements the register-machine core of a linear genetic
// programming engine: fixed-length register banks, four-field instructions,
// programs built from them, and a bounded, ordered population of programs.
//
// The package is deliberately representation-only. It knows nothing about
// classification or reinforcement learning, CSV files, or environments;
// those live in the task and fitness packages, which are generic over the
// action type a concrete task decodes register state into. lgp only knows
// how to generate, execute, mutate and cross over programs, and how to keep
// a population sorted and refilled.
package lgp
