// Package algorithm implements the generational evolutionary loop, init,
// evaluate, rank, select, breed, that drives a lgp.Population toward higher
// fitness, plus the HyperParameters and EventHooks records that configure it.
package algorithm

import (
	"fmt"

	"github.com/cbarrick/lgp"
)

// HyperParameters configures one run of Execute. It is passed by value; the
// driver never mutates it.
type HyperParameters struct {
	PopulationSize int
	Gap            float32
	NMutations     float32
	NCrossovers    float32
	MaxGenerations int
	ProgramParams  lgp.ProgramParams
}

// Validate reports a configuration error for any hyperparameter outside its
// valid range. It is the caller-facing check, run once before Execute starts
// the loop; it never panics. Inside the loop, Execute additionally panics if
// gap is outside [0, 1] at selection or if the floored mutation and
// crossover counts exceed the breeding shortfall.
func (h HyperParameters) Validate() error {
	switch {
	case h.PopulationSize < 2:
		return fmt.Errorf("algorithm: population_size must be >= 2, got %d", h.PopulationSize)
	case h.Gap < 0 || h.Gap > 1:
		return fmt.Errorf("algorithm: gap must be in [0, 1], got %v", h.Gap)
	case h.NMutations < 0 || h.NMutations > 1:
		return fmt.Errorf("algorithm: n_mutations must be in [0, 1], got %v", h.NMutations)
	case h.NCrossovers < 0 || h.NCrossovers > 1:
		return fmt.Errorf("algorithm: n_crossovers must be in [0, 1], got %v", h.NCrossovers)
	case h.NMutations+h.NCrossovers > 1:
		return fmt.Errorf("algorithm: n_mutations + n_crossovers must be <= 1, got %v", h.NMutations+h.NCrossovers)
	case h.MaxGenerations < 1:
		return fmt.Errorf("algorithm: max_generations must be >= 1, got %d", h.MaxGenerations)
	}
	return nil
}
