package lgp

import (
	"fmt"
	"sort"

	"github.com/cbarrick/lgp/rng"
)

// Population is a bounded, ordered sequence of programs. A population
// exclusively owns its programs; programs exclusively own their instructions
// and register bank.
type Population struct {
	programs []*Program
	capacity int
}

// NewPopulation returns an empty population with the given capacity.
func NewPopulation(capacity int) *Population {
	return &Population{
		programs: make([]*Program, 0, capacity),
		capacity: capacity,
	}
}

// Push appends p to the end of the population (the best end once sorted,
// see Last). It returns an error
// rather than panicking when the population is already at capacity, since a
// caller driving Push directly (as opposed to the evolutionary driver, which
// never overfills) may reach this in the ordinary course of events.
func (pop *Population) Push(p *Program) error {
	if len(pop.programs) == pop.capacity {
		return fmt.Errorf("lgp: population at capacity %d", pop.capacity)
	}
	pop.programs = append(pop.programs, p)
	return nil
}

// Pop removes and returns the program at the worst end (index 0), or nil if
// the population is empty.
func (pop *Population) Pop() *Program {
	if len(pop.programs) == 0 {
		return nil
	}
	p := pop.programs[0]
	pop.programs = pop.programs[1:]
	return p
}

// Len returns the number of programs currently held.
func (pop *Population) Len() int {
	return len(pop.programs)
}

// Capacity returns the population's fixed capacity.
func (pop *Population) Capacity() int {
	return pop.capacity
}

// Sort orders the population ascending by Program.Less: worst first, best
// last.
func (pop *Population) Sort() {
	sort.SliceStable(pop.programs, func(i, j int) bool {
		return pop.programs[i].Less(pop.programs[j])
	})
}

// First returns the worst program (index 0), or nil if the population is
// empty.
func (pop *Population) First() *Program {
	if len(pop.programs) == 0 {
		return nil
	}
	return pop.programs[0]
}

// Last returns the best program, or nil if the population is empty.
func (pop *Population) Last() *Program {
	if len(pop.programs) == 0 {
		return nil
	}
	return pop.programs[len(pop.programs)-1]
}

// Benchmark returns the worst, median and best programs in the population,
// assuming the population has already been sorted. The median is taken at
// index floor(len/2).
func (pop *Population) Benchmark() (worst, median, best *Program) {
	n := len(pop.programs)
	if n == 0 {
		return nil, nil, nil
	}
	return pop.programs[0], pop.programs[n/2], pop.programs[n-1]
}

// Programs returns the backing slice for iteration. Callers that only read
// fitness/instructions should treat the result as read-only; Programs and
// MutPrograms return the same slice, and the split just documents intent
// at call sites between immutable and mutable iteration.
func (pop *Population) Programs() []*Program {
	return pop.programs
}

// MutPrograms returns the backing slice for in-place mutation of individual
// programs (e.g. re-scoring fitness during evaluation).
func (pop *Population) MutPrograms() []*Program {
	return pop.programs
}

// Sample returns k distinct programs chosen uniformly at random without
// replacement, using r. It panics if k exceeds the population's length.
func (pop *Population) Sample(r *rng.Source, k int) []*Program {
	indices := r.SampleIndices(len(pop.programs), k)
	out := make([]*Program, k)
	for i, idx := range indices {
		out[i] = pop.programs[idx]
	}
	return out
}
