package algorithm

import (
	"fmt"

	"github.com/cbarrick/lgp"
	"github.com/cbarrick/lgp/rng"
)

// Evaluator scores one program. It is expected to be one of the memoising
// fitness.Classification / fitness.Episodic instantiations (or a test
// double): Execute calls it only on programs whose fitness is unset, skips
// the rest itself, and stores each result with SetFitness.
type Evaluator func(*lgp.Program) float32

// Execute runs the generational loop to completion: fill the population to
// capacity, then repeat evaluate/rank/select/breed for hp.MaxGenerations
// generations, invoking the matching hook after each step.
//
// hp is validated once before the loop starts; an invalid HyperParameters
// value returns a plain configuration error. Once the loop is running, a
// hook returning an error aborts the run immediately and that error is
// returned wrapped; other failure conditions (sorted-before-selection,
// selection/breed bookkeeping) are implementation invariants and panic
// rather than return an error, since they can only be violated by a bug in
// this package.
func Execute(r *rng.Source, hp HyperParameters, eval Evaluator, hooks EventHooks) (*lgp.Population, error) {
	if err := hp.Validate(); err != nil {
		return nil, err
	}

	pop := lgp.NewPopulation(hp.PopulationSize)
	for pop.Len() < pop.Capacity() {
		if err := pop.Push(lgp.GenerateProgram(r, hp.ProgramParams)); err != nil {
			panic(fmt.Sprintf("algorithm: init: %v", err))
		}
	}
	if err := call(hooks.AfterInit, "init", pop); err != nil {
		return nil, err
	}

	for gen := 0; gen < hp.MaxGenerations; gen++ {
		evaluateGeneration(pop, eval)
		if err := call(hooks.AfterEvaluate, "evaluate", pop); err != nil {
			return nil, err
		}

		pop.Sort()
		if err := call(hooks.AfterRank, "rank", pop); err != nil {
			return nil, err
		}

		selectSurvivors(pop, hp.Gap)
		if err := call(hooks.AfterSelection, "selection", pop); err != nil {
			return nil, err
		}

		breed(r, pop, hp)
		if err := call(hooks.AfterBreed, "breed", pop); err != nil {
			return nil, err
		}
	}

	return pop, nil
}

// evaluateGeneration scores every program whose fitness is not already
// memoised. Evaluation order is unspecified by the spec and has no bearing
// on the result, so this walks the population front to back.
func evaluateGeneration(pop *lgp.Population, eval Evaluator) {
	for _, p := range pop.MutPrograms() {
		if _, ok := p.Fitness(); ok {
			continue
		}
		p.SetFitness(eval(p))
	}
}

// selectSurvivors pops from the worst end (index 0, since Population sorts
// ascending) until the population's length matches floor((1-gap)*capacity).
// It asserts the population is sorted first and that gap is in range; both
// can only fail from a bug elsewhere in this package, since HyperParameters
// is already range-checked by Validate.
func selectSurvivors(pop *lgp.Population, gap float32) {
	if gap < 0 || gap > 1 {
		panic(fmt.Sprintf("algorithm: selection: gap out of range: %v", gap))
	}
	if !isSorted(pop) {
		panic("algorithm: selection: population is not sorted ascending by fitness")
	}

	target := int(float32(pop.Capacity()) * (1 - gap))
	for pop.Len() > target {
		pop.Pop()
	}
}

// breed refills pop to capacity. It first spends n_mut_todo and n_cross_todo,
// floored fractional counts of the post-selection shortfall, on crossover
// and mutation children sampled from the surviving population, then fills
// whatever remains with clones of uniformly sampled survivors.
func breed(r *rng.Source, pop *lgp.Population, hp HyperParameters) {
	survivors := append([]*lgp.Program(nil), pop.Programs()...)
	if len(survivors) == 0 {
		panic("algorithm: breed: no survivors to sample from")
	}

	remaining := pop.Capacity() - pop.Len()
	nMutTodo := int(hp.NMutations * float32(remaining))
	nCrossTodo := int(hp.NCrossovers * float32(remaining))
	if nMutTodo+nCrossTodo > remaining {
		panic(fmt.Sprintf("algorithm: breed: n_mut_todo(%d) + n_cross_todo(%d) > remaining(%d)", nMutTodo, nCrossTodo, remaining))
	}

	maxInstructions := hp.ProgramParams.MaxInstructions

	for nMutTodo+nCrossTodo > 0 {
		pa, pb := sampleTwoDistinct(r, survivors)

		if nCrossTodo > 0 {
			childA, childB := pa.TwoPointCrossover(r, pb, maxInstructions)
			child := childA
			if r.Intn(2) == 1 {
				child = childB
			}
			mustPush(pop, child)
			nCrossTodo--
		}

		if nMutTodo > 0 {
			parent := pa
			if r.Intn(2) == 1 {
				parent = pb
			}
			mustPush(pop, parent.Clone().Mutate(r, hp.ProgramParams))
			nMutTodo--
		}
	}

	for pop.Len() < pop.Capacity() {
		idx := r.Intn(len(survivors))
		mustPush(pop, survivors[idx].Clone())
	}
}

// sampleTwoDistinct returns two distinct elements of survivors chosen
// uniformly at random. It panics if fewer than two survivors are available,
// since breed is only ever invoked after selection leaves at least two
// survivors (the minimum population size is 2).
func sampleTwoDistinct(r *rng.Source, survivors []*lgp.Program) (*lgp.Program, *lgp.Program) {
	if len(survivors) < 2 {
		panic("algorithm: breed: fewer than two survivors to sample from")
	}
	indices := r.SampleIndices(len(survivors), 2)
	return survivors[indices[0]], survivors[indices[1]]
}

// mustPush pushes p onto pop, panicking on capacity overflow: breed never
// pushes past pop.Capacity(), so a failure here is an implementation bug.
func mustPush(pop *lgp.Population, p *lgp.Program) {
	if err := pop.Push(p); err != nil {
		panic(fmt.Sprintf("algorithm: breed: %v", err))
	}
}

// isSorted reports whether pop's programs are ascending by Program.Less.
func isSorted(pop *lgp.Population) bool {
	programs := pop.Programs()
	for i := 1; i < len(programs); i++ {
		if programs[i].Less(programs[i-1]) {
			return false
		}
	}
	return true
}
