package lgp

import (
	"testing"

	"github.com/cbarrick/lgp/rng"
)

func scoredProgram(fitness float32) *Program {
	p := &Program{}
	p.SetFitness(fitness)
	return p
}

func TestPopulationPushAndCapacity(t *testing.T) {
	pop := NewPopulation(2)
	if err := pop.Push(scoredProgram(1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := pop.Push(scoredProgram(2)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := pop.Push(scoredProgram(3)); err == nil {
		t.Fatal("expected an error pushing past capacity")
	}
	if pop.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", pop.Len())
	}
}

func TestPopulationPopRemovesWorst(t *testing.T) {
	pop := NewPopulation(3)
	pop.Push(scoredProgram(1))
	pop.Push(scoredProgram(2))
	pop.Push(scoredProgram(3))
	pop.Sort()

	worst := pop.Pop()
	f, _ := worst.Fitness()
	if f != 1 {
		t.Fatalf("Pop() returned fitness %v, want 1", f)
	}
	if pop.Len() != 2 {
		t.Fatalf("Len() after Pop = %d, want 2", pop.Len())
	}
}

func TestPopulationPopOnEmptyReturnsNil(t *testing.T) {
	pop := NewPopulation(1)
	if pop.Pop() != nil {
		t.Fatal("expected nil from Pop on an empty population")
	}
}

func TestPopulationSortAscending(t *testing.T) {
	pop := NewPopulation(4)
	pop.Push(scoredProgram(3))
	pop.Push(scoredProgram(1))
	pop.Push(scoredProgram(4))
	pop.Push(scoredProgram(2))
	pop.Sort()

	programs := pop.Programs()
	for i := 1; i < len(programs); i++ {
		f1, _ := programs[i-1].Fitness()
		f2, _ := programs[i].Fitness()
		if f1 > f2 {
			t.Fatalf("population not ascending at index %d: %v > %v", i, f1, f2)
		}
	}
}

func TestPopulationFirstAndLast(t *testing.T) {
	pop := NewPopulation(3)
	pop.Push(scoredProgram(5))
	pop.Push(scoredProgram(1))
	pop.Push(scoredProgram(3))
	pop.Sort()

	f, _ := pop.First().Fitness()
	if f != 1 {
		t.Fatalf("First() fitness = %v, want 1", f)
	}
	f, _ = pop.Last().Fitness()
	if f != 5 {
		t.Fatalf("Last() fitness = %v, want 5", f)
	}
}

func TestPopulationBenchmark(t *testing.T) {
	pop := NewPopulation(5)
	for _, f := range []float32{5, 1, 3, 2, 4} {
		pop.Push(scoredProgram(f))
	}
	pop.Sort()

	worst, median, best := pop.Benchmark()
	wf, _ := worst.Fitness()
	mf, _ := median.Fitness()
	bf, _ := best.Fitness()
	if wf != 1 || mf != 3 || bf != 5 {
		t.Fatalf("Benchmark() = (%v, %v, %v), want (1, 3, 5)", wf, mf, bf)
	}
}

func TestPopulationBenchmarkEmpty(t *testing.T) {
	pop := NewPopulation(1)
	worst, median, best := pop.Benchmark()
	if worst != nil || median != nil || best != nil {
		t.Fatal("expected all nil from Benchmark on an empty population")
	}
}

func TestPopulationSampleDistinct(t *testing.T) {
	pop := NewPopulation(5)
	for _, f := range []float32{1, 2, 3, 4, 5} {
		pop.Push(scoredProgram(f))
	}

	r := rng.New(1)
	sample := pop.Sample(r, 3)
	if len(sample) != 3 {
		t.Fatalf("len(sample) = %d, want 3", len(sample))
	}
	seen := make(map[*Program]bool)
	for _, p := range sample {
		if seen[p] {
			t.Fatal("Sample returned a duplicate program")
		}
		seen[p] = true
	}
}
