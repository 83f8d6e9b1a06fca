package lgp

import "github.com/cbarrick/lgp/rng"

// ProgramParams bounds program generation and gives Exec/Mutate/Crossover
// the structural parameters (register-bank shape, executable set, allowed
// modes) they need. It deliberately does not carry the task's dataset or
// environment: a program is lent its inputs only for the duration of one
// evaluator call and never owns them, so a population of programs can be
// cloned, mutated and crossed over with no dataset in scope at all.
type ProgramParams struct {
	MaxInstructions  int
	NActionRegisters int
	NInputRegisters  int
	Executables      []Executable
	Modes            []Mode
}

func (p ProgramParams) instructionParams() InstructionParams {
	return InstructionParams{
		NActionRegisters: p.NActionRegisters,
		NInputRegisters:  p.NInputRegisters,
		NExecutables:     len(p.Executables),
		Modes:            p.Modes,
	}
}

func (p ProgramParams) registerBankLen() int {
	return p.NActionRegisters + p.NInputRegisters
}

// Program is an ordered sequence of instructions, its own register bank, and
// an optional memoised fitness score.
type Program struct {
	Instructions []Instruction
	Registers    Registers
	fitness      *float32
}

// GenerateProgram draws a uniformly random instruction count in
// [0, MaxInstructions] and generates that many instructions, with a
// zero-initialized register bank sized to NActionRegisters+NInputRegisters.
func GenerateProgram(r *rng.Source, p ProgramParams) *Program {
	n := r.Intn(p.MaxInstructions + 1)
	instructions := make([]Instruction, n)
	ip := p.instructionParams()
	for i := range instructions {
		instructions[i] = GenerateInstruction(r, ip)
	}
	return &Program{
		Instructions: instructions,
		Registers:    NewRegisters(p.registerBankLen()),
	}
}

// Exec clones the program's register bank, applies every instruction in
// order against input, and returns the resulting bank. It never mutates the
// program itself: calling Exec twice on the same input yields identical
// results and leaves Registers and the cached fitness untouched.
func (pr *Program) Exec(input Registers, p ProgramParams) Registers {
	regs := pr.Registers.Clone()
	for _, instr := range pr.Instructions {
		instr.Apply(regs, input, p.Executables)
	}
	return regs
}

// Clone returns a deep copy of the program, including its cached fitness.
func (pr *Program) Clone() *Program {
	instructions := make([]Instruction, len(pr.Instructions))
	copy(instructions, pr.Instructions)

	clone := &Program{
		Instructions: instructions,
		Registers:    pr.Registers.Clone(),
	}
	if pr.fitness != nil {
		f := *pr.fitness
		clone.fitness = &f
	}
	return clone
}

// Mutate returns a clone of pr with one uniformly chosen instruction
// replaced by its Instruction.Mutate, and the clone's cached fitness
// cleared. A program with zero instructions is cloned unchanged.
func (pr *Program) Mutate(r *rng.Source, p ProgramParams) *Program {
	clone := pr.Clone()
	if len(clone.Instructions) == 0 {
		return clone
	}
	idx := r.Intn(len(clone.Instructions))
	clone.Instructions[idx] = clone.Instructions[idx].Mutate(r, p.instructionParams())
	clone.ClearFitness()
	return clone
}

// TwoPointCrossover produces two children by swapping the [i1,i2) segment
// of pr with the [j1,j2) segment of other. Cut points are chosen uniformly
// over valid index pairs for each parent independently; if either parent has
// fewer than two instructions, its swapped segment may be empty. Children
// exceeding maxInstructions are truncated from the tail. Both children start
// with a fresh, cleared fitness.
func (pr *Program) TwoPointCrossover(r *rng.Source, other *Program, maxInstructions int) (childA, childB *Program) {
	i1, i2 := r.CutPoints(len(pr.Instructions))
	j1, j2 := r.CutPoints(len(other.Instructions))

	a := spliceSegment(pr.Instructions, i1, i2, other.Instructions[j1:j2])
	b := spliceSegment(other.Instructions, j1, j2, pr.Instructions[i1:i2])

	a = truncate(a, maxInstructions)
	b = truncate(b, maxInstructions)

	childA = &Program{Instructions: a, Registers: pr.Registers.Clone()}
	childB = &Program{Instructions: b, Registers: other.Registers.Clone()}
	return childA, childB
}

// spliceSegment returns a new instruction slice equal to base with the
// [lo,hi) segment replaced by replacement. Every instruction in the result
// comes from either base or replacement; no novel instruction is invented.
func spliceSegment(base []Instruction, lo, hi int, replacement []Instruction) []Instruction {
	out := make([]Instruction, 0, len(base)-(hi-lo)+len(replacement))
	out = append(out, base[:lo]...)
	out = append(out, replacement...)
	out = append(out, base[hi:]...)
	return out
}

func truncate(instructions []Instruction, maxInstructions int) []Instruction {
	if len(instructions) > maxInstructions {
		return instructions[:maxInstructions]
	}
	return instructions
}

// Fitness returns the memoised fitness score and whether it has been set.
func (pr *Program) Fitness() (float32, bool) {
	if pr.fitness == nil {
		return 0, false
	}
	return *pr.fitness, true
}

// SetFitness memoises f as the program's fitness for this generation.
func (pr *Program) SetFitness(f float32) {
	pr.fitness = &f
}

// ClearFitness invalidates the memoised fitness. It is a required side
// effect of every structural-change operator (Mutate, TwoPointCrossover).
func (pr *Program) ClearFitness() {
	pr.fitness = nil
}

// Less orders programs by cached fitness, with an unevaluated program
// (fitness == None) sorting below every evaluated program, and two
// unevaluated programs comparing equal (neither less than the other). The
// driver always evaluates before sorting, so this case only matters for
// tests that construct unevaluated programs directly.
func (pr *Program) Less(other *Program) bool {
	f1, ok1 := pr.Fitness()
	f2, ok2 := other.Fitness()
	switch {
	case !ok1 && !ok2:
		return false
	case !ok1:
		return true
	case !ok2:
		return false
	default:
		return f1 < f2
	}
}
