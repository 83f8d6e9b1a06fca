package lgp

import "github.com/cbarrick/lgp/rng"

// Mode selects the operand space an instruction's Src index is drawn from.
type Mode int

const (
	// External reads the operand from the current task input's feature
	// vector.
	External Mode = iota
	// Internal reads the operand from the program's own register bank.
	Internal
)

// Executable combines the current value of a destination register with an
// operand value, returning the new destination value. Protected operations
// (e.g. divide) must substitute a fixed constant rather than produce NaN or
// Inf; that substitution is the executable's own responsibility, since only
// the task adapter knows what constant is appropriate for its domain.
type Executable func(dst, src float32) float32

// Instruction is a single (op, mode, src, dst) tuple. Op is an index into
// the task adapter's executable slice rather than a function value, so that
// instructions remain structurally comparable and orderable: two builds
// agree on instruction identity as long as they construct their executable
// slice in the same order (spec'd in the adapter's executable set contract).
type Instruction struct {
	Op   int
	Mode Mode
	Src  int
	Dst  int
}

// InstructionParams bounds the random fields drawn for a generated or
// mutated instruction.
type InstructionParams struct {
	NActionRegisters int
	NInputRegisters  int
	NExecutables     int
	Modes            []Mode
}

// registerBankLen is the total register count R = n_action + n_input.
func (p InstructionParams) registerBankLen() int {
	return p.NActionRegisters + p.NInputRegisters
}

// operandLen returns the length of the operand space selected by mode.
func (p InstructionParams) operandLen(mode Mode) int {
	if mode == External {
		return p.NInputRegisters
	}
	return p.registerBankLen()
}

// GenerateInstruction draws a uniformly random op, mode, dst and src.
func GenerateInstruction(r *rng.Source, p InstructionParams) Instruction {
	mode := p.Modes[r.Intn(len(p.Modes))]
	return Instruction{
		Op:   r.Intn(p.NExecutables),
		Mode: mode,
		Src:  r.Intn(p.operandLen(mode)),
		Dst:  r.Intn(p.registerBankLen()),
	}
}

// Apply reads the operand at Src from input (External) or regs (Internal),
// combines it with regs[Dst] via exec[Op], and writes the result back to
// regs[Dst]. Indices are taken modulo their operand space's length, so Apply
// never panics even against a differently-sized input than the instruction
// was generated against.
func (i Instruction) Apply(regs, input Registers, exec []Executable) {
	var operand float32
	if i.Mode == External {
		operand = input.Get(i.Src % input.Len())
	} else {
		operand = regs.Get(i.Src % regs.Len())
	}
	dst := i.Dst % regs.Len()
	regs.Update(dst, exec[i.Op](regs.Get(dst), operand))
}

// Mutate returns a copy of i with exactly one of its four fields redrawn
// uniformly at random.
func (i Instruction) Mutate(r *rng.Source, p InstructionParams) Instruction {
	switch r.Intn(4) {
	case 0:
		i.Op = r.Intn(p.NExecutables)
	case 1:
		i.Mode = p.Modes[r.Intn(len(p.Modes))]
	case 2:
		i.Src = r.Intn(p.operandLen(i.Mode))
	case 3:
		i.Dst = r.Intn(p.registerBankLen())
	}
	return i
}

// Equal reports structural equality of the 4-tuple.
func (i Instruction) Equal(other Instruction) bool {
	return i == other
}

// Less imposes a total order over the 4-tuple (Op, Mode, Src, Dst), used to
// make programs carrying identical instructions deterministically orderable
// in tests.
func (i Instruction) Less(other Instruction) bool {
	if i.Op != other.Op {
		return i.Op < other.Op
	}
	if i.Mode != other.Mode {
		return i.Mode < other.Mode
	}
	if i.Src != other.Src {
		return i.Src < other.Src
	}
	return i.Dst < other.Dst
}
