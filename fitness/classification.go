package fitness

import (
	"github.com/cbarrick/lgp"
	"github.com/cbarrick/lgp/task"
)

// Classification scores prog against records: for each record, it clones the
// program's zeroed registers, executes every instruction with the record's
// feature vector as input, decodes the strict argmax over the first
// NActionRegisters registers via adapter, and observes (predicted, actual)
// into an accuracy accumulator. The result, in [0, 1], is memoised onto prog
// and returned; a prog with a fitness already cached from this generation is
// returned without re-executing.
func Classification[Action comparable](
	prog *lgp.Program,
	params lgp.ProgramParams,
	records []task.Record[Action],
	adapter task.ClassificationAdapter[Action],
) float32 {
	if f, ok := prog.Fitness(); ok {
		return f
	}

	var acc Accuracy[Action]
	nActions := adapter.NActionRegisters()

	for _, record := range records {
		input := lgp.Registers(record.Features())
		result := prog.Exec(input, params)

		ties := result.ArgMax(0, nActions)
		predicted, ok := adapter.Decode(ties)

		acc.Observe(predicted, ok, record.Label())
	}

	score := acc.Score()
	prog.SetFitness(score)
	return score
}
