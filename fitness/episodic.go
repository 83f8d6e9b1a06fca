package fitness

import (
	"sort"

	"github.com/cbarrick/lgp"
	"github.com/cbarrick/lgp/rng"
	"github.com/cbarrick/lgp/task"
)

// Episodic scores prog by running n_runs episodes of up to
// max_episode_length steps each against env, executing prog on the current
// environment state each step, decoding an action from the action-register
// range with adapter's random tie-break policy, and accumulating reward
// until a terminal step or the step budget is exhausted. The reported
// fitness is the median of the per-episode cumulative rewards: the scores
// are sorted ascending and the element at index len/2 is taken directly. As
// with Classification, a prog with a fitness already cached from this
// generation is returned without re-running any episodes.
func Episodic[Action comparable](
	prog *lgp.Program,
	params lgp.ProgramParams,
	env task.Environment[Action],
	adapter task.ReinforcementAdapter[Action],
	r *rng.Source,
	nRuns, maxEpisodeLength int,
) float32 {
	if f, ok := prog.Fitness(); ok {
		return f
	}

	nActions := adapter.NActionRegisters()
	scores := make([]float64, nRuns)

	env.Init()
	for run := 0; run < nRuns; run++ {
		var score float32

		for step := 0; step < maxEpisodeLength; step++ {
			input := lgp.Registers(env.State())
			result := prog.Exec(input, params)

			ties := result.ArgMax(0, nActions)
			action := adapter.DecodeAction(r, ties)

			outcome := env.Act(action)
			score += outcome.Reward

			if outcome.Terminal {
				break
			}
		}

		scores[run] = float64(score)
		env.Reset()
	}
	env.Finish()

	sort.Float64s(scores)
	median := float32(scores[len(scores)/2])

	prog.SetFitness(median)
	return median
}
