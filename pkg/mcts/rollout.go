package mcts

import (
	"fmt"
	"math/rand"
)

// RandomRolloutEvaluator is the concrete Evaluator that estimates a state's
// value by averaging the terminal returns of NRollouts independent uniform
// playouts, and that reports a uniform prior over legal actions (or the
// declared chance distribution, on chance nodes).
type RandomRolloutEvaluator struct {
	NRollouts int
	rng       *rand.Rand
}

// NewRandomRolloutEvaluator builds an evaluator that averages nRollouts
// independent playouts, driven by the given RNG. An nRollouts below 1 is
// raised to 1.
func NewRandomRolloutEvaluator(nRollouts int, rng *rand.Rand) *RandomRolloutEvaluator {
	if nRollouts < 1 {
		nRollouts = 1
	}
	return &RandomRolloutEvaluator{NRollouts: nRollouts, rng: rng}
}

func (e *RandomRolloutEvaluator) Evaluate(state State) ([]float64, error) {
	var result []float64
	for i := 0; i < e.NRollouts; i++ {
		returns, err := e.playout(state)
		if err != nil {
			return nil, err
		}
		if result == nil {
			result = returns
			continue
		}
		if len(returns) != len(result) {
			return nil, fmt.Errorf("mcts: rollout returns length %d does not match previous length %d", len(returns), len(result))
		}
		for i := range result {
			result[i] += returns[i]
		}
	}
	for i := range result {
		result[i] /= float64(e.NRollouts)
	}
	return result, nil
}

func (e *RandomRolloutEvaluator) playout(state State) ([]float64, error) {
	working := state.Clone()
	for !working.IsTerminal() {
		if working.IsChanceNode() {
			outcomes := working.ChanceOutcomes()
			action, err := sampleChanceOutcome(outcomes, e.rng.Float64())
			if err != nil {
				return nil, err
			}
			working.ApplyAction(action)
			continue
		}

		actions := working.LegalActions()
		if len(actions) == 0 {
			return nil, fmt.Errorf("mcts: rollout reached non-terminal state with no legal actions")
		}
		working.ApplyAction(actions[e.rng.Intn(len(actions))])
	}
	return working.Returns(), nil
}

func (e *RandomRolloutEvaluator) Prior(state State) ([]ActionProb, error) {
	if state.IsChanceNode() {
		return state.ChanceOutcomes(), nil
	}

	actions := state.LegalActions()
	if len(actions) == 0 {
		return nil, fmt.Errorf("mcts: Prior called on state with no legal actions")
	}
	prior := make([]ActionProb, len(actions))
	p := 1.0 / float64(len(actions))
	for i, a := range actions {
		prior[i] = ActionProb{Action: a, Probability: p}
	}
	return prior, nil
}
