package mcts

import "fmt"

// sampleChanceOutcome picks an outcome from a declared chance distribution
// using a linear CDF scan over a single uniform draw in [0, 1). A scan can,
// under floating-point rounding, walk past the last outcome without the
// running sum ever reaching the draw; rather than index out of range, this
// clamps to the last outcome.
func sampleChanceOutcome(outcomes []ActionProb, draw float64) (Action, error) {
	if len(outcomes) == 0 {
		return NoAction, fmt.Errorf("mcts: chance node declared no outcomes")
	}

	sum := 0.0
	for _, outcome := range outcomes {
		sum += outcome.Probability
		if draw < sum {
			return outcome.Action, nil
		}
	}
	// Clamp: floating point rounding left mass unaccounted for.
	return outcomes[len(outcomes)-1].Action, nil
}
