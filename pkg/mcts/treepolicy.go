package mcts

import (
	"fmt"
	"math"
	"math/rand"
)

// applyTreePolicy descends from root to a frontier node, expanding exactly
// one frontier per call. It returns the game state reached at the frontier
// and the visit path (root through frontier, inclusive) used by Backup.
// Memory accounting for newly-allocated Children slices is added to
// memoryUsed.
func applyTreePolicy(
	root *SearchNode,
	state State,
	evaluator Evaluator,
	uctC float64,
	rng *rand.Rand,
	memoryUsed *int64,
) (State, []*SearchNode, error) {
	visitPath := make([]*SearchNode, 0, 64)
	visitPath = append(visitPath, root)

	working := state.Clone()
	current := root

	for !working.IsTerminal() && current.ExploreCount > 0 {
		if len(current.Children) == 0 {
			if err := expand(current, working, evaluator, rng, memoryUsed); err != nil {
				return nil, nil, err
			}
		}

		chosen, err := selectChild(current, working, uctC, rng)
		if err != nil {
			return nil, nil, err
		}

		working.ApplyAction(chosen.Action)
		current = chosen
		visitPath = append(visitPath, current)
	}

	return working, visitPath, nil
}

// expand obtains the prior distribution from the evaluator, shuffles it to
// break move-generation-order bias, and creates one child per
// (action, prior) pair carrying the state's current player.
func expand(node *SearchNode, state State, evaluator Evaluator, rng *rand.Rand, memoryUsed *int64) error {
	legalActions, err := evaluator.Prior(state)
	if err != nil {
		return fmt.Errorf("mcts: Prior failed during expansion: %w", err)
	}
	rng.Shuffle(len(legalActions), func(i, j int) {
		legalActions[i], legalActions[j] = legalActions[j], legalActions[i]
	})

	player := state.CurrentPlayer()
	node.Children = make([]SearchNode, len(legalActions))
	for i, ap := range legalActions {
		node.Children[i] = SearchNode{Action: ap.Action, Player: player, Prior: ap.Probability}
	}
	*memoryUsed += sliceMemory(node.Children)
	return nil
}

// selectChild picks the next node to descend into: a chance-weighted sample
// at a chance node, otherwise the child with the greatest PUCT value (ties
// broken by first occurrence).
func selectChild(node *SearchNode, state State, uctC float64, rng *rand.Rand) (*SearchNode, error) {
	if state.IsChanceNode() {
		outcomes := state.ChanceOutcomes()
		chosenAction, err := sampleChanceOutcome(outcomes, rng.Float64())
		if err != nil {
			return nil, err
		}
		for i := range node.Children {
			if node.Children[i].Action == chosenAction {
				return &node.Children[i], nil
			}
		}
		return nil, fmt.Errorf("mcts: sampled chance action %v has no matching child", chosenAction)
	}

	maxValue := math.Inf(-1)
	var chosen *SearchNode
	for i := range node.Children {
		v := node.Children[i].Value(node.ExploreCount, uctC)
		if v > maxValue {
			maxValue = v
			chosen = &node.Children[i]
		}
	}
	return chosen, nil
}
