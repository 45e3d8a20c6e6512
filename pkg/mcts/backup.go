package mcts

// backup walks the visit path from frontier back to root, accumulating
// returns and, while solve is still possible, attempting to prove each
// ancestor's outcome.
func backup(visitPath []*SearchNode, returns []float64, solve bool, maxUtility float64, memoryUsed *int64) {
	solved := solve
	for i := len(visitPath) - 1; i >= 0; i-- {
		node := visitPath[i]
		node.TotalReward += returns[node.Player]
		node.ExploreCount++

		if solved && len(node.Children) > 0 {
			solved = tryProve(node, maxUtility, memoryUsed)
		}
	}
}

// tryProve attempts to set node.Outcome from its (already-backed-up)
// children. It returns whether the solver may keep attempting to prove
// further ancestors.
func tryProve(node *SearchNode, maxUtility float64, memoryUsed *int64) bool {
	firstPlayer := node.Children[0].Player

	if firstPlayer == ChancePlayer {
		return tryProveChanceNode(node, memoryUsed)
	}
	return tryProveDecisionNode(node, firstPlayer, maxUtility, memoryUsed)
}

// tryProveChanceNode proves a chance node only when every child shares the
// exact same outcome vector — weighting by chance probability is explicitly
// rejected, so the proof stays exact rather than an expectation.
func tryProveChanceNode(node *SearchNode, memoryUsed *int64) bool {
	outcome := node.Children[0].Outcome
	if outcome == nil {
		return false
	}
	for i := 1; i < len(node.Children); i++ {
		if !equalOutcome(node.Children[i].Outcome, outcome) {
			return false
		}
	}
	node.Outcome = outcome
	*memoryUsed += float64SliceMemory(outcome)
	return true
}

// tryProveDecisionNode proves a decision node for player either because
// every child is solved, or because one child already achieves the game's
// maximum utility for player (an unbeatable win), without waiting for
// siblings.
func tryProveDecisionNode(node *SearchNode, player Player, maxUtility float64, memoryUsed *int64) bool {
	allSolved := true
	var best *SearchNode
	for i := range node.Children {
		child := &node.Children[i]
		if child.Outcome == nil {
			allSolved = false
			continue
		}
		if best == nil || child.Outcome[player] > best.Outcome[player] {
			best = child
		}
	}

	if best == nil || !(allSolved || best.Outcome[player] == maxUtility) {
		return false
	}

	node.Outcome = best.Outcome
	*memoryUsed += float64SliceMemory(best.Outcome)
	return true
}

func equalOutcome(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
