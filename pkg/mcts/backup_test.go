package mcts

import "testing"

func TestBackupAccumulatesRewardsAlongVisitPath(t *testing.T) {
	root := SearchNode{Player: 0}
	child := SearchNode{Player: 1, Action: 0}
	path := []*SearchNode{&root, &child}

	backup(path, []float64{1, -1}, false, 1, new(int64))

	if root.ExploreCount != 1 || root.TotalReward != 1 {
		t.Errorf("root = %+v, want ExploreCount=1 TotalReward=1", root)
	}
	if child.ExploreCount != 1 || child.TotalReward != -1 {
		t.Errorf("child = %+v, want ExploreCount=1 TotalReward=-1", child)
	}
}

func TestTryProveDecisionNodeRequiresAllChildrenSolved(t *testing.T) {
	node := SearchNode{
		Children: []SearchNode{
			{Player: 0, Outcome: []float64{0, 0}}, // solved draw, below max utility
			{Player: 0},                           // unsolved
		},
	}
	if tryProveDecisionNode(&node, 0, 1, new(int64)) {
		t.Error("a decision node with an unsolved child and no max-utility child should not be provable")
	}

	node.Children[1].Outcome = []float64{-1, 1}
	if !tryProveDecisionNode(&node, 0, 1, new(int64)) {
		t.Fatal("a decision node with every child solved should be provable")
	}
	if node.Outcome[0] != 0 {
		t.Errorf("proven outcome = %v, want the best child's outcome (0 for player 0)", node.Outcome)
	}
}

func TestTryProveDecisionNodeShortCircuitsOnMaxUtility(t *testing.T) {
	node := SearchNode{
		Children: []SearchNode{
			{Player: 0, Outcome: []float64{1, -1}}, // unbeatable win
			{Player: 0},                            // unsolved, irrelevant
		},
	}
	if !tryProveDecisionNode(&node, 0, 1, new(int64)) {
		t.Fatal("one child reaching max utility should prove the node without the sibling")
	}
	if node.Outcome[0] != 1 {
		t.Errorf("proven outcome = %v, want 1 for player 0", node.Outcome)
	}
}

func TestTryProveChanceNodeRequiresIdenticalOutcomes(t *testing.T) {
	node := SearchNode{
		Children: []SearchNode{
			{Player: ChancePlayer, Outcome: []float64{1, -1}},
			{Player: ChancePlayer, Outcome: []float64{1, -1}},
		},
	}
	if !tryProveChanceNode(&node, new(int64)) {
		t.Fatal("a chance node whose children share one outcome should be provable")
	}

	node.Children[1].Outcome = []float64{-1, 1}
	node.Outcome = nil
	if tryProveChanceNode(&node, new(int64)) {
		t.Error("a chance node must not be proven from differing child outcomes, even weighted ones")
	}
}

func TestBackupLeavesAncestorUnprovenWhileAnyChildIsUnsolved(t *testing.T) {
	root := SearchNode{
		Player: 0,
		Children: []SearchNode{
			{Player: 0}, // this simulation's frontier, still unproven after backup
		},
	}
	path := []*SearchNode{&root, &root.Children[0]}
	backup(path, []float64{0, 0}, true, 1, new(int64))

	if root.Outcome != nil {
		t.Error("root should remain unproven while its only child is unproven")
	}
}
