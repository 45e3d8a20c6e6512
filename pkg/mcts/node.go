package mcts

import (
	"fmt"
	"math"
	"strings"
)

// SearchNode is one node of the search tree. The tree is a strict
// arborescence: each parent owns its Children slice exclusively, and no
// child is ever relocated after its parent's Children slice is allocated —
// Backup's visit path holds pointers into this slice for the lifetime of one
// simulation's backup walk.
type SearchNode struct {
	// Action taken from the parent to reach this node. NoAction at root.
	Action Action
	// Player who was to move at the parent — whose reward this node's
	// TotalReward accumulates.
	Player Player
	// Prior probability assigned by the Evaluator (or chance probability,
	// at a chance outcome), in [0, 1].
	Prior float64

	ExploreCount int
	TotalReward  float64

	Children []SearchNode

	// Outcome is nil while unproven. Once non-nil it never changes — see
	// Backup.
	Outcome []float64
}

func newRootNode(player Player) SearchNode {
	return SearchNode{Action: NoAction, Player: player, Prior: 1}
}

// Value is the PUCT score used during selection. A proven node returns its
// outcome directly so proven nodes dominate selection deterministically.
func (n *SearchNode) Value(parentExploreCount int, c float64) float64 {
	if n.Outcome != nil {
		return n.Outcome[n.Player]
	}

	mean := 0.0
	if n.ExploreCount > 0 {
		mean = n.TotalReward / float64(n.ExploreCount)
	}
	exploration := c * n.Prior * math.Sqrt(float64(parentExploreCount)) / float64(n.ExploreCount+1)
	return mean + exploration
}

// outcomeScore returns Outcome[Player] if proven, else 0, for CompareFinal's
// ordering — an absent outcome sorts as a score of 0.
func (n *SearchNode) outcomeScore() float64 {
	if n.Outcome == nil {
		return 0
	}
	return n.Outcome[n.Player]
}

// CompareFinal orders two nodes ascending by (outcomeScore, ExploreCount,
// TotalReward). The maximum under this order is "best": a proven win beats
// any unproven node, and among unproven nodes the most-visited one is
// trusted over one with a lucky-but-thin sample. It returns <0, 0, >0 like a
// comparator.
func (n *SearchNode) CompareFinal(other *SearchNode) int {
	if d := n.outcomeScore() - other.outcomeScore(); d != 0 {
		return sign(d)
	}
	if d := n.ExploreCount - other.ExploreCount; d != 0 {
		return d
	}
	return sign(n.TotalReward - other.TotalReward)
}

func sign(f float64) int {
	switch {
	case f < 0:
		return -1
	case f > 0:
		return 1
	default:
		return 0
	}
}

// BestChild returns the child that is "best" under CompareFinal: the
// maximum of the total order. Nil if this node has no children.
func (n *SearchNode) BestChild() *SearchNode {
	if len(n.Children) == 0 {
		return nil
	}
	best := &n.Children[0]
	for i := 1; i < len(n.Children); i++ {
		if n.Children[i].CompareFinal(best) > 0 {
			best = &n.Children[i]
		}
	}
	return best
}

// SortedChildren returns pointers to this node's children ordered from best
// to worst under CompareFinal, for diagnostic reporting only.
func (n *SearchNode) SortedChildren() []*SearchNode {
	refs := make([]*SearchNode, len(n.Children))
	for i := range n.Children {
		refs[i] = &n.Children[i]
	}
	for i := 1; i < len(refs); i++ {
		for j := i; j > 0 && refs[j-1].CompareFinal(refs[j]) < 0; j-- {
			refs[j-1], refs[j] = refs[j], refs[j-1]
		}
	}
	return refs
}

func (n *SearchNode) String(state State) string {
	action := "none"
	if n.Action != NoAction {
		action = state.ActionToString(n.Player, n.Action)
	}
	value := 0.0
	if n.ExploreCount > 0 {
		value = n.TotalReward / float64(n.ExploreCount)
	}
	outcome := "none"
	if n.Outcome != nil {
		outcome = fmt.Sprintf("%4.1f", n.Outcome[n.Player])
	}
	return fmt.Sprintf("%6s: player: %d, prior: %5.3f, value: %6.3f, sims: %5d, outcome: %s, %3d children",
		action, n.Player, n.Prior, value, n.ExploreCount, outcome, len(n.Children))
}

// ChildrenString renders every child, best-to-worst, one per line.
func (n *SearchNode) ChildrenString(state State) string {
	if len(n.Children) == 0 {
		return ""
	}
	var b strings.Builder
	for _, child := range n.SortedChildren() {
		b.WriteString(child.String(state))
		b.WriteByte('\n')
	}
	return b.String()
}
