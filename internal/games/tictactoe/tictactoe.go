// Package tictactoe implements mcts.Game/mcts.State for standard 3x3
// tic-tac-toe: deterministic, sequential, terminal-only rewards, no chance
// nodes. It exists to exercise and test the search core against a small,
// fully-solvable game (the MCTS-Solver can prove the whole tree).
package tictactoe

import (
	"fmt"
	"math/bits"

	"github.com/badlogicmanpreet/open-spiel/pkg/mcts"
)

const (
	crossIdx  = 0
	circleIdx = 1
	numCells  = 9
)

// winningPatterns are the horizontal, vertical and diagonal bitboard masks
// that mark a win.
var winningPatterns = [8]uint16{
	0b111000000, 0b000111000, 0b000000111,
	0b100100100, 0b010010010, 0b001001001,
	0b100010001, 0b001010100,
}

// Game is the stateless tic-tac-toe game description.
type Game struct{}

func NewGame() *Game { return &Game{} }

func (Game) NumPlayers() int     { return 2 }
func (Game) MaxUtility() float64 { return 1 }
func (Game) GameType() mcts.GameType {
	return mcts.GameType{Dynamics: mcts.Sequential, RewardModel: mcts.TerminalRewards}
}

// State is a tic-tac-toe position: two per-mark bitboards over the 9
// squares, and which mark moves next.
type State struct {
	bitboards [2]uint16
	toMove    mcts.Player // 0 (cross) or 1 (circle)
}

// NewState returns the empty starting position, cross (player 0) to move.
func NewState(*Game) *State {
	return &State{toMove: 0}
}

func (s *State) Clone() mcts.State {
	clone := *s
	return &clone
}

func (s *State) occupied() uint16 {
	return s.bitboards[crossIdx] | s.bitboards[circleIdx]
}

func (s *State) winner() (mcts.Player, bool) {
	for _, pattern := range winningPatterns {
		if s.bitboards[crossIdx]&pattern == pattern {
			return 0, true
		}
		if s.bitboards[circleIdx]&pattern == pattern {
			return 1, true
		}
	}
	return 0, false
}

func (s *State) IsTerminal() bool {
	if _, won := s.winner(); won {
		return true
	}
	return s.occupied() == 0b111111111
}

func (s *State) IsChanceNode() bool { return false }

func (s *State) CurrentPlayer() mcts.Player {
	if s.IsTerminal() {
		return mcts.ChancePlayer
	}
	return s.toMove
}

func (s *State) LegalActions() []mcts.Action {
	free := uint(0b111111111 &^ uint(s.occupied()))
	actions := make([]mcts.Action, 0, numCells)
	for free != 0 {
		actions = append(actions, mcts.Action(bits.TrailingZeros(free)))
		free &= free - 1
	}
	return actions
}

func (s *State) ChanceOutcomes() []mcts.ActionProb { return nil }

func (s *State) ApplyAction(action mcts.Action) {
	idx := crossIdx
	if s.toMove == 1 {
		idx = circleIdx
	}
	s.bitboards[idx] |= 1 << uint(action)
	s.toMove = 1 - s.toMove
}

// Returns reports +1/-1/0 from player 0's perspective and the mirror for
// player 1, the standard zero-sum tic-tac-toe scoring.
func (s *State) Returns() []float64 {
	if winner, won := s.winner(); won {
		if winner == 0 {
			return []float64{1, -1}
		}
		return []float64{-1, 1}
	}
	return []float64{0, 0}
}

func (s *State) ActionToString(player mcts.Player, action mcts.Action) string {
	mark := "X"
	if player == 1 {
		mark = "O"
	}
	row, col := action/3, action%3
	return fmt.Sprintf("%s(%d,%d)", mark, row, col)
}
