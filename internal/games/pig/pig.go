// Package pig implements mcts.Game/mcts.State for a short-form version of
// the dice game Pig: on your turn you may Hold (bank your turn total and
// pass the turn) or Roll (a chance node — a fair die lands 2-6 and adds to
// your turn total, or lands on 1 and busts the turn to zero). First player
// to reach TargetScore wins.
//
// Pig exists alongside tictactoe to exercise chance-node descent and solver
// proof rules against a genuine chance node, which a deterministic game like
// tic-tac-toe never visits.
package pig

import (
	"fmt"
	"math/rand"

	"github.com/badlogicmanpreet/open-spiel/pkg/mcts"
)

const (
	// HoldAction banks the current turn total and passes the turn.
	HoldAction mcts.Action = 0
	// RollAction moves to a chance node that resolves the die roll.
	RollAction mcts.Action = 1

	// diceOutcomeBase offsets die-face actions so they never collide with
	// HoldAction/RollAction.
	diceOutcomeBase mcts.Action = 10
)

// Game is the stateless Pig game description.
type Game struct {
	TargetScore int
}

// NewGame returns a Pig game won by the first player to reach targetScore.
func NewGame(targetScore int) *Game {
	if targetScore <= 0 {
		targetScore = 20
	}
	return &Game{TargetScore: targetScore}
}

func (Game) NumPlayers() int     { return 2 }
func (Game) MaxUtility() float64 { return 1 }
func (Game) GameType() mcts.GameType {
	return mcts.GameType{Dynamics: mcts.Sequential, RewardModel: mcts.TerminalRewards}
}

// State is a Pig position: each player's banked score, the active player's
// score so far this turn, whose turn it is, and whether the state sits at
// the chance node that resolves a roll.
type State struct {
	game      *Game
	scores    [2]int
	turnTotal int
	toMove    mcts.Player
	rolling   bool // true iff this state is the chance node after Roll
}

func NewState(game *Game) *State {
	return &State{game: game, toMove: 0}
}

func (s *State) Clone() mcts.State {
	clone := *s
	return &clone
}

func (s *State) IsTerminal() bool {
	return s.scores[0] >= s.game.TargetScore || s.scores[1] >= s.game.TargetScore
}

func (s *State) IsChanceNode() bool { return s.rolling }

func (s *State) CurrentPlayer() mcts.Player {
	if s.IsTerminal() {
		return mcts.ChancePlayer
	}
	if s.rolling {
		return mcts.ChancePlayer
	}
	return s.toMove
}

func (s *State) LegalActions() []mcts.Action {
	if s.rolling {
		return nil
	}
	return []mcts.Action{HoldAction, RollAction}
}

// ChanceOutcomes declares a fair six-sided die: a 1 busts the turn (action
// encodes face 1), faces 2-6 add to the turn total.
func (s *State) ChanceOutcomes() []mcts.ActionProb {
	outcomes := make([]mcts.ActionProb, 6)
	for face := 1; face <= 6; face++ {
		outcomes[face-1] = mcts.ActionProb{Action: diceOutcomeBase + mcts.Action(face), Probability: 1.0 / 6.0}
	}
	return outcomes
}

func (s *State) ApplyAction(action mcts.Action) {
	if s.rolling {
		face := int(action - diceOutcomeBase)
		s.rolling = false
		if face == 1 {
			s.turnTotal = 0
			s.toMove = 1 - s.toMove
			return
		}
		s.turnTotal += face
		return
	}

	switch action {
	case HoldAction:
		s.scores[s.toMove] += s.turnTotal
		s.turnTotal = 0
		s.toMove = 1 - s.toMove
	case RollAction:
		s.rolling = true
	default:
		panic(fmt.Sprintf("pig: invalid action %d", action))
	}
}

func (s *State) Returns() []float64 {
	if s.scores[0] >= s.game.TargetScore {
		return []float64{1, -1}
	}
	return []float64{-1, 1}
}

func (s *State) ActionToString(player mcts.Player, action mcts.Action) string {
	switch {
	case action == HoldAction:
		return "hold"
	case action == RollAction:
		return "roll"
	case action > diceOutcomeBase:
		return fmt.Sprintf("die=%d", action-diceOutcomeBase)
	default:
		return fmt.Sprintf("action(%d)", action)
	}
}

// NewRand is a small helper so cmd/examples can seed a dedicated generator
// for RandomRolloutEvaluator without reaching into math/rand globals.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
