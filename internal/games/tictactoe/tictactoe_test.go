package tictactoe

import (
	"math/rand"
	"testing"

	"github.com/badlogicmanpreet/open-spiel/pkg/mcts"
)

func TestLegalActionsShrinksAsSquaresFill(t *testing.T) {
	state := NewState(NewGame())
	if len(state.LegalActions()) != 9 {
		t.Fatalf("empty board has %d legal actions, want 9", len(state.LegalActions()))
	}
	state.ApplyAction(0)
	if len(state.LegalActions()) != 8 {
		t.Fatalf("after one move, %d legal actions, want 8", len(state.LegalActions()))
	}
}

func TestWinnerDetectsATopRow(t *testing.T) {
	state := NewState(NewGame())
	// X: 0,1,2 (top row), O: 3,4 (irrelevant)
	for _, mv := range []mcts.Action{0, 3, 1, 4, 2} {
		state.ApplyAction(mv)
	}
	if !state.IsTerminal() {
		t.Fatal("board with a completed top row should be terminal")
	}
	returns := state.Returns()
	if returns[0] != 1 || returns[1] != -1 {
		t.Errorf("Returns() = %v, want player 0 (X) to have won", returns)
	}
}

func TestFullBoardWithNoWinnerIsADraw(t *testing.T) {
	state := NewState(NewGame())
	// A known drawing sequence.
	moves := []mcts.Action{0, 1, 2, 4, 3, 5, 7, 6, 8}
	for _, mv := range moves {
		state.ApplyAction(mv)
	}
	if !state.IsTerminal() {
		t.Fatal("full board should be terminal")
	}
	returns := state.Returns()
	if returns[0] != 0 || returns[1] != 0 {
		t.Errorf("Returns() = %v, want a draw", returns)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	state := NewState(NewGame())
	state.ApplyAction(0)
	clone := state.Clone().(*State)
	clone.ApplyAction(1)

	if len(state.LegalActions()) == len(clone.LegalActions()) {
		t.Error("mutating a clone should not affect the original state")
	}
}

func TestMCTSBotTakesTheWinningMoveWithTwoInARow(t *testing.T) {
	// X has 0,1 (needs 2 to win); O has 3,4.
	state := NewState(NewGame())
	for _, mv := range []mcts.Action{0, 3, 1, 4} {
		state.ApplyAction(mv)
	}

	cfg := mcts.DefaultConfig().WithSolve(true).WithMaxSimulations(500).WithSeed(5)
	bot, err := mcts.NewMCTSBot(NewGame(), mcts.NewRandomRolloutEvaluator(20, rand.New(rand.NewSource(5))), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, action, err := bot.Step(state)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if action != 2 {
		t.Errorf("Step chose %v, want the winning square (2)", action)
	}
}
