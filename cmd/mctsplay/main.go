package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/badlogicmanpreet/open-spiel/internal/games/pig"
	"github.com/badlogicmanpreet/open-spiel/internal/games/tictactoe"
	"github.com/badlogicmanpreet/open-spiel/pkg/mcts"
)

func main() {
	game := flag.String("game", "tictactoe", "game to play: tictactoe or pig")
	sims := flag.Int("sims", 2000, "max simulations per move")
	rollouts := flag.Int("rollouts", 20, "rollouts per evaluation")
	solve := flag.Bool("solve", true, "enable MCTS-Solver backup")
	seed := flag.Int64("seed", 1, "RNG seed")
	verbose := flag.Bool("v", true, "print per-move diagnostics")
	flag.Parse()

	cfg := mcts.DefaultConfig().
		WithMaxSimulations(*sims).
		WithSolve(*solve).
		WithSeed(*seed).
		WithVerbose(*verbose).
		WithDiagnostics(os.Stdout)

	switch *game {
	case "tictactoe":
		playTicTacToe(cfg, *rollouts)
	case "pig":
		playPig(cfg, *rollouts)
	default:
		fmt.Fprintf(os.Stderr, "unknown game %q (want tictactoe or pig)\n", *game)
		os.Exit(1)
	}
}

func playTicTacToe(cfg mcts.Config, rollouts int) {
	g := tictactoe.NewGame()
	state := tictactoe.NewState(g)

	bot, err := mcts.NewMCTSBot(g, mcts.NewRandomRolloutEvaluator(rollouts, rand.New(rand.NewSource(cfg.Seed))), cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "new bot:", err)
		os.Exit(1)
	}

	for !state.IsTerminal() {
		_, action, err := bot.Step(state)
		if err != nil {
			fmt.Fprintln(os.Stderr, "step:", err)
			os.Exit(1)
		}
		player := state.CurrentPlayer()
		state.ApplyAction(action)
		fmt.Printf("move: %s\n", state.ActionToString(player, action))
	}

	fmt.Printf("final returns: %v\n", state.Returns())
}

func playPig(cfg mcts.Config, rollouts int) {
	g := pig.NewGame(20)
	state := pig.NewState(g)
	dice := pig.NewRand(cfg.Seed + 1)

	bot, err := mcts.NewMCTSBot(g, mcts.NewRandomRolloutEvaluator(rollouts, pig.NewRand(cfg.Seed)), cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "new bot:", err)
		os.Exit(1)
	}

	for !state.IsTerminal() {
		if state.IsChanceNode() {
			outcomes := state.ChanceOutcomes()
			draw := dice.Float64()
			total := 0.0
			for _, o := range outcomes {
				total += o.Probability
				if draw < total {
					state.ApplyAction(o.Action)
					break
				}
			}
			continue
		}
		_, action, err := bot.Step(state)
		if err != nil {
			fmt.Fprintln(os.Stderr, "step:", err)
			os.Exit(1)
		}
		player := state.CurrentPlayer()
		state.ApplyAction(action)
		fmt.Printf("move: %s\n", state.ActionToString(player, action))
	}

	fmt.Printf("final returns: %v\n", state.Returns())
}
