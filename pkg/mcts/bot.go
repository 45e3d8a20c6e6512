package mcts

import (
	"fmt"
	"math/rand"
	"time"
)

// MCTSBot owns its configuration, its persistent RNG, and the memory
// counter for the tree it builds fresh each Step. It is not safe for
// concurrent use — there is exactly one Step in flight at a time.
type MCTSBot struct {
	game       Game
	evaluator  Evaluator
	cfg        Config
	rng        *rand.Rand
	memoryUsed int64
}

// NewMCTSBot constructs a bot for game using evaluator. It returns an error
// if game is not sequential with terminal-only rewards, rather than aborting
// the process, so a library caller can decide how to fail (see DESIGN.md).
func NewMCTSBot(game Game, evaluator Evaluator, cfg Config) (*MCTSBot, error) {
	gt := game.GameType()
	if gt.Dynamics != Sequential || gt.RewardModel != TerminalRewards {
		return nil, fmt.Errorf("mcts: game must have sequential dynamics and terminal rewards, got dynamics=%v reward_model=%v", gt.Dynamics, gt.RewardModel)
	}

	return &MCTSBot{
		game:      game,
		evaluator: evaluator,
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(cfg.Seed)),
	}, nil
}

// Step runs up to cfg.MaxSimulations simulations from state and returns the
// resulting action distribution (probability 1 on the chosen action) and
// the chosen action itself.
func (b *MCTSBot) Step(state State) (map[Action]float64, Action, error) {
	start := time.Now()

	root, err := b.search(state)
	if err != nil {
		return nil, NoAction, err
	}

	best := root.BestChild()
	if best == nil {
		return nil, NoAction, fmt.Errorf("mcts: Step called on a state with no legal actions")
	}

	b.cfg.Logger.Debug().
		Int("simulations", root.ExploreCount).
		Dur("elapsed", time.Since(start)).
		Int64("tree_bytes", b.memoryUsed).
		Int("chosen_action", int(best.Action)).
		Msg("mcts step complete")

	if b.cfg.Verbose && b.cfg.Diagnostics != nil {
		b.writeDiagnostics(state, root, best, start)
	}

	return map[Action]float64{best.Action: 1.0}, best.Action, nil
}

// search is the simulation loop: runs up to MaxSimulations simulations,
// stopping early when the root becomes proven or the memory cap is reached.
func (b *MCTSBot) search(state State) (*SearchNode, error) {
	b.memoryUsed = 0
	root := newRootNode(state.CurrentPlayer())
	maxMemory := b.cfg.maxMemoryBytes()

	for i := 0; i < b.cfg.MaxSimulations; i++ {
		frontierState, visitPath, err := applyTreePolicy(&root, state, b.evaluator, b.cfg.UCTC, b.rng, &b.memoryUsed)
		if err != nil {
			return nil, err
		}

		frontier := visitPath[len(visitPath)-1]
		var returns []float64
		solved := false
		if frontierState.IsTerminal() {
			returns = frontierState.Returns()
			frontier.Outcome = returns
			b.memoryUsed += float64SliceMemory(returns)
			solved = b.cfg.Solve
		} else {
			returns, err = b.evaluator.Evaluate(frontierState)
			if err != nil {
				return nil, fmt.Errorf("mcts: Evaluate failed: %w", err)
			}
		}

		backup(visitPath, returns, solved, b.game.MaxUtility(), &b.memoryUsed)

		if root.Outcome != nil {
			b.cfg.Logger.Debug().Int("simulations", root.ExploreCount).Msg("root proven, stopping early")
			break
		}
		if maxMemory > 0 && b.memoryUsed >= maxMemory {
			b.cfg.Logger.Debug().Int64("tree_bytes", b.memoryUsed).Msg("memory cap reached, stopping")
			break
		}
	}

	return &root, nil
}
