package bench

import (
	"context"
	"fmt"
	"sync"

	"github.com/badlogicmanpreet/open-spiel/pkg/mcts"
)

// VersusArena plays many independent games between two bot configurations
// and tallies the results. BotFactory functions build a fresh bot per game
// so that each game gets its own RNG stream and tree memory — bots are not
// safe to share across concurrent games.
type VersusArena struct {
	ArenaStats

	Game           mcts.Game
	InitialState   func() mcts.State
	Player1Factory func() (*mcts.MCTSBot, error)
	Player2Factory func() (*mcts.MCTSBot, error)
	NGames         int
	NWorkers       int
	P1Name         string
	P2Name         string
	Listener       Listener

	mu sync.Mutex
}

// NewVersusArena returns an arena configured for 100 games across 2 workers.
func NewVersusArena(game mcts.Game, initialState func() mcts.State, p1, p2 func() (*mcts.MCTSBot, error)) *VersusArena {
	return &VersusArena{
		Game:           game,
		InitialState:   initialState,
		Player1Factory: p1,
		Player2Factory: p2,
		NGames:         100,
		NWorkers:       2,
		P1Name:         "player1",
		P2Name:         "player2",
		Listener:       NopListener{},
	}
}

// Run distributes NGames evenly across NWorkers goroutines and blocks until
// all games finish or ctx is cancelled. Games alternate which bot moves
// first so neither side accumulates an unfair first-move advantage.
func (va *VersusArena) Run(ctx context.Context) Summary {
	if va.NWorkers < 1 {
		va.NWorkers = 1
	}

	gamesPerWorker := va.NGames / va.NWorkers
	remainder := va.NGames % va.NWorkers

	var wg sync.WaitGroup
	for w := 0; w < va.NWorkers; w++ {
		n := gamesPerWorker
		if w < remainder {
			n++
		}
		wg.Add(1)
		go func(workerID, nGames int) {
			defer wg.Done()
			va.runWorker(ctx, workerID, nGames)
		}(w, n)
	}
	wg.Wait()

	summary := Summary{
		TotalGames:       va.Total(),
		P1Wins:           va.P1Wins(),
		P2Wins:           va.P2Wins(),
		Draws:            va.Draws(),
		FirstToMoveWins:  va.FirstToMoveWins(),
		SecondToMoveWins: va.SecondToMoveWins(),
		Workers:          va.NWorkers,
		P1Name:           va.P1Name,
		P2Name:           va.P2Name,
	}
	va.Listener.OnRunFinished(summary)
	return summary
}

func (va *VersusArena) runWorker(ctx context.Context, workerID, nGames int) {
	finished := 0
	for i := 0; i < nGames; i++ {
		select {
		case <-ctx.Done():
			return
		default:
		}

		p1First := i%2 == 0
		result, err := va.playGame(p1First)
		if err != nil {
			continue
		}

		finished++
		va.ArenaStats.record(result, p1First)

		va.Listener.OnGameFinished(WorkerInfo{
			WorkerID:      workerID,
			GameIndex:     i,
			NGames:        nGames,
			FinishedGames: finished,
			P1Wins:        va.P1Wins(),
			P2Wins:        va.P2Wins(),
			Draws:         va.Draws(),
		})
	}
}

// playGame runs one game to completion. When p1First is true, Player1's bot
// plays game player 0 (the initial mover); when it is false, Player2's bot
// plays game player 0 and Player1's bot plays game player 1, so across many
// games neither bot is systematically favored by moving first.
func (va *VersusArena) playGame(p1First bool) (MatchResult, error) {
	p1, err := va.Player1Factory()
	if err != nil {
		return Draw, fmt.Errorf("bench: building player1: %w", err)
	}
	p2, err := va.Player2Factory()
	if err != nil {
		return Draw, fmt.Errorf("bench: building player2: %w", err)
	}

	state := va.InitialState()
	for !state.IsTerminal() {
		if state.IsChanceNode() {
			// The arena does not resolve chance nodes during play (outside
			// search): a game that reaches one ends here with an error, and
			// runWorker does not tally it.
			return Draw, fmt.Errorf("bench: reached a chance node outside of search")
		}

		currentIsP1 := (state.CurrentPlayer() == 0) == p1First
		var bot *mcts.MCTSBot
		if currentIsP1 {
			bot = p1
		} else {
			bot = p2
		}

		_, action, err := bot.Step(state)
		if err != nil {
			return Draw, fmt.Errorf("bench: Step failed: %w", err)
		}
		state.ApplyAction(action)
	}

	returns := state.Returns()
	p1Player := mcts.Player(0)
	if !p1First {
		p1Player = 1
	}
	switch {
	case returns[p1Player] > returns[1-p1Player]:
		return Player1Win, nil
	case returns[p1Player] < returns[1-p1Player]:
		return Player2Win, nil
	default:
		return Draw, nil
	}
}
