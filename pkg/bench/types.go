// Package bench runs many independent games between two configured
// MCTSBots and reports win/draw/loss statistics. Each game's bots run their
// own single-threaded Step calls; only the games themselves run concurrently
// across a worker pool.
package bench

import "sync/atomic"

type MatchResult int

const (
	Player1Win MatchResult = 1
	Player2Win MatchResult = -1
	Draw       MatchResult = 0
)

// ArenaStats accumulates results across every worker, safe for concurrent
// use by the arena's game workers.
type ArenaStats struct {
	p1Wins           uint32
	p2Wins           uint32
	draws            uint32
	firstToMoveWins  uint32
	secondToMoveWins uint32
}

func (s *ArenaStats) Total() int {
	return int(s.P1Wins() + s.P2Wins() + s.Draws())
}

func (s *ArenaStats) P1Wins() int { return int(atomic.LoadUint32(&s.p1Wins)) }
func (s *ArenaStats) P2Wins() int { return int(atomic.LoadUint32(&s.p2Wins)) }
func (s *ArenaStats) Draws() int  { return int(atomic.LoadUint32(&s.draws)) }

func (s *ArenaStats) FirstToMoveWins() int  { return int(atomic.LoadUint32(&s.firstToMoveWins)) }
func (s *ArenaStats) SecondToMoveWins() int { return int(atomic.LoadUint32(&s.secondToMoveWins)) }

func (s *ArenaStats) record(result MatchResult, p1WentFirst bool) {
	switch result {
	case Draw:
		atomic.AddUint32(&s.draws, 1)
	case Player1Win:
		atomic.AddUint32(&s.p1Wins, 1)
	case Player2Win:
		atomic.AddUint32(&s.p2Wins, 1)
	}

	firstPlayerWon := (result == Player1Win) == p1WentFirst
	if result != Draw {
		if firstPlayerWon {
			atomic.AddUint32(&s.firstToMoveWins, 1)
		} else {
			atomic.AddUint32(&s.secondToMoveWins, 1)
		}
	}
}

// Summary is a snapshot of ArenaStats plus the run's configuration, used for
// the end-of-run report.
type Summary struct {
	TotalGames       int
	P1Wins           int
	P2Wins           int
	Draws            int
	FirstToMoveWins  int
	SecondToMoveWins int
	Workers          int
	P1Name           string
	P2Name           string
}
