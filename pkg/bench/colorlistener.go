package bench

import (
	"fmt"
	"io"
	"sync"

	"github.com/muesli/termenv"
)

// ColorListener prints a one-line running tally to w after every finished
// game, colorized through termenv. Safe for concurrent use: output from
// different workers is serialized by a mutex rather than interleaved.
type ColorListener struct {
	w   io.Writer
	out *termenv.Output
	mu  sync.Mutex
}

func NewColorListener(w io.Writer) *ColorListener {
	return &ColorListener{w: w, out: termenv.NewOutput(w)}
}

func (l *ColorListener) OnMoveMade(WorkerInfo) {}

func (l *ColorListener) OnGameFinished(info WorkerInfo) {
	l.mu.Lock()
	defer l.mu.Unlock()
	line := fmt.Sprintf("worker %d: game %d/%d done (p1=%d p2=%d draw=%d)",
		info.WorkerID, info.FinishedGames, info.NGames, info.P1Wins, info.P2Wins, info.Draws)
	fmt.Fprintln(l.w, l.out.String(line).Foreground(termenv.ANSICyan).String())
}

func (l *ColorListener) OnRunFinished(summary Summary) {
	l.mu.Lock()
	defer l.mu.Unlock()
	line := fmt.Sprintf("%s vs %s over %d games: %d-%d-%d (first-to-move won %d, second %d)",
		summary.P1Name, summary.P2Name, summary.TotalGames,
		summary.P1Wins, summary.P2Wins, summary.Draws,
		summary.FirstToMoveWins, summary.SecondToMoveWins)
	fmt.Fprintln(l.w, l.out.String(line).Foreground(termenv.ANSIGreen).Bold().String())
}
