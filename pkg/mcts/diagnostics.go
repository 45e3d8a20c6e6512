package mcts

import (
	"fmt"
	"io"
	"time"

	"github.com/muesli/termenv"
)

// writeDiagnostics renders the verbose end-of-Step report: simulation
// count/rate, the root and its children sorted best-to-worst by
// CompareFinal, and the chosen action, colorized through termenv.
func (b *MCTSBot) writeDiagnostics(state State, root *SearchNode, best *SearchNode, start time.Time) {
	out := termenv.NewOutput(b.cfg.Diagnostics)
	seconds := time.Since(start).Seconds()
	simsPerSec := 0.0
	if seconds > 0 {
		simsPerSec = float64(root.ExploreCount) / seconds
	}

	writeLine(b.cfg.Diagnostics, out, termenv.ANSICyan, fmt.Sprintf(
		"Finished %d sims in %.3fs, %.1f sims/s, tree size: %d bytes.",
		root.ExploreCount, seconds, simsPerSec, b.memoryUsed))

	writeLine(b.cfg.Diagnostics, out, termenv.ANSIYellow, "Root:")
	fmt.Fprintln(b.cfg.Diagnostics, root.String(state))

	writeLine(b.cfg.Diagnostics, out, termenv.ANSIYellow, "Children:")
	fmt.Fprint(b.cfg.Diagnostics, root.ChildrenString(state))

	chosenState := state.Clone()
	chosenState.ApplyAction(best.Action)
	writeLine(b.cfg.Diagnostics, out, termenv.ANSIGreen, fmt.Sprintf(
		"Chosen action: %s", state.ActionToString(best.Player, best.Action)))
}

func writeLine(w io.Writer, out *termenv.Output, color termenv.ANSIColor, s string) {
	fmt.Fprintln(w, out.String(s).Foreground(color).String())
}
