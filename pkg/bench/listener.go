package bench

// WorkerInfo reports progress from one arena worker, passed to
// Listener.OnGameFinished at the end of every game. VersusArena does not
// call OnMoveMade and leaves MoveNum at zero.
type WorkerInfo struct {
	WorkerID      int
	GameIndex     int
	NGames        int
	FinishedGames int
	MoveNum       int
	P1Wins        int
	P2Wins        int
	Draws         int
}

// Listener observes a VersusArena run. All methods may be called
// concurrently from different worker goroutines; implementations must be
// safe for that or do nothing.
type Listener interface {
	OnMoveMade(info WorkerInfo)
	OnGameFinished(info WorkerInfo)
	OnRunFinished(summary Summary)
}

// NopListener discards every event, the default when a caller supplies none.
type NopListener struct{}

func (NopListener) OnMoveMade(WorkerInfo)     {}
func (NopListener) OnGameFinished(WorkerInfo) {}
func (NopListener) OnRunFinished(Summary)     {}
