package mcts

import (
	"io"

	"github.com/rs/zerolog"
)

// Config is the immutable-after-construction configuration surface for an
// MCTSBot, built through chained With* setters on a value receiver so a
// caller can derive variants from DefaultConfig() without aliasing.
type Config struct {
	// UCTC is the PUCT exploration constant. Default sqrt(2).
	UCTC float64
	// MaxSimulations is the upper bound on simulations per Step.
	MaxSimulations int
	// MaxMemoryMB caps tracked tree memory; 0 disables the cap.
	MaxMemoryMB int64
	// MaxMemoryBytes, when non-zero, overrides MaxMemoryMB with an exact
	// byte cap. The public surface is MB-granular; this is an escape hatch
	// for callers (tests, mostly) that need byte-level control over when
	// the cap trips.
	MaxMemoryBytes int64
	// Solve enables MCTS-Solver backup.
	Solve bool
	// Seed drives the bot's persistent RNG (it is not reseeded per Step).
	Seed int64
	// Verbose enables the end-of-Step diagnostic dump.
	Verbose bool
	// Player is the advisory perspective for this bot; the core algorithm
	// does not otherwise depend on it.
	Player Player

	// Logger receives structured lifecycle/Step events. Defaults to a
	// no-op logger.
	Logger zerolog.Logger
	// Diagnostics, if non-nil and Verbose is true, receives the colorized
	// end-of-Step report.
	Diagnostics io.Writer
}

const defaultUCTC = 1.4142135623730951 // sqrt(2)

// DefaultConfig returns a Config with sane named defaults rather than Go
// zero values (UCTC=sqrt(2), a generous simulation budget, solver disabled,
// no memory cap).
func DefaultConfig() Config {
	return Config{
		UCTC:           defaultUCTC,
		MaxSimulations: 1000,
		MaxMemoryMB:    0,
		Solve:          false,
		Seed:           0,
		Verbose:        false,
		Player:         0,
		Logger:         zerolog.Nop(),
		Diagnostics:    nil,
	}
}

func (c Config) WithUCTC(uctC float64) Config {
	c.UCTC = uctC
	return c
}

func (c Config) WithMaxSimulations(n int) Config {
	c.MaxSimulations = n
	return c
}

func (c Config) WithMaxMemoryMB(mb int64) Config {
	c.MaxMemoryMB = mb
	return c
}

func (c Config) WithSolve(solve bool) Config {
	c.Solve = solve
	return c
}

func (c Config) WithSeed(seed int64) Config {
	c.Seed = seed
	return c
}

func (c Config) WithVerbose(verbose bool) Config {
	c.Verbose = verbose
	return c
}

func (c Config) WithPlayer(player Player) Config {
	c.Player = player
	return c
}

func (c Config) WithLogger(logger zerolog.Logger) Config {
	c.Logger = logger
	return c
}

func (c Config) WithDiagnostics(w io.Writer) Config {
	c.Diagnostics = w
	return c
}

func (c Config) WithMaxMemoryBytes(bytes int64) Config {
	c.MaxMemoryBytes = bytes
	return c
}

func (c Config) maxMemoryBytes() int64 {
	if c.MaxMemoryBytes != 0 {
		return c.MaxMemoryBytes
	}
	return c.MaxMemoryMB << 20
}
