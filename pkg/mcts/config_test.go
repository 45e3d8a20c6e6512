package mcts

import "testing"

func TestDefaultConfigHasSaneDefaults(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.UCTC != defaultUCTC {
		t.Errorf("UCTC = %v, want sqrt(2)", cfg.UCTC)
	}
	if cfg.Solve {
		t.Error("Solve should default to false")
	}
	if cfg.maxMemoryBytes() != 0 {
		t.Errorf("maxMemoryBytes() = %d, want 0 (no cap) when neither field is set", cfg.maxMemoryBytes())
	}
}

func TestMaxMemoryBytesOverridesMaxMemoryMB(t *testing.T) {
	cfg := DefaultConfig().WithMaxMemoryMB(5).WithMaxMemoryBytes(42)
	if got := cfg.maxMemoryBytes(); got != 42 {
		t.Errorf("maxMemoryBytes() = %d, want the explicit byte override (42)", got)
	}
}

func TestMaxMemoryMBConvertsToBytesWhenNoOverride(t *testing.T) {
	cfg := DefaultConfig().WithMaxMemoryMB(2)
	if got := cfg.maxMemoryBytes(); got != 2<<20 {
		t.Errorf("maxMemoryBytes() = %d, want %d", got, 2<<20)
	}
}

func TestWithSettersDoNotMutateTheReceiver(t *testing.T) {
	base := DefaultConfig()
	derived := base.WithSeed(99)
	if base.Seed == 99 {
		t.Error("WithSeed mutated the receiver; Config setters must return a modified copy")
	}
	if derived.Seed != 99 {
		t.Errorf("derived.Seed = %d, want 99", derived.Seed)
	}
}
