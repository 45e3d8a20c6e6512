package mcts

import "testing"

func TestSampleChanceOutcomePicksByCumulativeProbability(t *testing.T) {
	outcomes := []ActionProb{
		{Action: 10, Probability: 0.2},
		{Action: 11, Probability: 0.3},
		{Action: 12, Probability: 0.5},
	}

	cases := []struct {
		draw float64
		want Action
	}{
		{0.0, 10},
		{0.19, 10},
		{0.2, 11},
		{0.49, 11},
		{0.5, 12},
		{0.999, 12},
	}
	for _, c := range cases {
		got, err := sampleChanceOutcome(outcomes, c.draw)
		if err != nil {
			t.Fatalf("draw %v: unexpected error %v", c.draw, err)
		}
		if got != c.want {
			t.Errorf("draw %v: got action %v, want %v", c.draw, got, c.want)
		}
	}
}

func TestSampleChanceOutcomeClampsRoundingOverrun(t *testing.T) {
	// Probabilities that don't quite sum to 1 due to float rounding.
	outcomes := []ActionProb{
		{Action: 0, Probability: 0.3},
		{Action: 1, Probability: 0.3},
		{Action: 2, Probability: 0.3999999},
	}
	got, err := sampleChanceOutcome(outcomes, 0.9999999)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 2 {
		t.Errorf("got action %v, want the last outcome (2)", got)
	}
}

func TestSampleChanceOutcomeRejectsEmptyDistribution(t *testing.T) {
	if _, err := sampleChanceOutcome(nil, 0.5); err == nil {
		t.Error("expected an error for an empty outcome distribution")
	}
}
