package main

import (
	"slices"
	"testing"

	"colorlife/pkg/sims/life"
)

func TestRunScenarioReplaysAreStable(t *testing.T) {
	cfg := life.DefaultConfig()
	cfg.Width = 24
	cfg.Height = 24
	for seed := int64(1); seed <= 3; seed++ {
		cfg.Seed = seed
		res, err := runScenario(cfg, scenario{generations: 40, editAt: 6})
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if res.edits == 0 {
			t.Fatalf("seed %d: expected journaled edits", seed)
		}
		if res.peakCoverage < res.endCoverage {
			t.Fatalf("seed %d: peak %.1f below final %.1f", seed, res.peakCoverage, res.endCoverage)
		}
	}
}

func TestKvListCollectsValues(t *testing.T) {
	var l kvList
	l.Set("w=10")
	l.Set("density=0.5")
	if !slices.Equal([]string(l), []string{"w=10", "density=0.5"}) {
		t.Fatalf("unexpected list %v", l)
	}
	if l.String() != "w=10,density=0.5" {
		t.Fatalf("unexpected String() %q", l.String())
	}
}
