package life

import (
	"testing"

	"colorlife/internal/core"
)

func TestParametersReportReplayState(t *testing.T) {
	sim := New(10, 10)
	sim.ReviveCellAt(0, 0, Red)
	sim.ReviveCellAt(0, 1, Red)
	sim.LoadNextGeneration()
	sim.ReviveCellAt(4, 4, Blue)

	snap := sim.Parameters()
	expect := map[string]string{
		"w":          "10",
		"h":          "10",
		"generation": "2",
		"anchor":     "2",
		"edits":      "3",
		"living":     "1",
		"coverage":   "1.0",
	}
	for key, want := range expect {
		param, ok := snap.Lookup(key)
		if !ok {
			t.Fatalf("parameter %q missing", key)
		}
		if param.Value != want {
			t.Fatalf("parameter %q = %s, expected %s", key, param.Value, want)
		}
	}
}

func TestSetIntParameterGeneration(t *testing.T) {
	sim := New(10, 10)
	var setter core.IntParameterSetter = sim

	if !setter.SetIntParameter("generation", 6) {
		t.Fatal("expected generation to be adjustable")
	}
	if sim.Generation() != 6 {
		t.Fatalf("expected generation 6, got %d", sim.Generation())
	}
	if setter.SetIntParameter("generation", 0) {
		t.Fatal("generation 0 must be rejected")
	}
	if setter.SetIntParameter("density", 1) {
		t.Fatal("unknown keys must be rejected")
	}

	for _, ctrl := range sim.ParameterControls() {
		if ctrl.Clamp(-4) != 1 {
			t.Fatalf("control %q must clamp to generation 1", ctrl.Label)
		}
	}
}
