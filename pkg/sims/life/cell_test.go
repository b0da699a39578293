package life

import "testing"

func TestCellDeadAlwaysCarriesDeadColor(t *testing.T) {
	c := newCell(3, 4)
	if c.Alive() || c.Color() != Dead {
		t.Fatalf("new cell should be dead with Dead color, got alive=%v color=%d", c.Alive(), c.Color())
	}

	c.set(true, Blue)
	if !c.Alive() || c.Color() != Blue {
		t.Fatalf("expected living blue cell, got alive=%v color=%d", c.Alive(), c.Color())
	}

	c.set(false, Blue)
	if c.Alive() || c.Color() != Dead {
		t.Fatalf("killed cell kept color %d", c.Color())
	}

	if c.Point() != (Point{Row: 3, Col: 4}) {
		t.Fatalf("cell position changed to %+v", c.Point())
	}
}

func TestCellReviveWithDeadColorUsesDefault(t *testing.T) {
	c := newCell(0, 0)
	c.set(true, Dead)
	if c.Color() != DefaultColor {
		t.Fatalf("expected default color %d, got %d", DefaultColor, c.Color())
	}
}
