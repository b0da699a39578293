package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	for i := 0; i < 64; i++ {
		if a.Uint8n(200) != b.Uint8n(200) {
			t.Fatalf("sequences with equal seeds diverged at draw %d", i)
		}
		if a.Chance(0.5) != b.Chance(0.5) {
			t.Fatalf("chance sequences with equal seeds diverged at draw %d", i)
		}
	}
}

func TestRNGBounds(t *testing.T) {
	r := NewRNG(1)
	if r.Uint8n(0) != 0 {
		t.Fatal("Uint8n(0) must return 0")
	}
	for i := 0; i < 256; i++ {
		if v := r.Uint8n(3); v >= 3 {
			t.Fatalf("Uint8n(3) returned %d", v)
		}
		if r.Chance(0) {
			t.Fatal("Chance(0) returned true")
		}
		if !r.Chance(1) {
			t.Fatal("Chance(1) returned false")
		}
	}
}
