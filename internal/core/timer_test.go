package core

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestPacer(delay time.Duration) (*Pacer, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	p := NewPacer(delay)
	p.now = clock.now
	return p, clock
}

func TestPacerStoppedNeverFires(t *testing.T) {
	p, clock := newTestPacer(100 * time.Millisecond)
	for i := 0; i < 5; i++ {
		clock.advance(time.Second)
		if p.ShouldStep() {
			t.Fatalf("stopped pacer fired on poll %d", i)
		}
	}
}

func TestPacerRunningFiresOncePerDelay(t *testing.T) {
	p, clock := newTestPacer(100 * time.Millisecond)
	p.Start()

	if !p.ShouldStep() {
		t.Fatal("expected first poll after Start to fire")
	}
	clock.advance(50 * time.Millisecond)
	if p.ShouldStep() {
		t.Fatal("pacer fired before the delay elapsed")
	}
	clock.advance(50 * time.Millisecond)
	if !p.ShouldStep() {
		t.Fatal("pacer did not fire after the delay elapsed")
	}

	p.Stop()
	clock.advance(time.Second)
	if p.ShouldStep() {
		t.Fatal("pacer fired after Stop")
	}
}

func TestPacerTriggerFiresExactlyOnce(t *testing.T) {
	p, clock := newTestPacer(100 * time.Millisecond)
	p.Trigger()
	if !p.ShouldStep() {
		t.Fatal("expected triggered pacer to fire")
	}
	clock.advance(time.Second)
	if p.ShouldStep() {
		t.Fatal("single-shot trigger fired twice")
	}
	if p.Running() {
		t.Fatal("trigger must not start periodic firing")
	}
}

func TestPacerSetDelayWhileRunning(t *testing.T) {
	p, clock := newTestPacer(time.Second)
	p.Start()
	p.ShouldStep()

	p.SetDelay(10 * time.Millisecond)
	clock.advance(10 * time.Millisecond)
	if !p.ShouldStep() {
		t.Fatal("expected shorter delay to take effect immediately")
	}

	p.SetDelay(0)
	if got := p.Delay(); got != DefaultDelay {
		t.Fatalf("non-positive delay should fall back to %v, got %v", DefaultDelay, got)
	}
}

func TestPacerToggle(t *testing.T) {
	p, _ := newTestPacer(time.Second)
	if !p.Toggle() {
		t.Fatal("toggle on a stopped pacer should start it")
	}
	if p.Toggle() {
		t.Fatal("toggle on a running pacer should stop it")
	}
}
