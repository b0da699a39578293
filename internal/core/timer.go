package core

import "time"

// DefaultDelay is the pause between generations when none is configured.
const DefaultDelay = time.Second

// Pacer decides when an externally driven loop should advance a simulation.
// It is polled from the host's main loop and never touches the simulation
// itself, so starting, stopping or retiming it cannot affect engine state.
type Pacer struct {
	delay       time.Duration
	accumulator time.Duration
	last        time.Time
	running     bool
	pending     bool

	now func() time.Time
}

// NewPacer constructs a stopped Pacer firing every delay once started.
func NewPacer(delay time.Duration) *Pacer {
	p := &Pacer{now: time.Now}
	p.SetDelay(delay)
	return p
}

// SetDelay changes the interval between steps. It is safe to call from the main loop.
func (p *Pacer) SetDelay(delay time.Duration) {
	if delay <= 0 {
		delay = DefaultDelay
	}
	p.delay = delay
	if p.accumulator > delay {
		p.accumulator = delay
	}
}

// Delay returns the current interval between steps.
func (p *Pacer) Delay() time.Duration { return p.delay }

// Start makes the pacer fire periodically. The first step fires on the next poll.
func (p *Pacer) Start() {
	if p.running {
		return
	}
	p.running = true
	p.last = time.Time{}
	p.accumulator = p.delay
}

// Stop halts periodic firing. A pending single-shot trigger is kept.
func (p *Pacer) Stop() { p.running = false }

// Toggle flips between running and stopped and reports the new state.
func (p *Pacer) Toggle() bool {
	if p.running {
		p.Stop()
	} else {
		p.Start()
	}
	return p.running
}

// Running reports whether periodic firing is active.
func (p *Pacer) Running() bool { return p.running }

// Trigger requests exactly one step on the next poll, whether or not the
// pacer is running. When running, the periodic schedule restarts from now.
func (p *Pacer) Trigger() {
	p.pending = true
	if p.running {
		p.last = time.Time{}
		p.accumulator = 0
	}
}

// ShouldStep reports whether the simulation should advance by one generation.
func (p *Pacer) ShouldStep() bool {
	if p.pending {
		p.pending = false
		return true
	}
	if !p.running {
		return false
	}
	now := p.now()
	if p.last.IsZero() {
		p.last = now
	}
	p.accumulator += now.Sub(p.last)
	p.last = now
	if p.accumulator >= p.delay {
		p.accumulator -= p.delay
		if p.accumulator > p.delay {
			p.accumulator = 0
		}
		return true
	}
	return false
}
