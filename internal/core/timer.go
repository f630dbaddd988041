package core

import "time"

// FixedStep paces simulation steps at a steady rate independent of how often
// the caller polls it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	maxBurst    int
}

// NewFixedStep constructs a FixedStep controller targeting the given steps per
// second. The first poll is always due.
func NewFixedStep(sps int) *FixedStep {
	fs := &FixedStep{maxBurst: 8}
	fs.SetRate(sps)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the step rate. Non-positive rates fall back to 60.
func (f *FixedStep) SetRate(sps int) {
	if sps <= 0 {
		sps = 60
	}
	f.step = time.Second / time.Duration(sps)
}

// Rate returns the current steps per second.
func (f *FixedStep) Rate() int { return int(time.Second / f.step) }

// Due reports how many steps are owed at now. At most maxBurst steps are
// returned per call so a stalled caller does not fast-forward.
func (f *FixedStep) Due(now time.Time) int {
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	n := 0
	for f.accumulator >= f.step && n < f.maxBurst {
		f.accumulator -= f.step
		n++
	}
	if n == f.maxBurst {
		f.accumulator = 0
	}
	return n
}
