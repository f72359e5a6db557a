package core

import "time"

// FixedStep helps run generation ticks at a steady ticks-per-second rate
// independent of how often the host loop wakes up.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time

	now func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// TPS reports the configured tick rate.
func (f *FixedStep) TPS() int {
	if f.step <= 0 {
		return 0
	}
	return int(time.Second / f.step)
}

// ShouldStep reports whether the host should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

// Pending drains and returns the number of whole ticks owed since the last
// call. At most limit ticks are returned; the remainder is discarded so a
// stalled host does not burst.
func (f *FixedStep) Pending(limit int) int {
	n := 0
	for f.ShouldStep() {
		n++
		if limit > 0 && n >= limit {
			f.accumulator = 0
			break
		}
	}
	return n
}

// Millis returns the milliseconds elapsed since origin, the monotonic tick
// value fed to the generator.
func Millis(origin, now time.Time) int64 {
	return now.Sub(origin).Milliseconds()
}
