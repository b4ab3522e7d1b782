package timer

import "time"

// Countdown is the whole timer: the editable input triple, the marked
// snapshot, and the running/paused state machine. It is driven externally
// by per-frame Tick calls; nothing here spawns goroutines or blocks.
type Countdown struct {
	// Input backs the three entry fields. While running it is overwritten
	// every tick from Remaining; while paused it is freely editable.
	Input Triple

	// Marked is a user-saved snapshot of Input, independent of the
	// countdown itself.
	Marked Triple

	// Target is the monotonic instant at which the countdown reaches
	// zero. While paused it is re-anchored to now+Remaining each tick so
	// that resuming is consistent.
	Target time.Time

	Paused bool

	// Remaining is the seconds left, frozen while paused.
	Remaining uint64

	// TotalDuration is the seconds configured at the last Start.
	TotalDuration uint64

	// done records that the countdown already hit zero, so Tick
	// reports the expiry exactly once per run. Under a secondly
	// cadence the last tick before Target lands inside the final
	// second and truncates Remaining to 0, so Remaining alone cannot
	// tell a finished run from one about to finish.
	done bool
}

// New returns a fresh countdown: all zero, paused.
func New(now time.Time) Countdown {
	return Countdown{
		Input:  NewTriple(),
		Marked: NewTriple(),
		Target: now,
		Paused: true,
	}
}

// Start normalizes the input fields, parses them, and begins counting
// down. No-op unless paused.
func (c *Countdown) Start(now time.Time) {
	if !c.Paused {
		return
	}
	c.Input = c.Input.Normalize()
	s := c.Input.Seconds()
	c.Paused = false
	c.Target = now.Add(time.Duration(s) * time.Second)
	c.TotalDuration = s
	c.Remaining = s
	// A zero-length run has nothing to expire.
	c.done = s == 0
}

// Pause freezes Remaining at its last computed value. No-op unless
// running.
func (c *Countdown) Pause() {
	if c.Paused {
		return
	}
	c.Paused = true
}

// Toggle dispatches to Start or Pause depending on phase. Both the
// button and the space key land here.
func (c *Countdown) Toggle(now time.Time) {
	if c.Paused {
		c.Start(now)
	} else {
		c.Pause()
	}
}

// Tick advances the countdown for one frame. It must be called at least
// once per second while the process is alive. The return value reports
// whether the countdown hit zero on this call.
func (c *Countdown) Tick(now time.Time) bool {
	if c.Paused {
		c.Target = now.Add(time.Duration(c.Remaining) * time.Second)
		return false
	}
	if now.Before(c.Target) {
		c.Remaining = uint64(c.Target.Sub(now) / time.Second)
		c.Input = FromSeconds(c.Remaining)
		return false
	}
	// At or past the target. The display must read 00:00:00 and stop
	// decrementing rather than retain a stale pre-expiry value.
	expired := !c.done
	c.done = true
	c.Remaining = 0
	c.Input = FromSeconds(0)
	return expired
}

// Mark snapshots the current input triple. No validation.
func (c *Countdown) Mark() {
	c.Marked = c.Input
}
