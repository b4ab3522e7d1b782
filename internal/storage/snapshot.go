package storage

import (
	"strconv"
	"time"

	"github.com/akyairhashvil/countdown/internal/timer"
)

// Keys of the persisted timer snapshot. Values are decimal strings.
const (
	keyRemaining = "remaining"
	keyDuration  = "duration"
	keyMarked    = "marked"
)

// SaveTimer persists the countdown as a flat string map. Called once at
// shutdown.
func (s *Store) SaveTimer(c *timer.Countdown) error {
	if err := s.SetSetting(keyRemaining, strconv.FormatUint(c.Remaining, 10)); err != nil {
		return wrapSnapshotErr("save", err)
	}
	if err := s.SetSetting(keyDuration, strconv.FormatUint(c.TotalDuration, 10)); err != nil {
		return wrapSnapshotErr("save", err)
	}
	if err := s.SetSetting(keyMarked, strconv.FormatUint(c.Marked.Seconds(), 10)); err != nil {
		return wrapSnapshotErr("save", err)
	}
	return nil
}

// LoadTimer rebuilds a countdown from the persisted snapshot. All three
// keys must be present and parse as unsigned integers; anything else
// reports ok=false and the caller falls back to a fresh default. The
// restored timer is always paused. Target is recomputed from the total
// duration, not from remaining, so a timer saved mid-countdown resumes
// from the original duration once unpaused.
func (s *Store) LoadTimer(now time.Time) (timer.Countdown, bool) {
	remStr, ok := s.GetSetting(keyRemaining)
	if !ok {
		return timer.Countdown{}, false
	}
	durStr, ok := s.GetSetting(keyDuration)
	if !ok {
		return timer.Countdown{}, false
	}
	markedStr, ok := s.GetSetting(keyMarked)
	if !ok {
		return timer.Countdown{}, false
	}

	remaining, err := strconv.ParseUint(remStr, 10, 64)
	if err != nil {
		return timer.Countdown{}, false
	}
	duration, err := strconv.ParseUint(durStr, 10, 64)
	if err != nil {
		return timer.Countdown{}, false
	}
	marked, err := strconv.ParseUint(markedStr, 10, 64)
	if err != nil {
		return timer.Countdown{}, false
	}

	return timer.Countdown{
		Input:         timer.FromSeconds(remaining),
		Marked:        timer.FromSeconds(marked),
		Target:        now.Add(time.Duration(duration) * time.Second),
		Paused:        true,
		Remaining:     remaining,
		TotalDuration: duration,
	}, true
}
