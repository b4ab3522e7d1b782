package storage

import (
	"time"

	"github.com/akyairhashvil/countdown/internal/timer"
)

// TimerStore is the persistence surface the TUI depends on.
//
//go:generate mockgen -source=interface.go -destination=../tui/mock_store_test.go -package=tui
type TimerStore interface {
	SaveTimer(c *timer.Countdown) error
	LoadTimer(now time.Time) (timer.Countdown, bool)
	RecordSessionStart(start time.Time, durationSeconds uint64) (int64, error)
	CompleteSession(id int64, end time.Time) error
}

var _ TimerStore = (*Store)(nil)
