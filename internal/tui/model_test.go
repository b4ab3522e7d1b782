package tui

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/timer"
)

func setupModel(t *testing.T, cfg *config.Config) (Model, *MockTimerStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	store := NewMockTimerStore(ctrl)
	store.EXPECT().LoadTimer(gomock.Any()).Return(timer.Countdown{}, false)
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return NewModel(store, cfg), store
}

func TestNewModelFreshState(t *testing.T) {
	m, _ := setupModel(t, nil)

	if !m.countdown.Paused {
		t.Fatalf("fresh model must start paused")
	}
	if m.countdown.Input != timer.NewTriple() {
		t.Fatalf("Input = %+v, want all zero", m.countdown.Input)
	}
	if m.inputs[fieldHour].Value() != "00" {
		t.Fatalf("hour field = %q, want 00", m.inputs[fieldHour].Value())
	}
	if !m.inputs[fieldHour].Focused() {
		t.Fatalf("hour field must have initial focus")
	}
}

func TestNewModelAppliesDefaultDuration(t *testing.T) {
	m, _ := setupModel(t, &config.Config{Theme: "default", DefaultDuration: 300})

	if m.countdown.Input != (timer.Triple{Hour: "00", Minute: "05", Second: "00"}) {
		t.Fatalf("Input = %+v, want 00:05:00 preload", m.countdown.Input)
	}
}

func TestNewModelRestoresSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	store := NewMockTimerStore(ctrl)
	saved := timer.Countdown{
		Input:         timer.FromSeconds(10),
		Marked:        timer.FromSeconds(5),
		Paused:        true,
		Remaining:     10,
		TotalDuration: 60,
	}
	store.EXPECT().LoadTimer(gomock.Any()).Return(saved, true)

	m := NewModel(store, config.DefaultConfig())

	if m.countdown.Remaining != 10 {
		t.Fatalf("Remaining = %d, want 10", m.countdown.Remaining)
	}
	if m.inputs[fieldSecond].Value() != "10" {
		t.Fatalf("second field = %q, want 10", m.inputs[fieldSecond].Value())
	}
	if m.countdown.Marked != (timer.Triple{Hour: "00", Minute: "00", Second: "05"}) {
		t.Fatalf("Marked = %+v, want 00:00:05", m.countdown.Marked)
	}
}

func TestNewModelUnknownThemeFallsBack(t *testing.T) {
	m, _ := setupModel(t, &config.Config{Theme: "no-such-theme"})
	if m.theme.Name != "Default" {
		t.Fatalf("theme = %q, want Default", m.theme.Name)
	}
}

func TestSaveStatePersistsCountdown(t *testing.T) {
	m, store := setupModel(t, nil)
	store.EXPECT().SaveTimer(gomock.Any()).Return(nil)

	if err := m.SaveState(); err != nil {
		t.Fatalf("SaveState failed: %v", err)
	}
}

func TestInitSchedulesTick(t *testing.T) {
	m, _ := setupModel(t, nil)
	if m.Init() == nil {
		t.Fatalf("Init must schedule the blink and tick commands")
	}
}

func TestTickMsgIsTimestamped(t *testing.T) {
	now := time.Now()
	msg := TickMsg(now)
	if !time.Time(msg).Equal(now) {
		t.Fatalf("TickMsg must carry its timestamp")
	}
}
