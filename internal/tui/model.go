package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/storage"
	"github.com/akyairhashvil/countdown/internal/timer"
)

// TickMsg drives the once-per-second refresh. Every handler that
// receives one schedules the next, so the display stays current with no
// user input.
type TickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(config.TickInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Field indices into Model.inputs.
const (
	fieldHour = iota
	fieldMinute
	fieldSecond
	fieldCount
)

// Model is the root bubbletea model: one countdown, three entry fields,
// and the store the snapshot is persisted to.
type Model struct {
	store     storage.TimerStore
	countdown timer.Countdown
	inputs    [fieldCount]textinput.Model
	focus     int
	theme     Theme

	// sessionID is the open history row for the current run, 0 when
	// none is open.
	sessionID int64

	width, height int
}

func NewModel(store storage.TimerStore, cfg *config.Config) Model {
	now := time.Now()

	countdown, ok := store.LoadTimer(now)
	if !ok {
		countdown = timer.New(now)
		if cfg.DefaultDuration > 0 {
			countdown.Input = timer.FromSeconds(cfg.DefaultDuration)
		}
	}

	m := Model{
		store:     store,
		countdown: countdown,
		theme:     ThemeByName(cfg.Theme),
	}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = "00"
		ti.CharLimit = config.FieldCharLimit
		ti.Width = config.FieldWidth
		ti.Prompt = ""
		m.inputs[i] = ti
	}
	m.syncInputsFromCountdown()
	m.inputs[m.focus].Focus()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tickCmd())
}

// SaveState persists the snapshot. Called by the entrypoint once the
// program has finished.
func (m Model) SaveState() error {
	return m.store.SaveTimer(&m.countdown)
}

// syncCountdownInput copies the entry fields into the countdown's input
// triple. Only meaningful while paused; while running the flow is the
// other way around.
func (m *Model) syncCountdownInput() {
	m.countdown.Input = timer.Triple{
		Hour:   m.inputs[fieldHour].Value(),
		Minute: m.inputs[fieldMinute].Value(),
		Second: m.inputs[fieldSecond].Value(),
	}
}

func (m *Model) syncInputsFromCountdown() {
	m.inputs[fieldHour].SetValue(m.countdown.Input.Hour)
	m.inputs[fieldMinute].SetValue(m.countdown.Input.Minute)
	m.inputs[fieldSecond].SetValue(m.countdown.Input.Second)
}
