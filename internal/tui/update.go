package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/countdown/internal/util"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case TickMsg:
		m, cmd = m.handleTick()
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m, cmd = m.handleToggle()
			return m, cmd
		case "m":
			m, cmd = m.handleMark()
			return m, cmd
		case "tab":
			m, cmd = m.cycleFocus(1)
			return m, cmd
		case "shift+tab":
			m, cmd = m.cycleFocus(-1)
			return m, cmd
		}
		m, cmd = m.handleFieldInput(msg)
		return m, cmd
	}

	return m, nil
}

// handleTick samples the clock once and advances the countdown. The
// next tick is always rescheduled, running or not, paused or not.
func (m Model) handleTick() (Model, tea.Cmd) {
	now := time.Now()
	expired := m.countdown.Tick(now)
	if !m.countdown.Paused {
		m.syncInputsFromCountdown()
	}
	if expired && m.sessionID != 0 {
		util.LogError("complete session", m.store.CompleteSession(m.sessionID, now))
		m.sessionID = 0
	}
	return m, tickCmd()
}

// handleToggle is the single Start/Pause action, reachable from the
// space key.
func (m Model) handleToggle() (Model, tea.Cmd) {
	now := time.Now()
	if m.countdown.Paused {
		m.syncCountdownInput()
		m.countdown.Start(now)
		m.syncInputsFromCountdown()
		for i := range m.inputs {
			m.inputs[i].Blur()
		}
		if m.countdown.TotalDuration > 0 {
			id, err := m.store.RecordSessionStart(now, m.countdown.TotalDuration)
			util.LogError("record session", err)
			if err == nil {
				m.sessionID = id
			}
		}
		return m, nil
	}
	m.countdown.Pause()
	return m, m.inputs[m.focus].Focus()
}

func (m Model) handleMark() (Model, tea.Cmd) {
	if m.countdown.Paused {
		m.syncCountdownInput()
	}
	m.countdown.Mark()
	return m, nil
}

func (m Model) cycleFocus(dir int) (Model, tea.Cmd) {
	if !m.countdown.Paused {
		return m, nil
	}
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + dir + fieldCount) % fieldCount
	return m, m.inputs[m.focus].Focus()
}

// handleFieldInput forwards remaining keys to the focused entry field.
// Fields are editable only while paused.
func (m Model) handleFieldInput(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.countdown.Paused {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.syncCountdownInput()
	return m, cmd
}
