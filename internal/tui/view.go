package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/akyairhashvil/countdown/internal/config"
)

func (m Model) View() string {
	var b strings.Builder

	if m.countdown.Paused {
		row := m.inputs[fieldHour].View() + " : " + m.inputs[fieldMinute].View() + " : " + m.inputs[fieldSecond].View()
		b.WriteString(m.theme.Input.Render(row))
	} else {
		b.WriteString(m.theme.Display.Render(m.countdown.Input.String()))
	}
	b.WriteString("\n\n")

	label := "Pause"
	if m.countdown.Paused {
		label = "Start"
	}
	b.WriteString(m.theme.Button.Render("[ "+label+" ]") + " " + m.theme.Hint.Render("space"))
	b.WriteString("\n")
	b.WriteString(m.theme.Mark.Render("Mark: "+m.countdown.Marked.String()) + " " + m.theme.Hint.Render("m"))
	b.WriteString("\n\n")
	footer := m.theme.Dim.Render("tab: switch field  q: quit")
	if m.width > 0 {
		footer = fitLine(footer, m.width)
	}
	b.WriteString(footer)

	content := m.theme.Base.Render(b.String())

	// Center within the window once dimensions are known; the readout
	// grows its whitespace with the terminal the way the original grew
	// its font with the window.
	if m.width >= config.ReferenceWidth && m.height >= config.ReferenceHeight {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// fitLine truncates a rendered line to the given cell width.
func fitLine(s string, max int) string {
	if max <= 0 || ansi.StringWidth(s) <= max {
		return s
	}
	return ansi.Truncate(s, max, "…")
}
