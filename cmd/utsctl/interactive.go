package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/chronowerks/utstamp/calendar"
	"github.com/chronowerks/utstamp/calsys"
	"github.com/chronowerks/utstamp/codec"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	modeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type inspectorModel struct {
	input   textinput.Model
	lenient bool
}

func newInspectorModel() *inspectorModel {
	ti := textinput.New()
	ti.Placeholder = "2024-12-14T03:13:21.123456789Z"
	ti.Prompt = "timestamp: "
	ti.Width = 44
	ti.Focus()

	return &inspectorModel{input: ti}
}

func (m *inspectorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab":
			m.lenient = !m.lenient
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *inspectorModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Timestamp Inspector"))
	b.WriteString("  mode: ")
	if m.lenient {
		b.WriteString(modeStyle.Render(" lenient "))
	} else {
		b.WriteString(modeStyle.Render(" strict "))
	}
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if value := m.input.Value(); value != "" {
		b.WriteString(m.renderResult(value))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("type to parse • tab toggle mode • esc quit"))
	return b.String()
}

func (m *inspectorModel) renderResult(value string) string {
	ts, err := parseWithMode(value, m.lenient)
	if err != nil {
		return errorStyle.Render(fmt.Sprintf("✗ %v", err)) + "\n"
	}

	var b strings.Builder
	row := func(label, format string, args ...any) {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-11s", label)))
		b.WriteString(valueStyle.Render(fmt.Sprintf(format, args...)))
		b.WriteString("\n")
	}

	f := calendar.Decode(ts)
	row("instant", "%d", ts.UnixNanos())
	row("canonical", "%s", codec.Format(ts, true))
	row("thai", "%d", calsys.GregorianToThai(f.Year))
	row("dangi", "%d", calsys.GregorianToDangi(f.Year))
	row("minguo", "%d", calsys.GregorianToMinguo(f.Year))

	if era, eraYear, eraErr := calsys.JapaneseEra(ts); eraErr != nil {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-11s", "japanese")))
		b.WriteString(errorStyle.Render("before Meiji"))
		b.WriteString("\n")
	} else {
		row("japanese", "%s %d", era, eraYear)
	}

	isoYear, isoWeek, isoDay := calsys.ISOWeek(ts)
	row("iso week", "%04d-W%02d-%d", isoYear, isoWeek, isoDay)

	return b.String()
}

func runInteractive() error {
	p := tea.NewProgram(newInspectorModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
