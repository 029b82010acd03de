package internal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"luhi_tools/internal/config"
	"luhi_tools/internal/ledger"
	"luhi_tools/internal/month"
)

const (
	sidebarOpenWidth   = 22
	sidebarClosedWidth = 5
)

type styles struct {
	title       lipgloss.Style
	sidebar     lipgloss.Style
	toolActive  lipgloss.Style
	toolIdle    lipgloss.Style
	card        lipgloss.Style
	cardLabel   lipgloss.Style
	cardValue   lipgloss.Style
	expected    lipgloss.Style
	actual      lipgloss.Style
	positive    lipgloss.Style
	negative    lipgloss.Style
	muted       lipgloss.Style
	box         lipgloss.Style
	input       lipgloss.Style
	inputIdle   lipgloss.Style
	noticeInfo  lipgloss.Style
	noticeError lipgloss.Style
	table       table.Styles
}

func newStyles(p config.Palette) styles {
	color := func(c string) lipgloss.Color { return lipgloss.Color(c) }

	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(color(p.Border)).
		BorderBottom(true).
		Foreground(color(p.Muted)).
		Bold(true)
	ts.Cell = ts.Cell.Foreground(color(p.Text))
	ts.Selected = ts.Selected.
		Foreground(color(p.Accent)).
		Background(color(p.Highlight)).
		Bold(true)

	return styles{
		title: lipgloss.NewStyle().
			Foreground(color(p.Accent)).
			Bold(true),
		sidebar: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), false, true, false, false).
			BorderForeground(color(p.Border)).
			Padding(0, 1),
		toolActive: lipgloss.NewStyle().
			Foreground(color(p.Accent)).
			Background(color(p.Highlight)).
			Bold(true),
		toolIdle: lipgloss.NewStyle().
			Foreground(color(p.Muted)),
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(color(p.Border)).
			Padding(0, 1).
			Width(16),
		cardLabel: lipgloss.NewStyle().
			Foreground(color(p.Muted)),
		cardValue: lipgloss.NewStyle().
			Foreground(color(p.Text)).
			Bold(true),
		expected: lipgloss.NewStyle().
			Foreground(color(p.Secondary)).
			Bold(true),
		actual: lipgloss.NewStyle().
			Foreground(color(p.Accent)).
			Bold(true),
		positive: lipgloss.NewStyle().
			Foreground(color(p.Positive)).
			Bold(true),
		negative: lipgloss.NewStyle().
			Foreground(color(p.Negative)).
			Bold(true),
		muted: lipgloss.NewStyle().
			Foreground(color(p.Muted)),
		box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(color(p.Border)).
			Padding(1, 2),
		input: lipgloss.NewStyle().
			Foreground(color(p.Accent)),
		inputIdle: lipgloss.NewStyle().
			Foreground(color(p.Muted)),
		noticeInfo: lipgloss.NewStyle().
			Foreground(color(p.Positive)),
		noticeError: lipgloss.NewStyle().
			Foreground(color(p.Negative)).
			Bold(true),
		table: ts,
	}
}

func (m *Model) mainView() string {
	var content string
	switch m.ActiveTool {
	case ToolSettings:
		content = m.settingsView()
	default:
		content = m.timeCalculatorView()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.sidebarView(), "  ", content)
}

func (m *Model) sidebarView() string {
	var sb strings.Builder
	width := sidebarClosedWidth
	if m.SidebarOpen {
		width = sidebarOpenWidth
		sb.WriteString(m.styles.title.Render("Luhi Tools"))
	} else {
		sb.WriteString(m.styles.title.Render("≡"))
	}
	sb.WriteString("\n\n")

	for _, t := range tools {
		line := t.Icon
		if m.SidebarOpen {
			line = fmt.Sprintf("%s %s", t.Icon, t.Name)
		}
		if t.Tool == m.ActiveTool {
			sb.WriteString(m.styles.toolActive.Render(line))
		} else {
			sb.WriteString(m.styles.toolIdle.Render(line))
		}
		sb.WriteString("\n")
	}

	return m.styles.sidebar.Width(width).Height(max(m.height-1, 10)).Render(sb.String())
}

func (m *Model) timeCalculatorView() string {
	var sb strings.Builder

	sb.WriteString(m.styles.title.Render("◷ Time Calculator"))
	sb.WriteString("\n\n")
	sb.WriteString(m.overviewView())
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.cardValue.Render("Monthly Breakdown"))
	sb.WriteString("\n")

	if n, _ := m.Ledger.Len(); n == 0 {
		sb.WriteString(m.styles.muted.Render("No months yet. Press 'n' to add one, 'i' to import or drop a .json file here."))
	} else {
		sb.WriteString(m.table.View())
	}
	sb.WriteString("\n\n")
	sb.WriteString(m.noticeView())
	sb.WriteString(m.help.ShortHelpView(m.keys.timeHelp()))

	return sb.String()
}

func (m *Model) overviewView() string {
	totals, err := m.Ledger.Totals()
	if err != nil {
		return m.styles.noticeError.Render(err.Error())
	}

	balance := m.styles.positive
	if totals.Diff < 0 {
		balance = m.styles.negative
	}

	card := func(label, value string, valueStyle lipgloss.Style) string {
		return m.styles.card.Render(m.styles.cardLabel.Render(label) + "\n" + valueStyle.Render(value))
	}

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Months", fmt.Sprintf("%d", totals.Months), m.styles.cardValue),
		card("Expected Hours", month.FormatDuration(totals.Expected, true), m.styles.expected),
		card("Actual Hours", month.FormatDuration(totals.Actual, true), m.styles.actual),
		card("Balance", month.FormatSigned(totals.Diff, true), balance),
	)
	return m.styles.cardValue.Render("Year Overview") + "\n" + cards + "\n" +
		m.styles.muted.Render(fmt.Sprintf("≈ %d work days at %dh", totals.WorkDays(), ledger.HoursPerWorkDay))
}

func (m *Model) settingsView() string {
	theme := "light"
	if m.DarkMode {
		theme = "dark"
	}
	logFile := m.opts.LogOutputFile
	if logFile == "" {
		logFile = "(dropped)"
	}

	rows := [][2]string{
		{"Theme", theme},
		{"Store", m.opts.Store + " (in memory)"},
		{"Export directory", m.opts.ExportDir},
		{"Log file", logFile},
	}

	var sb strings.Builder
	sb.WriteString(m.styles.title.Render("⚙ Settings"))
	sb.WriteString("\n\n")
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%s %s\n", m.styles.cardLabel.Width(18).Render(r[0]), m.styles.cardValue.Render(r[1])))
	}
	sb.WriteString("\n")
	sb.WriteString(m.noticeView())
	sb.WriteString(m.help.ShortHelpView(m.keys.settingsHelp()))
	return sb.String()
}

func (m *Model) noticeView() string {
	if m.Notice.Text == "" {
		return "\n"
	}
	if m.Notice.IsErr {
		return m.styles.noticeError.Render(m.Notice.Text) + "\n"
	}
	return m.styles.noticeInfo.Render(m.Notice.Text) + "\n"
}

func (m *Model) formView(title string) string {
	var sb strings.Builder
	for i, ti := range m.form.inputs {
		marker := "  "
		label := m.styles.inputIdle
		if i == m.form.focus {
			marker = "→ "
			label = m.styles.input
		}
		sb.WriteString(label.Render(fmt.Sprintf("%s%-16s", marker, fieldLabels[i]+":")))
		sb.WriteString(ti.View())
		sb.WriteString("\n\n")
	}
	sb.WriteString(m.styles.muted.Render("Tab: Next field | Enter: Next / Save | Esc: Cancel"))

	form := m.styles.title.Render(title) + "\n\n" + sb.String()
	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		m.styles.box.Width(52).Render(form),
	)
}

func (m *Model) confirmView() string {
	name := ""
	if records, err := m.Ledger.Records(); err == nil && m.deleteIndex < len(records) {
		name = records[m.deleteIndex].Name
	}
	body := fmt.Sprintf("Are you sure you want to delete %s?\n\n%s",
		m.styles.cardValue.Render(name),
		m.styles.muted.Render("y: Delete | n/Esc: Keep"),
	)
	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		m.styles.box.Render(body),
	)
}

func (m *Model) importView() string {
	var sb strings.Builder
	sb.WriteString(m.styles.title.Render("Import time data"))
	sb.WriteString("\n")
	sb.WriteString(m.styles.muted.Render(m.picker.CurrentDirectory))
	sb.WriteString("\n\n")
	sb.WriteString(m.picker.View())
	sb.WriteString("\n")
	sb.WriteString(m.noticeView())
	sb.WriteString(m.styles.muted.Render("Enter: Open / Import | Backspace: Up | Esc: Cancel"))
	return sb.String()
}
