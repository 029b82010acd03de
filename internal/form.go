package internal

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"luhi_tools/internal/month"
)

const (
	fieldName = iota
	fieldExpected
	fieldActualHours
	fieldActualMinutes
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Month",
	"Expected hours",
	"Actual hours",
	"Actual minutes",
}

// monthForm collects the four fields of an add or edit.
type monthForm struct {
	inputs [fieldCount]textinput.Model
	focus  int
}

func newMonthForm() monthForm {
	var f monthForm
	for i := range f.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Width = 24
		switch i {
		case fieldName:
			ti.Placeholder = "January"
			ti.CharLimit = 40
		case fieldActualMinutes:
			ti.Placeholder = "0"
			ti.CharLimit = 2
		default:
			ti.Placeholder = "0"
			ti.CharLimit = 8
		}
		f.inputs[i] = ti
	}
	return f
}

func newMonthFormFrom(e month.Entry) monthForm {
	f := newMonthForm()
	f.inputs[fieldName].SetValue(e.Name)
	f.inputs[fieldExpected].SetValue(strconv.FormatFloat(e.ExpectedHours, 'f', -1, 64))
	f.inputs[fieldActualHours].SetValue(strconv.Itoa(e.ActualHours))
	f.inputs[fieldActualMinutes].SetValue(strconv.Itoa(e.ActualMinutes))
	return f
}

func (f *monthForm) focusField(i int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = (i + fieldCount) % fieldCount
	return f.inputs[f.focus].Focus()
}

func (f *monthForm) next() tea.Cmd { return f.focusField(f.focus + 1) }
func (f *monthForm) prev() tea.Cmd { return f.focusField(f.focus - 1) }

func (f *monthForm) onLastField() bool {
	return f.focus == fieldCount-1
}

func (f *monthForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// entry parses the raw field values.
func (f *monthForm) entry() (month.Entry, error) {
	return month.ParseEntry(
		f.inputs[fieldName].Value(),
		f.inputs[fieldExpected].Value(),
		f.inputs[fieldActualHours].Value(),
		f.inputs[fieldActualMinutes].Value(),
	)
}
