package internal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"luhi_tools/internal/config"
	"luhi_tools/internal/month"
)

func testModel(t *testing.T) *Model {
	t.Helper()
	opts := config.Defaults()
	opts.ExportDir = t.TempDir()
	m, err := NewModel(opts, config.DefaultPalettes(), true)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	t.Cleanup(func() { m.Close() })
	return m
}

func press(m *Model, keys ...string) {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEscape}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "backspace":
			msg = tea.KeyMsg{Type: tea.KeyBackspace}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m.Update(msg)
	}
}

func typeText(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func records(t *testing.T, m *Model) []month.Record {
	t.Helper()
	rs, err := m.Ledger.Records()
	if err != nil {
		t.Fatalf("Records: %v", err)
	}
	return rs
}

func TestNewModelSeedsSampleMonths(t *testing.T) {
	m := testModel(t)
	if n := len(records(t, m)); n != 4 {
		t.Fatalf("records = %d, want 4", n)
	}
	view := m.View()
	for _, want := range []string{"Time Calculator", "January", "April", "Year Overview"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q", want)
		}
	}
}

func TestNewModelEmptyMemoryStore(t *testing.T) {
	opts := config.Defaults()
	opts.Store = config.StoreMemory
	opts.Empty = true
	m, err := NewModel(opts, config.DefaultPalettes(), false)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	if n := len(records(t, m)); n != 0 {
		t.Fatalf("records = %d, want 0", n)
	}
	if m.SelectedIndex() != -1 {
		t.Fatalf("selected = %d, want -1", m.SelectedIndex())
	}
	if !strings.Contains(m.View(), "No months yet") {
		t.Fatalf("empty view missing hint")
	}
}

func TestNewModelImportFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	os.WriteFile(path, []byte(`{"notMonths": []}`), 0644)

	opts := config.Defaults()
	opts.ImportFile = path
	if _, err := NewModel(opts, config.DefaultPalettes(), true); err == nil {
		t.Fatalf("expected import error")
	}
}

func TestAddMonthThroughForm(t *testing.T) {
	m := testModel(t)

	press(m, "n")
	if m.mode != modeAdd {
		t.Fatalf("mode = %v, want add", m.mode)
	}
	typeText(m, "May")
	press(m, "enter")
	typeText(m, "168")
	press(m, "enter")
	typeText(m, "170")
	press(m, "enter")
	typeText(m, "30")
	press(m, "enter")

	if m.mode != modeBrowse {
		t.Fatalf("form still open")
	}
	rs := records(t, m)
	if len(rs) != 5 {
		t.Fatalf("records = %d, want 5", len(rs))
	}
	want := month.Record{Name: "May", Expected: 168, Actual: 170.5, Diff: 2.5}
	if rs[4] != want {
		t.Fatalf("added = %+v, want %+v", rs[4], want)
	}
	if m.SelectedIndex() != 4 {
		t.Fatalf("cursor = %d, want 4", m.SelectedIndex())
	}
}

func TestAddMonthInvalidInputIsNoop(t *testing.T) {
	m := testModel(t)

	press(m, "n")
	typeText(m, "June")
	press(m, "enter")
	typeText(m, "abc")
	press(m, "enter", "enter", "enter")

	if m.mode != modeBrowse {
		t.Fatalf("form still open")
	}
	if n := len(records(t, m)); n != 4 {
		t.Fatalf("records = %d, want 4", n)
	}
	if !m.Notice.IsErr || !strings.Contains(m.Notice.Text, "Invalid input") {
		t.Fatalf("notice = %+v", m.Notice)
	}
}

func TestAddMonthCancel(t *testing.T) {
	m := testModel(t)
	press(m, "n")
	typeText(m, "July")
	press(m, "esc")
	if m.mode != modeBrowse {
		t.Fatalf("form still open")
	}
	if n := len(records(t, m)); n != 4 {
		t.Fatalf("records = %d, want 4", n)
	}
}

func TestEditSelectedMonth(t *testing.T) {
	m := testModel(t)

	press(m, "j", "e")
	if m.mode != modeEdit || m.editIndex != 1 {
		t.Fatalf("mode = %v index = %d", m.mode, m.editIndex)
	}
	// jump to the actual hours field and replace 184 with 180
	press(m, "tab", "tab", "backspace", "backspace", "backspace")
	typeText(m, "180")
	press(m, "tab", "enter")

	rs := records(t, m)
	want := month.Record{Name: "February", Expected: 174, Actual: 180, Diff: 6}
	if rs[1] != want {
		t.Fatalf("edited = %+v, want %+v", rs[1], want)
	}
	if rs[0].Name != "January" || rs[2].Name != "March" {
		t.Fatalf("order changed: %+v", rs)
	}
}

func TestDeleteNeedsConfirmation(t *testing.T) {
	m := testModel(t)

	press(m, "j", "d")
	if m.mode != modeConfirmDelete {
		t.Fatalf("mode = %v, want confirm", m.mode)
	}
	if !strings.Contains(m.View(), "February") {
		t.Fatalf("confirm view should name the month")
	}
	press(m, "n")
	if n := len(records(t, m)); n != 4 {
		t.Fatalf("declined delete removed a month")
	}

	press(m, "d", "y")
	rs := records(t, m)
	if len(rs) != 3 {
		t.Fatalf("records = %d, want 3", len(rs))
	}
	if rs[0].Name != "January" || rs[1].Name != "March" || rs[2].Name != "April" {
		t.Fatalf("records = %+v", rs)
	}
}

func TestDeleteLastKeepsCursorInRange(t *testing.T) {
	m := testModel(t)
	press(m, "j", "j", "j", "d", "y")
	if got := m.SelectedIndex(); got != 2 {
		t.Fatalf("cursor = %d, want 2", got)
	}
}

func TestExportWritesFile(t *testing.T) {
	m := testModel(t)
	press(m, "x")

	path := filepath.Join(m.opts.ExportDir, "time_data.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("export not written: %v", err)
	}
	if !strings.Contains(string(data), `"name": "January"`) {
		t.Fatalf("export = %s", data)
	}
	if m.Notice.IsErr || !strings.Contains(m.Notice.Text, path) {
		t.Fatalf("notice = %+v", m.Notice)
	}
}

func TestDropNonJSONRejected(t *testing.T) {
	m := testModel(t)
	path := filepath.Join(t.TempDir(), "report.txt")
	os.WriteFile(path, []byte(`{"months": []}`), 0644)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(path), Paste: true})

	if n := len(records(t, m)); n != 4 {
		t.Fatalf("records = %d, want 4", n)
	}
	if !m.Notice.IsErr || !strings.Contains(m.Notice.Text, "JSON") {
		t.Fatalf("notice = %+v", m.Notice)
	}
}

func TestDropJSONImports(t *testing.T) {
	m := testModel(t)
	path := filepath.Join(t.TempDir(), "time_data.json")
	os.WriteFile(path, []byte(`{"months": [{"name": "Only", "expected": 10, "actual": 12, "diff": 0}]}`), 0644)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("'" + path + "'"), Paste: true})

	rs := records(t, m)
	if len(rs) != 1 || rs[0].Diff != 2 {
		t.Fatalf("records = %+v", rs)
	}
	if m.Notice.IsErr {
		t.Fatalf("notice = %+v", m.Notice)
	}
}

func TestImportFileMalformedKeepsLedger(t *testing.T) {
	m := testModel(t)
	path := filepath.Join(t.TempDir(), "bad.json")
	os.WriteFile(path, []byte(`{"months": 3}`), 0644)

	m.importFile(path)

	if n := len(records(t, m)); n != 4 {
		t.Fatalf("records = %d, want 4", n)
	}
	if !strings.Contains(m.Notice.Text, "months array") {
		t.Fatalf("notice = %+v", m.Notice)
	}
}

func TestEditImportedDecimalMonthWithoutChanges(t *testing.T) {
	m := testModel(t)
	path := filepath.Join(t.TempDir(), "time_data.json")
	os.WriteFile(path, []byte(`{"months": [{"name": "March", "expected": 7.5, "actual": 8.01}]}`), 0644)
	m.importFile(path)
	before := records(t, m)

	press(m, "e", "enter", "enter", "enter", "enter")

	if m.mode != modeBrowse {
		t.Fatalf("form still open")
	}
	if after := records(t, m); after[0] != before[0] {
		t.Fatalf("edit rewrote %+v to %+v", before[0], after[0])
	}
}

func TestImportPickerAcceptsAnyFile(t *testing.T) {
	if types := newPicker().AllowedTypes; len(types) != 0 {
		t.Fatalf("picker filters by %v", types)
	}

	m := testModel(t)
	path := filepath.Join(t.TempDir(), "hours.txt")
	os.WriteFile(path, []byte(`{"months": [{"name": "May", "expected": 1, "actual": 2}]}`), 0644)
	m.importFile(path)

	if rs := records(t, m); len(rs) != 1 || rs[0].Name != "May" {
		t.Fatalf("records = %+v", rs)
	}
}

func TestImportPickerCancel(t *testing.T) {
	m := testModel(t)
	press(m, "i")
	if m.mode != modeImport {
		t.Fatalf("mode = %v, want import", m.mode)
	}
	press(m, "esc")
	if m.mode != modeBrowse {
		t.Fatalf("picker still open")
	}
}

func TestThemeSidebarAndTools(t *testing.T) {
	m := testModel(t)

	press(m, "t")
	if m.DarkMode {
		t.Fatalf("theme toggle did not switch to light")
	}
	press(m, "s")
	if m.SidebarOpen {
		t.Fatalf("sidebar should be collapsed")
	}
	if strings.Contains(m.View(), "Luhi Tools") {
		t.Fatalf("collapsed sidebar shows the title")
	}

	press(m, "tab")
	if m.ActiveTool != ToolSettings {
		t.Fatalf("tool = %v, want settings", m.ActiveTool)
	}
	if !strings.Contains(m.View(), "Export directory") {
		t.Fatalf("settings view missing")
	}
	// ledger keys are inert outside the calculator
	press(m, "n")
	if m.mode != modeBrowse {
		t.Fatalf("add form opened on settings page")
	}
	press(m, "tab")
	if m.ActiveTool != ToolTime {
		t.Fatalf("tool = %v, want time", m.ActiveTool)
	}
}

func TestNoticeExpires(t *testing.T) {
	m := testModel(t)
	m.setNotice("hello")
	m.Update(MsgTick{})
	if m.Notice.Text != "hello" {
		t.Fatalf("notice expired early")
	}
	m.Notice.Expires = time.Now().Add(-time.Second)
	m.Update(MsgTick{})
	if m.Notice.Text != "" {
		t.Fatalf("notice did not expire")
	}
}

func TestQuit(t *testing.T) {
	m := testModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}
