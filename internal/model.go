package internal

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"luhi_tools/internal/config"
	"luhi_tools/internal/ledger"
	"luhi_tools/internal/month"
	"luhi_tools/internal/transfer"
)

type MsgTick struct{}

type Tool int

const (
	ToolTime Tool = iota
	ToolSettings
)

var tools = []struct {
	Tool Tool
	Name string
	Icon string
}{
	{ToolTime, "Time Calculator", "◷"},
	{ToolSettings, "Settings", "⚙"},
}

type mode int

const (
	modeBrowse mode = iota
	modeAdd
	modeEdit
	modeConfirmDelete
	modeImport
)

const noticeTTL = 4 * time.Second

type notice struct {
	Text    string
	IsErr   bool
	Expires time.Time
}

// Model is the whole application state. The ledger knows nothing about the
// UI; every mutation goes through it and the table is rebuilt afterwards.
type Model struct {
	Ledger      *ledger.Ledger
	SidebarOpen bool
	ActiveTool  Tool
	DarkMode    bool
	Notice      notice

	opts     config.Options
	palettes config.Palettes
	styles   styles
	keys     KeyMap
	help     help.Model

	mode        mode
	form        monthForm
	editIndex   int
	deleteIndex int
	table       table.Model
	picker      filepicker.Model

	width  int
	height int
	store  io.Closer
}

func NewModel(opts config.Options, palettes config.Palettes, darkMode bool) (*Model, error) {
	var store ledger.Store
	var closer io.Closer
	switch opts.Store {
	case config.StoreMemory:
		store = ledger.NewMemoryStore()
	default:
		repo, err := month.NewRepository()
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		store, closer = repo, repo
	}

	l := ledger.New(store)
	if !opts.Empty {
		if err := l.Seed(); err != nil {
			closeQuietly(closer)
			return nil, fmt.Errorf("failed to load sample months: %w", err)
		}
	}
	if opts.ImportFile != "" {
		if _, err := transfer.ImportFile(l, opts.ImportFile); err != nil {
			closeQuietly(closer)
			return nil, err
		}
	}

	m := &Model{
		Ledger:      l,
		SidebarOpen: true,
		ActiveTool:  ToolTime,
		DarkMode:    darkMode,
		opts:        opts,
		palettes:    palettes,
		keys:        DefaultKeyMap,
		help:        help.New(),
		table:       newMonthTable(),
		picker:      newPicker(),
		width:       100,
		height:      30,
		store:       closer,
	}
	m.applyTheme()
	if err := m.refresh(); err != nil {
		closeQuietly(closer)
		return nil, err
	}
	return m, nil
}

func closeQuietly(c io.Closer) {
	if c != nil {
		c.Close()
	}
}

func newMonthTable() table.Model {
	return table.New(
		table.WithColumns([]table.Column{
			{Title: "Month", Width: 14},
			{Title: "Expected", Width: 10},
			{Title: "Actual", Width: 12},
			{Title: "Difference", Width: 12},
		}),
		table.WithFocused(true),
		table.WithHeight(10),
	)
}

func newPicker() filepicker.Model {
	// any file may be picked; the parser decides
	fp := filepicker.New()
	fp.ShowHidden = false
	return fp
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case MsgTick:
		if m.Notice.Text != "" && time.Now().After(m.Notice.Expires) {
			m.Notice = notice{}
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetHeight(max(m.height-18, 3))
		m.picker.Height = max(m.height-10, 5)
		if m.mode == modeImport {
			var cmd tea.Cmd
			m.picker, cmd = m.picker.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	// the file picker reads directories asynchronously
	if m.mode == modeImport {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}
	if m.mode == modeAdd || m.mode == modeEdit {
		return m, m.form.update(msg)
	}
	return m, nil
}

func (m *Model) View() string {
	switch m.mode {
	case modeAdd:
		return m.formView("Add Month")
	case modeEdit:
		return m.formView("Edit Month")
	case modeConfirmDelete:
		return m.confirmView()
	case modeImport:
		return m.importView()
	}
	return m.mainView()
}

// SelectedIndex is the ledger index under the table cursor, or -1.
func (m *Model) SelectedIndex() int {
	n, err := m.Ledger.Len()
	if err != nil {
		return -1
	}
	i := m.table.Cursor()
	if i < 0 || i >= n {
		return -1
	}
	return i
}

func (m *Model) Close() error {
	if m.store == nil {
		return nil
	}
	return m.store.Close()
}

func (m *Model) setNotice(text string) {
	m.Notice = notice{Text: text, Expires: time.Now().Add(noticeTTL)}
}

func (m *Model) setError(err error) {
	m.Notice = notice{Text: describeError(err), IsErr: true, Expires: time.Now().Add(noticeTTL)}
}

func describeError(err error) string {
	switch {
	case errors.Is(err, month.ErrInvalidInput):
		return "Invalid input: " + err.Error()
	case errors.Is(err, ledger.ErrMalformedImport):
		return "Invalid file format. Expected a JSON with a months array."
	case errors.Is(err, transfer.ErrUnsupportedFileType):
		return "Please drop a JSON file."
	}
	return err.Error()
}

// refresh rebuilds the table rows from the ledger.
func (m *Model) refresh() error {
	records, err := m.Ledger.Records()
	if err != nil {
		return err
	}
	rows := make([]table.Row, len(records))
	for i, r := range records {
		rows[i] = table.Row{
			r.Name,
			month.FormatDuration(r.Expected, true),
			month.FormatDuration(r.Actual, true),
			month.FormatSigned(r.Diff, true),
		}
	}
	m.table.SetRows(rows)
	if len(rows) > 0 && m.table.Cursor() >= len(rows) {
		m.table.SetCursor(len(rows) - 1)
	}
	return nil
}

func (m *Model) refreshOrReport() {
	if err := m.refresh(); err != nil {
		log.Error().Err(err).Msg("could not list months")
		m.setError(err)
	}
}

func (m *Model) applyTheme() {
	p := m.palettes.Light
	if m.DarkMode {
		p = m.palettes.Dark
	}
	m.styles = newStyles(p)
	m.table.SetStyles(m.styles.table)
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeAdd, modeEdit:
		return m.handleFormInput(msg)
	case modeConfirmDelete:
		return m.handleConfirmInput(msg)
	case modeImport:
		return m.handlePickerInput(msg)
	}

	// terminals paste the path of a file dropped onto them
	if msg.Paste {
		m.dropFile(string(msg.Runes))
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Theme):
		m.DarkMode = !m.DarkMode
		m.applyTheme()
		return m, nil
	case key.Matches(msg, m.keys.Sidebar):
		m.SidebarOpen = !m.SidebarOpen
		return m, nil
	case key.Matches(msg, m.keys.NextTool):
		m.ActiveTool = tools[(int(m.ActiveTool)+1)%len(tools)].Tool
		return m, nil
	}

	if m.ActiveTool != ToolTime {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.table.MoveUp(1)
	case key.Matches(msg, m.keys.Down):
		m.table.MoveDown(1)
	case key.Matches(msg, m.keys.Add):
		m.mode = modeAdd
		m.form = newMonthForm()
		return m, m.form.focusField(fieldName)
	case key.Matches(msg, m.keys.Edit):
		i := m.SelectedIndex()
		if i < 0 {
			break
		}
		records, err := m.Ledger.Records()
		if err != nil {
			m.setError(err)
			break
		}
		m.mode = modeEdit
		m.editIndex = i
		m.form = newMonthFormFrom(month.EntryFromRecord(records[i]))
		return m, m.form.focusField(fieldName)
	case key.Matches(msg, m.keys.Delete):
		if i := m.SelectedIndex(); i >= 0 {
			m.mode = modeConfirmDelete
			m.deleteIndex = i
		}
	case key.Matches(msg, m.keys.Export):
		path, err := transfer.Export(m.Ledger, m.opts.ExportDir)
		if err != nil {
			log.Error().Err(err).Msg("export failed")
			m.setError(err)
			break
		}
		m.setNotice("Exported to " + path)
	case key.Matches(msg, m.keys.Import):
		m.mode = modeImport
		m.picker = newPicker()
		m.picker.Height = max(m.height-10, 5)
		return m, m.picker.Init()
	}
	return m, nil
}

func (m *Model) handleFormInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.mode = modeBrowse
		return m, nil
	case "tab", "down":
		return m, m.form.next()
	case "shift+tab", "up":
		return m, m.form.prev()
	case "enter":
		if !m.form.onLastField() {
			return m, m.form.next()
		}
		m.submitForm()
		return m, nil
	}
	return m, m.form.update(msg)
}

// submitForm applies the form. On any error the ledger is unchanged and the
// form closes with a notice, like a cancelled prompt.
func (m *Model) submitForm() {
	defer func() { m.mode = modeBrowse }()

	e, err := m.form.entry()
	if err != nil {
		log.Debug().Err(err).Msg("form rejected")
		m.setError(err)
		return
	}

	var r month.Record
	if m.mode == modeAdd {
		r, err = m.Ledger.Add(e)
	} else {
		r, err = m.Ledger.Edit(m.editIndex, e)
	}
	if err != nil {
		log.Error().Err(err).Msg("could not save month")
		m.setError(err)
		return
	}

	if m.mode == modeAdd {
		log.Info().Str("name", r.Name).Float64("expected", r.Expected).Float64("actual", r.Actual).Msg("added month")
		m.refreshOrReport()
		m.table.GotoBottom()
		m.setNotice("Added " + r.Name)
		return
	}
	log.Info().Int("index", m.editIndex).Str("name", r.Name).Float64("diff", r.Diff).Msg("edited month")
	m.refreshOrReport()
	m.setNotice("Updated " + r.Name)
}

func (m *Model) handleConfirmInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		r, err := m.Ledger.Delete(m.deleteIndex)
		if err != nil {
			log.Error().Err(err).Int("index", m.deleteIndex).Msg("could not delete month")
			m.setError(err)
		} else {
			log.Info().Int("index", m.deleteIndex).Str("name", r.Name).Msg("deleted month")
			m.refreshOrReport()
			m.setNotice("Deleted " + r.Name)
		}
		m.mode = modeBrowse
	case "n", "N", "esc", "ctrl+c", "q":
		m.mode = modeBrowse
	}
	return m, nil
}

func (m *Model) handlePickerInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c", "q":
		m.mode = modeBrowse
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.mode = modeBrowse
		m.importFile(path)
		return m, nil
	}
	return m, cmd
}

func (m *Model) importFile(path string) {
	n, err := transfer.ImportFile(m.Ledger, path)
	if err != nil {
		m.setError(err)
		return
	}
	m.table.SetCursor(0)
	m.refreshOrReport()
	m.setNotice(fmt.Sprintf("Imported %d months", n))
}

func (m *Model) dropFile(pasted string) {
	path := transfer.CleanDroppedPath(pasted)
	if path == "" {
		return
	}
	n, err := transfer.ImportDrop(m.Ledger, path)
	if err != nil {
		m.setError(err)
		return
	}
	m.table.SetCursor(0)
	m.refreshOrReport()
	m.setNotice(fmt.Sprintf("Imported %d months", n))
}
