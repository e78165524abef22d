package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/hextiles/internal/storage"
)

// maxBoards is how many saved boards the browser loads.
const maxBoards = 100

// BrowserKeyMap defines the key bindings for the board browser.
type BrowserKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Open   key.Binding
	New    key.Binding
	Delete key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BrowserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.New, k.Delete, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k BrowserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open},
		{k.New, k.Delete},
		{k.Back, k.Quit},
	}
}

// DefaultBrowserKeyMap returns default key bindings.
func DefaultBrowserKeyMap() BrowserKeyMap {
	return BrowserKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "down")),
		Open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		New:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new board")),
		Delete: key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "delete")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// BrowserModel is the Bubble Tea model listing saved boards.
type BrowserModel struct {
	store    *storage.Store
	records  []storage.BoardRecord
	table    table.Model
	help     help.Model
	keys     BrowserKeyMap
	width    int
	height   int
	err      error
	selected *storage.BoardRecord
	wantsNew bool
	back     bool
	quitting bool
}

// NewBrowserModel creates a browser and loads the saved boards.
func NewBrowserModel(store *storage.Store, width, height int) BrowserModel {
	m := BrowserModel{
		store:  store,
		keys:   DefaultBrowserKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *BrowserModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Name", Width: 20},
		{Title: "Region", Width: 12},
		{Title: "Cells", Width: 6},
		{Title: "Updated", Width: 16},
		{Title: "ID", Width: 8},
	}

	// Give the name column whatever width is left
	if extra := m.width - 4 - 70; extra > 0 {
		columns[0].Width += min(extra, 20)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads the saved boards into the table.
func (m *BrowserModel) load() {
	m.records, m.err = nil, nil
	if m.store != nil {
		m.records, m.err = m.store.ListBoards(maxBoards)
	}

	rows := make([]table.Row, len(m.records))
	for i, r := range m.records {
		rows[i] = table.Row{
			r.Name,
			r.Params.String(),
			fmt.Sprint(r.Size),
			humanize.Time(r.UpdatedAt),
			shortID(r.ID),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the browser model.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, nil

		case key.Matches(msg, m.keys.New):
			m.wantsNew = true
			return m, nil

		case key.Matches(msg, m.keys.Open):
			if rec, ok := m.current(); ok {
				m.selected = &rec
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			if rec, ok := m.current(); ok && m.store != nil {
				if err := m.store.DeleteBoard(rec.ID); err != nil {
					m.err = err
					return m, nil
				}
				m.load()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.load()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m BrowserModel) current() (storage.BoardRecord, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.records) {
		return storage.BoardRecord{}, false
	}
	return m.records[i], true
}

// View renders the browser.
func (m BrowserModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.MarginBottom(1).Render(centerText("SAVED BOARDS", m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render("error: " + m.err.Error()))
	}

	// Help bar
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// renderTableContent renders the table or empty message.
func (m BrowserModel) renderTableContent() string {
	if len(m.records) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		if m.store == nil {
			return emptyStyle.Render("Storage is disabled.\nPress n for a new board.")
		}
		return emptyStyle.Render("No boards saved yet.\nPress s on a board to save it.")
	}
	return m.table.View()
}

// Selected returns the board the user opened, or nil.
func (m BrowserModel) Selected() *storage.BoardRecord { return m.selected }

// WantsNew returns true if the user asked for a new board.
func (m BrowserModel) WantsNew() bool { return m.wantsNew }

// IsGoingBack returns true if the user left the browser.
func (m BrowserModel) IsGoingBack() bool { return m.back }

// IsQuitting returns true if user wants to quit entirely.
func (m BrowserModel) IsQuitting() bool { return m.quitting }
