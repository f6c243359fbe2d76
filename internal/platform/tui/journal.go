package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/maze-arcade/internal/storage"
)

// Journal layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the level sidebar
	sidebarWidth       = 20  // Width of level sidebar
	maxJournalRows     = 100 // Max builds to load
)

// JournalKeyMap defines the key bindings for the journal browser.
type JournalKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextLevel key.Binding
	PrevLevel key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k JournalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextLevel, k.PrevLevel, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k JournalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextLevel, k.PrevLevel},
		{k.Back, k.Quit},
	}
}

// DefaultJournalKeyMap returns default key bindings.
func DefaultJournalKeyMap() JournalKeyMap {
	return JournalKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextLevel: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next level"),
		),
		PrevLevel: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev level"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// JournalModel is the Bubble Tea model for browsing journaled builds.
// Level 0 in the filter list means "all levels".
type JournalModel struct {
	levels      []int
	levelCursor int
	store       *storage.Store
	stats       map[int]*storage.LevelStats
	builds      []storage.BuildRecord
	table       table.Model
	help        help.Model
	keys        JournalKeyMap
	width       int
	height      int
	loadErr     error
	quitting    bool
	goingBack   bool
	embedded    bool // Back returns to a menu instead of quitting
	showSidebar bool
}

// NewJournalModel creates a new journal browser.
func NewJournalModel(store *storage.Store, width, height int) JournalModel {
	h := help.New()
	h.ShowAll = false

	m := JournalModel{
		levels:      []int{0},
		store:       store,
		keys:        DefaultJournalKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	if store != nil {
		stats, err := store.GetLevelStats()
		if err != nil {
			m.loadErr = err
		} else {
			m.stats = stats
			for lvl := range stats {
				m.levels = append(m.levels, lvl)
			}
			slices.Sort(m.levels)
		}
	}

	m.table = m.createTable()
	m.loadBuilds()

	return m
}

// Embedded makes the back binding return to a parent menu.
func (m JournalModel) Embedded() JournalModel {
	m.embedded = true
	return m
}

// createTable creates a new table with appropriate columns.
func (m *JournalModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Level", Width: 5},
		{Title: "Seed", Width: 20},
		{Title: "Walls", Width: 6},
		{Title: "Goals", Width: 7},
		{Title: "Date", Width: 12},
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

// loadBuilds loads the journal rows for the selected level filter.
func (m *JournalModel) loadBuilds() {
	m.builds = nil
	if m.store != nil {
		var (
			builds []storage.BuildRecord
			err    error
		)
		if lvl := m.levels[m.levelCursor]; lvl == 0 {
			builds, err = m.store.RecentBuilds(maxJournalRows)
		} else {
			builds, err = m.store.BuildsForLevel(lvl, maxJournalRows)
		}
		if err != nil {
			m.loadErr = err
		} else {
			m.builds = builds
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current builds.
func (m *JournalModel) updateTableRows() {
	rows := make([]table.Row, len(m.builds))
	for i, b := range m.builds {
		rows[i] = table.Row{
			fmt.Sprintf("%d", b.Level),
			fmt.Sprintf("%d", b.Seed),
			fmt.Sprintf("%d", b.Walls),
			fmt.Sprintf("%d/%d", b.Goals, b.GoalTarget),
			b.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m JournalModel) levelLabel(i int) string {
	if m.levels[i] == 0 {
		return "All levels"
	}
	return fmt.Sprintf("Level %d", m.levels[i])
}

// Init initializes the journal model.
func (m JournalModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the journal.
func (m JournalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			if !m.embedded {
				m.quitting = true
				return m, tea.Quit
			}
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.NextLevel):
			m.levelCursor = (m.levelCursor + 1) % len(m.levels)
			m.loadBuilds()
			return m, nil

		case key.Matches(msg, m.keys.PrevLevel):
			m.levelCursor--
			if m.levelCursor < 0 {
				m.levelCursor = len(m.levels) - 1
			}
			m.loadBuilds()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the journal.
func (m JournalModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := fmt.Sprintf("BUILD JOURNAL - %s", m.levelLabel(m.levelCursor))
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableRendered := tableStyle.Render(m.renderTableContent())

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", tableRendered))
	} else {
		b.WriteString(tableRendered)
	}

	b.WriteString("\n")
	b.WriteString(helpBarStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderSidebar lists level filters with their aggregate stats.
func (m JournalModel) renderSidebar() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Levels\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, lvl := range m.levels {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.levelCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}

		line := m.levelLabel(i)
		if st, ok := m.stats[lvl]; ok {
			line = fmt.Sprintf("L%-3d x%d", lvl, st.Builds)
		}
		sidebar.WriteString(style.Render(cursor + line))
		sidebar.WriteString("\n")
	}

	return sidebarStyle.Render(sidebar.String())
}

// renderTableContent renders the table or empty message.
func (m JournalModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if m.loadErr != nil {
		return emptyStyle.Render(fmt.Sprintf("Journal unavailable:\n%v", m.loadErr))
	}
	if len(m.builds) == 0 {
		return emptyStyle.Render("No builds recorded yet.\nGenerate a map to fill the journal!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m JournalModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m JournalModel) IsQuitting() bool {
	return m.quitting
}

// RunJournal runs the journal browser as a standalone program.
func RunJournal(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewJournalModel(store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
