package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/maze-arcade/internal/config"
	"github.com/vovakirdan/maze-arcade/internal/core"
	"github.com/vovakirdan/maze-arcade/internal/maze"
	"github.com/vovakirdan/maze-arcade/internal/storage"
)

// ViewerModel is the Bubble Tea model for browsing generated maps.
//
// Every build uses a fresh director seeded with the current seed, so a
// journaled (level, seed) pair reproduces the map shown here.
type ViewerModel struct {
	cfg     config.MazeConfig
	store   *storage.Store
	logger  *log.Logger
	holders *maze.Holders
	preview *Preview
	keys    ViewerKeyMap
	help    help.Model
	config  core.RuntimeConfig
	level   int
	report  maze.GoalReport
	err     error

	quitting   bool
	backToMenu bool
	canGoBack  bool // Back key returns to a menu instead of being ignored
}

// NewViewerModel creates a viewer and builds the starting level.
func NewViewerModel(cfg config.MazeConfig, store *storage.Store, rc core.RuntimeConfig, logger *log.Logger) ViewerModel {
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "viewer"})
	}

	h := help.New()
	h.Width = rc.ScreenW

	m := ViewerModel{
		cfg:     cfg,
		store:   store,
		logger:  logger,
		holders: &maze.Holders{},
		keys:    DefaultViewerKeyMap(),
		help:    h,
		config:  rc,
		level:   max(cfg.Difficulty.StartLevel, 1),
	}
	screen := m.screenConfig()
	m.preview = NewPreview(cfg.Palette, screen.Width, screen.Height)
	m.build()
	return m
}

// WithBack enables the back binding, used when the viewer runs under a menu.
func (m ViewerModel) WithBack() ViewerModel {
	m.canGoBack = true
	return m
}

// screenConfig derives the map area from the terminal size,
// leaving one row for the HUD and the rest for help.
func (m ViewerModel) screenConfig() config.ScreenConfig {
	s := m.cfg.Screen
	if m.config.ScreenW > 0 && m.config.ScreenH > 0 {
		s.Width = m.config.ScreenW
		s.Height = max(m.config.ScreenH-1-m.helpHeight(), 0)
	}
	return s
}

func (m ViewerModel) helpHeight() int {
	if !m.help.ShowAll {
		return 1
	}
	rows := 0
	for _, col := range m.keys.FullHelp() {
		rows = max(rows, len(col))
	}
	return rows
}

// build generates the current level and commits it to the holders.
// A failed build leaves the previous map in place and records the error.
func (m *ViewerModel) build() {
	screen := m.screenConfig()

	d, err := maze.NewDirector(m.cfg, maze.WithSeed(m.config.Seed), maze.WithLogger(m.logger))
	if err != nil {
		m.err = err
		return
	}
	res, err := d.BuildMap(maze.BuildRequest{Level: m.level, Screen: screen})
	if err != nil {
		m.err = err
		return
	}

	m.err = nil
	m.preview.Resize(screen.Width, screen.Height)
	m.holders.Commit(res)
	m.report = res.Report

	if m.store != nil {
		// The journal is best-effort, the viewer keeps the new map regardless.
		if _, err := m.store.SaveBuild(storage.NewBuildRecord(res, m.config.Seed)); err != nil {
			m.logger.Debug("journal write failed", "level", m.level, "seed", m.config.Seed, "error", err)
		}
	}
}

// Init initializes the model.
func (m ViewerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.build()
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m ViewerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		if m.canGoBack {
			m.backToMenu = true
		}

	case key.Matches(msg, m.keys.Next):
		m.stepLevel(1)

	case key.Matches(msg, m.keys.Prev):
		m.stepLevel(-1)

	case key.Matches(msg, m.keys.Reroll):
		m.config.Seed = time.Now().UnixNano()
		m.build()

	case key.Matches(msg, m.keys.Shot):
		m.saveScreenshot()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.build()
	}

	return m, nil
}

// stepLevel moves to a neighbouring level when progression is enabled.
func (m *ViewerModel) stepLevel(delta int) {
	if !m.cfg.Difficulty.Progression {
		return
	}
	next := core.Clamp(m.level+delta, 1, m.cfg.Difficulty.MaxLevel)
	if next == m.level {
		return
	}
	m.level = next
	m.build()
}

// saveScreenshot saves the current map to a file.
func (m *ViewerModel) saveScreenshot() {
	screen := m.preview.Draw(m.holders)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Debug("screenshot dir unavailable", "dir", dir, "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("maze_L%d_%d_%s.txt", m.level, m.config.Seed, timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(screen.String()), 0o600); err != nil {
		m.logger.Debug("screenshot not saved", "path", path, "error", err)
	}
}

// View renders the current map with its HUD and help bar.
func (m ViewerModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	var b strings.Builder
	if m.err != nil {
		b.WriteString(warnStyle.Render(fmt.Sprintf("level %d: %v", m.level, m.err)))
	} else {
		b.WriteString(RenderHUD(m.holders.Profile, len(m.holders.Walls), len(m.holders.Goals), m.config.Seed))
	}
	b.WriteString("\n")
	b.WriteString(RenderScreen(m.preview.Draw(m.holders)))
	b.WriteString("\n")
	b.WriteString(helpBarStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Level returns the level currently shown.
func (m ViewerModel) Level() int {
	return m.level
}

// Seed returns the seed of the current build.
func (m ViewerModel) Seed() int64 {
	return m.config.Seed
}

// Report returns the goal placement report of the current build.
func (m ViewerModel) Report() maze.GoalReport {
	return m.report
}

// Err returns the error of the last build attempt, if any.
func (m ViewerModel) Err() error {
	return m.err
}

// IsQuitting returns true if user requested to quit entirely.
func (m ViewerModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m ViewerModel) BackToMenu() bool {
	return m.backToMenu
}

// RunViewer starts the Bubble Tea program for the map viewer.
func RunViewer(cfg config.MazeConfig, store *storage.Store, rc core.RuntimeConfig, logger *log.Logger) error {
	model := NewViewerModel(cfg, store, rc, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
