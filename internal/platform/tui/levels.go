package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// LevelEntry is one embedded level offered by the picker.
type LevelEntry struct {
	ID     string
	Name   string
	Length float64 // distance to the finish line in world units
}

// embeddedLevels lists every embedded level. Broken entries are skipped.
func embeddedLevels() []LevelEntry {
	ids := config.LevelIDs()
	out := make([]LevelEntry, 0, len(ids))
	for _, id := range ids {
		lvl, err := config.EmbeddedLevel(id)
		if err != nil {
			continue
		}
		out = append(out, LevelEntry{ID: id, Name: lvl.Name, Length: lvl.EndX - lvl.Spawn.X})
	}
	return out
}

// LevelSelectModel lets the player pick which layout the variants play.
// The first row keeps each variant's own level.
type LevelSelectModel struct {
	levels   []LevelEntry
	cursor   int
	width    int
	height   int
	keys     MenuKeyMap
	chosen   bool
	levelID  string
	quitting bool
	back     bool
}

// NewLevelSelectModel creates a picker with the cursor on current.
func NewLevelSelectModel(width, height int, current string) LevelSelectModel {
	m := LevelSelectModel{
		levels: embeddedLevels(),
		width:  width,
		height: height,
		keys:   DefaultMenuKeyMap(),
	}
	for i, l := range m.levels {
		if l.ID == current {
			m.cursor = i + 1
		}
	}
	return m
}

// Init initializes the model.
func (m LevelSelectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m LevelSelectModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.levels) {
			m.cursor++
		}
	case MenuActionSelect:
		m.chosen = true
		m.levelID = ""
		if m.cursor > 0 {
			m.levelID = m.levels[m.cursor-1].ID
		}
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the level list.
func (m LevelSelectModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("SELECT LEVEL"), m.width))
	b.WriteString("\n\n")

	rows := make([]string, 0, len(m.levels)+1)
	rows = append(rows, fmt.Sprintf("  %-28s", "Variant default"))
	for _, l := range m.levels {
		rows = append(rows, fmt.Sprintf("  %-20s %5.0fm ", l.Name, l.Length/10))
	}
	for i, row := range rows {
		if i == m.cursor {
			row = menuSelectedStyle.Render(row)
		}
		b.WriteString(centerText(row, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuDimStyle.Render("Enter: Select  |  Esc: Back  |  Q: Quit"), m.width))

	return b.String()
}

// Chosen returns the picked level ID and whether a choice was made.
// An empty ID means each variant plays its own level.
func (m LevelSelectModel) Chosen() (string, bool) {
	return m.levelID, m.chosen
}

// IsQuitting returns true if user wants to quit.
func (m LevelSelectModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m LevelSelectModel) WantsBack() bool {
	return m.back
}

// RunLevelSelector runs the picker. ok is false when the user backed out or quit.
func RunLevelSelector(cfg core.RuntimeConfig, current string) (levelID string, ok bool, err error) {
	model := NewLevelSelectModel(cfg.ScreenW, cfg.ScreenH, current)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return current, false, err
	}

	m, isModel := finalModel.(LevelSelectModel)
	if !isModel {
		return current, false, nil
	}

	id, chosen := m.Chosen()
	if !chosen {
		return current, false, nil
	}
	return id, true, nil
}
