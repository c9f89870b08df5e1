package ui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	runewidth "github.com/mattn/go-runewidth"

	"github.com/glancedev/glance/internal/grid"
	"github.com/glancedev/glance/internal/nav"
	"github.com/glancedev/glance/internal/store"
	"github.com/glancedev/glance/internal/ui/theme"
)

// Text fallback for terminals without kitty graphics: the same item
// grid, same keys, same navigation core, rendered as bordered name
// tiles instead of inline thumbnails.

const (
	tileWidth  = 24
	tileRows   = 4
	headerRows = 2
	footerRows = 2
)

type keyMap struct {
	Left  key.Binding
	Right key.Binding
	Up    key.Binding
	Down  key.Binding
	Open  key.Binding
	Back  key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left:  key.NewBinding(key.WithKeys("h")),
		Right: key.NewBinding(key.WithKeys("l")),
		Up:    key.NewBinding(key.WithKeys("k")),
		Down:  key.NewBinding(key.WithKeys("j")),
		Open:  key.NewBinding(key.WithKeys("enter")),
		Back:  key.NewBinding(key.WithKeys("esc")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c")),
	}
}

type fallbackModel struct {
	items   []store.Item
	layout  grid.Layout
	machine *nav.Machine
	vp      grid.Viewport
	keys    keyMap
	width   int
	height  int
}

func newFallbackModel(list *store.List, columns int) fallbackModel {
	return fallbackModel{
		items: list.Items,
		layout: grid.Layout{
			Columns:  columns,
			CellRows: tileRows,
			CellCols: tileWidth,
			RowGap:   0,
			ColGap:   1,
		},
		machine: nav.NewMachine(columns, len(list.Items)),
		keys:    defaultKeyMap(),
		width:   80,
		height:  24,
	}
}

// RunFallback browses the list as a text-tile grid inside bubbletea.
func RunFallback(list *store.List, columns int) error {
	p := tea.NewProgram(newFallbackModel(list, columns), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m fallbackModel) Init() tea.Cmd {
	return nil
}

func (m fallbackModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.reconcile()
		return m, nil

	case tea.KeyMsg:
		cmd := nav.None
		switch {
		case key.Matches(msg, m.keys.Left):
			cmd = nav.MoveLeft
		case key.Matches(msg, m.keys.Right):
			cmd = nav.MoveRight
		case key.Matches(msg, m.keys.Up):
			cmd = nav.MoveUp
		case key.Matches(msg, m.keys.Down):
			cmd = nav.MoveDown
		case key.Matches(msg, m.keys.Open):
			cmd = nav.Activate
		case key.Matches(msg, m.keys.Back):
			cmd = nav.Dismiss
		case key.Matches(msg, m.keys.Quit):
			cmd = nav.Quit
		}
		m.machine.Apply(cmd)
		if m.machine.Done() {
			return m, tea.Quit
		}
		m.reconcile()
		return m, nil
	}
	return m, nil
}

func (m *fallbackModel) reconcile() {
	content := m.height - headerRows - footerRows
	if content < 1 {
		content = 1
	}
	m.vp.Reconcile(m.machine.Selected, m.layout, len(m.items), content)
}

func (m fallbackModel) View() string {
	if m.machine.Mode == nav.ModeFocus {
		return m.detailView()
	}
	return m.gridView()
}

func (m fallbackModel) gridView() string {
	header := lipgloss.NewStyle().Padding(0, 1).Render(
		theme.TitleStyle.Render("glance") + "  " +
			theme.DimStyle.Render(fmt.Sprintf("%d/%d", m.machine.Selected+1, len(m.items))))

	endRow := m.vp.Offset + m.vp.VisibleRows
	if total := grid.TotalRows(len(m.items), m.layout.Columns); endRow > total {
		endRow = total
	}

	var rows []string
	for row := m.vp.Offset; row < endRow; row++ {
		var tiles []string
		for col := 0; col < m.layout.Columns; col++ {
			idx := grid.IndexOf(row, col, m.layout.Columns)
			if idx >= len(m.items) {
				break
			}
			tiles = append(tiles, m.renderTile(idx))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}
	body := lipgloss.JoinVertical(lipgloss.Left, rows...)

	status := ""
	if m.machine.Selected < len(m.items) {
		status = theme.StatusStyle.Render("Selected: " + m.items[m.machine.Selected].Path)
	}
	footer := lipgloss.JoinVertical(lipgloss.Left,
		status,
		theme.DimStyle.Render("[h/l/j/k: move | enter: focus | q: quit]"))

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m fallbackModel) renderTile(idx int) string {
	selected := idx == m.machine.Selected
	inner := tileWidth - 4

	name := truncate(filepath.Base(m.items[idx].Path), inner)
	nameStyle := theme.TileNameStyle
	borderColor := theme.OverlayColor
	if selected {
		nameStyle = theme.TileNameSelected
		borderColor = theme.Teal
	}

	meta := ""
	if info, err := os.Stat(m.items[idx].Path); err == nil {
		meta = humanSize(info.Size())
	}

	content := nameStyle.Render(name) + "\n" + theme.TileMetaStyle.Render(meta)
	return lipgloss.NewStyle().
		Width(tileWidth - 2).
		Border(theme.TileBorder).
		BorderForeground(borderColor).
		Padding(0, 1).
		Render(content)
}

func (m fallbackModel) detailView() string {
	item := m.items[m.machine.Selected]

	var lines []string
	lines = append(lines, theme.TitleStyle.Render(filepath.Base(item.Path)))
	lines = append(lines, theme.SubTextStyle.Render(item.Path))
	if info, err := os.Stat(item.Path); err == nil {
		lines = append(lines, theme.DimStyle.Render(
			fmt.Sprintf("%s  %s", humanSize(info.Size()), info.ModTime().Format("2006-01-02 15:04"))))
	}
	lines = append(lines, "")
	lines = append(lines, theme.DimStyle.Render("esc/q: back to grid"))

	panel := lipgloss.NewStyle().
		Padding(1, 2).
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Accent).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, panel)
}

func truncate(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

func humanSize(n int64) string {
	const (
		kb = 1024
		mb = 1024 * kb
		gb = 1024 * mb
	)
	switch {
	case n >= gb:
		return fmt.Sprintf("%.1fG", float64(n)/float64(gb))
	case n >= mb:
		return fmt.Sprintf("%.1fM", float64(n)/float64(mb))
	case n >= kb:
		return fmt.Sprintf("%.1fK", float64(n)/float64(kb))
	default:
		return fmt.Sprintf("%dB", n)
	}
}
