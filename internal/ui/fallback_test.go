package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glancedev/glance/internal/nav"
	"github.com/glancedev/glance/internal/store"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func testList(n int) *store.List {
	l := &store.List{}
	for i := 0; i < n; i++ {
		l.Items = append(l.Items, store.Item{Path: "/pics/img" + string(rune('a'+i)) + ".jpg"})
	}
	return l
}

func TestFallbackNavigation(t *testing.T) {
	m := newFallbackModel(testList(10), 4)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	m = next.(fallbackModel)

	next, _ = m.Update(keyRune('l'))
	m = next.(fallbackModel)
	assert.Equal(t, 1, m.machine.Selected)

	next, _ = m.Update(keyRune('j'))
	m = next.(fallbackModel)
	assert.Equal(t, 5, m.machine.Selected)

	next, _ = m.Update(keyRune('h'))
	m = next.(fallbackModel)
	next, _ = m.Update(keyRune('k'))
	m = next.(fallbackModel)
	assert.Equal(t, 0, m.machine.Selected)

	// Left at column zero stays put.
	next, _ = m.Update(keyRune('h'))
	m = next.(fallbackModel)
	assert.Equal(t, 0, m.machine.Selected)
}

func TestFallbackFocusRoundTrip(t *testing.T) {
	m := newFallbackModel(testList(6), 3)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(fallbackModel)

	next, _ = m.Update(keyRune('l'))
	m = next.(fallbackModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(fallbackModel)
	require.Equal(t, nav.ModeFocus, m.machine.Mode)

	view := m.View()
	assert.Contains(t, view, "imgb.jpg")
	assert.Contains(t, view, "back to grid")

	// Enter while focused stays focused.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(fallbackModel)
	assert.Equal(t, nav.ModeFocus, m.machine.Mode)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(fallbackModel)
	assert.Equal(t, nav.ModeGrid, m.machine.Mode)
	assert.Equal(t, 1, m.machine.Selected, "dismiss does not move the selection")
}

func TestFallbackQuit(t *testing.T) {
	m := newFallbackModel(testList(3), 4)
	_, cmd := m.Update(keyRune('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestFallbackQuitFromFocusReturnsToGrid(t *testing.T) {
	m := newFallbackModel(testList(3), 4)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(fallbackModel)
	require.Equal(t, nav.ModeFocus, m.machine.Mode)

	next, cmd := m.Update(keyRune('q'))
	m = next.(fallbackModel)
	assert.Nil(t, cmd)
	assert.Equal(t, nav.ModeGrid, m.machine.Mode)
}

func TestFallbackGridView(t *testing.T) {
	m := newFallbackModel(testList(4), 2)
	m.width = 120
	m.height = 30
	m.reconcile()

	view := m.View()
	assert.Contains(t, view, "glance")
	assert.Contains(t, view, "1/4")
	assert.Contains(t, view, "imga.jpg")
	assert.Contains(t, view, "Selected: /pics/imga.jpg")
	assert.Contains(t, view, "[h/l/j/k: move | enter: focus | q: quit]")
}

func TestFallbackScrollsToSelection(t *testing.T) {
	m := newFallbackModel(testList(20), 4)
	// Room for two tile rows only.
	m.height = headerRows + footerRows + 2*tileRows
	m.width = 120
	m.reconcile()
	require.Equal(t, 2, m.vp.VisibleRows)

	var model tea.Model = m
	for i := 0; i < 4; i++ {
		model, _ = model.Update(keyRune('j'))
	}
	m = model.(fallbackModel)
	assert.Equal(t, 16, m.machine.Selected)
	assert.Equal(t, 3, m.vp.Offset, "viewport follows the selection down")

	view := m.View()
	assert.False(t, strings.Contains(view, "imga.jpg"), "rows above the viewport are not drawn")
}
