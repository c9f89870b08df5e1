package nav

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glancedev/glance/internal/grid"
)

func TestNoWrapAtRowEdges(t *testing.T) {
	m := NewMachine(4, 20)

	// Left from column 0 is a no-op.
	m.Apply(MoveLeft)
	assert.Equal(t, 0, m.Selected)

	// Right stops at the row's last column.
	for i := 0; i < 10; i++ {
		m.Apply(MoveRight)
	}
	assert.Equal(t, 3, m.Selected)

	m.Apply(MoveRight)
	assert.Equal(t, 3, m.Selected, "right from last column must not wrap")

	m.Apply(MoveLeft)
	assert.Equal(t, 2, m.Selected)
}

func TestPartialLastRow(t *testing.T) {
	// 10 items, 4 columns: three rows, the last holding indices 8 and 9.
	m := NewMachine(4, 10)
	m.Selected = 8

	m.Apply(MoveRight)
	assert.Equal(t, 9, m.Selected)
	m.Apply(MoveRight)
	assert.Equal(t, 9, m.Selected, "no item at index 10")

	m.Selected = 8
	m.Apply(MoveDown)
	assert.Equal(t, 8, m.Selected, "no item at index 12")

	// Moving down from the full row above a short row is bounded by the
	// item count, not the row count.
	m.Selected = 4
	m.Apply(MoveDown)
	assert.Equal(t, 8, m.Selected, "down lands in the partial row where an item exists")
	m.Selected = 6
	m.Apply(MoveDown)
	assert.Equal(t, 6, m.Selected, "down from column 2 has no item below")
	m.Selected = 7
	m.Apply(MoveDown)
	assert.Equal(t, 7, m.Selected, "down from column 3 has no item below")
}

func TestVerticalMoves(t *testing.T) {
	m := NewMachine(4, 20)
	m.Apply(MoveUp)
	assert.Equal(t, 0, m.Selected)

	m.Apply(MoveDown)
	assert.Equal(t, 4, m.Selected)
	m.Apply(MoveUp)
	assert.Equal(t, 0, m.Selected)
}

func TestFocusRoundTrip(t *testing.T) {
	m := NewMachine(4, 20)
	m.Selected = 7

	m.Apply(Activate)
	assert.Equal(t, ModeFocus, m.Mode)

	// Moves and repeated activation are ignored while focused; only
	// Dismiss and Quit leave focus.
	m.Apply(MoveDown)
	assert.Equal(t, 7, m.Selected)
	m.Apply(Activate)
	assert.Equal(t, ModeFocus, m.Mode, "enter while focused is a no-op")
	m.Apply(None)
	assert.Equal(t, ModeFocus, m.Mode)

	m.Apply(Dismiss)
	assert.Equal(t, ModeGrid, m.Mode)
	assert.Equal(t, 7, m.Selected, "selection unchanged after focus round trip")
	assert.False(t, m.Done())
}

func TestQuitFromFocusReturnsToGrid(t *testing.T) {
	m := NewMachine(4, 20)
	m.Apply(Activate)
	m.Apply(Quit)
	assert.Equal(t, ModeGrid, m.Mode)
	assert.False(t, m.Done(), "quit inside focus only dismisses")

	m.Apply(Quit)
	assert.True(t, m.Done())
}

func TestUnrecognizedCommandIsNoop(t *testing.T) {
	m := NewMachine(4, 20)
	m.Selected = 5
	m.Apply(None)
	assert.Equal(t, 5, m.Selected)
	assert.Equal(t, ModeGrid, m.Mode)
}

func TestSelectionBoundInvariant(t *testing.T) {
	cmds := []Command{MoveLeft, MoveRight, MoveUp, MoveDown, Activate, Dismiss, None}
	rng := rand.New(rand.NewSource(1))

	for _, tc := range []struct{ cols, count int }{
		{1, 1}, {1, 9}, {3, 10}, {4, 10}, {4, 20}, {5, 23}, {8, 3},
	} {
		m := NewMachine(tc.cols, tc.count)
		for step := 0; step < 2000; step++ {
			m.Apply(cmds[rng.Intn(len(cmds))])
			require.GreaterOrEqual(t, m.Selected, 0, "cols=%d count=%d", tc.cols, tc.count)
			require.Less(t, m.Selected, tc.count, "cols=%d count=%d", tc.cols, tc.count)
			require.Less(t, grid.ColOf(m.Selected, tc.cols), tc.cols)
		}
	}
}
