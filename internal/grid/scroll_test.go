package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcileKeepsSelectionVisible(t *testing.T) {
	// 20 items, 4 columns, 24-cell viewport, 6-cell row pitch:
	// 5 total rows, 4 visible at a time.
	layout := DefaultLayout(4)
	v := &Viewport{}

	v.Reconcile(0, layout, 20, 24)
	assert.Equal(t, 4, v.VisibleRows)
	assert.Equal(t, 0, v.Offset)

	// Selecting index 16 (row 4) scrolls down just enough: rows 1..4.
	v.Reconcile(16, layout, 20, 24)
	assert.Equal(t, 1, v.Offset)

	// Back to the top row scrolls up to reveal it.
	v.Reconcile(0, layout, 20, 24)
	assert.Equal(t, 0, v.Offset)
}

func TestReconcileIdempotent(t *testing.T) {
	layout := DefaultLayout(4)
	v := &Viewport{}
	v.Reconcile(16, layout, 20, 24)
	first := v.Offset
	v.Reconcile(16, layout, 20, 24)
	assert.Equal(t, first, v.Offset)
}

func TestReconcileClampsToGridBounds(t *testing.T) {
	layout := DefaultLayout(4)

	// Offset left over from a larger collection gets pulled back in.
	v := &Viewport{Offset: 10}
	v.Reconcile(0, layout, 8, 24)
	assert.Equal(t, 0, v.Offset, "grid fits entirely, offset must be 0")

	// Fewer rows than the window: max offset is 0, never negative.
	v = &Viewport{Offset: 3}
	v.Reconcile(3, layout, 4, 24)
	assert.Equal(t, 0, v.Offset)
}

func TestReconcileContainmentInvariant(t *testing.T) {
	layout := DefaultLayout(4)
	const count = 37
	v := &Viewport{}
	for sel := 0; sel < count; sel++ {
		v.Reconcile(sel, layout, count, 24)
		selRow := RowOf(sel, layout.Columns)
		require.GreaterOrEqual(t, selRow, v.Offset, "sel=%d", sel)
		require.Less(t, selRow, v.Offset+v.VisibleRows, "sel=%d", sel)
		maxOffset := TotalRows(count, layout.Columns) - v.VisibleRows
		if maxOffset < 0 {
			maxOffset = 0
		}
		require.GreaterOrEqual(t, v.Offset, 0)
		require.LessOrEqual(t, v.Offset, maxOffset)
	}
	// Walk back up and re-check containment on the way.
	for sel := count - 1; sel >= 0; sel-- {
		v.Reconcile(sel, layout, count, 24)
		selRow := RowOf(sel, layout.Columns)
		require.GreaterOrEqual(t, selRow, v.Offset)
		require.Less(t, selRow, v.Offset+v.VisibleRows)
	}
}

func TestReconcileTinyViewport(t *testing.T) {
	layout := DefaultLayout(4)
	v := &Viewport{}
	// A 6-cell viewport fits exactly one row; the selected row is always
	// the only visible row.
	for _, sel := range []int{0, 5, 11, 19} {
		v.Reconcile(sel, layout, 20, 6)
		assert.Equal(t, 1, v.VisibleRows)
		assert.Equal(t, RowOf(sel, layout.Columns), v.Offset)
	}
}
