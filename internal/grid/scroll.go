package grid

// Viewport tracks which slice of grid rows is on screen. Offset is the
// first visible row; it is written exclusively by Reconcile, which runs
// after every selection change and before every render. The renderer
// trusts the reconciled offset and never re-clamps.
type Viewport struct {
	Offset      int
	VisibleRows int
}

// Reconcile moves the scroll offset the minimum distance needed to keep
// the selected item's row inside the visible window, then clamps the
// window into grid bounds. It is idempotent: re-running with unchanged
// inputs leaves Offset alone.
func (v *Viewport) Reconcile(selected int, layout Layout, count, viewportHeight int) {
	v.VisibleRows = VisibleRows(viewportHeight, layout.RowPitch())

	totalRows := TotalRows(count, layout.Columns)
	selRow := RowOf(selected, layout.Columns)

	if selRow < v.Offset {
		v.Offset = selRow
	} else if selRow >= v.Offset+v.VisibleRows {
		v.Offset = selRow - v.VisibleRows + 1
	}

	maxOffset := totalRows - v.VisibleRows
	if maxOffset < 0 {
		maxOffset = 0
	}
	if v.Offset > maxOffset {
		v.Offset = maxOffset
	}
	if v.Offset < 0 {
		v.Offset = 0
	}
}
