package grid

// Pure cell arithmetic for mapping a flat item list onto a column grid.
// Callers validate inputs: columns is always >= 1 by the time it gets
// here (config.Normalize enforces the default).

// RowOf returns the grid row containing index.
func RowOf(index, columns int) int {
	return index / columns
}

// ColOf returns the grid column containing index.
func ColOf(index, columns int) int {
	return index % columns
}

// IndexOf returns the flat index at (row, col). The result is only a real
// item when it is < the item count; the last row may be partial.
func IndexOf(row, col, columns int) int {
	return row*columns + col
}

// TotalRows returns the number of grid rows needed for count items,
// counting a partial final row.
func TotalRows(count, columns int) int {
	return (count + columns - 1) / columns
}

// VisibleRows returns how many grid rows fit in a viewport of the given
// cell height when each row occupies rowPitch cells. At least one row is
// always considered visible so navigation stays possible on tiny
// terminals.
func VisibleRows(viewportHeight, rowPitch int) int {
	if rowPitch < 1 {
		rowPitch = 1
	}
	rows := viewportHeight / rowPitch
	if rows < 1 {
		rows = 1
	}
	return rows
}

// Layout bundles the cell-space dimensions of one grid slot. CellRows and
// CellCols are the cells occupied by the thumbnail itself; RowGap and
// ColGap the spacing margin after it.
type Layout struct {
	Columns  int
	CellRows int
	CellCols int
	RowGap   int
	ColGap   int
}

// DefaultLayout matches the classic 5x10-cell thumbnail with a one-row
// marker gap below and two columns of breathing room to the right.
func DefaultLayout(columns int) Layout {
	return Layout{
		Columns:  columns,
		CellRows: 5,
		CellCols: 10,
		RowGap:   1,
		ColGap:   2,
	}
}

// RowPitch is the cell height of one grid slot including its margin.
func (l Layout) RowPitch() int {
	p := l.CellRows + l.RowGap
	if p < 1 {
		p = 1
	}
	return p
}

// ColPitch is the cell width of one grid slot including its margin.
func (l Layout) ColPitch() int {
	p := l.CellCols + l.ColGap
	if p < 1 {
		p = 1
	}
	return p
}
