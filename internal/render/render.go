// Package render turns the current browsing state into a deterministic
// draw plan: an ordered instruction list addressed in terminal cells.
// Executing the plan through a Drawer is the only side effect; the plan
// itself is pure and can be asserted on directly in tests.
package render

import (
	"github.com/glancedev/glance/internal/grid"
	"github.com/glancedev/glance/internal/nav"
	"github.com/glancedev/glance/internal/store"
	"github.com/glancedev/glance/internal/ui/theme"
)

// Pos is a 1-based terminal cell position.
type Pos struct {
	Row, Col int
}

// Rect is a cell rectangle anchored at its top-left corner.
type Rect struct {
	Pos
	Rows, Cols int
}

// Size is the viewport size in character cells.
type Size struct {
	Rows, Cols int
}

type Op int

const (
	OpClear Op = iota
	OpImage
	OpPlaceholder
	OpText
)

// Instruction is one draw call. Which fields are meaningful depends on
// the op: Image and Placeholder use Rect (and Handle), Text uses Pos.
type Instruction struct {
	Op     Op
	Handle string
	Rect   Rect
	Pos    Pos
	Text   string
}

type Plan struct {
	Instructions []Instruction
}

// Drawer is the terminal-side collaborator a plan is executed against.
// Implementations own the escape-sequence encoding; the renderer never
// touches raw bytes.
type Drawer interface {
	Clear()
	DrawImage(handle string, rect Rect)
	DrawPlaceholder(rect Rect)
	DrawText(pos Pos, text string)
}

const (
	marker   = "*"
	helpLine = "[h/l/j/k: move | enter: focus | q: quit]"
)

// Build produces the draw plan for one frame. The viewport offset must
// already be reconciled; Build trusts it and does no clamping of its
// own. In focus mode the plan is a single full-viewport image (or
// placeholder when the focus render failed).
func Build(items []store.Item, layout grid.Layout, vp grid.Viewport, size Size, selected int, mode nav.Mode, focusHandle string) Plan {
	p := Plan{Instructions: []Instruction{{Op: OpClear}}}

	if mode == nav.ModeFocus {
		full := Rect{Pos: Pos{Row: 1, Col: 1}, Rows: size.Rows, Cols: size.Cols}
		if focusHandle == "" {
			p.Instructions = append(p.Instructions, Instruction{Op: OpPlaceholder, Rect: full})
		} else {
			p.Instructions = append(p.Instructions, Instruction{Op: OpImage, Handle: focusHandle, Rect: full})
		}
		return p
	}

	rowPitch := layout.RowPitch()
	colPitch := layout.ColPitch()

	endRow := vp.Offset + vp.VisibleRows
	if total := grid.TotalRows(len(items), layout.Columns); endRow > total {
		endRow = total
	}

	for row := vp.Offset; row < endRow; row++ {
		for col := 0; col < layout.Columns; col++ {
			idx := grid.IndexOf(row, col, layout.Columns)
			if idx >= len(items) {
				break
			}

			cell := Rect{
				Pos: Pos{
					Row: (row-vp.Offset)*rowPitch + 1,
					Col: col*colPitch + 1,
				},
				Rows: layout.CellRows,
				Cols: layout.CellCols,
			}
			if items[idx].Thumb == "" {
				p.Instructions = append(p.Instructions, Instruction{Op: OpPlaceholder, Rect: cell})
			} else {
				p.Instructions = append(p.Instructions, Instruction{Op: OpImage, Handle: items[idx].Thumb, Rect: cell})
			}

			if idx == selected {
				// Marker sits in the gap row below the cell, centered on
				// the cell width.
				p.Instructions = append(p.Instructions, Instruction{
					Op:   OpText,
					Pos:  Pos{Row: cell.Row + layout.CellRows, Col: cell.Col + layout.CellCols/2},
					Text: theme.MarkerStyle.Render(marker),
				})
			}
		}
	}

	statusRow := vp.VisibleRows*rowPitch + 1
	if statusRow > size.Rows {
		statusRow = size.Rows
	}
	status := ""
	if selected >= 0 && selected < len(items) {
		status = theme.StatusStyle.Render("Selected: " + items[selected].Path)
	}
	p.Instructions = append(p.Instructions,
		Instruction{Op: OpText, Pos: Pos{Row: statusRow, Col: 1}, Text: status},
		Instruction{Op: OpText, Pos: Pos{Row: statusRow + 1, Col: 1}, Text: theme.DimStyle.Render(helpLine)},
	)
	return p
}

// Execute replays a plan against a drawer in order.
func Execute(p Plan, d Drawer) {
	for _, in := range p.Instructions {
		switch in.Op {
		case OpClear:
			d.Clear()
		case OpImage:
			d.DrawImage(in.Handle, in.Rect)
		case OpPlaceholder:
			d.DrawPlaceholder(in.Rect)
		case OpText:
			d.DrawText(in.Pos, in.Text)
		}
	}
}
