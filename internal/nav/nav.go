// Package nav holds the Grid/Focus state machine: the selected index and
// the current mode, advanced one input command at a time. Boundary moves
// are silently blocked, never signaled, so the selection is a valid index
// at every step.
package nav

import "github.com/glancedev/glance/internal/grid"

// Mode is the current view.
type Mode int

const (
	ModeGrid Mode = iota
	ModeFocus
)

// Command is one decoded input event.
type Command int

const (
	None Command = iota
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
	Activate
	Dismiss
	Quit
)

// Machine owns the selection and the mode. Columns and Count are fixed
// for the session; Selected stays in [0, Count) for any command sequence.
type Machine struct {
	Selected int
	Mode     Mode
	Columns  int
	Count    int
	quit     bool
}

func NewMachine(columns, count int) *Machine {
	return &Machine{Columns: columns, Count: count}
}

// Done reports whether a Quit command has been applied.
func (m *Machine) Done() bool {
	return m.quit
}

// Apply advances the machine by one command. Unrecognized commands and
// boundary-violating moves are no-ops.
func (m *Machine) Apply(cmd Command) {
	if m.Mode == ModeFocus {
		switch cmd {
		case Dismiss, Quit:
			// Quitting from focus drops back to the grid rather than
			// terminating. Everything else is ignored while focused.
			m.Mode = ModeGrid
		}
		return
	}

	switch cmd {
	case MoveLeft:
		if grid.ColOf(m.Selected, m.Columns) > 0 {
			m.Selected--
		}
	case MoveRight:
		// Blocked at the row's last column and at the final item, so the
		// cursor neither wraps to the next row nor runs off a partial
		// last row.
		if grid.ColOf(m.Selected, m.Columns) < m.Columns-1 && m.Selected+1 < m.Count {
			m.Selected++
		}
	case MoveUp:
		if m.Selected-m.Columns >= 0 {
			m.Selected -= m.Columns
		}
	case MoveDown:
		if m.Selected+m.Columns < m.Count {
			m.Selected += m.Columns
		}
	case Activate:
		m.Mode = ModeFocus
	case Quit:
		m.quit = true
	}
}
