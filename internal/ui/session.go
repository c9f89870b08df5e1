// Package ui runs the browsing loops: the synchronous inline-image
// session for kitty-capable terminals, and a bubbletea text fallback for
// everything else. Both front ends share the same geometry, scroll, and
// navigation cores.
package ui

import (
	"github.com/glancedev/glance/internal/grid"
	"github.com/glancedev/glance/internal/log"
	"github.com/glancedev/glance/internal/nav"
	"github.com/glancedev/glance/internal/render"
	"github.com/glancedev/glance/internal/store"
	"github.com/glancedev/glance/internal/thumb"
)

// CommandReader blocks for one decoded input command. An error means
// end-of-input and ends the session like a quit.
type CommandReader interface {
	ReadCommand() (nav.Command, error)
}

// Session is the strictly synchronous request/response loop: render the
// current state, block for one input event, apply it, repeat. No state
// is shared across goroutines; the only blocking point is ReadCommand.
type Session struct {
	List   *store.List
	Layout grid.Layout
	Gen    thumb.Generator
	Drawer render.Drawer
	Input  CommandReader
	SizeFn func() render.Size
	// Flush, when set, is called after each executed plan so buffered
	// writers emit whole frames.
	Flush func()

	FocusWidth  int
	FocusHeight int
}

// Run drives the loop until a quit command or end-of-input. Resource
// teardown (raw-mode restore, image deletion, thumbnail release) is the
// caller's deferred responsibility, so it happens however Run returns.
func (s *Session) Run() error {
	items := s.List.Items
	machine := nav.NewMachine(s.Layout.Columns, len(items))
	vp := &grid.Viewport{}

	for !machine.Done() {
		if machine.Mode == nav.ModeFocus {
			s.focus(machine, vp)
			continue
		}

		size := s.SizeFn()
		vp.Reconcile(machine.Selected, s.Layout, len(items), size.Rows)
		plan := render.Build(items, s.Layout, *vp, size, machine.Selected, nav.ModeGrid, "")
		render.Execute(plan, s.Drawer)
		s.flush()

		cmd, err := s.Input.ReadCommand()
		if err != nil {
			log.Debugf("input closed, ending session")
			return nil
		}
		machine.Apply(cmd)
	}
	return nil
}

// focus renders the selected item full-viewport and waits for a
// dismissal. A failed focus render aborts only this entry; the transient
// asset is removed before returning to the grid either way.
func (s *Session) focus(machine *nav.Machine, vp *grid.Viewport) {
	items := s.List.Items
	handle, err := s.Gen.Generate(items[machine.Selected].Path, s.FocusWidth, s.FocusHeight)
	if err != nil {
		log.Warnf("focus render for %s: %v", items[machine.Selected].Path, err)
		machine.Apply(nav.Dismiss)
		return
	}
	defer func() {
		if err := s.Gen.Remove(handle); err != nil {
			log.Warnf("remove focus render %s: %v", handle, err)
		}
	}()

	size := s.SizeFn()
	plan := render.Build(items, s.Layout, *vp, size, machine.Selected, nav.ModeFocus, handle)
	render.Execute(plan, s.Drawer)
	s.flush()

	for {
		cmd, err := s.Input.ReadCommand()
		if err != nil {
			machine.Apply(nav.Dismiss)
			return
		}
		switch cmd {
		case nav.Dismiss, nav.Quit:
			machine.Apply(cmd)
			return
		}
		// Moves, enter, and unknown keys are ignored while focused.
	}
}

func (s *Session) flush() {
	if s.Flush != nil {
		s.Flush()
	}
}
