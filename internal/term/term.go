package term

import (
	"bufio"
	"io"
	"os"

	xterm "golang.org/x/term"

	"github.com/glancedev/glance/internal/nav"
	"github.com/glancedev/glance/internal/render"
)

const (
	fallbackRows = 24
	fallbackCols = 80
)

// MakeRaw switches the tty to raw mode and returns a restore func. The
// caller must defer the restore so the terminal comes back regardless of
// how the loop ends.
func MakeRaw() (func(), error) {
	fd := int(os.Stdin.Fd())
	old, err := xterm.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return func() { _ = xterm.Restore(fd, old) }, nil
}

// Size returns the viewport size in cells, falling back to 80x24 when
// the query fails.
func Size() render.Size {
	cols, rows, err := xterm.GetSize(int(os.Stdout.Fd()))
	if err != nil || rows <= 0 || cols <= 0 {
		return render.Size{Rows: fallbackRows, Cols: fallbackCols}
	}
	return render.Size{Rows: rows, Cols: cols}
}

// Input decodes one navigation command per keystroke. No escape-sequence
// parsing: a bare byte is a command or it is nothing.
type Input struct {
	r *bufio.Reader
}

func NewInput(r io.Reader) *Input {
	return &Input{r: bufio.NewReader(r)}
}

// ReadCommand blocks for one byte and maps it. io.EOF signals
// end-of-input; unknown bytes map to nav.None.
func (in *Input) ReadCommand() (nav.Command, error) {
	b, err := in.r.ReadByte()
	if err != nil {
		return nav.None, io.EOF
	}
	switch b {
	case 'h':
		return nav.MoveLeft, nil
	case 'l':
		return nav.MoveRight, nil
	case 'k':
		return nav.MoveUp, nil
	case 'j':
		return nav.MoveDown, nil
	case '\r', '\n':
		return nav.Activate, nil
	case 0x1b:
		return nav.Dismiss, nil
	case 'q', 0x03:
		return nav.Quit, nil
	}
	return nav.None, nil
}
