// Package term holds the terminal-side collaborators: the kitty
// graphics drawer, the raw-mode single-keystroke reader, and the size
// query. Everything above this package speaks in cell coordinates and
// draw calls; all escape-byte encoding lives here.
package term

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/glancedev/glance/internal/render"
)

const placeholderGlyph = "[?]"

// Kitty draws through the kitty graphics protocol, transmitting assets
// by file path (t=f) so image bytes never cross the tty. C=1 keeps the
// cursor in place after each placement.
type Kitty struct {
	w io.Writer
}

func NewKitty(w io.Writer) *Kitty {
	return &Kitty{w: w}
}

func (k *Kitty) Clear() {
	fmt.Fprint(k.w, "\x1b[2J\x1b[H")
}

func (k *Kitty) MoveCursor(pos render.Pos) {
	fmt.Fprintf(k.w, "\x1b[%d;%dH", pos.Row, pos.Col)
}

func (k *Kitty) DrawImage(handle string, rect render.Rect) {
	k.MoveCursor(rect.Pos)
	b64 := base64.StdEncoding.EncodeToString([]byte(handle))
	// a=T transmit+display, f=100 PNG, t=f payload is a file path,
	// c/r cell extent, C=1 leave the cursor alone.
	fmt.Fprintf(k.w, "\x1b_Ga=T,f=100,t=f,c=%d,r=%d,C=1;%s\x1b\\", rect.Cols, rect.Rows, b64)
}

func (k *Kitty) DrawPlaceholder(rect render.Rect) {
	pos := render.Pos{
		Row: rect.Row + rect.Rows/2,
		Col: rect.Col + max(0, (rect.Cols-len(placeholderGlyph))/2),
	}
	k.MoveCursor(pos)
	fmt.Fprint(k.w, placeholderGlyph)
}

func (k *Kitty) DrawText(pos render.Pos, text string) {
	k.MoveCursor(pos)
	fmt.Fprint(k.w, text)
}

// DeleteImages tells the terminal to drop every transmitted image.
// Called on teardown so thumbnails do not outlive the session.
func (k *Kitty) DeleteImages() {
	fmt.Fprint(k.w, "\x1b_Ga=d\x1b\\")
}

// SupportsGraphics reports whether the terminal is known to implement
// the kitty graphics protocol. Without it the browser runs the text
// fallback instead of printing escape garbage.
func SupportsGraphics() bool {
	if os.Getenv("KITTY_WINDOW_ID") != "" {
		return true
	}
	term := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(term, "kitty") || strings.Contains(term, "ghostty") {
		return true
	}
	return strings.EqualFold(os.Getenv("TERM_PROGRAM"), "WezTerm")
}
