// Package thumb renders images into cell-grid-sized assets by shelling
// out to ImageMagick. The browser core only sees the Generator
// capability; tests substitute canned handles through a fake Commander.
package thumb

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/glancedev/glance/internal/shell"
)

// Generator produces a rendered asset handle for a source image at the
// requested pixel size.
type Generator interface {
	Generate(src string, width, height int) (string, error)
	Remove(handle string) error
}

// Magick generates assets with `magick <src> -resize WxH -auto-orient
// -filter Lanczos <out>` into a cache directory.
type Magick struct {
	Cmd      shell.Commander
	Bin      string
	CacheDir string
}

func NewMagick(cmd shell.Commander, bin, cacheDir string) *Magick {
	return &Magick{Cmd: cmd, Bin: bin, CacheDir: cacheDir}
}

func (m *Magick) Generate(src string, width, height int) (string, error) {
	if err := os.MkdirAll(m.CacheDir, 0o755); err != nil {
		return "", fmt.Errorf("cache dir: %w", err)
	}
	out := m.assetPath(src, width, height)

	if output, err := m.Cmd.Run(m.Bin, src,
		"-resize", fmt.Sprintf("%dx%d", width, height),
		"-auto-orient",
		"-filter", "Lanczos",
		out,
	); err != nil {
		return "", fmt.Errorf("magick %s: %w: %s", src, err, strings.TrimSpace(string(output)))
	}
	return out, nil
}

func (m *Magick) Remove(handle string) error {
	return os.Remove(handle)
}

// assetPath names cached renders by base name, a short path hash (so two
// directories holding the same file name cannot collide) and the pixel
// size.
func (m *Magick) assetPath(src string, width, height int) string {
	base := filepath.Base(src)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	sum := sha1.Sum([]byte(src))
	return filepath.Join(m.CacheDir,
		fmt.Sprintf("%s-%s.%dx%d.png", base, hex.EncodeToString(sum[:4]), width, height))
}

// Purge removes every cached render in dir. Used by the clean
// subcommand; a missing cache dir is not an error.
func Purge(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}
	removed := 0
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".png") {
			continue
		}
		if err := os.Remove(filepath.Join(dir, e.Name())); err == nil {
			removed++
		}
	}
	return removed, nil
}
