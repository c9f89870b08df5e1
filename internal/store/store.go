// Package store loads and owns the ordered collection of viewable items.
// The list is immutable after load; thumbnail handles are attached once
// before the browsing loop starts and released exactly once at exit.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/glancedev/glance/internal/log"
)

var (
	// ErrNotFound means the source directory could not be opened.
	ErrNotFound = errors.New("source directory not found")
	// ErrNoImages means the source resolved to an empty collection.
	ErrNoImages = errors.New("no images found")
)

// Item is one viewable unit: the original image path plus the optional
// generated-thumbnail handle. An absent Thumb renders as a placeholder.
type Item struct {
	Path      string
	Thumb     string
	generated bool
}

// List is the ordered, immutable-after-load item collection.
type List struct {
	Items []Item

	releaseOnce sync.Once
}

// Thumbnailer renders a source image into a pixel-sized asset and
// returns its handle.
type Thumbnailer interface {
	Generate(src string, width, height int) (string, error)
	Remove(handle string) error
}

// LoadDir builds a list from every visible regular file in dir that
// carries a recognized image extension, in name order.
func LoadDir(dir string) (*List, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, dir)
	}

	l := &List{}
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") || !e.Type().IsRegular() {
			continue
		}
		if !IsImage(name) {
			continue
		}
		l.Items = append(l.Items, Item{Path: filepath.Join(dir, name)})
	}
	sort.Slice(l.Items, func(i, j int) bool { return l.Items[i].Path < l.Items[j].Path })

	if len(l.Items) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoImages, dir)
	}
	return l, nil
}

// LoadPaths builds a list from an explicit path list, preserving order.
func LoadPaths(paths []string) (*List, error) {
	l := &List{}
	for _, p := range paths {
		l.Items = append(l.Items, Item{Path: p})
	}
	if len(l.Items) == 0 {
		return nil, ErrNoImages
	}
	return l, nil
}

// IsImage reports whether path carries a recognized image extension.
func IsImage(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp", ".tif", ".tiff", ".avif", ".heic":
		return true
	}
	return false
}

// AttachThumbnails generates a thumbnail handle for each item. A failed
// generation leaves that item without a handle; it is never fatal for
// the run.
func (l *List) AttachThumbnails(gen Thumbnailer, width, height int) {
	for i := range l.Items {
		handle, err := gen.Generate(l.Items[i].Path, width, height)
		if err != nil {
			log.Warnf("thumbnail for %s: %v", l.Items[i].Path, err)
			continue
		}
		l.Items[i].Thumb = handle
		l.Items[i].generated = true
	}
}

// Release deletes every thumbnail this session generated. Safe to call
// more than once; only the first call does work, so deferring it in
// multiple exit paths cannot double-delete.
func (l *List) Release(gen Thumbnailer) {
	l.releaseOnce.Do(func() {
		for i := range l.Items {
			if !l.Items[i].generated || l.Items[i].Thumb == "" {
				continue
			}
			if err := gen.Remove(l.Items[i].Thumb); err != nil {
				log.Warnf("remove thumbnail %s: %v", l.Items[i].Thumb, err)
			}
		}
	})
}
