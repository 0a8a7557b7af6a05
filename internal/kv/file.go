package kv

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// File is the default durable Store: one "<key>.json" file per record inside
// a data directory. Writes go to a temp file first and are renamed into
// place, so a crash mid-write never leaves a truncated record behind.
//
// Generated key names only contain letters, digits, underscores and hyphens
// (see keys.go), but per-trip keys embed ids taken from request URLs, so the
// file name is sanitized to that charset before touching the filesystem.
type File struct {
	mu  sync.Mutex
	dir string
}

// NewFile creates the data directory if needed and returns a file-backed store.
func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("kv.NewFile: create %s: %w", dir, err)
	}
	return &File{dir: dir}, nil
}

func fileName(key string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		default:
			return '_'
		}
	}, key) + ".json"
}

func (f *File) path(key string) string {
	return filepath.Join(f.dir, fileName(key))
}

// Get reads the record file for key.
func (f *File) Get(_ context.Context, key string) ([]byte, error) {
	raw, err := os.ReadFile(f.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoRecord
		}
		return nil, fmt.Errorf("kv.File.Get %q: %w", key, err)
	}
	return raw, nil
}

// Put atomically replaces the record file for key.
func (f *File) Put(_ context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	tmp, err := os.CreateTemp(f.dir, fileName(key)+".*.tmp")
	if err != nil {
		return fmt.Errorf("kv.File.Put %q: temp: %w", key, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		return fmt.Errorf("kv.File.Put %q: write: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("kv.File.Put %q: close: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), f.path(key)); err != nil {
		return fmt.Errorf("kv.File.Put %q: rename: %w", key, err)
	}
	return nil
}

// Delete removes the record file for key. Absent files are a no-op.
func (f *File) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("kv.File.Delete %q: %w", key, err)
	}
	return nil
}
