package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// File is a Store backed by a YAML mapping on disk. Every Set rewrites the
// whole file through a temporary file and a rename, so readers never see a
// partial write.
type File struct {
	path string

	mu     sync.Mutex
	data   map[string]string
	closed bool
}

// Open loads path, creating its parent directory when needed. A missing file
// is an empty store.
func Open(path string) (*File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}
	f := &File{path: path, data: map[string]string{}}
	if err := f.Reload(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *File) Path() string { return f.path }

func (f *File) Get(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.data[key]
	return v, ok
}

func (f *File) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrClosed
	}
	f.data[key] = value
	return f.writeLocked()
}

// Reload replaces the in-memory map with the file contents. The lock is held
// across read and install so a concurrent Set cannot be overwritten by an
// older snapshot of the file.
func (f *File) Reload() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	raw, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading store %s: %w", f.path, err)
	}

	data := map[string]string{}
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("parsing store %s: %w", f.path, err)
	}
	f.data = data
	return nil
}

// Close rejects further writes. Reads keep working.
func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *File) writeLocked() error {
	raw, err := yaml.Marshal(f.data)
	if err != nil {
		return fmt.Errorf("encoding store: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".store-*.yaml")
	if err != nil {
		return fmt.Errorf("creating temp store file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("writing store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing store: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("replacing store %s: %w", f.path, err)
	}
	return nil
}
