// Package store persists marknote state in a flat string key-value map.
//
// Values are plain strings, booleans are stored as "true"/"false". Writers
// never coordinate: whoever writes a key last wins.
package store

import "errors"

// Keys used by the editor session.
const (
	KeyContent    = "editorContent"
	KeyDarkMode   = "darkMode"
	KeyBackground = "bgAnimation"
	KeyFolder     = "currentFolder"
)

// ErrClosed is returned by writes to a closed store.
var ErrClosed = errors.New("store closed")

// Store is the persistence surface the session depends on.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// Memory is an in-process Store, mostly useful in tests.
type Memory struct {
	data map[string]string
	// Writes counts successful Set calls per key.
	Writes map[string]int
}

// NewMemory returns a Memory pre-populated with a copy of seed.
func NewMemory(seed map[string]string) *Memory {
	m := &Memory{data: make(map[string]string, len(seed)), Writes: map[string]int{}}
	for k, v := range seed {
		m.data[k] = v
	}
	return m
}

func (m *Memory) Get(key string) (string, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *Memory) Set(key, value string) error {
	m.data[key] = value
	m.Writes[key]++
	return nil
}
