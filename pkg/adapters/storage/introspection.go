package storage

import (
	"os"

	"github.com/aretw0/introspection"
)

// FileState exposes internal state for observability.
// Values are never included; the storage holds credentials.
type FileState struct {
	Path          string   `json:"path"`
	Exists        bool     `json:"exists"`
	Keys          []string `json:"keys"`
	WatcherActive bool     `json:"watcher_active"`
}

// State implements introspection.Introspectable.
func (f *File) State() any {
	_, err := os.Stat(f.Path)
	return FileState{
		Path:          f.Path,
		Exists:        err == nil,
		Keys:          f.keys(),
		WatcherActive: f.isWatcherActive(),
	}
}

// ComponentType implements introspection.Component.
func (f *File) ComponentType() string {
	return "storage"
}

// MemoryState exposes internal state for observability.
type MemoryState struct {
	Keys []string `json:"keys"`
}

// State implements introspection.Introspectable.
func (m *Memory) State() any {
	return MemoryState{Keys: m.keys()}
}

// ComponentType implements introspection.Component.
func (m *Memory) ComponentType() string {
	return "storage"
}

var _ introspection.Introspectable = (*File)(nil)
var _ introspection.Component = (*File)(nil)
var _ introspection.Introspectable = (*Memory)(nil)
var _ introspection.Component = (*Memory)(nil)
