package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/notely/pkg/core"
)

// DefaultFileName is the name of the session file inside the state directory.
const DefaultFileName = "session.yaml"

// File is a Storage backed by a small YAML document on disk.
//
// Every Set/Remove rewrites the whole document atomically (temp file +
// rename) with 0600 permissions. The file is removed once it holds no keys,
// so a logged-out state leaves nothing behind.
type File struct {
	Path   string
	logger *slog.Logger
	mu     sync.Mutex

	watchMu       sync.Mutex
	watcherActive bool
}

// NewFile creates a file storage at path. The parent directory is created
// lazily on the first write.
func NewFile(path string, logger *slog.Logger) *File {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &File{Path: path, logger: logger}
}

// NewFileInDir creates a file storage named DefaultFileName inside dir.
func NewFileInDir(dir string, logger *slog.Logger) *File {
	return NewFile(filepath.Join(dir, DefaultFileName), logger)
}

// load reads the document. A missing file is an empty document.
// A corrupted file is also treated as empty so the next write heals it.
func (f *File) load() (map[string]string, error) {
	data, err := os.ReadFile(f.Path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read storage file: %w", err)
	}

	values := map[string]string{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		f.logger.Warn("discarding corrupted storage file", "path", f.Path, "error", err)
		return map[string]string{}, nil
	}
	if values == nil {
		values = map[string]string{}
	}
	return values, nil
}

func (f *File) save(values map[string]string) error {
	if len(values) == 0 {
		if err := os.Remove(f.Path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove storage file: %w", err)
		}
		return nil
	}

	data, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to encode storage file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(f.Path), 0o700); err != nil {
		return fmt.Errorf("failed to create storage directory: %w", err)
	}

	return writeFileAtomic(f.Path, data, 0o600)
}

// Get returns the value stored under key.
func (f *File) Get(ctx context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.load()
	if err != nil {
		return "", false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

// Set stores value under key.
func (f *File) Set(ctx context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.load()
	if err != nil {
		return err
	}
	values[key] = value
	if err := f.save(values); err != nil {
		return err
	}
	f.logger.Debug("storage key written", "path", f.Path, "key", key)
	return nil
}

// Remove deletes key. Removing an absent key leaves the file untouched.
func (f *File) Remove(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.load()
	if err != nil {
		return err
	}
	if _, ok := values[key]; !ok {
		return nil
	}
	delete(values, key)
	if err := f.save(values); err != nil {
		return err
	}
	f.logger.Debug("storage key removed", "path", f.Path, "key", key)
	return nil
}

func (f *File) keys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.load()
	if err != nil {
		return nil
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var _ core.Storage = (*File)(nil)
var _ core.Watchable = (*File)(nil)
