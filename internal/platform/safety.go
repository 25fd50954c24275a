package platform

import (
	"os"
	"path/filepath"
	"strings"
)

// IsDevRun detects if the application is running via "go run" or "go test".
func IsDevRun() bool {
	exe, err := os.Executable()
	if err != nil {
		return false
	}

	// "go run" builds into the system temp dir.
	if strings.HasPrefix(strings.ToLower(exe), strings.ToLower(os.TempDir())) {
		return true
	}

	if strings.HasSuffix(exe, ".test") || strings.HasSuffix(exe, ".test.exe") {
		return true
	}

	return false
}

// ResolveStateDir determines the directory the session is persisted in.
// With forceTemp the directory is re-rooted under <tmp>/notely-dev, unless
// it already lives inside the system temp dir (e.g. t.TempDir()).
func ResolveStateDir(userDir string, forceTemp bool) string {
	if !forceTemp {
		return userDir
	}

	clean := filepath.Clean(userDir)
	rel, err := filepath.Rel(os.TempDir(), clean)
	if userDir != "" && err == nil && !strings.HasPrefix(rel, "..") {
		return clean
	}

	sub := filepath.Base(clean)
	if userDir == "" || sub == "." || sub == string(os.PathSeparator) {
		sub = "default"
	}
	return filepath.Join(os.TempDir(), "notely-dev", sub)
}

// DefaultStateDir returns $XDG_STATE_HOME/notely, falling back to
// ~/.local/state/notely.
func DefaultStateDir() (string, error) {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "notely"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "state", "notely"), nil
}
