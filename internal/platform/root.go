package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// ProjectConfigName is the per-project config file looked up by FindProjectConfig.
const ProjectConfigName = ".notely.yaml"

// FindProjectConfig walks upwards from startDir looking for a .notely.yaml
// file and returns its absolute path. It lets a checkout pin the API it
// talks to.
func FindProjectConfig(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		if hasFile(dir, ProjectConfigName) {
			return filepath.Join(dir, ProjectConfigName), nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("project config not found")
}

func hasFile(dir, name string) bool {
	info, err := os.Stat(filepath.Join(dir, name))
	return err == nil && !info.IsDir()
}
