// Package artifacts tracks transient files created during one report
// generation so that they are removed on every exit path.
package artifacts

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// Manager owns the artifact paths of a single generation. Each generation
// gets its own Manager; instances share no state, so concurrent generations
// never interfere.
type Manager struct {
	dir   string
	paths []string
}

// NewManager creates a manager placing temp artifacts under dir. An empty
// dir falls back to the system temp directory.
func NewManager(dir string) *Manager {
	if dir == "" {
		dir = os.TempDir()
	}
	return &Manager{dir: dir}
}

// Track registers an externally created artifact for cleanup.
func (m *Manager) Track(path string) {
	if path == "" {
		return
	}
	m.paths = append(m.paths, path)
}

// NewTemp creates an empty temp file owned by the manager and returns its
// path. Pattern follows os.CreateTemp, e.g. "chart-*.png".
func (m *Manager) NewTemp(pattern string) (string, error) {
	f, err := os.CreateTemp(m.dir, pattern)
	if err != nil {
		return "", fmt.Errorf("failed to create temp artifact: %w", err)
	}
	path := f.Name()
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to close temp artifact: %w", err)
	}
	m.paths = append(m.paths, path)
	return path, nil
}

// Paths returns the tracked artifact paths in registration order.
func (m *Manager) Paths() []string {
	return m.paths
}

// Cleanup removes every tracked artifact. Removal failures are logged and
// swallowed; cleanup never escalates.
func (m *Manager) Cleanup(logger *zerolog.Logger) {
	for _, path := range m.paths {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			if logger != nil {
				logger.Debug().Err(err).Str("path", path).Msg("failed to remove artifact")
			}
		}
	}
	m.paths = nil
}
