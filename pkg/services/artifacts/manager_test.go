package artifacts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTempCreatesUnderDir(t *testing.T) {
	dir := t.TempDir()
	mgr := NewManager(dir)

	path, err := mgr.NewTemp("chart-*.png")

	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "chart-"))
	assert.True(t, strings.HasSuffix(path, ".png"))

	_, statErr := os.Stat(path)
	assert.NoError(t, statErr)
}

func TestCleanupRemovesTrackedFiles(t *testing.T) {
	dir := t.TempDir()
	mgr := NewManager(dir)

	created, err := mgr.NewTemp("chart-*.png")
	require.NoError(t, err)

	external := filepath.Join(dir, "extra.png")
	require.NoError(t, os.WriteFile(external, []byte("png"), 0o644))
	mgr.Track(external)

	assert.Equal(t, []string{created, external}, mgr.Paths())

	mgr.Cleanup(nil)

	for _, path := range []string{created, external} {
		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr), "%s should be removed", path)
	}
	assert.Empty(t, mgr.Paths())
}

func TestCleanupToleratesMissingFiles(t *testing.T) {
	mgr := NewManager(t.TempDir())
	mgr.Track(filepath.Join(t.TempDir(), "never-created.png"))

	assert.NotPanics(t, func() { mgr.Cleanup(nil) })
	assert.Empty(t, mgr.Paths())
}

func TestTrackIgnoresEmptyPath(t *testing.T) {
	mgr := NewManager("")
	mgr.Track("")
	assert.Empty(t, mgr.Paths())
}
