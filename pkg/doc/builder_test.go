package doc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeStub(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("img"), 0o644))
	return path
}

func TestImageSkipsMissingFiles(t *testing.T) {
	b := NewBuilder()
	b.Image(filepath.Join(t.TempDir(), "absent.png"), 10, false)
	b.Image("", 10, false)

	assert.Empty(t, b.Document().Commands)
}

func TestImageDefaultWidths(t *testing.T) {
	dir := t.TempDir()
	content := writeStub(t, dir, "content.png")
	chart := writeStub(t, dir, "chart.png")
	sized := writeStub(t, dir, "sized.png")

	b := NewBuilder()
	b.Image(content, 0, false)
	b.Image(chart, 0, true)
	b.Image(sized, 10, false)

	cmds := b.Document().Commands
	require.Len(t, cmds, 3)
	assert.Equal(t, Image{Path: content, WidthCm: WidthContent}, cmds[0])
	assert.Equal(t, Image{Path: chart, WidthCm: WidthChart, Chart: true}, cmds[1])
	assert.Equal(t, Image{Path: sized, WidthCm: 10}, cmds[2])
}

func TestImagesAutoFiltersAndKeepsOrder(t *testing.T) {
	dir := t.TempDir()
	first := writeStub(t, dir, "a.png")
	second := writeStub(t, dir, "b.png")
	missing := filepath.Join(dir, "missing.png")

	b := NewBuilder()
	b.ImagesAuto([]string{first, missing, second})

	cmds := b.Document().Commands
	require.Len(t, cmds, 1)
	grid, ok := cmds[0].(ImageGrid)
	require.True(t, ok)
	assert.Equal(t, []string{first, second}, grid.Paths)
}

func TestImagesAutoEmitsNothingWhenAllMissing(t *testing.T) {
	b := NewBuilder()
	b.ImagesAuto([]string{filepath.Join(t.TempDir(), "nope.png"), ""})
	assert.Empty(t, b.Document().Commands)
}

func TestPageNumberFooterIdempotent(t *testing.T) {
	b := NewBuilder()
	assert.False(t, b.Document().PageFooter)

	b.PageNumberFooter()
	b.PageNumberFooter()

	assert.True(t, b.Document().PageFooter)
	assert.Empty(t, b.Document().Commands, "the footer is a document directive, not a command")
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := writeStub(t, dir, "f.png")

	assert.True(t, FileExists(file))
	assert.False(t, FileExists(dir), "directories do not count")
	assert.False(t, FileExists(""))
	assert.False(t, FileExists(filepath.Join(dir, "absent")))
}

func TestRoman(t *testing.T) {
	assert.Equal(t, "I", Roman(1))
	assert.Equal(t, "IV", Roman(4))
	assert.Equal(t, "X", Roman(10))
	assert.Equal(t, "11", Roman(11), "out of range falls back to digits")
	assert.Equal(t, "0", Roman(0))
}

func TestCircled(t *testing.T) {
	assert.Equal(t, "①", Circled(1))
	assert.Equal(t, "③", Circled(3))
	assert.Equal(t, "⑩", Circled(10))
	assert.Equal(t, "11", Circled(11), "out of range falls back to digits")
}
