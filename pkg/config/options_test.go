package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.yml")
	content := `
include:
  - "*.go"
exclude:
  - vendor
max-part-size: 32000
max-filesize: 1MB
clipboard: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	opts, err := LoadFile(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"*.go"}, opts.Include)
	assert.Equal(t, []string{"vendor"}, opts.Exclude)
	assert.Equal(t, 32000, opts.MaxPartSize)
	assert.Equal(t, "1MB", opts.MaxFilesize)
	assert.True(t, opts.Clipboard)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yml"))

	assert.Error(t, err)
}

func TestLoadFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("include: [unclosed"), 0o644))

	_, err := LoadFile(path)

	assert.Error(t, err)
}

func TestLoadFile_UnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typo.yml")
	content := `
excludes:
  - vendor
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := LoadFile(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid options file")
}

func TestLoadFile_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	opts, err := LoadFile(path)

	require.NoError(t, err)
	assert.Equal(t, Options{}, opts)
}

func TestMerge_FileFillsUnsetFlags(t *testing.T) {
	flags := DefaultOptions()
	file := Options{Include: []string{"*.md"}, MaxPartSize: 1000, Hidden: true}

	merged := Merge(flags, file, func(string) bool { return false })

	assert.Equal(t, []string{"*.md"}, merged.Include)
	assert.Equal(t, 1000, merged.MaxPartSize)
	assert.True(t, merged.Hidden)
	assert.Equal(t, DefaultMaxSize, merged.MaxFilesize)
}

func TestMerge_ExplicitFlagsWin(t *testing.T) {
	flags := DefaultOptions()
	flags.Include = []string{"*.go"}
	flags.MaxPartSize = 500
	file := Options{Include: []string{"*.md"}, MaxPartSize: 1000}

	merged := Merge(flags, file, func(name string) bool {
		return name == "include" || name == "max-part-size"
	})

	assert.Equal(t, []string{"*.go"}, merged.Include)
	assert.Equal(t, 500, merged.MaxPartSize)
}

func TestMaxFilesizeBytes(t *testing.T) {
	opts := Options{MaxFilesize: "50KB"}

	size, err := opts.MaxFilesizeBytes()

	require.NoError(t, err)
	assert.Equal(t, int64(50000), size)
}

func TestMaxFilesizeBytes_Empty(t *testing.T) {
	size, err := Options{}.MaxFilesizeBytes()

	require.NoError(t, err)
	assert.Zero(t, size)
}

func TestMaxTotalSizeBytes_Invalid(t *testing.T) {
	_, err := Options{MaxTotalSize: "not-a-size"}.MaxTotalSizeBytes()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "max-total-size")
}
