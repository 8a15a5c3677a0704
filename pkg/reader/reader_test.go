package reader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestReadTextFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.txt", []byte("hello\nworld"))

	content, err := ReadTextFile(path, false)

	require.NoError(t, err)
	assert.Equal(t, "hello\nworld", content)
}

func TestReadTextFile_Missing(t *testing.T) {
	_, err := ReadTextFile(filepath.Join(t.TempDir(), "nope"), false)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestReadTextFile_InvalidUTF8(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.bin", []byte{'o', 'k', 0xFF, 0xFE, '!'})

	_, err := ReadTextFile(path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid UTF-8")

	content, err := ReadTextFile(path, true)
	require.NoError(t, err)
	assert.Equal(t, "ok!", content)
}

func TestReadFiles_PreservesOrder(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", []byte("A"))
	b := writeFile(t, dir, "b.txt", []byte("B"))

	contents, err := ReadFiles([]string{b, a}, false)

	require.NoError(t, err)
	require.Len(t, contents, 2)
	assert.Equal(t, b, contents[0].Path)
	assert.Equal(t, "B", contents[0].Content)
	assert.Equal(t, a, contents[1].Path)
}

func TestContains(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.txt", []byte("nothing to see\nTODO: fix"))

	found, err := Contains(path, []string{"missing", "TODO"}, false)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = Contains(path, []string{"missing"}, false)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestTotalSize(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", []byte("12345"))
	b := writeFile(t, dir, "b.txt", []byte("1234567890"))

	total, err := TotalSize([]string{a, b})

	require.NoError(t, err)
	assert.Equal(t, uint64(15), total)
}

func TestCheckTotalSize_OverLimit(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.txt", make([]byte, 2048))

	err := CheckTotalSize([]string{path}, 1024)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "max-total-size")
}

func TestCheckTotalSize_ZeroDisablesGuard(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.txt", make([]byte, 2048))

	assert.NoError(t, CheckTotalSize([]string{path}, 0))
}
