package walker

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsText_PlainASCII(t *testing.T) {
	assert.True(t, isText([]byte("fn main() {}")))
}

func TestIsText_Empty(t *testing.T) {
	assert.True(t, isText(nil))
}

func TestIsText_NulByte(t *testing.T) {
	assert.False(t, isText([]byte{'a', 0x00, 'b'}))
}

func TestIsText_InvalidUTF8(t *testing.T) {
	assert.False(t, isText([]byte{0xFF, 0xFE, 0xFD}))
}

func TestIsText_MultibyteContent(t *testing.T) {
	assert.True(t, isText([]byte("привет – héllo")))
}

func TestIsText_TruncatedMultibyteTail(t *testing.T) {
	// "é" is 0xC3 0xA9; cutting the sample inside the rune must not make
	// the file look binary.
	buf := append([]byte("valid text "), 0xC3)
	assert.True(t, isText(buf))
}

func TestTrimPartialRune_CompleteBufferUntouched(t *testing.T) {
	buf := []byte("hello")
	assert.Equal(t, buf, trimPartialRune(buf))
}

func TestTrimPartialRune_DropsTruncatedSequence(t *testing.T) {
	buf := append([]byte("abc"), 0xE2, 0x82) // first two bytes of "€"
	assert.Equal(t, []byte("abc"), trimPartialRune(buf))
}

func TestIsTextFile(t *testing.T) {
	dir := t.TempDir()

	textPath := filepath.Join(dir, "text.txt")
	require.NoError(t, os.WriteFile(textPath, []byte(strings.Repeat("line\n", 400)), 0o644))

	binPath := filepath.Join(dir, "bin.dat")
	require.NoError(t, os.WriteFile(binPath, bytes.Repeat([]byte{0x00, 0x01}, 100), 0o644))

	ok, err := IsTextFile(textPath)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = IsTextFile(binPath)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = IsTextFile(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}
