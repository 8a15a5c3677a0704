package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_NestedDirectories(t *testing.T) {
	paths := []string{"proj/dir/file1.txt", "proj/file2.txt"}

	got, err := Build(paths, "proj")

	require.NoError(t, err)
	expected := ".\n" +
		"├── dir\n" +
		"│   └── file1.txt\n" +
		"└── file2.txt"
	assert.Equal(t, expected, got)
}

func TestBuild_SortsEntries(t *testing.T) {
	paths := []string{"r/b.txt", "r/a.txt", "r/c/z.txt"}

	got, err := Build(paths, "r")

	require.NoError(t, err)
	expected := ".\n" +
		"├── a.txt\n" +
		"├── b.txt\n" +
		"└── c\n" +
		"    └── z.txt"
	assert.Equal(t, expected, got)
}

func TestBuild_Empty(t *testing.T) {
	got, err := Build(nil, ".")

	require.NoError(t, err)
	assert.Equal(t, ".", got)
}

func TestBuild_PathOutsideRoot(t *testing.T) {
	_, err := Build([]string{"/elsewhere/file.txt"}, "/project")

	assert.Error(t, err)
}
