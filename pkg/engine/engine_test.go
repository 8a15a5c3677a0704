package engine

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kcaldas/promptpack/pkg/logging"
)

const testTemplate = `
<template>
  <prompt>
    <header>HEADER</header>
    <file>File: <file-path>
<file-content></file>
    <footer>FOOTER</footer>
  </prompt>

  <part>
    <header>PART <part-number>/<total-parts></header>
    <footer>END <part-number></footer>
    <pending>WAIT (<parts-remaining> left)</pending>
  </part>
</template>
`

func testEngine() *Engine {
	return New(logging.NewDisabledLogger())
}

func setupProject(t *testing.T) (string, string) {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("alpha"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.txt"), []byte("beta"), 0o644))

	tmplPath := filepath.Join(t.TempDir(), "tmpl.md")
	require.NoError(t, os.WriteFile(tmplPath, []byte(testTemplate), 0o644))
	return root, tmplPath
}

func TestRun_SinglePart(t *testing.T) {
	root, tmplPath := setupProject(t)

	parts, err := testEngine().Run(Options{Root: root, Template: tmplPath, NoIgnore: true})

	require.NoError(t, err)
	require.Len(t, parts, 1)
	expected := "HEADER\n" +
		"File: " + filepath.Join(root, "a.txt") + "\nalpha\n" +
		"File: " + filepath.Join(root, "b.txt") + "\nbeta\n" +
		"FOOTER"
	assert.Equal(t, expected, parts[0])
}

func TestRun_MultiPart(t *testing.T) {
	root, tmplPath := setupProject(t)

	parts, err := testEngine().Run(Options{
		Root:        root,
		Template:    tmplPath,
		NoIgnore:    true,
		MaxPartSize: 120,
	})

	require.NoError(t, err)
	require.Greater(t, len(parts), 1)
	assert.Contains(t, parts[0], "PART 1/")
	assert.Contains(t, parts[0], "HEADER")
	assert.Contains(t, parts[0], "WAIT")
	last := parts[len(parts)-1]
	assert.Contains(t, last, "FOOTER")
	assert.NotContains(t, last, "WAIT")
}

func TestRun_NoFiles(t *testing.T) {
	_, err := testEngine().Run(Options{Root: t.TempDir(), NoIgnore: true})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no files to process")
}

func TestRun_TotalSizeGuard(t *testing.T) {
	root, tmplPath := setupProject(t)

	_, err := testEngine().Run(Options{
		Root:         root,
		Template:     tmplPath,
		NoIgnore:     true,
		MaxTotalSize: 4,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "max-total-size")
}

func TestRun_PipedPathsSkipWalking(t *testing.T) {
	root, tmplPath := setupProject(t)
	piped := []string{filepath.Join(root, "b.txt")}

	parts, err := testEngine().Run(Options{
		Root:       root,
		Template:   tmplPath,
		NoIgnore:   true,
		PipedPaths: piped,
	})

	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Contains(t, parts[0], "beta")
	assert.NotContains(t, parts[0], "alpha")
}

func TestListFiles_DryRunOrder(t *testing.T) {
	root, _ := setupProject(t)

	files, err := testEngine().ListFiles(Options{Root: root, NoIgnore: true})

	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.True(t, strings.HasSuffix(files[0], "a.txt"))
	assert.True(t, strings.HasSuffix(files[1], "b.txt"))
}

func TestRun_DefaultTemplate(t *testing.T) {
	root, _ := setupProject(t)

	parts, err := testEngine().Run(Options{Root: root, NoIgnore: true, NoTemplate: true})

	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Contains(t, parts[0], "a.txt")
	assert.Contains(t, parts[0], "alpha")
}

func TestEstimateTokens(t *testing.T) {
	assert.Equal(t, 0, EstimateTokens(0))
	assert.Equal(t, 1, EstimateTokens(1))
	assert.Equal(t, 1, EstimateTokens(4))
	assert.Equal(t, 2, EstimateTokens(5))
}
