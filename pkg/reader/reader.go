// Package reader loads file contents for the prompt. Files must be valid
// UTF-8 unless force-reading is requested, in which case invalid sequences
// are stripped instead of failing the run.
package reader

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// FileContent holds one file's path and text.
type FileContent struct {
	Path    string
	Content string
}

// ReadFiles reads every path in order. The first failure aborts the run;
// a partially assembled prompt would be worse than an error.
func ReadFiles(paths []string, force bool) ([]FileContent, error) {
	contents := make([]FileContent, 0, len(paths))

	for _, path := range paths {
		content, err := ReadTextFile(path, force)
		if err != nil {
			return nil, err
		}
		contents = append(contents, FileContent{Path: path, Content: content})
	}

	return contents, nil
}

// ReadTextFile returns the file's content as UTF-8 text. With force set,
// invalid UTF-8 sequences are removed; otherwise they are an error.
func ReadTextFile(path string, force bool) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", path, err)
	}

	if utf8.Valid(data) {
		return string(data), nil
	}
	if !force {
		return "", fmt.Errorf("file %s is not valid UTF-8 text (use --binary to read it anyway)", path)
	}

	return strings.ToValidUTF8(string(data), ""), nil
}

// Contains reports whether the file's content includes at least one of the
// given substrings.
func Contains(path string, texts []string, force bool) (bool, error) {
	content, err := ReadTextFile(path, force)
	if err != nil {
		return false, err
	}

	for _, text := range texts {
		if strings.Contains(content, text) {
			return true, nil
		}
	}
	return false, nil
}
