package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const timeLayout = "2006-01-02_15-04-05"

// WriteFile writes the parts to path. A single part is written as-is;
// multiple parts go to numbered files (path.001, path.002, ...). The path
// may contain {TIME} or {TIME_UTC} tags, replaced with now formatted as
// 2006-01-02_15-04-05.
func WriteFile(parts []string, path string, now time.Time) error {
	if len(parts) == 0 {
		return nil
	}

	path = replaceTimeTags(path, now)

	if len(parts) == 1 {
		return writeFile(path, parts[0])
	}

	for i, part := range parts {
		numbered := fmt.Sprintf("%s.%03d", path, i+1)
		if err := writeFile(numbered, part); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func replaceTimeTags(path string, now time.Time) string {
	path = strings.ReplaceAll(path, "{TIME}", now.Format(timeLayout))
	return strings.ReplaceAll(path, "{TIME_UTC}", now.UTC().Format(timeLayout))
}
