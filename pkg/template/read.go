package template

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

// TemplateFileName is the template looked up in the project root and the
// user's home directory when no --template path is given.
const TemplateFileName = ".promptpack_template"

//go:embed default.md
var defaultTemplate string

// Load reads and parses the template to use for a run.
//
// Resolution order: the explicit path when non-empty, then
// .promptpack_template in the project root, then in the home directory
// (both skipped when noDiscover is set), and finally the embedded default.
func Load(path, root string, noDiscover bool) (Template, error) {
	if path == "" && !noDiscover {
		path = discover(root, "")
	}

	if path == "" {
		return Parse(defaultTemplate)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return Template{}, fmt.Errorf("failed to read template %s: %w", path, err)
	}

	tmpl, err := Parse(string(content))
	if err != nil {
		return Template{}, fmt.Errorf("invalid template %s: %w", path, err)
	}
	return tmpl, nil
}

// discover looks for a project-level template first, then a home-level
// one. homeOverride replaces the real home directory in tests.
func discover(root, homeOverride string) string {
	candidate := filepath.Join(root, TemplateFileName)
	if fileExists(candidate) {
		return candidate
	}

	home := homeOverride
	if home == "" {
		var err error
		home, err = homedir.Dir()
		if err != nil {
			return ""
		}
	}

	candidate = filepath.Join(home, TemplateFileName)
	if fileExists(candidate) {
		return candidate
	}

	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
