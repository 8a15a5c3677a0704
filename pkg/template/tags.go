package template

import (
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/kcaldas/promptpack/pkg/tree"
)

// Tags recognized in the prompt header and footer.
const (
	TagAllFilePaths  = "{{ALL_FILE_PATHS}}"
	TagTree          = "{{TREE}}"
	TagTotalFileSize = "<total-file-size>"
)

// Placeholders recognized in the per-file item fragment.
const (
	PlaceholderFilePath    = "<file-path>"
	PlaceholderFileContent = "<file-content>"
)

// RenderItem applies the item fragment to one file.
func RenderItem(fragment, path, content string) string {
	item := strings.ReplaceAll(fragment, PlaceholderFilePath, path)
	return strings.ReplaceAll(item, PlaceholderFileContent, content)
}

// ResolveTags substitutes the file-list, tree and total-size tags in a
// header or footer. Tags that are absent leave the text untouched; a tag
// whose value cannot be computed (unreadable file, path outside root) is
// left in place rather than failing the whole run.
func ResolveTags(text string, paths []string, root string) string {
	if strings.Contains(text, TagAllFilePaths) {
		text = strings.ReplaceAll(text, TagAllFilePaths, strings.Join(paths, "\n"))
	}

	if strings.Contains(text, TagTree) {
		if rendered, err := tree.Build(paths, root); err == nil {
			text = strings.ReplaceAll(text, TagTree, rendered)
		}
	}

	if strings.Contains(text, TagTotalFileSize) {
		if total, err := totalSize(paths); err == nil {
			text = strings.ReplaceAll(text, TagTotalFileSize, humanize.Bytes(total))
		}
	}

	return text
}

func totalSize(paths []string) (uint64, error) {
	var total uint64
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return 0, err
		}
		total += uint64(info.Size())
	}
	return total, nil
}
