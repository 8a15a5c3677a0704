// Package tree renders a list of file paths as an ASCII directory tree,
// the representation used by the {{TREE}} template tag.
package tree

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

type node struct {
	children map[string]*node
}

func newNode() *node {
	return &node{children: map[string]*node{}}
}

// Build renders the given file paths relative to root as an ASCII tree
// rooted at ".". Entries are sorted lexicographically at every level. A
// path outside root is an error.
func Build(paths []string, root string) (string, error) {
	top := newNode()

	for _, path := range paths {
		rel, err := filepath.Rel(root, path)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return "", fmt.Errorf("path %q is outside the root %q", path, root)
		}

		current := top
		for _, component := range strings.Split(rel, string(filepath.Separator)) {
			child, ok := current.children[component]
			if !ok {
				child = newNode()
				current.children[component] = child
			}
			current = child
		}
	}

	var b strings.Builder
	b.WriteString(".\n")
	render(top, "", &b)

	return strings.TrimSuffix(b.String(), "\n"), nil
}

func render(n *node, prefix string, b *strings.Builder) {
	names := make([]string, 0, len(n.children))
	for name := range n.children {
		names = append(names, name)
	}
	sort.Strings(names)

	for i, name := range names {
		connector, childPrefix := "├── ", prefix+"│   "
		if i == len(names)-1 {
			connector, childPrefix = "└── ", prefix+"    "
		}
		b.WriteString(prefix)
		b.WriteString(connector)
		b.WriteString(name)
		b.WriteByte('\n')
		render(n.children[name], childPrefix, b)
	}
}
