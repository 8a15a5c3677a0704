// Package walker discovers the text files that go into the prompt. It
// walks the project tree honoring gitignore files, promptpack ignore files
// from the project and home directories, include/exclude globs and the
// hidden/symlink/depth/size policies from the command line.
package walker

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/mitchellh/go-homedir"
	ignore "github.com/sabhiram/go-gitignore"

	"github.com/kcaldas/promptpack/pkg/reader"
)

// IgnoreFileName is the promptpack ignore file merged from the project
// root and the user's home directory.
const IgnoreFileName = ".promptpack_ignore"

// Options controls a walk.
type Options struct {
	Root        string
	Include     []string
	Exclude     []string
	Contain     []string
	IgnoreFiles []string // extra ignore files (--ignore-file)
	MaxDepth    int      // 0 = unlimited
	MaxFilesize int64    // bytes, 0 = unlimited
	Hidden      bool     // include hidden files
	FollowLinks bool
	NoGitignore bool // skip per-directory .gitignore files
	NoIgnore    bool // skip .promptpack_ignore discovery
	ForceRead   bool // treat binary files as text
}

// scopedIgnore applies an ignore matcher to paths relative to the
// directory the ignore file lives in.
type scopedIgnore struct {
	base    string
	matcher *ignore.GitIgnore
}

type walker struct {
	opts  Options
	files []string
}

// Walk returns the sorted list of files under opts.Root that pass every
// filter.
func Walk(opts Options) ([]string, error) {
	w := &walker{opts: opts}

	matchers, err := w.baseMatchers()
	if err != nil {
		return nil, err
	}

	if err := w.walkDir(opts.Root, 0, matchers); err != nil {
		return nil, err
	}

	sort.Strings(w.files)
	return w.files, nil
}

// baseMatchers compiles the ignore files that apply to the whole tree: the
// home and project promptpack ignore files plus any --ignore-file paths.
// Explicitly named ignore files must exist; discovered ones are optional.
func (w *walker) baseMatchers() ([]scopedIgnore, error) {
	var matchers []scopedIgnore

	if !w.opts.NoIgnore {
		if home, err := homedir.Dir(); err == nil {
			if m, err := ignore.CompileIgnoreFile(filepath.Join(home, IgnoreFileName)); err == nil {
				matchers = append(matchers, scopedIgnore{base: w.opts.Root, matcher: m})
			}
		}
		if m, err := ignore.CompileIgnoreFile(filepath.Join(w.opts.Root, IgnoreFileName)); err == nil {
			matchers = append(matchers, scopedIgnore{base: w.opts.Root, matcher: m})
		}
	}

	for _, path := range w.opts.IgnoreFiles {
		m, err := ignore.CompileIgnoreFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read ignore file %s: %w", path, err)
		}
		matchers = append(matchers, scopedIgnore{base: w.opts.Root, matcher: m})
	}

	return matchers, nil
}

func (w *walker) walkDir(dir string, depth int, matchers []scopedIgnore) error {
	if !w.opts.NoGitignore {
		if m, err := ignore.CompileIgnoreFile(filepath.Join(dir, ".gitignore")); err == nil {
			matchers = append(matchers, scopedIgnore{base: dir, matcher: m})
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(dir, name)

		if !w.opts.Hidden && strings.HasPrefix(name, ".") {
			continue
		}

		isDir := entry.IsDir()
		if entry.Type()&fs.ModeSymlink != 0 {
			if !w.opts.FollowLinks {
				continue
			}
			info, err := os.Stat(path)
			if err != nil {
				continue // dangling symlink
			}
			isDir = info.IsDir()
		}

		if isDir {
			if w.isIgnored(path, true, matchers) || w.matchesAny(w.opts.Exclude, path) {
				continue
			}
			if w.opts.MaxDepth > 0 && depth+1 >= w.opts.MaxDepth {
				continue
			}
			if err := w.walkDir(path, depth+1, matchers); err != nil {
				return err
			}
			continue
		}

		ok, err := w.includeFile(path, entry, matchers)
		if err != nil {
			return err
		}
		if ok {
			w.files = append(w.files, path)
		}
	}

	return nil
}

func (w *walker) includeFile(path string, entry fs.DirEntry, matchers []scopedIgnore) (bool, error) {
	if w.isIgnored(path, false, matchers) {
		return false, nil
	}
	if w.matchesAny(w.opts.Exclude, path) {
		return false, nil
	}
	if len(w.opts.Include) > 0 && !w.matchesAny(w.opts.Include, path) {
		return false, nil
	}

	if w.opts.MaxFilesize > 0 {
		info, err := entry.Info()
		if err != nil {
			return false, err
		}
		if info.Size() > w.opts.MaxFilesize {
			return false, nil
		}
	}

	if !w.opts.ForceRead {
		text, err := IsTextFile(path)
		if err != nil {
			return false, fmt.Errorf("failed to inspect %s: %w", path, err)
		}
		if !text {
			return false, nil
		}
	}

	if len(w.opts.Contain) > 0 {
		found, err := reader.Contains(path, w.opts.Contain, w.opts.ForceRead)
		if err != nil || !found {
			return false, err
		}
	}

	return true, nil
}

func (w *walker) isIgnored(path string, isDir bool, matchers []scopedIgnore) bool {
	for _, scoped := range matchers {
		rel, err := filepath.Rel(scoped.base, path)
		if err != nil {
			continue
		}
		rel = filepath.ToSlash(rel)
		if scoped.matcher.MatchesPath(rel) {
			return true
		}
		if isDir && scoped.matcher.MatchesPath(rel+"/") {
			return true
		}
	}
	return false
}

// matchesAny matches a path against the include/exclude globs. Patterns
// with a slash are matched against the path relative to the root, bare
// patterns against the file or directory name, so `--exclude node_modules`
// and `--include 'src/**/*.go'` both work.
func (w *walker) matchesAny(patterns []string, path string) bool {
	rel, err := filepath.Rel(w.opts.Root, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)
	name := filepath.Base(path)

	for _, pattern := range patterns {
		if strings.ContainsRune(pattern, '/') {
			if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
				return true
			}
			continue
		}
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}
