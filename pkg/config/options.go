// Package config holds the run options and loads them from an optional
// YAML options file. File values fill in whatever the command line did not
// set explicitly.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"
)

// DefaultMaxSize is the default per-file and total size cap.
const DefaultMaxSize = "50KB"

// Options is the full set of knobs for one run. YAML keys match the long
// flag names.
type Options struct {
	Include      []string `yaml:"include"`
	Exclude      []string `yaml:"exclude"`
	Contain      []string `yaml:"contain"`
	MaxDepth     int      `yaml:"max-depth"`
	MaxFilesize  string   `yaml:"max-filesize"`
	MaxTotalSize string   `yaml:"max-total-size"`
	MaxPartSize  int      `yaml:"max-part-size"`
	NoGitignore  bool     `yaml:"no-gitignore"`
	NoIgnore     bool     `yaml:"no-ignore"`
	IgnoreFiles  []string `yaml:"ignore-file"`
	Binary       bool     `yaml:"binary"`
	Hidden       bool     `yaml:"hidden"`
	FollowLinks  bool     `yaml:"follow-links"`
	Template     string   `yaml:"template"`
	NoTemplate   bool     `yaml:"no-template"`
	Output       string   `yaml:"output"`
	Clipboard    bool     `yaml:"clipboard"`
	DryRun       bool     `yaml:"dry-run"`
	Root         string   `yaml:"root"`
}

// DefaultOptions returns the options used when nothing else is specified.
func DefaultOptions() Options {
	return Options{
		MaxFilesize:  DefaultMaxSize,
		MaxTotalSize: DefaultMaxSize,
		Root:         ".",
	}
}

// LoadFile reads an options file. Unknown keys are an error; a typo in an
// options file should not silently change a run.
func LoadFile(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("failed to read options file %s: %w", path, err)
	}

	var opts Options
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && err != io.EOF {
		return Options{}, fmt.Errorf("invalid options file %s: %w", path, err)
	}
	return opts, nil
}

// Merge overlays file values onto flag values. A field from the options
// file only applies when the corresponding flag was not set explicitly;
// changed reports whether the named flag was.
func Merge(flags, file Options, changed func(name string) bool) Options {
	out := flags

	if !changed("include") && len(file.Include) > 0 {
		out.Include = file.Include
	}
	if !changed("exclude") && len(file.Exclude) > 0 {
		out.Exclude = file.Exclude
	}
	if !changed("contain") && len(file.Contain) > 0 {
		out.Contain = file.Contain
	}
	if !changed("max-depth") && file.MaxDepth > 0 {
		out.MaxDepth = file.MaxDepth
	}
	if !changed("max-filesize") && file.MaxFilesize != "" {
		out.MaxFilesize = file.MaxFilesize
	}
	if !changed("max-total-size") && file.MaxTotalSize != "" {
		out.MaxTotalSize = file.MaxTotalSize
	}
	if !changed("max-part-size") && file.MaxPartSize > 0 {
		out.MaxPartSize = file.MaxPartSize
	}
	if !changed("no-gitignore") && file.NoGitignore {
		out.NoGitignore = true
	}
	if !changed("no-ignore") && file.NoIgnore {
		out.NoIgnore = true
	}
	if !changed("ignore-file") && len(file.IgnoreFiles) > 0 {
		out.IgnoreFiles = file.IgnoreFiles
	}
	if !changed("binary") && file.Binary {
		out.Binary = true
	}
	if !changed("hidden") && file.Hidden {
		out.Hidden = true
	}
	if !changed("follow-links") && file.FollowLinks {
		out.FollowLinks = true
	}
	if !changed("template") && file.Template != "" {
		out.Template = file.Template
	}
	if !changed("no-template") && file.NoTemplate {
		out.NoTemplate = true
	}
	if !changed("output") && file.Output != "" {
		out.Output = file.Output
	}
	if !changed("clipboard") && file.Clipboard {
		out.Clipboard = true
	}
	if !changed("dry-run") && file.DryRun {
		out.DryRun = true
	}
	if file.Root != "" {
		out.Root = file.Root
	}

	return out
}

// MaxFilesizeBytes parses the per-file size cap ("50KB", "1MB", plain
// byte counts). Empty means unlimited.
func (o Options) MaxFilesizeBytes() (int64, error) {
	return parseSize(o.MaxFilesize, "max-filesize")
}

// MaxTotalSizeBytes parses the total size cap. Empty means unlimited.
func (o Options) MaxTotalSizeBytes() (int64, error) {
	return parseSize(o.MaxTotalSize, "max-total-size")
}

func parseSize(value, flag string) (int64, error) {
	if value == "" {
		return 0, nil
	}
	size, err := humanize.ParseBytes(value)
	if err != nil {
		return 0, fmt.Errorf("invalid --%s value %q: %w", flag, value, err)
	}
	return int64(size), nil
}
