// Package engine orchestrates a run: discover files, read them, render
// the template, partition the prompt and hand the parts back for delivery.
package engine

import (
	"fmt"
	"math"

	"github.com/kcaldas/promptpack/pkg/logging"
	"github.com/kcaldas/promptpack/pkg/partition"
	"github.com/kcaldas/promptpack/pkg/reader"
	"github.com/kcaldas/promptpack/pkg/template"
	"github.com/kcaldas/promptpack/pkg/walker"
)

// Options is the resolved configuration for one run; sizes are already
// parsed to byte counts.
type Options struct {
	Root         string
	Include      []string
	Exclude      []string
	Contain      []string
	IgnoreFiles  []string
	MaxDepth     int
	MaxFilesize  int64
	MaxTotalSize int64
	MaxPartSize  int // characters per part, 0 = unlimited
	NoGitignore  bool
	NoIgnore     bool
	Binary       bool
	Hidden       bool
	FollowLinks  bool
	Template     string
	NoTemplate   bool

	// PipedPaths is an explicit file list (one path per line on stdin).
	// When set, directory walking is skipped.
	PipedPaths []string
}

type Engine struct {
	logger logging.Logger
}

func New(logger logging.Logger) *Engine {
	return &Engine{logger: logger}
}

// ListFiles returns the files a run would include, without reading them.
// This backs --dry-run.
func (e *Engine) ListFiles(opts Options) ([]string, error) {
	if len(opts.PipedPaths) > 0 {
		return opts.PipedPaths, nil
	}

	return walker.Walk(walker.Options{
		Root:        opts.Root,
		Include:     opts.Include,
		Exclude:     opts.Exclude,
		Contain:     opts.Contain,
		IgnoreFiles: opts.IgnoreFiles,
		MaxDepth:    opts.MaxDepth,
		MaxFilesize: opts.MaxFilesize,
		Hidden:      opts.Hidden,
		FollowLinks: opts.FollowLinks,
		NoGitignore: opts.NoGitignore,
		NoIgnore:    opts.NoIgnore,
		ForceRead:   opts.Binary,
	})
}

// Run produces the final prompt parts.
func (e *Engine) Run(opts Options) ([]string, error) {
	paths, err := e.ListFiles(opts)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no files to process in %s", opts.Root)
	}
	e.logger.Debug("files discovered", "count", len(paths))

	if err := reader.CheckTotalSize(paths, uint64(opts.MaxTotalSize)); err != nil {
		return nil, err
	}

	tmpl, err := template.Load(opts.Template, opts.Root, opts.NoTemplate)
	if err != nil {
		return nil, err
	}

	contents, err := reader.ReadFiles(paths, opts.Binary)
	if err != nil {
		return nil, err
	}

	blocks := make([]string, 0, len(contents))
	totalChars := 0
	for _, fc := range contents {
		block := template.RenderItem(tmpl.Prompt.File, fc.Path, fc.Content)
		totalChars += len(block)
		blocks = append(blocks, block)
	}

	header := template.ResolveTags(tmpl.Prompt.Header, paths, opts.Root)
	footer := template.ResolveTags(tmpl.Prompt.Footer, paths, opts.Root)

	budget := opts.MaxPartSize
	if budget <= 0 {
		budget = math.MaxInt
	}

	parts := partition.Split(header, blocks, footer, partition.Wrapper{
		Header:  tmpl.Part.Header,
		Footer:  tmpl.Part.Footer,
		Pending: tmpl.Part.Pending,
	}, budget)

	e.logger.Info("prompt assembled",
		"files", len(paths),
		"parts", len(parts),
		"chars", totalChars,
		"tokens_estimate", EstimateTokens(totalChars),
	)

	return parts, nil
}
