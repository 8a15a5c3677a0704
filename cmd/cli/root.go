package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kcaldas/promptpack/pkg/config"
	"github.com/kcaldas/promptpack/pkg/engine"
	"github.com/kcaldas/promptpack/pkg/logging"
	"github.com/kcaldas/promptpack/pkg/output"
	"github.com/kcaldas/promptpack/pkg/version"
)

var (
	// Global flags
	flags       config.Options
	optionsFile string
	verbose     bool
	quiet       bool

	logger logging.Logger

	// Stubbed in tests
	timeNow = time.Now
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "promptpack [path]",
	Short: "Pack project files into an LLM prompt",
	Long: `Promptpack walks a project directory, concatenates the text files it
finds into a single templated prompt and splits the result into parts
that fit a size budget. Parts go to stdout, a file or the clipboard.`,
	Args:    cobra.MaximumNArgs(1),
	Version: version.GetVersion(),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Configure logger based on flags
		if quiet {
			logger = logging.NewQuietLogger()
		} else if verbose {
			logger = logging.NewVerboseLogger()
		} else {
			logger = logging.NewDefaultLogger()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := flags
		if len(args) == 1 {
			opts.Root = args[0]
		}

		if optionsFile != "" {
			fileOpts, err := config.LoadFile(optionsFile)
			if err != nil {
				return err
			}
			opts = config.Merge(opts, fileOpts, cmd.Flags().Changed)
			if len(args) == 1 {
				// A positional path always wins over the options file.
				opts.Root = args[0]
			}
		}

		return run(cmd, opts)
	},
}

func run(cmd *cobra.Command, opts config.Options) error {
	maxFilesize, err := opts.MaxFilesizeBytes()
	if err != nil {
		return err
	}
	maxTotalSize, err := opts.MaxTotalSizeBytes()
	if err != nil {
		return err
	}

	runOpts := engine.Options{
		Root:         opts.Root,
		Include:      opts.Include,
		Exclude:      opts.Exclude,
		Contain:      opts.Contain,
		IgnoreFiles:  opts.IgnoreFiles,
		MaxDepth:     opts.MaxDepth,
		MaxFilesize:  maxFilesize,
		MaxTotalSize: maxTotalSize,
		MaxPartSize:  opts.MaxPartSize,
		NoGitignore:  opts.NoGitignore,
		NoIgnore:     opts.NoIgnore,
		Binary:       opts.Binary,
		Hidden:       opts.Hidden,
		FollowLinks:  opts.FollowLinks,
		Template:     opts.Template,
		NoTemplate:   opts.NoTemplate,
	}

	if hasStdinInput() {
		paths, err := readStdinPaths()
		if err != nil {
			return err
		}
		runOpts.PipedPaths = paths
		logger.Debug("using piped file list", "count", len(paths))
	}

	eng := engine.New(logger)

	if opts.DryRun {
		paths, err := eng.ListFiles(runOpts)
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Fprintln(cmd.OutOrStdout(), p)
		}
		return nil
	}

	parts, err := eng.Run(runOpts)
	if err != nil {
		return err
	}

	return deliver(cmd, opts, parts)
}

// deliver routes the finished parts to the selected destination. Clipboard
// wins over a file target; stdout is the default.
func deliver(cmd *cobra.Command, opts config.Options, parts []string) error {
	switch {
	case opts.Clipboard:
		return output.NewClipboard().Copy(parts)
	case opts.Output != "":
		return output.WriteFile(parts, opts.Output, timeNow())
	default:
		return output.WriteStdout(parts, cmd.OutOrStdout())
	}
}

func init() {
	flags = config.DefaultOptions()

	// File selection
	RootCmd.Flags().StringArrayVarP(&flags.Include, "include", "i", nil, "glob pattern files must match (repeatable)")
	RootCmd.Flags().StringArrayVarP(&flags.Exclude, "exclude", "x", nil, "glob pattern files must not match (repeatable)")
	RootCmd.Flags().StringArrayVarP(&flags.Contain, "contain", "C", nil, "substring file contents must contain (repeatable)")
	RootCmd.Flags().IntVarP(&flags.MaxDepth, "max-depth", "d", 0, "maximum directory depth to descend (0 = unlimited)")
	RootCmd.Flags().StringVarP(&flags.MaxFilesize, "max-filesize", "f", config.DefaultMaxSize, "skip files larger than this size")
	RootCmd.Flags().StringVarP(&flags.MaxTotalSize, "max-total-size", "s", config.DefaultMaxSize, "abort when selected files exceed this total size")
	RootCmd.Flags().BoolVarP(&flags.NoGitignore, "no-gitignore", "g", false, "do not honor .gitignore files")
	RootCmd.Flags().BoolVarP(&flags.NoIgnore, "no-ignore", "I", false, "do not honor any ignore files")
	RootCmd.Flags().StringArrayVarP(&flags.IgnoreFiles, "ignore-file", "u", nil, "additional ignore file (repeatable)")
	RootCmd.Flags().BoolVarP(&flags.Binary, "binary", "B", false, "include binary files, replacing invalid UTF-8")
	RootCmd.Flags().BoolVarP(&flags.Hidden, "hidden", "H", false, "include hidden files and directories")
	RootCmd.Flags().BoolVarP(&flags.FollowLinks, "follow-links", "l", false, "follow symbolic links")

	// Prompt shaping
	RootCmd.Flags().IntVarP(&flags.MaxPartSize, "max-part-size", "m", 0, "split the prompt into parts of at most this many characters (0 = no split)")
	RootCmd.Flags().StringVarP(&flags.Template, "template", "t", "", "template file to use")
	RootCmd.Flags().BoolVarP(&flags.NoTemplate, "no-template", "T", false, "use the built-in template, skipping template discovery")

	// Delivery
	RootCmd.Flags().StringVarP(&flags.Output, "output", "o", "", "write the prompt to this file instead of stdout")
	RootCmd.Flags().BoolVarP(&flags.Clipboard, "clipboard", "c", false, "copy the prompt to the clipboard")
	RootCmd.Flags().BoolVarP(&flags.DryRun, "dry-run", "D", false, "list the files that would be packed and exit")

	// Run control
	RootCmd.Flags().StringVarP(&optionsFile, "options", "p", "", "YAML options file")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug level)")
	RootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "quiet output (errors only)")
}

// Execute runs the CLI with all commands
func Execute() {
	RootCmd.SetVersionTemplate("promptpack version {{.Version}}\n")
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
