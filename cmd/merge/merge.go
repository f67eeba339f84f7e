package merge

import (
	"errors"
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	cmdutil "github.com/home-assistant/sarifmerge/internal/cmd"
	"github.com/home-assistant/sarifmerge/internal/config"
	"github.com/home-assistant/sarifmerge/internal/merger"
	"github.com/home-assistant/sarifmerge/internal/sarif"
	"github.com/home-assistant/sarifmerge/pkg/shared/artifacts"
	cmderrors "github.com/home-assistant/sarifmerge/pkg/shared/errors"
)

// RunOptionsMerge holds the arguments for the merge command.
type RunOptionsMerge struct {
	Root          string   `json:"root,omitempty"`
	Pattern       string   `json:"pattern,omitempty"`
	Output        string   `json:"output,omitempty"`
	StripPrefixes []string `json:"strip_prefixes,omitempty"`
	AutoStrip     bool     `json:"auto_strip,omitempty"`
	CIKind        string   `json:"ci,omitempty"`
	DryRun        bool     `json:"dry_run,omitempty"`
	ReportPath    string   `json:"report,omitempty"`
}

// Global variables for configuration and command arguments
var (
	AppConfig    *config.Config
	logger       hclog.Logger
	mergeOptions RunOptionsMerge

	exampleMergeUsage = `  # Merge every *.sarif file under the current directory into ./merged_results.sarif
  sarifmerge merge

  # Merge reports under a build directory
  sarifmerge merge build/reports

  # Remove the CI checkout path from every result location
  sarifmerge merge --strip-prefix work/android/android/

  # Detect the checkout path from the CI environment or the git repository root
  sarifmerge merge --auto-strip

  # Merge a custom pattern into a custom file name without writing anything
  sarifmerge merge --root app --pattern "*.sarif.json" --output lint.sarif --dry-run`

	MergeCmd = &cobra.Command{
		Use:                   "merge [ROOT] [--root DIR] [--pattern GLOB] [--output NAME] [--strip-prefix STR]... [--auto-strip [--ci KIND]] [--dry-run] [--report PATH]",
		Short:                 "Merge SARIF files found under a directory into a single report",
		Long:                  longMergeDescription,
		Example:               exampleMergeUsage,
		Args:                  cobra.MaximumNArgs(1),
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		RunE:                  runMerge,
	}
)

const longMergeDescription = `Merge SARIF files found under a directory into a single report.

Every file matching the pattern is read in lexical path order. The results of the
first run of each file are concatenated and written into the first run of the first
file, which also provides the schema, tool and rule metadata of the merged report.
A file that is not valid JSON aborts the merge and nothing is written.

The output file itself is never read as an input, so a merged report left by a
previous run is overwritten rather than merged again.`

// Init wires config and logger into the command package.
func Init(cfg *config.Config, l hclog.Logger) {
	AppConfig = cfg
	logger = l
}

func runMerge(cmd *cobra.Command, args []string) error {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	mode := cmdutil.DetermineMode(args)
	applyConfigDefaults(&mergeOptions, AppConfig, cmd.Flags())

	if err := validateMergeArgs(&mergeOptions, args, mode); err != nil {
		logger.Error("invalid command arguments", "error", err)
		return cmderrors.NewCommandError(mergeOptions, nil, fmt.Errorf("invalid arguments: %w", err), cmderrors.ExitCodeFailure)
	}
	if mode == cmdutil.ModeSinglePath {
		mergeOptions.Root = args[0]
	}
	mergeOptions.Root = config.SetThen(mergeOptions.Root, ".")

	prefixes := merger.ResolveStripPrefixes(logger, mergeOptions.StripPrefixes, mergeOptions.AutoStrip, mergeOptions.CIKind, mergeOptions.Root)

	m := merger.New(logger.Named("merger"))
	result, err := m.Merge(merger.Options{
		Root:          mergeOptions.Root,
		Pattern:       mergeOptions.Pattern,
		Output:        mergeOptions.Output,
		StripPrefixes: prefixes,
		DryRun:        mergeOptions.DryRun,
	})
	if err != nil {
		code := cmderrors.ExitCodeFailure
		var malformed *sarif.MalformedInputError
		if errors.As(err, &malformed) {
			code = cmderrors.ExitCodeMalformedInput
		}
		return cmderrors.NewCommandError(mergeOptions, nil, err, code)
	}

	printResult(cmd.OutOrStdout(), result, mergeOptions.DryRun)

	if mergeOptions.ReportPath != "" {
		if _, err := artifacts.SaveArtifactJSON(logger, mergeOptions.ReportPath, "merge", result); err != nil {
			return cmderrors.NewCommandError(mergeOptions, result, err, cmderrors.ExitCodeFailure)
		}
	}
	return nil
}

// applyConfigDefaults fills options that were not given on the command line from the YAML config.
func applyConfigDefaults(opts *RunOptionsMerge, cfg *config.Config, flags *pflag.FlagSet) {
	if opts.Pattern == "" {
		opts.Pattern = config.GetMergePattern(cfg)
	}
	if opts.Output == "" {
		opts.Output = config.GetMergeOutput(cfg)
	}
	if cfg == nil {
		return
	}
	if len(opts.StripPrefixes) == 0 && cfg.Merge.StripPrefix != "" {
		opts.StripPrefixes = []string{cfg.Merge.StripPrefix}
	}
	if !opts.AutoStrip && (flags == nil || !flags.Changed("auto-strip")) {
		opts.AutoStrip = cfg.Merge.AutoStrip
	}
}

// printResult reports the merge outcome in a human-readable form.
func printResult(w io.Writer, result *merger.Result, dryRun bool) {
	switch {
	case len(result.Files) == 0:
		fmt.Fprintf(w, "No SARIF files found under %s\n", result.Root)
		return
	case result.TemplatePath == "":
		fmt.Fprintf(w, "None of the %d SARIF file(s) under %s is a JSON object, nothing written\n", len(result.Files), result.Root)
		return
	case dryRun:
		fmt.Fprintf(w, "Dry run: would merge %d SARIF file(s) with %d result(s) into %s\n", len(result.Files), result.TotalResults, result.OutputPath)
	default:
		fmt.Fprintf(w, "Merged %d SARIF file(s) with %d result(s) into %s\n", len(result.Files), result.TotalResults, result.OutputPath)
	}

	for _, f := range result.Files {
		fmt.Fprintf(w, "  %s: %d result(s)\n", f.Path, f.Results)
	}
	if result.RewrittenURI > 0 {
		fmt.Fprintf(w, "Normalised %d location URI(s)\n", result.RewrittenURI)
	}
}

func init() {
	MergeCmd.Flags().StringVarP(&mergeOptions.Root, "root", "r", "", "Directory to search recursively for SARIF files (default is the current directory)")
	MergeCmd.Flags().StringVarP(&mergeOptions.Pattern, "pattern", "p", "", fmt.Sprintf("Glob matched against file names (default %q)", config.DefaultPattern))
	MergeCmd.Flags().StringVarP(&mergeOptions.Output, "output", "o", "", fmt.Sprintf("Name of the merged file written into the root directory (default %q)", config.DefaultOutput))
	MergeCmd.Flags().StringSliceVar(&mergeOptions.StripPrefixes, "strip-prefix", nil, "Substring removed from every result location URI (repeat flag or use comma-separated values)")
	MergeCmd.Flags().BoolVar(&mergeOptions.AutoStrip, "auto-strip", false, "Strip the CI checkout directory, or the git repository root, from result location URIs")
	MergeCmd.Flags().StringVar(&mergeOptions.CIKind, "ci", "", "CI provider used by --auto-strip (github, gitlab, bitbucket); detected when empty")
	MergeCmd.Flags().BoolVar(&mergeOptions.DryRun, "dry-run", false, "Merge in memory and report without writing the output file")
	MergeCmd.Flags().StringVar(&mergeOptions.ReportPath, "report", "", "Write the merge outcome as JSON to this file, or into this directory under a generated name")
	MergeCmd.Flags().BoolP("help", "h", false, "Show help for merge command.")
}
