package merger

import (
	"fmt"
	"path/filepath"

	"github.com/hashicorp/go-hclog"

	"github.com/home-assistant/sarifmerge/internal/config"
	"github.com/home-assistant/sarifmerge/internal/sarif"
	"github.com/home-assistant/sarifmerge/pkg/shared/files"
)

// Options controls a single merge.
type Options struct {
	Root          string   // Directory scanned recursively for inputs; the output is written here too
	Pattern       string   // Glob matched against file base names
	Output        string   // Output file name inside Root
	StripPrefixes []string // Substrings removed from every result location URI
	DryRun        bool     // Merge in memory without writing the output
}

// FileResult records how many results one input contributed.
type FileResult struct {
	Path    string `json:"path"`
	Results int    `json:"results"`
}

// Result describes the outcome of a merge.
type Result struct {
	Root         string         `json:"root"`
	OutputPath   string         `json:"output_path"`
	TemplatePath string         `json:"template_path,omitempty"`
	Files        []FileResult   `json:"files"`
	TotalResults int            `json:"total_results"`
	RewrittenURI int            `json:"rewritten_uris"`
	Written      bool           `json:"written"`
	Summary      *sarif.Summary `json:"summary,omitempty"`
}

// Merger concatenates the first-run results of SARIF logs found under a directory.
type Merger struct {
	logger hclog.Logger
}

// New creates a Merger that reports progress through logger.
func New(logger hclog.Logger) *Merger {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Merger{logger: logger}
}

// Merge discovers inputs under opts.Root and writes the merged document to opts.Output.
//
// The first input whose top-level value is a JSON object is the template: everything but
// runs[0].results is copied from it verbatim. A malformed input aborts the merge before
// anything is written. Finding no inputs, or no usable template, is reported through the
// returned Result with Written set to false and a nil error.
func (m *Merger) Merge(opts Options) (*Result, error) {
	root, err := files.ExpandPath(opts.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to expand root %q: %w", opts.Root, err)
	}
	if root == "" {
		root = "."
	}
	if err := files.ValidateDir(root); err != nil {
		return nil, fmt.Errorf("invalid root directory: %w", err)
	}

	pattern := config.SetThen(opts.Pattern, config.DefaultPattern)
	output := config.SetThen(opts.Output, config.DefaultOutput)
	if err := config.ValidateOutputName(output); err != nil {
		return nil, err
	}

	res := &Result{
		Root:       root,
		OutputPath: filepath.Join(root, output),
		Files:      []FileResult{},
	}

	inputs, err := files.FindFiles(root, pattern, res.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to discover SARIF files: %w", err)
	}
	if len(inputs) == 0 {
		m.logger.Info("no SARIF files found", "root", root, "pattern", pattern)
		return res, nil
	}
	m.logger.Debug("discovered SARIF files", "count", len(inputs))

	var (
		template *sarif.Document
		merged   = []interface{}{}
	)
	for _, path := range inputs {
		doc, err := sarif.ReadDocument(path)
		if err != nil {
			m.logger.Error("failed to read SARIF file", "path", path, "error", err)
			return nil, fmt.Errorf("merge aborted: %w", err)
		}

		results := doc.Results()
		m.logger.Debug("processing SARIF file", "path", path, "results", len(results))

		if template == nil && doc.IsObject() {
			template = doc
			res.TemplatePath = path
		}
		merged = append(merged, results...)
		res.Files = append(res.Files, FileResult{Path: path, Results: len(results)})
	}
	res.TotalResults = len(merged)

	if template == nil {
		m.logger.Warn("no SARIF file could serve as a template, output not written", "files", len(inputs))
		return res, nil
	}

	res.RewrittenURI = sarif.StripURISubstring(merged, opts.StripPrefixes...)
	if len(opts.StripPrefixes) > 0 {
		m.logger.Debug("normalised location URIs", "prefixes", opts.StripPrefixes, "rewritten", res.RewrittenURI)
	}

	template.SetResults(merged)
	data, err := template.Encode()
	if err != nil {
		return nil, err
	}

	if summary, err := sarif.Summarize(data); err != nil {
		m.logger.Warn("unable to summarise merged report", "error", err)
	} else {
		res.Summary = summary
	}

	if opts.DryRun {
		m.logger.Info("dry run, merged report not written", "output", res.OutputPath)
		return res, nil
	}

	if err := files.WriteJsonFile(res.OutputPath, data); err != nil {
		return nil, fmt.Errorf("failed to write %q: %w", res.OutputPath, err)
	}
	res.Written = true

	m.logger.Info("merged SARIF files",
		"files", len(res.Files),
		"results", res.TotalResults,
		"output", res.OutputPath,
	)
	return res, nil
}
