package merger

import (
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/home-assistant/sarifmerge/internal/ci"
	"github.com/home-assistant/sarifmerge/internal/git"
)

// ResolveStripPrefixes returns the substrings to remove from location URIs.
// Explicit prefixes always win. With auto enabled the CI checkout directory is used,
// falling back to the git repository enclosing root.
func ResolveStripPrefixes(logger hclog.Logger, explicit []string, auto bool, ciKind, root string) []string {
	var prefixes []string
	for _, p := range explicit {
		if p != "" {
			prefixes = append(prefixes, p)
		}
	}
	if len(prefixes) > 0 || !auto {
		return prefixes
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	res := ci.ResolveWorkspace(logger, ciKind)
	if res.Workspace != "" {
		logger.Debug("stripping CI workspace from URIs",
			"ci", res.Kind.String(),
			"workspace", res.Workspace,
			"repository", res.Environment.RepositoryFullName,
			"commit", res.Environment.CommitHash,
		)
		return directoryPrefixes(res.Workspace)
	}
	if res.Hydrated {
		logger.Warn("CI environment does not expose a checkout directory, falling back to the git repository root", "ci", res.Kind.String())
	}

	md, err := git.CollectRepositoryMetadata(root)
	if err != nil {
		logger.Warn("unable to determine a prefix to strip, URIs left unchanged", "root", root, "error", err)
		return nil
	}
	logger.Debug("stripping repository root from URIs",
		"root", md.RepoRootFolder,
		"branch", deref(md.BranchName),
		"commit", deref(md.CommitHash),
	)
	return directoryPrefixes(md.RepoRootFolder)
}

// directoryPrefixes turns a directory into the URI substrings that precede
// repository-relative paths: the file:// form first, then the bare path.
func directoryPrefixes(dir string) []string {
	dir = strings.TrimRight(filepath.ToSlash(filepath.Clean(dir)), "/")
	if dir == "" {
		return nil
	}
	withSlash := dir + "/"

	fileURI := "file://" + withSlash
	if !strings.HasPrefix(withSlash, "/") {
		fileURI = "file:///" + withSlash
	}
	return []string{fileURI, withSlash}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
