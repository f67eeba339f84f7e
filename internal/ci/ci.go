// Package ci provides helpers for discovering CI metadata.
package ci

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// CIKind represents the type of CI.
type CIKind int

const (
	// CIUnknown indicates the CI provider could not be identified.
	CIUnknown CIKind = iota
	// CIGitHub identifies GitHub CI environments.
	CIGitHub
	// CIGitLab identifies GitLab CI environments.
	CIGitLab
	// CIBitbucket identifies Bitbucket CI environments.
	CIBitbucket
)

// LookupFunc fetches environment variables and defaults to os.Getenv.
type LookupFunc func(string) string

// CIEnvironment captures canonical CI metadata derived from environment variables.
type CIEnvironment struct {
	Kind               CIKind // Kind identifies the CI provider.
	CI                 bool   // CI reports whether the execution runs inside a CI environment.
	Workspace          string // Workspace is the directory the repository was checked out into.
	CommitHash         string // CommitHash is the tip commit that triggered the job.
	RepositoryFullName string // RepositoryFullName is the namespace-qualified repository name.
}

// String returns the human-readable string representation of a CIKind.
func (c CIKind) String() string {
	switch c {
	case CIGitHub:
		return "github"
	case CIGitLab:
		return "gitlab"
	case CIBitbucket:
		return "bitbucket"
	default:
		return "unknown"
	}
}

// ParseCIKind converts a string identifier into a CIKind value.
func ParseCIKind(raw string) (CIKind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "github":
		return CIGitHub, nil
	case "gitlab":
		return CIGitLab, nil
	case "bitbucket":
		return CIBitbucket, nil
	default:
		return CIUnknown, fmt.Errorf("unsupported ci kind %q", raw)
	}
}

// DetectCIKind attempts to infer the CI provider from well-known environment variables.
func DetectCIKind() CIKind {
	return detectCIKindWithLookup(os.Getenv)
}

func detectCIKindWithLookup(lookup LookupFunc) CIKind {
	if lookup == nil {
		lookup = os.Getenv
	}

	if lookup("GITHUB_ACTIONS") != "" || lookup("GITHUB_WORKSPACE") != "" || lookup("GITHUB_SHA") != "" {
		return CIGitHub
	}
	if strings.EqualFold(lookup("GITLAB_CI"), "true") || lookup("CI_PROJECT_DIR") != "" {
		return CIGitLab
	}
	if lookup("BITBUCKET_CLONE_DIR") != "" || lookup("BITBUCKET_REPO_SLUG") != "" {
		return CIBitbucket
	}

	return CIUnknown
}

// GetCIDefaultEnvVars returns CI environment variables for the provided kind using the process environment.
func GetCIDefaultEnvVars(kind CIKind) (CIEnvironment, error) {
	return getCIDefaultEnvVars(kind, os.Getenv)
}

// getCIDefaultEnvVars resolves CI environment variables with the supplied lookup function.
func getCIDefaultEnvVars(kind CIKind, lookup LookupFunc) (CIEnvironment, error) {
	if lookup == nil {
		lookup = os.Getenv
	}

	switch kind {
	case CIGitHub:
		return extractGitHubVariables(lookup), nil
	case CIGitLab:
		return extractGitLabVariables(lookup), nil
	case CIBitbucket:
		return extractBitbucketVariables(lookup), nil
	default:
		return CIEnvironment{}, fmt.Errorf("unsupported ci kind: %s", kind)
	}
}

// extractGitHubVariables builds the CIEnvironment from GitHub-specific variables.
// See https://docs.github.com/en/actions/reference/workflows-and-actions/variables.
func extractGitHubVariables(lookup LookupFunc) CIEnvironment {
	ci, _ := strconv.ParseBool(lookup("CI"))
	return CIEnvironment{
		Kind:               CIGitHub,
		CI:                 ci,
		Workspace:          lookup("GITHUB_WORKSPACE"),
		CommitHash:         lookup("GITHUB_SHA"),
		RepositoryFullName: lookup("GITHUB_REPOSITORY"),
	}
}

// extractGitLabVariables builds the CIEnvironment from GitLab-specific variables.
// See https://docs.gitlab.com/ci/variables/predefined_variables/.
func extractGitLabVariables(lookup LookupFunc) CIEnvironment {
	ci, _ := strconv.ParseBool(lookup("CI"))
	return CIEnvironment{
		Kind:               CIGitLab,
		CI:                 ci,
		Workspace:          lookup("CI_PROJECT_DIR"),
		CommitHash:         lookup("CI_COMMIT_SHA"),
		RepositoryFullName: lookup("CI_PROJECT_PATH"),
	}
}

// extractBitbucketVariables builds the CIEnvironment from Bitbucket-specific variables.
// See https://support.atlassian.com/bitbucket-cloud/docs/variables-and-secrets/.
func extractBitbucketVariables(lookup LookupFunc) CIEnvironment {
	ci, _ := strconv.ParseBool(lookup("CI"))
	return CIEnvironment{
		Kind:               CIBitbucket,
		CI:                 ci,
		Workspace:          lookup("BITBUCKET_CLONE_DIR"),
		CommitHash:         lookup("BITBUCKET_COMMIT"),
		RepositoryFullName: lookup("BITBUCKET_REPO_FULL_NAME"),
	}
}
