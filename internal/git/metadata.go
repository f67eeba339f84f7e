package git

import (
	"fmt"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

// RepositoryMetadata describes the git checkout that contains a folder.
type RepositoryMetadata struct {
	BranchName     *string
	CommitHash     *string
	Subfolder      string
	RepoRootFolder string
}

// FindRepositoryRoot returns the absolute path of the git repository enclosing sourceFolder.
func FindRepositoryRoot(sourceFolder string) (string, error) {
	if sourceFolder == "" {
		return "", ErrSourceFolderNotSet
	}
	if absSource, err := filepath.Abs(sourceFolder); err == nil {
		sourceFolder = absSource
	}
	root, err := findGitRepositoryPath(filepath.Clean(sourceFolder))
	if err != nil {
		return "", err
	}
	return filepath.Clean(root), nil
}

// CollectRepositoryMetadata function collects repository metadata
// that includes branch name, commit hash, subfolder and repository root folder
func CollectRepositoryMetadata(sourceFolder string) (*RepositoryMetadata, error) {
	if sourceFolder == "" {
		return &RepositoryMetadata{}, ErrSourceFolderNotSet
	}

	if absSource, err := filepath.Abs(sourceFolder); err == nil {
		sourceFolder = absSource
	}

	md := &RepositoryMetadata{
		RepoRootFolder: filepath.Clean(sourceFolder),
	}

	repoRootFolder, err := FindRepositoryRoot(sourceFolder)
	if err != nil {
		return md, err
	}
	md.RepoRootFolder = repoRootFolder

	repo, err := git.PlainOpen(repoRootFolder)
	if err != nil {
		return md, fmt.Errorf("failed to open repository: %w", err)
	}

	if rel, err := filepath.Rel(repoRootFolder, sourceFolder); err == nil && rel != "." {
		md.Subfolder = filepath.ToSlash(rel)
	}

	if head, err := repo.Head(); err == nil {
		if head.Name().IsBranch() {
			branchName := head.Name().Short()
			md.BranchName = &branchName
		}

		hash := head.Hash().String()
		md.CommitHash = &hash
	}

	return md, nil
}
