package files

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath resolves paths that include a tilde (~) to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(homeDir, strings.TrimPrefix(path[1:], "/")), nil
	}
	return path, nil
}

// ValidateDir checks that path exists and is a directory.
func ValidateDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("path stat error: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path %q is not a directory", path)
	}
	return nil
}

// FindFiles walks the tree rooted at root and returns every regular file whose base name
// matches pattern, in lexical walk order. Paths listed in exclude are skipped.
func FindFiles(root, pattern string, exclude ...string) ([]string, error) {
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	skip := make(map[string]struct{}, len(exclude))
	for _, path := range exclude {
		skip[filepath.Clean(path)] = struct{}{}
	}

	// WalkDir does not descend into a symlinked root, so walk its target and
	// report paths under root as given.
	walkRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %q: %w", root, err)
	}

	var found []string
	err = filepath.WalkDir(walkRoot, func(walked string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("failed to access %q: %w", walked, err)
		}
		path := walked
		if walkRoot != root {
			rel, err := filepath.Rel(walkRoot, walked)
			if err != nil {
				return err
			}
			path = filepath.Join(root, rel)
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if _, ok := skip[filepath.Clean(path)]; ok {
			return nil
		}
		matched, _ := filepath.Match(pattern, d.Name())
		if matched {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// WriteJsonFile writes JSON data to the specified file, truncating any previous content.
func WriteJsonFile(outputFile string, data []byte) (err error) {
	file, err := os.OpenFile(outputFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed creating file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed closing file: %w", cerr)
		}
	}()

	datawriter := bufio.NewWriter(file)
	if _, err := datawriter.Write(data); err != nil {
		return fmt.Errorf("error writing data to file: %w", err)
	}
	if err := datawriter.Flush(); err != nil {
		return fmt.Errorf("error writing data to file: %w", err)
	}

	return nil
}
