package artifacts

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/home-assistant/sarifmerge/pkg/shared/files"
)

// GetArtifactName builds the default name of a command report.
// Example: merge_2025-09-15T08:28:46Z.sarifmerge-report.json.
func GetArtifactName(command string, t time.Time) string {
	ts := t.UTC().Format(time.RFC3339)
	return fmt.Sprintf("%s_%s.sarifmerge-report.json", command, ts)
}

// SaveArtifactJSON writes result as indented JSON. When path is a directory the
// file is named with GetArtifactName inside it. Returns the full path.
func SaveArtifactJSON(logger hclog.Logger, path, command string, result interface{}) (string, error) {
	if err := files.ValidateDir(path); err == nil {
		path = filepath.Join(path, GetArtifactName(command, time.Now()))
	}

	resultData, err := json.MarshalIndent(result, "", "    ")
	if err != nil {
		return path, fmt.Errorf("error marshaling the result data: %w", err)
	}

	if err := files.WriteJsonFile(path, resultData); err != nil {
		return path, fmt.Errorf("error writing result to report file: %w", err)
	}
	if logger != nil {
		logger.Info("report saved to file", "path", path)
	}

	return path, nil
}
