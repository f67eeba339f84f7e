package sarif

import (
	"fmt"

	gosarif "github.com/owenrumney/go-sarif/v2/sarif"
)

// defaultLevel is the level SARIF assigns to results without an explicit one.
const defaultLevel = "warning"

// Summary describes the first run of a SARIF log.
type Summary struct {
	Tool    string         `json:"tool"`
	Version string         `json:"version"`
	Results int            `json:"results"`
	Levels  map[string]int `json:"levels"`
}

// Summarize parses data as a typed SARIF report and counts the results of runs[0] by level.
func Summarize(data []byte) (*Summary, error) {
	report, err := gosarif.FromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("failed to read SARIF report: %w", err)
	}

	summary := &Summary{
		Version: report.Version,
		Levels:  map[string]int{},
	}
	if len(report.Runs) == 0 || report.Runs[0] == nil {
		return summary, nil
	}

	run := report.Runs[0]
	if run.Tool.Driver != nil {
		summary.Tool = run.Tool.Driver.Name
	}
	for _, result := range run.Results {
		if result == nil {
			continue
		}
		level := defaultLevel
		if result.Level != nil && *result.Level != "" {
			level = *result.Level
		}
		summary.Levels[level]++
		summary.Results++
	}
	return summary, nil
}
