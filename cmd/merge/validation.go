package merge

import (
	"fmt"
	"strings"

	cmdutil "github.com/home-assistant/sarifmerge/internal/cmd"
	"github.com/home-assistant/sarifmerge/internal/config"
	"github.com/home-assistant/sarifmerge/internal/ci"
)

// validateMergeArgs validates the command options for the selected mode.
func validateMergeArgs(options *RunOptionsMerge, args []string, mode string) error {
	var issues []string

	switch mode {
	case cmdutil.ModeSinglePath:
		if len(args) != 1 {
			issues = append(issues, "provide exactly one root directory")
		}
		if options.Root != "" {
			issues = append(issues, "you cannot use a 'root' flag and a root path at the same time")
		}
	case cmdutil.ModeFlags:
		if len(args) > 0 {
			issues = append(issues, fmt.Sprintf("unexpected positional arguments: %s", strings.Join(args, ", ")))
		}
	default:
		issues = append(issues, fmt.Sprintf("invalid merge mode: %q", mode))
	}

	if err := config.ValidatePattern(options.Pattern); err != nil {
		issues = append(issues, err.Error())
	}
	if err := config.ValidateOutputName(options.Output); err != nil {
		issues = append(issues, err.Error())
	}
	if strings.TrimSpace(options.CIKind) != "" {
		if !options.AutoStrip {
			issues = append(issues, "'ci' requires 'auto-strip'")
		}
		if _, err := ci.ParseCIKind(options.CIKind); err != nil {
			issues = append(issues, err.Error())
		}
	}

	if len(issues) > 0 {
		return fmt.Errorf("%s", strings.Join(issues, "; "))
	}

	return nil
}
