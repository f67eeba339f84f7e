package cmd

// Mode constants
const (
	ModeSinglePath = "single-path"
	ModeFlags      = "flags"
)

// DetermineMode determines the mode based on the provided arguments.
func DetermineMode(args []string) string {
	if len(args) > 0 {
		return ModeSinglePath
	}
	return ModeFlags
}
