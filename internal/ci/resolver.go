package ci

import (
	"strings"

	"github.com/hashicorp/go-hclog"
)

// Resolution contains the CI checkout metadata used to normalise report paths.
type Resolution struct {
	Kind        CIKind
	Workspace   string
	Hydrated    bool
	Environment CIEnvironment
}

// ResolveWorkspace determines the CI kind and its checkout directory from the
// process environment. A non-empty providedKind is validated and preferred over
// detection. An unknown environment is not an error: the returned Resolution
// simply has no workspace and callers fall back to other sources.
func ResolveWorkspace(log hclog.Logger, providedKind string) Resolution {
	kind := CIUnknown
	if provided := strings.TrimSpace(providedKind); provided != "" {
		parsed, err := ParseCIKind(provided)
		if err != nil {
			if log != nil {
				log.Warn("unable to interpret ci option; falling back to CI detection", "ci", provided, "error", err)
			}
		} else {
			kind = parsed
		}
	}

	detected := DetectCIKind()
	if kind == CIUnknown {
		kind = detected
	} else if detected != CIUnknown && detected != kind && log != nil {
		log.Warn("provided CI kind differs from detected CI environment",
			"detected", detected.String(), "provided", kind.String())
	}

	result := Resolution{Kind: kind}
	if kind == CIUnknown {
		if log != nil {
			log.Debug("no CI environment detected")
		}
		return result
	}

	env, err := GetCIDefaultEnvVars(kind)
	if err != nil {
		if log != nil {
			log.Debug("unable to hydrate from ci environment", "kind", kind.String(), "error", err)
		}
		return result
	}

	result.Hydrated = true
	result.Environment = env
	result.Workspace = strings.TrimSpace(env.Workspace)
	if log != nil {
		log.Debug("hydrated workspace from CI environment",
			"kind", kind.String(),
			"ci", env.CI,
			"workspace", result.Workspace,
		)
	}
	return result
}
