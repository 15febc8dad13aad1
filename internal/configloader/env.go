package configloader

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/yaklabco/gopep257/pkg/config"
)

// envVarPrefix is the prefix for all pep257 environment variables.
const envVarPrefix = "PEP257_"

// envSetter applies one environment value to the config.
type envSetter struct {
	description string
	apply       func(cfg *config.Config, value string) error
}

// envMappings maps environment variable names (without prefix) to setters.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envSetter{
	"WARNINGS": {
		description: "Show warning-severity violations: true or false",
		apply:       boolSetter(func(c *config.Config, b bool) { c.Warnings = b }),
	},
	"NO_FAIL": {
		description: "Exit 0 even when violations are found: true or false",
		apply:       boolSetter(func(c *config.Config, b bool) { c.NoFail = b }),
	},
	"FORMAT": {
		description: "Output format: text or json",
		apply: func(c *config.Config, v string) error {
			c.Format = config.OutputFormat(v)
			return nil
		},
	},
	"SUMMARY_PUNCTUATION": {
		description: "Summary punctuation check: permissive or strict",
		apply: func(c *config.Config, v string) error {
			c.SummaryPunctuation = config.SummaryPunctuation(v)
			return nil
		},
	},
	"IGNORE": {
		description: "Comma-separated list of ignore patterns",
		apply: func(c *config.Config, v string) error {
			c.Ignore = parseSliceValue(v)
			return nil
		},
	},
	"JOBS": {
		description: "Number of parallel workers (0 = auto)",
		apply: func(c *config.Config, v string) error {
			i, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("invalid integer %q", v)
			}
			c.Jobs = i
			return nil
		},
	},
	"FOLLOW_SYMLINKS": {
		description: "Follow directory symlinks: true or false",
		apply:       boolSetter(func(c *config.Config, b bool) { c.FollowSymlinks = b }),
	},
	"SKIP_GENERATED": {
		description: "Skip machine-generated files: true or false",
		apply:       boolSetter(func(c *config.Config, b bool) { c.SkipGenerated = b }),
	},
	"COLOR": {
		description: "Color output: auto, always, or never",
		apply: func(c *config.Config, v string) error {
			c.Color = config.ColorMode(v)
			return nil
		},
	},
}

func boolSetter(set func(*config.Config, bool)) func(*config.Config, string) error {
	return func(cfg *config.Config, value string) error {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean %q (expected true/false/1/0)", value)
		}
		set(cfg, b)
		return nil
	}
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with PEP257_ (e.g., PEP257_FORMAT).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for _, suffix := range envSuffixes() {
		envVar := envVarPrefix + suffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}
		if err := envMappings[suffix].apply(cfg, value); err != nil {
			return fmt.Errorf("%s: %w", envVar, err)
		}
	}

	return nil
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func envSuffixes() []string {
	suffixes := make([]string, 0, len(envMappings))
	for suffix := range envMappings {
		suffixes = append(suffixes, suffix)
	}
	sort.Strings(suffixes)
	return suffixes
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	vars := make(map[string]string, len(envMappings))
	for suffix, mapping := range envMappings {
		vars[envVarPrefix+suffix] = mapping.description
	}
	return vars
}
