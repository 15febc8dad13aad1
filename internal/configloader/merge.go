package configloader

import "github.com/yaklabco/gopep257/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Slices: override replaces base entirely if override is non-nil
//   - Booleans: only true propagates, so a later source cannot unset a flag
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := base.Clone()

	if override.Format != "" {
		result.Format = override.Format
	}
	if override.SummaryPunctuation != "" {
		result.SummaryPunctuation = override.SummaryPunctuation
	}
	if override.Color != "" {
		result.Color = override.Color
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}

	if override.Warnings {
		result.Warnings = true
	}
	if override.NoFail {
		result.NoFail = true
	}
	if override.FollowSymlinks {
		result.FollowSymlinks = true
	}
	if override.SkipGenerated {
		result.SkipGenerated = true
	}
	if override.Compact {
		result.Compact = true
	}
	if override.Summary {
		result.Summary = true
	}
	if override.NoRecursive {
		result.NoRecursive = true
	}

	if override.Ignore != nil {
		result.Ignore = append([]string(nil), override.Ignore...)
	}

	return result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
