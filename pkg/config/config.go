// Package config defines the configuration types for pep257.
// These types are plain data; loading and merging live in internal/configloader.
package config

// Severity represents the severity level of a violation.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// IsValid returns true if the severity is known.
func (s Severity) IsValid() bool {
	return s == SeverityError || s == SeverityWarning
}

// OutputFormat specifies the output format for violations.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// IsValid returns true if the output format is known.
func (f OutputFormat) IsValid() bool {
	return f == FormatText || f == FormatJSON
}

// SummaryPunctuation controls which terminal punctuation D400 accepts.
type SummaryPunctuation string

const (
	// PunctuationPermissive accepts '.', '!' and '?'.
	PunctuationPermissive SummaryPunctuation = "permissive"
	// PunctuationStrict accepts only '.'.
	PunctuationStrict SummaryPunctuation = "strict"
)

// IsValid returns true if the punctuation mode is known.
func (p SummaryPunctuation) IsValid() bool {
	return p == PunctuationPermissive || p == PunctuationStrict
}

// ColorMode controls styled terminal output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is known.
func (c ColorMode) IsValid() bool {
	return c == ColorAuto || c == ColorAlways || c == ColorNever
}

// Config is the root configuration structure.
type Config struct {
	// Warnings shows warning-severity violations (hidden by default).
	Warnings bool `yaml:"warnings"`

	// NoFail exits 0 even when violations are reported.
	NoFail bool `yaml:"no_fail"`

	// Format is the output format ("text" or "json").
	Format OutputFormat `yaml:"format"`

	// SummaryPunctuation selects permissive or strict D400 checking.
	SummaryPunctuation SummaryPunctuation `yaml:"summary_punctuation"`

	// Ignore contains glob patterns for files and directories to skip.
	Ignore []string `yaml:"ignore,omitempty"`

	// Jobs is the number of parallel workers; 0 means one per CPU.
	Jobs int `yaml:"jobs"`

	// FollowSymlinks traverses directory symlinks during discovery.
	FollowSymlinks bool `yaml:"follow_symlinks"`

	// SkipGenerated skips files that look machine generated.
	SkipGenerated bool `yaml:"skip_generated"`

	// Color controls styled output.
	Color ColorMode `yaml:"color"`

	// CLI-level options (not persisted to config files).

	// Compact disables JSON indentation.
	Compact bool `yaml:"-"`

	// Summary prints a one-line summary after text output.
	Summary bool `yaml:"-"`

	// NoRecursive limits directory arguments to their own files.
	NoRecursive bool `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Format:             FormatText,
		SummaryPunctuation: PunctuationPermissive,
		Jobs:               0,
		Color:              ColorAuto,
	}
}

// StrictPeriod reports whether D400 accepts only '.'.
func (c *Config) StrictPeriod() bool {
	return c != nil && c.SummaryPunctuation == PunctuationStrict
}
