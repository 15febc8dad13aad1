package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gopep257/internal/ui/pretty"
)

func TestFormatSummaryOneLine(t *testing.T) {
	styles := pretty.NewStyles(false)

	tests := []struct {
		name  string
		tally pretty.Tally
		want  string
	}{
		{
			name:  "clean",
			tally: pretty.Tally{FilesChecked: 3},
			want:  "No violations found (3 files checked)\n",
		},
		{
			name:  "single file clean",
			tally: pretty.Tally{FilesChecked: 1},
			want:  "No violations found (1 file checked)\n",
		},
		{
			name:  "errors and warnings",
			tally: pretty.Tally{FilesChecked: 4, FilesWithIssues: 2, Errors: 3, Warnings: 2},
			want:  "5 violations (3 errors, 2 warnings) in 2 files\n",
		},
		{
			name:  "one error",
			tally: pretty.Tally{FilesChecked: 1, FilesWithIssues: 1, Errors: 1},
			want:  "1 violation (1 error) in 1 file\n",
		},
		{
			name:  "failures and hidden warnings",
			tally: pretty.Tally{FilesChecked: 2, FilesFailed: 1, HiddenWarnings: 4},
			want:  "No violations found (2 files checked), 1 file failed, 4 warnings hidden (use --warnings)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, styles.FormatSummaryOneLine(tt.tally))
		})
	}
}
