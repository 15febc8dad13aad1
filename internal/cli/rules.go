package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gopep257/internal/ui/pretty"
	"github.com/yaklabco/gopep257/pkg/config"
	"github.com/yaklabco/gopep257/pkg/lint/rules"
)

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
}

func newRulesCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the docstring rules",
		Long: `List every rule code with its name, default severity, and description.
Warning-severity rules are only reported by check when --warnings is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			infos := rules.Infos(rules.Default())

			switch config.OutputFormat(format) {
			case config.FormatJSON:
				return outputRulesJSON(cmd.OutOrStdout(), infos)
			case config.FormatText:
				color, err := cmd.Flags().GetString("color")
				if err != nil {
					return fmt.Errorf("get color flag: %w", err)
				}
				return outputRulesText(cmd.OutOrStdout(), infos, config.ColorMode(color))
			default:
				return fmt.Errorf("%w: unknown format %q; valid formats: text, json", ErrInvalidUsage, format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", string(config.FormatText), "output format: text, json")

	return cmd
}

func outputRulesText(w io.Writer, infos []config.RuleInfo, color config.ColorMode) error {
	styles := pretty.NewStyles(pretty.IsColorEnabled(color, w))

	nameWidth := 0
	for _, info := range infos {
		nameWidth = max(nameWidth, len(info.Name))
	}

	for _, info := range infos {
		severity := fmt.Sprintf("%-7s", info.Severity)
		if info.Severity == config.SeverityWarning {
			severity = styles.Warning.Render(severity)
		} else {
			severity = styles.Error.Render(severity)
		}

		if _, err := fmt.Fprintf(w, "%s  %s  %-*s  %s\n",
			styles.RuleID.Render(fmt.Sprintf("%-4s", info.ID)),
			severity,
			nameWidth, info.Name,
			styles.Dim.Render(info.Description),
		); err != nil {
			return fmt.Errorf("write rules: %w", err)
		}
	}
	return nil
}

// outputRulesJSON outputs rules as a JSON array.
func outputRulesJSON(w io.Writer, infos []config.RuleInfo) error {
	out := make([]ruleInfo, 0, len(infos))
	for _, info := range infos {
		out = append(out, ruleInfo{
			ID:          info.ID,
			Name:        info.Name,
			Description: info.Description,
			Severity:    string(info.Severity),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}
