package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hiracky16/sqlfluff/internal/logging"
	"github.com/hiracky16/sqlfluff/pkg/config"
	"github.com/hiracky16/sqlfluff/pkg/lint/rules"
)

type rulesFlags struct {
	ruleFormat string
	format     string
}

const formatJSON = "json"

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
	Enabled     bool   `json:"enabled"`
}

func newRulesCommand() *cobra.Command {
	flags := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available lint rules",
		Long: `List all available lint rules with their IDs, descriptions,
default severity, and whether they are enabled by default.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all := rules.Builtin().Rules()

			if flags.format == formatJSON {
				infos := make([]ruleInfo, 0, len(all))
				for _, rule := range all {
					infos = append(infos, ruleInfo{
						ID:          rule.ID(),
						Name:        rule.Name(),
						Description: rule.Description(),
						Severity:    string(rule.DefaultSeverity()),
						Enabled:     rule.DefaultEnabled(),
					})
				}

				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(infos); err != nil {
					return fmt.Errorf("encoding rules: %w", err)
				}
				return nil
			}

			logger := logging.Default()
			logger.Info("available rules")

			ruleFormat := config.RuleFormat(flags.ruleFormat)

			for _, rule := range all {
				logger.Info(config.FormatRuleID(ruleFormat, rule.ID(), rule.Name()),
					logging.FieldSeverity, rule.DefaultSeverity(),
					logging.FieldDescription, rule.Description(),
				)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", "combined",
		"rule identifier format in output: name, id, or combined")
	cmd.Flags().StringVar(&flags.format, "format", "text",
		"output format: text, json")

	return cmd
}
