package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hiracky16/sqlfluff/pkg/config"
	"github.com/hiracky16/sqlfluff/pkg/templater"
)

func newTemplatersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templaters",
		Short: "List available templaters",
		Long: `List the templaters available for expanding files before linting.

Select one with the --templater flag or the "templater" key in
.sqlfluff.yml.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry := templater.Builtin()
			for _, name := range registry.Names() {
				marker := ""
				if name == config.DefaultTemplater {
					marker = " (default)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", name, marker)
			}
			return nil
		},
	}

	return cmd
}
