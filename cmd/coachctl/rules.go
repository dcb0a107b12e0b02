package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/johnquangdev/interview-coach/internal/usecase/coaching"
)

func newRulesCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Inspect coaching rule files",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Load a rule file and print the resolved states in evaluation order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := opts.resolveRulesPath()
			if err != nil {
				return err
			}
			engine, err := coaching.LoadRuleEngine(path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %d states\n", path, len(engine.Rules()))
			for i, rule := range engine.Rules() {
				conds := make([]string, 0, len(rule.Thresholds))
				for _, t := range rule.Thresholds {
					conds = append(conds, t.String())
				}
				when := strings.Join(conds, " && ")
				if when == "" {
					when = "always"
				}
				marker := ""
				if rule.Default {
					marker = " (default)"
				}
				fmt.Fprintf(out, "%2d. %-12s %s%s\n", i+1, rule.Name, when, marker)
			}
			if !engine.HasExplicitDefault() {
				fmt.Fprintf(out, "warning: no default state, falling back to %q\n", engine.Default().Name)
			}
			return nil
		},
	})
	return cmd
}
