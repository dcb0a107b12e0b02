package main

import (
	"github.com/spf13/cobra"

	"github.com/johnquangdev/interview-coach/pkg/config"
)

type rootOptions struct {
	rulesPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "coachctl",
		Short:         "Operator tooling for the interview coach service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.rulesPath, "rules", "", "coaching rule file (defaults to COACHING_RULES_PATH)")

	cmd.AddCommand(
		newRulesCmd(opts),
		newEvaluateCmd(opts),
		newMigrateCmd(),
	)
	return cmd
}

// resolveRulesPath prefers the flag, then the environment, then the built-in default
func (o *rootOptions) resolveRulesPath() (string, error) {
	if o.rulesPath != "" {
		return o.rulesPath, nil
	}
	cfg, err := config.FromEnv()
	if err != nil {
		return "", err
	}
	return cfg.Coaching.RulesPath, nil
}
