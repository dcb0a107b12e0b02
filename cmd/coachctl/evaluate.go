package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/johnquangdev/interview-coach/internal/domain/entities"
	"github.com/johnquangdev/interview-coach/internal/usecase/coaching"
	"github.com/johnquangdev/interview-coach/pkg/config"
	"github.com/johnquangdev/interview-coach/pkg/validator"
)

const evaluateSessionID = "coachctl"

func newEvaluateCmd(opts *rootOptions) *cobra.Command {
	var snapshotPath string

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Score a signal snapshot file and print the coaching response",
		Long: "Runs the scoring and rule selection pipeline locally on a JSON snapshot. " +
			"External enrichment is never called.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := opts.resolveRulesPath()
			if err != nil {
				return err
			}
			engine, err := coaching.LoadRuleEngine(path)
			if err != nil {
				return err
			}

			snapshot, err := readSnapshot(snapshotPath)
			if err != nil {
				return err
			}

			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			fillers := coaching.NewFillerExtractor(cfg.Coaching.FillerWords)

			resp := engine.Evaluate(evaluateSessionID, coaching.ComputeScores(snapshot), snapshot.LatencyMS)
			resp.TranscriptHighlights = fillers.Extract(snapshot.TranscriptTexts())

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(resp)
		},
	}
	cmd.Flags().StringVar(&snapshotPath, "snapshot", "", "path to a SignalSnapshot JSON file")
	_ = cmd.MarkFlagRequired("snapshot")
	return cmd
}

func readSnapshot(path string) (*entities.SignalSnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	var snapshot entities.SignalSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", path, err)
	}
	if err := validator.New().Validate(&snapshot); err != nil {
		return nil, fmt.Errorf("invalid snapshot %s: %w", path, err)
	}
	return &snapshot, nil
}
