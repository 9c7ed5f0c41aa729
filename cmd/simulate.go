package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

// simulateJSONResponse is the JSON output of the simulate command.
type simulateJSONResponse struct {
	RunID string `json:"run_id"`
	Seed  string `json:"seed"`
	Count int    `json:"count"`
	File  string `json:"file"`
}

// NewSimulateCmd creates the simulate command, which writes a pool without drawing.
func NewSimulateCmd(s *settings, factory SessionFactory) *cobra.Command {
	return &cobra.Command{
		Use:          "simulate",
		Short:        "Generate --sim numbers into ids.txt without drawing",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := s.resolve(cmd)
			if err != nil {
				return err
			}
			sess, err := openSession(cmd, cfg, factory)
			if err != nil {
				return err
			}

			result, err := sess.Runner.Simulate(cmd.Context(), cfg.Sim)
			if err != nil {
				return &ContextError{Op: "simulate", Err: classify(err)}
			}

			path := filepath.Join(cfg.OutDir, result.PoolFile)
			if GetJSON() {
				writeJSON(cmd.OutOrStdout(), simulateJSONResponse{
					RunID: sess.RunID,
					Seed:  sess.Seed,
					Count: len(result.IDs),
					File:  path,
				})
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d numbers to %s (seed %s)\n", len(result.IDs), path, sess.Seed)
			}
			return nil
		},
	}
}
