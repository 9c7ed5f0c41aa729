package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/eykd/hpvdraw/internal/draw"
)

// drawJSONResponse is the JSON output of a draw.
type drawJSONResponse struct {
	RunID    string         `json:"run_id"`
	Seed     string         `json:"seed"`
	Source   string         `json:"source"`
	Pool     int            `json:"pool"`
	Sampled  int            `json:"sampled"`
	Accepted []string       `json:"accepted"`
	Total    int            `json:"total"`
	Rejected map[string]int `json:"rejected"`
	Findings []CheckFinding `json:"findings"`
	Files    drawFiles      `json:"files"`
}

type drawFiles struct {
	Pool     string `json:"pool,omitempty"`
	Selected string `json:"selected"`
}

func runDraw(cmd *cobra.Command, s *settings, factory SessionFactory) error {
	cfg, err := s.resolve(cmd)
	if err != nil {
		return err
	}

	src, err := draw.ResolveSource(cfg.Sim, cfg.Input)
	if err != nil {
		return classify(err)
	}

	sess, err := openSession(cmd, cfg, factory)
	if err != nil {
		return err
	}
	sess.Log.Info("draw started", "source", src.String(), "extract", cfg.Extract, "pick", cfg.Pick, "out_dir", cfg.OutDir)

	result, err := sess.Runner.Draw(cmd.Context(), draw.Request{
		Source:  src,
		Extract: cfg.Extract,
		Pick:    cfg.Pick,
	})
	if err != nil {
		return &ContextError{Op: "draw", Err: classify(err)}
	}

	if GetJSON() {
		writeJSON(cmd.OutOrStdout(), newDrawJSON(sess, result))
	} else {
		formatDrawHuman(cmd.OutOrStdout(), result)
	}
	return nil
}

func newDrawJSON(sess *Session, result *draw.Result) drawJSONResponse {
	out := drawJSONResponse{
		RunID:    sess.RunID,
		Seed:     sess.Seed,
		Source:   result.Source,
		Pool:     result.PoolSize,
		Sampled:  result.Sampled,
		Accepted: make([]string, len(result.Accepted)),
		Total:    len(result.Accepted),
		Rejected: make(map[string]int, len(result.Rejected)),
		Findings: convertFindings(result.Findings),
		Files:    drawFiles{Selected: result.SelectedFile},
	}
	for i, id := range result.Accepted {
		out.Accepted[i] = id.String()
	}
	for reason, n := range result.Rejected {
		out.Rejected[string(reason)] = n
	}
	if result.PoolWritten {
		out.Files.Pool = draw.PoolFile
	}
	return out
}

// formatDrawHuman prints each accepted number followed by the total.
func formatDrawHuman(w io.Writer, result *draw.Result) {
	for _, id := range result.Accepted {
		fmt.Fprintln(w, id)
	}
	fmt.Fprintf(w, "total right id number is %d\n", len(result.Accepted))
}
