package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/eykd/hpvdraw/internal/domain"
	"github.com/eykd/hpvdraw/internal/draw"
)

// Severity represents the severity level of a check finding.
type Severity string

const (
	// SeverityError represents a skipped line.
	SeverityError Severity = "error"
	// SeverityWarning represents a line kept after repair or a repeated number.
	SeverityWarning Severity = "warning"
)

// CheckFinding represents a single finding about a pool file line.
type CheckFinding struct {
	Type     string   `json:"type"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Line     int      `json:"line"`
	Text     string   `json:"text"`
}

// FindingsDetectedError is returned when check detects error findings.
type FindingsDetectedError struct {
	Errors   int
	Warnings int
}

// Error implements the error interface.
func (e *FindingsDetectedError) Error() string {
	return fmt.Sprintf("check found %d errors, %d warnings", e.Errors, e.Warnings)
}

// ExitCode returns the exit code for findings (always 2).
func (e *FindingsDetectedError) ExitCode() int {
	return 2
}

// checkJSONResponse is the JSON output structure for the check command.
type checkJSONResponse struct {
	File     string         `json:"file"`
	Valid    int            `json:"valid"`
	Findings []CheckFinding `json:"findings"`
	Summary  struct {
		Errors   int `json:"errors"`
		Warnings int `json:"warnings"`
	} `json:"summary"`
}

// convertFindings converts domain findings to their CLI form.
func convertFindings(findings []domain.Finding) []CheckFinding {
	out := make([]CheckFinding, len(findings))
	for i, f := range findings {
		out[i] = CheckFinding{
			Type:     f.Type,
			Severity: Severity(f.Severity),
			Message:  f.Message,
			Line:     f.Line,
			Text:     f.Text,
		}
	}
	return out
}

// formatCheckHuman writes findings as human-readable text to w.
func formatCheckHuman(w io.Writer, path string, valid int, findings []CheckFinding, errCount, warnCount int) {
	for _, f := range findings {
		fmt.Fprintf(w, "%s:%d [%s] %s: %s\n", path, f.Line, f.Severity, f.Type, f.Message)
	}
	fmt.Fprintf(w, "%d valid number(s), %d error(s), %d warning(s)\n", valid, errCount, warnCount)
}

// NewCheckCmd creates the check command, which validates a pool file.
func NewCheckCmd(s *settings, factory SessionFactory) *cobra.Command {
	return &cobra.Command{
		Use:          "check [file]",
		Short:        "Validate a pool file without drawing",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := s.resolve(cmd)
			if err != nil {
				return err
			}
			path := cfg.Input
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				return &UsageError{Err: fmt.Errorf("check needs a file argument or --input")}
			}

			sess, err := openSession(cmd, cfg, factory)
			if err != nil {
				return err
			}
			result, err := sess.Runner.Load(cmd.Context(), path)
			if err != nil {
				return &ContextError{Op: "check", Path: path, Err: err}
			}

			errCount, warnCount := draw.CountBySeverity(result.Findings)
			findings := convertFindings(result.Findings)

			if GetJSON() {
				out := checkJSONResponse{File: path, Valid: len(result.IDs), Findings: findings}
				out.Summary.Errors = errCount
				out.Summary.Warnings = warnCount
				writeJSON(cmd.OutOrStdout(), out)
			} else {
				formatCheckHuman(cmd.OutOrStdout(), path, len(result.IDs), findings, errCount, warnCount)
			}

			if errCount > 0 {
				return &FindingsDetectedError{Errors: errCount, Warnings: warnCount}
			}
			return nil
		},
	}
}
