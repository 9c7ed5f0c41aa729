package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/eykd/hpvdraw/internal/draw"
)

// InvalidNumbersError is returned when verify meets malformed numbers.
type InvalidNumbersError struct {
	Count int
}

// Error implements the error interface.
func (e *InvalidNumbersError) Error() string {
	return fmt.Sprintf("%d invalid number(s)", e.Count)
}

// ExitCode returns the exit code for invalid numbers (always 2).
func (e *InvalidNumbersError) ExitCode() int {
	return 2
}

// verifyJSONEntry is one element of the verify command's JSON output.
type verifyJSONEntry struct {
	Input    string `json:"input"`
	Valid    bool   `json:"valid"`
	Error    string `json:"error,omitempty"`
	Eligible bool   `json:"eligible"`
	Reason   string `json:"reason,omitempty"`
}

func formatVerifyHuman(w io.Writer, results []draw.Verification) {
	for _, v := range results {
		switch {
		case !v.Valid():
			fmt.Fprintf(w, "%s\tinvalid\t%v\n", v.Input, v.Err)
		case v.Verdict.Eligible:
			fmt.Fprintf(w, "%s\tvalid\teligible\n", v.ID)
		default:
			fmt.Fprintf(w, "%s\tvalid\tineligible (%s)\n", v.ID, v.Verdict.Reason)
		}
	}
}

// NewVerifyCmd creates the verify command, which checks numbers given as arguments.
func NewVerifyCmd(s *settings, factory SessionFactory) *cobra.Command {
	return &cobra.Command{
		Use:          "verify <id>...",
		Short:        "Check the check character and eligibility of identity numbers",
		Args:         cobra.MinimumNArgs(1),
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

			results := sess.Runner.Verify(args)

			invalid := 0
			for _, v := range results {
				if !v.Valid() {
					invalid++
				}
			}

			if GetJSON() {
				entries := make([]verifyJSONEntry, len(results))
				for i, v := range results {
					e := verifyJSONEntry{Input: v.Input, Valid: v.Valid()}
					if v.Err != nil {
						e.Error = v.Err.Error()
					} else {
						e.Eligible = v.Verdict.Eligible
						e.Reason = string(v.Verdict.Reason)
					}
					entries[i] = e
				}
				writeJSON(cmd.OutOrStdout(), entries)
			} else {
				formatVerifyHuman(cmd.OutOrStdout(), results)
			}

			if invalid > 0 {
				return &InvalidNumbersError{Count: invalid}
			}
			return nil
		},
	}
}
