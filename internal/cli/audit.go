package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mathilda-val/shopaudit-lite/internal/audit"
	"github.com/mathilda-val/shopaudit-lite/internal/output"
)

type auditOptions struct {
	Format     string
	OutputPath string
	Timeout    time.Duration
	FailBelow  int
}

func newAuditCommand() *cobra.Command {
	opts := &auditOptions{}

	cmd := &cobra.Command{
		Use:   "audit <url>",
		Short: "Audit a single page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report := audit.Run(cmd.Context(), args[0], audit.Options{
				Timeout: opts.Timeout,
			})

			w := cmd.OutOrStdout()
			if opts.OutputPath != "" {
				f, err := os.Create(opts.OutputPath)
				if err != nil {
					return fmt.Errorf("create output file: %w", err)
				}
				defer f.Close()
				w = f
			}

			if err := output.Write(report, opts.Format, w); err != nil {
				return err
			}

			if opts.FailBelow > 0 && report.Score < opts.FailBelow {
				return &ExitError{
					Code:    2,
					Message: fmt.Sprintf("score %d is below the required %d", report.Score, opts.FailBelow),
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Format, "format", "human", "Output format: human|json")
	cmd.Flags().StringVar(&opts.OutputPath, "output", "", "Output file path")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 30*time.Second, "Main fetch timeout")
	cmd.Flags().IntVar(&opts.FailBelow, "fail-below", 0, "Exit non-zero when score is below this value")

	return cmd
}
