package cli

import "github.com/spf13/cobra"

// BuildVersion is stamped at release time via -ldflags.
var BuildVersion = "0.1.0-dev"

func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "shopaudit",
		Short:         "Single-page SEO audit CLI",
		Long:          "shopaudit fetches one page, runs the SEO check battery and prints a scored report.",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.AddCommand(
		newAuditCommand(),
		newServeCommand(),
		newVersionCommand(),
	)

	return cmd
}
