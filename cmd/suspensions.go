package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/BobbingAlong/twitter-watch/pkg/report"
)

// suspensionsCmd represents the suspensions command
var suspensionsCmd = &cobra.Command{
	Use:   "suspensions [base]",
	Short: "Render the suspensions report",
	Long:  "Renders the account suspensions report from <base>/data.csv to standard output.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		base := "suspensions/"
		if len(args) == 1 {
			base = args[0]
		}
		return report.Suspensions(os.Stdout, base, reportConfig())
	},
}

func init() {
	rootCmd.AddCommand(suspensionsCmd)
}
