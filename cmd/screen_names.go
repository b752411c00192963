package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/BobbingAlong/twitter-watch/pkg/report"
)

// screenNamesCmd represents the screen-names command
var screenNamesCmd = &cobra.Command{
	Use:   "screen-names [base]",
	Short: "Render the screen name changes report",
	Long:  "Renders the screen name changes report from <base>/data.csv to standard output.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		base := "screen-names/"
		if len(args) == 1 {
			base = args[0]
		}
		return report.ScreenNames(os.Stdout, base, reportConfig())
	},
}

func init() {
	rootCmd.AddCommand(screenNamesCmd)
}
