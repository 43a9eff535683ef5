package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand builds the labelsheet command tree
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "labelsheet",
		Short: "Generate printable athlete label sheets from team rosters",
		Long: `labelsheet turns a team roster (CSV, XLSX or a Google Sheet range) into a
paginated PDF of athlete labels, three to a row, titled with the team and date.

Available subcommands:
  generate     - Render one roster to a label sheet
  serve        - Serve the upload form API over HTTP
  default-date - Print the default event date`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newGenerateCommand())
	root.AddCommand(newServeCommand())
	root.AddCommand(newDefaultDateCommand())

	return root
}

// Execute runs the root command with os.Args
func Execute() error {
	return NewRootCommand().Execute()
}
