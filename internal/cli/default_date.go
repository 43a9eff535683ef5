package cli

import (
	"fmt"
	"time"

	"labelsheet/internal/config"
	"labelsheet/internal/domain/schedule"

	"github.com/spf13/cobra"
)

func newDefaultDateCommand() *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "default-date",
		Short: "Print the default event date (second Sunday of July)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			if year > 0 {
				now = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), schedule.DefaultEventDate(now).Format(config.FileNameDateFormat))
			return err
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year to compute the date for (default current year)")
	return cmd
}
