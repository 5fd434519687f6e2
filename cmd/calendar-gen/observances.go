package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/username/writable-calendar/internal/holiday"
	"go.uber.org/zap"
)

func observancesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "observances [year]",
		Short: "List every observance of a year",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := yearFromArgs(args)
			if err != nil {
				return err
			}

			list := holiday.NewDefault().ResolveYear(year)
			a.logger.Info("Listing observances",
				zap.Int("year", year),
				zap.Int("count", len(list)))

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, o := range list {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
					o.Date,
					colorMuted.Sprint(o.Date.Weekday().String()[:3]),
					o.Name,
					colorMuted.Sprint(o.Category))
			}
			return tw.Flush()
		},
	}
}
