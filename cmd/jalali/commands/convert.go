package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/theory/sqljalali/jalali"
	"github.com/theory/sqljalali/jalali/types"
)

// NewToGregorianCommand creates the to-gregorian command.
func NewToGregorianCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "to-gregorian VALUE...",
		Short: "Convert Jalali date-times to Gregorian timestamps",
		Long: `Convert each Jalali VALUE, formatted as YYYY-MM-DD, YYYY-MM-DD HH:MM, or
YYYY-MM-DD HH:MM:SS, to a Gregorian timestamp and print it on its own line.`,
		Example: `  jalali to-gregorian 1400-01-01
  jalali to-gregorian --end-of-day "1403-12-30 08:00"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, src := range args {
				ts, err := jalali.ToGregorian(src, a.cfg.Convert.EndOfDay)
				if err != nil {
					a.log.LogConversion(cmd.Name(), src, "", err)
					//nolint:wrapcheck // Okay to return unwrapped error
					return err
				}
				res := ts.SQLString()
				a.log.LogConversion(cmd.Name(), src, res, nil)
				fmt.Fprintln(out, res)
			}
			return nil
		},
	}

	cmd.Flags().Bool("end-of-day", false, "set the time of day to 23:59:59")
	bindFlag(cmd.Flags(), "end-of-day", "convert.end_of_day")
	return cmd
}

// NewToJalaliCommand creates the to-jalali command.
func NewToJalaliCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "to-jalali TIMESTAMP...",
		Short: "Convert Gregorian timestamps to Jalali date-times",
		Long: `Convert each Gregorian TIMESTAMP, formatted as YYYY-MM-DD or
YYYY-MM-DD HH:MM[:SS[.ffffff]] (with a space or "T"), to a Jalali date-time
and print it on its own line. The time of day is omitted at midnight.`,
		Example: `  jalali to-jalali 2021-03-21
  jalali to-jalali "2025-03-20 23:59:59"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, src := range args {
				ts, err := types.ParseTimestamp(src)
				if err != nil {
					a.log.LogConversion(cmd.Name(), src, "", err)
					//nolint:wrapcheck // Okay to return unwrapped error
					return err
				}
				res := jalali.ToJalali(ts.Time)
				a.log.LogConversion(cmd.Name(), src, res, nil)
				fmt.Fprintln(out, res)
			}
			return nil
		},
	}
}

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the jalali version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "jalali %v\n", version)
		},
	}
}
