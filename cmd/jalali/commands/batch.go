package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/theory/sqljalali/jalali/exec"
	"github.com/theory/sqljalali/jalali/types"
)

const (
	directionToGregorian = "to-gregorian"
	directionToJalali    = "to-jalali"

	// null is read and written for SQL NULL values.
	null = "NULL"
)

// NewBatchCommand creates the batch command.
func NewBatchCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Convert values read line by line from standard input",
		Long: `Read one value per line from standard input, convert them all, and print
one result per line in the same order. Empty lines and NULL convert to NULL.

With --silent, values that fail to convert print as NULL instead of
failing the batch. With --parallel N, up to N values convert concurrently.`,
		Example: `  printf '1400-01-01\n1403-12-30 08:00\n' | jalali batch
  jalali batch --direction to-jalali --parallel 4 < timestamps.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			direction, err := cmd.Flags().GetString("direction")
			if err != nil {
				//nolint:wrapcheck // Okay to return unwrapped error
				return err
			}

			lines, err := readLines(cmd.InOrStdin())
			if err != nil {
				return err
			}

			opts := []exec.Option{exec.WithParallelism(a.cfg.Batch.Parallel)}
			if a.cfg.Batch.Silent {
				opts = append(opts, exec.WithSilent())
			}

			var res []*string
			switch direction {
			case directionToGregorian:
				res, err = a.batchToGregorian(cmd, lines, opts)
			case directionToJalali:
				res, err = a.batchToJalali(cmd, lines, opts)
			default:
				return fmt.Errorf(
					"invalid direction %q: must be %v or %v",
					direction, directionToGregorian, directionToJalali,
				)
			}
			if err != nil {
				a.log.WithError(err).Errorw("Batch failed", "direction", direction)
				return err
			}

			a.log.Infow("Batch converted", "direction", direction, "count", len(res))
			w := bufio.NewWriter(cmd.OutOrStdout())
			for _, str := range res {
				if str == nil {
					fmt.Fprintln(w, null)
				} else {
					fmt.Fprintln(w, *str)
				}
			}
			//nolint:wrapcheck // Okay to return unwrapped error
			return w.Flush()
		},
	}

	flags := cmd.Flags()
	flags.String("direction", directionToGregorian, "conversion direction (to-gregorian or to-jalali)")
	flags.Bool("end-of-day", false, "set the time of day of Gregorian results to 23:59:59")
	flags.Bool("silent", false, "convert invalid values to NULL instead of failing")
	flags.Int("parallel", 1, "number of values to convert concurrently")
	bindFlag(flags, "end-of-day", "convert.end_of_day")
	bindFlag(flags, "silent", "batch.silent")
	bindFlag(flags, "parallel", "batch.parallel")

	return cmd
}

func (a *app) batchToGregorian(cmd *cobra.Command, lines []*string, opts []exec.Option) ([]*string, error) {
	flags := make([]*bool, len(lines))
	for i := range flags {
		flags[i] = &a.cfg.Convert.EndOfDay
	}

	res, err := exec.ToGregorian(cmd.Context(), lines, flags, opts...)
	if err != nil {
		//nolint:wrapcheck // Okay to return unwrapped error
		return nil, err
	}

	out := make([]*string, len(res))
	for i, ts := range res {
		if ts != nil {
			str := ts.SQLString()
			out[i] = &str
		}
	}
	return out, nil
}

func (a *app) batchToJalali(cmd *cobra.Command, lines []*string, opts []exec.Option) ([]*string, error) {
	src := make([]*types.Timestamp, len(lines))
	for i, line := range lines {
		if line == nil {
			continue
		}
		ts, err := types.ParseTimestamp(*line)
		if err != nil {
			if a.cfg.Batch.Silent {
				a.log.LogConversion(cmd.Name(), *line, "", err)
				continue
			}
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		src[i] = ts
	}

	//nolint:wrapcheck // Okay to return unwrapped error
	return exec.ToJalali(cmd.Context(), src, opts...)
}

// readLines reads the lines of r, trimming surrounding whitespace. Empty
// lines and NULL are returned as nil.
func readLines(r io.Reader) ([]*string, error) {
	var lines []*string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line == null {
			lines = append(lines, nil)
			continue
		}
		lines = append(lines, &line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return lines, nil
}
