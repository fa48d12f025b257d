package commands

import (
	"bufio"
	"database/sql"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/theory/sqljalali/jalali/sqlite"
)

// NewSQLCommand creates the sql command.
func NewSQLCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sql QUERY [ARG...]",
		Short: "Run a SQL query with the conversion functions registered",
		Long: `Run QUERY against a SQLite database with the jalali_to_gregorian(text,
boolean) and gregorian_to_jalali(timestamp) functions registered, and print
the result rows with tab-separated columns. Each ARG is bound to a ?
parameter in QUERY. NULL values print as NULL.`,
		Example: `  jalali sql "SELECT jalali_to_gregorian('1400-01-01', false)"
  jalali sql "SELECT gregorian_to_jalali(datetime('now'))"
  jalali sql --db events.db "SELECT gregorian_to_jalali(created_at) FROM events"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dsn, err := cmd.Flags().GetString("db")
			if err != nil {
				//nolint:wrapcheck // Okay to return unwrapped error
				return err
			}

			db, err := sqlite.Open(cmd.Context(), dsn)
			if err != nil {
				//nolint:wrapcheck // Okay to return unwrapped error
				return err
			}
			defer db.Close()

			a.log.Debugw("Running query", "db", dsn, "query", args[0], "functions", sqlite.Functions())
			params := make([]any, len(args)-1)
			for i, arg := range args[1:] {
				params[i] = arg
			}

			rows, err := db.QueryContext(cmd.Context(), args[0], params...)
			if err != nil {
				a.log.WithError(err).Errorw("Query failed", "query", args[0])
				//nolint:wrapcheck // Okay to return unwrapped error
				return err
			}
			defer rows.Close()

			count, err := printRows(cmd, rows)
			if err != nil {
				a.log.WithError(err).Errorw("Query failed", "query", args[0])
				return err
			}
			a.log.Infow("Query complete", "rows", count)
			return nil
		},
	}

	cmd.Flags().String("db", ":memory:", "SQLite database file")
	return cmd
}

// printRows writes rows to the command output, one line per row with
// tab-separated columns. Returns the number of rows written.
func printRows(cmd *cobra.Command, rows *sql.Rows) (int, error) {
	cols, err := rows.Columns()
	if err != nil {
		//nolint:wrapcheck // Okay to return unwrapped error
		return 0, err
	}

	vals := make([]sql.NullString, len(cols))
	dest := make([]any, len(cols))
	for i := range vals {
		dest[i] = &vals[i]
	}

	w := bufio.NewWriter(cmd.OutOrStdout())
	strs := make([]string, len(cols))
	count := 0
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			//nolint:wrapcheck // Okay to return unwrapped error
			return count, err
		}
		for i, val := range vals {
			if val.Valid {
				strs[i] = val.String
			} else {
				strs[i] = null
			}
		}
		fmt.Fprintln(w, strings.Join(strs, "\t"))
		count++
	}

	if err := rows.Err(); err != nil {
		//nolint:wrapcheck // Okay to return unwrapped error
		return count, err
	}
	//nolint:wrapcheck // Okay to return unwrapped error
	return count, w.Flush()
}
