// Command jalali converts dates between the Jalali and Gregorian calendars
// and runs SQL queries with the conversion functions registered.
package main

import (
	"context"
	"os"

	"github.com/theory/sqljalali/cmd/jalali/commands"
)

// version is set at build time with -ldflags "-X main.version=...".
//
//nolint:gochecknoglobals
var version = "dev"

func main() {
	rootCmd := commands.NewRootCommand(version)

	// Execute root command
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
