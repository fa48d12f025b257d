// Package commands implements the jalali command line interface.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/theory/sqljalali/internal/config"
	"github.com/theory/sqljalali/internal/logger"
)

// configKey is the flag annotation naming the configuration key a flag
// sets.
const configKey = "config_key"

// app holds the state shared by the commands of a single invocation.
type app struct {
	v   *viper.Viper
	cfg *config.Config
	log *logger.Logger
}

// NewRootCommand creates the jalali root command and its subcommands.
func NewRootCommand(version string) *cobra.Command {
	a := &app{v: config.New(), log: logger.Nop()}

	rootCmd := &cobra.Command{
		Use:   "jalali",
		Short: "Convert dates between the Jalali and Gregorian calendars",
		Long: `jalali converts Jalali (Solar Hijri) date-time strings to Gregorian
timestamps and back, either from arguments, line by line from standard
input, or in SQL queries against an in-memory SQLite database.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { _ = a.log.Close() },
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (YAML, JSON, or TOML)")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.String("log-format", "console", "log format (console or json)")
	bindFlag(flags, "log-level", "log.level")
	bindFlag(flags, "log-format", "log.format")

	rootCmd.AddCommand(NewToGregorianCommand(a))
	rootCmd.AddCommand(NewToJalaliCommand(a))
	rootCmd.AddCommand(NewBatchCommand(a))
	rootCmd.AddCommand(NewSQLCommand(a))
	rootCmd.AddCommand(NewVersionCommand(version))

	return rootCmd
}

// bindFlag annotates the flag name in flags with the configuration key it
// sets. setup binds annotated flags of the executing command to viper.
func bindFlag(flags *pflag.FlagSet, name, key string) {
	if err := flags.SetAnnotation(name, configKey, []string{key}); err != nil {
		panic(err)
	}
}

// setup binds the flags of cmd to their configuration keys, loads the
// configuration, and creates the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var err error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if keys := f.Annotations[configKey]; len(keys) > 0 && err == nil {
			err = a.v.BindPFlag(keys[0], f)
		}
	})
	if err != nil {
		return fmt.Errorf("%w: %w", config.ErrConfig, err)
	}

	file, err := cmd.Flags().GetString("config")
	if err != nil {
		//nolint:wrapcheck // Okay to return unwrapped error
		return err
	}

	if a.cfg, err = config.Load(a.v, file); err != nil {
		//nolint:wrapcheck // Okay to return unwrapped error
		return err
	}

	if a.log, err = logger.New(a.cfg.Log, cmd.ErrOrStderr()); err != nil {
		return fmt.Errorf("%w: %w", config.ErrConfig, err)
	}

	a.log = a.log.WithCommand(cmd.Name())
	a.log.Debugw("Configuration loaded", "config", file, "settings", a.v.AllSettings())
	return nil
}
