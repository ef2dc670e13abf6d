package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/navadha/navadha/compat"
	"github.com/navadha/navadha/letters"
)

// Config keys and their defaults. A config file (navadha.yaml in the working
// directory or $HOME/.navadha/) can override them; flags win over both.
const (
	cfgKeySystem       = "system"
	cfgKeyRelationship = "relationship"
)

// Global flag values.
var (
	flagJSON    bool
	flagVerbose bool
	flagSystem  string
)

var rootCmd = &cobra.Command{
	Use:   "navadha",
	Short: "Navadha derives numerology numbers from a name and birth date",
	Long: `Navadha is a deterministic numerology calculator: it derives the full
set of core numbers (life path, destiny, soul urge, ...) from a person's
name and birth date, builds the Lo Shu grid, detects Raj Yog combinations,
and scores the compatibility of two people.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		viper.SetDefault(cfgKeySystem, "pythagorean")
		viper.SetDefault(cfgKeyRelationship, "romantic")

		viper.SetConfigName("navadha")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.navadha")
		if err := viper.ReadInConfig(); err != nil {
			// A missing config file is fine; anything else is the user's to fix.
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return fmt.Errorf("read config: %w", err)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "print results as JSON")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log soft-degraded computations to stderr")
	rootCmd.PersistentFlags().StringVar(&flagSystem, "system", "", "mapping system: pythagorean, chaldean or vedic (default from config)")

	rootCmd.AddCommand(calcCmd, gridCmd, compatCmd)
}

// resolveSystem picks the mapping system: flag, then config, then default.
func resolveSystem() (letters.System, error) {
	name := flagSystem
	if name == "" {
		name = viper.GetString(cfgKeySystem)
	}
	return letters.Parse(name)
}

// newLogger builds the compat logger: a development logger to stderr under
// --verbose, a no-op otherwise.
func newLogger() (*zap.Logger, error) {
	if !flagVerbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}

// parseDate accepts birth and reference dates in ISO form.
func parseDate(arg string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", arg)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", arg, err)
	}
	return t, nil
}

// resolveRelationship picks the compatibility profile: flag value first,
// config default otherwise.
func resolveRelationship(flagValue string) (compat.Relationship, error) {
	name := flagValue
	if name == "" {
		name = viper.GetString(cfgKeyRelationship)
	}
	return compat.ParseRelationship(name)
}
