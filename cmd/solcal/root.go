package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/solarpath/solcal/internal/body"
	"github.com/solarpath/solcal/internal/config"
	"github.com/solarpath/solcal/internal/julian"
	"github.com/solarpath/solcal/internal/kepler"
	"github.com/solarpath/solcal/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "solcal",
	Short: "Calendar dates and clocks for celestial bodies",
	Long: "Solcal converts terrestrial instants into body-local calendar dates,\n" +
		"solar longitudes, seasons, and wall clocks using two-body Kepler mechanics.",
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .solcal.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringP("body", "b", "", "body name (default from config, mars)")
	rootCmd.PersistentFlags().String("catalog", "", "body catalog TOML file")

	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("default_body", rootCmd.PersistentFlags().Lookup("body"))
	_ = viper.BindPFlag("catalog_path", rootCmd.PersistentFlags().Lookup("catalog"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".solcal")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("SOLCAL")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// newLogger builds the session logger from config.
func newLogger(cfg config.Config) *logging.Logger {
	level, ok := logging.ParseLevel(cfg.LogLevel)
	logger := logging.New(level)
	if !ok {
		logger.Warn("unknown log level %q, using info", cfg.LogLevel)
	}
	return logger
}

// newRegistry builds the body registry with the user catalog applied.
func newRegistry(cfg config.Config, logger *logging.Logger) (*body.Registry, error) {
	reg := body.NewRegistry()

	bodies, err := body.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}
	if len(bodies) > 0 {
		reg.SetCatalog(bodies)
		logger.Debug("loaded %d user-defined bodies from %s", len(bodies), cfg.CatalogPath)
	}
	return reg, nil
}

// resolveBody looks up the body selected by flags/config.
func resolveBody(cfg config.Config, reg *body.Registry) (kepler.Body, error) {
	b, ok := reg.Lookup(cfg.DefaultBody)
	if !ok {
		return nil, fmt.Errorf("unknown body %q (known: %v)", cfg.DefaultBody, reg.Names())
	}
	return b, nil
}

// resolveJulianDate reads the --jd/--utc flag pair; both absent means now.
// JD 0 is a valid instant, so presence is judged by the flag being set,
// not by its value.
func resolveJulianDate(cmd *cobra.Command) (float64, error) {
	jdSet := cmd.Flags().Changed("jd")
	utc, _ := cmd.Flags().GetString("utc")

	if jdSet && utc != "" {
		return 0, fmt.Errorf("--jd and --utc are mutually exclusive")
	}
	if jdSet {
		jd, _ := cmd.Flags().GetFloat64("jd")
		return jd, nil
	}
	if utc != "" {
		t, err := parseUTC(utc)
		if err != nil {
			return 0, err
		}
		return julian.FromTime(t), nil
	}
	return julian.Now(), nil
}
