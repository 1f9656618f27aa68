package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solarpath/solcal/internal/config"
	"github.com/solarpath/solcal/internal/kepler"
)

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "Print a body's solar longitude and season",
	RunE:  runLs,
}

func init() {
	lsCmd.Flags().Float64("jd", 0, "Julian date (default: now)")
	lsCmd.Flags().String("utc", "", "UTC instant, RFC 3339 or 2006-01-02")
	rootCmd.AddCommand(lsCmd)
}

func runLs(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	logger := newLogger(cfg)

	reg, err := newRegistry(cfg, logger)
	if err != nil {
		return err
	}
	b, err := resolveBody(cfg, reg)
	if err != nil {
		return err
	}
	jd, err := resolveJulianDate(cmd)
	if err != nil {
		return err
	}

	d, err := kepler.DateForBody(b, jd)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: Ls %.2f° (%s)\n", b.Name(), d.Ls, d.Season)
	return nil
}
