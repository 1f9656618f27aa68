package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/solarpath/solcal/internal/config"
	"github.com/solarpath/solcal/internal/kepler"
)

var dateCmd = &cobra.Command{
	Use:   "date",
	Short: "Print a body's calendar date for a Julian date or UTC instant",
	RunE:  runDate,
}

func init() {
	dateCmd.Flags().Float64("jd", 0, "Julian date (default: now)")
	dateCmd.Flags().String("utc", "", "UTC instant, RFC 3339 or 2006-01-02")
	rootCmd.AddCommand(dateCmd)
}

func runDate(cmd *cobra.Command, args []string) error {
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

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", b.Name(), d)
	return nil
}

// parseUTC accepts an RFC 3339 instant or a bare date.
func parseUTC(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse UTC instant %q: %w", s, err)
	}
	return t, nil
}
