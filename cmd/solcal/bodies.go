package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solarpath/solcal/internal/config"
)

var bodiesCmd = &cobra.Command{
	Use:   "bodies",
	Short: "List registered bodies and their orbital elements",
	RunE:  runBodies,
}

func init() {
	rootCmd.AddCommand(bodiesCmd)
}

func runBodies(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	logger := newLogger(cfg)

	reg, err := newRegistry(cfg, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-10s %12s %6s %8s %10s %12s\n",
		"NAME", "EPOCH (JD)", "ECC", "A (AU)", "PERIOD", "ROTATION (s)")
	for _, b := range reg.Bodies() {
		fmt.Fprintf(out, "%-10s %12.3f %6.4f %8.3f %10.3f %12.3f\n",
			b.Name(), b.Epoch(), b.Eccentricity(), b.SemiMajorAxis(),
			b.OrbitalPeriod(), b.RotationalPeriod())
	}
	return nil
}
