package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/solarpath/solcal/internal/body"
	"github.com/solarpath/solcal/internal/kepler"
)

var clockCmd = &cobra.Command{
	Use:   "clock",
	Short: "Print the Martian wall clock, once or on an interval",
	RunE:  runClock,
}

func init() {
	clockCmd.Flags().String("zone", "NT", "Martian timezone code (see 'solcal bodies')")
	clockCmd.Flags().Duration("watch", 0, "repeat at interval (e.g. 1s)")
	rootCmd.AddCommand(clockCmd)
}

func runClock(cmd *cobra.Command, args []string) error {
	zoneCode, _ := cmd.Flags().GetString("zone")
	watch, _ := cmd.Flags().GetDuration("watch")

	zone, ok := body.MartianZoneByCode(zoneCode)
	if !ok {
		return fmt.Errorf("unknown Martian timezone code %q", zoneCode)
	}

	printOnce := func() {
		c := kepler.MarsClockAt(time.Now(), zone)
		fmt.Fprintf(cmd.OutOrStdout(), "MSD %.5f  %s\n", kepler.MarsSolDate(time.Now()), c)
	}

	printOnce()
	if watch == 0 {
		return nil
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	ticker := time.NewTicker(watch)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			printOnce()
		}
	}
}
