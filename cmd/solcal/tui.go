package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/solarpath/solcal/internal/body"
	"github.com/solarpath/solcal/internal/config"
	"github.com/solarpath/solcal/internal/logging"
	"github.com/solarpath/solcal/internal/state"
	"github.com/solarpath/solcal/internal/ui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive dashboard of all registered body clocks",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	logger := newLogger(cfg)

	reg, err := newRegistry(cfg, logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	stateMgr := state.NewManager()
	stateMgr.Update(state.Compute(reg.Bodies(), time.Now()))

	model := ui.New(stateMgr)
	p := tea.NewProgram(model, tea.WithAltScreen())

	// Recompute snapshots in the background and push them to the UI.
	go runComputeLoop(ctx, p, reg, stateMgr, cfg, logger)

	// Reload the body catalog when it changes on disk.
	watcher, err := body.WatchCatalog(cfg.CatalogPath, reg, logger, func(n int) {
		stateMgr.Update(state.Compute(reg.Bodies(), time.Now()))
		p.Send(ui.CatalogReloadedMsg{Count: n})
	})
	if err != nil {
		logger.Warn("catalog watch unavailable: %v", err)
	} else {
		defer watcher.Close()
	}

	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runComputeLoop(ctx context.Context, p *tea.Program, reg *body.Registry, stateMgr *state.Manager, cfg config.Config, logger *logging.Logger) {
	tick := time.Duration(cfg.TickSeconds * float64(time.Second))
	if tick <= 0 {
		tick = time.Second
	}

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("compute loop shutting down")
			return
		case now := <-ticker.C:
			snap := state.Compute(reg.Bodies(), now)
			stateMgr.Update(snap)
			p.Send(ui.SnapshotMsg{Snapshot: snap})
		}
	}
}
