package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tiltwelve/tiltwelve/internal/app"
	"github.com/tiltwelve/tiltwelve/internal/state"
)

// runApp opens the store, builds the shared state, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	ctx := cmd.Context()
	st := state.New(ctx, e.kv, *e.cfg, e.log)
	e.log.Info("starting", "version", currentVersion())

	return app.Run(ctx, app.Options{State: st, Version: currentVersion()})
}
