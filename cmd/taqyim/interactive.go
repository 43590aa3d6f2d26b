package main

import (
	"taqyim/cmd/taqyim/ui"
)

// runInteractive launches the full-screen interface, the default when the
// binary is invoked without a subcommand.
func runInteractive() error {
	tracker, s, cfg, err := openTracker()
	if err != nil {
		return err
	}
	defer s.Close()

	return ui.Run(tracker, cfg.DataPath, cfg.UI, logger)
}
