// Command dubins builds a Dubins path between two waypoints and writes its
// samples as CSV, JSON or SVG.
//
// The problem is read from a TOML scenario file (see "dubins example-config")
// or given with flags; flags override values from the file.
package main

import (
	"errors"
	"log/slog"
	"os"

	"honnef.co/go/dubins"
)

func main() {
	cmd := newRootCmd(os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		if errors.Is(err, dubins.ErrUnreachableGeometry) {
			logger.Error("no path for this turn pair; try other turns or a smaller radius", "err", err)
		} else {
			logger.Error("dubins failed", "err", err)
		}
		os.Exit(1)
	}
}
