// SPDX-License-Identifier: EPL-2.0

// Command clipfix applies one of the four touch-up tools to voice clips
// and writes the result as 16-bit WAV.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
)

const version = "0.1.0"

func main() {
	ctx := context.Background()

	root := &cli.Command{
		Name:    "clipfix",
		Usage:   "One-shot touch-up for voice clips",
		Version: version,
		Commands: []*cli.Command{
			silenceCommand(),
			noiseCommand(),
			loudnessCommand(),
			qualityCommand(),
			watchCommand(),
			formatsCommand(),
		},
	}

	if err := root.Run(ctx, os.Args); err != nil {
		slog.Error("failed to run", "error", err)
		os.Exit(1)
	}
}
