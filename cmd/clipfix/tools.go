// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/quietroom/clipfix"
	"github.com/quietroom/clipfix/fx"
)

// sharedFlags apply to every tool command.
func sharedFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:  "rate",
			Usage: "Resample the output to this rate in Hz (0 keeps the input rate)",
		},
		&cli.BoolFlag{
			Name:  "mono",
			Usage: "Downmix the output to one channel",
		},
		&cli.BoolFlag{
			Name:  "plain",
			Usage: "Print progress lines instead of the interactive interface",
		},
	}
}

// applyShared copies the shared conversion flags onto opts.
func applyShared(cmd *cli.Command, opts *clipfix.Options) {
	opts.OutputRate = cmd.Int("rate")
	opts.Downmix = cmd.Bool("mono")
}

// parseLevelFlag wraps fx.ParseLevel with the flag value for the message.
func parseLevelFlag(s string) (fx.Level, error) {
	level, err := fx.ParseLevel(s)
	if err != nil {
		return level, fmt.Errorf("%w: %q (valid: light, medium, strong)", err, s)
	}

	return level, nil
}

func silenceCommand() *cli.Command {
	flags := append(sharedFlags(),
		&cli.IntFlag{
			Name:    "aggression",
			Aliases: []string{"a"},
			Usage:   "How eagerly to cut quiet passages, 0-100",
			Value:   80,
		},
	)

	return &cli.Command{
		Name:      "silence",
		Usage:     "Remove silent passages",
		ArgsUsage: "<file>...",
		Flags:     flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts := clipfix.DefaultOptions(clipfix.ToolSilence)
			opts.Aggression = cmd.Int("aggression")
			applyShared(cmd, &opts)

			return runClips(cmd, opts)
		},
	}
}

func noiseCommand() *cli.Command {
	flags := append(sharedFlags(),
		&cli.StringFlag{
			Name:    "level",
			Aliases: []string{"l"},
			Usage:   "Reduction strength: light, medium, strong",
			Value:   "medium",
		},
	)

	return &cli.Command{
		Name:      "noise",
		Usage:     "Reduce steady background noise",
		ArgsUsage: "<file>...",
		Flags:     flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			level, err := parseLevelFlag(cmd.String("level"))
			if err != nil {
				return err
			}

			opts := clipfix.DefaultOptions(clipfix.ToolNoise)
			opts.NoiseLevel = level
			applyShared(cmd, &opts)

			return runClips(cmd, opts)
		},
	}
}

func loudnessCommand() *cli.Command {
	flags := append(sharedFlags(),
		&cli.IntFlag{
			Name:    "target",
			Aliases: []string{"t"},
			Usage:   "Loudness target in LUFS",
			Value:   -16,
		},
	)

	return &cli.Command{
		Name:      "loudness",
		Usage:     "Even out loudness to a target",
		ArgsUsage: "<file>...",
		Flags:     flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts := clipfix.DefaultOptions(clipfix.ToolLoudness)
			opts.TargetLufs = float64(cmd.Int("target"))
			applyShared(cmd, &opts)

			return runClips(cmd, opts)
		},
	}
}

func qualityCommand() *cli.Command {
	flags := append(sharedFlags(),
		&cli.StringFlag{
			Name:    "level",
			Aliases: []string{"l"},
			Usage:   "Enhancement strength: light, medium, strong",
			Value:   "medium",
		},
	)

	return &cli.Command{
		Name:      "quality",
		Usage:     "Brighten and add presence",
		ArgsUsage: "<file>...",
		Flags:     flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			level, err := parseLevelFlag(cmd.String("level"))
			if err != nil {
				return err
			}

			opts := clipfix.DefaultOptions(clipfix.ToolQuality)
			opts.EnhanceLevel = level
			applyShared(cmd, &opts)

			return runClips(cmd, opts)
		},
	}
}
