// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/urfave/cli/v3"

	"github.com/quietroom/clipfix"
)

var errWatchArgs = errors.New("expected exactly one argument: directory to watch")

// settleDelay gives a writer time to finish after its create event fires.
const settleDelay = 500 * time.Millisecond

func watchCommand() *cli.Command {
	flags := append(sharedFlags(),
		&cli.StringFlag{
			Name:    "tool",
			Aliases: []string{"t"},
			Usage:   "Tool to apply to new clips: silence, noise, loudness, quality",
			Value:   "silence",
		},
		&cli.IntFlag{
			Name:    "aggression",
			Aliases: []string{"a"},
			Usage:   "How eagerly the silence tool cuts quiet passages, 0-100",
			Value:   80,
		},
		&cli.StringFlag{
			Name:    "level",
			Aliases: []string{"l"},
			Usage:   "Strength for the noise and quality tools: light, medium, strong",
			Value:   "medium",
		},
		&cli.IntFlag{
			Name:  "target",
			Usage: "Loudness target in LUFS for the loudness tool",
			Value: -16,
		},
		&cli.BoolFlag{
			Name:  "existing",
			Usage: "Process clips already in the directory before watching",
		},
	)

	return &cli.Command{
		Name:      "watch",
		Usage:     "Watch a directory and process every clip that appears",
		ArgsUsage: "<dir>",
		Flags:     flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return fmt.Errorf("%w: got %d", errWatchArgs, cmd.NArg())
			}

			tool, err := clipfix.ParseTool(cmd.String("tool"))
			if err != nil {
				return err
			}

			level, err := parseLevelFlag(cmd.String("level"))
			if err != nil {
				return err
			}

			opts := clipfix.DefaultOptions(tool)
			opts.Aggression = cmd.Int("aggression")
			opts.NoiseLevel = level
			opts.EnhanceLevel = level
			opts.TargetLufs = float64(cmd.Int("target"))
			applyShared(cmd, &opts)

			return watchDirectory(ctx, cmd.Args().First(), opts, cmd.Bool("existing"))
		},
	}
}

// watchDirectory processes every clip that appears in dir until interrupted.
func watchDirectory(ctx context.Context, dir string, opts clipfix.Options, existing bool) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	jobQueue := make(chan string, 100)

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}

				if event.Op&fsnotify.Create == fsnotify.Create && shouldQueue(event.Name, opts.Tool) {
					select {
					case jobQueue <- event.Name:
					case <-ctx.Done():
						return
					}
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}

				slog.Warn("watcher error", "error", err)

			case <-ctx.Done():
				return
			}
		}
	}()

	if existing {
		go queueExisting(ctx, dir, opts.Tool, jobQueue)
	}

	slog.Info("watching", "dir", dir, "tool", opts.Tool.String())

	for {
		select {
		case path := <-jobQueue:
			time.Sleep(settleDelay)
			processWatched(path, opts)

		case <-ctx.Done():
			slog.Info("stopping", "queued", len(jobQueue))
			drainJobs(jobQueue, opts)

			return nil
		}
	}
}

// drainJobs runs whatever was queued before the stop signal so a clip
// whose create event already fired is not dropped on shutdown.
func drainJobs(jobQueue chan string, opts clipfix.Options) {
	for {
		select {
		case path := <-jobQueue:
			time.Sleep(settleDelay)
			processWatched(path, opts)
		default:
			return
		}
	}
}

// shouldQueue filters events down to decodable clips, skipping files this
// watcher produced itself so outputs are not processed again.
func shouldQueue(path string, tool clipfix.Tool) bool {
	if clipfix.FormatForPath(path) == "" {
		return false
	}

	return !strings.HasSuffix(filepath.Base(path), "_"+tool.String()+".wav")
}

// queueExisting enqueues clips that were already present when watching began.
func queueExisting(ctx context.Context, dir string, tool clipfix.Tool, jobQueue chan string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		slog.Warn("listing directory", "dir", dir, "error", err)
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		if !shouldQueue(path, tool) {
			continue
		}

		select {
		case jobQueue <- path:
		case <-ctx.Done():
			return
		}
	}
}

// processWatched runs one queued clip and logs the outcome.
func processWatched(path string, opts clipfix.Options) {
	slog.Info("processing", "input", path, "tool", opts.Tool.String())

	outcome, err := processClip(path, opts, func(clipfix.Stage, int) {})
	if err != nil {
		slog.Error("clip failed", "input", path, "error", err)
		return
	}

	slog.Info("done", "output", outcome.OutputPath,
		"frames_in", outcome.Before.Frames,
		"frames_out", outcome.After.Frames,
		"loudness", fmt.Sprintf("%.1f", outcome.After.Loudness))
}
