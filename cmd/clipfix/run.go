// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/quietroom/clipfix"
	"github.com/quietroom/clipfix/analysis"
	"github.com/quietroom/clipfix/internal/ui"
)

var (
	errNoInput          = errors.New("expected at least one input file")
	errUnknownExtension = errors.New("unrecognized audio extension")
)

// clipOutcome is what one successful clip run leaves behind.
type clipOutcome struct {
	OutputPath string
	Before     analysis.Stats
	After      analysis.Stats
}

// runClips processes each input path with the configured tool, behind the
// interactive interface or as plain progress lines.
func runClips(cmd *cli.Command, opts clipfix.Options) error {
	if cmd.NArg() < 1 {
		return fmt.Errorf("%w: got %d", errNoInput, cmd.NArg())
	}

	inputs := cmd.Args().Slice()

	if cmd.Bool("plain") {
		return runPlain(inputs, opts)
	}

	return runInteractive(inputs, opts)
}

func runPlain(inputs []string, opts clipfix.Options) error {
	var failures int

	for _, path := range inputs {
		slog.Info("processing", "input", path, "tool", opts.Tool.String())

		outcome, err := processClip(path, opts, func(stage clipfix.Stage, percent int) {
			slog.Info("progress", "stage", stage.String(), "percent", percent)
		})
		if err != nil {
			slog.Error("clip failed", "input", path, "error", err)
			failures++

			continue
		}

		slog.Info("done", "output", outcome.OutputPath,
			"frames_in", outcome.Before.Frames,
			"frames_out", outcome.After.Frames,
			"loudness_before", fmt.Sprintf("%.1f", outcome.Before.Loudness),
			"loudness_after", fmt.Sprintf("%.1f", outcome.After.Loudness))
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d clips failed", failures, len(inputs))
	}

	return nil
}

func runInteractive(inputs []string, opts clipfix.Options) error {
	model := ui.NewModel(opts.Tool, inputs)
	program := tea.NewProgram(model, tea.WithAltScreen())

	go func() {
		for i, path := range inputs {
			model.ProgressChan <- ui.ClipStartMsg{Index: i, Path: path}

			outcome, err := processClip(path, opts, func(stage clipfix.Stage, percent int) {
				model.ProgressChan <- ui.StageMsg{Stage: stage, Percent: percent}
			})
			if err != nil {
				model.ProgressChan <- ui.ClipDoneMsg{Index: i, Err: err}
				continue
			}

			model.ProgressChan <- ui.ClipDoneMsg{
				Index:      i,
				OutputPath: outcome.OutputPath,
				Before:     outcome.Before,
				After:      outcome.After,
			}
		}

		model.ProgressChan <- ui.AllDoneMsg{}
	}()

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("interface failed: %w", err)
	}

	return nil
}

// processClip runs one input through the pipeline and writes the processed
// WAV alongside it. Decoding happens up front so the incoming clip can be
// measured, which is why the decode milestones are reported here rather
// than by Process.
func processClip(path string, opts clipfix.Options, report clipfix.ProgressFunc) (*clipOutcome, error) {
	format := clipfix.FormatForPath(path)
	if format == "" {
		return nil, fmt.Errorf("%w: %q", errUnknownExtension, filepath.Ext(path))
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer file.Close()

	report(clipfix.StageDecoding, 10)

	buf, err := clipfix.Decode(file, format)
	if err != nil {
		report(clipfix.StageFailed, 10)
		return nil, err
	}

	before := analysis.Measure(buf)

	result, err := clipfix.ProcessBuffer(buf, opts, report)
	if err != nil {
		return nil, err
	}

	outPath := clipfix.OutputName(path, opts.Tool)
	if err := os.WriteFile(outPath, result.WAV, 0o644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", outPath, err)
	}

	out, err := clipfix.Decode(bytes.NewReader(result.WAV), "wav")
	if err != nil {
		return nil, err
	}

	return &clipOutcome{
		OutputPath: outPath,
		Before:     before,
		After:      analysis.Measure(out),
	}, nil
}
