// SPDX-License-Identifier: EPL-2.0

package ui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/quietroom/clipfix"
)

// renderRun renders the live processing view.
func renderRun(m Model) string {
	var b strings.Builder

	b.WriteString(renderHeader(m))
	b.WriteString("\n\n")
	b.WriteString(renderQueue(m))
	b.WriteString("\n")
	b.WriteString(renderFooter(m))

	return b.String()
}

func renderHeader(m Model) string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7D56F4")).
		Render("clipfix - audio touch-up")

	subtitle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		Italic(true).
		Render(fmt.Sprintf("Tool: %s | %d clip(s)", m.Tool, len(m.Clips)))

	return title + "\n" + subtitle
}

func renderQueue(m Model) string {
	var b strings.Builder

	for _, clip := range m.Clips {
		b.WriteString(renderClip(clip))
		b.WriteString("\n")
	}

	return b.String()
}

// renderClip renders one queue entry according to its status.
func renderClip(clip ClipProgress) string {
	name := filepath.Base(clip.InputPath)

	switch clip.Status {
	case StatusDone:
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00")).Render("✓")
		return fmt.Sprintf(" %s %s → %s\n   %s",
			icon, name, filepath.Base(clip.OutputPath), doneLine(clip))

	case StatusRunning:
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")).Render("⚙")
		return fmt.Sprintf(" %s %s\n%s", icon, name, renderStageBox(clip))

	case StatusFailed:
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#CC0000")).Render("✗")
		return fmt.Sprintf(" %s %s\n   Error: %v", icon, name, clip.Err)

	default:
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Render("○")
		return fmt.Sprintf(" %s %s\n   Queued...", icon, name)
	}
}

// doneLine condenses the before/after measurements of a finished clip.
func doneLine(clip ClipProgress) string {
	delta := clip.After.Loudness - clip.Before.Loudness

	return fmt.Sprintf("%.1f → %.1f LUFS (%+.1f dB) | %d → %d frames",
		clip.Before.Loudness, clip.After.Loudness, delta,
		clip.Before.Frames, clip.After.Frames)
}

// renderStageBox renders the detail box for the active clip.
func renderStageBox(clip ClipProgress) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#7D56F4")).
		Padding(0, 1).
		Width(56)

	var content strings.Builder

	content.WriteString(fmt.Sprintf("Stage: %s\n", stageLabel(clip.Stage)))
	content.WriteString(renderProgressBar(clip.Percent, 40))
	content.WriteString(fmt.Sprintf("\nElapsed: %.1fs", clip.Elapsed.Seconds()))

	return box.Render(content.String())
}

// stageLabel spells a stage out for display.
func stageLabel(stage clipfix.Stage) string {
	switch stage {
	case clipfix.StageDecoding:
		return "Decoding input"
	case clipfix.StageTransforming:
		return "Applying transform"
	case clipfix.StageEncoding:
		return "Encoding WAV"
	case clipfix.StageDone:
		return "Done"
	case clipfix.StageFailed:
		return "Failed"
	}

	return "Waiting"
}

// renderProgressBar draws a fixed-width percent bar.
func renderProgressBar(percent, width int) string {
	if percent < 0 {
		percent = 0
	}

	if percent > 100 {
		percent = 100
	}

	filled := percent * width / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	return fmt.Sprintf("%s %d%%", bar, percent)
}

func renderFooter(m Model) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#888888")).
		Padding(0, 1).
		Width(56)

	var content string
	if m.CurrentIndex >= 0 && m.CurrentIndex < len(m.Clips) {
		content = fmt.Sprintf("Clip %d of %d (%d done)",
			m.CurrentIndex+1, len(m.Clips), m.Completed)
	} else {
		content = fmt.Sprintf("%d of %d done", m.Completed, len(m.Clips))
	}

	return box.Render(content)
}

// renderSummary renders the final view once the queue drains.
func renderSummary(m Model) string {
	var b strings.Builder

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00AA00")).
		Render("Processing complete")
	b.WriteString(header)
	b.WriteString("\n\n")

	for _, clip := range m.Clips {
		name := filepath.Base(clip.InputPath)

		if clip.Status == StatusFailed {
			b.WriteString(fmt.Sprintf(" ✗ %s\n   Error: %v\n", name, clip.Err))
			continue
		}

		b.WriteString(fmt.Sprintf(" ✓ %s → %s\n   %s\n",
			name, filepath.Base(clip.OutputPath), doneLine(clip)))
	}

	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", 56))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%d done, %d failed in %.1fs\n",
		m.Completed, m.Failed, time.Since(m.StartTime).Seconds()))

	return b.String()
}
