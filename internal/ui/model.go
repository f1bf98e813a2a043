// SPDX-License-Identifier: EPL-2.0

// Package ui renders the Bubble Tea terminal interface for processing runs.
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quietroom/clipfix"
	"github.com/quietroom/clipfix/analysis"
)

// ClipStatus is the queue state of a single clip.
type ClipStatus int

const (
	StatusQueued ClipStatus = iota
	StatusRunning
	StatusDone
	StatusFailed
)

// ClipProgress tracks one clip through the pipeline.
type ClipProgress struct {
	InputPath  string
	OutputPath string
	Status     ClipStatus

	Stage   clipfix.Stage
	Percent int

	StartTime time.Time
	Elapsed   time.Duration

	Before analysis.Stats
	After  analysis.Stats

	Err error
}

// Model is the Bubble Tea model for one processing run.
type Model struct {
	Tool clipfix.Tool

	Clips        []ClipProgress
	CurrentIndex int
	Completed    int
	Failed       int

	StartTime time.Time
	Done      bool

	// ProgressChan receives updates from the worker goroutine.
	ProgressChan chan tea.Msg

	Width  int
	Height int
}

// NewModel builds the model for a run over the given input paths.
func NewModel(tool clipfix.Tool, inputs []string) Model {
	clips := make([]ClipProgress, len(inputs))
	for i, path := range inputs {
		clips[i] = ClipProgress{InputPath: path, Status: StatusQueued}
	}

	return Model{
		Tool:         tool,
		Clips:        clips,
		CurrentIndex: -1,
		StartTime:    time.Now(),
		ProgressChan: make(chan tea.Msg, 100),
	}
}

// Init starts listening for worker updates.
func (m Model) Init() tea.Cmd {
	return waitForProgress(m.ProgressChan)
}

// Update handles messages and advances the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case ClipStartMsg:
		if msg.Index >= 0 && msg.Index < len(m.Clips) {
			m.CurrentIndex = msg.Index
			m.Clips[msg.Index].Status = StatusRunning
			m.Clips[msg.Index].StartTime = time.Now()
		}

		return m, waitForProgress(m.ProgressChan)

	case StageMsg:
		if m.CurrentIndex >= 0 && m.CurrentIndex < len(m.Clips) {
			m.Clips[m.CurrentIndex].Stage = msg.Stage
			m.Clips[m.CurrentIndex].Percent = msg.Percent
			m.Clips[m.CurrentIndex].Elapsed = time.Since(m.Clips[m.CurrentIndex].StartTime)
		}

		return m, waitForProgress(m.ProgressChan)

	case ClipDoneMsg:
		if msg.Index >= 0 && msg.Index < len(m.Clips) {
			m.Clips[msg.Index].OutputPath = msg.OutputPath
			m.Clips[msg.Index].Before = msg.Before
			m.Clips[msg.Index].After = msg.After
			m.Clips[msg.Index].Err = msg.Err
			m.Clips[msg.Index].Elapsed = time.Since(m.Clips[msg.Index].StartTime)

			if msg.Err != nil {
				m.Clips[msg.Index].Status = StatusFailed
				m.Failed++
			} else {
				m.Clips[msg.Index].Status = StatusDone
				m.Completed++
			}
		}

		return m, waitForProgress(m.ProgressChan)

	case AllDoneMsg:
		m.Done = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the interface.
func (m Model) View() string {
	if m.Width == 0 {
		return "Starting up...\n"
	}

	if m.Done {
		return renderSummary(m)
	}

	return renderRun(m)
}

// waitForProgress blocks until the worker delivers the next message.
func waitForProgress(ch chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}
