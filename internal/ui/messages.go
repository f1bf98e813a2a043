// SPDX-License-Identifier: EPL-2.0

package ui

import (
	"github.com/quietroom/clipfix"
	"github.com/quietroom/clipfix/analysis"
)

// StageMsg carries one pipeline milestone for the clip being processed.
type StageMsg struct {
	Stage   clipfix.Stage
	Percent int
}

// ClipStartMsg announces that the worker moved on to the clip at Index.
type ClipStartMsg struct {
	Index int
	Path  string
}

// ClipDoneMsg reports one finished clip, successful or failed.
type ClipDoneMsg struct {
	Index      int
	OutputPath string
	Before     analysis.Stats
	After      analysis.Stats
	Err        error
}

// AllDoneMsg tells the interface the queue is drained and it can exit.
type AllDoneMsg struct{}
