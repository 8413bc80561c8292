// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive prompts of the command line client
// with Bubble Tea.
package tui

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// TUI asks the user for single values on a terminal. Prompts are drawn on
// out so that stdout stays free for command results.
type TUI struct {
	in  io.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *TUI {
	return &TUI{in: in, out: out}
}

// Prompt shows a one-field form and returns the trimmed value entered.
// Secret values are masked while typing. Esc and ctrl+c return
// [ErrPromptCancelled].
func (t *TUI) Prompt(label, placeholder string, secret bool) (string, error) {
	model := newPromptModel(label, placeholder, secret)

	finalModel, err := tea.NewProgram(model, tea.WithInput(t.in), tea.WithOutput(t.out)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrInterrupted) || errors.Is(err, tea.ErrProgramKilled) {
			return "", ErrPromptCancelled
		}
		return "", err
	}

	result, ok := finalModel.(*promptModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	return result.result()
}
