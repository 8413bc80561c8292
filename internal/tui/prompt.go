// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// promptModel is a single text input. The program quits once the value is
// submitted or the prompt is cancelled.
type promptModel struct {
	label string
	input textinput.Model

	submitted bool
	cancelled bool
	errMsg    string
}

func newPromptModel(label, placeholder string, secret bool) *promptModel {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = 256
	input.Width = 40
	if secret {
		input.EchoMode = textinput.EchoPassword
		input.EchoCharacter = '*'
	}
	input.Focus()

	return &promptModel{label: label, input: input}
}

// Init implements [tea.Model].
func (m *promptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Enter submits a non-empty value, esc and
// ctrl+c cancel. Other messages go to the text input.
func (m *promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.cancel):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.submit):
			if strings.TrimSpace(m.input.Value()) == "" {
				m.errMsg = "a value is required"
				return m, nil
			}
			m.errMsg = ""
			m.submitted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *promptModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}

	body := m.input.View()
	if m.errMsg != "" {
		body += "\n" + errorStyle.Render("error: "+m.errMsg)
	}
	return renderPage(m.label, body, keys.help())
}

func (m *promptModel) result() (string, error) {
	if m.cancelled || !m.submitted {
		return "", ErrPromptCancelled
	}
	return strings.TrimSpace(m.input.Value()), nil
}
