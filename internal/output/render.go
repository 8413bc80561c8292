// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-eero/internal/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"
)

const jsonIndent = "    "

// Tabular is implemented by reports that have a natural table form.
type Tabular interface {
	TableHeaders() []string
	TableRows() [][]string
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// Render formats v according to format. The result always ends with a newline.
// FormatAuto renders JSON here; see [Writer.WriteReport] for reports.
func Render(format string, v any) (string, error) {
	switch strings.ToLower(format) {
	case config.FormatAuto, config.FormatJSON:
		return renderJSON(v)
	case config.FormatYAML:
		return renderYAML(v)
	case config.FormatTable:
		if t, ok := v.(Tabular); ok {
			return renderTable(t), nil
		}
		return renderJSON(v)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func renderJSON(v any) (string, error) {
	b, err := json.MarshalIndent(v, "", jsonIndent)
	if err != nil {
		return "", fmt.Errorf("encode json: %w", err)
	}
	return string(b) + "\n", nil
}

// renderYAML goes through JSON so that json tags and json.RawMessage
// payloads are honoured, then re-emits the tree in block style.
func renderYAML(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode json: %w", err)
	}

	var node yaml.Node
	if err = yaml.Unmarshal(b, &node); err != nil {
		return "", fmt.Errorf("decode json as yaml: %w", err)
	}
	resetStyle(&node)

	out, err := yaml.Marshal(&node)
	if err != nil {
		return "", fmt.Errorf("encode yaml: %w", err)
	}
	return string(out), nil
}

// resetStyle drops the flow and quoting styles inherited from JSON. The
// encoder still quotes strings that would otherwise read as another type.
func resetStyle(n *yaml.Node) {
	n.Style = 0
	for _, child := range n.Content {
		resetStyle(child)
	}
}

func renderTable(t Tabular) string {
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(t.TableHeaders()...).
		Rows(t.TableRows()...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return tbl.String() + "\n"
}
