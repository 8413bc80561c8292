// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-eero/internal/config"
	"github.com/atotto/clipboard"
)

// Writer renders results to out in the configured format and, when asked to,
// mirrors everything written so far to the system clipboard.
type Writer struct {
	out    io.Writer
	format string
	copy   bool

	copied strings.Builder
	clip   func(string) error
}

func NewWriter(out io.Writer, cfg config.ClientOutput) *Writer {
	format := strings.ToLower(cfg.Format)
	if format == "" {
		format = config.FormatAuto
	}
	return &Writer{
		out:    out,
		format: format,
		copy:   cfg.Copy,
		clip:   clipboard.WriteAll,
	}
}

// Format returns the output format in use.
func (w *Writer) Format() string {
	return w.format
}

// Write renders v and writes it out.
func (w *Writer) Write(v any) error {
	text, err := Render(w.format, v)
	if err != nil {
		return err
	}
	return w.emit(text)
}

// WriteReport renders a tabular report. Unlike [Writer.Write] it prints a
// table when no explicit format was chosen.
func (w *Writer) WriteReport(report Tabular) error {
	format := w.format
	if format == config.FormatAuto {
		format = config.FormatTable
	}
	text, err := Render(format, report)
	if err != nil {
		return err
	}
	return w.emit(text)
}

// Println writes a plain status line regardless of the format.
func (w *Writer) Println(text string) error {
	return w.emit(text + "\n")
}

func (w *Writer) emit(text string) error {
	if _, err := io.WriteString(w.out, text); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if !w.copy {
		return nil
	}

	w.copied.WriteString(text)
	if err := w.clip(w.copied.String()); err != nil {
		return fmt.Errorf("%w: %w", ErrCopyToClipboard, err)
	}
	return nil
}
