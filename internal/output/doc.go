// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package output renders command results as JSON, YAML or a table.
//
// JSON is indented with four spaces. YAML keeps the key order of the JSON
// form, so field names always follow the json tags. The table format is used
// only for values implementing [Tabular]; everything else falls back to JSON.
package output
