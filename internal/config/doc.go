// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the eero command.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Command-line flags
//  2. Environment variables (prefixed with EERO_)
//  3. Config file (JSON, or YAML for .yaml/.yml files)
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the merged tree and
// [GetClientConfig] for the validated view consumed by the runtime.
package config
