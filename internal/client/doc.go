// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the eero command line application.
//
// Each subcommand maps onto one service call. The runtime (logger, session
// store, API adapter, services, output writer and prompter) is built by a
// [Bootstrap] in the app's Before hook and released in its After hook, so
// every invocation reads the session once and writes it at most once.
package client
