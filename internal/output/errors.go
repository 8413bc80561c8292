// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package output

import "errors"

var (
	ErrUnknownFormat   = errors.New("unknown output format")
	ErrCopyToClipboard = errors.New("error copying output to clipboard")
)
