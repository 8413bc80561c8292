// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"strings"
)

// APIVersion selects one of the two versioned base paths.
type APIVersion string

const (
	V22 APIVersion = "2.2"
	V23 APIVersion = "2.3"
)

// ParseAPIVersion accepts "2.2", "2.3" and the same with a "v" prefix.
func ParseAPIVersion(s string) (APIVersion, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "v")
	switch APIVersion(s) {
	case V22, V23:
		return APIVersion(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAPIVersion, s)
	}
}
