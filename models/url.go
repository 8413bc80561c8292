// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// IDFromURL extracts the trailing identifier from an API resource URL such as
// "/2.2/networks/123". Values that do not look like a URL are returned as-is,
// so callers may pass either an id or a url.
func IDFromURL(idOrURL string) string {
	s := strings.TrimSpace(idOrURL)
	if !strings.Contains(s, "/") {
		return s
	}

	s = strings.TrimRight(s, "/")
	if idx := strings.LastIndex(s, "/"); idx != -1 {
		return s[idx+1:]
	}
	return s
}
