// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathrules

package globwalk

import "strings"

// stripWindowsExtendedPrefix removes a "//?/" or "//./" device prefix,
// remapping the "UNC/host/share" form back to "//host/share" rather than
// leaving a bare "UNC/..." segment.
func stripWindowsExtendedPrefix(s string) string {
	switch {
	case strings.HasPrefix(s, "//?/UNC/"), strings.HasPrefix(s, "//./UNC/"):
		return "//" + s[8:]
	case strings.HasPrefix(s, "//?/") || strings.HasPrefix(s, "//./"):
		return s[4:]
	default:
		return s
	}
}

// isDotFile reports whether a path component (no separators) is a dot-file
// name, i.e. "." or ".." or starts with "." followed by another character.
func isDotFile(name string) bool {
	return len(name) > 0 && name[0] == '.'
}

// normalizeSeparator rewrites backslash separators to forward slashes. Used
// on Windows-style input when WindowsPathsNoEscape makes "\" a pure separator.
func normalizeSeparator(s string) string {
	return strings.ReplaceAll(s, `\`, "/")
}

// joinPath joins two path components with exactly one separating slash,
// tolerating either side being empty.
func joinPath(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	case strings.HasSuffix(a, "/"):
		return a + b
	default:
		return a + "/" + b
	}
}
