// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathrules

package globwalk

import "strings"

// magicChars are the characters Escape neutralizes.
const magicChars = `*?[]()`

// Escape neutralizes every glob metacharacter in s so that globbing the
// result matches s literally. In the default mode it prefixes each
// metacharacter with "\"; when windowsPathsNoEscape is set (backslash is a
// pure path separator there, unusable as an escape) it wraps each
// metacharacter in a single-char bracket expression instead, e.g. "*" -> "[*]".
func Escape(s string, windowsPathsNoEscape bool) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case strings.IndexByte(magicChars, c) >= 0 && windowsPathsNoEscape:
			b.WriteByte('[')
			b.WriteByte(c)
			b.WriteByte(']')
		case strings.IndexByte(magicChars, c) >= 0 || c == '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Unescape is the inverse of Escape, restoring an escaped literal to its
// plain text form in either escape mode.
func Unescape(s string, windowsPathsNoEscape bool) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if windowsPathsNoEscape && c == '[' && i+2 < len(s) && s[i+2] == ']' && strings.IndexByte(magicChars, s[i+1]) >= 0 {
			b.WriteByte(s[i+1])
			i += 2
			continue
		}
		if !windowsPathsNoEscape && c == '\\' && i+1 < len(s) {
			i++
			b.WriteByte(s[i])
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// HasMagic reports whether a raw pattern string contains unescaped glob
// syntax under the given flags, without fully compiling it.
func HasMagic(raw string, flags CompileFlags) bool {
	if hasNonBraceMagic(raw, flags) {
		return true
	}
	if !flags.NoBrace {
		if start, end := findBalancedBrace(raw); start >= 0 && end > start {
			return true
		}
	}
	return false
}

// hasNonBraceMagic reports whether raw has wildcard/class/extglob magic
// outside of any brace syntax, letting callers (Options.HasMagic) decide
// separately whether a brace group itself counts as magic. "?" and "." inside
// a UNC or device root prefix are literal there and do not count, and a bare
// "!(...)" group is not magic on its own, matching upstream glob behavior.
func hasNonBraceMagic(raw string, flags CompileFlags) bool {
	s := raw
	if flags.WindowsPathsNoEscape {
		s = normalizeSeparator(s)
	}
	body := s[skipRootPrefixLen(s):]
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c == '\\' && !flags.WindowsPathsNoEscape && i+1 < len(body) {
			i++
			continue
		}
		switch c {
		case '*', '?', '[':
			return true
		case '+', '@':
			if !flags.NoExt && i+1 < len(body) && body[i+1] == '(' {
				return true
			}
		}
	}
	return false
}

// skipRootPrefixLen returns the byte length of a leading UNC ("//server/share/")
// or device ("//?/X:/", "//./dev/") root prefix, or 0 when there is none.
func skipRootPrefixLen(s string) int {
	if len(s) < 4 || s[0] != '/' || s[1] != '/' {
		return 0
	}
	if (s[2] == '?' || s[2] == '.') && s[3] == '/' {
		i := 4
		for i < len(s) && s[i] != '/' {
			i++
		}
		if i < len(s) {
			i++
		}
		return i
	}
	if s[2] == '/' {
		return 0
	}
	i, slashes := 0, 0
	for i < len(s) && slashes < 4 {
		if s[i] == '/' {
			slashes++
		}
		i++
	}
	return i
}
