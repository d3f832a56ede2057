// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathrules

package globwalk

import "strings"

// WarningKind classifies one AnalyzePattern finding.
type WarningKind uint8

const (
	WarningEscapedLeadingWildcard WarningKind = iota
	WarningDoubleEscape
	WarningWindowsBackslash
	WarningDeepRecursion
	WarningTrailingWhitespace
	WarningEmptyPattern
	WarningNullByte
)

// Warning is one diagnostic produced by AnalyzePattern: legal syntax that
// commonly signals an authoring mistake. It carries a machine tag
// (Kind), a human Message, the original Pattern, and a Suggestion where one
// applies; warnings are purely advisory and never change match behavior.
type Warning struct {
	Kind       WarningKind
	Message    string
	Pattern    string
	Suggestion string
}

// AnalyzePattern inspects one raw pattern string for shapes that compile
// successfully but rarely do what the author intended.
func AnalyzePattern(raw string, flags CompileFlags) []Warning {
	if raw == "" {
		return []Warning{{Kind: WarningEmptyPattern, Message: "pattern is empty", Pattern: raw}}
	}

	var warnings []Warning

	if strings.ContainsRune(raw, 0) {
		warnings = append(warnings, Warning{Kind: WarningNullByte, Message: "pattern contains a null byte", Pattern: raw})
	}
	if raw != strings.TrimSpace(raw) {
		warnings = append(warnings, Warning{
			Kind: WarningTrailingWhitespace, Message: "pattern has leading or trailing whitespace",
			Pattern: raw, Suggestion: strings.TrimSpace(raw),
		})
	}
	if strings.HasPrefix(raw, `\*`) || strings.HasPrefix(raw, `\?`) {
		warnings = append(warnings, Warning{
			Kind: WarningEscapedLeadingWildcard, Message: "leading wildcard is escaped and will match literally",
			Pattern: raw, Suggestion: raw[1:],
		})
	}
	if strings.Contains(raw, `\\*`) || strings.Contains(raw, `\\?`) {
		warnings = append(warnings, Warning{
			Kind: WarningDoubleEscape, Message: "double backslash before a wildcard escapes the backslash, not the wildcard",
			Pattern: raw,
		})
	}
	if !flags.WindowsPathsNoEscape && flags.Platform == PlatformWindows && strings.Contains(raw, `\`) {
		warnings = append(warnings, Warning{
			Kind: WarningWindowsBackslash, Message: "backslash is treated as an escape character here; set WindowsPathsNoEscape to use it as a separator",
			Pattern: raw,
		})
	}
	if strings.Count(raw, "**") >= 4 {
		warnings = append(warnings, Warning{
			Kind: WarningDeepRecursion, Message: "pattern has several recursive segments and may be expensive to evaluate",
			Pattern: raw,
		})
	}

	return warnings
}

// AnalyzePatterns runs AnalyzePattern over every pattern in the list,
// keying results by the original raw string.
func AnalyzePatterns(raws []string, flags CompileFlags) map[string][]Warning {
	out := make(map[string][]Warning)
	for _, raw := range raws {
		if w := AnalyzePattern(raw, flags); len(w) > 0 {
			out[raw] = w
		}
	}
	return out
}
