// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathrules

package globwalk

import "testing"

func hasWarning(warnings []Warning, kind WarningKind) bool {
	for _, w := range warnings {
		if w.Kind == kind {
			return true
		}
	}
	return false
}

func TestAnalyzePatternEmpty(t *testing.T) {
	t.Parallel()
	w := AnalyzePattern("", CompileFlags{})
	if len(w) != 1 || w[0].Kind != WarningEmptyPattern {
		t.Fatalf("expected a single WarningEmptyPattern, got %v", w)
	}
}

func TestAnalyzePatternEscapedWildcard(t *testing.T) {
	t.Parallel()
	w := AnalyzePattern(`\*.go`, CompileFlags{})
	if !hasWarning(w, WarningEscapedLeadingWildcard) {
		t.Fatalf("expected WarningEscapedLeadingWildcard, got %v", w)
	}
}

func TestAnalyzePatternTrailingWhitespace(t *testing.T) {
	t.Parallel()
	w := AnalyzePattern("*.go ", CompileFlags{})
	if !hasWarning(w, WarningTrailingWhitespace) {
		t.Fatalf("expected WarningTrailingWhitespace, got %v", w)
	}
}

func TestAnalyzePatternClean(t *testing.T) {
	t.Parallel()
	w := AnalyzePattern("src/**/*.go", CompileFlags{})
	if len(w) != 0 {
		t.Fatalf("expected no warnings for a clean pattern, got %v", w)
	}
}

func TestAnalyzePatterns(t *testing.T) {
	t.Parallel()
	out := AnalyzePatterns([]string{"src/**/*.go", ""}, CompileFlags{})
	if len(out) != 1 {
		t.Fatalf("expected exactly one flagged pattern, got %v", out)
	}
	if _, ok := out[""]; !ok {
		t.Fatalf("expected the empty pattern to be flagged")
	}
}
