// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathrules

package globwalk

import "testing"

func TestEscapeUnescapeRoundTrip(t *testing.T) {
	t.Parallel()
	cases := []string{"file[1].txt", "a*b?c", "plain.go", "weird(name).go"}
	for _, c := range cases {
		escaped := Escape(c, false)
		if got := Unescape(escaped, false); got != c {
			t.Fatalf("round trip for %q failed: escaped=%q unescaped=%q", c, escaped, got)
		}
	}
}

func TestEscapeUnescapeRoundTripWindows(t *testing.T) {
	t.Parallel()
	cases := []string{"file[1].txt", "a*b?c", "plain.go", "weird(name).go"}
	for _, c := range cases {
		escaped := Escape(c, true)
		if got := Unescape(escaped, true); got != c {
			t.Fatalf("windows round trip for %q failed: escaped=%q unescaped=%q", c, escaped, got)
		}
	}
}

func TestHasMagic(t *testing.T) {
	t.Parallel()
	cases := []struct {
		pattern string
		want    bool
	}{
		{"src/main.go", false},
		{"src/*.go", true},
		{"src/**", true},
		{"src/file.go", false},
		{"a/{b,c}", true},
		{"a/b[0-9]", true},
	}
	for _, tc := range cases {
		if got := HasMagic(tc.pattern, CompileFlags{}); got != tc.want {
			t.Fatalf("HasMagic(%q) = %v, want %v", tc.pattern, got, tc.want)
		}
	}
}

func TestHasMagicNoBraceSuppressesBraces(t *testing.T) {
	t.Parallel()
	if HasMagic("a/{b,c}", CompileFlags{NoBrace: true}) {
		t.Fatalf("expected HasMagic to ignore brace syntax when NoBrace is set")
	}
}

func TestOptionsHasMagicRespectsMagicalBraces(t *testing.T) {
	t.Parallel()

	trivial := "a/{solo}"
	opts := Options{}
	if opts.HasMagic(trivial) {
		t.Fatalf("a brace group with no comma/sequence should not count as magic by default")
	}

	opts.MagicalBraces = true
	if !opts.HasMagic(trivial) {
		t.Fatalf("MagicalBraces=true should count any brace group as magic")
	}

	if !(&Options{}).HasMagic("a/{b,c}") {
		t.Fatalf("a genuinely expanding brace group should count as magic even without MagicalBraces")
	}
}
