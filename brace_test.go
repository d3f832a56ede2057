// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathrules

package globwalk

import (
	"reflect"
	"testing"
)

func TestExpandBraces(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		pattern string
		want    []string
	}{
		{"no braces", "src/main.go", []string{"src/main.go"}},
		{"simple comma", "a/{b,c}", []string{"a/b", "a/c"}},
		{"nested comma", "{a,b{c,d}}", []string{"a", "bc", "bd"}},
		{"numeric sequence", "file{1..3}.txt", []string{"file1.txt", "file2.txt", "file3.txt"}},
		{"numeric sequence reverse", "file{3..1}.txt", []string{"file3.txt", "file2.txt", "file1.txt"}},
		{"padded sequence", "img{01..03}.png", []string{"img01.png", "img02.png", "img03.png"}},
		{"negative padded sequence", "file{-01..1}.txt", []string{"file-01.txt", "file000.txt", "file001.txt"}},
		{"alpha sequence", "{a..c}.go", []string{"a.go", "b.go", "c.go"}},
		{"escaped brace", `a\{b,c\}`, []string{`a{b,c}`}},
		{"dollar suppressed", "foo${a,b}", []string{"foo${a,b}"}},
		{"empty body", "{}", []string{"{}"}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := expandBraces(tc.pattern)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("expandBraces(%q) = %v, want %v", tc.pattern, got, tc.want)
			}
		})
	}
}

func TestExpandBracesEmpty(t *testing.T) {
	t.Parallel()
	if got := expandBraces(""); got != nil {
		t.Fatalf("expandBraces(\"\") = %v, want nil", got)
	}
}
