// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathrules

package globwalk

import (
	"strconv"
	"strings"
)

// Sentinel byte sequences used to shield escaped brace syntax from expansion.
// They use a NUL delimiter so they cannot collide with any real path text.
const (
	escSlash  = "\x00SLASH\x00"
	escOpen   = "\x00OPEN\x00"
	escClose  = "\x00CLOSE\x00"
	escComma  = "\x00COMMA\x00"
	escPeriod = "\x00PERIOD\x00"
)

// expandBraces expands one raw pattern into every concrete brace
// alternative. An empty pattern yields an empty slice; a pattern with no
// brace syntax yields a single-element slice equal to the input.
func expandBraces(pattern string) []string {
	if pattern == "" {
		return nil
	}

	if strings.HasPrefix(pattern, "{}") {
		pattern = escOpen + escClose + pattern[2:]
	}

	escaped := braceEscape(pattern)

	out := braceExpandInternal(escaped, true)
	for i, s := range out {
		out[i] = braceUnescape(s)
	}
	return out
}

// braceEscape hides backslash-escaped brace syntax behind sentinel tokens.
func braceEscape(s string) string {
	s = strings.ReplaceAll(s, `\\`, escSlash)
	s = strings.ReplaceAll(s, `\{`, escOpen)
	s = strings.ReplaceAll(s, `\}`, escClose)
	s = strings.ReplaceAll(s, `\,`, escComma)
	s = strings.ReplaceAll(s, `\.`, escPeriod)
	return s
}

// braceUnescape restores sentinel tokens to their literal characters.
func braceUnescape(s string) string {
	s = strings.ReplaceAll(s, escSlash, `\`)
	s = strings.ReplaceAll(s, escOpen, "{")
	s = strings.ReplaceAll(s, escClose, "}")
	s = strings.ReplaceAll(s, escComma, ",")
	s = strings.ReplaceAll(s, escPeriod, ".")
	return s
}

// findBalancedBrace locates the first balanced "{...}" pair, returning the
// index of the opening and closing brace, or (-1,-1) if none exists.
func findBalancedBrace(s string) (int, int) {
	depth := 0
	start := -1
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			if start < 0 {
				start = i
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
				if depth == 0 {
					return start, i
				}
			}
		}
	}
	return -1, -1
}

// braceSplit extracts the pre/body/post parts around the first balanced pair.
func braceSplit(s string) (pre, body, post string, ok bool) {
	start, end := findBalancedBrace(s)
	if start < 0 {
		return "", "", "", false
	}
	return s[:start], s[start+1 : end], s[end+1:], true
}

// braceCommaParts splits a brace body on top-level commas, keeping nested
// brace groups intact by re-attaching a dangling brace section found while
// scanning the pre part's trailing comma split.
func braceCommaParts(s string) []string {
	if s == "" {
		return []string{""}
	}

	pre, body, post, ok := braceSplit(s)
	if !ok {
		return strings.Split(s, ",")
	}

	parts := strings.Split(pre, ",")
	last := len(parts) - 1
	parts[last] = parts[last] + "{" + body + "}"

	postParts := braceCommaParts(post)
	if post != "" {
		parts[last] += postParts[0]
		parts = append(parts, postParts[1:]...)
	}

	return parts
}

// isNumericSequence reports whether body looks like "m..n" or "m..n..s".
func isNumericSequence(body string) bool {
	parts := strings.Split(body, "..")
	if len(parts) < 2 || len(parts) > 3 {
		return false
	}
	for _, p := range parts {
		p = strings.TrimPrefix(p, "-")
		if p == "" {
			return false
		}
		for i := 0; i < len(p); i++ {
			if p[i] < '0' || p[i] > '9' {
				return false
			}
		}
	}
	return true
}

// isAlphaSequence reports whether body looks like "a..e" or "a..e..s".
func isAlphaSequence(body string) bool {
	parts := strings.Split(body, "..")
	if len(parts) < 2 || len(parts) > 3 {
		return false
	}
	if len(parts[0]) != 1 || len(parts[1]) != 1 {
		return false
	}
	if !isASCIIAlpha(parts[0][0]) || !isASCIIAlpha(parts[1][0]) {
		return false
	}
	if len(parts) == 3 {
		p := strings.TrimPrefix(parts[2], "-")
		if p == "" {
			return false
		}
		for i := 0; i < len(p); i++ {
			if p[i] < '0' || p[i] > '9' {
				return false
			}
		}
	}
	return true
}

func isASCIIAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// isPadded reports whether a numeric sequence endpoint has a leading zero.
func isPadded(s string) bool {
	s = strings.TrimPrefix(s, "-")
	return len(s) > 1 && s[0] == '0'
}

func parseSeqNumber(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		if s == "" {
			return 0
		}
		return int(s[0])
	}
	return n
}

// generateSequence expands a numeric or single-letter alphabetic sequence,
// applying zero-padding when either source endpoint is padded.
func generateSequence(parts []string, alpha bool) []string {
	x := parseSeqNumber(parts[0])
	y := parseSeqNumber(parts[1])
	width := len(parts[0])
	if len(parts[1]) > width {
		width = len(parts[1])
	}

	step := 1
	if len(parts) == 3 {
		step = parseSeqNumber(parts[2])
		if step < 0 {
			step = -step
		}
	}
	if step == 0 {
		step = 1
	}

	reverse := y < x
	if reverse {
		step = -step
	}

	pad := false
	for _, p := range parts {
		if isPadded(p) {
			pad = true
			break
		}
	}

	var out []string
	for i := x; (reverse && i >= y) || (!reverse && i <= y); i += step {
		if alpha {
			if i < 0 || i > 0x10FFFF {
				continue
			}
			c := byte(i)
			if c == '\\' {
				continue
			}
			out = append(out, string(c))
			continue
		}

		s := strconv.Itoa(i)
		if pad {
			// The sign counts toward the padded width, so "-1" padded to
			// width 3 is "-01", not "-001".
			if need := width - len(s); need > 0 {
				if strings.HasPrefix(s, "-") {
					s = "-" + strings.Repeat("0", need) + s[1:]
				} else {
					s = strings.Repeat("0", need) + s
				}
			}
		}
		out = append(out, s)
	}
	return out
}

// braceExpandInternal is the recursive core of expandBraces, operating on a
// brace-escaped string; isTop drops every empty non-sequence expansion only
// at the outermost call, matching original_source's reference semantics.
func braceExpandInternal(s string, isTop bool) []string {
	pre, body, post, ok := braceSplit(s)
	if !ok {
		return []string{s}
	}

	var postExpansions []string
	if post == "" {
		postExpansions = []string{""}
	} else {
		postExpansions = braceExpandInternal(post, false)
	}

	if strings.HasSuffix(pre, "$") {
		out := make([]string, 0, len(postExpansions))
		for _, p := range postExpansions {
			out = append(out, pre+"{"+body+"}"+p)
		}
		return out
	}

	numeric := isNumericSequence(body)
	alpha := isAlphaSequence(body)
	sequence := numeric || alpha
	hasComma := strings.Contains(body, ",")

	if !sequence && !hasComma {
		if strings.Contains(post, ",") && strings.Contains(post, "}") {
			return braceExpandInternal(pre+"{"+body+escClose+post, isTop)
		}
		return []string{s}
	}

	var parts []string
	if sequence {
		seqParts := strings.Split(body, "..")
		parts = generateSequence(seqParts, alpha)
	} else {
		commaParts := braceCommaParts(body)
		if len(commaParts) == 1 {
			expanded := braceExpandInternal(commaParts[0], false)
			if len(expanded) == 1 {
				out := make([]string, 0, len(postExpansions))
				for _, p := range postExpansions {
					out = append(out, pre+"{"+expanded[0]+"}"+p)
				}
				return out
			}
			for _, e := range expanded {
				parts = append(parts, "{"+e+"}")
			}
		} else {
			for _, p := range commaParts {
				parts = append(parts, braceExpandInternal(p, false)...)
			}
		}
	}

	out := make([]string, 0, len(parts)*len(postExpansions))
	for _, part := range parts {
		for _, postExp := range postExpansions {
			expansion := pre + part + postExp
			if !isTop || sequence || expansion != "" {
				out = append(out, expansion)
			}
		}
	}
	return out
}
