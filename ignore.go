// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathrules

package globwalk

import "strings"

// IgnoreFilter implements the walk-time exclusion list. Patterns
// are sorted at construction time into four disjoint bags so that a walk's
// hot path never re-parses "/**" suffixes or root markers per entry.
//
// Ignore matching is always case-sensitive and dot-aware, independent of the
// Options that govern the glob patterns it filters.
type IgnoreFilter struct {
	relEntry    []*Pattern // no root marker; matches the entry itself
	relChildren []*Pattern // no root marker, "/**" suffix; matches only descendants
	absEntry    []*Pattern // root marker; matches the entry itself
	absChildren []*Pattern // root marker, "/**" suffix; matches only descendants

	scratch []byte // reused to build the trailing-slash match candidate
}

// ignoreFlags is fixed regardless of the caller's glob Options: ignore
// patterns are always case-sensitive.
var ignoreFlags = CompileFlags{Platform: PlatformLinux}

// isAbsoluteIgnoreText classifies an ignore pattern's root:
// starts with "/", "X:", or "//" => absolute; else relative.
func isAbsoluteIgnoreText(s string) bool {
	if strings.HasPrefix(s, "/") {
		return true
	}
	return len(s) >= 2 && isASCIIAlpha(s[0]) && s[1] == ':'
}

// newIgnoreFilter compiles a set of raw ignore pattern strings.
// Each raw entry is brace-expanded like any other pattern before compiling.
// A pattern ending in "/**" contributes two compiled patterns: a children
// pattern on the prefix (so the walker can prune the subtree outright) and
// an entry pattern on the full original text, so the directory itself is
// also ignored.
func newIgnoreFilter(raws []string) (*IgnoreFilter, error) {
	f := &IgnoreFilter{}
	for _, raw := range raws {
		if raw == "" {
			continue
		}
		for _, expanded := range expandBraces(raw) {
			absolute := isAbsoluteIgnoreText(expanded)

			if strings.HasSuffix(expanded, "/**") {
				prefix := strings.TrimSuffix(expanded, "/**")
				if prefix == "" {
					prefix = "**"
				}

				childPat, err := compilePattern(prefix, ignoreFlags)
				if err != nil {
					return nil, err
				}
				entryPat, err := compilePattern(expanded, ignoreFlags)
				if err != nil {
					return nil, err
				}

				if absolute {
					f.absChildren = append(f.absChildren, childPat)
					f.absEntry = append(f.absEntry, entryPat)
				} else {
					f.relChildren = append(f.relChildren, childPat)
					f.relEntry = append(f.relEntry, entryPat)
				}
				continue
			}

			pat, err := compilePattern(expanded, ignoreFlags)
			if err != nil {
				return nil, err
			}
			if absolute {
				f.absEntry = append(f.absEntry, pat)
			} else {
				f.relEntry = append(f.relEntry, pat)
			}
		}
	}
	return f, nil
}

// withTrailingSlash returns p + "/", reusing f's scratch buffer across
// calls so the per-entry slashed variant does not allocate.
func (f *IgnoreFilter) withTrailingSlash(p string) string {
	f.scratch = append(f.scratch[:0], p...)
	f.scratch = append(f.scratch, '/')
	return string(f.scratch)
}

func matchAnyIgnore(pats []*Pattern, plain, slashed string, isDir bool) bool {
	for _, p := range pats {
		if p.MatchesRemainder(plain, isDir) || p.MatchesRemainder(slashed, isDir) {
			return true
		}
	}
	return false
}

// ShouldIgnore reports whether the entry itself is excluded: true if any
// entry pattern matches either the raw path or the path with a trailing "/"
// appended.
func (f *IgnoreFilter) ShouldIgnore(relPath, absPath string, isDir bool) bool {
	if f.Empty() {
		return false
	}
	if matchAnyIgnore(f.relEntry, relPath, f.withTrailingSlash(relPath), isDir) {
		return true
	}
	absRel := strings.TrimPrefix(normalizeSeparator(absPath), "/")
	return matchAnyIgnore(f.absEntry, absRel, f.withTrailingSlash(absRel), isDir)
}

// ChildrenIgnored reports whether a directory's contents should be skipped
// entirely, letting the walker prune the subtree without opening it.
func (f *IgnoreFilter) ChildrenIgnored(relPath, absPath string) bool {
	if f.Empty() {
		return false
	}
	if matchAnyIgnore(f.relChildren, relPath, f.withTrailingSlash(relPath), true) {
		return true
	}
	absRel := strings.TrimPrefix(normalizeSeparator(absPath), "/")
	return matchAnyIgnore(f.absChildren, absRel, f.withTrailingSlash(absRel), true)
}

// Empty reports whether the filter has no patterns at all, letting callers
// skip allocation of per-entry candidate slices on the common no-ignore path.
func (f *IgnoreFilter) Empty() bool {
	return f == nil || (len(f.relEntry) == 0 && len(f.relChildren) == 0 &&
		len(f.absEntry) == 0 && len(f.absChildren) == 0)
}
