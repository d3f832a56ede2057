// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathrules

package globwalk

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Future is a handle to an asynchronous Glob call's eventual result, the Go
// analogue of a promise-returning glob() entry point.
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error
}

func newFuture[T any](fn func() (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		f.val, f.err = fn()
		close(f.done)
	}()
	return f
}

// Wait blocks until the underlying call finishes and returns its result.
func (f *Future[T]) Wait() (T, error) {
	<-f.done
	return f.val, f.err
}

// Glob runs GlobSync on its own goroutine and returns a handle to the result.
func Glob(patterns []string, opts Options) *Future[[]string] {
	return newFuture(func() ([]string, error) {
		return GlobSync(patterns, opts)
	})
}

// GlobSync resolves one or more glob patterns against the filesystem,
// returning matched paths.
func GlobSync(patterns []string, opts Options) ([]string, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	cwd := opts.Cwd
	if cwd == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolve cwd: %w", err)
		}
		cwd = wd
	}
	if opts.Absolute {
		if abs, absErr := filepath.Abs(cwd); absErr == nil {
			cwd = abs
		}
		if real, realErr := filepath.EvalSymlinks(cwd); realErr == nil {
			cwd = real
		}
	}

	maxDepth := -1
	if opts.MaxDepth != nil {
		if *opts.MaxDepth < 0 {
			return []string{}, nil
		}
		maxDepth = *opts.MaxDepth
	}

	flags := opts.compileFlags()

	var compiled []*Pattern
	for _, raw := range patterns {
		if raw == "" {
			continue
		}
		rawHasSlash := strings.Contains(raw, "/")

		expanded := []string{raw}
		if !opts.NoBrace {
			expanded = expandBraces(raw)
		}

		for _, one := range expanded {
			if opts.MatchBase && !rawHasSlash && !strings.Contains(one, "/") {
				one = "**/" + one
			}
			pat, err := defaultCache.getOrCompile(one, flags)
			if err != nil {
				return nil, err
			}
			compiled = append(compiled, pat)
		}
	}

	ignoreFilter, err := newIgnoreFilter(opts.ignorePatterns())
	if err != nil {
		return nil, err
	}

	backend := selectBackend(&opts)

	hint := resultSizeHint(compiled)
	seen := make(map[string]bool, hint)
	results := make([]string, 0, hint)

	for _, pat := range compiled {
		matches, err := runPattern(pat, cwd, &opts, ignoreFilter, maxDepth, backend)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				results = append(results, m)
			}
		}
	}

	if !opts.resolvedIncludeChildMatches() {
		results = suppressChildMatches(results)
	}

	return results, nil
}

// runPattern walks the subtree one compiled pattern could possibly match and
// returns every hit, formatted per Options.
func runPattern(pat *Pattern, cwd string, opts *Options, ignoreFilter *IgnoreFilter, maxDepth int, backend walkFunc) ([]string, error) {
	base := cwd
	if pat.IsAbsolute() {
		if opts.Root != "" {
			base = opts.Root
		} else {
			base = "/"
		}
	}

	prefixSegs := pat.LiteralPrefixSegments()
	startDir := base
	for _, seg := range prefixSegs {
		startDir = joinPath(startDir, seg)
	}

	if !pat.HasMagic() && !pat.IsRecursive() {
		return matchLiteralPattern(pat, startDir, prefixSegs, opts)
	}

	info, err := os.Stat(startDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, nil
	}

	startIdx := len(prefixSegs)
	var out []string

	if len(prefixSegs) == 0 && !opts.NoDir && pat.MatchesRemainder("", true) {
		rootEntry := WalkEntry{RelPath: "", AbsPath: startDir, Name: "", IsDir: true, Depth: 0}
		out = append(out, formatResult(rootEntry, opts))
	}

	visit := func(entry WalkEntry) (bool, error) {
		segs := strings.Split(entry.RelPath, "/")

		if !opts.Dot && isDotFile(entry.Name) {
			remainder := entry.RelPath
			if len(prefixSegs) > 0 {
				remainder = joinPath(strings.Join(prefixSegs, "/"), entry.RelPath)
			}
			if !pat.AllowsDotfile(remainder) {
				return false, nil
			}
		}

		if !ignoreFilter.Empty() {
			relFromCwd := entry.RelPath
			if len(prefixSegs) > 0 {
				relFromCwd = joinPath(strings.Join(prefixSegs, "/"), entry.RelPath)
			}
			if ignoreFilter.ShouldIgnore(relFromCwd, entry.AbsPath, entry.IsDir) {
				return false, nil
			}
			if entry.IsDir && ignoreFilter.ChildrenIgnored(relFromCwd, entry.AbsPath) {
				if m := matchEntry(pat, prefixSegs, entry, opts); m != "" {
					out = append(out, m)
				}
				return false, nil
			}
		}

		if entry.IsDir {
			full := append(append([]string{}, prefixSegs...), segs...)
			if !pat.CouldMatchFrom(0, full) {
				return false, nil
			}
		}

		if m := matchEntry(pat, prefixSegs, entry, opts); m != "" {
			out = append(out, m)
		}

		return true, nil
	}

	effectiveDepth := maxDepth
	if effectiveDepth >= 0 {
		effectiveDepth -= startIdx
		if effectiveDepth < 0 {
			effectiveDepth = 0
		}
	}
	if pd := pat.MaxDepth(); pd >= 0 {
		remaining := pd - startIdx
		if remaining < 0 {
			remaining = 0
		}
		if effectiveDepth < 0 || remaining < effectiveDepth {
			effectiveDepth = remaining
		}
	}

	if err := backend(startDir, effectiveDepth, opts.Follow, visit); err != nil {
		return nil, err
	}
	return out, nil
}

// matchLiteralPattern handles a pattern with no magic or globstar anywhere:
// it names exactly one path, so a single stat replaces a full walk.
func matchLiteralPattern(pat *Pattern, startDir string, prefixSegs []string, opts *Options) ([]string, error) {
	info, err := os.Lstat(startDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	isDir := info.IsDir()
	if info.Mode()&os.ModeSymlink != 0 {
		if real, statErr := os.Stat(startDir); statErr == nil {
			isDir = real.IsDir()
		}
	}
	if pat.RequiresDir() && !isDir {
		return nil, nil
	}
	if opts.NoDir && isDir {
		return nil, nil
	}

	name := ""
	if len(prefixSegs) > 0 {
		name = prefixSegs[len(prefixSegs)-1]
	}
	entry := WalkEntry{
		RelPath: strings.Join(prefixSegs, "/"),
		AbsPath: startDir,
		Name:    name,
		IsDir:   isDir,
		Depth:   len(prefixSegs),
	}
	return []string{formatResult(entry, opts)}, nil
}

// resultSizeHint sizes the seen-set and results slice from the deepest
// pattern: 16 at depth 0, 64 and 128 at depths 1 and 2, 256 for anything
// deeper or recursive.
func resultSizeHint(patterns []*Pattern) int {
	depth := 0
	for _, p := range patterns {
		d := p.MaxDepth()
		if d < 0 {
			return 256
		}
		if d > depth {
			depth = d
		}
	}
	switch depth {
	case 0:
		return 16
	case 1:
		return 64
	case 2:
		return 128
	default:
		return 256
	}
}

// matchEntry tests one walked entry against the pattern and, on a hit,
// returns its formatted result path; it returns "" on no match.
func matchEntry(pat *Pattern, prefixSegs []string, entry WalkEntry, opts *Options) string {
	// A symlink to a directory counts as a directory only when the walk
	// follows symlinks; otherwise it is a leaf and NoDir keeps it.
	if opts.NoDir && entry.IsDir && (!entry.IsSymlink || opts.Follow) {
		return ""
	}

	remainder := entry.RelPath
	if len(prefixSegs) > 0 {
		remainder = joinPath(strings.Join(prefixSegs, "/"), entry.RelPath)
	}

	matched, ok := pat.MatchesFast(remainder)
	if ok {
		if matched && pat.RequiresDir() && !entry.IsDir {
			matched = false
		}
	} else {
		matched = pat.MatchesRemainder(remainder, entry.IsDir)
	}
	if !matched {
		return ""
	}
	// Results are relative to cwd, so the stripped walk-root prefix is
	// prepended again before formatting.
	entry.RelPath = remainder
	return formatResult(entry, opts)
}

// formatResult applies the output-shape options (Absolute, Posix, Mark,
// DotRelative) to one matched entry.
func formatResult(entry WalkEntry, opts *Options) string {
	path := entry.RelPath
	if path == "" {
		path = "."
	}
	if opts.Absolute {
		path = entry.AbsPath
		if opts.resolvedPlatform() == PlatformWindows {
			path = stripWindowsExtendedPrefix(normalizeSeparator(path))
		}
	}
	if opts.Posix {
		path = filepath.ToSlash(path)
	}
	if opts.Mark && entry.IsDir && !strings.HasSuffix(path, "/") {
		path += "/"
	}
	if opts.DotRelative && !opts.Absolute && path != "." && !strings.HasPrefix(path, "../") && !strings.HasPrefix(path, "./") {
		path = "./" + path
	}
	return path
}

// suppressChildMatches drops any result whose parent directory is also
// present in the result set (Options.IncludeChildMatches == false).
func suppressChildMatches(results []string) []string {
	set := make(map[string]bool, len(results))
	for _, r := range results {
		set[trimTrailingSlash(r)] = true
	}
	out := make([]string, 0, len(results))
	for _, r := range results {
		base := trimTrailingSlash(r)
		parent := filepath.ToSlash(filepath.Dir(base))
		if parent != "." && parent != base && set[parent] {
			continue
		}
		out = append(out, r)
	}
	return out
}

func trimTrailingSlash(s string) string {
	if len(s) > 1 && strings.HasSuffix(s, "/") {
		return s[:len(s)-1]
	}
	return s
}
