// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathrules

package globwalk

import (
	"fmt"
	"runtime"
)

// Options controls GlobSync/Glob behavior. Every field is optional; zero
// values fall back to the defaults documented per-field.
type Options struct {
	// Cwd is the start directory. Empty means the process working directory.
	Cwd string
	// Root resolves patterns that begin with "/". Empty means Cwd's volume root.
	Root string
	// Dot includes dot-prefixed names. Default false.
	Dot bool
	// NoBrace disables brace expansion; braces are matched literally.
	NoBrace bool
	// NoGlobstar treats "**" as "*".
	NoGlobstar bool
	// NoExt disables extglob syntax.
	NoExt bool
	// NoCase forces case-insensitive matching. If unset, it derives from Platform.
	NoCase *bool
	// MagicalBraces affects HasMagic only.
	MagicalBraces bool
	// Follow makes the walker descend through directory symlinks.
	Follow bool
	// MaxDepth bounds traversal depth. Negative means "return no results".
	MaxDepth *int
	// MatchBase prepends "**/" to any raw pattern with no "/".
	MatchBase bool
	// Absolute emits absolute paths.
	Absolute bool
	// DotRelative prepends "./" to relative results that do not start with "../".
	DotRelative bool
	// Mark appends "/" to directory results.
	Mark bool
	// NoDir excludes directory results.
	NoDir bool
	// Posix forces forward slashes in output.
	Posix bool
	// Stat, Realpath, WithFileTypes are advisory: they never change the match set.
	Stat          bool
	Realpath      bool
	WithFileTypes bool
	// Ignore lists patterns whose matches are excluded from the result.
	Ignore []string
	// IncludeChildMatches defaults to true; if explicitly set to false, suppresses
	// paths whose parent directory was also emitted.
	IncludeChildMatches *bool
	// Platform selects root-parsing and default-case-sensitivity behavior.
	Platform Platform
	// WindowsPathsNoEscape treats "\" purely as a separator, never as an escape.
	WindowsPathsNoEscape bool
	// AllowWindowsEscape is deprecated; false is equivalent to WindowsPathsNoEscape=true.
	AllowWindowsEscape *bool
	// Parallel opts into the parallel walker backend where one is available for the host OS.
	// That backend does not descend through directory symlinks, even with Follow set.
	Parallel bool

	// forceBackend overrides walker backend selection; test-only.
	forceBackend walkBackend
}

// resolvedPlatform returns the effective Platform, defaulting to the host OS.
func (o *Options) resolvedPlatform() Platform {
	if o.Platform != PlatformAuto {
		return o.Platform
	}
	switch runtime.GOOS {
	case "windows":
		return PlatformWindows
	case "darwin":
		return PlatformDarwin
	default:
		return PlatformLinux
	}
}

// resolvedNoCase applies the NoCase-derives-from-platform default.
func (o *Options) resolvedNoCase() bool {
	if o.NoCase != nil {
		return *o.NoCase
	}
	switch o.resolvedPlatform() {
	case PlatformDarwin, PlatformWindows:
		return true
	default:
		return false
	}
}

// resolvedIncludeChildMatches applies IncludeChildMatches's true default: a
// result whose parent directory also matched is suppressed only when the
// caller explicitly opts out.
func (o *Options) resolvedIncludeChildMatches() bool {
	if o.IncludeChildMatches == nil {
		return true
	}
	return *o.IncludeChildMatches
}

// resolvedWindowsPathsNoEscape applies the AllowWindowsEscape deprecation rule.
func (o *Options) resolvedWindowsPathsNoEscape() bool {
	if o.WindowsPathsNoEscape {
		return true
	}
	if o.AllowWindowsEscape != nil && !*o.AllowWindowsEscape {
		return true
	}
	return false
}

// compileFlags builds the CompileFlags tuple used as part of the cache key.
func (o *Options) compileFlags() CompileFlags {
	return CompileFlags{
		NoExt:                o.NoExt,
		NoCase:               o.resolvedNoCase(),
		NoBrace:              o.NoBrace,
		NoGlobstar:           o.NoGlobstar,
		WindowsPathsNoEscape: o.resolvedWindowsPathsNoEscape(),
		Platform:             o.resolvedPlatform(),
	}
}

// validate rejects known-bad option combinations before any I/O.
func (o *Options) validate() error {
	if o.MatchBase && o.NoGlobstar {
		return fmt.Errorf("%w: base matching requires globstar", ErrInvalidConfig)
	}
	if o.WithFileTypes && o.Absolute {
		return fmt.Errorf("%w: cannot set absolute and with_file_types:true", ErrInvalidConfig)
	}
	return nil
}

// HasMagic reports whether raw would be treated as containing glob magic
// under this Options set, honoring MagicalBraces: when false, a
// brace group that does not actually expand to more than one alternative is
// not counted as magic on its own.
func (o *Options) HasMagic(raw string) bool {
	flags := o.compileFlags()
	if hasNonBraceMagic(raw, flags) {
		return true
	}
	if flags.NoBrace {
		return false
	}
	start, end := findBalancedBrace(raw)
	if start < 0 || end <= start {
		return false
	}
	if o.MagicalBraces {
		return true
	}
	return len(expandBraces(raw)) > 1
}

// ignorePatterns normalizes the Ignore option to a slice, accepting the
// language-neutral "one string or many" caller shape.
func (o *Options) ignorePatterns() []string {
	return o.Ignore
}
