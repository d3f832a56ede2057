// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathrules

package globwalk

// Platform identifies the host platform a pattern was compiled for.
// It influences root parsing and the default of NoCase.
type Platform uint8

const (
	// PlatformAuto derives platform behavior from runtime.GOOS.
	PlatformAuto Platform = iota
	// PlatformLinux forces POSIX root parsing and case-sensitive defaults.
	PlatformLinux
	// PlatformDarwin forces POSIX root parsing and case-insensitive defaults.
	PlatformDarwin
	// PlatformWindows forces drive/UNC root parsing and case-insensitive defaults.
	PlatformWindows
)

// RootKind classifies the root marker a pattern begins with.
type RootKind uint8

const (
	// RootNone means the pattern has no root marker; it is relative.
	RootNone RootKind = iota
	// RootUnix means the pattern begins with a single "/".
	RootUnix
	// RootWindowsDrive means the pattern begins with "X:/".
	RootWindowsDrive
	// RootUNC means the pattern begins with "//host/share/".
	RootUNC
	// RootDevice means the pattern begins with the "//?/" or "//./" extended prefix.
	RootDevice
)

// FastPathKind classifies a compiled pattern's fast-path matching strategy.
type FastPathKind uint8

const (
	// FastPathNone means no fast-path classifier applies; use the full regex.
	FastPathNone FastPathKind = iota
	// FastPathExtensionOnly matches "*.ext" shapes by comparing file extension.
	FastPathExtensionOnly
	// FastPathExtensionSet matches "*.{ext1,ext2,...}" shapes.
	FastPathExtensionSet
	// FastPathLiteralName matches a single literal path segment by name.
	FastPathLiteralName
	// FastPathRecursiveExtension matches "**/*.ext" shapes.
	FastPathRecursiveExtension
	// FastPathRecursiveExtensionSet matches "**/*.{ext1,ext2,...}" shapes.
	FastPathRecursiveExtensionSet
)

// FastPath is the detected fast-path classification and its parameters.
type FastPath struct {
	Kind FastPathKind
	// Ext is used by FastPathExtensionOnly / FastPathRecursiveExtension.
	Ext string
	// Exts is used by FastPathExtensionSet / FastPathRecursiveExtensionSet.
	Exts []string
	// Name is used by FastPathLiteralName.
	Name string
}

// segKind discriminates the three compiled segment variants.
type segKind uint8

const (
	segLiteral segKind = iota
	segMagic
	segGlobstar
)

// segmentMatcher abstracts over the two regex engines a Magic segment may use.
// Most segments compile with the standard library's RE2 engine; segments
// containing a "!(...)" extglob exclusion need real lookahead and compile
// with regexp2 instead. See DESIGN.md for why both exist.
type segmentMatcher interface {
	MatchString(string) bool
}

// segment is one compiled path segment: literal, magic, or globstar.
type segment struct {
	kind    segKind
	literal string         // valid when kind == segLiteral
	re      segmentMatcher // valid when kind == segMagic
	raw     string         // original segment source text, used by fast-path detection
}

// CompileFlags is the full set of flags that affect pattern compilation;
// it is also the non-text part of the compiled-pattern cache key.
type CompileFlags struct {
	NoExt                bool
	NoCase               bool
	NoBrace              bool
	NoGlobstar           bool
	WindowsPathsNoEscape bool
	Platform             Platform
}

// Pattern is one compiled glob pattern; it is immutable after construction
// and safe to share by reference across concurrent callers.
type Pattern struct {
	raw          string
	segments     []segment
	fullRegex    segmentMatcher
	rootKind     RootKind
	rootText     string
	isAbsolute   bool
	requiresDir  bool
	hasMagic     bool
	fastPath     FastPath
	flags        CompileFlags
	isRecursive  bool
	invalidRegex bool // set when compilation fell back to a never-matching regex
}

// Raw returns the original pattern source text this Pattern was compiled from.
func (p *Pattern) Raw() string { return p.raw }

// HasMagic reports whether the pattern contains unescaped wildcard syntax.
func (p *Pattern) HasMagic() bool { return p.hasMagic }

// IsAbsolute reports whether the pattern is rooted.
func (p *Pattern) IsAbsolute() bool { return p.isAbsolute }

// RequiresDir reports whether the source pattern ended in a path separator.
func (p *Pattern) RequiresDir() bool { return p.requiresDir }

// Root returns the root marker the pattern begins with ("/", "X:/",
// "//host/share/", "//?/dev/"), or "" for a relative pattern.
func (p *Pattern) Root() string { return p.rootText }

// RootKind classifies the pattern's root marker.
func (p *Pattern) RootKind() RootKind { return p.rootKind }

// neverMatcher is the fallback for a Pattern whose regex failed to compile:
// an internal invariant break degrades to "never matches" rather than a panic.
type neverMatcher struct{}

func (neverMatcher) MatchString(string) bool { return false }

var neverMatch segmentMatcher = neverMatcher{}
