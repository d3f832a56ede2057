// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathrules

/*
Package globwalk implements shell-style glob matching and filesystem
traversal, with semantics compatible with the widely-used JavaScript `glob`
package (v13): brace expansion, extglobs, character classes, globstar, and
a fast-path classifier for common pattern shapes, fused with a depth-first
directory walker.

Basic flow:
  - call GlobSync (or Glob for an async handle) with one or more raw pattern
    strings and an Options value
  - patterns are brace-expanded, compiled, and cached in a process-wide LRU
    keyed on pattern text plus every flag that affects compilation
  - the engine derives a walk root and depth budget from the compiled
    patterns, prunes subtrees the patterns cannot match, and filters emitted
    entries through an ignore list before formatting results

Escape / Unescape / HasMagic operate on raw pattern text without touching
the filesystem. AnalyzePattern and AnalyzePatterns return advisory Warning
values for pattern shapes that compile but rarely do what the author
intended; they never change match behavior.
*/
package globwalk
