//go:build darwin

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathrules

package globwalk

// No getattrlistbulk fast path is wired here: golang.org/x/sys/unix does not
// expose a ready binding for it, and hand-rolling the attribute-list buffer
// layout without a Darwin host to verify it against risked a backend that
// silently misreads directory entries (see DESIGN.md). Darwin keeps the
// portable backend as its baseline and relies on the parallel backend in
// walker.go for the BFS fan-out case instead.
func init() {
	fastBackend = nil
}
