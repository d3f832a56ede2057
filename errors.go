// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathrules

package globwalk

import "errors"

// Sentinel errors returned by globwalk operations.
var (
	// ErrInvalidConfig indicates an Options combination rejected before any I/O.
	ErrInvalidConfig = errors.New("invalid glob configuration")
	// ErrInvalidPattern indicates a pattern that could not be compiled.
	ErrInvalidPattern = errors.New("invalid glob pattern")
	// ErrEmptyPattern indicates an empty raw pattern string was supplied where one is required.
	ErrEmptyPattern = errors.New("empty glob pattern")
)
