//go:build !linux && !darwin

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathrules

package globwalk

func init() {
	fastBackend = nil
}
