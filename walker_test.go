// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathrules

package globwalk

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func collectEntries(t *testing.T, root string, maxDepth int, follow bool) []WalkEntry {
	t.Helper()
	var got []WalkEntry
	err := portableWalk(root, maxDepth, follow, func(e WalkEntry) (bool, error) {
		got = append(got, e)
		return true, nil
	})
	if err != nil {
		t.Fatalf("portableWalk error: %v", err)
	}
	return got
}

func relPaths(entries []WalkEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.RelPath)
	}
	sort.Strings(out)
	return out
}

func TestPortableWalkDepthCap(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	mustMkdirAll(t, filepath.Join(root, "a", "b", "c"))
	mustWriteFile(t, filepath.Join(root, "a", "b", "c", "deep.txt"), "x")

	got := collectEntries(t, root, 1, false)
	want := []string{"a"}
	if !equalStringSlices(relPaths(got), want) {
		t.Fatalf("depth-capped walk = %v, want %v", relPaths(got), want)
	}
}

func TestPortableWalkDepthCapZero(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	mustMkdirAll(t, filepath.Join(root, "a"))
	mustWriteFile(t, filepath.Join(root, "a", "leaf.txt"), "x")

	// max_depth:0 is a legal value meaning "root only": no entry,
	// including direct children of root, may be visited.
	got := collectEntries(t, root, 0, false)
	if len(got) != 0 {
		t.Fatalf("expected no entries with maxDepth=0, got %v", relPaths(got))
	}
}

func TestPortableWalkUncapped(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	mustMkdirAll(t, filepath.Join(root, "a", "b"))
	mustWriteFile(t, filepath.Join(root, "a", "b", "leaf.txt"), "x")

	got := collectEntries(t, root, -1, false)
	want := []string{"a", "a/b", "a/b/leaf.txt"}
	if !equalStringSlices(relPaths(got), want) {
		t.Fatalf("uncapped walk = %v, want %v", relPaths(got), want)
	}
}

func TestPortableWalkSymlinkNotFollowedByDefault(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	realDir := filepath.Join(root, "real")
	mustMkdirAll(t, realDir)
	mustWriteFile(t, filepath.Join(realDir, "inside.txt"), "x")

	link := filepath.Join(root, "link")
	if err := os.Symlink(realDir, link); err != nil {
		t.Skipf("symlinks unsupported in this environment: %v", err)
	}

	got := collectEntries(t, root, -1, false)
	for _, e := range got {
		if e.RelPath == "link" {
			if !e.IsSymlink || !e.IsDir {
				t.Fatalf("expected link to be reported as a symlink-to-dir, got %+v", e)
			}
		}
		if e.RelPath == "link/inside.txt" {
			t.Fatalf("symlinked directory should not be descended when follow=false")
		}
	}
}

func TestPortableWalkSymlinkFollowed(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	realDir := filepath.Join(root, "real")
	mustMkdirAll(t, realDir)
	mustWriteFile(t, filepath.Join(realDir, "inside.txt"), "x")

	link := filepath.Join(root, "link")
	if err := os.Symlink(realDir, link); err != nil {
		t.Skipf("symlinks unsupported in this environment: %v", err)
	}

	got := collectEntries(t, root, -1, true)
	found := false
	for _, e := range got {
		if e.RelPath == "link/inside.txt" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected link/inside.txt when follow=true, got %v", relPaths(got))
	}
}

func TestPortableWalkBrokenSymlinkEmittedNotFailed(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	link := filepath.Join(root, "dangling")
	if err := os.Symlink(filepath.Join(root, "does-not-exist"), link); err != nil {
		t.Skipf("symlinks unsupported in this environment: %v", err)
	}

	got := collectEntries(t, root, -1, true)
	var entry *WalkEntry
	for i := range got {
		if got[i].RelPath == "dangling" {
			entry = &got[i]
		}
	}
	if entry == nil {
		t.Fatalf("expected the broken symlink to be emitted, got %v", relPaths(got))
	}
	if !entry.IsSymlink || entry.IsDir {
		t.Fatalf("broken symlink should report IsSymlink=true, IsDir=false, got %+v", entry)
	}
}

func TestPortableWalkSwallowsUnreadableDirectory(t *testing.T) {
	t.Parallel()
	if os.Geteuid() == 0 {
		t.Skip("permission denial is not enforced for root")
	}
	root := t.TempDir()
	blocked := filepath.Join(root, "blocked")
	mustMkdirAll(t, blocked)
	mustWriteFile(t, filepath.Join(blocked, "secret.txt"), "x")
	mustMkdirAll(t, filepath.Join(root, "visible"))

	if err := os.Chmod(blocked, 0o000); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	defer os.Chmod(blocked, 0o755)

	got := collectEntries(t, root, -1, false)
	want := []string{"blocked", "visible"}
	if !equalStringSlices(relPaths(got), want) {
		t.Fatalf("walk with an unreadable subtree = %v, want %v (walk should continue, not abort)", relPaths(got), want)
	}
}

func mustMkdirAll(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
}

func mustWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
