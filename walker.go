// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathrules

package globwalk

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	mtwalk "github.com/MichaelTJones/walk"
)

// walkBackend selects which directory-traversal implementation a Glob call
// uses. backendAuto lets selectBackend pick per-host.
type walkBackend uint8

const (
	backendAuto walkBackend = iota
	backendPortable
	backendFastOS
	backendParallel
)

// WalkEntry is one directory-tree node produced by a walker backend.
type WalkEntry struct {
	RelPath   string
	AbsPath   string
	Name      string
	IsDir     bool
	IsSymlink bool
	Depth     int
}

// visitFunc is invoked once per entry. Returning descend=false prunes a
// directory's subtree without the backend opening it, letting the engine's
// CouldMatchFrom pruning skip I/O entirely.
type visitFunc func(WalkEntry) (descend bool, err error)

// walkFunc is the shape every backend implements; maxDepth < 0 means unbounded.
type walkFunc func(root string, maxDepth int, follow bool, visit visitFunc) error

// fastBackend is installed by whichever OS-specific file (walker_linux.go,
// walker_darwin.go, walker_other.go) is compiled for the build target; it is
// nil on platforms with no syscall-level fast path.
var fastBackend walkFunc

// selectBackend resolves the effective backend for one Glob call.
func selectBackend(o *Options) walkFunc {
	switch o.forceBackend {
	case backendPortable:
		return portableWalk
	case backendFastOS:
		if fastBackend != nil {
			return fastBackend
		}
		return portableWalk
	case backendParallel:
		return parallelWalk
	}

	if o.Parallel {
		return parallelWalk
	}
	if fastBackend != nil {
		return fastBackend
	}
	return portableWalk
}

// portableWalk is the baseline backend, built on os.ReadDir; it is always
// available and is the fallback whenever a faster backend is absent.
func portableWalk(root string, maxDepth int, follow bool, visit visitFunc) error {
	return portableWalkDir(root, "", 0, maxDepth, follow, visit)
}

func portableWalkDir(absDir, relDir string, depth, maxDepth int, follow bool, visit visitFunc) error {
	entries, err := os.ReadDir(absDir)
	if err != nil {
		// Permission denied or the directory vanished mid-walk: skip the
		// subtree and continue the walk.
		return nil
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, de := range entries {
		name := de.Name()
		absPath := joinPath(absDir, name)
		relPath := joinPath(relDir, name)

		isSymlink := de.Type()&os.ModeSymlink != 0
		isDir := de.IsDir()
		if isSymlink {
			if info, statErr := os.Stat(absPath); statErr == nil {
				isDir = info.IsDir()
			} else {
				isDir = false
			}
		}

		entry := WalkEntry{RelPath: relPath, AbsPath: absPath, Name: name, IsDir: isDir, IsSymlink: isSymlink, Depth: depth + 1}

		// An over-depth entry is neither visited nor descended into.
		if maxDepth >= 0 && entry.Depth > maxDepth {
			continue
		}

		descend, err := visit(entry)
		if err != nil {
			return err
		}
		if isDir && descend && (!isSymlink || follow) {
			if maxDepth < 0 || depth+1 < maxDepth {
				if err := portableWalkDir(absPath, relPath, depth+1, maxDepth, follow, visit); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// parallelWalk fans directory reads out across goroutines with the
// MichaelTJones/walk BFS walker (see DESIGN.md for the grounding source),
// serializing calls into visit with a mutex since the engine's dedupe and
// ordering logic assumes single-threaded delivery. Entries are classified
// from the walker's Lstat results, so a symlink to a directory is reported
// as a non-directory leaf and is never descended, even when follow is set.
func parallelWalk(root string, maxDepth int, follow bool, visit visitFunc) error {
	var mu sync.Mutex
	var visitErr error

	walkFn := func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// Permission denied or a vanished entry: skip this subtree rather
			// than aborting the whole walk.
			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if path == root {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)
		depth := strings.Count(rel, "/") + 1

		if maxDepth >= 0 && depth > maxDepth {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		isSymlink := info.Mode()&os.ModeSymlink != 0
		isDir := info.IsDir()
		entry := WalkEntry{RelPath: rel, AbsPath: path, Name: info.Name(), IsDir: isDir, IsSymlink: isSymlink, Depth: depth}

		mu.Lock()
		descend, verr := visit(entry)
		if verr != nil {
			visitErr = verr
		}
		mu.Unlock()

		if verr != nil {
			return verr
		}
		if isDir && !descend {
			return filepath.SkipDir
		}
		if isDir && isSymlink && !follow {
			return filepath.SkipDir
		}
		return nil
	}

	if err := mtwalk.Walk(root, walkFn); err != nil {
		return err
	}
	return visitErr
}
