//go:build linux

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathrules

package globwalk

import (
	"os"
	"sort"
	"unsafe"

	"golang.org/x/sys/unix"
)

func init() {
	fastBackend = fastLinuxWalk
}

// fastLinuxWalk reads directories with raw getdents64 syscalls instead of
// os.ReadDir, skipping the per-entry Lstat that package os performs to fill
// in a full os.FileInfo for every name (grounded on the gogrep parallel
// walker's internal directory reader; see DESIGN.md).
func fastLinuxWalk(root string, maxDepth int, follow bool, visit visitFunc) error {
	return fastLinuxWalkDir(root, "", 0, maxDepth, follow, visit)
}

type linuxDirent struct {
	name  string
	dtype uint8
}

func fastLinuxWalkDir(absDir, relDir string, depth, maxDepth int, follow bool, visit visitFunc) error {
	fd, err := unix.Open(absDir, unix.O_RDONLY|unix.O_DIRECTORY|unix.O_CLOEXEC, 0)
	if err != nil {
		// Permission denied or the directory vanished mid-walk: skip the
		// subtree and continue the walk.
		return nil
	}
	defer unix.Close(fd)

	var raw []linuxDirent
	buf := make([]byte, 8*1024)

	for {
		n, err := unix.Getdents(fd, buf)
		if err != nil {
			// Swallow and use whatever entries were already read.
			break
		}
		if n <= 0 {
			break
		}
		pos := 0
		for pos < n {
			reclen := *(*uint16)(unsafe.Pointer(&buf[pos+16]))
			if reclen == 0 {
				break
			}
			dtype := buf[pos+18]
			nameBytes := buf[pos+19 : pos+int(reclen)]
			if idx := indexByteZero(nameBytes); idx >= 0 {
				nameBytes = nameBytes[:idx]
			}
			name := string(nameBytes)
			pos += int(reclen)
			if name == "." || name == ".." {
				continue
			}
			raw = append(raw, linuxDirent{name: name, dtype: dtype})
		}
	}

	sort.Slice(raw, func(i, j int) bool { return raw[i].name < raw[j].name })

	for _, e := range raw {
		absPath := joinPath(absDir, e.name)
		relPath := joinPath(relDir, e.name)

		isSymlink := e.dtype == unix.DT_LNK
		isDir := e.dtype == unix.DT_DIR
		if isSymlink || e.dtype == unix.DT_UNKNOWN {
			if info, statErr := os.Stat(absPath); statErr == nil {
				isDir = info.IsDir()
			}
			if e.dtype == unix.DT_UNKNOWN {
				if lst, lerr := os.Lstat(absPath); lerr == nil {
					isSymlink = lst.Mode()&os.ModeSymlink != 0
				}
			}
		}

		entry := WalkEntry{RelPath: relPath, AbsPath: absPath, Name: e.name, IsDir: isDir, IsSymlink: isSymlink, Depth: depth + 1}

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
				if err := fastLinuxWalkDir(absPath, relPath, depth+1, maxDepth, follow, visit); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func indexByteZero(b []byte) int {
	for i, c := range b {
		if c == 0 {
			return i
		}
	}
	return -1
}
