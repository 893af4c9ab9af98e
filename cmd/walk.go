package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// binarySniffLen is how many leading bytes are inspected by the binary-file
// heuristic.
const binarySniffLen = 1024

// collectFiles expands the command-line targets into the ordered list of
// files to scan. Files named explicitly are always included; directories
// are walked recursively with the extension allow-list applied (an empty
// list disables filtering). Unreadable directories are reported to stderr
// and skipped. Already-visited paths are scanned once.
func collectFiles(targets, exts []string) []string {
	visited := make(map[string]bool)
	var files []string
	for _, target := range targets {
		info, err := os.Stat(target)
		if err != nil {
			fmt.Fprintf(os.Stderr, "typofind: cannot access %s: %v\n", target, err)
			continue
		}
		if info.IsDir() {
			files = walkDir(target, exts, visited, files)
			continue
		}
		if clean := filepath.Clean(target); !visited[clean] {
			visited[clean] = true
			files = append(files, target)
		}
	}
	return files
}

func walkDir(dir string, exts []string, visited map[string]bool, files []string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "typofind: cannot read directory %s: %v\n", dir, err)
		return files
	}
	paths := make([]string, 0, len(entries))
	isDir := make(map[string]bool, len(entries))
	for _, e := range entries {
		p := filepath.Join(dir, e.Name())
		paths = append(paths, p)
		isDir[p] = e.IsDir()
	}
	sortPaths(paths)
	for _, p := range paths {
		if isDir[p] {
			files = walkDir(p, exts, visited, files)
			continue
		}
		if !extensionAllowed(p, exts) {
			continue
		}
		if clean := filepath.Clean(p); !visited[clean] {
			visited[clean] = true
			files = append(files, p)
		}
	}
	return files
}

// sortPaths orders paths lexicographically with the path separator treated
// as lower than any other byte, so a directory's entries sort contiguously
// before sibling names that share its prefix ("a/z" before "a-b").
func sortPaths(paths []string) {
	sort.Slice(paths, func(i, j int) bool {
		return pathLess(paths[i], paths[j])
	})
}

func pathLess(a, b string) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		ca, cb := pathRank(a[i]), pathRank(b[i])
		if ca != cb {
			return ca < cb
		}
	}
	return len(a) < len(b)
}

func pathRank(c byte) int {
	if c == os.PathSeparator || c == '/' {
		return -1
	}
	return int(c)
}

func extensionAllowed(path string, exts []string) bool {
	if len(exts) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, allowed := range exts {
		if !strings.HasPrefix(allowed, ".") {
			allowed = "." + allowed
		}
		if strings.ToLower(allowed) == ext {
			return true
		}
	}
	return false
}

// looksBinary applies the binary-file heuristic: any control byte other
// than tab, newline or carriage return in the first kilobyte marks the file
// as binary, and it is excluded from scanning.
func looksBinary(data []byte) bool {
	n := len(data)
	if n > binarySniffLen {
		n = binarySniffLen
	}
	for i := 0; i < n; i++ {
		b := data[i]
		if b < 0x20 && b != '\t' && b != '\n' && b != '\r' {
			return true
		}
	}
	return false
}
