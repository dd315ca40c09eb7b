// Package corpus discovers and streams the input partitions of a run.
package corpus

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Scanner buffer cap; question bodies can make individual lines large.
const maxLineBytes = 4 * 1024 * 1024

// Partition is one input file attributed to a single site. The site name
// is the file name with the .jsonl extension stripped, so partitions in
// different runs (or duplicated files) that share a stem merge into the
// same site downstream.
type Partition struct {
	Site string
	Path string
}

// Discover lists the .jsonl partitions directly inside dir, sorted by path
// so runs enumerate work in a stable order. Subdirectories and other file
// types are ignored. An empty directory yields an empty slice, not an
// error.
func Discover(dir string) ([]Partition, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list data directory %s: %w", dir, err)
	}

	partitions := make([]Partition, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".jsonl") {
			continue
		}
		partitions = append(partitions, Partition{
			Site: strings.TrimSuffix(entry.Name(), ".jsonl"),
			Path: filepath.Join(dir, entry.Name()),
		})
	}

	sort.Slice(partitions, func(i, j int) bool {
		return partitions[i].Path < partitions[j].Path
	})

	return partitions, nil
}

// EachLine streams the partition's raw lines through fn exactly once, in
// file order, passing the 1-based line number for diagnostics. The first
// error from fn stops the scan and is returned as-is; I/O failures are
// wrapped with the partition path.
func (p Partition) EachLine(fn func(lineNo int, line []byte) error) error {
	file, err := os.Open(p.Path)
	if err != nil {
		return fmt.Errorf("failed to open partition %s: %w", p.Path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := fn(lineNo, scanner.Bytes()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read partition %s: %w", p.Path, err)
	}

	return nil
}
