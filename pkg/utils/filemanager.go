// =============================================================================
// Calculate Sales - File Manager Utility
// =============================================================================
//
// This module provides the raw file operations the pipeline is built on:
//   - Directory listing (candidate record files)
//   - Reading all lines of a text file, decoded to UTF-8
//   - Writing lines to a text file
//   - Directory management
//
// Every handle opened here is closed before the function returns, on the
// success path and on every error path.
//
// =============================================================================

package utils

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ginjaninja78/calculate-sales/internal/encoding"
)

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager handles file operations for one run.
type FileManager struct {
	// Charset is the input charset passed to encoding.NewUTF8Reader.
	// Output is always written as UTF-8.
	Charset string
}

// NewFileManager creates a new FileManager reading inputs with the given charset.
func NewFileManager(charset string) *FileManager {
	if charset == "" {
		charset = encoding.Auto
	}
	return &FileManager{Charset: charset}
}

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// EnsureDir creates dir if it doesn't exist.
func (fm *FileManager) EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// =============================================================================
// FILE DISCOVERY
// =============================================================================

// ListDir returns the entries of dir sorted by name.
//
// Symlinks are resolved, so a link to a regular file is reported as a regular
// file. Links that cannot be resolved are reported as-is.
func (fm *FileManager) ListDir(dir string) ([]fs.DirEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	for i, entry := range entries {
		if entry.Type()&fs.ModeSymlink == 0 {
			continue
		}
		info, err := os.Stat(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		entries[i] = fs.FileInfoToDirEntry(renamedInfo{FileInfo: info, name: entry.Name()})
	}

	return entries, nil
}

// renamedInfo keeps the link name while reporting the target's mode.
type renamedInfo struct {
	fs.FileInfo
	name string
}

func (r renamedInfo) Name() string { return r.name }

// =============================================================================
// LINE I/O
// =============================================================================

// ReadLines reads every line of the file at path.
//
// Lines are split on LF with an optional preceding CR; a trailing newline does
// not produce an extra empty line.
func (fm *FileManager) ReadLines(path string) (lines []string, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close file: %w", cerr)
		}
	}()

	reader, err := encoding.NewUTF8Reader(file, fm.Charset)
	if err != nil {
		return nil, fmt.Errorf("failed to decode file: %w", err)
	}

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return lines, nil
}

// WriteLines writes lines to the file at path, each terminated by a newline.
// An existing file is truncated. A failure can leave the file partially written.
func (fm *FileManager) WriteLines(path string, lines []string) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close file: %w", cerr)
		}
	}()

	writer := bufio.NewWriter(file)
	for _, line := range lines {
		if _, err := writer.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("failed to write file: %w", err)
		}
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush file: %w", err)
	}

	return nil
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// FileExists reports whether path exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}
