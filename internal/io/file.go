// Package ioutils provides file system and formatting utilities for picsum-dl.
//
// This package contains functions for:
//   - File writing
//   - Filename sanitization
//   - Directory creation
//   - Human-readable sizes and fixed-width cell truncation
//
// Failures are returned as errs.KindIO errors.
package ioutils

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/handiism/picsum-downloader/internal/errs"
	"github.com/mattn/go-runewidth"
)

var (
	invalidChars   = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	trailingDots   = regexp.MustCompile(`\.+$`)
	repeatedSpaces = regexp.MustCompile(`\s+`)
)

// WriteFile writes data to a file, creating it if necessary.
//
// The file is created with mode 0644. If the file already exists,
// it is truncated before writing.
//
// Parameters:
//   - ctx: Context for cancellation, checked before the write starts
//   - path: File path to write to
//   - data: Bytes to write
//
// Example:
//
//	err := WriteFile(ctx, "downloads/picsum_0001.jpg", img.Data)
func WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return errs.IO("write "+path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errs.IO("write "+path, err)
	}
	return nil
}

// SanitizeFileName removes or replaces characters that are invalid in file names.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars 0x00-0x1f) → underscore
//   - Trailing dots → removed (Windows limitation)
//   - Multiple whitespace → single space
//   - Trailing whitespace → removed
//
// Example:
//
//	SanitizeFileName("my/prefix_0001.jpg") // Returns "my_prefix_0001.jpg"
func SanitizeFileName(name string) string {
	name = invalidChars.ReplaceAllString(name, "_")
	name = trailingDots.ReplaceAllString(name, "")
	name = repeatedSpaces.ReplaceAllString(name, " ")
	return strings.TrimRight(name, " ")
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return errs.IO("create directory "+path, err)
	}
	return nil
}

var sizeUnits = []string{"B", "KB", "MB", "GB"}

// FormatFileSize renders a byte count with one decimal in 1024-based units.
//
//	FormatFileSize(0)       // "0.0 B"
//	FormatFileSize(1536)    // "1.5 KB"
//	FormatFileSize(1048576) // "1.0 MB"
func FormatFileSize(bytes int64) string {
	size := float64(bytes)
	unit := 0
	for size >= 1024 && unit < len(sizeUnits)-1 {
		size /= 1024
		unit++
	}
	return fmt.Sprintf("%.1f %s", size, sizeUnits[unit])
}

// Truncate fits s into width terminal cells, ending cut strings with "...".
// Shorter strings are returned unchanged.
func Truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "...")
}
