// Package ioutils provides file system and formatting utilities.
//
// This package contains functions for:
//   - File writing and directory creation
//   - Filename sanitization for cross-platform compatibility
//   - Human-readable byte sizes
//   - Terminal-width-aware truncation for table cells
//   - Image header inspection (JPEG, PNG, WebP)
//
// # File Operations
//
//	err := ioutils.EnsureDir("downloads")
//	err = ioutils.WriteFile(ctx, "downloads/picsum_0001.jpg", data)
//
// # Formatting
//
//	ioutils.FormatFileSize(1536)           // "1.5 KB"
//	ioutils.Truncate("Alejandro Escamilla", 10) // "Alejand..."
//
// # Image Inspection
//
//	info, err := ioutils.InspectImage(data)
//	fmt.Println(info.Format, info.Width, info.Height)
package ioutils
