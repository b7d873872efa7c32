package ioutils

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/handiism/picsum-downloader/internal/errs"
)

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0.0 B"},
		{512, "512.0 B"},
		{1023, "1023.0 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1048576, "1.0 MB"},
		{5 * 1024 * 1024 * 1024, "5.0 GB"},
		{3 * 1024 * 1024 * 1024 * 1024, "3072.0 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatFileSize(tt.bytes); got != tt.want {
				t.Errorf("FormatFileSize(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"Paul Jarvis", 27, "Paul Jarvis"},
		{"Alejandro Escamilla", 10, "Alejand..."},
		{"exactly-ten", 11, "exactly-ten"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Truncate(tt.input, tt.width); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
			}
		})
	}
}

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"picsum_0001.jpg", "picsum_0001.jpg"},
		{"my/prefix_0001.jpg", "my_prefix_0001.jpg"},
		{"a:b*c?.png", "a_b_c_.png"},
		{"trailing dots...", "trailing dots"},
		{"multiple   spaces", "multiple spaces"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := SanitizeFileName(tt.input); got != tt.want {
				t.Errorf("SanitizeFileName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEnsureDirAndWriteFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir() error = %v", err)
	}
	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir() on existing dir error = %v", err)
	}

	path := filepath.Join(dir, "picsum_0001.jpg")
	if err := WriteFile(context.Background(), path, []byte("data")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(got) != "data" {
		t.Errorf("file content = %q, want %q", got, "data")
	}
}

func TestWriteFile_Errors(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "file.jpg")
		err := WriteFile(context.Background(), path, []byte("x"))
		if !errs.Is(err, errs.KindIO) {
			t.Errorf("WriteFile() error = %v, want IO error", err)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := WriteFile(ctx, filepath.Join(t.TempDir(), "file.jpg"), []byte("x"))
		if !errs.Is(err, errs.KindIO) {
			t.Errorf("WriteFile() error = %v, want IO error", err)
		}
	})
}
