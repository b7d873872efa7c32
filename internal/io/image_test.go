package ioutils

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/handiism/picsum-downloader/internal/errs"
)

func encodeTestImage(t *testing.T, format string, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})

	var buf bytes.Buffer
	var err error
	switch format {
	case "png":
		err = png.Encode(&buf, img)
	default:
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: 80})
	}
	if err != nil {
		t.Fatalf("encode %s: %v", format, err)
	}
	return buf.Bytes()
}

func TestInspectImage(t *testing.T) {
	tests := []struct {
		format string
		w, h   int
	}{
		{"jpeg", 32, 16},
		{"png", 8, 24},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			info, err := InspectImage(encodeTestImage(t, tt.format, tt.w, tt.h))
			if err != nil {
				t.Fatalf("InspectImage() error = %v", err)
			}
			if info.Format != tt.format {
				t.Errorf("Format = %q, want %q", info.Format, tt.format)
			}
			if info.Width != tt.w || info.Height != tt.h {
				t.Errorf("size = %dx%d, want %dx%d", info.Width, info.Height, tt.w, tt.h)
			}
		})
	}
}

func TestInspectImage_RejectsNonImage(t *testing.T) {
	_, err := InspectImage([]byte("<html>rate limited</html>"))
	if err == nil {
		t.Fatal("expected error for HTML payload")
	}
	if !errs.Is(err, errs.KindAPI) {
		t.Errorf("error = %v, want API error", err)
	}
}
