package ioutils

import (
	"bytes"
	"image"
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration

	"github.com/handiism/picsum-downloader/internal/errs"
	_ "golang.org/x/image/webp" // WebP decoder registration
)

// ImageInfo describes a decoded image header.
type ImageInfo struct {
	// Format is the registered decoder name: "jpeg", "png" or "webp".
	Format string
	Width  int
	Height int
}

// InspectImage decodes only the header of an image payload.
//
// It is used to reject responses that are not images at all (an HTML error
// page served with status 200, a truncated body) before they are written to
// disk. Only the header is parsed, so the cost does not grow with the
// image size.
//
// Example:
//
//	info, err := InspectImage(img.Data)
//	// info.Format == "jpeg", info.Width == 1920
func InspectImage(data []byte) (*ImageInfo, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, &errs.Error{Kind: errs.KindAPI, Op: "verify", Msg: "payload is not a decodable image", Err: err}
	}
	return &ImageInfo{
		Format: format,
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}
