package picsum

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/handiism/picsum-downloader/internal/model"
)

// DefaultBaseURL is the public Picsum endpoint.
const DefaultBaseURL = "https://picsum.photos"

// TokenSource yields cache-busting tokens. Any non-cryptographic source works.
type TokenSource func() uint32

// RandomToken draws a token from the process-wide PRNG.
func RandomToken() uint32 {
	return rand.Uint32()
}

// BuildImageURL returns the image URL for the given size and effects.
//
// Query parameters are appended in a fixed order: grayscale (flag, no
// value), blur, quality, then always random. Effects that are not set
// contribute no parameter.
//
// Example:
//
//	BuildImageURL(DefaultBaseURL, model.Dimensions{Width: 100, Height: 200},
//	    model.Effects{Grayscale: true, Blur: model.IntPtr(5)}, RandomToken)
//	// https://picsum.photos/100/200?grayscale&blur=5&random=12345
func BuildImageURL(baseURL string, dims model.Dimensions, effects model.Effects, token TokenSource) string {
	if token == nil {
		token = RandomToken
	}

	params := make([]string, 0, 4)
	if effects.Grayscale {
		params = append(params, "grayscale")
	}
	if effects.Blur != nil {
		params = append(params, fmt.Sprintf("blur=%d", *effects.Blur))
	}
	if effects.Quality != nil {
		params = append(params, fmt.Sprintf("quality=%d", *effects.Quality))
	}
	params = append(params, fmt.Sprintf("random=%d", token()))

	return fmt.Sprintf("%s/%d/%d?%s",
		strings.TrimRight(baseURL, "/"), dims.Width, dims.Height, strings.Join(params, "&"))
}

// GenerateFilename returns "<prefix>_<index+1, 4 digits>.<format>".
//
// The index is the unit's 0-based ordinal within the batch, so names are
// stable no matter which download finishes first.
func GenerateFilename(index int, prefix, format string) string {
	return fmt.Sprintf("%s_%04d.%s", prefix, index+1, format)
}

// GenerateIDFilename returns "<prefix>_<id>.<format>", naming the file after
// the catalog image that Picsum served.
func GenerateIDFilename(id, prefix, format string) string {
	return fmt.Sprintf("%s_%s.%s", prefix, id, format)
}
