package model

import "fmt"

// ImageRecord is the metadata Picsum returns for one catalog image.
//
// Records are fetched fresh on every call and never cached.
type ImageRecord struct {
	// ID is the catalog identifier. Picsum serves it as a string.
	ID string `json:"id"`

	// Author is the photographer credited for the image.
	Author string `json:"author"`

	// Width and Height are the original pixel dimensions.
	Width  int `json:"width"`
	Height int `json:"height"`

	// URL is the human-facing page for the image (usually on Unsplash).
	URL string `json:"url"`

	// DownloadURL serves the original-size image bytes.
	DownloadURL string `json:"download_url"`
}

// Size renders the dimensions as "W×H".
func (r ImageRecord) Size() string {
	return fmt.Sprintf("%d×%d", r.Width, r.Height)
}
