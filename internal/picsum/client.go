package picsum

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/handiism/picsum-downloader/internal/errs"
	"github.com/handiism/picsum-downloader/internal/http"
	"github.com/handiism/picsum-downloader/internal/model"
)

const (
	// searchPageSize is the catalog page size used while scanning for authors.
	searchPageSize = 30

	// searchMaxPages caps how far SearchByAuthor walks the catalog.
	searchMaxPages = 10

	// idHeader carries the catalog id of a randomly served image.
	idHeader = "Picsum-ID"
)

// Image is a downloaded image payload.
type Image struct {
	Data []byte

	// ID is the catalog id reported by the service, empty if it did not say.
	ID string
}

// Client is the Picsum API client.
//
// It is safe for concurrent use; the batch downloader shares one Client
// across all in-flight units.
type Client struct {
	http    *http.Client
	baseURL string
}

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithBaseURL points the client at another host, e.g. an httptest server.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// NewClient creates a Client on top of the given transport.
func NewClient(httpClient *http.Client, opts ...ClientOption) *Client {
	c := &Client{
		http:    httpClient,
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API host this client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchInfo returns the metadata of a single image (GET /id/{id}/info).
func (c *Client) FetchInfo(ctx context.Context, id string) (*model.ImageRecord, error) {
	u := fmt.Sprintf("%s/id/%s/info", c.baseURL, url.PathEscape(id))

	var info model.ImageRecord
	if err := c.http.GetJSON(ctx, u, &info); err != nil {
		if status := errs.StatusOf(err); status != 0 {
			return nil, errs.APIStatus("info", status, fmt.Sprintf("image with ID %s not found", id))
		}
		return nil, err
	}
	return &info, nil
}

// ListPage returns one page of the catalog (GET /v2/list?page=&limit=).
//
// An empty slice means the catalog has no more pages.
func (c *Client) ListPage(ctx context.Context, page, limit int) ([]model.ImageRecord, error) {
	u := fmt.Sprintf("%s/v2/list?page=%d&limit=%d", c.baseURL, page, limit)

	var images []model.ImageRecord
	if err := c.http.GetJSON(ctx, u, &images); err != nil {
		if status := errs.StatusOf(err); status != 0 {
			return nil, errs.APIStatus("list", status, "failed to fetch image list")
		}
		return nil, err
	}
	return images, nil
}

// DownloadBytes fetches raw image bytes from an image URL, typically one
// produced by BuildImageURL.
//
// A non-success status yields an API error that includes the status code.
// An empty body is also an API error: nothing usable was served.
func (c *Client) DownloadBytes(ctx context.Context, imageURL string) (*Image, error) {
	resp, err := c.http.Get(ctx, imageURL)
	if err != nil {
		if status := errs.StatusOf(err); status != 0 {
			return nil, errs.APIStatus("download", status, fmt.Sprintf("failed to download image: HTTP %d", status))
		}
		return nil, err
	}
	if len(resp.Body) == 0 {
		return nil, errs.API("download", "empty image payload")
	}

	return &Image{
		Data: resp.Body,
		ID:   resp.Header.Get(idHeader),
	}, nil
}

// SearchByAuthor scans the catalog for images whose author contains the given
// substring, ignoring case.
//
// Pages of 30 records are fetched one after another until limit matches are
// collected, 10 pages have been scanned, or a page comes back empty. The
// result holds at most limit records.
func (c *Client) SearchByAuthor(ctx context.Context, author string, limit int) ([]model.ImageRecord, error) {
	needle := strings.ToLower(author)
	var matches []model.ImageRecord

	for page := 1; len(matches) < limit && page <= searchMaxPages; page++ {
		images, err := c.ListPage(ctx, page, searchPageSize)
		if err != nil {
			return nil, err
		}
		if len(images) == 0 {
			break
		}

		for _, img := range images {
			if strings.Contains(strings.ToLower(img.Author), needle) {
				matches = append(matches, img)
			}
		}
	}

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}
