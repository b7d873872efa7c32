package config

import (
	"slices"
	"strconv"
	"strings"

	"github.com/handiism/picsum-downloader/internal/errs"
	"github.com/handiism/picsum-downloader/internal/model"
)

// Limits enforced by validation.
const (
	MaxConcurrency = 20
	MaxBlur        = 9
	MaxQuality     = 100
	MaxListLimit   = 100
)

// Formats lists the accepted output file extensions.
var Formats = []string{"jpg", "png", "webp"}

// DownloadParams is the unvalidated input of the download command, as parsed
// from flags, environment and config file.
type DownloadParams struct {
	Count       int
	Width       int
	Height      int
	OutputDir   string
	Grayscale   bool
	Blur        *int
	Quality     *int
	Concurrency int
	Prefix      string
	Format      string
	Verify      bool
	NameByID    bool
}

// DownloadConfig is a validated, immutable download request.
//
// The only way to obtain one is NewDownloadConfig, so every DownloadConfig
// in the program satisfies the documented limits.
type DownloadConfig struct {
	count       int
	dimensions  model.Dimensions
	outputDir   string
	effects     model.Effects
	concurrency int
	prefix      string
	format      string
	verify      bool
	nameByID    bool
}

// NewDownloadConfig validates p and returns the immutable configuration.
//
// Rules:
//   - count > 0
//   - width > 0 and height > 0
//   - blur, if set, in 1-9
//   - quality, if set, in 1-100
//   - concurrency in 1-20
//   - output directory and prefix not blank
//   - format one of jpg, png, webp
func NewDownloadConfig(p DownloadParams) (*DownloadConfig, error) {
	if p.Count <= 0 {
		return nil, errs.Config("count must be greater than 0")
	}
	if p.Width <= 0 || p.Height <= 0 {
		return nil, errs.Config("width and height must be greater than 0")
	}
	if p.Blur != nil && (*p.Blur < 1 || *p.Blur > MaxBlur) {
		return nil, errs.Config("blur level must be between 1 and %d", MaxBlur)
	}
	if p.Quality != nil && (*p.Quality < 1 || *p.Quality > MaxQuality) {
		return nil, errs.Config("quality must be between 1 and %d", MaxQuality)
	}
	if p.Concurrency < 1 || p.Concurrency > MaxConcurrency {
		return nil, errs.Config("concurrent downloads must be between 1 and %d", MaxConcurrency)
	}
	if strings.TrimSpace(p.OutputDir) == "" {
		return nil, errs.Config("output directory cannot be empty")
	}
	if strings.TrimSpace(p.Prefix) == "" {
		return nil, errs.Config("filename prefix cannot be empty")
	}
	format := strings.ToLower(strings.TrimPrefix(p.Format, "."))
	if !slices.Contains(Formats, format) {
		return nil, errs.Config("format must be one of %s", strings.Join(Formats, ", "))
	}

	cfg := &DownloadConfig{
		count:       p.Count,
		dimensions:  model.Dimensions{Width: p.Width, Height: p.Height},
		outputDir:   p.OutputDir,
		effects:     model.Effects{Grayscale: p.Grayscale},
		concurrency: p.Concurrency,
		prefix:      p.Prefix,
		format:      format,
		verify:      p.Verify,
		nameByID:    p.NameByID,
	}
	// Copy so later changes to p cannot reach the config.
	if p.Blur != nil {
		cfg.effects.Blur = model.IntPtr(*p.Blur)
	}
	if p.Quality != nil {
		cfg.effects.Quality = model.IntPtr(*p.Quality)
	}
	return cfg, nil
}

func (c *DownloadConfig) Count() int                   { return c.count }
func (c *DownloadConfig) Dimensions() model.Dimensions { return c.dimensions }
func (c *DownloadConfig) OutputDir() string            { return c.outputDir }
func (c *DownloadConfig) Concurrency() int             { return c.concurrency }
func (c *DownloadConfig) Prefix() string               { return c.prefix }
func (c *DownloadConfig) Format() string               { return c.format }
func (c *DownloadConfig) Verify() bool                 { return c.verify }
func (c *DownloadConfig) NameByID() bool               { return c.nameByID }

// Effects returns a copy of the requested effects.
func (c *DownloadConfig) Effects() model.Effects {
	fx := model.Effects{Grayscale: c.effects.Grayscale}
	if c.effects.Blur != nil {
		fx.Blur = model.IntPtr(*c.effects.Blur)
	}
	if c.effects.Quality != nil {
		fx.Quality = model.IntPtr(*c.effects.Quality)
	}
	return fx
}

// InfoConfig is a validated info request.
type InfoConfig struct {
	ID string
}

// NewInfoConfig requires a non-negative numeric image id.
func NewInfoConfig(id string) (*InfoConfig, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errs.Config("image ID cannot be empty")
	}
	if n, err := strconv.Atoi(id); err != nil || n < 0 {
		return nil, errs.Config("image ID must be a non-negative integer, got %q", id)
	}
	return &InfoConfig{ID: id}, nil
}

// ListConfig is a validated catalog page request.
type ListConfig struct {
	Page  int
	Limit int
}

// NewListConfig requires page >= 1 and limit in 1-100.
func NewListConfig(page, limit int) (*ListConfig, error) {
	if page < 1 {
		return nil, errs.Config("page must be at least 1")
	}
	if limit > MaxListLimit {
		return nil, errs.Config("limit cannot exceed %d", MaxListLimit)
	}
	if limit < 1 {
		return nil, errs.Config("limit must be at least 1")
	}
	return &ListConfig{Page: page, Limit: limit}, nil
}

// SearchConfig is a validated author search.
type SearchConfig struct {
	Author string
	Limit  int
}

// NewSearchConfig requires a non-blank author and limit >= 1.
func NewSearchConfig(author string, limit int) (*SearchConfig, error) {
	if strings.TrimSpace(author) == "" {
		return nil, errs.Config("author name cannot be empty")
	}
	if limit < 1 {
		return nil, errs.Config("limit must be at least 1")
	}
	return &SearchConfig{Author: author, Limit: limit}, nil
}
