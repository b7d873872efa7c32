package download

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/handiism/picsum-downloader/internal/config"
	ioutils "github.com/handiism/picsum-downloader/internal/io"
	"github.com/handiism/picsum-downloader/internal/model"
	"github.com/handiism/picsum-downloader/internal/picsum"
	"github.com/handiism/picsum-downloader/internal/progress"
	"golang.org/x/sync/errgroup"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a download progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel

	// Index is the unit ordinal the event is about, -1 for batch events.
	Index int
}

// Fetcher downloads the bytes behind an image URL.
// *picsum.Client satisfies it.
type Fetcher interface {
	DownloadBytes(ctx context.Context, imageURL string) (*picsum.Image, error)
}

// Manager runs download batches.
type Manager struct {
	fetcher  Fetcher
	baseURL  string
	token    picsum.TokenSource
	newGate  GateFactory
	logger   *slog.Logger
	newBatch func() string

	onProgress func(ProgressEvent)
	progressMu sync.Mutex
}

// Option customizes a Manager.
type Option func(*Manager)

// WithBaseURL sets the host image URLs are built against.
func WithBaseURL(baseURL string) Option {
	return func(m *Manager) { m.baseURL = baseURL }
}

// WithTokenSource replaces the cache-busting token source.
func WithTokenSource(src picsum.TokenSource) Option {
	return func(m *Manager) { m.token = src }
}

// WithGateFactory replaces the admission gate implementation.
func WithGateFactory(f GateFactory) Option {
	return func(m *Manager) { m.newGate = f }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// WithProgress registers a callback for progress events. The callback is
// never invoked concurrently with itself.
func WithProgress(fn func(ProgressEvent)) Option {
	return func(m *Manager) { m.onProgress = fn }
}

// NewManager creates a new download Manager.
func NewManager(fetcher Fetcher, opts ...Option) *Manager {
	m := &Manager{
		fetcher:  fetcher,
		baseURL:  picsum.DefaultBaseURL,
		token:    picsum.RandomToken,
		newGate:  NewSemaphoreGate,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		newBatch: uuid.NewString,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run downloads cfg.Count() images, at most cfg.Concurrency() at a time.
//
// Each unit fetches one freshly randomized image and writes it to
// OutputDir/<prefix>_<NNNN>.<format>. A failing unit is recorded in the
// result and never stops its siblings. Run only returns an error when the
// batch cannot start at all, e.g. the output directory cannot be created.
//
// The reporter, if non-nil, is advanced once per unit and finished with the
// summary line.
func (m *Manager) Run(ctx context.Context, cfg *config.DownloadConfig, reporter *progress.Reporter) (*model.BatchResult, error) {
	if reporter == nil {
		reporter = progress.New(cfg.Count(), "Downloading")
	}
	if err := ioutils.EnsureDir(cfg.OutputDir()); err != nil {
		return nil, err
	}

	batchID := m.newBatch()
	logger := m.logger.With(slog.String("batch_id", batchID))
	logger.Info("batch started",
		slog.Int("count", cfg.Count()),
		slog.Int("concurrency", cfg.Concurrency()),
		slog.String("output", cfg.OutputDir()),
	)

	start := time.Now()
	gate := m.newGate(cfg.Concurrency())
	outcomes := make([]model.Outcome, cfg.Count())

	var g errgroup.Group
	for i := range cfg.Count() {
		if err := gate.Acquire(ctx); err != nil {
			// Cancelled while waiting: the remaining units never start.
			reporter.SetMessage("Interrupted")
			for j := i; j < cfg.Count(); j++ {
				outcomes[j] = model.Outcome{Index: j, Err: err}
				reporter.Inc(1)
			}
			logger.Warn("batch interrupted", slog.Int("not_started", cfg.Count()-i), slog.Any("error", err))
			m.progress(ProgressEvent{Message: fmt.Sprintf("Interrupted, %d downloads not started", cfg.Count()-i), Level: LevelWarning, Index: -1})
			break
		}

		g.Go(func() error {
			outcomes[i] = m.runUnit(ctx, logger, cfg, i, gate, reporter)
			return nil
		})
	}
	_ = g.Wait()

	result := &model.BatchResult{
		ID:       batchID,
		Total:    cfg.Count(),
		Elapsed:  time.Since(start),
		Outcomes: outcomes,
	}
	for _, o := range outcomes {
		if o.Succeeded() {
			result.SuccessCount++
			result.TotalBytes += o.Bytes
		} else {
			result.FailureCount++
		}
	}

	reporter.Finish(Summary(result))

	logger.Info("batch finished",
		slog.Int("succeeded", result.SuccessCount),
		slog.Int("failed", result.FailureCount),
		slog.Int64("bytes", result.TotalBytes),
		slog.Duration("elapsed", result.Elapsed),
	)

	return result, nil
}

// Summary formats the one-line batch summary, e.g.
// "Downloaded 9/10 images (4.2 MB) in 1.37s".
func Summary(r *model.BatchResult) string {
	return fmt.Sprintf("Downloaded %d/%d images (%s) in %.2fs",
		r.SuccessCount, r.Total, ioutils.FormatFileSize(r.TotalBytes), r.Elapsed.Seconds())
}

// runUnit downloads and stores image index. It holds one unit of gate
// capacity on entry and gives it back once network and disk work are done.
func (m *Manager) runUnit(ctx context.Context, logger *slog.Logger, cfg *config.DownloadConfig, index int, gate Gate, reporter *progress.Reporter) model.Outcome {
	stored, err := m.fetchAndStore(ctx, cfg, index)
	gate.Release()
	reporter.Inc(1)

	if err != nil {
		logger.Debug("unit failed", slog.Int("index", index), slog.Any("error", err))
		m.progress(ProgressEvent{
			Message: fmt.Sprintf("Download %d failed: %v", index+1, err),
			Level:   LevelError,
			Index:   index,
		})
		return model.Outcome{Index: index, Err: err}
	}

	reporter.AddBytes(stored.size)
	logger.Debug("unit finished", slog.Int("index", index), slog.String("file", stored.name), slog.Int64("bytes", stored.size))
	m.progress(ProgressEvent{
		Message: fmt.Sprintf("Downloaded: %s (%s)", stored.name, ioutils.FormatFileSize(stored.size)),
		Level:   LevelVerbose,
		Index:   index,
	})
	return model.Outcome{Index: index, Bytes: stored.size, Filename: stored.name}
}

type storedFile struct {
	name string
	size int64
}

func (m *Manager) fetchAndStore(ctx context.Context, cfg *config.DownloadConfig, index int) (storedFile, error) {
	url := picsum.BuildImageURL(m.baseURL, cfg.Dimensions(), cfg.Effects(), m.token)

	img, err := m.fetcher.DownloadBytes(ctx, url)
	if err != nil {
		return storedFile{}, err
	}

	if cfg.Verify() {
		if _, err := ioutils.InspectImage(img.Data); err != nil {
			return storedFile{}, err
		}
	}

	name := picsum.GenerateFilename(index, cfg.Prefix(), cfg.Format())
	if cfg.NameByID() && img.ID != "" {
		name = picsum.GenerateIDFilename(img.ID, cfg.Prefix(), cfg.Format())
	}
	name = ioutils.SanitizeFileName(name)

	if err := ioutils.WriteFile(ctx, filepath.Join(cfg.OutputDir(), name), img.Data); err != nil {
		return storedFile{}, err
	}
	return storedFile{name: name, size: int64(len(img.Data))}, nil
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress == nil {
		return
	}
	m.progressMu.Lock()
	defer m.progressMu.Unlock()
	m.onProgress(event)
}
