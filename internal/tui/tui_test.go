package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/handiism/picsum-downloader/internal/config"
	"github.com/handiism/picsum-downloader/internal/download"
	"github.com/handiism/picsum-downloader/internal/model"
	report "github.com/handiism/picsum-downloader/internal/progress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T, verbose bool) (Model, *report.Reporter, *bool) {
	t.Helper()
	cfg, err := config.NewDownloadConfig(config.DownloadParams{
		Count: 4, Width: 100, Height: 50, OutputDir: t.TempDir(),
		Concurrency: 2, Prefix: "picsum", Format: "jpg",
	})
	require.NoError(t, err)

	cancelled := false
	reporter := report.New(cfg.Count(), "Downloading")
	return NewModel(cfg, reporter, verbose, func() { cancelled = true }), reporter, &cancelled
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModel_FiltersVerboseEvents(t *testing.T) {
	m, _, _ := newTestModel(t, false)

	m = update(t, m, ProgressMsg{Event: download.ProgressEvent{Message: "Downloaded: a.jpg", Level: download.LevelVerbose}})
	m = update(t, m, ProgressMsg{Event: download.ProgressEvent{Message: "Download 2 failed", Level: download.LevelError}})

	require.Len(t, m.Logs(), 1)
	assert.Equal(t, "Download 2 failed", m.Logs()[0].Message)

	v, _, _ := newTestModel(t, true)
	v = update(t, v, ProgressMsg{Event: download.ProgressEvent{Message: "Downloaded: a.jpg", Level: download.LevelVerbose}})
	assert.Len(t, v.Logs(), 1)
}

func TestModel_KeepsLastLogs(t *testing.T) {
	m, _, _ := newTestModel(t, true)
	for range maxLogs + 5 {
		m = update(t, m, ProgressMsg{Event: download.ProgressEvent{Message: "x", Level: download.LevelInfo}})
	}
	assert.Len(t, m.Logs(), maxLogs)
}

func TestModel_EscCancels(t *testing.T) {
	m, _, cancelled := newTestModel(t, false)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, *cancelled)
	assert.Equal(t, StateCancelling, m.State())
	assert.Contains(t, m.View(), "Cancelling")
}

func TestModel_Done(t *testing.T) {
	m, reporter, _ := newTestModel(t, false)
	reporter.Inc(4)
	reporter.Finish("Downloaded 3/4 images (1.5 KB) in 0.10s")

	m = update(t, m, DoneMsg{Result: &model.BatchResult{Total: 4, SuccessCount: 3, FailureCount: 1}})
	assert.Equal(t, StateComplete, m.State())

	view := m.View()
	assert.Contains(t, view, "Downloaded 3/4 images")
	assert.Contains(t, view, "Failed: 1")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_DoneWithError(t *testing.T) {
	m, _, _ := newTestModel(t, false)
	m = update(t, m, DoneMsg{Err: errors.New("output directory unavailable")})

	assert.Equal(t, StateError, m.State())
	assert.True(t, strings.Contains(m.View(), "output directory unavailable"))
}

func TestModel_ViewShowsCounts(t *testing.T) {
	m, reporter, _ := newTestModel(t, false)
	reporter.Inc(2)
	reporter.AddBytes(2048)

	view := m.View()
	assert.Contains(t, view, "Images: 2/4")
	assert.Contains(t, view, "2.0 KB")
	assert.Contains(t, view, "100×50")
}
