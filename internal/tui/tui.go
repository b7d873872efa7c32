// Package tui provides a Bubble Tea progress view for picsum-dl download batches.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/picsum-downloader/internal/config"
	"github.com/handiism/picsum-downloader/internal/download"
	ioutils "github.com/handiism/picsum-downloader/internal/io"
	"github.com/handiism/picsum-downloader/internal/model"
	report "github.com/handiism/picsum-downloader/internal/progress"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)
)

// maxLogs is how many progress lines stay on screen.
const maxLogs = 10

// State represents the current UI state.
type State int

const (
	StateDownloading State = iota
	StateCancelling
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   download.ProgressLevel
}

// Job runs one batch. It must report every unit through reporter and may
// send progress events through emit.
type Job func(ctx context.Context, reporter *report.Reporter, emit func(download.ProgressEvent)) (*model.BatchResult, error)

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state    State
	spinner  spinner.Model
	progress progress.Model
	reporter *report.Reporter
	cfg      *config.DownloadConfig
	logs     []LogEntry
	result   *model.BatchResult
	err      error

	cancel  context.CancelFunc
	verbose bool

	width int
}

// NewModel creates a new TUI model tracking reporter. cancel stops the
// running batch.
func NewModel(cfg *config.DownloadConfig, reporter *report.Reporter, verbose bool, cancel context.CancelFunc) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	return Model{
		state:    StateDownloading,
		spinner:  sp,
		progress: prog,
		reporter: reporter,
		cfg:      cfg,
		verbose:  verbose,
		cancel:   cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tickProgress())
}

// Message types
type (
	// ProgressMsg carries one event from the download manager.
	ProgressMsg struct {
		Event download.ProgressEvent
	}

	// DoneMsg is sent when the batch has finished.
	DoneMsg struct {
		Result *model.BatchResult
		Err    error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = min(max(msg.Width-20, 20), 80)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.stop()
			return m, tea.Quit

		case "esc":
			if m.state == StateDownloading {
				m.stop()
				m.state = StateCancelling
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		if msg.Event.Level == download.LevelVerbose && !m.verbose {
			return m, nil
		}
		m.logs = append(m.logs, LogEntry{
			Message: msg.Event.Message,
			Level:   msg.Event.Level,
		})
		if len(m.logs) > maxLogs {
			m.logs = m.logs[len(m.logs)-maxLogs:]
		}

	case DoneMsg:
		m.result = msg.Result
		m.err = msg.Err
		if msg.Err != nil {
			m.state = StateError
		} else {
			m.state = StateComplete
		}
		cmds = append(cmds, m.progress.SetPercent(m.reporter.Percent()))

	case TickMsg:
		if m.state == StateDownloading || m.state == StateCancelling {
			cmds = append(cmds, m.progress.SetPercent(m.reporter.Percent()), tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) stop() {
	if m.cancel != nil {
		m.cancel()
	}
}

// State returns the current UI state.
func (m Model) State() State { return m.state }

// Logs returns the progress lines currently on screen.
func (m Model) Logs() []LogEntry { return m.logs }

// tickProgress returns a command to tick progress updates.
func tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("📷 Picsum Downloader"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d × %s → %s (%d concurrent)",
		m.cfg.Count(), m.cfg.Dimensions(), m.cfg.OutputDir(), m.cfg.Concurrency())))
	b.WriteString("\n\n")

	switch m.state {
	case StateDownloading, StateCancelling:
		b.WriteString(m.viewDownloading())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.helpText()))

	return b.String()
}

func (m Model) viewDownloading() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	if m.state == StateCancelling {
		b.WriteString(warningStyle.Render("Cancelling..."))
	} else {
		b.WriteString(subtitleStyle.Render(m.reporter.Message()))
	}
	b.WriteString("\n\n")

	b.WriteString(m.progress.View())
	b.WriteString("\n")

	b.WriteString(infoStyle.Render(fmt.Sprintf(
		"Images: %d/%d | Downloaded: %s | %s/s",
		m.reporter.Position(),
		m.reporter.Total(),
		ioutils.FormatFileSize(m.reporter.Bytes()),
		ioutils.FormatFileSize(int64(m.reporter.Rate())),
	)))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	summary := m.reporter.Summary()
	if summary == "" && m.result != nil {
		summary = download.Summary(m.result)
	}

	body := "✨ Download Complete!\n\n" + summary
	if m.result != nil && m.result.FailureCount > 0 {
		body += "\n" + errorStyle.Render(fmt.Sprintf("Failed: %d", m.result.FailureCount))
	}
	b.WriteString(boxStyle.Render(body))
	b.WriteString("\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("❌ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case download.LevelError:
			style = errorStyle
			prefix = "✗"
		case download.LevelWarning:
			style = warningStyle
			prefix = "!"
		case download.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case download.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) helpText() string {
	switch m.state {
	case StateDownloading:
		return "esc: cancel • ctrl+c: quit"
	case StateCancelling:
		return "waiting for in-flight downloads • ctrl+c: quit"
	case StateComplete, StateError:
		return "q: quit"
	}
	return ""
}

// Run shows the progress view while job runs and returns the job's result.
//
// Quitting the view cancels the job; Run still waits for it to return so the
// result reflects every unit.
func Run(ctx context.Context, cfg *config.DownloadConfig, verbose bool, job Job, opts ...tea.ProgramOption) (*model.BatchResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	reporter := report.New(cfg.Count(), "Downloading")
	p := tea.NewProgram(NewModel(cfg, reporter, verbose, cancel), append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)...)

	type jobResult struct {
		result *model.BatchResult
		err    error
	}
	done := make(chan jobResult, 1)

	go func() {
		result, err := job(ctx, reporter, func(e download.ProgressEvent) {
			p.Send(ProgressMsg{Event: e})
		})
		done <- jobResult{result, err}
		p.Send(DoneMsg{Result: result, Err: err})
	}()

	_, runErr := p.Run()
	cancel()
	res := <-done
	if runErr != nil {
		return res.result, fmt.Errorf("tui: %w", runErr)
	}
	return res.result, res.err
}
