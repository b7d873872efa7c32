package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/handiism/picsum-downloader/internal/config"
	"github.com/handiism/picsum-downloader/internal/download"
	"github.com/handiism/picsum-downloader/internal/model"
	"github.com/handiism/picsum-downloader/internal/progress"
	"github.com/handiism/picsum-downloader/internal/tui"
	"github.com/m-mizutani/goerr/v2"
	"github.com/spf13/cobra"
)

func (a *App) downloadCommand() *cobra.Command {
	var useTUI bool

	cmd := &cobra.Command{
		Use:   "download",
		Short: "Download random images",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.NewDownloadConfig(config.DownloadParamsFrom(a.v))
			if err != nil {
				return err
			}
			return a.runDownload(cmd.Context(), cfg, useTUI)
		},
	}

	f := cmd.Flags()
	f.IntP("count", "c", 1, "Number of images to download")
	f.IntP("width", "w", 1920, "Image width in pixels")
	f.IntP("height", "H", 1080, "Image height in pixels")
	f.StringP("output", "o", "downloads", "Output directory")
	f.BoolP("grayscale", "g", false, "Apply grayscale effect")
	f.IntP("blur", "b", 0, "Apply blur effect (1-9)")
	f.IntP("quality", "q", 0, "Image quality (1-100)")
	f.IntP("concurrent", "j", 4, "Maximum concurrent downloads (1-20)")
	f.StringP("prefix", "p", "picsum", "Filename prefix")
	f.StringP("format", "f", "jpg", "File format (jpg, png, webp)")
	f.Bool("verify", false, "Check each payload decodes as an image before saving it")
	f.Bool("name-by-id", false, "Name files after the Picsum image id instead of the ordinal")
	f.BoolVar(&useTUI, "tui", false, "Show a full-screen progress view")
	bindFlags(a.v, f, map[string]string{
		"count":      config.KeyDownloadCount,
		"width":      config.KeyDownloadWidth,
		"height":     config.KeyDownloadHeight,
		"output":     config.KeyDownloadOutput,
		"grayscale":  config.KeyDownloadGrayscale,
		"blur":       config.KeyDownloadBlur,
		"quality":    config.KeyDownloadQuality,
		"concurrent": config.KeyDownloadConcurrency,
		"prefix":     config.KeyDownloadPrefix,
		"format":     config.KeyDownloadFormat,
		"verify":     config.KeyDownloadVerify,
		"name-by-id": config.KeyDownloadNameByID,
	})

	return cmd
}

// runDownload prints the batch settings, runs the batch and prints its
// summary. Failed images do not make it fail.
func (a *App) runDownload(ctx context.Context, cfg *config.DownloadConfig, useTUI bool) error {
	fmt.Fprintln(a.out, renderDownloadHeader(cfg))

	if useTUI && !isTerminal(a.out) {
		a.logger.Warn("--tui needs a terminal, falling back to plain progress")
		useTUI = false
	}

	client := a.picsumClient()
	newManager := func(emit func(download.ProgressEvent)) *download.Manager {
		return download.NewManager(client,
			download.WithBaseURL(client.BaseURL()),
			download.WithLogger(a.logger),
			download.WithProgress(emit),
		)
	}

	var (
		result *model.BatchResult
		err    error
	)
	if useTUI {
		result, err = tui.Run(ctx, cfg, a.verbose(), func(ctx context.Context, r *progress.Reporter, emit func(download.ProgressEvent)) (*model.BatchResult, error) {
			return newManager(emit).Run(ctx, cfg, r)
		})
		if err == nil {
			fmt.Fprintln(a.out, download.Summary(result))
		}
	} else {
		mode := progress.ModeLines
		if isTerminal(a.errOut) {
			mode = progress.ModeBar
		}
		reporter := progress.New(cfg.Count(), "Downloading", progress.WithOutput(a.errOut, mode))
		result, err = newManager(a.eventPrinter(reporter)).Run(ctx, cfg, reporter)
	}
	if err != nil {
		return goerr.Wrap(err, "failed to run download batch", goerr.V("output", cfg.OutputDir()))
	}

	a.logger.Info("download finished",
		slog.String("batch_id", result.ID),
		slog.Int("succeeded", result.SuccessCount),
		slog.Int("failed", result.FailureCount),
		slog.Float64("bytes_per_sec", result.Throughput()),
	)
	return nil
}

// eventPrinter echoes manager events through the reporter, which owns
// stderr while the batch runs. Per-image results and failures only show
// with --verbose.
func (a *App) eventPrinter(reporter *progress.Reporter) func(download.ProgressEvent) {
	verbose := a.verbose()
	red := color.New(color.FgRed)
	yellow := color.New(color.FgYellow)

	return func(event download.ProgressEvent) {
		if !verbose && (event.Level == download.LevelVerbose || event.Level == download.LevelError) {
			return
		}

		switch event.Level {
		case download.LevelError:
			reporter.Println(red.Sprint("❌ " + event.Message))
		case download.LevelWarning:
			reporter.Println(yellow.Sprint("⚠️  " + event.Message))
		default:
			reporter.Println("   " + event.Message)
		}
	}
}
