package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/handiism/picsum-downloader/internal/config"
	ioutils "github.com/handiism/picsum-downloader/internal/io"
	"github.com/handiism/picsum-downloader/internal/model"
)

// authorWidth is the widest author cell in image tables.
const authorWidth = 27

var (
	accent = lipgloss.Color("#4ECDC4")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(accent)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)
)

type field struct {
	label string
	value string
}

func renderBox(title string, fields []field) string {
	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		lines = append(lines, labelStyle.Render(f.label+":")+" "+f.value)
	}
	return titleStyle.Render(title) + "\n" + boxStyle.Render(strings.Join(lines, "\n"))
}

func renderDownloadHeader(cfg *config.DownloadConfig) string {
	fields := []field{
		{"Output", cfg.OutputDir()},
		{"Resolution", cfg.Dimensions().String()},
		{"Count", strconv.Itoa(cfg.Count())},
		{"Concurrent", strconv.Itoa(cfg.Concurrency())},
	}

	fx := cfg.Effects()
	if fx.Grayscale {
		fields = append(fields, field{"Effect", "Grayscale"})
	}
	if fx.Blur != nil {
		fields = append(fields, field{"Blur", fmt.Sprintf("Level %d", *fx.Blur)})
	}
	if fx.Quality != nil {
		fields = append(fields, field{"Quality", fmt.Sprintf("%d%%", *fx.Quality)})
	}

	return renderBox("🖼️  Picsum Image Downloader v"+Version, fields) + "\n"
}

func renderImageDetails(info *model.ImageRecord) string {
	return renderBox("📷 Image Details", []field{
		{"ID", info.ID},
		{"Author", info.Author},
		{"Dimensions", info.Size()},
		{"URL", info.URL},
		{"Download URL", info.DownloadURL},
	})
}

// renderImageTable lays out images as ID | Author | Size | URL.
func renderImageTable(images []model.ImageRecord) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(accent)).
		Headers("ID", "Author", "Size", "URL").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, img := range images {
		t.Row(img.ID, ioutils.Truncate(img.Author, authorWidth), img.Size(), img.URL)
	}
	return t.String()
}
