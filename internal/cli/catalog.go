package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/handiism/picsum-downloader/internal/config"
	"github.com/m-mizutani/goerr/v2"
	"github.com/spf13/cobra"
)

func (a *App) infoCommand() *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show the details of one image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.NewInfoConfig(id)
			if err != nil {
				return err
			}
			return a.runInfo(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "Image ID")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func (a *App) runInfo(ctx context.Context, cfg *config.InfoConfig) error {
	fmt.Fprintln(a.out, statusStyle.Render("🔍 Fetching image information..."))
	a.logger.Info("fetching image info", slog.String("id", cfg.ID))

	info, err := a.picsumClient().FetchInfo(ctx, cfg.ID)
	if err != nil {
		return goerr.Wrap(err, "failed to fetch image info", goerr.V("id", cfg.ID))
	}

	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, renderImageDetails(info))
	return nil
}

func (a *App) listCommand() *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List images from the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.NewListConfig(page, a.v.GetInt(config.KeyListLimit))
			if err != nil {
				return err
			}
			return a.runList(cmd.Context(), cfg)
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().Int("limit", 30, fmt.Sprintf("Images per page (max %d)", config.MaxListLimit))
	bindFlags(a.v, cmd.Flags(), map[string]string{"limit": config.KeyListLimit})

	return cmd
}

func (a *App) runList(ctx context.Context, cfg *config.ListConfig) error {
	fmt.Fprintln(a.out, statusStyle.Render(fmt.Sprintf("📋 Fetching image list (page %d)...", cfg.Page)))
	a.logger.Info("listing images", slog.Int("page", cfg.Page), slog.Int("limit", cfg.Limit))

	images, err := a.picsumClient().ListPage(ctx, cfg.Page, cfg.Limit)
	if err != nil {
		return goerr.Wrap(err, "failed to list images", goerr.V("page", cfg.Page), goerr.V("limit", cfg.Limit))
	}

	if len(images) == 0 {
		fmt.Fprintf(a.out, "No images found on page %d\n", cfg.Page)
		return nil
	}

	fmt.Fprintln(a.out, "\n📸 Available Images:")
	fmt.Fprintln(a.out, renderImageTable(images))
	return nil
}

func (a *App) searchCommand() *cobra.Command {
	var author string

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Find images by author",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.NewSearchConfig(author, a.v.GetInt(config.KeySearchLimit))
			if err != nil {
				return err
			}
			return a.runSearch(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&author, "author", "", "Author name, or part of it (case-insensitive)")
	cmd.Flags().Int("limit", 10, "Maximum number of results")
	_ = cmd.MarkFlagRequired("author")
	bindFlags(a.v, cmd.Flags(), map[string]string{"limit": config.KeySearchLimit})

	return cmd
}

func (a *App) runSearch(ctx context.Context, cfg *config.SearchConfig) error {
	fmt.Fprintln(a.out, statusStyle.Render(fmt.Sprintf("🔎 Searching for images by '%s'...", cfg.Author)))
	a.logger.Info("searching images", slog.String("author", cfg.Author), slog.Int("limit", cfg.Limit))

	images, err := a.picsumClient().SearchByAuthor(ctx, cfg.Author, cfg.Limit)
	if err != nil {
		return goerr.Wrap(err, "failed to search images", goerr.V("author", cfg.Author))
	}

	if len(images) == 0 {
		fmt.Fprintf(a.out, "No images found by author '%s'\n", cfg.Author)
		return nil
	}

	fmt.Fprintf(a.out, "\n🎨 Found %d image(s):\n", len(images))
	fmt.Fprintln(a.out, renderImageTable(images))
	return nil
}
