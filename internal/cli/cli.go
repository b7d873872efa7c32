package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/handiism/picsum-downloader/internal/config"
	pichttp "github.com/handiism/picsum-downloader/internal/http"
	"github.com/handiism/picsum-downloader/internal/picsum"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Version is the release version, overridable with -ldflags "-X".
var Version = "0.1.0"

// App carries the state shared by all commands of one invocation.
type App struct {
	out    io.Writer
	errOut io.Writer

	v          *viper.Viper
	logger     *slog.Logger
	configPath string
}

func newApp(stdout, stderr io.Writer) *App {
	return &App{
		out:    stdout,
		errOut: stderr,
		v:      config.NewViper(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Run runs the CLI application with os.Args-style arguments.
func Run(ctx context.Context, args []string) error {
	return run(ctx, args, os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	app := newApp(stdout, stderr)
	root := app.rootCommand()
	if len(args) > 0 {
		args = args[1:]
	}
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		app.logger.Debug("CLI execution failed", slog.Any("error", err))
		color.New(color.FgRed).Fprintf(stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func (a *App) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "picsum-dl",
		Short:         "Download images from Picsum Photos",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.ReadConfigFile(a.v, a.configPath)
			if err != nil {
				return err
			}

			logCfg := config.LoggerFrom(a.v)
			logger, err := logCfg.Configure(a.errOut)
			if err != nil {
				return err
			}
			a.logger = logger
			slog.SetDefault(logger)

			if path != "" {
				logger.Debug("config file loaded", slog.String("path", path))
			}
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.BoolP("verbose", "v", false, "Show per-image results and failures")
	pf.StringVar(&a.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/picsum-dl/config.yaml)")
	pf.String("base-url", picsum.DefaultBaseURL, "Picsum API base URL")
	pf.String("log-level", "warn", "Log level (debug, info, warn, error)")
	pf.Bool("log-json", false, "Write logs as JSON")
	bindFlags(a.v, pf, map[string]string{
		"verbose":   config.KeyVerbose,
		"base-url":  config.KeyBaseURL,
		"log-level": config.KeyLogLevel,
		"log-json":  config.KeyLogJSON,
	})

	root.AddCommand(
		a.downloadCommand(),
		a.infoCommand(),
		a.listCommand(),
		a.searchCommand(),
		a.versionCommand(),
	)
	return root
}

// bindFlags binds each named flag to its viper key. The flags are declared
// next to the call, so a missing one is a programming error.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) {
	for name, key := range keys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

func (a *App) picsumClient() *picsum.Client {
	return picsum.NewClient(
		pichttp.NewClient(pichttp.WithUserAgent("picsum-dl/"+Version)),
		picsum.WithBaseURL(a.v.GetString(config.KeyBaseURL)),
	)
}

func (a *App) verbose() bool {
	return a.v.GetBool(config.KeyVerbose)
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("picsum-dl %s\n", Version)
		},
	}
}
