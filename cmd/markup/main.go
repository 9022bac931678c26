package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/vango-dev/markup/internal/config"
	"github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/pkg/document"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app holds what every command needs once flags are parsed.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *slog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "markup",
		Short: "Render markup documents to HTML",
		Long: `markup renders element trees to HTML.

Documents are JSON or YAML descriptions of elements and components.
They can be rendered to files, served over HTTP and websockets, or
published to S3.

Examples:
  markup init --template=site
  markup render page.yaml -o page.html
  markup serve --port=9000
  markup publish page.yaml --key guides/index.html`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to markup.json (default: nearest markup.json)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log at debug level")

	rootCmd.AddCommand(
		initCmd(),
		renderCmd(a),
		serveCmd(a),
		publishCmd(a),
		versionCmd(),
	)
	return rootCmd
}

// setup loads the configuration and installs the logger.
func (a *app) setup(stderr io.Writer) error {
	var err error
	if a.configPath != "" {
		a.cfg, err = config.LoadFile(a.configPath)
	} else {
		a.cfg, err = config.LoadFromWorkingDir()
	}
	if err != nil {
		return err
	}

	level := a.cfg.LogLevel()
	if a.verbose {
		level = slog.LevelDebug
	}

	terminal := isTerminal(stderr)
	if !terminal {
		color.NoColor = true
	}

	a.logger = slog.New(tint.NewHandler(stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    !terminal,
	}))
	slog.SetDefault(a.logger)
	return nil
}

// decoder builds a document decoder from the text policy.
func (a *app) decoder() *document.Decoder {
	return document.NewDecoder(document.Options{
		EscapeText:   a.cfg.EscapesText(),
		SanitizeHTML: a.cfg.Document.SanitizeHTML,
	})
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", color.GreenString("✓"), fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}
