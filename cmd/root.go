// Package cmd implements the termdeck command line.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"termdeck/internal/presenter"
	"termdeck/internal/render"
	"termdeck/internal/runner"
)

// Exit codes.
const (
	exitOK          = 0
	exitError       = 1
	exitInterrupted = 130
)

// version is set at build time with -ldflags "-X termdeck/cmd.version=...".
var version = "dev"

// stdoutIsTerminal reports whether slides can be presented on stdout.
var stdoutIsTerminal = func() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

type app struct {
	v      *viper.Viper
	stderr io.Writer
	getenv func(string) string
}

func newApp() *app {
	return &app{v: viper.New(), stderr: os.Stderr, getenv: os.Getenv}
}

func (a *app) command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "termdeck FILE",
		Short: "Present Markdown slides in the terminal",
		Long: "Present Markdown slides in the terminal.\n\n" +
			"Slides are separated by lines of three or more dashes. A leading block of\n" +
			"\"key: value\" lines configures the whole deck and text after a separator\n" +
			"configures the slide that follows it.\n\n" +
			"Controls:\n" + presenter.Controls(),
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}

			return a.run(cmd.Context(), cmd.Flags(), args[0])
		},
	}

	flags := cmd.Flags()
	flags.String("color", "auto", "when to color output: always, auto or never")
	flags.Bool("no-color", false, "same as --color=never")
	flags.BoolP("watch", "w", false, "reload the slides when the file changes")
	flags.BoolP("debug", "d", false, "log debug messages and print full errors")
	flags.String("log-file", "", "write logs to `PATH`")

	a.v.BindPFlags(flags)

	return cmd
}

func (a *app) initConfig() error {
	a.v.SetEnvPrefix("TERMDECK")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	// Look in the current directory first, then in the user's config
	// directory.
	a.v.SetConfigName("config")
	a.v.SetConfigType("yaml")
	a.v.AddConfigPath(".")

	if home, err := os.UserHomeDir(); err == nil {
		a.v.AddConfigPath(filepath.Join(home, ".config", "termdeck"))
	}

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config file: %w", err)
		}
	}

	return nil
}

func (a *app) run(ctx context.Context, flags *pflag.FlagSet, path string) error {
	mode, err := a.colorMode(flags)
	if err != nil {
		return err
	}

	if mode == render.ColorNever {
		color.NoColor = true
	}

	if !stdoutIsTerminal() {
		return errors.New("termdeck needs a terminal to present slides")
	}

	logger, closeLog, err := newLogger(a.v.GetString("log-file"), a.v.GetBool("debug"))
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := render.ScreenSize(os.Stdout.Fd())

	logger.Debug("starting", "path", path, "color", mode.String(), "width", width, "height", height)

	return runner.Run(ctx, runner.Options{
		Path:           path,
		Watch:          a.v.GetBool("watch"),
		Color:          mode,
		DarkBackground: lipgloss.HasDarkBackground(),
		Width:          width,
		Height:         height,
		Logger:         logger,
	})
}

// colorMode resolves --color, --no-color and NO_COLOR. An explicit --color
// wins over NO_COLOR.
func (a *app) colorMode(flags *pflag.FlagSet) (render.ColorMode, error) {
	if a.v.GetBool("no-color") {
		return render.ColorNever, nil
	}

	if !flags.Changed("color") && a.getenv("NO_COLOR") != "" {
		return render.ColorNever, nil
	}

	return render.ParseColorMode(a.v.GetString("color"))
}

// newLogger logs to path through bubbletea's file logger, or nowhere when
// path is empty since the terminal belongs to the presentation.
func newLogger(path string, debug bool) (*slog.Logger, func() error, error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() error { return nil }, nil
	}

	f, err := tea.LogToFile(path, "termdeck")
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})), f.Close, nil
}

// report prints err and returns the process exit code for it.
func (a *app) report(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, tea.ErrInterrupted):
		return exitInterrupted
	}

	red := color.New(color.FgRed)

	if a.v.GetBool("debug") {
		red.Fprintf(a.stderr, "Error: %+v\n", err)
	} else {
		red.Fprintf(a.stderr, "Error: %v\n", err)
	}

	return exitError
}

// Execute runs the root command and exits the process.
func Execute() {
	a := newApp()
	err := a.command().ExecuteContext(context.Background())

	os.Exit(a.report(err))
}
