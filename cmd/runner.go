package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/libsort/internal/shared"
	"github.com/desertthunder/libsort/internal/tasks"
	"github.com/desertthunder/libsort/internal/ui"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	configPath string
	logger     *log.Logger
	output     io.Writer
	console    *ui.Console
	engine     *tasks.SortEngine
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	ConfigPath string
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &Runner{
		config:     opts.Config,
		configPath: opts.ConfigPath,
		logger:     opts.Logger,
		output:     opts.Output,
		console:    ui.NewConsole(opts.Output),
		engine:     tasks.NewSortEngine(opts.Logger),
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		sortCommand, tracksCommand, decadesCommand, setupCommand, cacheCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// settings returns the active config after applying --config and --verbose.
func (r *Runner) settings(cmd *cli.Command) (*shared.Config, error) {
	if path := cmd.String("config"); cmd.IsSet("config") && path != r.configPath {
		config, err := shared.LoadConfig(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		r.config = config
		r.configPath = path
		r.logger.Debug("loaded config", "path", path)
	}

	level := shared.ParseLogLevel(r.config.Log.Level)
	if cmd.Bool("verbose") {
		level = log.DebugLevel
	}
	shared.SetLogLevel(r.logger, level)

	return r.config, nil
}

// libraryPath resolves the export to read: --library, then [library] path.
func (r *Runner) libraryPath(cmd *cli.Command, config *shared.Config) string {
	path := cmd.String("library")
	if path == "" {
		path = config.Library.Path
	}
	return shared.ExpandPath(path)
}

// reportOpts resolves the report destination and format from flags and config.
//
// When the output path comes from config and the format is not CSV, the file
// extension follows the format.
func (r *Runner) reportOpts(cmd *cli.Command, config *shared.Config) (tasks.ReportOpts, error) {
	raw := cmd.String("format")
	if raw == "" {
		raw = config.Output.Format
	}
	format, err := shared.ParseFormat(raw)
	if err != nil {
		return tasks.ReportOpts{}, err
	}

	output := cmd.String("output")
	if output == "" {
		output = withExtension(config.Output.Path, format)
	}
	if output == "" {
		return tasks.ReportOpts{}, fmt.Errorf("%w: no output path in flags or config", shared.ErrMissingArgument)
	}

	return tasks.ReportOpts{OutputPath: shared.ExpandPath(output), Format: format}, nil
}

func withExtension(path string, format shared.Format) string {
	if path == "" {
		return path
	}
	ext := ".csv"
	switch format {
	case shared.FormatMarkdown:
		ext = ".md"
	case shared.FormatText:
		ext = ".txt"
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// progress prints one status line per pipeline stage.
func (r *Runner) progress(update tasks.ProgressUpdate) {
	r.logger.Debug("pipeline stage finished", "phase", update.Phase, "step", update.Step, "total", update.Total)
	if update.Err != nil {
		r.console.Failure("%s", update.Message)
		return
	}
	r.console.Success("%s", update.Message)
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
