package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/benbjohnson/clock"
	"github.com/vburojevic/hdrift/internal/config"
	"github.com/vburojevic/hdrift/internal/output"
	"github.com/vburojevic/hdrift/internal/runner"
	"github.com/vburojevic/hdrift/internal/source"
	"go.uber.org/zap"
)

// CLI is the root command structure for hdrift
type CLI struct {
	// Files collects every positional argument so the count can be checked
	// here rather than by the parser.
	Files []string `arg:"" optional:"" name:"file" help:"NDJSON file to check"`

	Format       string           `short:"f" default:"${config_format}" enum:"text,ndjson" help:"Output format"`
	OnError      string           `default:"${config_on_error}" enum:"abort,skip" help:"What to do with a malformed line"`
	Signatures   bool             `short:"s" help:"List distinct header signatures after the summary"`
	MaxLineBytes int              `default:"${config_max_line_bytes}" help:"Longest accepted input line in bytes"`
	Verbose      bool             `short:"v" help:"Show debug output on stderr"`
	Version      kong.VersionFlag `help:"Show version information"`
}

// Globals holds shared state for the run
type Globals struct {
	Format       string
	OnError      string
	Signatures   bool
	MaxLineBytes int
	Verbose      bool
	// StyleStdout and StyleStderr enable lipgloss styling on terminals.
	StyleStdout bool
	StyleStderr bool
	Stdout      io.Writer
	Stderr      io.Writer
	Config      *config.Config
	Logger      *zap.Logger
	Clock       clock.Clock
}

// NewGlobals creates a new Globals instance from CLI flags
func NewGlobals(cli *CLI) *Globals {
	return NewGlobalsWithConfig(cli, config.Default())
}

// NewGlobalsWithConfig creates a new Globals instance with config fallbacks
func NewGlobalsWithConfig(cli *CLI, cfg *config.Config) *Globals {
	g := &Globals{
		Format:       cli.Format,
		OnError:      cli.OnError,
		Signatures:   cli.Signatures,
		MaxLineBytes: cli.MaxLineBytes,
		Verbose:      cli.Verbose,
		Stdout:       os.Stdout,
		Stderr:       os.Stderr,
		Config:       cfg,
		Clock:        clock.New(),
	}

	if cfg != nil {
		// Booleans have no "unset" flag value, so config can only switch them on
		if !cli.Signatures && cfg.Signatures {
			g.Signatures = cfg.Signatures
		}
		if !cli.Verbose && cfg.Verbose {
			g.Verbose = cfg.Verbose
		}
		if g.Format == "" {
			g.Format = cfg.Format
		}
		if g.OnError == "" {
			g.OnError = cfg.OnError
		}
		if g.MaxLineBytes <= 0 {
			g.MaxLineBytes = cfg.MaxLineBytes
		}
	}

	g.Logger = newLogger(g.Stderr, g.Verbose)
	return g
}

// Debug logs a debug message if verbose mode is enabled
func (g *Globals) Debug(format string, args ...interface{}) {
	if g.Logger == nil {
		return
	}
	g.Logger.Sugar().Debugf(format, args...)
}

// Run checks the file named by the single positional argument
func (c *CLI) Run(globals *Globals) error {
	if len(c.Files) != 1 {
		return outputError(globals, &CLIError{Code: CodeUsage, Message: msgUsage, ExitCode: ExitUsage})
	}

	loc := source.Resolve(c.Files[0])
	found, err := source.Exists(loc)
	if err != nil {
		return outputError(globals, &CLIError{
			Code:     CodeReadError,
			Message:  fmt.Sprintf("cannot list %s: %s", loc.Dir, err),
			Hint:     hintForRead(err),
			ExitCode: ExitFailure,
			Err:      err,
		})
	}
	if !found {
		return outputError(globals, &CLIError{Code: CodeNotFound, Message: msgNotFound, ExitCode: ExitNotFound})
	}
	globals.Logger.Debug("resolved input", zap.String("dir", loc.Dir), zap.String("name", loc.Name))

	policy, err := runner.ParsePolicy(globals.OnError)
	if err != nil {
		return outputError(globals, &CLIError{Code: CodeUsage, Message: err.Error(), ExitCode: ExitFailure, Err: err})
	}

	file, err := os.Open(loc.Path())
	if err != nil {
		return outputError(globals, &CLIError{
			Code:     CodeReadError,
			Message:  fmt.Sprintf("cannot open file: %s", err),
			Hint:     hintForRead(err),
			ExitCode: ExitFailure,
			Err:      err,
		})
	}
	defer func() {
		if err := file.Close(); err != nil {
			globals.Debug("Failed to close file: %v", err)
		}
	}()

	sink := output.NewSink(globals.Format, globals.Stdout, globals.StyleStdout)
	r := runner.New(sink, runner.Options{
		Policy:     policy,
		Signatures: globals.Signatures,
		Logger:     globals.Logger,
		Clock:      globals.Clock,
	})

	if _, err := r.Run(source.NewLines(file, globals.MaxLineBytes)); err != nil {
		if runner.IsDecodeError(err) {
			return outputError(globals, &CLIError{
				Code:     CodeDecode,
				Message:  err.Error(),
				Hint:     hintForDecode(err),
				ExitCode: ExitFailure,
				Err:      err,
			})
		}
		return outputError(globals, &CLIError{
			Code:     CodeReadError,
			Message:  err.Error(),
			Hint:     hintForRead(err),
			ExitCode: ExitFailure,
			Err:      err,
		})
	}
	return nil
}

// Version information (set at build time)
var (
	Version = "dev"
	Commit  = "none"
)
