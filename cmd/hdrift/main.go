package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"
	"github.com/vburojevic/hdrift/internal/cli"
	"github.com/vburojevic/hdrift/internal/config"
)

func main() {
	// Load configuration from files/environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		cfg = config.Default()
	}

	var c cli.CLI

	// Config values become flag defaults; explicit flags still win
	vars := kong.Vars{
		"config_format":         cfg.Format,
		"config_on_error":       cfg.OnError,
		"config_max_line_bytes": strconv.Itoa(cfg.MaxLineBytes),
		"version":               "hdrift version " + cli.Version + " (" + cli.Commit + ")",
	}

	kong.Parse(&c,
		kong.Name("hdrift"),
		kong.Description("Report scalar fields of an NDJSON file and count records whose header signature drifts from the first record"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
		vars,
	)

	globals := cli.NewGlobalsWithConfig(&c, cfg)
	globals.StyleStdout = isTerminal(os.Stdout)
	globals.StyleStderr = isTerminal(os.Stderr)

	code := cli.ExitCode(c.Run(globals))
	_ = globals.Logger.Sync()
	os.Exit(code)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
