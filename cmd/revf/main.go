// Package main provides the revf command: it reverses the bytes of the files
// named on the command line, in place.
package main

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/Cyclone1070/revf/internal/config"
	"github.com/Cyclone1070/revf/internal/logging"
	"github.com/Cyclone1070/revf/internal/tool/directory"
	"github.com/Cyclone1070/revf/internal/tool/fileinfo"
	"github.com/Cyclone1070/revf/internal/tool/fsutil"
	"github.com/Cyclone1070/revf/internal/tool/pathutil"
	"github.com/Cyclone1070/revf/internal/tool/reverse"
	"github.com/Cyclone1070/revf/internal/ui"
	"go.uber.org/zap"
)

// ErrStdinNotTerminal is reported when input is piped or redirected.
var ErrStdinNotTerminal = errors.New("will not read from standard input")

// Dependencies holds the components required to run the application.
type Dependencies struct {
	Stdout          io.Writer
	Stderr          io.Writer
	StdinIsTerminal bool
	LookupEnv       func(string) (string, bool)
	LoadConfig      func() (*config.Config, error)
	Printer         *ui.Printer
}

func main() {
	deps := Dependencies{
		Stdout:          os.Stdout,
		Stderr:          os.Stderr,
		StdinIsTerminal: ui.IsTerminal(os.Stdin),
		LookupEnv:       os.LookupEnv,
		LoadConfig:      config.Load,
		Printer:         ui.NewPrinter(os.Stdout, os.Stderr),
	}
	os.Exit(run(context.Background(), os.Args[1:], deps))
}

func createTool(cfg *config.Config, scratchDir string, logger *zap.Logger) *reverse.ReversePathTool {
	metadata := fileinfo.NewProvider()
	osFS := fsutil.NewOSFileSystem()

	engine := reverse.NewEngine(metadata, osFS, scratchDir, cfg.Reverse.ChunkSize, logger)
	walker := directory.NewWalker(directory.NewOSEnumerator(), engine, logger)

	return reverse.NewReversePathTool(metadata, engine, walker, logger)
}

// run executes one invocation and returns the process exit code.
func run(ctx context.Context, args []string, deps Dependencies) int {
	printer := deps.Printer

	if !deps.StdinIsTerminal {
		printer.Fatal(ErrStdinNotTerminal)
		return 1
	}

	if len(args) == 0 {
		printer.Help(true)
		return 1
	}

	// Load configuration (from defaults + ~/.config/revf + REVF_* env)
	cfg, cfgErr := deps.LoadConfig()
	if cfgErr != nil {
		cfg = config.DefaultConfig()
	}

	logger := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format}, deps.Stderr)
	defer func() { _ = logger.Sync() }()

	if cfgErr != nil {
		logger.Warn("failed to load config, using defaults", zap.Error(cfgErr))
	}

	scratchDir, err := pathutil.ScratchDir(cfg.Reverse.ScratchDir, deps.LookupEnv)
	if err != nil {
		printer.Fatal(err)
		return 1
	}
	logger.Debug("scratch directory", zap.String("path", scratchDir))

	tool := createTool(cfg, scratchDir, logger.Logger)

	recursive := false
	literal := false

	// Options apply to the paths after them. Anything that is not one of
	// the known option spellings is a path.
	for _, arg := range args {
		if !literal {
			switch arg {
			case "-r", "--recursive":
				recursive = true
				continue
			case "--verbose":
				logger.SetLevel("debug")
				continue
			case "-v", "--version":
				printer.Version()
				return 0
			case "-h", "--help":
				printer.Help(false)
				return 0
			case "--":
				literal = true
				continue
			}
		}

		resp, err := tool.Run(ctx, &reverse.ReversePathRequest{Path: arg, Recursive: recursive})
		if err != nil {
			printer.Fatal(err)
			return 1
		}
		logger.Debug("reversed path",
			zap.String("path", resp.Path),
			zap.Stringer("type", resp.Type),
			zap.Int("files", resp.FilesReversed),
			zap.Int64("bytes", resp.BytesReversed))
	}

	return 0
}

