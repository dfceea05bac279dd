package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"

	"checkres/inspect"
)

var configFile = flag.String("config", "", "optional yaml file with base_dir and files")
var baseDir = flag.String("base", "", "directory the image paths are relative to (default "+defaultBaseDir+")")
var logFile = flag.String("log", "", "location to store a json log of every check, disabled when empty")
var showProgress = flag.Bool("progress", false, "show a progress bar on stderr")

func newProgress(total int, w io.Writer) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("checking"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

// run prints one line per configured path to out, in order. Per-file failures
// are part of the output and never abort the run.
func run(cfg Config, out io.Writer, log zerolog.Logger, progress *progressbar.ProgressBar) error {
	for _, f := range cfg.Files {
		res := inspect.Check(cfg.BaseDir, f)
		logResult(log, cfg.BaseDir, res)

		if _, err := fmt.Fprintln(out, res.String()); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
		if progress != nil {
			_ = progress.Add(1)
		}
	}

	if progress != nil {
		_ = progress.Finish()
	}
	return nil
}

func main() {
	flag.Parse()

	usage := func() {
		_, _ = fmt.Fprintln(os.Stderr, "Usage: checkres [flags] [path ...]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg, err := loadConfig(*configFile, *baseDir, flag.Args())
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n\n", err)
		usage()
	}

	log, logStream, err := openLog(*logFile)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n\n", err)
		usage()
	}
	defer logStream.Close()

	var progress *progressbar.ProgressBar
	if *showProgress {
		progress = newProgress(len(cfg.Files), os.Stderr)
	}

	if err = run(cfg, os.Stdout, log, progress); err != nil {
		log.Error().Err(err).Msg("run aborted")
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
