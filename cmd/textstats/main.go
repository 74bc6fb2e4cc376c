package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/japaniel/textstats/pkg/config"
	"github.com/japaniel/textstats/pkg/logger"
	"github.com/japaniel/textstats/pkg/textstats"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("textstats", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fileFlag := fs.String("file", config.DefaultPath, "Path to the passage to analyze")
	topFlag := fs.Int("top", textstats.DefaultTopN, "Number of most frequent words to report")
	encodingFlag := fs.String("encoding", "utf-8", "Input charset (e.g. utf-8, shift_jis, iso-8859-1, auto)")
	htmlFlag := fs.Bool("html", false, "Treat the input as an HTML article and extract its text")
	configFlag := fs.String("config", "", "Path to an optional YAML config file")
	levelFlag := fs.String("log-level", "warn", "Log level (debug, info, warn, error)")
	formatFlag := fs.String("log-format", "text", "Log format (text, json)")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: textstats [options] [file]\n\noptions:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
		return exitUsage
	}

	// Explicitly set flags win over the config file and environment.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "file":
			cfg.Input.Path = *fileFlag
		case "top":
			cfg.Analysis.TopN = *topFlag
		case "encoding":
			cfg.Input.Encoding = *encodingFlag
		case "html":
			cfg.Input.HTML = *htmlFlag
		case "log-level":
			cfg.Logging.Level = *levelFlag
		case "log-format":
			cfg.Logging.Format = *formatFlag
		}
	})
	if fs.NArg() > 1 {
		fmt.Fprintf(stderr, "Too many arguments: expected at most one file, got %d\n", fs.NArg())
		fs.Usage()
		return exitUsage
	}
	if fs.NArg() == 1 {
		cfg.Input.Path = fs.Arg(0)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Invalid configuration: %v\n", err)
		return exitUsage
	}

	logger.Setup(cfg.Logging.Level, cfg.Logging.Format, stderr)
	log := logger.WithComponent("textstats")

	start := time.Now()
	doc, err := textstats.LoadFile(cfg.Input.Path, textstats.LoadOptions{
		Encoding: cfg.Input.Encoding,
		HTML:     cfg.Input.HTML,
	})
	if err != nil {
		log.Error("failed to load passage", "path", cfg.Input.Path, "error", err)
		return exitFailed
	}
	log.Debug("passage loaded",
		"path", cfg.Input.Path,
		"sentences", len(doc.Sentences),
		"tokens", len(doc.Tokens),
		"elapsed", time.Since(start),
	)

	reporter := textstats.NewReporter(cfg.Analysis.TopN)
	reporter.Logger = log
	if _, err := reporter.Write(stdout, doc); err != nil {
		if errors.Is(err, textstats.ErrEmptyInput) {
			log.Error("nothing to analyze", "path", cfg.Input.Path, "error", err)
		} else {
			log.Error("analysis failed", "error", err)
		}
		return exitFailed
	}
	return exitOK
}
