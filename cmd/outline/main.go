// Command outline writes a JSON outline for every supported document in an
// input directory.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dgallion1/docoutline/internal/config"
	"github.com/dgallion1/docoutline/internal/parser"
	"github.com/dgallion1/docoutline/internal/pathstore"
	"github.com/dgallion1/docoutline/internal/pipeline"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	cfg := config.Load()

	inDir := flag.String("in", cfg.InputDir, "directory of documents to outline")
	outDir := flag.String("out", cfg.OutputDir, "directory to write <name>.json results into")
	workers := flag.Int("workers", cfg.WorkerCount, "documents processed concurrently")
	flag.Parse()

	cfg.InputDir = *inDir
	cfg.OutputDir = *outDir
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var sink pipeline.Sink = pipeline.DirSink{Dir: cfg.OutputDir}
	if cfg.UsePathstore() {
		ps := pathstore.NewClient(cfg.PathstoreURL, cfg.PathstoreAPIKey)
		defer ps.Close()
		sink = pipeline.PathstoreSink{Client: ps, Prefix: cfg.PathstorePrefix}
	}

	extractors := pipeline.ParserExtractors(parser.Options{FallbackPdftotext: cfg.PDFFallbackPdftotext})
	worker := pipeline.NewWorker(extractors, pipeline.NewStats(cfg.StatsWindow), log)

	log.Info("starting outline extraction", "input", cfg.InputDir, "output", cfg.OutputDir)
	report, err := pipeline.RunDir(ctx, worker, cfg.InputDir, sink, *workers, log)
	if err != nil {
		log.Error("batch run failed", "error", err, "found", report.Found, "written", report.Written)
		os.Exit(1)
	}
}
