package pipeline

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dgallion1/docoutline/internal/layout"
	"github.com/dgallion1/docoutline/internal/outline"
	"github.com/dgallion1/docoutline/internal/parser"
)

// ExtractorFunc picks the line extractor for a file name.
type ExtractorFunc func(filename string) (parser.Extractor, error)

// Worker turns raw documents into outlines.
type Worker struct {
	extractorFor ExtractorFunc
	outliner     *outline.Extractor
	stats        *Stats
	log          *slog.Logger
}

func NewWorker(extractorFor ExtractorFunc, stats *Stats, log *slog.Logger) *Worker {
	return &Worker{
		extractorFor: extractorFor,
		outliner:     outline.NewExtractor(log),
		stats:        stats,
		log:          log,
	}
}

// ParserExtractors returns an ExtractorFunc backed by the parser package.
func ParserExtractors(opts parser.Options) ExtractorFunc {
	return func(filename string) (parser.Extractor, error) {
		return parser.ForFile(filename, opts)
	}
}

// Outline computes the outline of one document. An unreadable document
// yields the error result along with the cause.
func (w *Worker) Outline(data []byte, filename string) (outline.Result, error) {
	start := time.Now()
	p, err := w.extractorFor(filename)
	if err != nil {
		return outline.ErrorResult(), err
	}

	res, err := w.outliner.Process(outline.SourceFunc(func() ([]layout.LineRecord, error) {
		return p.Extract(bytes.NewReader(data), filename)
	}))
	w.stats.Record(time.Since(start), err != nil)
	return res, err
}

// Process runs a queued job to completion.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)

	if err := ctx.Err(); err != nil {
		job.Fail(err.Error())
		return
	}
	job.SetStatus(StatusProcessing)

	res, err := w.Outline(job.FileData(), job.Filename)
	switch {
	case errors.Is(err, parser.ErrUnsupported):
		log.Error("unsupported format", "error", err)
		job.Fail(err.Error())
	case err != nil:
		log.Error("error processing document", "error", err)
		job.Complete(res, err.Error())
	default:
		log.Info("processed document", "title", res.Title, "headings", len(res.Outline))
		job.Complete(res, "")
	}
}

// Stats returns the rolling processing statistics.
func (w *Worker) Stats() StatsSnapshot {
	return w.stats.Snapshot()
}
