package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dgallion1/docoutline/internal/outline"
	"github.com/dgallion1/docoutline/internal/parser"
)

// BatchReport summarizes a directory run.
type BatchReport struct {
	Found     int `json:"found"`
	Processed int `json:"processed"`
	Failed    int `json:"failed"`
	Written   int `json:"written"`
	Skipped   int `json:"skipped"`
}

// DiscoverInputs lists the supported documents directly inside dir,
// sorted by name.
func DiscoverInputs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input dir: %w", err)
	}
	var paths []string
	for _, e := range entries {
		if e.Type().IsRegular() && parser.IsSupportedExtension(e.Name()) {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	return paths, nil
}

// OutputName is the base name of path without its extension.
func OutputName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// RunDir outlines every supported document in inDir and writes one result
// per document to sink, with at most concurrency documents in flight.
// Unreadable documents still get the error result written. When several
// inputs share an output name only the first in name order is processed.
// A missing inDir counts as an empty one.
func RunDir(ctx context.Context, w *Worker, inDir string, sink Sink, concurrency int, log *slog.Logger) (BatchReport, error) {
	paths, err := DiscoverInputs(inDir)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return BatchReport{}, err
	}
	report := BatchReport{Found: len(paths)}
	if len(paths) == 0 {
		log.Warn("no documents found in input directory", "dir", inDir)
		return report, nil
	}

	claimed := make(map[string]string, len(paths))
	unique := paths[:0:0]
	for _, path := range paths {
		name := OutputName(path)
		if first, ok := claimed[name]; ok {
			log.Warn("skipping input with duplicate output name", "input", path, "output", name, "kept", first)
			report.Skipped++
			continue
		}
		claimed[name] = path
		unique = append(unique, path)
	}
	paths = unique
	log.Info("found documents to process", "count", len(paths))

	if concurrency <= 0 {
		concurrency = 1
	}
	var (
		mu        sync.Mutex
		wg        sync.WaitGroup
		writeErrs []error
	)
	sem := make(chan struct{}, concurrency)

	for _, path := range paths {
		if ctx.Err() != nil {
			break
		}
		sem <- struct{}{}
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			defer func() { <-sem }()

			name := OutputName(path)
			plog := log.With("input", path)

			var res outline.Result
			data, err := os.ReadFile(path)
			if err == nil {
				res, err = w.Outline(data, filepath.Base(path))
			} else {
				res = outline.ErrorResult()
			}
			if err != nil {
				plog.Error("error processing document", "error", err)
			}

			werr := sink.Write(ctx, name, res)
			if werr != nil {
				plog.Error("write result failed", "error", werr)
			} else {
				plog.Info("processed document", "output", name, "title", res.Title, "headings", len(res.Outline))
			}

			mu.Lock()
			defer mu.Unlock()
			report.Processed++
			if err != nil {
				report.Failed++
			}
			if werr != nil {
				writeErrs = append(writeErrs, werr)
			} else {
				report.Written++
			}
		}(path)
	}
	wg.Wait()

	log.Info("processing complete", "processed", report.Processed, "failed", report.Failed, "written", report.Written, "skipped", report.Skipped)
	if err := ctx.Err(); err != nil {
		writeErrs = append(writeErrs, err)
	}
	return report, errors.Join(writeErrs...)
}
