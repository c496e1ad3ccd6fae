package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/dgallion1/docoutline/internal/config"
	"github.com/dgallion1/docoutline/internal/layout"
	"github.com/dgallion1/docoutline/internal/outline"
	"github.com/dgallion1/docoutline/internal/parser"
)

const coverDoc = "Cover Page\nprepared by the research office\n\fIntroduction\nsome lowercase body text\n"

var errCorrupt = errors.New("corrupt document")

type failingExtractor struct{}

func (failingExtractor) Extract(r io.Reader, filename string) ([]layout.LineRecord, error) {
	return nil, errCorrupt
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testExtractors uses the real parsers except for files named bad*.
func testExtractors(filename string) (parser.Extractor, error) {
	if strings.HasPrefix(filename, "bad") {
		return failingExtractor{}, nil
	}
	return parser.ForFile(filename, parser.Options{})
}

func newTestWorker() *Worker {
	return NewWorker(testExtractors, NewStats(time.Hour), discardLogger())
}

func TestWorker_Outline(t *testing.T) {
	w := newTestWorker()
	res, err := w.Outline([]byte(coverDoc), "cover.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Title != "Cover Page" {
		t.Errorf("expected title %q, got %q", "Cover Page", res.Title)
	}
	want := []outline.Entry{{Level: outline.LevelH1, Text: "Introduction", Page: 2}}
	if len(res.Outline) != 1 || res.Outline[0] != want[0] {
		t.Errorf("expected %+v, got %+v", want, res.Outline)
	}
	if snap := w.Stats(); snap.Count != 1 || snap.Failures != 0 {
		t.Errorf("unexpected stats: %+v", snap)
	}
}

func TestWorker_OutlineExtractionFailure(t *testing.T) {
	w := newTestWorker()
	res, err := w.Outline([]byte("x"), "bad.pdf")
	if !errors.Is(err, errCorrupt) {
		t.Fatalf("expected corrupt error, got %v", err)
	}
	if res.Title != outline.TitleError || len(res.Outline) != 0 {
		t.Errorf("expected error result, got %+v", res)
	}
	if snap := w.Stats(); snap.Failures != 1 {
		t.Errorf("expected 1 failure, got %+v", snap)
	}
}

func TestWorker_OutlineEmptyDocument(t *testing.T) {
	w := newTestWorker()
	res, err := w.Outline([]byte("\n\n   \n"), "blank.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Title != outline.TitleEmpty {
		t.Errorf("expected title %q, got %q", outline.TitleEmpty, res.Title)
	}
}

func TestWorker_ProcessJob(t *testing.T) {
	w := newTestWorker()
	ctx := context.Background()

	ok := NewJob("cover.txt", []byte(coverDoc))
	w.Process(ctx, ok)
	if snap := ok.Snapshot(); snap.Status != StatusCompleted || snap.Error != "" || snap.Result.Title != "Cover Page" {
		t.Errorf("unexpected snapshot: %+v", snap)
	}

	bad := NewJob("bad.pdf", []byte("x"))
	w.Process(ctx, bad)
	if snap := bad.Snapshot(); snap.Status != StatusCompleted || snap.Error == "" || snap.Result.Title != outline.TitleError {
		t.Errorf("expected completed error result, got %+v", snap)
	}

	unsupported := NewJob("sheet.csv", []byte("a,b"))
	w.Process(ctx, unsupported)
	if snap := unsupported.Snapshot(); snap.Status != StatusFailed {
		t.Errorf("expected failed status, got %+v", snap)
	}
}

func TestWorker_ProcessCanceled(t *testing.T) {
	w := newTestWorker()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	job := NewJob("cover.txt", []byte(coverDoc))
	w.Process(ctx, job)
	if snap := job.Snapshot(); snap.Status != StatusFailed {
		t.Errorf("expected failed status, got %q", snap.Status)
	}
}

func testConfig() config.Config {
	return config.Config{WorkerCount: 2, MaxQueueSize: 4, JobTTL: time.Hour}
}

func TestOrchestrator_SubmitAndComplete(t *testing.T) {
	o := NewOrchestrator(testConfig(), newTestWorker(), discardLogger())
	o.Start(context.Background())
	defer o.Stop()

	job := NewJob("cover.txt", []byte(coverDoc))
	if err := o.Submit(job); err != nil {
		t.Fatalf("unexpected submit error: %v", err)
	}
	if o.GetJob(job.ID) != job {
		t.Fatal("expected job to be registered")
	}

	deadline := time.Now().Add(5 * time.Second)
	for job.Snapshot().Status != StatusCompleted {
		if time.Now().After(deadline) {
			t.Fatalf("job did not complete, status %q", job.Snapshot().Status)
		}
		time.Sleep(5 * time.Millisecond)
	}
	if res := job.Snapshot().Result; res == nil || res.Title != "Cover Page" {
		t.Errorf("unexpected result: %+v", res)
	}
}

func TestOrchestrator_QueueFull(t *testing.T) {
	cfg := testConfig()
	cfg.MaxQueueSize = 1
	o := NewOrchestrator(cfg, newTestWorker(), discardLogger())
	// Workers are not started, so the queue never drains.
	defer o.Stop()

	if err := o.Submit(NewJob("a.txt", nil)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second := NewJob("b.txt", nil)
	if err := o.Submit(second); err == nil {
		t.Fatal("expected queue full error")
	}
	if second.Snapshot().Status != StatusFailed {
		t.Errorf("expected rejected job to be failed, got %q", second.Snapshot().Status)
	}
	if o.QueueDepth() != 1 {
		t.Errorf("expected queue depth 1, got %d", o.QueueDepth())
	}
}
