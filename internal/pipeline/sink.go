package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dgallion1/docoutline/internal/outline"
	"github.com/dgallion1/docoutline/internal/pathstore"
)

// Sink stores outline results by document name and reads them back.
// Lookup returns nil, nil for unknown names.
type Sink interface {
	Write(ctx context.Context, name string, res outline.Result) error
	Lookup(ctx context.Context, name string) (*outline.Result, error)
}

// MarshalResult renders a result as indented JSON without HTML escaping.
func MarshalResult(res outline.Result) ([]byte, error) {
	if res.Outline == nil {
		res.Outline = []outline.Entry{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DirSink writes one <name>.json file per document into Dir.
type DirSink struct {
	Dir string
}

func (s DirSink) Write(ctx context.Context, name string, res outline.Result) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	data, err := MarshalResult(res)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	if err := os.WriteFile(s.path(name), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

func (s DirSink) Lookup(ctx context.Context, name string) (*outline.Result, error) {
	data, err := os.ReadFile(s.path(name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	var res outline.Result
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return &res, nil
}

func (s DirSink) path(name string) string {
	return filepath.Join(s.Dir, filepath.Base(name)+".json")
}

// PathstoreSink stores outlines as pathstore nodes under Prefix.
type PathstoreSink struct {
	Client *pathstore.Client
	Prefix string
}

func (s PathstoreSink) Write(ctx context.Context, name string, res outline.Result) error {
	if res.Outline == nil {
		res.Outline = []outline.Entry{}
	}
	return s.Client.PutNode(ctx, s.key(name), pathstore.NodeRequest{
		Value:      res,
		MemoryType: "semantic",
		Salience:   0.5,
		Source:     "docoutline",
	})
}

func (s PathstoreSink) Lookup(ctx context.Context, name string) (*outline.Result, error) {
	node, err := s.Client.GetNode(ctx, s.key(name))
	if err != nil || node == nil {
		return nil, err
	}
	var res outline.Result
	if err := json.Unmarshal(node.Value, &res); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return &res, nil
}

func (s PathstoreSink) key(name string) string {
	return s.Prefix + "/" + filepath.Base(name)
}
