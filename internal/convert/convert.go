// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns Word documents into Markdown files with extracted
// images, one output directory per document.
//
// For an input X.docx the layout under the output directory is:
//
//	X/output.md
//	X/Images/<extracted files>
//	X/outline.yaml   (only when outlines are enabled)
package convert

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/word2md/internal/docx"
	"github.com/pdiddy/word2md/internal/heading"
	"github.com/pdiddy/word2md/internal/markdown"
	"github.com/pdiddy/word2md/pkg/types"
)

const (
	// DefaultOutputDir is the base directory for converted documents.
	DefaultOutputDir = "generate_data"
	// markdownFile is the Markdown file name inside each document directory.
	markdownFile = "output.md"
)

// Source is an opened document: its block sequence and embedded images.
// *docx.Reader implements it.
type Source interface {
	Blocks() ([]types.Block, error)
	ExtractImages(dir string) ([]string, error)
	Close() error
}

// OpenFunc opens the document at path.
type OpenFunc func(path string) (Source, error)

// OpenDocx opens a .docx file.
func OpenDocx(path string) (Source, error) {
	r, err := docx.Open(path)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Recorder persists conversion outcomes. *history.Store implements it.
type Recorder interface {
	Record(ctx context.Context, c types.Conversion) error
}

// Converter converts documents according to its configuration.
type Converter struct {
	open    OpenFunc
	cfg     types.ConversionConfig
	history Recorder
	now     func() time.Time
}

// Option configures a Converter.
type Option func(*Converter)

// WithOpener replaces the document opener (default OpenDocx).
func WithOpener(open OpenFunc) Option {
	return func(c *Converter) { c.open = open }
}

// WithHistory records every conversion outcome in r.
func WithHistory(r Recorder) Option {
	return func(c *Converter) { c.history = r }
}

// WithClock replaces the clock used for ConvertedAt timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Converter) { c.now = now }
}

// New returns a Converter. An empty OutputDir uses DefaultOutputDir.
func New(cfg types.ConversionConfig, opts ...Option) *Converter {
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}
	c := &Converter{
		open: OpenDocx,
		cfg:  cfg,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Failed    int
	// Conversions lists each document's record in input order.
	Conversions []types.Conversion
}

// Total returns the total number of documents processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Failed
}

// HasFailures reports whether any document failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// DocumentFor returns the Document record for the .docx at path.
func (c *Converter) DocumentFor(path string) types.Document {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return types.Document{
		ID:         base,
		SourcePath: path,
		OutputDir:  filepath.Join(c.cfg.OutputDir, base),
	}
}

// ConvertDocument converts the document at path, writing output.md and the
// Images directory under the document's output directory. An existing
// output.md is overwritten. Diagnostics are written to w.
func (c *Converter) ConvertDocument(ctx context.Context, path string, w io.Writer) (types.Conversion, error) {
	doc := c.DocumentFor(path)
	conv := types.Conversion{
		Document:     doc,
		MarkdownPath: filepath.Join(doc.OutputDir, markdownFile),
	}

	if err := ctx.Err(); err != nil {
		return conv, err
	}

	src, err := c.open(path)
	if err != nil {
		return conv, err
	}
	defer src.Close()

	blocks, err := src.Blocks()
	if err != nil {
		return conv, err
	}

	if err := os.MkdirAll(doc.OutputDir, 0o755); err != nil {
		return conv, fmt.Errorf("creating output directory: %w", err)
	}

	images, err := src.ExtractImages(filepath.Join(doc.OutputDir, markdown.ImagesDir))
	if err != nil {
		return conv, err
	}

	res := heading.Run(blocks, images)
	if res.Title != "" {
		fmt.Fprintf(w, "primary title matched: %s\n", res.Title)
	} else {
		fmt.Fprintf(w, "no primary title matched: %s\n", doc.ID)
	}
	if res.ImagesMissed > 0 {
		fmt.Fprintf(w, "warning: %s has %d image paragraph(s) but only %d extracted image(s)\n",
			doc.ID, res.ImagesUsed+res.ImagesMissed, len(images))
	}

	if err := os.WriteFile(conv.MarkdownPath, []byte(markdown.Assemble(res.Items)), 0o644); err != nil {
		return conv, fmt.Errorf("writing %s: %w", conv.MarkdownPath, err)
	}

	if c.cfg.Outline {
		outline := BuildOutline(path, res.Items)
		if err := WriteOutline(filepath.Join(doc.OutputDir, outlineFile), outline); err != nil {
			return conv, err
		}
	}

	conv.Title = res.Title
	conv.Headings = countKind(res.Items, types.ItemHeading)
	conv.Images = res.ImagesUsed
	conv.ImagesExtracted = len(images)
	return conv, nil
}

// ConvertBatch converts each path in order, printing per-file status to w
// and returning a summary. A failed document does not stop the batch; a
// cancelled context does.
func (c *Converter) ConvertBatch(ctx context.Context, paths []string, w io.Writer) BatchResult {
	var result BatchResult
	for _, p := range paths {
		if ctx.Err() != nil {
			fmt.Fprintf(w, "cancelled: %d document(s) not converted\n", len(paths)-result.Total())
			break
		}

		conv, err := c.ConvertDocument(ctx, p, w)
		conv.ConvertedAt = c.now().UTC()
		if err != nil {
			conv.Status = types.ConversionFailed
			conv.Error = err.Error()
			result.Failed++
			fmt.Fprintf(w, "failed:  %s (%v)\n", conv.ID, err)
		} else {
			conv.Status = types.ConversionDone
			result.Converted++
			fmt.Fprintf(w, "converted: %s -> %s\n", conv.ID, conv.MarkdownPath)
		}
		result.Conversions = append(result.Conversions, conv)

		if c.history != nil {
			if err := c.history.Record(ctx, conv); err != nil {
				fmt.Fprintf(w, "warning: recording history for %s: %v\n", conv.ID, err)
			}
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d failed (total: %d)\n",
		result.Converted, result.Failed, result.Total())
	return result
}

func countKind(items []types.Item, kind types.ItemKind) int {
	n := 0
	for _, it := range items {
		if it.Kind == kind {
			n++
		}
	}
	return n
}
