// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the word2md pipeline:
// the block sequence read from a Word document, the classified items the
// heading engine emits, conversion records, and configuration.
package types

// Block is one unit of document body content in original order. It is
// either a *ParagraphBlock or a *TableBlock.
type Block interface {
	block()
}

// ParagraphBlock is a body paragraph.
type ParagraphBlock struct {
	// Text is the paragraph text with surrounding whitespace trimmed.
	Text string `json:"text" yaml:"text"`

	// HasImage reports whether any run in the paragraph carries an inline
	// drawing (a DrawingML graphicData element).
	HasImage bool `json:"has_image" yaml:"has_image"`
}

// TableBlock is a body table flattened to cell text, row by row. Each cell
// holds its paragraphs joined by newlines, trimmed.
type TableBlock struct {
	Rows [][]string `json:"rows" yaml:"rows"`
}

// IsEmpty reports whether the paragraph has neither text nor an image.
func (p *ParagraphBlock) IsEmpty() bool {
	return p.Text == "" && !p.HasImage
}

func (*ParagraphBlock) block() {}
func (*TableBlock) block()     {}
