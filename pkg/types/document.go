// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ConversionStatus indicates the outcome of converting one document.
type ConversionStatus string

const (
	ConversionNone   ConversionStatus = "none"
	ConversionDone   ConversionStatus = "converted"
	ConversionFailed ConversionStatus = "failed"
)

// Document identifies one source document and where its output goes.
type Document struct {
	// ID is the source file name without extension (e.g. "annual-plan").
	ID string `json:"id" yaml:"id"`

	// SourcePath is the path to the .docx file.
	SourcePath string `json:"source_path" yaml:"source_path"`

	// OutputDir is the per-document output directory (<output_dir>/<ID>).
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// Conversion records the result of converting one document.
type Conversion struct {
	Document `yaml:",inline"`

	// MarkdownPath is the path of the written output.md.
	MarkdownPath string `json:"markdown_path" yaml:"markdown_path"`

	// Title is the inferred primary title, empty when none was found.
	Title string `json:"title" yaml:"title"`

	// Headings counts the heading items written.
	Headings int `json:"headings" yaml:"headings"`

	// Images counts the image references written.
	Images int `json:"images" yaml:"images"`

	// ImagesExtracted counts the files found in the image directory.
	ImagesExtracted int `json:"images_extracted" yaml:"images_extracted"`

	// Status is the conversion outcome.
	Status ConversionStatus `json:"status" yaml:"status"`

	// Error records a failure message. Empty on success.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`

	// ConvertedAt is when the conversion finished.
	ConvertedAt time.Time `json:"converted_at" yaml:"converted_at"`
}

// OutlineEntry is one heading in a document outline.
type OutlineEntry struct {
	// Level is the rendered heading level (1-6).
	Level int `json:"level" yaml:"level"`

	// Title is the heading text.
	Title string `json:"title" yaml:"title"`
}

// Outline holds the inferred heading structure of a converted document,
// written to outline.yaml when requested.
type Outline struct {
	// Source is the .docx path the outline was inferred from.
	Source string `json:"source" yaml:"source"`

	// Sections lists the headings in document order.
	Sections []OutlineEntry `json:"sections" yaml:"sections"`
}
