// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package picker selects the documents to convert, either from paths given
// on the command line or from a modal file dialog.
package picker

import (
	"context"
	"errors"
	"fmt"

	"github.com/ncruces/zenity"
)

// Picker returns the paths of the documents to convert. An empty result
// with a nil error means nothing was selected.
type Picker interface {
	Pick(ctx context.Context) ([]string, error)
}

// Paths is a Picker that returns a fixed list.
type Paths []string

// Pick returns the paths unchanged.
func (p Paths) Pick(context.Context) ([]string, error) {
	return p, nil
}

// selectFunc abstracts the dialog call for testing.
type selectFunc func(opts ...zenity.Option) ([]string, error)

// Dialog is a Picker backed by the platform's multi-file open dialog,
// filtered to .docx files with an "All files" fallback.
type Dialog struct {
	title      string
	selectFile selectFunc
}

// DefaultTitle is the dialog window title.
const DefaultTitle = "Select DOCX files"

// NewDialog returns a Dialog with the given window title. An empty title
// uses DefaultTitle.
func NewDialog(title string) *Dialog {
	if title == "" {
		title = DefaultTitle
	}
	return &Dialog{title: title, selectFile: zenity.SelectFileMultiple}
}

// Filters are the file-type filters offered by the dialog, in order.
var Filters = zenity.FileFilters{
	{Name: "DOCX files", Patterns: []string{"*.docx"}, CaseFold: true},
	{Name: "All files", Patterns: []string{"*"}},
}

// Pick blocks until the user confirms or cancels the dialog. Cancelling is
// not an error; it returns no paths.
func (d *Dialog) Pick(ctx context.Context) ([]string, error) {
	paths, err := d.selectFile(
		zenity.Title(d.title),
		Filters,
		zenity.Context(ctx),
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("file dialog: %w", err)
	}
	return paths, nil
}
