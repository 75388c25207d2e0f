// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markdown

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/word2md/pkg/types"
)

// ImagesDir is the image folder name, relative to output.md.
const ImagesDir = "Images"

// blockSeparator separates rendered items in the output.
const blockSeparator = "\n\n"

// RenderItem renders one item.
func RenderItem(it types.Item) string {
	switch it.Kind {
	case types.ItemHeading:
		return strings.Repeat("#", it.HeadingLevel()) + " " + it.Text
	case types.ItemImage:
		return fmt.Sprintf("![image_%d](./%s/%s)", it.Index, ImagesDir, it.Filename)
	default:
		return it.Text
	}
}

// Assemble renders items in order and joins them with blank lines. The
// result has no trailing newline.
func Assemble(items []types.Item) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = RenderItem(it)
	}
	return strings.Join(parts, blockSeparator)
}

// Write assembles items and writes them to w.
func Write(w io.Writer, items []types.Item) error {
	_, err := io.WriteString(w, Assemble(items))
	return err
}
