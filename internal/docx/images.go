// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docx

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ExtractImages writes every embedded media file (word/media/*) into dir,
// overwriting files of the same name, and returns the names of all files
// in dir sorted lexically. Files already present in dir are included, so
// the result depends only on the directory contents after extraction.
//
// The heading engine attaches these names to image-bearing paragraphs by
// position, so the order returned here is the order they appear in the
// Markdown.
func (r *Reader) ExtractImages(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating image directory %s: %w", dir, err)
	}

	for _, f := range r.zip.File {
		if !strings.HasPrefix(f.Name, mediaPrefix) || f.FileInfo().IsDir() {
			continue
		}
		name := filepath.Base(f.Name)
		if err := writeZipFile(f.Open, filepath.Join(dir, name)); err != nil {
			return nil, fmt.Errorf("extracting %s: %w", f.Name, err)
		}
	}

	return ListImages(dir)
}

// ListImages returns the names of the regular files in dir, sorted.
func ListImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading image directory %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

func writeZipFile(open func() (io.ReadCloser, error), dst string) error {
	rc, err := open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
