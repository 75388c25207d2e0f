//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// inputDir holds the .docx files converted by the Convert target.
const inputDir = "testdata"

// Convert builds the CLI and converts every .docx under testdata/ into generate_data/.
func Convert() error {
	mg.Deps(Build)

	docs, err := filepath.Glob(filepath.Join(inputDir, "*.docx"))
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		fmt.Printf("[convert] No .docx files in %s.\n", inputDir)
		return nil
	}

	args := append([]string{"convert", "--output-dir", outputDir}, docs...)
	return sh.RunV(filepath.Join(binDir, binName), args...)
}

// Clean removes build output and converted documents.
func Clean() error {
	for _, dir := range []string{binDir, outputDir} {
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("removing %s: %w", dir, err)
		}
	}
	return nil
}
