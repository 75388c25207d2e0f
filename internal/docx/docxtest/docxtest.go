// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package docxtest builds minimal .docx files for tests.
package docxtest

import (
	"archive/zip"
	"fmt"
	"os"
	"strings"
	"testing"
)

const documentHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" ` +
	`xmlns:wp="http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing" ` +
	`xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" ` +
	`xmlns:pic="http://schemas.openxmlformats.org/drawingml/2006/picture" ` +
	`xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"><w:body>`

const documentFooter = `<w:sectPr/></w:body></w:document>`

// Para returns a paragraph with a single text run.
func Para(text string) string {
	return fmt.Sprintf(`<w:p><w:r><w:t xml:space="preserve">%s</w:t></w:r></w:p>`, escape(text))
}

// ImagePara returns a paragraph with a text run (omitted when text is
// empty) followed by a run holding an inline drawing.
func ImagePara(text string) string {
	var b strings.Builder
	b.WriteString("<w:p>")
	if text != "" {
		fmt.Fprintf(&b, `<w:r><w:t xml:space="preserve">%s</w:t></w:r>`, escape(text))
	}
	b.WriteString(`<w:r><w:drawing><wp:inline><a:graphic>` +
		`<a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/picture">` +
		`<pic:pic><pic:blipFill><a:blip r:embed="rId5"/></pic:blipFill></pic:pic>` +
		`</a:graphicData></a:graphic></wp:inline></w:drawing></w:r>`)
	b.WriteString("</w:p>")
	return b.String()
}

// Table returns a table with one paragraph per cell.
func Table(rows ...[]string) string {
	var b strings.Builder
	b.WriteString("<w:tbl><w:tblPr/>")
	for _, row := range rows {
		b.WriteString("<w:tr>")
		for _, cell := range row {
			fmt.Fprintf(&b, `<w:tc><w:tcPr/>%s</w:tc>`, Para(cell))
		}
		b.WriteString("</w:tr>")
	}
	b.WriteString("</w:tbl>")
	return b.String()
}

// Document wraps body elements in a complete word/document.xml.
func Document(body ...string) string {
	return documentHeader + strings.Join(body, "") + documentFooter
}

// Write creates a .docx at path whose word/document.xml is doc and whose
// word/media/ holds the given files.
func Write(t *testing.T, path, doc string, media map[string][]byte) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	parts := map[string][]byte{
		"[Content_Types].xml": []byte(`<?xml version="1.0" encoding="UTF-8"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"/>`),
		"word/document.xml":   []byte(doc),
	}
	for name, data := range media {
		parts["word/media/"+name] = data
	}
	for name, data := range parts {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write(data); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
}

func escape(s string) string {
	return strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;").Replace(s)
}
