// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package docx reads Word (.docx) documents: the ordered body block
// sequence from word/document.xml and the embedded media files.
//
// A .docx is a ZIP container of WordprocessingML parts. Only the parts the
// converter needs are read: the main document body and word/media/.
package docx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/word2md/pkg/types"
)

const (
	documentPart = "word/document.xml"
	mediaPrefix  = "word/media/"
)

// Reader provides access to the content of one .docx file.
type Reader struct {
	path  string
	zip   *zip.ReadCloser
	files map[string]*zip.File
}

// Open opens the .docx at path. The caller must Close the Reader.
func Open(path string) (*Reader, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening docx %s: %w", path, err)
	}

	r := &Reader{
		path:  path,
		zip:   zr,
		files: make(map[string]*zip.File, len(zr.File)),
	}
	for _, f := range zr.File {
		r.files[f.Name] = f
	}

	if r.files[documentPart] == nil {
		zr.Close()
		return nil, fmt.Errorf("%s not found in %s", documentPart, path)
	}
	return r, nil
}

// Close releases the underlying ZIP file.
func (r *Reader) Close() error {
	return r.zip.Close()
}

// Path returns the file path the Reader was opened from.
func (r *Reader) Path() string { return r.path }

// Blocks returns the body paragraphs and tables in document order.
// Other body children (section properties, content controls) are ignored.
func (r *Reader) Blocks() ([]types.Block, error) {
	rc, err := r.files[documentPart].Open()
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", documentPart, err)
	}
	defer rc.Close()

	blocks, err := ParseBody(rc)
	if err != nil {
		return nil, fmt.Errorf("parsing %s in %s: %w", documentPart, r.path, err)
	}
	return blocks, nil
}

// ParseBody decodes a WordprocessingML document stream and returns the
// direct children of <w:body> that are paragraphs or tables, in order.
// encoding/xml collects repeated elements per field, which loses the
// interleaving of paragraphs and tables, so the body is walked token by
// token and each child is decoded on its own.
func ParseBody(in io.Reader) ([]types.Block, error) {
	dec := xml.NewDecoder(in)

	var (
		blocks []types.Block
		inBody bool
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if !inBody {
				if t.Name.Local == "body" {
					inBody = true
				}
				continue
			}

			var n node
			if err := dec.DecodeElement(&n, &t); err != nil {
				return nil, fmt.Errorf("decoding <%s>: %w", t.Name.Local, err)
			}
			switch t.Name.Local {
			case "p":
				blocks = append(blocks, paragraphBlock(&n))
			case "tbl":
				blocks = append(blocks, tableBlock(&n))
			}
		case xml.EndElement:
			if inBody && t.Name.Local == "body" {
				return blocks, nil
			}
		}
	}

	if !inBody {
		return nil, fmt.Errorf("document has no body")
	}
	return blocks, nil
}

// node is a generic WordprocessingML element. Children keep their order.
type node struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Text    string     `xml:",chardata"`
	Nodes   []node     `xml:",any"`
}

// attr returns the value of the attribute with the given local name.
func (n *node) attr(local string) string {
	for _, a := range n.Attrs {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

func paragraphBlock(p *node) *types.ParagraphBlock {
	var text strings.Builder
	hasImage := false
	for i := range p.Nodes {
		collectRuns(&p.Nodes[i], &text, &hasImage)
	}
	return &types.ParagraphBlock{
		Text:     strings.TrimSpace(text.String()),
		HasImage: hasImage,
	}
}

// collectRuns appends the text of every run reachable from n without
// descending into nested paragraphs, and flags runs holding a drawing.
func collectRuns(n *node, text *strings.Builder, hasImage *bool) {
	switch n.XMLName.Local {
	case "r":
		runText(n, text)
		if containsElement(n, "graphicData") {
			*hasImage = true
		}
	case "hyperlink", "ins", "smartTag", "fldSimple", "customXml":
		for i := range n.Nodes {
			collectRuns(&n.Nodes[i], text, hasImage)
		}
	}
}

func runText(r *node, text *strings.Builder) {
	for _, c := range r.Nodes {
		switch c.XMLName.Local {
		case "t":
			text.WriteString(c.Text)
		case "tab", "ptab":
			text.WriteByte('\t')
		case "br":
			// Page and column breaks carry no text.
			if t := c.attr("type"); t == "" || t == "textWrapping" {
				text.WriteByte('\n')
			}
		case "cr":
			text.WriteByte('\n')
		case "noBreakHyphen":
			text.WriteByte('-')
		}
	}
}

func containsElement(n *node, local string) bool {
	for i := range n.Nodes {
		if n.Nodes[i].XMLName.Local == local || containsElement(&n.Nodes[i], local) {
			return true
		}
	}
	return false
}

func tableBlock(tbl *node) *types.TableBlock {
	t := &types.TableBlock{}
	for _, tr := range tbl.Nodes {
		if tr.XMLName.Local != "tr" {
			continue
		}
		var row []string
		for _, tc := range tr.Nodes {
			if tc.XMLName.Local != "tc" {
				continue
			}
			row = append(row, cellText(&tc))
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// cellText joins the cell's paragraphs with newlines, then trims.
func cellText(tc *node) string {
	var paras []string
	for i := range tc.Nodes {
		if tc.Nodes[i].XMLName.Local != "p" {
			continue
		}
		var text strings.Builder
		ignored := false
		for j := range tc.Nodes[i].Nodes {
			collectRuns(&tc.Nodes[i].Nodes[j], &text, &ignored)
		}
		paras = append(paras, text.String())
	}
	return strings.TrimSpace(strings.Join(paras, "\n"))
}
