// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package heading infers a Markdown heading hierarchy from numbered-outline
// text ("1 Scope", "1.2", "1.2.3 Details") and linearizes a document's
// blocks into headings, body text, tables and image references.
//
// Paragraphs before the first top-level numbered section are front matter.
// Their text, together with any unnumbered text seen before the first
// level-2 heading, forms the primary title. The title is emitted as the
// level-1 heading just before the first level-2 heading, or at the end of
// the document when there is none.
package heading

import (
	"strings"

	"github.com/pdiddy/word2md/internal/markdown"
	"github.com/pdiddy/word2md/pkg/types"
)

// Result is the classified form of one document.
type Result struct {
	// Items is the output sequence in emission order.
	Items []types.Item

	// Title is the emitted level-1 title, empty when none was emitted.
	Title string

	// ImagesUsed counts the image names consumed by image-bearing paragraphs.
	ImagesUsed int

	// ImagesMissed counts image-bearing paragraphs that found the image
	// list already exhausted.
	ImagesMissed int
}

// Classifier holds the walk state for one document. The zero value is not
// usable; create one with NewClassifier per document.
type Classifier struct {
	contentStarted      bool
	firstSecondaryFound bool
	primaryTitle        []string
	images              ImageCursor

	result Result
}

// NewClassifier returns a Classifier that attaches images from names, in
// order, to image-bearing paragraphs.
func NewClassifier(names []string) *Classifier {
	return &Classifier{images: NewImageCursor(names)}
}

// Run classifies blocks with a fresh Classifier and returns the result.
func Run(blocks []types.Block, images []string) Result {
	c := NewClassifier(images)
	for _, b := range blocks {
		c.Step(b)
	}
	return c.Finish()
}

// Step consumes the next block in document order.
func (c *Classifier) Step(b types.Block) {
	switch b := b.(type) {
	case *types.TableBlock:
		c.emit(types.Table(markdown.RenderTable(b.Rows)))
	case *types.ParagraphBlock:
		c.paragraph(b)
	}
}

func (c *Classifier) paragraph(p *types.ParagraphBlock) {
	if p.IsEmpty() {
		return
	}

	if !c.contentStarted {
		if !IsTopLevel(p.Text) {
			// Front matter is withheld from the body; its text is title
			// material and is not subject to the metadata filter.
			if p.Text != "" {
				c.primaryTitle = append(c.primaryTitle, p.Text)
			}
			return
		}
		c.contentStarted = true
	}

	cls := Classify(p.Text)
	switch cls.Kind {
	case Drop:
		return
	case Heading:
		if cls.Level == 2 && !c.firstSecondaryFound {
			c.firstSecondaryFound = true
			c.flushTitle()
		}
		c.emit(types.Heading(cls.Level, cls.Text))
		if cls.Rest != "" {
			c.emit(types.Body(cls.Rest))
		}
	case Body:
		// An image-only paragraph in the body still yields an empty text
		// block ahead of its image.
		if c.firstSecondaryFound {
			c.emit(types.Body(cls.Text))
		} else if cls.Text != "" {
			c.primaryTitle = append(c.primaryTitle, cls.Text)
		}
	}

	if p.HasImage {
		c.attachImage()
	}
}

func (c *Classifier) attachImage() {
	name, n, next, ok := c.images.Next()
	if !ok {
		c.result.ImagesMissed++
		return
	}
	c.images = next
	c.emit(types.Image(n, name))
}

// Finish flushes a pending primary title and returns the result. The
// Classifier must not be used afterwards.
func (c *Classifier) Finish() Result {
	if !c.firstSecondaryFound && len(c.primaryTitle) > 0 {
		c.flushTitle()
	}
	c.result.ImagesUsed = c.images.Used()
	return c.result
}

// flushTitle emits the accumulated front-matter text as the level-1
// heading. The first space-delimited token is a document number and is
// dropped; a title of one token is kept whole.
func (c *Classifier) flushTitle() {
	title := strings.TrimSpace(strings.Join(c.primaryTitle, " "))
	if _, rest, ok := strings.Cut(title, " "); ok {
		title = strings.TrimSpace(rest)
	}
	if title == "" {
		return
	}
	c.result.Title = title
	c.emit(types.Heading(1, title))
}

func (c *Classifier) emit(it types.Item) {
	c.result.Items = append(c.result.Items, it)
}
