// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ItemKind tags the variant of a classified Item.
type ItemKind string

const (
	ItemHeading ItemKind = "heading"
	ItemBody    ItemKind = "body"
	ItemTable   ItemKind = "table"
	ItemImage   ItemKind = "image"
)

// MaxHeadingLevel is the deepest heading Markdown can express. Deeper
// computed levels are clamped to it when rendered.
const MaxHeadingLevel = 6

// Item is one element of the classified output sequence. Which fields are
// meaningful depends on Kind.
type Item struct {
	Kind ItemKind `json:"kind" yaml:"kind"`

	// Level is the computed heading level for ItemHeading. It may exceed
	// MaxHeadingLevel; see HeadingLevel.
	Level int `json:"level,omitempty" yaml:"level,omitempty"`

	// Text is the heading text, body text, or rendered table Markdown.
	Text string `json:"text,omitempty" yaml:"text,omitempty"`

	// Index is the 1-based image number for ItemImage.
	Index int `json:"index,omitempty" yaml:"index,omitempty"`

	// Filename is the extracted image file name for ItemImage.
	Filename string `json:"filename,omitempty" yaml:"filename,omitempty"`
}

// HeadingLevel returns Level clamped to the range 1..MaxHeadingLevel.
func (it Item) HeadingLevel() int {
	switch {
	case it.Level > MaxHeadingLevel:
		return MaxHeadingLevel
	case it.Level < 1:
		return 1
	}
	return it.Level
}

// Heading returns a heading item.
func Heading(level int, text string) Item {
	return Item{Kind: ItemHeading, Level: level, Text: text}
}

// Body returns a body-text item.
func Body(text string) Item {
	return Item{Kind: ItemBody, Text: text}
}

// Table returns an item holding rendered table Markdown.
func Table(markdown string) Item {
	return Item{Kind: ItemTable, Text: markdown}
}

// Image returns an image reference item. index is 1-based.
func Image(index int, filename string) Item {
	return Item{Kind: ItemImage, Index: index, Filename: filename}
}
