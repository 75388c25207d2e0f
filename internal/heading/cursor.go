// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package heading

// ImageCursor walks the extracted image names front to back. It is a value
// type: Next returns the advanced cursor instead of mutating the receiver.
type ImageCursor struct {
	names []string
	pos   int
}

// NewImageCursor returns a cursor positioned at the first name.
func NewImageCursor(names []string) ImageCursor {
	return ImageCursor{names: names}
}

// Next returns the current name, its 1-based number, and the cursor
// advanced past it. ok is false once the names are exhausted, in which case
// the returned cursor equals c.
func (c ImageCursor) Next() (name string, number int, next ImageCursor, ok bool) {
	if c.pos >= len(c.names) {
		return "", 0, c, false
	}
	return c.names[c.pos], c.pos + 1, ImageCursor{names: c.names, pos: c.pos + 1}, true
}

// Used returns how many names have been consumed.
func (c ImageCursor) Used() int { return c.pos }

// Remaining returns how many names are left.
func (c ImageCursor) Remaining() int { return len(c.names) - c.pos }
