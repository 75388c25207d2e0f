// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package heading

import (
	"regexp"
	"strings"
)

// Digits and whitespace are matched in the Unicode sense so full-width
// numbering ("１ 概述") and ideographic spaces classify like ASCII.
const (
	digit = `\p{Nd}`
	space = `[\s\v\p{Z}\x{85}\x{1c}-\x{1f}]`
)

// topLevel matches a section number followed by whitespace and a title,
// e.g. "12 Scope" but not "12.3" or "12.Scope". It both ends the front
// matter and marks a level-2 heading.
var topLevel = regexp.MustCompile(`^` + digit + `+` + space + `+[^.` + digit + `].*$`)

// datePrefix matches paragraphs that start with an ISO date, typically
// revision lines in the document header.
var datePrefix = regexp.MustCompile(`^` + digit + `{4}-` + digit + `{2}-` + digit + `{2}`)

// rule maps one numbering pattern to a heading level. When split is set,
// only the numeric token becomes the heading and the rest of the line is
// emitted as body text.
type rule struct {
	level  int
	match  *regexp.Regexp
	number *regexp.Regexp
	split  bool
}

// rules are tried in order; the first match wins.
var rules = []rule{
	{level: 2, match: topLevel},
	dotted(3),
	dotted(4),
	dotted(5),
	dotted(6),
	dotted(7),
}

// dotted builds the rule for a numbering of depth level-1 ("1.2" for 3,
// "1.2.3" for 4, ...). Anything after the last number that is not a
// period is allowed, which is why depth is tested shallow to deep.
func dotted(level int) rule {
	num := digit + `+` + strings.Repeat(`\.`+digit+`+`, level-2)
	return rule{
		level:  level,
		match:  regexp.MustCompile(`^` + num + `[^.]*$`),
		number: regexp.MustCompile(`^(` + num + `)(.*)$`),
		split:  true,
	}
}

// Kind tags the result of classifying one paragraph.
type Kind int

const (
	// Drop discards the whole paragraph, including any image it holds.
	Drop Kind = iota
	// Heading emits a heading, optionally followed by trailing body text.
	Heading
	// Body is text with no numbering; it becomes body text or title material.
	Body
	// Blank emits no text, but the paragraph still counts for image
	// attachment.
	Blank
)

// Classification is the outcome of matching a paragraph's text against the
// numbering rules.
type Classification struct {
	Kind  Kind
	Level int
	// Text is the heading text for Heading or the paragraph text for Body.
	Text string
	// Rest is the trimmed text that followed the number of a split heading.
	Rest string
}

// Classify matches text against the numbering rules. It is stateless: front
// matter and title handling live in Classifier.
func Classify(text string) Classification {
	if IsMetadataLine(text) {
		return Classification{Kind: Drop}
	}
	for _, r := range rules {
		if !r.match.MatchString(text) {
			continue
		}
		if !r.split {
			return Classification{Kind: Heading, Level: r.level, Text: text}
		}
		m := r.number.FindStringSubmatch(text)
		if m == nil {
			// The number matched but the remainder spans a line break.
			return Classification{Kind: Blank}
		}
		return Classification{
			Kind:  Heading,
			Level: r.level,
			Text:  m[1],
			Rest:  strings.TrimSpace(m[2]),
		}
	}
	return Classification{Kind: Body, Text: text}
}

// IsTopLevel reports whether text looks like a top-level numbered section.
func IsTopLevel(text string) bool {
	return topLevel.MatchString(text)
}

// IsMetadataLine reports whether text is dropped as document metadata: it
// starts with a YYYY-MM-DD date or contains a hyphen anywhere. The hyphen
// test also drops ordinary hyphenated sentences.
func IsMetadataLine(text string) bool {
	return datePrefix.MatchString(text) || strings.Contains(text, "-")
}
