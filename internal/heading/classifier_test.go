// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package heading

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/word2md/pkg/types"
)

func para(text string) *types.ParagraphBlock {
	return &types.ParagraphBlock{Text: text}
}

func imagePara(text string) *types.ParagraphBlock {
	return &types.ParagraphBlock{Text: text, HasImage: true}
}

func TestRun(t *testing.T) {
	tests := []struct {
		name      string
		blocks    []types.Block
		images    []string
		want      []types.Item
		wantTitle string
	}{
		{
			name: "front matter becomes title without first token",
			blocks: []types.Block{
				para("RPT-001 Annual Plan"),
				para("1 Overview"),
			},
			want: []types.Item{
				types.Heading(1, "Annual Plan"),
				types.Heading(2, "1 Overview"),
			},
			wantTitle: "Annual Plan",
		},
		{
			name: "multi-paragraph front matter joins with spaces",
			blocks: []types.Block{
				para("RPT-001"),
				para("Annual"),
				para("Plan 2025"),
				para("1 Overview"),
			},
			want: []types.Item{
				types.Heading(1, "Annual Plan 2025"),
				types.Heading(2, "1 Overview"),
			},
			wantTitle: "Annual Plan 2025",
		},
		{
			name: "single token title is kept",
			blocks: []types.Block{
				para("Handbook"),
				para("1 Overview"),
			},
			want: []types.Item{
				types.Heading(1, "Handbook"),
				types.Heading(2, "1 Overview"),
			},
			wantTitle: "Handbook",
		},
		{
			name: "no front matter means no title",
			blocks: []types.Block{
				para("1 Overview"),
				para("Body text."),
			},
			want: []types.Item{
				types.Heading(2, "1 Overview"),
				types.Body("Body text."),
			},
		},
		{
			name: "dotted heading splits trailing text",
			blocks: []types.Block{
				para("1 Overview"),
				para("3.2 Scope of Work"),
				para("1.2.3 Details"),
			},
			want: []types.Item{
				types.Heading(2, "1 Overview"),
				types.Heading(3, "3.2"),
				types.Body("Scope of Work"),
				types.Heading(4, "1.2.3"),
				types.Body("Details"),
			},
		},
		{
			name: "dotted heading without trailing text",
			blocks: []types.Block{
				para("1 Overview"),
				para("1.1"),
			},
			want: []types.Item{
				types.Heading(2, "1 Overview"),
				types.Heading(3, "1.1"),
			},
		},
		{
			name: "date and hyphen lines are dropped after content starts",
			blocks: []types.Block{
				para("1 Overview"),
				para("2024-01-01 Revision"),
				para("Pre-installed options - none"),
				para("Kept sentence."),
			},
			want: []types.Item{
				types.Heading(2, "1 Overview"),
				types.Body("Kept sentence."),
			},
		},
		{
			name: "first top-level line with hyphen starts content but is dropped",
			blocks: []types.Block{
				para("1 Pre-amble"),
				para("Draft Copy"),
				para("2 Scope"),
				para("Text."),
			},
			want: []types.Item{
				types.Heading(1, "Copy"),
				types.Heading(2, "2 Scope"),
				types.Body("Text."),
			},
			wantTitle: "Copy",
		},
		{
			name: "title flushed at end when no level-2 heading",
			blocks: []types.Block{
				para("1 Pre-amble"),
				para("1.1 Intro"),
				para("DOC42 Field Guide"),
			},
			want: []types.Item{
				types.Heading(3, "1.1"),
				types.Body("Intro"),
				types.Heading(1, "Field Guide"),
			},
			wantTitle: "Field Guide",
		},
		{
			name: "title flushed only at the first level-2 heading",
			blocks: []types.Block{
				para("X Title"),
				para("1 One"),
				para("Body."),
				para("2 Two"),
			},
			want: []types.Item{
				types.Heading(1, "Title"),
				types.Heading(2, "1 One"),
				types.Body("Body."),
				types.Heading(2, "2 Two"),
			},
			wantTitle: "Title",
		},
		{
			name: "six-level numbering clamps when rendered",
			blocks: []types.Block{
				para("1 Overview"),
				para("1.2.3.4.5 Five"),
				para("1.2.3.4.5.6 Six"),
			},
			want: []types.Item{
				types.Heading(2, "1 Overview"),
				types.Heading(6, "1.2.3.4.5"),
				types.Body("Five"),
				types.Heading(7, "1.2.3.4.5.6"),
				types.Body("Six"),
			},
		},
		{
			name: "tables bypass front matter skip",
			blocks: []types.Block{
				&types.TableBlock{Rows: [][]string{{"A", "B"}, {"1", "2"}}},
				para("1 Overview"),
				&types.TableBlock{Rows: [][]string{{"C"}}},
			},
			want: []types.Item{
				types.Table("| A | B |\n| --- | --- |\n| 1 | 2 |"),
				types.Heading(2, "1 Overview"),
				types.Table("| C |\n| --- |"),
			},
		},
		{
			name: "empty paragraphs are skipped",
			blocks: []types.Block{
				para(""),
				para("1 Overview"),
				para(""),
				para("Text."),
			},
			want: []types.Item{
				types.Heading(2, "1 Overview"),
				types.Body("Text."),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Run(tt.blocks, tt.images)
			assert.Equal(t, tt.want, got.Items)
			assert.Equal(t, tt.wantTitle, got.Title)
		})
	}
}

func TestRun_Images(t *testing.T) {
	blocks := []types.Block{
		imagePara("Cover"), // front matter: dropped, no image consumed
		para("1 Overview"),
		imagePara(""),
		imagePara("1.1 Figure caption"),
		imagePara("2024-01-01"), // dropped with its image
		imagePara("Diagram"),
	}
	images := []string{"image1.png", "image2.png", "image3.png"}

	got := Run(blocks, images)

	assert.Equal(t, []types.Item{
		types.Heading(1, "Cover"),
		types.Heading(2, "1 Overview"),
		types.Body(""),
		types.Image(1, "image1.png"),
		types.Heading(3, "1.1"),
		types.Body("Figure caption"),
		types.Image(2, "image2.png"),
		types.Body("Diagram"),
		types.Image(3, "image3.png"),
	}, got.Items)
	assert.Equal(t, 3, got.ImagesUsed)
	assert.Zero(t, got.ImagesMissed)
}

func TestRun_ImageShortage(t *testing.T) {
	blocks := []types.Block{
		para("1 Overview"),
		imagePara("First"),
		imagePara("Second"),
	}

	got := Run(blocks, nil)

	assert.Equal(t, []types.Item{
		types.Heading(2, "1 Overview"),
		types.Body("First"),
		types.Body("Second"),
	}, got.Items)
	assert.Zero(t, got.ImagesUsed)
	assert.Equal(t, 2, got.ImagesMissed)
}

func TestRun_PartialImageShortage(t *testing.T) {
	blocks := []types.Block{
		para("1 Overview"),
		imagePara(""),
		imagePara(""),
	}

	got := Run(blocks, []string{"only.png"})

	assert.Equal(t, []types.Item{
		types.Heading(2, "1 Overview"),
		types.Body(""),
		types.Image(1, "only.png"),
		types.Body(""),
	}, got.Items)
	assert.Equal(t, 1, got.ImagesUsed)
	assert.Equal(t, 1, got.ImagesMissed)
}

func TestRun_Deterministic(t *testing.T) {
	blocks := []types.Block{
		para("RPT-9 Plan"),
		para("1 Overview"),
		imagePara("3.1 Pic"),
		&types.TableBlock{Rows: [][]string{{"a"}}},
	}
	images := []string{"image1.png"}

	assert.Equal(t, Run(blocks, images), Run(blocks, images))
}

func TestClassifier_Step(t *testing.T) {
	c := NewClassifier(nil)
	c.Step(para("Title Words"))
	c.Step(para("1 Intro"))
	c.Step(para("Body"))
	res := c.Finish()

	assert.Equal(t, "Words", res.Title)
	assert.Equal(t, []types.Item{
		types.Heading(1, "Words"),
		types.Heading(2, "1 Intro"),
		types.Body("Body"),
	}, res.Items)
}
