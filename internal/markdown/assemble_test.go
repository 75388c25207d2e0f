// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markdown

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/pdiddy/word2md/pkg/types"
)

func TestRenderItem(t *testing.T) {
	tests := []struct {
		name string
		item types.Item
		want string
	}{
		{"level 1", types.Heading(1, "Annual Plan"), "# Annual Plan"},
		{"level 3", types.Heading(3, "3.2"), "### 3.2"},
		{"level 6", types.Heading(6, "1.2.3.4.5"), "###### 1.2.3.4.5"},
		{"level 7 clamps", types.Heading(7, "1.2.3.4.5.6"), "###### 1.2.3.4.5.6"},
		{"body", types.Body("Scope of Work"), "Scope of Work"},
		{"table", types.Table("| A |\n| --- |"), "| A |\n| --- |"},
		{"image", types.Image(2, "image10.png"), "![image_2](./Images/image10.png)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderItem(tt.item))
		})
	}
}

func TestAssemble(t *testing.T) {
	items := []types.Item{
		types.Heading(1, "Annual Plan"),
		types.Heading(2, "1 Overview"),
		types.Heading(3, "1.1"),
		types.Body("Background"),
		types.Image(1, "image1.png"),
	}

	want := "# Annual Plan\n\n## 1 Overview\n\n### 1.1\n\nBackground\n\n![image_1](./Images/image1.png)"
	assert.Equal(t, want, Assemble(items))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, items))
	assert.Equal(t, want, buf.String())
}

func TestAssemble_Empty(t *testing.T) {
	assert.Equal(t, "", Assemble(nil))
}

// TestAssemble_ParsesAsMarkdown checks the emitted heading levels as a
// CommonMark parser sees them.
func TestAssemble_ParsesAsMarkdown(t *testing.T) {
	items := []types.Item{
		types.Heading(1, "Title"),
		types.Heading(2, "1 Scope"),
		types.Heading(6, "1.2.3.4.5"),
		types.Heading(7, "1.2.3.4.5.6"),
		types.Body("text"),
		types.Table("| A | B |\n| --- | --- |\n| 1 | 2 |"),
	}
	src := []byte(Assemble(items))

	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	type heading struct {
		level int
		text  string
	}
	var got []heading
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if h, ok := n.(*ast.Heading); ok && entering {
			got = append(got, heading{h.Level, string(h.Lines().Value(src))})
		}
		return ast.WalkContinue, nil
	})
	require.NoError(t, err)

	assert.Equal(t, []heading{
		{1, "Title"},
		{2, "1 Scope"},
		{6, "1.2.3.4.5"},
		{6, "1.2.3.4.5.6"},
	}, got)
}
