// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTable(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
		want string
	}{
		{
			name: "header and one row",
			rows: [][]string{{"A", "B"}, {"1", "2"}},
			want: "| A | B |\n| --- | --- |\n| 1 | 2 |",
		},
		{
			name: "header only",
			rows: [][]string{{"Name", "Value", "Unit"}},
			want: "| Name | Value | Unit |\n| --- | --- | --- |",
		},
		{
			name: "ragged rows keep their own width",
			rows: [][]string{{"A", "B"}, {"1", "2", "3"}, {"x"}},
			want: "| A | B |\n| --- | --- |\n| 1 | 2 | 3 |\n| x |",
		},
		{
			name: "empty cells",
			rows: [][]string{{"", "B"}, {"1", ""}},
			want: "|  | B |\n| --- | --- |\n| 1 |  |",
		},
		{
			name: "no rows",
			rows: nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderTable(tt.rows))
		})
	}
}

func TestRenderTable_LineCount(t *testing.T) {
	got := RenderTable([][]string{{"A", "B"}, {"1", "2"}})
	assert.Len(t, strings.Split(got, "\n"), 3)
}
