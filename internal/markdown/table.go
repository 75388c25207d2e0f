// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package markdown renders classified document items as Markdown text.
package markdown

import "strings"

// RenderTable renders rows of cell text as a Markdown pipe table. A
// separator row with one "---" per header cell follows the first row.
// Rows are rendered at their own width; ragged tables are not padded.
func RenderTable(rows [][]string) string {
	lines := make([]string, 0, len(rows)+1)
	for i, row := range rows {
		lines = append(lines, renderRow(row))
		if i == 0 {
			sep := make([]string, len(row))
			for j := range sep {
				sep[j] = "---"
			}
			lines = append(lines, renderRow(sep))
		}
	}
	return strings.Join(lines, "\n")
}

func renderRow(cells []string) string {
	return "| " + strings.Join(cells, " | ") + " |"
}
