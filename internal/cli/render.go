package cli

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-runewidth"

	"github.com/tsawler/parafind"
	"github.com/tsawler/parafind/model"
)

// textWidth is the display width the text column is cut to.
const textWidth = 60

// renderTable prints one table row per text row, marking the first row of
// every paragraph with its flags and model.
func renderTable(w io.Writer, results []parafind.BlockResult) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"Block", "Row", "Para", "Flags", "Model", "Text"})

	for _, block := range results {
		res := block.Result
		for i, owner := range res.RowOwners {
			flags, modelText := "", ""
			if i == 0 || res.RowOwners[i-1] != owner {
				flags = paraFlags(res.Paragraphs[owner])
				modelText = "-"
				if m, ok := res.ModelOf(owner); ok {
					modelText = m.String()
				}
			}
			// Detect returns one row per owner; hand-built results may not.
			text := ""
			if i < len(block.Rows) {
				text = runewidth.Truncate(strings.TrimSpace(block.Rows[i].Text), textWidth, "...")
			}
			tw.AppendRow(table.Row{block.Index, i, owner, flags, modelText, text})
		}
		tw.AppendSeparator()
	}

	tw.SetStyle(table.StyleLight)
	tw.Render()
}

// paraFlags abbreviates the paragraph flags: L for a list item, C for a
// crown and D for a drop cap.
func paraFlags(p model.Para) string {
	var sb strings.Builder
	if p.IsListItem {
		sb.WriteByte('L')
	}
	if p.IsVeryFirstOrContinuation {
		sb.WriteByte('C')
	}
	if p.HasDropCap {
		sb.WriteByte('D')
	}
	return sb.String()
}

func renderJSON(w io.Writer, results []parafind.BlockResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
