package layout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-runewidth"

	"github.com/tsawler/parafind/model"
)

// debugTextWidth is the widest the text column of a state dump may get.
const debugTextWidth = 80

const (
	embedStart = "\u202a"
	embedEnd   = "\u202c"
)

// rtlEmbed wraps right-to-left text in directional embedding marks so that
// terminals keep it inside its table cell.
func rtlEmbed(word string, rtl bool) string {
	if rtl {
		return embedStart + word + embedEnd
	}
	return word
}

// debugDump prints the detector state after phase when shouldPrint is set.
func (d *detection) debugDump(shouldPrint bool, phase string) {
	if !shouldPrint {
		return
	}
	fmt.Fprintf(d.out, "# %s\n", phase)
	d.printDetectorState()
}

func (d *detection) printDetectorState() {
	tw := table.NewWriter()
	tw.SetOutputMirror(d.out)
	tw.AppendHeader(table.Row{
		"#row", "space", "..", "lword[widthSEL]", "rword[widthSEL]",
		"[lmarg,lind;rind,rmarg]", "model", "text",
	})
	for i := range d.rows {
		r := &d.rows[i]
		ri := r.ri
		leaders := " "
		if ri.HasLeaders {
			leaders = ".."
		}
		tw.AppendRow(table.Row{
			i,
			ri.AverageInterwordSpace,
			leaders,
			wordCell(ri.LWord, !ri.LTR),
			wordCell(ri.RWord, !ri.LTR),
			fmt.Sprintf("[%4d,%5d;%5d,%4d]", r.lmargin, r.lindent, r.rindent, r.rmargin),
			d.hypothesesCell(r),
			rtlEmbed(runewidth.Truncate(ri.Text, debugTextWidth, "..."), !ri.LTR),
		})
	}
	tw.SetStyle(table.StyleLight)
	tw.Style().Format.Header = text.FormatDefault
	tw.Render()

	fmt.Fprintln(d.out, "Active Paragraph Models:")
	for i, ref := range d.theory.liveModels() {
		fmt.Fprintf(d.out, " %d: %s\n", i+1, d.theory.model(ref))
	}
}

// wordCell renders a word with its width and its start-idea, end-idea and
// list-item flags, upper case meaning set.
func wordCell(w model.WordInfo, rtl bool) string {
	var sb strings.Builder
	sb.WriteString(rtlEmbed(w.Text, rtl))
	sb.WriteByte('[')
	sb.WriteString(strconv.Itoa(w.Box.Width()))
	sb.WriteByte(flag(w.LikelyStartsIdea, 'S'))
	sb.WriteByte(flag(w.LikelyEndsIdea, 'E'))
	sb.WriteByte(flag(w.IndicatesListItem, 'L'))
	sb.WriteByte(']')
	return sb.String()
}

func flag(set bool, c byte) byte {
	if set {
		return c
	}
	return c + 'a' - 'A'
}

// hypothesesCell renders the row's line type and the models it may belong
// to, numbered from 1 in the order of the active model list.
func (d *detection) hypothesesCell(r *scratchRow) string {
	var refs []string
	for _, h := range r.hypotheses {
		switch h.model.kind {
		case refStrong:
			refs = append(refs, strconv.Itoa(1+d.theory.indexOf(h.model)))
		case refCrownLeft:
			refs = append(refs, "CrL")
		case refCrownRight:
			refs = append(refs, "CrR")
		}
	}
	if len(refs) == 0 {
		refs = append(refs, "0")
	}
	return string(r.lineType()) + ":" + strings.Join(refs, ",")
}

// printRowRange prints the text of rows[start, end) between rules.
func (d *detection) printRowRange(start, end int) {
	const rule = "======================================"
	fmt.Fprintln(d.out, rule)
	for i := start; i < end; i++ {
		fmt.Fprintln(d.out, d.rows[i].ri.Text)
	}
	fmt.Fprintln(d.out, rule)
}

// fail explains why a classifier gave up on rows[start, end).
func (d *detection) fail(minDebugLevel int, why string, start, end int) {
	if d.debugLevel < minDebugLevel {
		return
	}
	fmt.Fprintf(d.out, "# %s\n", why)
	d.printRowRange(start, end)
}
