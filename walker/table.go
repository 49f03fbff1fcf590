package walker

import (
	"strings"

	"github.com/kestrelhq/distill/htmldom"
)

// tableCellBudget and tableCharBudget bound table rendering cost on
// pathological documents (spec.md §4.7: "bounded table formatting,
// capped at 20,000 cells or 200,000 characters, whichever comes
// first").
const (
	tableCellBudget = 20000
	tableCharBudget = 200000
)

// renderTable linearizes a <table> as space-separated rows, each row
// terminated by a newline, stopping once either budget is exhausted.
func (w *walker) renderTable(t *htmldom.Node) {
	cells := 0
	chars := 0
	truncated := false

	rows := t.Query("tr")
	rows.Each(func(_ int, row *htmldom.Node) {
		if truncated || w.overBudget() {
			return
		}
		fields := []string{}
		row.Query("td, th").Each(func(_ int, cell *htmldom.Node) {
			if truncated {
				return
			}
			cells++
			text := strings.TrimSpace(cell.Text())
			chars += len(text)
			fields = append(fields, text)
			if cells >= tableCellBudget || chars >= tableCharBudget {
				truncated = true
			}
		})
		if len(fields) == 0 {
			return
		}
		w.write(strings.Join(fields, " "))
		w.write("\n")
	})
	w.write("\n")
}
