package truthtable

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmsolve/truthtable/src/lexicon"
	"github.com/olekukonko/tablewriter"
)

// Placeholder fills step cells a row did not produce.
const Placeholder = "-"

// Render writes the table as text: one column per variable followed by one
// numbered column per step, cells rendered as 1 and 0.
func (t *Table) Render(w io.Writer) {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader(t.headers())
	tw.SetAlignment(tablewriter.ALIGN_CENTER)
	tw.SetBorder(false)

	for _, row := range t.Rows {
		cells := make([]string, 0, len(t.Variables)+len(t.StepLabels))
		for _, v := range row.Values {
			cells = append(cells, bit(v))
		}
		for i := range t.StepLabels {
			if i < len(row.Steps) {
				cells = append(cells, bit(row.Steps[i]))
			} else {
				cells = append(cells, Placeholder)
			}
		}
		tw.Append(cells)
	}

	tw.Render()
}

// RenderString renders the table into a string.
func (t *Table) RenderString() string {
	var sb strings.Builder
	t.Render(&sb)
	return sb.String()
}

// StepLegend returns the numbered step list with the operators localized
// back to their phrases, e.g.
//
//	Steps:
//	1. (A конъюнкция B)
func (t *Table) StepLegend() string {
	var sb strings.Builder
	sb.WriteString("Steps:")
	for i, label := range t.StepLabels {
		sb.WriteString(fmt.Sprintf("\n%d. %s", i+1, lexicon.Localize(label)))
	}
	return sb.String()
}

func (t *Table) headers() []string {
	headers := append([]string{}, t.Variables...)
	for i := range t.StepLabels {
		headers = append(headers, strconv.Itoa(i+1))
	}
	return headers
}

func bit(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
