package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// WriteTable renders one table per summary to w.
func WriteTable(w io.Writer, summaries []Summary) error {
	for i, s := range summaries {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, renderTable(s)); err != nil {
			return err
		}
	}
	return nil
}

func renderTable(s Summary) string {
	t := table.NewWriter()
	t.SetTitle("Device %s", s.Device)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Kind", "Instances", "Bels"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})

	var instances, bels int
	for _, c := range s.Kinds {
		t.AppendRow(table.Row{c.Kind, c.Instances, c.Bels})
		instances += c.Instances
		bels += c.Bels
	}
	t.AppendSeparator()
	t.AppendRow(table.Row{"tiles", s.Tiles, ""})
	t.AppendRow(table.Row{"bonded pads", s.Pads, ""})
	t.AppendRow(table.Row{"holes", s.Holes, ""})
	t.AppendRow(table.Row{"frames", s.Frames, ""})
	t.AppendFooter(table.Row{"Total", instances, bels})
	return t.Render()
}
