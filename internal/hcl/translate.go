// This file translates decoded device blocks into grid descriptions and
// disabled part sets.

package hcl

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/tilegrid/internal/config"
	"github.com/specialistvlad/tilegrid/internal/grid"
)

// translator collects every problem of one device block instead of stopping
// at the first.
type translator struct {
	g    *grid.Grid
	errs []error
}

func (t *translator) fail(format string, args ...any) {
	t.errs = append(t.errs, fmt.Errorf(format, args...))
}

func (t *translator) col(name string, v int) grid.ColID {
	if v < 0 || v >= t.g.Width() {
		t.fail("%s: column %d outside 0..%d", name, v, t.g.Width()-1)
	}
	return grid.ColID(v)
}

func (t *translator) row(name string, v int) grid.RowID {
	if v < 0 || v >= t.g.Height() {
		t.fail("%s: row %d outside 0..%d", name, v, t.g.Height()-1)
	}
	return grid.RowID(v)
}

func (t *translator) pair(name string, v []int) (int, int) {
	if len(v) != 2 {
		t.fail("%s: expected 2 values, got %d", name, len(v))
		return 0, 0
	}
	return v[0], v[1]
}

// translateDevice converts the HCL-specific device schema into the agnostic
// model and validates the resulting grid.
func (l *Loader) translateDevice(b *deviceBlock, source string) (*config.Device, error) {
	t := &translator{g: &grid.Grid{Name: b.Name}}
	g := t.g

	g.Columns = make([]grid.Column, len(b.Columns))
	for i, name := range b.Columns {
		k, err := grid.ParseColumnKind(name)
		if err != nil {
			t.fail("columns[%d]: %w", i, err)
		}
		g.Columns[i].Kind = k
	}
	if b.Rows <= 0 {
		t.fail("rows: must be positive, got %d", b.Rows)
	}
	if len(t.errs) > 0 {
		return nil, deviceError(b.Name, source, t.errs)
	}

	h := b.Rows
	g.Rows = make([]grid.Row, h)
	for i := range g.Rows {
		g.Rows[i] = grid.Row{LIO: true, RIO: true}
	}
	g.RowBioOuter, g.RowBioInner = 0, 1
	g.RowTioInner, g.RowTioOuter = grid.RowID(h-2), grid.RowID(h-1)

	g.ColLIO, g.ColRIO = 0, grid.ColID(len(b.Columns)-1)
	if b.ColLIO != nil {
		g.ColLIO = t.col("col_lio", *b.ColLIO)
	}
	if b.ColRIO != nil {
		g.ColRIO = t.col("col_rio", *b.ColRIO)
	}
	g.ColClk = t.col("col_clk", b.ColClk)
	g.RowClk = t.row("row_clk", b.RowClk)
	g.HasEncrypt = b.HasEncrypt

	lo, hi := t.pair("cols_reg_buf", b.ColsRegBuf)
	g.ColsRegBuf = [2]grid.ColID{grid.ColID(lo), grid.ColID(hi)}
	if b.ColsClkFold != nil {
		lo, hi := t.pair("cols_clk_fold", b.ColsClkFold)
		g.ColsClkFold = &[2]grid.ColID{grid.ColID(lo), grid.ColID(hi)}
	}
	lo, hi = t.pair("rows_pci_ce_split", b.RowsPciCeSplit)
	g.RowsPciCeSplit = [2]grid.RowID{grid.RowID(lo), grid.RowID(hi)}

	for _, cio := range b.ColumnIO {
		top, err := grid.ParseColumnIOKind(cio.Top)
		if err != nil {
			t.fail("column_io top: %w", err)
		}
		bot, err := grid.ParseColumnIOKind(cio.Bottom)
		if err != nil {
			t.fail("column_io bottom: %w", err)
		}
		for _, c := range cio.Cols {
			col := t.col("column_io", c)
			if int(col) < 0 || int(col) >= g.Width() {
				continue
			}
			g.Columns[col].TopIO = top
			g.Columns[col].BotIO = bot
		}
	}

	for _, rio := range b.RowIO {
		side, err := grid.ParseSide(rio.Side)
		if err != nil {
			t.fail("row_io: %w", err)
			continue
		}
		for _, r := range rio.Absent {
			row := t.row("row_io absent", r)
			if int(row) < 0 || int(row) >= h {
				continue
			}
			if side == grid.DirW {
				g.Rows[row].LIO = false
			} else {
				g.Rows[row].RIO = false
			}
		}
	}

	if b.Gt != nil {
		kind, err := grid.ParseGtKind(b.Gt.Kind)
		if err != nil {
			t.fail("gt: %w", err)
		}
		g.Gts.Kind = kind
		for _, c := range b.Gt.Cols {
			g.Gts.Cols = append(g.Gts.Cols, t.col("gt", c))
		}
	}

	for _, m := range b.Mcbs {
		mcb := grid.Mcb{Row: grid.RowID(m.Row)}
		for _, r := range m.MuiRows {
			mcb.RowsMui = append(mcb.RowsMui, grid.RowID(r))
		}
		g.Mcbs = append(g.Mcbs, mcb)
	}

	var parts []grid.DisabledPart
	for _, d := range b.Disabled {
		if p, ok := t.disabled(d); ok {
			parts = append(parts, p)
		}
	}

	if len(t.errs) > 0 {
		return nil, deviceError(b.Name, source, t.errs)
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("device %q in %s: %w", b.Name, source, err)
	}
	return &config.Device{Grid: g, Disabled: grid.NewDisabledParts(parts...), Source: source}, nil
}

// disabled translates one exclusion block, requiring the attributes its kind
// needs.
func (t *translator) disabled(d *disabledBlock) (grid.DisabledPart, bool) {
	kind, err := grid.ParseDisabledKind(d.Kind)
	if err != nil {
		t.fail("disabled: %w", err)
		return grid.DisabledPart{}, false
	}

	switch kind {
	case grid.DisabledGtp:
		return grid.Gtp(), true
	case grid.DisabledMcb:
		if d.Side == nil {
			t.fail("disabled mcb: side is required")
			return grid.DisabledPart{}, false
		}
		side, err := grid.ParseSide(*d.Side)
		if err != nil {
			t.fail("disabled mcb: %w", err)
			return grid.DisabledPart{}, false
		}
		index := 0
		if d.Index != nil {
			index = *d.Index
		}
		return grid.McbPart(side, index), true
	default:
		if d.Col == nil || d.Region == nil {
			t.fail("disabled %s: col and region are required", kind)
			return grid.DisabledPart{}, false
		}
		col := t.col("disabled "+kind.String(), *d.Col)
		reg := grid.RegID(*d.Region)
		if *d.Region < 0 || *d.Region >= t.g.Regions() {
			t.fail("disabled %s: region %d outside 0..%d", kind, *d.Region, t.g.Regions()-1)
		}
		switch kind {
		case grid.DisabledLogic:
			return grid.LogicRegion(col, reg), true
		case grid.DisabledBram:
			return grid.BramRegion(col, reg), true
		default:
			return grid.DspRegion(col, reg), true
		}
	}
}

func deviceError(name, source string, errs []error) error {
	return fmt.Errorf("device %q in %s: %w", name, source, errors.Join(errs...))
}
