package expand

import (
	"github.com/specialistvlad/tilegrid/internal/catalog"
	"github.com/specialistvlad/tilegrid/internal/grid"
	"github.com/specialistvlad/tilegrid/internal/naming"
)

// macroStride is the row span of one block RAM or DSP.
const macroStride = 4

// fillBram places one block RAM per four rows of every bram column. by
// counts emitted instances within the column.
func (e *expander) fillBram() {
	cols := e.g.ColumnsOfKind(func(k grid.ColumnKind) bool { return k == grid.ColumnBram })
	for bx, col := range cols {
		by := 0
		for row := grid.RowID(0); int(row) < e.g.Height(); row += macroStride {
			if e.skipMacro(grid.BramRegion(col, e.g.RegionOf(row)), col, row) {
				continue
			}
			e.add(at(col, row), catalog.NodeBram, catalog.NamingBram,
				[]string{naming.BramSite(e.rx(col), e.ry(row))}, span(col, row, row+macroStride),
				naming.Site("RAMB16BWER", bx, by),
				naming.Site("RAMB8BWER", bx, 2*by),
				naming.Site("RAMB8BWER", bx, 2*by+1))
			by++
		}
	}
}

// fillDsp places one DSP per four rows of every dsp and dspplus column.
func (e *expander) fillDsp() {
	cols := e.g.ColumnsOfKind(func(k grid.ColumnKind) bool {
		return k == grid.ColumnDsp || k == grid.ColumnDspPlus
	})
	for dx, col := range cols {
		nm := catalog.NamingDsp
		if e.g.Kind(col) == grid.ColumnDspPlus {
			nm = catalog.NamingDspPlus
		}
		dy := 0
		for row := grid.RowID(0); int(row) < e.g.Height(); row += macroStride {
			if e.skipMacro(grid.DspRegion(col, e.g.RegionOf(row)), col, row) {
				continue
			}
			e.add(at(col, row), catalog.NodeDsp, nm,
				[]string{naming.MaccSite(e.rx(col), e.ry(row))}, span(col, row, row+macroStride),
				naming.Site("DSP48A1", dx, dy))
			dy++
		}
	}
}

func (e *expander) skipMacro(part grid.DisabledPart, col grid.ColID, row grid.RowID) bool {
	if e.disabled.Has(part) {
		return true
	}
	return e.touchesHole(grid.Rect{Col0: col, Col1: col + 1, Row0: row, Row1: row + macroStride})
}

// fillLogic places one logic tile per row of every logic column, leaving
// out the IO rows and, on the clock bridge column, the clock spine rows.
func (e *expander) fillLogic() {
	cols := e.g.ColumnsOfKind(grid.ColumnKind.IsLogic)
	for i, col := range cols {
		kind := e.g.Kind(col)
		node, nm := catalog.NodeCleXL, catalog.NamingCleXL
		if kind == grid.ColumnCleXM {
			node, nm = catalog.NodeCleXM, catalog.NamingCleXM
		}
		sx, sy := 2*i, 0
		for j := range e.g.Rows {
			row := grid.RowID(j)
			if e.skipLogic(kind, col, row) {
				continue
			}
			e.add(at(col, row), node, nm,
				[]string{naming.Cle(kind == grid.ColumnCleXM, e.rx(col), e.ry(row))}, nil,
				naming.Site("SLICE", sx, sy),
				naming.Site("SLICE", sx+1, sy))
			sy++
		}
	}
}

func (e *expander) skipLogic(kind grid.ColumnKind, col grid.ColID, row grid.RowID) bool {
	switch {
	case e.g.IsIORow(row):
		return true
	case kind == grid.ColumnCleClk && row >= e.g.RowClk-1 && row <= e.g.RowClk+1:
		return true
	case e.disabled.Has(grid.LogicRegion(col, e.g.RegionOf(row))):
		return true
	default:
		return e.inHole(col, row)
	}
}
