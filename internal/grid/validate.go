package grid

import (
	"errors"
	"fmt"
)

// Validate checks every named reference of the grid against its bounds and
// returns all problems found, joined.
func (g *Grid) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	w, h := g.Width(), g.Height()
	if w < 3 {
		fail("grid %q: need at least 3 columns, got %d", g.Name, w)
	}
	if h == 0 || h%RowsPerRegion != 0 {
		fail("grid %q: row count %d is not a positive multiple of %d", g.Name, h, RowsPerRegion)
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	checkCol := func(name string, col ColID) bool {
		if col < 0 || int(col) >= w {
			fail("grid %q: %s column %d outside 0..%d", g.Name, name, col, w-1)
			return false
		}
		return true
	}
	checkRow := func(name string, row RowID) bool {
		if row < 0 || int(row) >= h {
			fail("grid %q: %s row %d outside 0..%d", g.Name, name, row, h-1)
			return false
		}
		return true
	}

	if checkCol("left io", g.ColLIO) && g.Kind(g.ColLIO) != ColumnIO {
		fail("grid %q: left io column %d has kind %s", g.Name, g.ColLIO, g.Kind(g.ColLIO))
	}
	if checkCol("right io", g.ColRIO) && g.Kind(g.ColRIO) != ColumnIO {
		fail("grid %q: right io column %d has kind %s", g.Name, g.ColRIO, g.Kind(g.ColRIO))
	}
	if checkCol("clock", g.ColClk) && g.Kind(g.ColClk) != ColumnCleClk {
		fail("grid %q: clock column %d has kind %s", g.Name, g.ColClk, g.Kind(g.ColClk))
	}
	if checkRow("clock", g.RowClk) && (g.RowClk == 0 || int(g.RowClk) == h-1) {
		fail("grid %q: clock row %d touches the die edge", g.Name, g.RowClk)
	}
	checkRow("bottom outer io", g.RowBioOuter)
	checkRow("bottom inner io", g.RowBioInner)
	checkRow("top inner io", g.RowTioInner)
	checkRow("top outer io", g.RowTioOuter)
	for i, row := range g.RowsPciCeSplit {
		checkRow(fmt.Sprintf("pci ce split %d", i), row)
	}
	for i, col := range g.ColsRegBuf {
		checkCol(fmt.Sprintf("region buffer %d", i), col)
	}
	if g.ColsRegBuf[0] == g.ColsRegBuf[1] {
		fail("grid %q: region buffer columns coincide at %d", g.Name, g.ColsRegBuf[0])
	}
	if g.ColsClkFold != nil {
		for i, col := range g.ColsClkFold {
			checkCol(fmt.Sprintf("clock fold %d", i), col)
		}
	}

	for i, mcb := range g.Mcbs {
		if mcb.Row < 0 || int(mcb.Row)+McbHeight > h {
			fail("grid %q: mcb %d at row %d does not fit %d rows", g.Name, i, mcb.Row, McbHeight)
		}
		for j, row := range mcb.RowsMui {
			checkRow(fmt.Sprintf("mcb %d mui %d", i, j), row)
		}
	}

	for _, site := range g.CmtTopology() {
		row := g.CmtRow(site)
		if row-2 < 0 || int(row)+1 >= h {
			fail("grid %q: %s at region offset %d lands on row %d outside the die", g.Name, site.Kind, site.Delta, row)
		}
	}

	want := map[GtKind]int{GtNone: 0, GtSingle: 1, GtDouble: 2, GtQuad: 2}[g.Gts.Kind]
	if len(g.Gts.Cols) < want {
		fail("grid %q: gt kind %s needs %d columns, got %d", g.Name, g.Gts.Kind, want, len(g.Gts.Cols))
		return errors.Join(errs...)
	}
	if g.Gts.Kind == GtQuad && h < 2*RowsPerRegion {
		fail("grid %q: quad transceivers need at least %d rows", g.Name, 2*RowsPerRegion)
	}
	holes := g.GtHoles()
	for i, hole := range holes {
		if hole.Col0 <= g.ColLIO || hole.Col1 > g.ColRIO {
			fail("grid %q: transceiver hole %s reaches an io column", g.Name, hole.Rect)
		}
		if hole.Col0 <= g.ColClk && g.ColClk < hole.Col1 {
			fail("grid %q: transceiver hole %s covers the clock column", g.Name, hole.Rect)
		}
		for k, col := range g.ColsRegBuf {
			if hole.Contains(col, g.RowClk) {
				fail("grid %q: region buffer %d at column %d lies in transceiver hole %s", g.Name, k, col, hole.Rect)
			}
		}
		for _, other := range holes[i+1:] {
			if hole.Overlaps(other.Rect) {
				fail("grid %q: transceiver holes %s and %s overlap", g.Name, hole.Rect, other.Rect)
			}
		}
	}

	return errors.Join(errs...)
}

// MustValidate panics if the grid violates a precondition of the expansion.
func (g *Grid) MustValidate() {
	if err := g.Validate(); err != nil {
		panic(err)
	}
}
