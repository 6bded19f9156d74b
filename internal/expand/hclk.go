package expand

import (
	"github.com/specialistvlad/tilegrid/internal/catalog"
	"github.com/specialistvlad/tilegrid/internal/grid"
	"github.com/specialistvlad/tilegrid/internal/naming"
)

// hclkRules choose the naming of an HCLK divider.
var hclkRules = []rule[site, string]{
	{func(s site) bool { return s.e.gtHoleAt(s.col+1, s.row) }, catalog.NamingHclkGTW},
	{func(s site) bool { return s.col > 0 && s.e.gtHoleAt(s.col-1, s.row) }, catalog.NamingHclkGTE},
	{func(s site) bool {
		f := s.e.g.ColsClkFold
		return f != nil && (s.col == f[0] || s.col == f[1])
	}, catalog.NamingHclkFold},
	{func(s site) bool { return s.kind() == grid.ColumnIO }, catalog.NamingHclkIOI},
	{func(s site) bool { return s.kind() == grid.ColumnBram }, catalog.NamingHclkBram},
	{func(s site) bool { return s.kind() == grid.ColumnDsp || s.kind() == grid.ColumnDspPlus }, catalog.NamingHclkDsp},
	{always[site], catalog.NamingHclk},
}

// gtHoleAt reports whether (col, row) lies in a transceiver hole. Columns
// past the die edge are never in one.
func (e *expander) gtHoleAt(col grid.ColID, row grid.RowID) bool {
	return int(col) < e.g.Width() && e.inHole(col, row)
}

// fillHclk records the clock root of every tile and places one divider per
// column on the HCLK row of each region. A column whose divider row and the
// row above it both lie in a hole gets none.
func (e *expander) fillHclk() {
	for reg := 0; reg < e.g.Regions(); reg++ {
		base := grid.RowID(reg * grid.RowsPerRegion)
		root := base + grid.RowsPerRegion/2 - 1
		div := root + 1

		for i := range e.g.Columns {
			col := grid.ColID(i)
			for row := base; row < base+grid.RowsPerRegion; row++ {
				e.graph.SetClkRoot(at(col, row), at(col, root))
			}

			if e.inHole(col, div) && e.inHole(col, div+1) {
				continue
			}
			nm, _ := pick(hclkRules, site{e, col, div})
			e.add(at(col, div), catalog.NodeHclk, nm,
				[]string{naming.Hclk(e.rx(col), e.ry(div)-1)}, nil)
		}
	}
}
