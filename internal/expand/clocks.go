package expand

import (
	"fmt"

	"github.com/specialistvlad/tilegrid/internal/catalog"
	"github.com/specialistvlad/tilegrid/internal/grid"
	"github.com/specialistvlad/tilegrid/internal/naming"
)

// fillPciLogic places the PCI calibration logic on the clock row of both
// vertical edges.
func (e *expander) fillPciLogic() {
	for mx, side := range []grid.Dir{grid.DirW, grid.DirE} {
		col := e.edgeCol(side)
		e.add(at(col, e.g.RowClk), catalog.NodePciLogic, catalog.PciLogicNaming(side),
			[]string{naming.PciLogic(side, e.rx(col), e.ry(e.g.RowClk))}, nil,
			naming.Site("PCILOGIC", mx, 0))
	}
}

// fillClockSpine places the global clock multiplexers at the centre of the
// die and the two region buffers on the clock row.
func (e *expander) fillClockSpine() {
	col, row := e.g.ColClk, e.g.RowClk

	var bels []string
	for _, x := range []int{2, 3} {
		for y := 1; y <= 8; y++ {
			bels = append(bels, naming.Site("BUFGMUX", x, y))
		}
	}
	e.add(at(col, row), catalog.NodeClkc, catalog.NamingClkc,
		[]string{naming.Clkc(e.rx(col), e.ry(row))}, span(col, row-1, row+2), bels...)

	for k, side := range []grid.Dir{grid.DirW, grid.DirE} {
		c := e.g.ColsRegBuf[k]
		x, y := e.rx(c), e.ry(row)
		var bufs []string
		for i := 0; i < 16; i++ {
			bufs = append(bufs, naming.Site("BUFH", x, y*16+i))
		}
		e.add(at(c, row), catalog.NodeRegH, catalog.RegHNaming(side),
			[]string{naming.RegH(side, x, y)}, nil, bufs...)
	}
}

// fillCmts places the clock management tiles of the topology selected by
// the die size, bottom to top.
func (e *expander) fillCmts() {
	col := e.g.ColClk
	x := e.rx(col)
	py, dy := 0, 0
	for _, s := range e.g.CmtTopology() {
		row := e.g.CmtRow(s)
		if row < 2 {
			panic(fmt.Sprintf("expand: %s at row %d reaches below the die", s.Kind, row))
		}
		tiles := span(col, row-2, row+2)
		names := []string{naming.Cmt(s.Kind, x, e.ry(row))}

		switch s.Kind {
		case grid.CmtPll:
			e.add(at(col, row), catalog.NodeCmtPll, catalog.NamingCmtPll, names, tiles,
				naming.Site("PLL_ADV", 0, py))
			py++
		case grid.CmtDcm:
			e.add(at(col, row), catalog.NodeCmtDcm, catalog.NamingCmtDcm, names, tiles,
				naming.Site("DCM", 0, dy), naming.Site("DCM", 0, dy+1))
			dy += 2
		default:
			panic(fmt.Sprintf("expand: unexpected cmt kind %d", s.Kind))
		}
	}
}
