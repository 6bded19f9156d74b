package expand

import (
	"github.com/specialistvlad/tilegrid/internal/catalog"
	"github.com/specialistvlad/tilegrid/internal/grid"
	"github.com/specialistvlad/tilegrid/internal/naming"
	"github.com/specialistvlad/tilegrid/internal/tilegraph"
)

// carveGts clears the transceiver footprints down to their interconnect,
// terminates the routing around them and places the transceivers.
func (e *expander) carveGts() {
	intGT := e.naming(catalog.NamingIntGT)
	gtpDisabled := e.disabled.Has(grid.Gtp())

	for _, h := range e.holes {
		e.graph.Nuke(h.Rect, e.isInterconnect)

		var tiles []tilegraph.Coord
		for col := h.Col0; col < h.Col1; col++ {
			for row := h.Row0; row < h.Row1; row++ {
				tiles = append(tiles, at(col, row))
				for _, n := range e.graph.Nodes(at(col, row)) {
					n.Naming = intGT
				}
			}
		}
		e.addGtTerms(h)

		if gtpDisabled {
			e.logger.Debug("Skipping disabled transceiver.", "hole", h.Rect.String())
			continue
		}
		gx, gy := h.Index, 0
		if h.Top {
			gy = 1
		}
		e.add(at(h.Col0, h.Row0), catalog.NodeGtp, catalog.NamingGtp,
			[]string{naming.Gtp(h.Top, e.rx(h.Col0), e.ry(h.Row0))}, tiles,
			naming.Site("GTPA1_DUAL", gx, gy),
			naming.Site("BUFDS", gx, 2*gy),
			naming.Site("BUFDS", gx, 2*gy+1))
	}
}

// addGtTerms terminates the routing that runs into the hole. Each
// termination sits on the tile next to the hole, on its side facing it.
func (e *expander) addGtTerms(h grid.GtHole) {
	height := grid.RowID(e.g.Height())

	if h.Row0 > 0 {
		nm := catalog.NamingTermNGT
		if e.g.IsBreak(h.Row0) {
			nm = catalog.NamingTermNGTBrk
		}
		for col := h.Col0; col < h.Col1; col++ {
			e.addGtTerm(grid.DirN, nm, col, h.Row0-1)
		}
	}
	if h.Row1 < height {
		nm := catalog.NamingTermSGT
		if e.g.IsBreak(h.Row1) {
			nm = catalog.NamingTermSGTBrk
		}
		for col := h.Col0; col < h.Col1; col++ {
			e.addGtTerm(grid.DirS, nm, col, h.Row1)
		}
	}
	for row := h.Row0; row < h.Row1; row++ {
		e.addGtTerm(grid.DirE, catalog.NamingTermEGT, h.Col0-1, row)
		e.addGtTerm(grid.DirW, catalog.NamingTermWGT, h.Col1, row)
	}
}

func (e *expander) addGtTerm(dir grid.Dir, nm string, col grid.ColID, row grid.RowID) {
	if e.inHole(col, row) {
		return
	}
	e.graph.AddTerm(at(col, row), dir, e.node(catalog.NodeTermGT), e.naming(nm),
		naming.GtTerm(dir, e.rx(col), e.ry(row)))
}
