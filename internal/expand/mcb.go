package expand

import (
	"github.com/specialistvlad/tilegrid/internal/catalog"
	"github.com/specialistvlad/tilegrid/internal/grid"
	"github.com/specialistvlad/tilegrid/internal/naming"
)

// fillMcbs places every memory controller strip on both vertical edges.
// The per-side bel counter only advances on emitted strips.
func (e *expander) fillMcbs() {
	for i, mcb := range e.g.Mcbs {
		for _, side := range []grid.Dir{grid.DirW, grid.DirE} {
			if e.disabled.Has(grid.McbPart(side, i)) {
				e.logger.Debug("Skipping disabled MCB.", "side", side.Name(), "index", i)
				continue
			}
			e.addMcb(side, mcb)
		}
	}
}

func (e *expander) addMcb(side grid.Dir, mcb grid.Mcb) {
	col := e.edgeCol(side)
	x := e.rx(col)

	tiles := span(col, mcb.Row, mcb.Row+grid.McbHeight)
	names := []string{naming.Mcb(side, x, e.ry(mcb.Row))}
	for j, row := range mcb.RowsMui {
		tiles = append(tiles, at(col, row))
		names = append(names, naming.McbMui(side, j, x, e.ry(row)))
	}

	mx := 0
	if side == grid.DirE {
		mx = 1
	}
	my := e.mcbY[side]
	e.mcbY[side]++

	e.add(at(col, mcb.Row), catalog.NodeMcb, catalog.McbNaming(side), names, tiles,
		naming.Site("MCB", mx, my))
}
