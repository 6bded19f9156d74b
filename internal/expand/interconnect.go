package expand

import (
	"github.com/specialistvlad/tilegrid/internal/catalog"
	"github.com/specialistvlad/tilegrid/internal/grid"
	"github.com/specialistvlad/tilegrid/internal/naming"
)

// intVariant is one flavour of the default interconnect node.
type intVariant struct {
	node      string
	naming    string
	namingBrk string
	name      func(brk bool, x, y int) string
}

var interconnectRules = []rule[site, intVariant]{
	{
		when: func(s site) bool { return s.kind().IsMacro() },
		then: intVariant{catalog.NodeIntBram, catalog.NamingIntBram, catalog.NamingIntBramBrk, naming.IntBram},
	},
	{
		when: func(s site) bool { return s.kind() == grid.ColumnIO || s.e.g.HasEdgeIO(s.col, s.row) },
		then: intVariant{catalog.NodeIntIOI, catalog.NamingIntIOI, catalog.NamingIntIOIBrk,
			func(_ bool, x, y int) string { return naming.IntIOI(x, y) }},
	},
	{
		when: always[site],
		then: intVariant{catalog.NodeInt, catalog.NamingInt, catalog.NamingIntBrk, naming.Int},
	},
}

// fillInterconnect stamps the default interconnect node, with its tie cell,
// on every tile, and the interface node of macro columns.
func (e *expander) fillInterconnect() {
	for i, col := range e.g.Columns {
		c := grid.ColID(i)
		for j := range e.g.Rows {
			r := grid.RowID(j)
			v, ok := pick(interconnectRules, site{e, c, r})
			if !ok {
				panic("expand: no interconnect rule matched")
			}
			brk := e.g.IsBreak(r)
			nm := v.naming
			if brk {
				nm = v.namingBrk
			}
			x, y := e.rx(c), e.ry(r)
			e.add(at(c, r), v.node, nm, []string{v.name(brk, x, y)}, nil,
				naming.Tieoff(e.coords.TieX[c], y))

			if col.Kind.IsMacro() {
				intf := catalog.NamingIntfDsp
				if col.Kind == grid.ColumnBram {
					intf = catalog.NamingIntfBram
				}
				e.add(at(c, r), catalog.NodeIntf, intf, []string{naming.Intf(x+1, y)}, nil)
			}
		}
	}
}
