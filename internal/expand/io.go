package expand

import (
	"fmt"

	"github.com/specialistvlad/tilegrid/internal/catalog"
	"github.com/specialistvlad/tilegrid/internal/grid"
	"github.com/specialistvlad/tilegrid/internal/naming"
	"github.com/specialistvlad/tilegrid/internal/tilegraph"
)

// ioTile is what an IO ring position turns into.
type ioTile int

const (
	ioNone ioTile = iota
	ioPair
	ioInterface
	ioCorner
)

// edgeSite is an IO ring position on a given edge.
type edgeSite struct {
	site
	edge grid.Dir
}

func (s edgeSite) hasRowIO() bool {
	r := s.e.g.Rows[s.row]
	if s.edge == grid.DirW {
		return r.LIO
	}
	return r.RIO
}

var verticalIORules = []rule[edgeSite, ioTile]{
	{func(s edgeSite) bool { return s.row == s.e.g.RowBioOuter || s.row == s.e.g.RowTioOuter }, ioCorner},
	{func(s edgeSite) bool { return s.row == s.e.g.RowBioInner || s.row == s.e.g.RowTioInner }, ioInterface},
	{edgeSite.hasRowIO, ioPair},
	{always[edgeSite], ioInterface},
}

var horizontalIORules = []rule[edgeSite, ioTile]{
	{func(s edgeSite) bool { return s.kind() == grid.ColumnIO }, ioNone},
	{func(s edgeSite) bool { return s.e.inHole(s.col, s.row) }, ioNone},
	{func(s edgeSite) bool { return s.e.g.HasEdgeIO(s.col, s.row) }, ioPair},
	{func(s edgeSite) bool { return s.kind().IsLogic() }, ioInterface},
	{always[edgeSite], ioNone},
}

type corner struct {
	tag    string
	node   string
	naming string
	bels   []string
}

var (
	cornerLL = corner{"LL", catalog.NodeCornerLL, catalog.NamingCornerLL,
		[]string{"OCT_CAL2", "OCT_CAL3"}}
	cornerUL = corner{"UL", catalog.NodeCornerUL, catalog.NamingCornerUL,
		[]string{"OCT_CAL0", "OCT_CAL4", "PMV", "DNA_PORT"}}
	cornerLR = corner{"LR", catalog.NodeCornerLR, catalog.NamingCornerLR,
		[]string{"OCT_CAL1", "ICAP", "SPI_ACCESS", "SUSPEND_SYNC", "POST_CRC_INTERNAL", "STARTUP", "SLAVE_SPI"}}
	cornerUR = corner{"UR", catalog.NodeCornerUR, catalog.NamingCornerUR,
		[]string{"OCT_CAL5", "BSCAN0", "BSCAN1", "BSCAN2", "BSCAN3"}}
)

var ioLogicBels = []string{"ILOGIC2", "OLOGIC2", "IODELAY2"}

var termNodes = [4]string{
	grid.DirW: catalog.NodeTermW,
	grid.DirE: catalog.NodeTermE,
	grid.DirS: catalog.NodeTermS,
	grid.DirN: catalog.NodeTermN,
}

// fillIO populates the IO ring. Pads are numbered clockwise: top edge left
// to right, right edge top to bottom, bottom edge right to left, left edge
// bottom to top.
func (e *expander) fillIO() {
	e.fillHorizontalIO(grid.DirN)
	e.fillVerticalIO(grid.DirE)
	e.fillHorizontalIO(grid.DirS)
	e.fillVerticalIO(grid.DirW)
	e.fillRingTerms()
	e.fillClkBufs()
	e.fillHclkIO()
}

func (e *expander) edgeCol(side grid.Dir) grid.ColID {
	switch side {
	case grid.DirW:
		return e.g.ColLIO
	case grid.DirE:
		return e.g.ColRIO
	default:
		panic(fmt.Sprintf("expand: %s is not a vertical edge", side.Name()))
	}
}

func (e *expander) fillVerticalIO(side grid.Dir) {
	col := e.edgeCol(side)
	h := grid.RowID(e.g.Height())
	for i := grid.RowID(0); i < h; i++ {
		row := i
		if side == grid.DirE {
			row = h - 1 - i
		}
		s := edgeSite{site{e, col, row}, side}
		t, _ := pick(verticalIORules, s)
		switch t {
		case ioCorner:
			e.addCorner(e.corner(side, row), col, row)
		case ioInterface:
			e.add(at(col, row), catalog.NodeIntf, catalog.NamingIntfIOI,
				[]string{naming.IntfIOI(e.rx(col)+1, e.ry(row))}, nil)
		case ioPair:
			e.addIOPair(s, e.g.IsBreak(row))
		default:
			panic(fmt.Sprintf("expand: unexpected io tile %d on the %s edge", t, side.Name()))
		}
	}
}

func (e *expander) fillHorizontalIO(edge grid.Dir) {
	rows := [2]grid.RowID{e.g.RowTioOuter, e.g.RowTioInner}
	if edge == grid.DirS {
		rows = [2]grid.RowID{e.g.RowBioOuter, e.g.RowBioInner}
	}
	w := grid.ColID(e.g.Width())
	for i := grid.ColID(0); i < w; i++ {
		col := i
		if edge == grid.DirS {
			col = w - 1 - i
		}
		// The clock spine cuts the horizontal segment next to it.
		brk := col == e.g.ColClk || col == e.g.ColClk+1
		for _, row := range rows {
			s := edgeSite{site{e, col, row}, edge}
			t, _ := pick(horizontalIORules, s)
			switch t {
			case ioNone:
			case ioInterface:
				e.add(at(col, row), catalog.NodeIntf, catalog.NamingIntfIOI,
					[]string{naming.IntfIOI(e.rx(col), e.ry(row))}, nil)
			case ioPair:
				e.addIOPair(s, brk)
			default:
				panic(fmt.Sprintf("expand: unexpected io tile %d on the %s edge", t, edge.Name()))
			}
		}
	}
}

// addIOPair emits the IO logic and the pad node of one IO tile.
func (e *expander) addIOPair(s edgeSite, brk bool) {
	c := at(s.col, s.row)
	x, y := e.rx(s.col), e.ry(s.row)
	vertical := s.edge == grid.DirW || s.edge == grid.DirE
	if vertical {
		x++
	}

	iox, ioy := e.coords.IOX[s.col], e.coords.IOY[s.row]
	var bels []string
	for k := 0; k < 2; k++ {
		for _, b := range ioLogicBels {
			bels = append(bels, naming.Site(b, iox, 2*ioy+k))
		}
	}
	e.add(c, catalog.NodeIOI, catalog.IOINaming(s.edge, brk),
		[]string{naming.IOI(s.edge, brk && vertical, x, y)}, nil, bels...)

	iob, idx := e.add(c, catalog.NodeIOB, catalog.IOBNaming(s.edge), []string{naming.IOB(s.edge, x, y)}, nil)

	// Encryption-capable dies keep the left pad pair just below the top
	// inner IO row unbonded.
	bonded := !(e.g.HasEncrypt && s.edge == grid.DirW && s.row == e.g.RowTioInner-1)

	for k := 0; k < 2; k++ {
		name := naming.Pad(e.pad)
		e.pad++
		slot := e.graph.AddBel(iob, name)
		if bonded {
			e.bonded = append(e.bonded, BondedIO{Coord: c, NodeIndex: idx, Slot: slot, Name: name})
		}
	}
}

func (e *expander) corner(side grid.Dir, row grid.RowID) corner {
	switch {
	case side == grid.DirW && row == e.g.RowBioOuter:
		return cornerLL
	case side == grid.DirW && row == e.g.RowTioOuter:
		return cornerUL
	case side == grid.DirE && row == e.g.RowBioOuter:
		return cornerLR
	case side == grid.DirE && row == e.g.RowTioOuter:
		return cornerUR
	default:
		panic(fmt.Sprintf("expand: no corner on the %s edge at row %d", side.Name(), row))
	}
}

func (e *expander) addCorner(k corner, col grid.ColID, row grid.RowID) {
	e.add(at(col, row), k.node, k.naming, []string{naming.Corner(k.tag, e.rx(col), e.ry(row))}, nil, k.bels...)
}

// fillRingTerms terminates the interconnect on the four die edges.
func (e *expander) fillRingTerms() {
	for row := range e.g.Rows {
		e.addRingTerm(grid.DirW, e.g.ColLIO, grid.RowID(row))
		e.addRingTerm(grid.DirE, e.g.ColRIO, grid.RowID(row))
	}
	for col := range e.g.Columns {
		e.addRingTerm(grid.DirS, grid.ColID(col), e.g.RowBioOuter)
		e.addRingTerm(grid.DirN, grid.ColID(col), e.g.RowTioOuter)
	}
}

func (e *expander) addRingTerm(dir grid.Dir, col grid.ColID, row grid.RowID) {
	if e.inHole(col, row) {
		return
	}
	e.graph.AddTerm(at(col, row), dir, e.node(termNodes[dir]), e.naming(catalog.TermNaming(dir)),
		naming.Term(dir, e.rx(col), e.ry(row)))
}

// fillClkBufs places the clock-buffer taps: on the clock row of the
// vertical edges and on the clock column of the horizontal edges.
func (e *expander) fillClkBufs() {
	e.addClkBuf(grid.DirW, catalog.NodeClkBufLR, at(e.g.ColLIO, e.g.RowClk))
	e.addClkBuf(grid.DirE, catalog.NodeClkBufLR, at(e.g.ColRIO, e.g.RowClk))
	e.addClkBuf(grid.DirS, catalog.NodeClkBufBT, at(e.g.ColClk, e.g.RowBioOuter))
	e.addClkBuf(grid.DirN, catalog.NodeClkBufBT, at(e.g.ColClk, e.g.RowTioOuter))
}

func (e *expander) addClkBuf(edge grid.Dir, node string, c tilegraph.Coord) {
	x, y := e.rx(c.Col), e.ry(c.Row)
	var bels []string
	for i := 0; i < 8; i++ {
		bels = append(bels, naming.Site("BUFIO2", x, 8*y+i))
	}
	for i := 0; i < 8; i++ {
		bels = append(bels, naming.Site("BUFIO2FB", x, 8*y+i))
	}
	for i := 0; i < 2; i++ {
		bels = append(bels, naming.Site("BUFPLL", x, 2*y+i))
	}
	e.add(c, node, catalog.ClkBufNaming(edge), []string{naming.ClkBuf(edge, x, y)}, nil, bels...)
}

// fillHclkIO places the ring clock-distribution taps: every HCLK row of the
// vertical edges and every sixteenth column of the horizontal edges.
func (e *expander) fillHclkIO() {
	ce := e.g.RowsPciCeSplit
	for i := range e.g.Rows {
		row := grid.RowID(i)
		if !e.g.IsHclkRow(row) {
			continue
		}
		pos := split{int(row), int(e.g.RowClk), int(ce[0]), int(ce[1])}
		e.addHclkIO(grid.DirW, at(e.g.ColLIO, row), pos)
		e.addHclkIO(grid.DirE, at(e.g.ColRIO, row), pos)
	}
	for i, col := range e.g.Columns {
		c := grid.ColID(i)
		if i%grid.RowsPerRegion != grid.RowsPerRegion/2 || col.Kind == grid.ColumnIO {
			continue
		}
		clk := int(e.g.ColClk)
		pos := split{i, clk, clk, clk}
		for _, t := range []struct {
			edge grid.Dir
			row  grid.RowID
		}{{grid.DirS, e.g.RowBioOuter}, {grid.DirN, e.g.RowTioOuter}} {
			if e.inHole(c, t.row) {
				continue
			}
			e.addHclkIO(t.edge, at(c, t.row), pos)
		}
	}
}

func (e *expander) addHclkIO(edge grid.Dir, c tilegraph.Coord, pos split) {
	v, ok := pick(hclkIORules, pos)
	if !ok {
		return
	}
	e.add(c, catalog.HclkIONode(v), catalog.HclkIONaming(v, edge),
		[]string{naming.HclkIO(edge, e.rx(c.Col), e.ry(c.Row))}, nil)
}
