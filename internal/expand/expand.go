package expand

import (
	"context"
	"log/slog"

	"github.com/specialistvlad/tilegrid/internal/bitstream"
	"github.com/specialistvlad/tilegrid/internal/catalog"
	"github.com/specialistvlad/tilegrid/internal/ctxlog"
	"github.com/specialistvlad/tilegrid/internal/grid"
	"github.com/specialistvlad/tilegrid/internal/tilegraph"
)

// BondedIO is one pad reachable from the package.
type BondedIO struct {
	Coord     tilegraph.Coord
	NodeIndex int
	Slot      int
	Name      string
}

// ExpandedDevice is the result of one expansion. It is read-only.
type ExpandedDevice struct {
	Grid     *grid.Grid
	Coords   Coords
	Graph    *tilegraph.Graph
	BondedIO []BondedIO
	Holes    []grid.Rect
	Geometry bitstream.Geometry
}

// expander is the builder context of one expansion call. Every running
// counter lives here so that independent expansions share nothing.
type expander struct {
	logger       *slog.Logger
	g            *grid.Grid
	cat          catalog.Catalog
	disabled     grid.DisabledParts
	coords       Coords
	graph        *tilegraph.Graph
	holes        []grid.GtHole
	interconnect map[catalog.NodeKindID]bool

	bonded []BondedIO
	pad    int
	mcbY   [2]int
}

// Expand lowers g into a tile graph, its bonded IO and its frame geometry.
//
// Expansion is a pure function of its inputs. A malformed grid or a catalog
// missing a referenced name is a defect in the device description and
// panics; there is no partial result.
func Expand(ctx context.Context, g *grid.Grid, cat catalog.Catalog, disabled grid.DisabledParts) *ExpandedDevice {
	g.MustValidate()

	e := &expander{
		logger:       ctxlog.FromContext(ctx).With("device", g.Name),
		g:            g,
		cat:          cat,
		disabled:     disabled,
		coords:       BuildCoords(g),
		graph:        tilegraph.New(g.Width(), g.Height()),
		holes:        g.GtHoles(),
		interconnect: make(map[catalog.NodeKindID]bool),
		pad:          1,
	}
	for _, name := range catalog.InterconnectKinds() {
		e.interconnect[cat.LookupNode(name)] = true
	}

	phases := []struct {
		name string
		run  func()
	}{
		{"interconnect", e.fillInterconnect},
		{"io", e.fillIO},
		{"mcb", e.fillMcbs},
		{"pci logic", e.fillPciLogic},
		{"clock spine", e.fillClockSpine},
		{"cmt", e.fillCmts},
		{"gt", e.carveGts},
		{"bram", e.fillBram},
		{"dsp", e.fillDsp},
		{"logic", e.fillLogic},
		{"hclk", e.fillHclk},
	}
	for _, p := range phases {
		p.run()
		e.logger.Debug("Expansion phase done.", "phase", p.name)
	}

	holes := make([]grid.Rect, len(e.holes))
	for i, h := range e.holes {
		holes[i] = h.Rect
	}

	return &ExpandedDevice{
		Grid:     g,
		Coords:   e.coords,
		Graph:    e.graph,
		BondedIO: e.bonded,
		Holes:    holes,
		Geometry: bitstream.NewGeometry(g),
	}
}

func at(col grid.ColID, row grid.RowID) tilegraph.Coord {
	return tilegraph.Coord{Col: col, Row: row}
}

func (e *expander) node(name string) catalog.NodeKindID {
	return e.cat.LookupNode(name)
}

func (e *expander) naming(name string) catalog.NamingID {
	return e.cat.LookupNaming(name)
}

// rx and ry return the routing coordinates of a column and a row.
func (e *expander) rx(col grid.ColID) int { return e.coords.RoutingX[col] }
func (e *expander) ry(row grid.RowID) int { return e.coords.RoutingY[row] }

// add registers a node with its bels at anchor.
func (e *expander) add(anchor tilegraph.Coord, kind, naming string, names []string, tiles []tilegraph.Coord, bels ...string) (*tilegraph.Node, int) {
	n, idx := e.graph.AddNode(anchor, e.node(kind), e.naming(naming), names, tiles)
	for _, b := range bels {
		e.graph.AddBel(n, b)
	}
	return n, idx
}

func (e *expander) inHole(col grid.ColID, row grid.RowID) bool {
	for _, h := range e.holes {
		if h.Contains(col, row) {
			return true
		}
	}
	return false
}

func (e *expander) touchesHole(r grid.Rect) bool {
	for _, h := range e.holes {
		if h.Overlaps(r) {
			return true
		}
	}
	return false
}

func (e *expander) isInterconnect(n *tilegraph.Node) bool {
	return e.interconnect[n.Kind]
}

// span returns the coordinates of rows [row0, row1) of a column.
func span(col grid.ColID, row0, row1 grid.RowID) []tilegraph.Coord {
	tiles := make([]tilegraph.Coord, 0, row1-row0)
	for row := row0; row < row1; row++ {
		tiles = append(tiles, at(col, row))
	}
	return tiles
}
