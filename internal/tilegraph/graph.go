package tilegraph

import (
	"fmt"

	"github.com/specialistvlad/tilegrid/internal/catalog"
	"github.com/specialistvlad/tilegrid/internal/grid"
)

// Coord addresses one tile.
type Coord struct {
	Col grid.ColID
	Row grid.RowID
}

func (c Coord) String() string {
	return fmt.Sprintf("X%dY%d", c.Col, c.Row)
}

// Delta returns the coordinate offset by (dc, dr). Stepping outside the
// non-negative quadrant is a coordinate defect and panics.
func (c Coord) Delta(dc, dr int) Coord {
	col, row := int(c.Col)+dc, int(c.Row)+dr
	if col < 0 || row < 0 {
		panic(fmt.Sprintf("tilegraph: coordinate %s offset by (%d,%d) is negative", c, dc, dr))
	}
	return Coord{Col: grid.ColID(col), Row: grid.RowID(row)}
}

// Bel is one placeable resource inside a node.
type Bel struct {
	Slot int
	Name string
}

// Node is one functional unit owned by a tile.
type Node struct {
	Kind   catalog.NodeKindID
	Naming catalog.NamingID
	// Names holds the raw vendor names of the node. The first one names the
	// anchor tile.
	Names []string
	Tiles []Coord
	Bels  []Bel
}

// Term is a termination on one side of a tile.
type Term struct {
	Dir    grid.Dir
	Kind   catalog.NodeKindID
	Naming catalog.NamingID
	Name   string
}

// Tile is the graph entry for one coordinate.
type Tile struct {
	Coord
	Nodes   []*Node
	Terms   [4]*Term
	ClkRoot Coord
}

// Graph is a dense width × height array of tiles.
type Graph struct {
	width  int
	height int
	tiles  []Tile
}

// New creates an empty graph of the given dimensions.
func New(width, height int) *Graph {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("tilegraph: invalid dimensions %dx%d", width, height))
	}
	g := &Graph{
		width:  width,
		height: height,
		tiles:  make([]Tile, width*height),
	}
	for col := 0; col < width; col++ {
		for row := 0; row < height; row++ {
			g.tiles[col*height+row].Coord = Coord{Col: grid.ColID(col), Row: grid.RowID(row)}
		}
	}
	return g
}

// Width returns the number of columns.
func (g *Graph) Width() int { return g.width }

// Height returns the number of rows.
func (g *Graph) Height() int { return g.height }

// Tile returns the tile at c and panics if c is outside the graph.
func (g *Graph) Tile(c Coord) *Tile {
	if c.Col < 0 || int(c.Col) >= g.width || c.Row < 0 || int(c.Row) >= g.height {
		panic(fmt.Sprintf("tilegraph: tile %s outside %dx%d graph", c, g.width, g.height))
	}
	return &g.tiles[int(c.Col)*g.height+int(c.Row)]
}

// Tiles returns every tile in column-major order.
func (g *Graph) Tiles() []*Tile {
	tiles := make([]*Tile, len(g.tiles))
	for i := range g.tiles {
		tiles[i] = &g.tiles[i]
	}
	return tiles
}

// Nodes returns the nodes owned by the tile at c.
func (g *Graph) Nodes(c Coord) []*Node {
	return g.Tile(c).Nodes
}

// AddNode appends a node to the tile at anchor and returns it along with its
// index in the tile's node list. tiles defaults to the anchor alone.
func (g *Graph) AddNode(anchor Coord, kind catalog.NodeKindID, naming catalog.NamingID, names []string, tiles []Coord) (*Node, int) {
	if len(tiles) == 0 {
		tiles = []Coord{anchor}
	}
	for _, c := range tiles {
		g.Tile(c)
	}
	if len(names) > len(tiles) {
		panic(fmt.Sprintf("tilegraph: node at %s has %d names for %d tiles", anchor, len(names), len(tiles)))
	}
	t := g.Tile(anchor)
	n := &Node{
		Kind:   kind,
		Naming: naming,
		Names:  names,
		Tiles:  tiles,
	}
	t.Nodes = append(t.Nodes, n)
	return n, len(t.Nodes) - 1
}

// AddBel appends a resource to n and returns its slot.
func (g *Graph) AddBel(n *Node, name string) int {
	slot := len(n.Bels)
	n.Bels = append(n.Bels, Bel{Slot: slot, Name: name})
	return slot
}

// AddTerm sets the termination on side dir of the tile at c. A side holds at
// most one termination; setting it twice is an invariant violation.
func (g *Graph) AddTerm(c Coord, dir grid.Dir, kind catalog.NodeKindID, naming catalog.NamingID, name string) *Term {
	t := g.Tile(c)
	if t.Terms[dir] != nil {
		panic(fmt.Sprintf("tilegraph: tile %s already has a %s termination", c, dir.Name()))
	}
	term := &Term{Dir: dir, Kind: kind, Naming: naming, Name: name}
	t.Terms[dir] = term
	return term
}

// Nuke clears every tile inside r: terminations are dropped and only the
// nodes for which keep returns true survive.
func (g *Graph) Nuke(r grid.Rect, keep func(*Node) bool) {
	for col := r.Col0; col < r.Col1; col++ {
		for row := r.Row0; row < r.Row1; row++ {
			t := g.Tile(Coord{Col: col, Row: row})
			kept := t.Nodes[:0]
			for _, n := range t.Nodes {
				if keep != nil && keep(n) {
					kept = append(kept, n)
				}
			}
			clear(t.Nodes[len(kept):])
			t.Nodes = kept
			t.Terms = [4]*Term{}
		}
	}
}

// SetClkRoot records the clock root of the tile at c.
func (g *Graph) SetClkRoot(c, root Coord) {
	g.Tile(root)
	g.Tile(c).ClkRoot = root
}

// Find returns the first node of the given kind owned by the tile at c.
func (g *Graph) Find(c Coord, kind catalog.NodeKindID) (*Node, bool) {
	for _, n := range g.Tile(c).Nodes {
		if n.Kind == kind {
			return n, true
		}
	}
	return nil, false
}

// BelNames returns the name of every bel in the graph, in tile order.
func (g *Graph) BelNames() []string {
	var names []string
	for i := range g.tiles {
		for _, n := range g.tiles[i].Nodes {
			for _, b := range n.Bels {
				names = append(names, b.Name)
			}
		}
	}
	return names
}
