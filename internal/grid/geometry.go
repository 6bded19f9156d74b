package grid

import "fmt"

// Rect is a half-open rectangle of tiles: columns [Col0, Col1) and rows
// [Row0, Row1).
type Rect struct {
	Col0, Col1 ColID
	Row0, Row1 RowID
}

// Contains reports whether the tile (col, row) lies inside the rectangle.
func (r Rect) Contains(col ColID, row RowID) bool {
	return col >= r.Col0 && col < r.Col1 && row >= r.Row0 && row < r.Row1
}

// Overlaps reports whether the two rectangles share at least one tile.
// Adjacent rectangles do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.Col0 < o.Col1 && o.Col0 < r.Col1 && r.Row0 < o.Row1 && o.Row0 < r.Row1
}

func (r Rect) String() string {
	return fmt.Sprintf("X%d..%d/Y%d..%d", r.Col0, r.Col1, r.Row0, r.Row1)
}

// GtHoleWidth is the number of columns a transceiver footprint covers.
const GtHoleWidth = 3

// GtHole is the footprint of one transceiver macro.
type GtHole struct {
	Rect
	// Anchor is the transceiver column the hole was derived from.
	Anchor ColID
	// Index is 0 for the first (left) anchor column and 1 for the second.
	Index int
	// Top is true for holes carved from the top rows.
	Top bool
}

// GtHoles returns the transceiver footprints of the die, ordered by anchor
// and bottom before top.
func (g *Grid) GtHoles() []GtHole {
	var holes []GtHole
	h := RowID(g.Height())
	for i, col := range g.Gts.Columns() {
		if g.Gts.Kind == GtQuad {
			holes = append(holes, GtHole{
				Rect:   Rect{Col0: col, Col1: col + GtHoleWidth, Row0: 0, Row1: RowsPerRegion},
				Anchor: col,
				Index:  i,
			})
		}
		holes = append(holes, GtHole{
			Rect:   Rect{Col0: col, Col1: col + GtHoleWidth, Row0: h - RowsPerRegion, Row1: h},
			Anchor: col,
			Index:  i,
			Top:    true,
		})
	}
	return holes
}

// CmtKind is the macro placed by one clock-management topology entry.
type CmtKind int

const (
	CmtDcm CmtKind = iota
	CmtPll
)

func (k CmtKind) String() string {
	switch k {
	case CmtDcm:
		return "DCM"
	case CmtPll:
		return "PLL"
	default:
		panic("invalid cmt kind")
	}
}

// CmtSite is a clock-management tile placement relative to the clock region.
type CmtSite struct {
	// Delta is the region offset from the region holding the clock row.
	Delta int
	Kind  CmtKind
}

var (
	cmtSmall = []CmtSite{
		{Delta: -1, Kind: CmtDcm},
		{Delta: 1, Kind: CmtPll},
	}
	cmtMedium = []CmtSite{
		{Delta: -2, Kind: CmtPll},
		{Delta: -1, Kind: CmtDcm},
		{Delta: 1, Kind: CmtDcm},
		{Delta: 2, Kind: CmtPll},
	}
	cmtLarge = []CmtSite{
		{Delta: -3, Kind: CmtDcm},
		{Delta: -2, Kind: CmtPll},
		{Delta: -1, Kind: CmtDcm},
		{Delta: 1, Kind: CmtDcm},
		{Delta: 2, Kind: CmtPll},
		{Delta: 3, Kind: CmtDcm},
	}
)

// CmtTopology selects the clock-management topology table by die size.
func (g *Grid) CmtTopology() []CmtSite {
	switch regs := g.Regions(); {
	case regs <= 4:
		return cmtSmall
	case regs <= 8:
		return cmtMedium
	default:
		return cmtLarge
	}
}

// CmtRow returns the HCLK row a topology entry sits on.
func (g *Grid) CmtRow(site CmtSite) RowID {
	reg := int(g.RowClk)/RowsPerRegion + site.Delta
	return RowID(reg*RowsPerRegion + RowsPerRegion/2)
}
