package grid

// RowsPerRegion is the height of one configuration region, and the period
// of the routing breaks and HCLK rows.
const RowsPerRegion = 16

// ColID indexes a column of the die, left to right.
type ColID int

// RowID indexes a row of the die, bottom to top.
type RowID int

// RegID indexes a configuration region (a band of RowsPerRegion rows).
type RegID int

// Column describes one fabric column.
type Column struct {
	Kind  ColumnKind
	TopIO ColumnIOKind
	BotIO ColumnIOKind
}

// Row carries the per-row IO presence of the left and right IO columns.
type Row struct {
	LIO bool
	RIO bool
}

// Gts describes the transceiver anchor columns. Single uses Cols[0]; Double
// and Quad use Cols[0] and Cols[1].
type Gts struct {
	Kind GtKind
	Cols []ColID
}

// Columns returns the anchor columns in use for the kind.
func (g Gts) Columns() []ColID {
	switch g.Kind {
	case GtNone:
		return nil
	case GtSingle:
		return g.Cols[:1]
	case GtDouble, GtQuad:
		return g.Cols[:2]
	default:
		panic("invalid gt kind")
	}
}

// Mcb is one memory controller strip. It is instantiated on both the left
// and the right IO column.
type Mcb struct {
	Row     RowID
	RowsMui []RowID
}

// McbHeight is the number of rows covered by the main MCB strip.
const McbHeight = 12

// Grid is the immutable description of one die.
type Grid struct {
	Name    string
	Columns []Column
	Rows    []Row

	ColLIO ColID
	ColRIO ColID
	ColClk ColID
	RowClk RowID

	RowBioOuter RowID
	RowBioInner RowID
	RowTioInner RowID
	RowTioOuter RowID

	ColsRegBuf     [2]ColID
	ColsClkFold    *[2]ColID
	RowsPciCeSplit [2]RowID

	Gts  Gts
	Mcbs []Mcb

	HasEncrypt bool
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return len(g.Columns)
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return len(g.Rows)
}

// Regions returns the number of configuration regions.
func (g *Grid) Regions() int {
	return len(g.Rows) / RowsPerRegion
}

// RegionOf returns the configuration region containing row.
func (g *Grid) RegionOf(row RowID) RegID {
	return RegID(int(row) / RowsPerRegion)
}

// Kind returns the kind of column col.
func (g *Grid) Kind(col ColID) ColumnKind {
	return g.Columns[col].Kind
}

// IsIORow reports whether row is one of the four top/bottom IO rows.
func (g *Grid) IsIORow(row RowID) bool {
	return row == g.RowBioOuter || row == g.RowBioInner || row == g.RowTioInner || row == g.RowTioOuter
}

// HasEdgeIO reports whether the tile at (col, row) on a top/bottom IO row
// carries IO according to the column descriptor.
func (g *Grid) HasEdgeIO(col ColID, row RowID) bool {
	c := g.Columns[col]
	switch row {
	case g.RowBioOuter:
		return c.BotIO.HasOuter()
	case g.RowBioInner:
		return c.BotIO.HasInner()
	case g.RowTioInner:
		return c.TopIO.HasInner()
	case g.RowTioOuter:
		return c.TopIO.HasOuter()
	default:
		return false
	}
}

// IsBreak reports whether a periodic routing segment boundary sits at row.
// Row 0 and the clock row never break.
func (g *Grid) IsBreak(row RowID) bool {
	return int(row)%RowsPerRegion == 0 && row != 0 && row != g.RowClk
}

// IsHclkRow reports whether row is the HCLK divider row of its region.
func (g *Grid) IsHclkRow(row RowID) bool {
	return int(row)%RowsPerRegion == RowsPerRegion/2
}

// ColumnsOfKind returns the columns whose kind satisfies pred, in order.
func (g *Grid) ColumnsOfKind(pred func(ColumnKind) bool) []ColID {
	var cols []ColID
	for i, c := range g.Columns {
		if pred(c.Kind) {
			cols = append(cols, ColID(i))
		}
	}
	return cols
}
