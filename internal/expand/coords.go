package expand

import "github.com/specialistvlad/tilegrid/internal/grid"

// Coords holds the lookup tables used to reproduce vendor names. Each table
// is indexed by column or row and is non-decreasing. The values carry no
// routing meaning.
type Coords struct {
	RoutingX []int
	TieX     []int
	IOX      []int
	RoutingY []int
	IOY      []int
}

// BuildCoords computes the five lookup tables of g in one forward pass each.
func BuildCoords(g *grid.Grid) Coords {
	var c Coords

	rx, tx, iox := 0, 0, 0
	for i, col := range g.Columns {
		c.RoutingX = append(c.RoutingX, rx)
		c.TieX = append(c.TieX, tx)
		c.IOX = append(c.IOX, iox)

		rx++
		tx++
		if col.Kind == grid.ColumnIO || col.Kind.IsMacro() {
			rx++
		}
		if grid.ColID(i) == g.ColClk {
			rx++
		}
		if col.Kind.IsMacro() {
			tx++
		}
		if col.Kind == grid.ColumnIO || col.TopIO != grid.ColumnIONone || col.BotIO != grid.ColumnIONone {
			iox++
		}
	}

	ry, ioy := 0, 0
	for i, r := range g.Rows {
		row := grid.RowID(i)
		// The HCLK and clock spine rows take a vendor Y slot below the row.
		if g.IsHclkRow(row) {
			ry++
		}
		if row == g.RowClk {
			ry++
		}
		c.RoutingY = append(c.RoutingY, ry)
		ry++

		c.IOY = append(c.IOY, ioy)
		if r.LIO || r.RIO || g.IsIORow(row) {
			ioy++
		}
	}

	return c
}
