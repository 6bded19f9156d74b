package grid_test

import (
	"testing"

	"github.com/specialistvlad/tilegrid/internal/grid"
	"github.com/specialistvlad/tilegrid/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRect(t *testing.T) {
	r := grid.Rect{Col0: 2, Col1: 5, Row0: 48, Row1: 64}

	assert.True(t, r.Contains(2, 48))
	assert.True(t, r.Contains(4, 63))
	assert.False(t, r.Contains(5, 50), "upper column bound is exclusive")
	assert.False(t, r.Contains(3, 47))

	assert.True(t, r.Overlaps(grid.Rect{Col0: 4, Col1: 8, Row0: 60, Row1: 70}))
	assert.False(t, r.Overlaps(grid.Rect{Col0: 5, Col1: 8, Row0: 48, Row1: 64}), "adjacent rectangles")
	assert.Equal(t, "X2..5/Y48..64", r.String())
}

func TestGtHoles(t *testing.T) {
	single := testutil.SmallDevice().GtHoles()
	require.Len(t, single, 1)
	assert.Equal(t, grid.GtHole{
		Rect:   grid.Rect{Col0: 8, Col1: 11, Row0: 48, Row1: 64},
		Anchor: 8,
		Top:    true,
	}, single[0])

	quad := testutil.QuadDevice().GtHoles()
	require.Len(t, quad, 4)
	var got []string
	for _, h := range quad {
		got = append(got, h.String())
	}
	assert.Equal(t, []string{"X3..6/Y0..16", "X3..6/Y48..64", "X12..15/Y0..16", "X12..15/Y48..64"}, got)
	assert.Equal(t, 1, quad[3].Index)
	assert.False(t, quad[2].Top)

	g := testutil.SmallDevice()
	g.Gts = grid.Gts{}
	assert.Empty(t, g.GtHoles())
}

func TestCmtTopology(t *testing.T) {
	testCases := []struct {
		regions int
		rowClk  grid.RowID
		want    []grid.RowID
	}{
		{4, 40, []grid.RowID{24, 56}},
		{8, 72, []grid.RowID{40, 56, 88, 104}},
		{12, 104, []grid.RowID{56, 72, 88, 120, 136, 152}},
	}
	for _, tc := range testCases {
		g := testutil.QuadDevice()
		g.Rows = make([]grid.Row, tc.regions*grid.RowsPerRegion)
		g.RowClk = tc.rowClk

		var rows []grid.RowID
		for _, site := range g.CmtTopology() {
			rows = append(rows, g.CmtRow(site))
		}
		assert.Equal(t, tc.want, rows, "%d regions", tc.regions)
	}
}

func TestRowPredicates(t *testing.T) {
	g := testutil.SmallDevice()

	assert.False(t, g.IsBreak(0))
	assert.True(t, g.IsBreak(16))
	assert.True(t, g.IsBreak(32))
	assert.False(t, g.IsBreak(33))

	g.RowClk = 48
	assert.False(t, g.IsBreak(48), "the clock row never breaks")

	assert.True(t, g.IsHclkRow(8))
	assert.True(t, g.IsHclkRow(56))
	assert.False(t, g.IsHclkRow(16))

	assert.Equal(t, grid.RegID(2), g.RegionOf(47))
	assert.Equal(t, 4, g.Regions())
}

func TestHasEdgeIO(t *testing.T) {
	g := testutil.SmallDevice()
	g.Columns[4].TopIO = grid.ColumnIOOuter
	g.Columns[4].BotIO = grid.ColumnIOInner

	assert.True(t, g.HasEdgeIO(4, 63))
	assert.False(t, g.HasEdgeIO(4, 62))
	assert.False(t, g.HasEdgeIO(4, 0))
	assert.True(t, g.HasEdgeIO(4, 1))
	assert.False(t, g.HasEdgeIO(4, 20), "not an io row")
	assert.False(t, g.HasEdgeIO(7, 0), "the clock column has no edge io")
	assert.True(t, g.IsIORow(62))
}

func TestColumnsOfKind(t *testing.T) {
	g := testutil.SmallDevice()

	assert.Equal(t, []grid.ColID{3, 6, 10}, g.ColumnsOfKind(grid.ColumnKind.IsMacro))
	assert.Equal(t, []grid.ColID{0, 13}, g.ColumnsOfKind(func(k grid.ColumnKind) bool { return k == grid.ColumnIO }))
}
