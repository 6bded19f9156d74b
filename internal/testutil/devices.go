package testutil

import "github.com/specialistvlad/tilegrid/internal/grid"

func columns(kinds ...grid.ColumnKind) []grid.Column {
	cols := make([]grid.Column, len(kinds))
	for i, k := range kinds {
		cols[i] = grid.Column{Kind: k}
		if k.IsLogic() && k != grid.ColumnCleClk {
			cols[i].TopIO = grid.ColumnIOBoth
			cols[i].BotIO = grid.ColumnIOBoth
		}
	}
	return cols
}

func rows(n int, absent ...int) []grid.Row {
	rs := make([]grid.Row, n)
	for i := range rs {
		rs[i] = grid.Row{LIO: true, RIO: true}
	}
	for _, i := range absent {
		rs[i] = grid.Row{}
	}
	return rs
}

// SmallDevice returns a four-region die with one transceiver, one MCB, both
// macro column kinds and an encryption block.
//
//	col  0  1  2  3    4  5  6   7      8  9  10   11 12 13
//	     io L  M  bram L  M  dsp cleclk L  M  bram L  M  io
func SmallDevice() *grid.Grid {
	const (
		io   = grid.ColumnIO
		l    = grid.ColumnCleXL
		m    = grid.ColumnCleXM
		bram = grid.ColumnBram
		dsp  = grid.ColumnDsp
		clk  = grid.ColumnCleClk
	)
	absent := []int{}
	for row := 4; row < 18; row++ {
		absent = append(absent, row)
	}
	return &grid.Grid{
		Name:           "small",
		Columns:        columns(io, l, m, bram, l, m, dsp, clk, l, m, bram, l, m, io),
		Rows:           rows(64, absent...),
		ColLIO:         0,
		ColRIO:         13,
		ColClk:         7,
		RowClk:         40,
		RowBioOuter:    0,
		RowBioInner:    1,
		RowTioInner:    62,
		RowTioOuter:    63,
		ColsRegBuf:     [2]grid.ColID{3, 10},
		ColsClkFold:    &[2]grid.ColID{5, 9},
		RowsPciCeSplit: [2]grid.RowID{24, 56},
		Gts:            grid.Gts{Kind: grid.GtSingle, Cols: []grid.ColID{8}},
		Mcbs:           []grid.Mcb{{Row: 4, RowsMui: []grid.RowID{16, 17}}},
		HasEncrypt:     true,
	}
}

// QuadDevice returns a four-region die with transceivers in all four
// corners and no MCB.
//
//	col  0  1  2  3  4  5    6  7  8   9      10 11 12 13 14      15 16 17   18 19
//	     io L  M  L  M  bram L  M  dsp cleclk L  M  L  M  dspplus L  M  bram L  io
func QuadDevice() *grid.Grid {
	const (
		io   = grid.ColumnIO
		l    = grid.ColumnCleXL
		m    = grid.ColumnCleXM
		bram = grid.ColumnBram
		dsp  = grid.ColumnDsp
		dspp = grid.ColumnDspPlus
		clk  = grid.ColumnCleClk
	)
	return &grid.Grid{
		Name:           "quad",
		Columns:        columns(io, l, m, l, m, bram, l, m, dsp, clk, l, m, l, m, dspp, l, m, bram, l, io),
		Rows:           rows(64),
		ColLIO:         0,
		ColRIO:         19,
		ColClk:         9,
		RowClk:         40,
		RowBioOuter:    0,
		RowBioInner:    1,
		RowTioInner:    62,
		RowTioOuter:    63,
		ColsRegBuf:     [2]grid.ColID{5, 17},
		RowsPciCeSplit: [2]grid.RowID{24, 56},
		Gts:            grid.Gts{Kind: grid.GtQuad, Cols: []grid.ColID{3, 12}},
	}
}

// AllIO returns a single-region grid of n io columns. It is not a valid die
// and only serves coordinate table checks.
func AllIO(n int) *grid.Grid {
	cols := make([]grid.Column, n)
	for i := range cols {
		cols[i] = grid.Column{Kind: grid.ColumnIO}
	}
	return &grid.Grid{
		Name:        "all-io",
		Columns:     cols,
		Rows:        rows(grid.RowsPerRegion),
		ColLIO:      0,
		ColRIO:      grid.ColID(n - 1),
		ColClk:      -1,
		RowClk:      grid.RowsPerRegion / 2,
		RowBioOuter: 0,
		RowBioInner: 1,
		RowTioInner: grid.RowsPerRegion - 2,
		RowTioOuter: grid.RowsPerRegion - 1,
	}
}
