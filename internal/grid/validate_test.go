package grid_test

import (
	"testing"

	"github.com/specialistvlad/tilegrid/internal/grid"
	"github.com/specialistvlad/tilegrid/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_FixturesAreValid(t *testing.T) {
	for _, g := range []*grid.Grid{testutil.SmallDevice(), testutil.QuadDevice()} {
		t.Run(g.Name, func(t *testing.T) {
			require.NoError(t, g.Validate())
			assert.NotPanics(t, g.MustValidate)
		})
	}
}

func TestValidate_Rejects(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(g *grid.Grid)
		wantErr string
	}{
		{
			name:    "row count not a region multiple",
			mutate:  func(g *grid.Grid) { g.Rows = g.Rows[:50] },
			wantErr: "row count 50 is not a positive multiple of 16",
		},
		{
			name:    "too narrow",
			mutate:  func(g *grid.Grid) { g.Columns = g.Columns[:2] },
			wantErr: "need at least 3 columns",
		},
		{
			name:    "clock column of the wrong kind",
			mutate:  func(g *grid.Grid) { g.ColClk = 3 },
			wantErr: "clock column 3 has kind bram",
		},
		{
			name:    "io column out of range",
			mutate:  func(g *grid.Grid) { g.ColRIO = 14 },
			wantErr: "right io column 14 outside 0..13",
		},
		{
			name:    "clock row on the edge",
			mutate:  func(g *grid.Grid) { g.RowClk = 63 },
			wantErr: "clock row 63 touches the die edge",
		},
		{
			name:    "mcb does not fit",
			mutate:  func(g *grid.Grid) { g.Mcbs[0].Row = 60 },
			wantErr: "mcb 0 at row 60 does not fit 12 rows",
		},
		{
			name:    "coinciding region buffers",
			mutate:  func(g *grid.Grid) { g.ColsRegBuf = [2]grid.ColID{3, 3} },
			wantErr: "region buffer columns coincide at 3",
		},
		{
			name:    "hole over the clock column",
			mutate:  func(g *grid.Grid) { g.Gts.Cols = []grid.ColID{5} },
			wantErr: "covers the clock column",
		},
		{
			name:    "hole reaching the io column",
			mutate:  func(g *grid.Grid) { g.Gts.Cols = []grid.ColID{11} },
			wantErr: "reaches an io column",
		},
		{
			name:    "region buffer inside a hole",
			mutate:  func(g *grid.Grid) { g.RowClk = 56 },
			wantErr: "region buffer 1 at column 10 lies in transceiver hole X8..11/Y48..64",
		},
		{
			name: "missing transceiver columns",
			mutate: func(g *grid.Grid) {
				g.Gts = grid.Gts{Kind: grid.GtDouble, Cols: []grid.ColID{8}}
			},
			wantErr: "gt kind double needs 2 columns, got 1",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := testutil.SmallDevice()
			tc.mutate(g)

			err := g.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
			assert.Panics(t, g.MustValidate)
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	g := testutil.SmallDevice()
	g.ColLIO = 1
	g.ColClk = 0
	g.RowsPciCeSplit[1] = 99

	err := g.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "left io column 1 has kind clexl")
	assert.Contains(t, err.Error(), "clock column 0 has kind io")
	assert.Contains(t, err.Error(), "pci ce split 1 row 99 outside 0..63")
}
