package grid_test

import (
	"testing"

	"github.com/specialistvlad/tilegrid/internal/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColumnKind(t *testing.T) {
	for _, name := range []string{"io", "clexl", "clexm", "cleclk", "bram", "dsp", "dspplus"} {
		k, err := grid.ParseColumnKind(name)
		require.NoError(t, err)
		assert.Equal(t, name, k.String())
	}

	_, err := grid.ParseColumnKind("uram")
	assert.EqualError(t, err, `unknown column kind "uram"`)
	assert.Equal(t, "ColumnKind(42)", grid.ColumnKind(42).String())
}

func TestParseColumnIOKind_EmptyMeansNone(t *testing.T) {
	k, err := grid.ParseColumnIOKind("")
	require.NoError(t, err)
	assert.Equal(t, grid.ColumnIONone, k)

	k, err = grid.ParseColumnIOKind("inner")
	require.NoError(t, err)
	assert.True(t, k.HasInner())
	assert.False(t, k.HasOuter())

	_, err = grid.ParseColumnIOKind("middle")
	assert.Error(t, err)
}

func TestGts_Columns(t *testing.T) {
	cols := []grid.ColID{4, 12}

	assert.Empty(t, grid.Gts{Kind: grid.GtNone, Cols: cols}.Columns())
	assert.Equal(t, []grid.ColID{4}, grid.Gts{Kind: grid.GtSingle, Cols: cols}.Columns())
	assert.Equal(t, cols, grid.Gts{Kind: grid.GtQuad, Cols: cols}.Columns())
	assert.Panics(t, func() { grid.Gts{Kind: grid.GtKind(9)}.Columns() })
}

func TestDir(t *testing.T) {
	assert.Equal(t, "W", grid.DirW.Name())
	assert.Equal(t, "T", grid.DirN.Letter())
	assert.Panics(t, func() { grid.Dir(7).Letter() })

	side, err := grid.ParseSide("right")
	require.NoError(t, err)
	assert.Equal(t, grid.DirE, side)
	_, err = grid.ParseSide("top")
	assert.EqualError(t, err, `unknown side "top", expected 'left' or 'right'`)
}

func TestColumnKind_Predicates(t *testing.T) {
	assert.True(t, grid.ColumnCleClk.IsLogic())
	assert.False(t, grid.ColumnBram.IsLogic())
	assert.True(t, grid.ColumnDspPlus.IsMacro())
	assert.False(t, grid.ColumnIO.IsMacro())
}
