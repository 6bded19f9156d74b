package grid_test

import (
	"testing"

	"github.com/specialistvlad/tilegrid/internal/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabledParts(t *testing.T) {
	set := grid.NewDisabledParts(grid.Gtp(), grid.LogicRegion(4, 2), grid.McbPart(grid.DirE, 0))

	assert.True(t, set.Has(grid.Gtp()))
	assert.True(t, set.Has(grid.LogicRegion(4, 2)))
	assert.False(t, set.Has(grid.LogicRegion(4, 1)))
	assert.False(t, set.Has(grid.BramRegion(4, 2)), "kind is part of the key")
	assert.False(t, set.Has(grid.McbPart(grid.DirW, 0)))

	assert.Equal(t, "{gtp logic[X4,R2] mcb[E,0]}", set.String())
}

func TestDisabledParts_NilDisablesNothing(t *testing.T) {
	var set grid.DisabledParts
	assert.False(t, set.Has(grid.Gtp()))
	assert.Equal(t, "{}", set.String())
}

func TestParseDisabledKind(t *testing.T) {
	k, err := grid.ParseDisabledKind("dsp")
	require.NoError(t, err)
	assert.Equal(t, grid.DisabledDsp, k)
	assert.Equal(t, "dsp[X6,R0]", grid.DspRegion(6, 0).String())

	_, err = grid.ParseDisabledKind("pll")
	assert.EqualError(t, err, `unknown disabled part kind "pll"`)
}
