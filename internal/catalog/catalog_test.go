package catalog

import (
	"testing"

	"github.com/specialistvlad/tilegrid/internal/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin_ResolvesEveryRequiredName(t *testing.T) {
	c := Builtin()
	require.NoError(t, c.Validate())

	for _, name := range RequiredNodes() {
		id := c.LookupNode(name)
		assert.Equal(t, name, c.NodeName(id))
	}
	for _, name := range RequiredNamings() {
		id := c.LookupNaming(name)
		assert.Equal(t, name, c.NamingName(id))
	}
}

func TestNew_AssignsDenseIDsInOrder(t *testing.T) {
	c := New([]string{"A", "B", "A", "C"}, []string{"x"})

	assert.Equal(t, NodeKindID(0), c.LookupNode("A"))
	assert.Equal(t, NodeKindID(1), c.LookupNode("B"))
	assert.Equal(t, NodeKindID(2), c.LookupNode("C"))
	assert.Equal(t, NamingID(0), c.LookupNaming("x"))

	nodes, namings := c.Len()
	assert.Equal(t, 3, nodes)
	assert.Equal(t, 1, namings)
}

func TestLookup_UnknownNamePanics(t *testing.T) {
	c := New([]string{"INT"}, []string{"INT"})

	assert.PanicsWithValue(t, `catalog: unknown node kind "BRAM"`, func() {
		c.LookupNode("BRAM")
	})
	assert.PanicsWithValue(t, `catalog: unknown naming "IOI.L"`, func() {
		c.LookupNaming("IOI.L")
	})
}

func TestValidate_ReportsEveryMissingName(t *testing.T) {
	nodes := RequiredNodes()
	c := New(nodes[1:], []string{NamingInt})

	err := c.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, `node kind "INT" is referenced by the engine but not declared`)
	assert.ErrorContains(t, err, `naming "IOI.L.BRK" is referenced by the engine but not declared`)
	assert.NotContains(t, err.Error(), `naming "INT" is`)
}

func TestEdgeNamings(t *testing.T) {
	testCases := []struct {
		name     string
		got      string
		expected string
	}{
		{"left ioi", IOINaming(grid.DirW, false), "IOI.L"},
		{"top ioi break", IOINaming(grid.DirN, true), "IOI.T.BRK"},
		{"bottom iob", IOBNaming(grid.DirS), "IOB.B"},
		{"east term", TermNaming(grid.DirE), "TERM.E"},
		{"right hclk split", HclkIONaming(HclkIOSplit, grid.DirE), "HCLK.IO.SPLIT.R"},
		{"left mcb", McbNaming(grid.DirW), "MCB.L"},
		{"east region buffer", RegHNaming(grid.DirE), "REGH.E"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.got)
		})
	}
}
