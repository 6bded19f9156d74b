package config

import (
	"testing"

	"github.com/specialistvlad/tilegrid/internal/catalog"
	"github.com/specialistvlad/tilegrid/internal/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func device(name, source string) *Device {
	return &Device{Grid: &grid.Grid{Name: name}, Source: source}
}

func names(m *Model) []string {
	var out []string
	for _, d := range m.Devices {
		out = append(out, d.Grid.Name)
	}
	return out
}

func TestModel_AddRejectsDuplicates(t *testing.T) {
	m := &Model{}
	require.NoError(t, m.Add(device("lx9", "a.hcl")))

	err := m.Add(device("lx9", "b.hcl"))
	assert.EqualError(t, err, `device "lx9" declared twice (a.hcl and b.hcl)`)
	assert.Len(t, m.Devices, 1)
}

func TestModel_SortAndFilter(t *testing.T) {
	m := &Model{}
	for _, n := range []string{"lx45", "lx9", "lx16"} {
		require.NoError(t, m.Add(device(n, "devices.hcl")))
	}
	m.Sort()
	assert.Equal(t, []string{"lx16", "lx45", "lx9"}, names(m))

	require.NoError(t, m.Filter(nil))
	assert.Len(t, m.Devices, 3)

	require.NoError(t, m.Filter([]string{"lx9", "lx16"}))
	assert.Equal(t, []string{"lx16", "lx9"}, names(m))

	err := m.Filter([]string{"lx9", "lx150", "lx100"})
	assert.EqualError(t, err, "unknown devices: [lx100 lx150]")
	assert.Equal(t, []string{"lx16", "lx9"}, names(m), "a failed filter leaves the model alone")
}

func TestCatalog_Build(t *testing.T) {
	good := &Catalog{Nodes: catalog.RequiredNodes(), Namings: catalog.RequiredNamings(), Source: "cat.hcl"}
	store, err := good.Build()
	require.NoError(t, err)
	assert.Equal(t, catalog.NodeInt, store.NodeName(store.LookupNode(catalog.NodeInt)))

	bad := &Catalog{Nodes: catalog.RequiredNodes()[1:], Namings: catalog.RequiredNamings(), Source: "cat.hcl"}
	_, err = bad.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog declared in cat.hcl")
	assert.Contains(t, err.Error(), catalog.NodeInt)
}
