package report

import (
	"bytes"
	"context"
	"testing"

	"github.com/specialistvlad/tilegrid/internal/catalog"
	"github.com/specialistvlad/tilegrid/internal/expand"
	"github.com/specialistvlad/tilegrid/internal/grid"
	"github.com/specialistvlad/tilegrid/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func expandSmall(t *testing.T) (*expand.ExpandedDevice, *catalog.Store) {
	t.Helper()
	cat := catalog.Builtin()
	return expand.Expand(context.Background(), testutil.SmallDevice(), cat, grid.NewDisabledParts()), cat
}

func TestSummarize(t *testing.T) {
	d, cat := expandSmall(t)
	s := Summarize(d, cat)

	assert.Equal(t, "small", s.Device)
	assert.Equal(t, 14*64, s.Tiles)
	assert.Equal(t, 238, s.Pads)
	assert.Equal(t, 1, s.Holes)
	assert.Equal(t, len(d.Geometry.Frames), s.Frames)

	assert.Equal(t, KindCount{Kind: catalog.NodeIOB, Instances: 120, Bels: 240}, s.Kind(catalog.NodeIOB))
	assert.Equal(t, KindCount{Kind: catalog.NodeBram, Instances: 28, Bels: 84}, s.Kind(catalog.NodeBram))
	assert.Equal(t, KindCount{Kind: catalog.NodeDsp, Instances: 16, Bels: 16}, s.Kind(catalog.NodeDsp))
	assert.Equal(t, 1, s.Kind(catalog.NodeGtp).Instances)
	assert.Zero(t, s.Kind("NOT.A.KIND").Instances)

	for i := 1; i < len(s.Kinds); i++ {
		require.Less(t, s.Kinds[i-1].Kind, s.Kinds[i].Kind)
	}
}

func TestSummarize_CountsTerminations(t *testing.T) {
	d, cat := expandSmall(t)
	s := Summarize(d, cat)

	west := s.Kind(catalog.NodeTermW)
	assert.Positive(t, west.Instances)
	assert.Zero(t, west.Bels)
}

func TestWriteTable(t *testing.T) {
	d, cat := expandSmall(t)
	s := Summarize(d, cat)

	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, []Summary{s, s}))

	out := buf.String()
	assert.Contains(t, out, "Device small")
	assert.Contains(t, out, catalog.NodeBram)
	assert.Contains(t, out, "bonded pads")
	assert.Contains(t, out, "238")
	assert.Contains(t, out, "TOTAL", "go-pretty upper-cases footers")
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("Device small")))
}

func TestWriteYAML(t *testing.T) {
	d, cat := expandSmall(t)

	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, []Document{Export(d, cat)}))

	var doc Document
	require.NoError(t, yaml.NewDecoder(&buf).Decode(&doc))

	assert.Equal(t, "small", doc.Device)
	assert.Equal(t, 14, doc.Width)
	assert.Equal(t, 64, doc.Height)
	assert.Equal(t, 4, doc.Geometry.Regions)
	assert.Equal(t, len(d.Geometry.Frames), doc.Geometry.Frames)
	assert.Equal(t, []string{"X8..11/Y48..64"}, doc.Holes)

	require.NotEmpty(t, doc.Sites)
	assert.Equal(t, SiteExtents(d), doc.Sites)

	require.Len(t, doc.BondedIO, 238)
	assert.Equal(t, Pad{Name: "PAD1", Tile: "X1Y63", Node: "TIOB_X2Y68"}, doc.BondedIO[0])

	require.Len(t, doc.Tiles, 14*64)
	first := doc.Tiles[0]
	assert.Equal(t, "X0Y0", first.Tile)
	assert.Equal(t, "X0Y7", first.ClkRoot)
	require.NotEmpty(t, first.Nodes)
	assert.Equal(t, catalog.NodeIntIOI, first.Nodes[0].Kind)
}

func TestSiteExtents(t *testing.T) {
	d, _ := expandSmall(t)
	extents := SiteExtents(d)

	find := func(prefix string) (SiteExtent, bool) {
		for _, e := range extents {
			if e.Prefix == prefix {
				return e, true
			}
		}
		return SiteExtent{}, false
	}

	bram, ok := find("RAMB16BWER")
	require.True(t, ok)
	assert.Equal(t, SiteExtent{Prefix: "RAMB16BWER", Count: 28, Cols: 2, Rows: 16}, bram)

	dsp, ok := find("DSP48A1")
	require.True(t, ok)
	assert.Equal(t, SiteExtent{Prefix: "DSP48A1", Count: 16, Cols: 1, Rows: 16}, dsp)

	tie, ok := find("TIEOFF")
	require.True(t, ok)
	assert.Equal(t, 14*64, tie.Count)

	_, ok = find("PAD")
	assert.False(t, ok, "pads are not site-style names")
}
