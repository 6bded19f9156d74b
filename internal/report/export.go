package report

import (
	"fmt"
	"io"

	"github.com/specialistvlad/tilegrid/internal/catalog"
	"github.com/specialistvlad/tilegrid/internal/expand"
	"gopkg.in/yaml.v3"
)

// Document is the YAML export of one expanded device.
type Document struct {
	Device   string          `yaml:"device"`
	Width    int             `yaml:"width"`
	Height   int             `yaml:"height"`
	Geometry GeometrySummary `yaml:"geometry"`
	Holes    []string        `yaml:"holes,omitempty"`
	Sites    []SiteExtent    `yaml:"sites"`
	BondedIO []Pad           `yaml:"bonded_io"`
	Tiles    []TileEntry     `yaml:"tiles"`
}

// GeometrySummary is the frame geometry without the frame list itself.
type GeometrySummary struct {
	Regions         int `yaml:"regions"`
	FrameLen        int `yaml:"frame_len"`
	IOFrameLen      int `yaml:"io_frame_len"`
	BramCols        int `yaml:"bram_cols"`
	FramesPerRegion int `yaml:"frames_per_region"`
	Frames          int `yaml:"frames"`
}

// Pad is one bonded pad and the tile that holds it.
type Pad struct {
	Name string `yaml:"name"`
	Tile string `yaml:"tile"`
	Node string `yaml:"node"`
}

// TileEntry lists what is anchored at one tile.
type TileEntry struct {
	Tile    string      `yaml:"tile"`
	ClkRoot string      `yaml:"clk_root"`
	Nodes   []NodeEntry `yaml:"nodes"`
	Terms   []string    `yaml:"terms,omitempty"`
}

// NodeEntry is one node with its vendor tile names.
type NodeEntry struct {
	Kind  string   `yaml:"kind"`
	Names []string `yaml:"names,flow"`
	Bels  []string `yaml:"bels,flow,omitempty"`
}

// Export builds the YAML document of d.
func Export(d *expand.ExpandedDevice, cat catalog.Catalog) Document {
	geo := d.Geometry
	doc := Document{
		Device: d.Grid.Name,
		Width:  d.Graph.Width(),
		Height: d.Graph.Height(),
		Geometry: GeometrySummary{
			Regions:         geo.Regions,
			FrameLen:        geo.FrameLen,
			IOFrameLen:      geo.IOFrameLen,
			BramCols:        geo.BramCols,
			FramesPerRegion: geo.FramesPerRegion(),
			Frames:          len(geo.Frames),
		},
	}
	doc.Sites = SiteExtents(d)
	for _, h := range d.Holes {
		doc.Holes = append(doc.Holes, h.String())
	}
	for _, b := range d.BondedIO {
		n := d.Graph.Nodes(b.Coord)[b.NodeIndex]
		doc.BondedIO = append(doc.BondedIO, Pad{Name: b.Name, Tile: b.Coord.String(), Node: n.Names[0]})
	}
	for _, tile := range d.Graph.Tiles() {
		entry := TileEntry{Tile: tile.Coord.String(), ClkRoot: tile.ClkRoot.String()}
		for _, n := range tile.Nodes {
			ne := NodeEntry{Kind: cat.NodeName(n.Kind), Names: n.Names}
			for _, b := range n.Bels {
				ne.Bels = append(ne.Bels, b.Name)
			}
			entry.Nodes = append(entry.Nodes, ne)
		}
		for _, term := range tile.Terms {
			if term != nil {
				entry.Terms = append(entry.Terms, term.Name)
			}
		}
		doc.Tiles = append(doc.Tiles, entry)
	}
	return doc
}

// WriteYAML writes the documents to w as a YAML stream, one document per
// device.
func WriteYAML(w io.Writer, docs []Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	for _, doc := range docs {
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode device %q: %w", doc.Device, err)
		}
	}
	return enc.Close()
}
