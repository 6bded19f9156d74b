package report

import (
	"sort"

	"github.com/specialistvlad/tilegrid/internal/catalog"
	"github.com/specialistvlad/tilegrid/internal/expand"
)

// KindCount is the number of instances of one node kind and the bels they
// carry. Terminations count as instances without bels.
type KindCount struct {
	Kind      string `yaml:"kind"`
	Instances int    `yaml:"instances"`
	Bels      int    `yaml:"bels"`
}

// Summary condenses one expanded device.
type Summary struct {
	Device string      `yaml:"device"`
	Tiles  int         `yaml:"tiles"`
	Pads   int         `yaml:"bonded_pads"`
	Holes  int         `yaml:"holes"`
	Frames int         `yaml:"frames"`
	Kinds  []KindCount `yaml:"kinds"`
}

// Summarize counts the node kinds of d, sorted by kind name.
func Summarize(d *expand.ExpandedDevice, cat catalog.Catalog) Summary {
	counts := make(map[catalog.NodeKindID]*KindCount)
	count := func(kind catalog.NodeKindID, bels int) {
		c, ok := counts[kind]
		if !ok {
			c = &KindCount{Kind: cat.NodeName(kind)}
			counts[kind] = c
		}
		c.Instances++
		c.Bels += bels
	}

	tiles := d.Graph.Tiles()
	for _, tile := range tiles {
		for _, n := range tile.Nodes {
			count(n.Kind, len(n.Bels))
		}
		for _, term := range tile.Terms {
			if term != nil {
				count(term.Kind, 0)
			}
		}
	}

	s := Summary{
		Device: d.Grid.Name,
		Tiles:  len(tiles),
		Pads:   len(d.BondedIO),
		Holes:  len(d.Holes),
		Frames: len(d.Geometry.Frames),
	}
	for _, c := range counts {
		s.Kinds = append(s.Kinds, *c)
	}
	sort.Slice(s.Kinds, func(i, j int) bool { return s.Kinds[i].Kind < s.Kinds[j].Kind })
	return s
}

// Kind returns the count for the named kind, or a zero count.
func (s Summary) Kind(name string) KindCount {
	for _, c := range s.Kinds {
		if c.Kind == name {
			return c
		}
	}
	return KindCount{Kind: name}
}
