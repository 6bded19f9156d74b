package report

import (
	"sort"

	"github.com/specialistvlad/tilegrid/internal/expand"
	"github.com/specialistvlad/tilegrid/internal/naming"
)

// SiteExtent is the vendor site grid spanned by the bels of one site type.
type SiteExtent struct {
	Prefix string `yaml:"prefix"`
	Count  int    `yaml:"count"`
	Cols   int    `yaml:"cols"`
	Rows   int    `yaml:"rows"`
}

// SiteExtents groups the site-style bels of d by prefix. Bels named
// otherwise, such as pads, are left out.
func SiteExtents(d *expand.ExpandedDevice) []SiteExtent {
	byPrefix := make(map[string]*SiteExtent)
	for _, name := range d.Graph.BelNames() {
		site, err := naming.Parse(name)
		if err != nil {
			continue
		}
		e, ok := byPrefix[site.Prefix]
		if !ok {
			e = &SiteExtent{Prefix: site.Prefix}
			byPrefix[site.Prefix] = e
		}
		e.Count++
		e.Cols = max(e.Cols, site.X+1)
		e.Rows = max(e.Rows, site.Y+1)
	}

	extents := make([]SiteExtent, 0, len(byPrefix))
	for _, e := range byPrefix {
		extents = append(extents, *e)
	}
	sort.Slice(extents, func(i, j int) bool { return extents[i].Prefix < extents[j].Prefix })
	return extents
}
