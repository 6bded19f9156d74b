package expand

import (
	"github.com/specialistvlad/tilegrid/internal/catalog"
	"github.com/specialistvlad/tilegrid/internal/grid"
)

// rule pairs a predicate with the variant it selects. Rule lists are
// evaluated top to bottom and the first match wins.
type rule[C, V any] struct {
	when func(C) bool
	then V
}

func pick[C, V any](rules []rule[C, V], c C) (V, bool) {
	for _, r := range rules {
		if r.when(c) {
			return r.then, true
		}
	}
	var zero V
	return zero, false
}

func always[C any](C) bool { return true }

// site is the position a tile rule is evaluated at.
type site struct {
	e   *expander
	col grid.ColID
	row grid.RowID
}

func (s site) kind() grid.ColumnKind {
	return s.e.g.Kind(s.col)
}

// split is the position of a ring clock-distribution tap relative to the
// centre and to the split boundaries of its edge.
type split struct {
	pos, centre, lo, hi int
}

// hclkIORules choose the ring clock-distribution variant: outer, split or
// inner, mirrored around the centre.
var hclkIORules = []rule[split, string]{
	{func(s split) bool { return s.pos < s.centre && s.pos < s.lo }, catalog.HclkIOOuter},
	{func(s split) bool { return s.pos < s.centre && s.pos == s.lo }, catalog.HclkIOSplit},
	{func(s split) bool { return s.pos < s.centre && s.pos > s.lo }, catalog.HclkIOInner},
	{func(s split) bool { return s.pos >= s.centre && s.pos < s.hi }, catalog.HclkIOInner},
	{func(s split) bool { return s.pos >= s.centre && s.pos == s.hi }, catalog.HclkIOSplit},
	{func(s split) bool { return s.pos >= s.centre && s.pos > s.hi }, catalog.HclkIOOuter},
}
