package naming

import (
	"fmt"

	"github.com/specialistvlad/tilegrid/internal/grid"
)

// Site formats the canonical PREFIX_X<x>Y<y> name.
func Site(prefix string, x, y int) string {
	if x < 0 || y < 0 {
		panic(fmt.Sprintf("naming: negative coordinate in %s_X%dY%d", prefix, x, y))
	}
	return fmt.Sprintf("%s_X%dY%d", prefix, x, y)
}

func brkPrefix(prefix string, brk bool) string {
	if brk {
		return prefix + "_BRK"
	}
	return prefix
}

// Int names a plain interconnect tile.
func Int(brk bool, x, y int) string {
	return Site(brkPrefix("INT", brk), x, y)
}

// IntBram names the interconnect of a block-RAM or DSP column.
func IntBram(brk bool, x, y int) string {
	return Site(brkPrefix("INT_BRAM", brk), x, y)
}

// IntIOI names the interconnect next to IO logic.
func IntIOI(x, y int) string {
	return Site("IOI_INT", x, y)
}

// Intf names the interface bridging interconnect to a macro column.
func Intf(x, y int) string {
	return Site("INT_INTERFACE", x, y)
}

// IntfIOI names the interface tile of an IO column position without IO.
func IntfIOI(x, y int) string {
	return Site("INT_INTERFACE_IOI", x, y)
}

// Tieoff names the tie cell of an interconnect tile.
func Tieoff(x, y int) string {
	return Site("TIEOFF", x, y)
}

// IOI names IO logic on an edge, e.g. LIOI_X1Y5 or TIOI_X4Y63.
func IOI(edge grid.Dir, brk bool, x, y int) string {
	return Site(brkPrefix(edge.Letter()+"IOI", brk), x, y)
}

// IOB names the pad tile on an edge.
func IOB(edge grid.Dir, x, y int) string {
	return Site(edge.Letter()+"IOB", x, y)
}

// Pad names a bonded pad by its global index.
func Pad(n int) string {
	return fmt.Sprintf("PAD%d", n)
}

// Corner names a corner macro tile: LL, UL, LR or UR.
func Corner(corner string, x, y int) string {
	return Site(corner, x, y)
}

// Term names a ring termination on the given edge.
func Term(edge grid.Dir, x, y int) string {
	return Site(edge.Letter()+"_TERM_INT", x, y)
}

// GtTerm names a termination punched at a transceiver hole boundary.
// dir is the side of the termination tile that faces the hole.
func GtTerm(dir grid.Dir, x, y int) string {
	return Site("GT_TERM_"+dir.Name(), x, y)
}

// ClkBuf names the clock-buffer tap of an edge.
func ClkBuf(edge grid.Dir, x, y int) string {
	return Site(edge.Letter()+"_CLKBUF", x, y)
}

// HclkIO names a clock-distribution node of the IO ring.
func HclkIO(edge grid.Dir, x, y int) string {
	return Site(edge.Letter()+"HCLK_IOI", x, y)
}

// Mcb names the main tile of an MCB strip.
func Mcb(side grid.Dir, x, y int) string {
	return Site("MCB_"+side.Letter(), x, y)
}

// McbMui names the j-th MUI tile of an MCB strip.
func McbMui(side grid.Dir, j, x, y int) string {
	return Site(fmt.Sprintf("MCB_%s_MUI%d", side.Letter(), j), x, y)
}

// PciLogic names the PCI calibration tile on a vertical edge.
func PciLogic(side grid.Dir, x, y int) string {
	return Site("REG_"+side.Letter(), x, y)
}

// Clkc names the centre of the clock spine.
func Clkc(x, y int) string {
	return Site("CLKC", x, y)
}

// RegH names a region-buffer tile on the clock row.
func RegH(side grid.Dir, x, y int) string {
	return Site("REGH_"+side.Name(), x, y)
}

// Cmt names a clock-management tile.
func Cmt(kind grid.CmtKind, x, y int) string {
	return Site("CMT_"+kind.String(), x, y)
}

// Gtp names a transceiver macro tile; top selects the top-edge variant.
func Gtp(top bool, x, y int) string {
	if top {
		return Site("GTPDUAL_T", x, y)
	}
	return Site("GTPDUAL_B", x, y)
}

// BramSite names a block-RAM macro tile.
func BramSite(x, y int) string {
	return Site("BRAMSITE2", x, y)
}

// MaccSite names a DSP macro tile.
func MaccSite(x, y int) string {
	return Site("MACCSITE2", x, y)
}

// Cle names a logic tile; memory selects the CLEXM variant.
func Cle(memory bool, x, y int) string {
	if memory {
		return Site("CLEXM", x, y)
	}
	return Site("CLEXL", x, y)
}

// Hclk names an HCLK divider tile.
func Hclk(x, y int) string {
	return Site("HCLK", x, y)
}
