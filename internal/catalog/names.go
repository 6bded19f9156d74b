package catalog

import "github.com/specialistvlad/tilegrid/internal/grid"

// Node kinds referenced by the engine.
const (
	NodeInt      = "INT"
	NodeIntIOI   = "INT.IOI"
	NodeIntBram  = "INT.BRAM"
	NodeIntf     = "INTF"
	NodeIOI      = "IOI"
	NodeIOB      = "IOB"
	NodeCornerLL = "CORNER.LL"
	NodeCornerUL = "CORNER.UL"
	NodeCornerLR = "CORNER.LR"
	NodeCornerUR = "CORNER.UR"
	NodeTermW    = "TERM.W"
	NodeTermE    = "TERM.E"
	NodeTermS    = "TERM.S"
	NodeTermN    = "TERM.N"
	NodeTermGT   = "TERM.GT"
	NodeClkBufLR = "CLKBUF.LR"
	NodeClkBufBT = "CLKBUF.BT"
	NodeMcb      = "MCB"
	NodePciLogic = "PCILOGICSE"
	NodeClkc     = "CLKC"
	NodeRegH     = "REGH"
	NodeCmtPll   = "CMT.PLL"
	NodeCmtDcm   = "CMT.DCM"
	NodeGtp      = "GTP"
	NodeBram     = "BRAM"
	NodeDsp      = "DSP"
	NodeCleXL    = "CLEXL"
	NodeCleXM    = "CLEXM"
	NodeHclk     = "HCLK"
)

// Clock-distribution variants on the IO ring.
const (
	HclkIOOuter = "OUTER"
	HclkIOSplit = "SPLIT"
	HclkIOInner = "INNER"
)

// Namings referenced by the engine that do not depend on an edge.
const (
	NamingInt         = "INT"
	NamingIntBrk      = "INT.BRK"
	NamingIntIOI      = "INT.IOI"
	NamingIntIOIBrk   = "INT.IOI.BRK"
	NamingIntBram     = "INT.BRAM"
	NamingIntBramBrk  = "INT.BRAM.BRK"
	NamingIntGT       = "INT.GT"
	NamingIntfBram    = "INTF.BRAM"
	NamingIntfDsp     = "INTF.DSP"
	NamingIntfIOI     = "INTF.IOI"
	NamingCornerLL    = "CORNER.LL"
	NamingCornerUL    = "CORNER.UL"
	NamingCornerLR    = "CORNER.LR"
	NamingCornerUR    = "CORNER.UR"
	NamingTermNGT     = "TERM.N.GT"
	NamingTermNGTBrk  = "TERM.N.GT.BRK"
	NamingTermSGT     = "TERM.S.GT"
	NamingTermSGTBrk  = "TERM.S.GT.BRK"
	NamingTermEGT     = "TERM.E.GT"
	NamingTermWGT     = "TERM.W.GT"
	NamingClkc        = "CLKC"
	NamingCmtPll      = "CMT.PLL"
	NamingCmtDcm      = "CMT.DCM"
	NamingGtp         = "GTP"
	NamingBram        = "BRAM"
	NamingDsp         = "DSP"
	NamingDspPlus     = "DSP.PLUS"
	NamingCleXL       = "CLEXL"
	NamingCleXM       = "CLEXM"
	NamingHclk        = "HCLK"
	NamingHclkIOI     = "HCLK.IOI"
	NamingHclkBram    = "HCLK.BRAM"
	NamingHclkDsp     = "HCLK.DSP"
	NamingHclkGTW     = "HCLK.GT.W"
	NamingHclkGTE     = "HCLK.GT.E"
	NamingHclkFold    = "HCLK.FOLD"
)

var (
	allEdges     = []grid.Dir{grid.DirW, grid.DirE, grid.DirS, grid.DirN}
	verticalEdge = []grid.Dir{grid.DirW, grid.DirE}
	hclkVariants = []string{HclkIOOuter, HclkIOSplit, HclkIOInner}
)

// IOINaming returns the naming of an IO logic node on the given edge.
func IOINaming(edge grid.Dir, brk bool) string {
	if brk {
		return "IOI." + edge.Letter() + ".BRK"
	}
	return "IOI." + edge.Letter()
}

// IOBNaming returns the naming of an IO pad node on the given edge.
func IOBNaming(edge grid.Dir) string {
	return "IOB." + edge.Letter()
}

// TermNaming returns the naming of a ring termination facing dir.
func TermNaming(dir grid.Dir) string {
	return "TERM." + dir.Name()
}

// ClkBufNaming returns the naming of a clock-buffer tap on the given edge.
func ClkBufNaming(edge grid.Dir) string {
	return "CLKBUF." + edge.Letter()
}

// HclkIONode returns the node kind of a ring clock-distribution variant.
func HclkIONode(variant string) string {
	return "HCLK.IO." + variant
}

// HclkIONaming returns the naming of a ring clock-distribution variant.
func HclkIONaming(variant string, edge grid.Dir) string {
	return "HCLK.IO." + variant + "." + edge.Letter()
}

// McbNaming returns the naming of an MCB strip on a vertical edge.
func McbNaming(side grid.Dir) string {
	return "MCB." + side.Letter()
}

// PciLogicNaming returns the naming of the PCI calibration logic on a
// vertical edge.
func PciLogicNaming(side grid.Dir) string {
	return "PCILOGICSE." + side.Letter()
}

// RegHNaming returns the naming of a region-buffer node on the west or east
// half of the clock row.
func RegHNaming(side grid.Dir) string {
	return "REGH." + side.Name()
}

// RequiredNodes lists every node kind the engine may reference.
func RequiredNodes() []string {
	nodes := []string{
		NodeInt, NodeIntIOI, NodeIntBram, NodeIntf, NodeIOI, NodeIOB,
		NodeCornerLL, NodeCornerUL, NodeCornerLR, NodeCornerUR,
		NodeTermW, NodeTermE, NodeTermS, NodeTermN, NodeTermGT,
		NodeClkBufLR, NodeClkBufBT, NodeMcb, NodePciLogic, NodeClkc, NodeRegH,
		NodeCmtPll, NodeCmtDcm, NodeGtp, NodeBram, NodeDsp, NodeCleXL, NodeCleXM,
		NodeHclk,
	}
	for _, v := range hclkVariants {
		nodes = append(nodes, HclkIONode(v))
	}
	return nodes
}

// RequiredNamings lists every naming the engine may reference.
func RequiredNamings() []string {
	namings := []string{
		NamingInt, NamingIntBrk, NamingIntIOI, NamingIntIOIBrk, NamingIntBram,
		NamingIntBramBrk, NamingIntGT, NamingIntfBram, NamingIntfDsp, NamingIntfIOI,
		NamingCornerLL, NamingCornerUL, NamingCornerLR, NamingCornerUR,
		NamingTermNGT, NamingTermNGTBrk, NamingTermSGT, NamingTermSGTBrk,
		NamingTermEGT, NamingTermWGT, NamingClkc, NamingCmtPll, NamingCmtDcm,
		NamingGtp, NamingBram, NamingDsp, NamingDspPlus, NamingCleXL, NamingCleXM,
		NamingHclk, NamingHclkIOI, NamingHclkBram, NamingHclkDsp, NamingHclkGTW,
		NamingHclkGTE, NamingHclkFold,
	}
	for _, edge := range allEdges {
		namings = append(namings,
			IOINaming(edge, false),
			IOINaming(edge, true),
			IOBNaming(edge),
			TermNaming(edge),
			ClkBufNaming(edge),
		)
		for _, v := range hclkVariants {
			namings = append(namings, HclkIONaming(v, edge))
		}
	}
	for _, side := range verticalEdge {
		namings = append(namings, McbNaming(side), PciLogicNaming(side), RegHNaming(side))
	}
	return namings
}

// InterconnectKinds lists the node kinds that count as a tile's
// interconnect.
func InterconnectKinds() []string {
	return []string{NodeInt, NodeIntIOI, NodeIntBram}
}
