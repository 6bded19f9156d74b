package grid

import (
	"fmt"
	"sort"
	"strings"
)

// DisabledKind identifies what a DisabledPart token excludes.
type DisabledKind int

const (
	DisabledGtp DisabledKind = iota
	DisabledMcb
	DisabledLogic
	DisabledBram
	DisabledDsp
)

var disabledKindNames = map[DisabledKind]string{
	DisabledGtp:   "gtp",
	DisabledMcb:   "mcb",
	DisabledLogic: "logic",
	DisabledBram:  "bram",
	DisabledDsp:   "dsp",
}

func (k DisabledKind) String() string {
	if name, ok := disabledKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("DisabledKind(%d)", int(k))
}

// ParseDisabledKind converts the device-file spelling into a DisabledKind.
func ParseDisabledKind(s string) (DisabledKind, error) {
	for k, name := range disabledKindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown disabled part kind %q", s)
}

// DisabledPart is an exclusion token. Only the fields relevant to Kind are
// set; the struct is comparable so it can key a set.
type DisabledPart struct {
	Kind  DisabledKind
	Side  Dir
	Index int
	Col   ColID
	Reg   RegID
}

// Gtp disables every transceiver of the die.
func Gtp() DisabledPart {
	return DisabledPart{Kind: DisabledGtp}
}

// McbPart disables MCB number index on the given side.
func McbPart(side Dir, index int) DisabledPart {
	return DisabledPart{Kind: DisabledMcb, Side: side, Index: index}
}

// LogicRegion disables the logic of one column inside one region.
func LogicRegion(col ColID, reg RegID) DisabledPart {
	return DisabledPart{Kind: DisabledLogic, Col: col, Reg: reg}
}

// BramRegion disables the block RAMs of one column inside one region.
func BramRegion(col ColID, reg RegID) DisabledPart {
	return DisabledPart{Kind: DisabledBram, Col: col, Reg: reg}
}

// DspRegion disables the DSPs of one column inside one region.
func DspRegion(col ColID, reg RegID) DisabledPart {
	return DisabledPart{Kind: DisabledDsp, Col: col, Reg: reg}
}

func (p DisabledPart) String() string {
	switch p.Kind {
	case DisabledGtp:
		return "gtp"
	case DisabledMcb:
		return fmt.Sprintf("mcb[%s,%d]", p.Side.Name(), p.Index)
	default:
		return fmt.Sprintf("%s[X%d,R%d]", p.Kind, p.Col, p.Reg)
	}
}

// DisabledParts is the set of parts absent on a particular die.
type DisabledParts map[DisabledPart]struct{}

// NewDisabledParts builds a set from the given tokens.
func NewDisabledParts(parts ...DisabledPart) DisabledParts {
	set := make(DisabledParts, len(parts))
	for _, p := range parts {
		set[p] = struct{}{}
	}
	return set
}

// Has reports whether p is disabled. A nil set disables nothing.
func (d DisabledParts) Has(p DisabledPart) bool {
	_, ok := d[p]
	return ok
}

// String lists the tokens in a stable order.
func (d DisabledParts) String() string {
	names := make([]string, 0, len(d))
	for p := range d {
		names = append(names, p.String())
	}
	sort.Strings(names)
	return "{" + strings.Join(names, " ") + "}"
}
