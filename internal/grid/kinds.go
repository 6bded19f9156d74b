package grid

import "fmt"

// ColumnKind is the functional kind of a fabric column.
type ColumnKind int

const (
	ColumnIO ColumnKind = iota
	ColumnCleXL
	ColumnCleXM
	ColumnCleClk
	ColumnBram
	ColumnDsp
	ColumnDspPlus
)

var columnKindNames = map[ColumnKind]string{
	ColumnIO:      "io",
	ColumnCleXL:   "clexl",
	ColumnCleXM:   "clexm",
	ColumnCleClk:  "cleclk",
	ColumnBram:    "bram",
	ColumnDsp:     "dsp",
	ColumnDspPlus: "dspplus",
}

// String returns the device-file spelling of the kind.
func (k ColumnKind) String() string {
	if name, ok := columnKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ColumnKind(%d)", int(k))
}

// IsLogic reports whether the column carries logic slices.
func (k ColumnKind) IsLogic() bool {
	return k == ColumnCleXL || k == ColumnCleXM || k == ColumnCleClk
}

// IsMacro reports whether the column is a block-RAM or DSP column, which
// sit behind an interface tile.
func (k ColumnKind) IsMacro() bool {
	return k == ColumnBram || k == ColumnDsp || k == ColumnDspPlus
}

// ParseColumnKind converts the device-file spelling into a ColumnKind.
func ParseColumnKind(s string) (ColumnKind, error) {
	for k, name := range columnKindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown column kind %q", s)
}

// ColumnIOKind says which of the two top (or bottom) IO rows carry IO in a
// column.
type ColumnIOKind int

const (
	ColumnIONone ColumnIOKind = iota
	ColumnIOOuter
	ColumnIOInner
	ColumnIOBoth
)

var columnIOKindNames = map[ColumnIOKind]string{
	ColumnIONone:  "none",
	ColumnIOOuter: "outer",
	ColumnIOInner: "inner",
	ColumnIOBoth:  "both",
}

func (k ColumnIOKind) String() string {
	if name, ok := columnIOKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ColumnIOKind(%d)", int(k))
}

// HasOuter reports whether the outer IO row is populated.
func (k ColumnIOKind) HasOuter() bool {
	return k == ColumnIOOuter || k == ColumnIOBoth
}

// HasInner reports whether the inner IO row is populated.
func (k ColumnIOKind) HasInner() bool {
	return k == ColumnIOInner || k == ColumnIOBoth
}

// ParseColumnIOKind converts the device-file spelling into a ColumnIOKind.
// The empty string means none.
func ParseColumnIOKind(s string) (ColumnIOKind, error) {
	if s == "" {
		return ColumnIONone, nil
	}
	for k, name := range columnIOKindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown column io kind %q", s)
}

// GtKind is the transceiver arrangement of a die.
type GtKind int

const (
	GtNone GtKind = iota
	GtSingle
	GtDouble
	GtQuad
)

var gtKindNames = map[GtKind]string{
	GtNone:   "none",
	GtSingle: "single",
	GtDouble: "double",
	GtQuad:   "quad",
}

func (k GtKind) String() string {
	if name, ok := gtKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("GtKind(%d)", int(k))
}

// ParseGtKind converts the device-file spelling into a GtKind.
func ParseGtKind(s string) (GtKind, error) {
	for k, name := range gtKindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown gt kind %q", s)
}

// Dir is one of the four sides of a tile or of the die.
type Dir int

const (
	DirW Dir = iota
	DirE
	DirS
	DirN
)

// Name returns the name of the side.
func (d Dir) Name() string {
	switch d {
	case DirW:
		return "W"
	case DirE:
		return "E"
	case DirS:
		return "S"
	case DirN:
		return "N"
	default:
		panic("invalid dir")
	}
}

// Letter returns the vendor edge letter used in tile names: L, R, B or T.
func (d Dir) Letter() string {
	switch d {
	case DirW:
		return "L"
	case DirE:
		return "R"
	case DirS:
		return "B"
	case DirN:
		return "T"
	default:
		panic("invalid dir")
	}
}

// ParseSide accepts "left"/"right" (and the W/E spellings) for parts that
// live on a vertical edge.
func ParseSide(s string) (Dir, error) {
	switch s {
	case "left", "W", "w":
		return DirW, nil
	case "right", "E", "e":
		return DirE, nil
	default:
		return 0, fmt.Errorf("unknown side %q, expected 'left' or 'right'", s)
	}
}
