// Package bitstream describes the configuration-memory layout of a die: the
// ordered list of frames a bitstream codec reads and writes.
package bitstream

import (
	"fmt"

	"github.com/specialistvlad/tilegrid/internal/grid"
)

const (
	// FrameLen is the length of one frame in bits: 64 bits per row of a
	// region plus 16 bits for the HCLK row.
	FrameLen = grid.RowsPerRegion*64 + 16
	// IOFrameBitsPerTile is the number of IO frame bits per IO-capable row.
	IOFrameBitsPerTile = 128
)

// MinorCount returns the number of frames a column of the given kind
// contributes to every region.
func MinorCount(kind grid.ColumnKind) int {
	switch kind {
	case grid.ColumnIO, grid.ColumnCleXL, grid.ColumnCleXM:
		return 30
	case grid.ColumnCleClk:
		return 31
	case grid.ColumnBram:
		return 25
	case grid.ColumnDsp, grid.ColumnDspPlus:
		return 24
	default:
		panic(fmt.Sprintf("bitstream: no minor count for column kind %s", kind))
	}
}

// FrameDescriptor addresses one frame.
type FrameDescriptor struct {
	Region grid.RegID
	Column grid.ColID
	Minor  int
}

// Address packs the descriptor into a frame address word.
func (d FrameDescriptor) Address() uint32 {
	return uint32(d.Region)<<24 | uint32(d.Column)<<16 | uint32(d.Minor)
}

func (d FrameDescriptor) String() string {
	return fmt.Sprintf("R%d.C%d.M%d", d.Region, d.Column, d.Minor)
}

// Geometry is the full frame layout of a die.
type Geometry struct {
	FrameLen   int
	IOFrameLen int
	// Frames is ordered region-major, then by column, then by minor.
	Frames []FrameDescriptor
	// ColumnMinors holds MinorCount of every column, in column order.
	ColumnMinors []int
	BramCols     int
	Regions      int
}

// NewGeometry enumerates the frames of g.
func NewGeometry(g *grid.Grid) Geometry {
	geo := Geometry{
		FrameLen: FrameLen,
		Regions:  g.Regions(),
	}

	perRegion := 0
	for _, col := range g.Columns {
		n := MinorCount(col.Kind)
		geo.ColumnMinors = append(geo.ColumnMinors, n)
		perRegion += n
		if col.Kind == grid.ColumnBram {
			geo.BramCols++
		}
	}

	geo.Frames = make([]FrameDescriptor, 0, geo.Regions*perRegion)
	for reg := 0; reg < geo.Regions; reg++ {
		for col, n := range geo.ColumnMinors {
			for minor := 0; minor < n; minor++ {
				geo.Frames = append(geo.Frames, FrameDescriptor{
					Region: grid.RegID(reg),
					Column: grid.ColID(col),
					Minor:  minor,
				})
			}
		}
	}

	ioRows := 0
	for row, r := range g.Rows {
		if r.LIO || r.RIO || g.IsIORow(grid.RowID(row)) {
			ioRows++
		}
	}
	geo.IOFrameLen = IOFrameBitsPerTile * ioRows

	return geo
}

// FramesPerRegion returns the number of frames in one region.
func (geo Geometry) FramesPerRegion() int {
	total := 0
	for _, n := range geo.ColumnMinors {
		total += n
	}
	return total
}

// Index returns the position of d in Frames.
func (geo Geometry) Index(d FrameDescriptor) (int, bool) {
	if d.Region < 0 || int(d.Region) >= geo.Regions || d.Column < 0 || int(d.Column) >= len(geo.ColumnMinors) {
		return 0, false
	}
	if d.Minor < 0 || d.Minor >= geo.ColumnMinors[d.Column] {
		return 0, false
	}
	idx := int(d.Region) * geo.FramesPerRegion()
	for _, n := range geo.ColumnMinors[:d.Column] {
		idx += n
	}
	return idx + d.Minor, true
}

// ColumnFrames returns every frame of column col, region by region.
func (geo Geometry) ColumnFrames(col grid.ColID) []FrameDescriptor {
	var frames []FrameDescriptor
	for _, d := range geo.Frames {
		if d.Column == col {
			frames = append(frames, d)
		}
	}
	return frames
}
