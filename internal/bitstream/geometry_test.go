package bitstream

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/specialistvlad/tilegrid/internal/grid"
)

func newGrid(regions int, kinds ...grid.ColumnKind) *grid.Grid {
	g := &grid.Grid{
		Rows:        make([]grid.Row, regions*grid.RowsPerRegion),
		RowBioOuter: 0,
		RowBioInner: 1,
	}
	h := grid.RowID(len(g.Rows))
	g.RowTioInner, g.RowTioOuter = h-2, h-1
	for _, k := range kinds {
		g.Columns = append(g.Columns, grid.Column{Kind: k})
	}
	return g
}

var _ = Describe("Geometry", func() {
	Describe("frame count", func() {
		It("should emit 255 frames for a three-column io, clexl, bram grid of three regions", func() {
			geo := NewGeometry(newGrid(3, grid.ColumnIO, grid.ColumnCleXL, grid.ColumnBram))

			Expect(geo.Frames).To(HaveLen(3 * (30 + 30 + 25)))
			Expect(geo.Frames).To(HaveLen(255))
			Expect(geo.Regions).To(Equal(3))
			Expect(geo.BramCols).To(Equal(1))
		})

		It("should emit 345 frames for a four-column io, clexl, bram, io grid of three regions", func() {
			g := newGrid(3, grid.ColumnIO, grid.ColumnCleXL, grid.ColumnBram, grid.ColumnIO)
			geo := NewGeometry(g)

			sum := 0
			for _, c := range g.Columns {
				sum += MinorCount(c.Kind)
			}
			Expect(geo.Frames).To(HaveLen(g.Regions() * sum))
			Expect(geo.Frames).To(HaveLen(345))
		})

		It("should count every column kind", func() {
			geo := NewGeometry(newGrid(1,
				grid.ColumnIO, grid.ColumnCleXL, grid.ColumnCleXM, grid.ColumnCleClk,
				grid.ColumnBram, grid.ColumnDsp, grid.ColumnDspPlus))

			Expect(geo.ColumnMinors).To(Equal([]int{30, 30, 30, 31, 25, 24, 24}))
			Expect(geo.FramesPerRegion()).To(Equal(194))
		})
	})

	Describe("ordering", func() {
		var geo Geometry

		BeforeEach(func() {
			geo = NewGeometry(newGrid(3, grid.ColumnIO, grid.ColumnCleXL, grid.ColumnBram))
		})

		It("should be region-major, then column, then minor", func() {
			Expect(geo.Frames[0]).To(Equal(FrameDescriptor{Region: 0, Column: 0, Minor: 0}))
			Expect(geo.Frames[29]).To(Equal(FrameDescriptor{Region: 0, Column: 0, Minor: 29}))
			Expect(geo.Frames[30]).To(Equal(FrameDescriptor{Region: 0, Column: 1, Minor: 0}))
			Expect(geo.Frames[84]).To(Equal(FrameDescriptor{Region: 0, Column: 2, Minor: 24}))
			Expect(geo.Frames[85]).To(Equal(FrameDescriptor{Region: 1, Column: 0, Minor: 0}))
			Expect(geo.Frames[254]).To(Equal(FrameDescriptor{Region: 2, Column: 2, Minor: 24}))
		})

		It("should be reproducible", func() {
			again := NewGeometry(newGrid(3, grid.ColumnIO, grid.ColumnCleXL, grid.ColumnBram))
			Expect(again).To(Equal(geo))
		})

		It("should locate every descriptor by index", func() {
			for i, d := range geo.Frames {
				idx, ok := geo.Index(d)
				Expect(ok).To(BeTrue())
				Expect(idx).To(Equal(i))
			}
		})

		It("should reject descriptors outside the die", func() {
			_, ok := geo.Index(FrameDescriptor{Region: 3})
			Expect(ok).To(BeFalse())
			_, ok = geo.Index(FrameDescriptor{Column: 2, Minor: 25})
			Expect(ok).To(BeFalse())
		})

		It("should list the frames of one column", func() {
			frames := geo.ColumnFrames(2)
			Expect(frames).To(HaveLen(3 * 25))
			Expect(frames[25]).To(Equal(FrameDescriptor{Region: 1, Column: 2, Minor: 0}))
		})
	})

	Describe("frame address", func() {
		It("should pack region, column and minor", func() {
			d := FrameDescriptor{Region: 2, Column: 5, Minor: 17}
			Expect(d.Address()).To(Equal(uint32(0x02050011)))
			Expect(d.String()).To(Equal("R2.C5.M17"))
		})
	})

	Describe("frame lengths", func() {
		It("should use 1040-bit frames", func() {
			geo := NewGeometry(newGrid(1, grid.ColumnIO))
			Expect(geo.FrameLen).To(Equal(1040))
		})

		It("should size the io frame by io-capable rows", func() {
			g := newGrid(1, grid.ColumnIO, grid.ColumnCleXL, grid.ColumnIO)
			g.Rows[5].LIO = true
			g.Rows[6].RIO = true

			Expect(NewGeometry(g).IOFrameLen).To(Equal(128 * 6))
		})
	})

	It("should panic on an unknown column kind", func() {
		Expect(func() { MinorCount(grid.ColumnKind(99)) }).To(Panic())
	})
})
