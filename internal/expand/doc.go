// Package expand implements the grid expansion engine: it lowers an
// immutable grid.Grid into a tilegraph.Graph, the list of bonded pads, and
// the bitstream frame geometry.
//
// # Phases
//
// Expansion runs a fixed sequence of fill phases over one private builder
// context:
//
//  1. Coordinate tables (BuildCoords), a pure function of the column and
//     row sequences.
//  2. The interconnect backbone: one interconnect node, with its tie cell,
//     on every tile, plus interface nodes on block RAM and DSP columns.
//  3. The IO ring: IO logic and pads, corners, ring terminations, clock
//     buffer taps and the ring clock-distribution taps.
//  4. Heterogeneous blocks: memory controller strips, PCI calibration logic,
//     the clock spine and the clock management tiles.
//  5. Transceiver holes: footprints are cleared down to their interconnect
//     and terminated on every side.
//  6. Uniform columns: block RAM, DSP and logic, skipping holes and disabled
//     regions.
//  7. HCLK dividers and clock roots.
//
// The frame geometry is computed independently by package bitstream.
//
// Hole rectangles are a pure function of the grid and are known from the
// start, so the IO ring leaves transceiver footprints alone.
//
// # Variant selection
//
// Wherever a tile variant depends on its proximity to named boundaries the
// choice is an ordered list of (predicate, variant) rules, evaluated top to
// bottom. See interconnectRules, verticalIORules, horizontalIORules,
// hclkIORules and hclkRules.
//
// # Failure
//
// The engine does not return errors. A grid that fails grid.Validate, a
// catalog missing a referenced name, or an arithmetic defect in a coordinate
// panics. The device description is a reviewed artifact, and a partially
// built graph is of no use downstream. Callers expanding untrusted input
// should validate the grid and the catalog first.
package expand
