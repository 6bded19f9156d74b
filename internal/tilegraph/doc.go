// Package tilegraph provides the in-memory tile graph produced by the
// expansion engine.
//
// The graph is a dense column-major array of tiles, one per (column, row)
// coordinate. Each tile owns an ordered list of node instances, up to four
// terminations (one per side), and a clock root. The clock root is a plain
// coordinate value that identifies the HCLK divider governing the tile; it
// is a lookup key, never a reference.
//
// A node that spans several tiles (an MCB strip, a block RAM) is owned by
// its anchor tile and lists every contributing tile in Node.Tiles.
//
// The graph is not safe for concurrent mutation. It is built by exactly one
// goroutine and is read-only once handed out.
package tilegraph
