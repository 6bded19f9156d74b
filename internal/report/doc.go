// Package report renders expanded devices for people and for other tools:
// a per-kind summary table and a YAML export of the tile graph, the bonded
// pads and the frame geometry.
package report
