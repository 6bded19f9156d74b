// Package catalog provides the node and naming catalog the expansion engine
// resolves its identifiers against.
//
// The catalog maps the string names used by the engine (e.g. "INT.BRAM" or
// "IOI.L.BRK") to dense numeric identifiers. The real catalog is produced
// by an external database compiler; Builtin returns one holding exactly the
// names the engine references, and Validate performs the parity check
// between an externally supplied catalog and the engine.
//
// A failed lookup is a schema mismatch between the engine and the catalog,
// which no caller can recover from, so lookups panic.
package catalog
