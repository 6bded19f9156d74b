// Package naming holds the vendor name formatting used by the expansion
// engine, as pure functions of a tile kind and its lookup coordinates.
//
// The names produced here are a cross-validation contract with the vendor
// tools: an independent parser of vendor dumps must arrive at the very same
// strings. Keeping the formatting free of any graph state lets it be tested
// against a corpus of known names on its own.
//
// Parse performs the reverse operation for site-style names
// ("PREFIX_X<x>Y<y>").
package naming
