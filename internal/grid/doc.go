// Package grid defines the immutable device description consumed by the
// expansion engine: the ordered column and row descriptors, the named
// reference rows and columns, the irregular features (transceivers, memory
// controllers, clock folds) and the set of parts disabled on a given die.
//
// A Grid is constructed once, usually by a config.Loader, and is never
// mutated afterwards. Every value in this package is safe to share between
// concurrent expansions.
package grid
