// Package testutil holds die fixtures shared by the package tests. The
// fixtures are small enough to reason about by hand yet exercise every
// irregular feature of the expansion.
package testutil
