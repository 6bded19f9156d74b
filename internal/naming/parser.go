package naming

import (
	"fmt"
	"regexp"
	"strconv"
)

// siteRegex matches PREFIX_X<x>Y<y>; the prefix is matched lazily so that
// prefixes containing underscores (INT_BRAM_BRK) stay whole.
var siteRegex = regexp.MustCompile(`^([A-Z][A-Z0-9_]*?)_X(\d+)Y(\d+)$`)

// SiteName is the structured form of a site-style name.
type SiteName struct {
	Prefix string
	X, Y   int
}

// String formats the site back into its canonical name.
func (s SiteName) String() string {
	return Site(s.Prefix, s.X, s.Y)
}

// Parse splits a site-style name into prefix and coordinates.
func Parse(name string) (SiteName, error) {
	if name == "" {
		return SiteName{}, fmt.Errorf("name cannot be empty")
	}
	m := siteRegex.FindStringSubmatch(name)
	if m == nil {
		return SiteName{}, fmt.Errorf("invalid site name format: %q", name)
	}
	x, err := strconv.Atoi(m[2])
	if err != nil {
		return SiteName{}, fmt.Errorf("invalid x coordinate in %q: %w", name, err)
	}
	y, err := strconv.Atoi(m[3])
	if err != nil {
		return SiteName{}, fmt.Errorf("invalid y coordinate in %q: %w", name, err)
	}
	return SiteName{Prefix: m[1], X: x, Y: y}, nil
}
