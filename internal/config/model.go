package config

import (
	"fmt"
	"sort"

	"github.com/specialistvlad/tilegrid/internal/catalog"
	"github.com/specialistvlad/tilegrid/internal/grid"
)

// Model is the unified, format-agnostic representation of everything the
// loader found: the devices to expand and an optional catalog override.
type Model struct {
	Devices []*Device
	// Catalog is nil when no file declared one; the builtin catalog applies.
	Catalog *Catalog
}

// Device is one die description together with the parts disabled on it.
type Device struct {
	Grid     *grid.Grid
	Disabled grid.DisabledParts
	// Source is the file the device was declared in.
	Source string
}

// Catalog is an externally supplied list of node kind and naming names.
type Catalog struct {
	Nodes   []string
	Namings []string
	Source  string
}

// Build turns the declaration into a catalog store and checks it against
// the names the engine requires.
func (c *Catalog) Build() (*catalog.Store, error) {
	store := catalog.New(c.Nodes, c.Namings)
	if err := store.Validate(); err != nil {
		return nil, fmt.Errorf("catalog declared in %s: %w", c.Source, err)
	}
	return store, nil
}

// Add appends a device, rejecting duplicate names.
func (m *Model) Add(d *Device) error {
	for _, existing := range m.Devices {
		if existing.Grid.Name == d.Grid.Name {
			return fmt.Errorf("device %q declared twice (%s and %s)", d.Grid.Name, existing.Source, d.Source)
		}
	}
	m.Devices = append(m.Devices, d)
	return nil
}

// Sort orders the devices by name so that runs are reproducible regardless
// of file discovery order.
func (m *Model) Sort() {
	sort.Slice(m.Devices, func(i, j int) bool {
		return m.Devices[i].Grid.Name < m.Devices[j].Grid.Name
	})
}

// Filter keeps only the named devices. An empty list keeps everything.
// Unknown names are reported as an error.
func (m *Model) Filter(names []string) error {
	if len(names) == 0 {
		return nil
	}
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	var kept []*Device
	for _, d := range m.Devices {
		if want[d.Grid.Name] {
			kept = append(kept, d)
			delete(want, d.Grid.Name)
		}
	}
	if len(want) > 0 {
		var missing []string
		for n := range want {
			missing = append(missing, n)
		}
		sort.Strings(missing)
		return fmt.Errorf("unknown devices: %v", missing)
	}
	m.Devices = kept
	return nil
}
