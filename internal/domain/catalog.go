package domain

import (
	"fmt"
	"sort"
)

// Catalog is the read-only destination lookup shared by all planning
// requests. It is built once from validated records and never mutated
// afterwards, so concurrent requests need no locking.
type Catalog struct {
	byName        map[string]Destination
	names         []string
	maxTravelCost float64
}

// NewCatalog validates every record and indexes it by name.
// Duplicate names and invalid records are load-time errors.
func NewCatalog(records []Destination) (*Catalog, error) {
	byName := make(map[string]Destination, len(records))
	names := make([]string, 0, len(records))
	maxTravel := 0.0

	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("build catalog: %w", err)
		}
		if _, ok := byName[rec.Name]; ok {
			return nil, fmt.Errorf("build catalog: duplicate destination %q", rec.Name)
		}
		byName[rec.Name] = rec
		names = append(names, rec.Name)
		if rec.TravelCost > maxTravel {
			maxTravel = rec.TravelCost
		}
	}

	sort.Strings(names)

	return &Catalog{
		byName:        byName,
		names:         names,
		maxTravelCost: maxTravel,
	}, nil
}

// Lookup returns the record for a destination name.
func (c *Catalog) Lookup(name string) (Destination, bool) {
	d, ok := c.byName[name]
	return d, ok
}

// Names returns all destination names in ascending order.
// The returned slice is a copy; callers may reorder it freely.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len returns the number of destinations in the catalog.
func (c *Catalog) Len() int { return len(c.names) }

// MaxTravelCost is the largest one-way travel cost in the catalog,
// used to reserve a worst-case return leg before selection.
func (c *Catalog) MaxTravelCost() float64 { return c.maxTravelCost }

// Interests returns the distinct interest vocabulary across the catalog,
// sorted ascending.
func (c *Catalog) Interests() []string {
	seen := map[string]struct{}{}
	for _, name := range c.names {
		for _, tag := range c.byName[name].Interests {
			seen[tag] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for tag := range seen {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}
