package services

import (
	"math"

	"trip-itinerary-service/internal/domain"
)

// Haversine returns the great-circle distance between two coordinate
// pairs in kilometers. Planar distance over latitude/longitude is wrong
// for geographic routing and must not be substituted here.
func Haversine(a, b domain.Coordinates) float64 {
	lat1 := a.Lat * math.Pi / 180
	lon1 := a.Lon * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	lon2 := b.Lon * math.Pi / 180

	dLat := lat2 - lat1
	dLon := lon2 - lon1

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKM * c
}

// pairKey identifies an unordered destination pair.
type pairKey struct {
	a, b string
}

func newPairKey(a, b string) pairKey {
	if b < a {
		a, b = b, a
	}
	return pairKey{a: a, b: b}
}

// distanceCache memoizes pairwise great-circle distances for one planning
// request. It is created per request and discarded with it; distances are
// never cached process-wide.
type distanceCache struct {
	catalog *domain.Catalog
	dist    map[pairKey]float64
}

func newDistanceCache(catalog *domain.Catalog) *distanceCache {
	return &distanceCache{
		catalog: catalog,
		dist:    make(map[pairKey]float64),
	}
}

// between returns the distance in km between two catalog destinations.
// Both names must exist in the catalog; the planning pipeline only feeds
// it identifiers that were validated at selection time.
func (c *distanceCache) between(a, b string) float64 {
	if a == b {
		return 0
	}

	key := newPairKey(a, b)
	if d, ok := c.dist[key]; ok {
		return d
	}

	da, _ := c.catalog.Lookup(a)
	db, _ := c.catalog.Lookup(b)
	d := Haversine(da.Coordinates, db.Coordinates)
	c.dist[key] = d
	return d
}

// routeDistance sums the leg distances over a full route.
func (c *distanceCache) routeDistance(route []string) float64 {
	total := 0.0
	for i := 0; i < len(route)-1; i++ {
		total += c.between(route[i], route[i+1])
	}
	return total
}
