package domain

// Location is a point on the map.
type Location struct {
	Lat float64
	Lng float64
}

// GeoRegion is an axis-aligned box. Corners are taken as given: a region whose
// BottomLeft is not below-left of TopRight matches nothing.
type GeoRegion struct {
	TopRight   Location
	BottomLeft Location
}
