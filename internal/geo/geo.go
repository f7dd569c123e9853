// Package geo provides the distance and bounding-box math used by
// subcontractor discovery. All coordinates are degrees; distances are
// kilometers.
package geo

import "math"

const earthRadiusKm = 6371.0

// Point is a geographic coordinate pair in degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// BoundingBox is a latitude/longitude rectangle used as a query prefilter.
// It over-covers the true search circle and must always be followed by an
// exact HaversineKm cut.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

// HaversineKm returns the great-circle distance between two points.
// Non-numeric input propagates as NaN; callers validate coordinates first.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLng := (lng2 - lng1) * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// ClampLng normalizes a longitude into (-180, 180].
func ClampLng(deg float64) float64 {
	for deg > 180 {
		deg -= 360
	}
	for deg <= -180 {
		deg += 360
	}
	return deg
}

// BBoxForRadiusKm approximates the bounding box that covers a circle of
// radiusKm around (lat, lng). One degree of latitude spans 110.574 km; one
// degree of longitude spans 111.32*cos(lat) km. The cosine is floored near
// the poles so the longitude delta degrades to the latitude scale instead
// of blowing up.
func BBoxForRadiusKm(lat, lng, radiusKm float64) BoundingBox {
	latDelta := radiusKm / 110.574

	cosLat := math.Cos(lat * math.Pi / 180.0)
	if cosLat < 0.0001 {
		cosLat = 1
	}
	lngDelta := radiusKm / (111.32 * cosLat)

	return BoundingBox{
		MinLat: lat - latDelta,
		MaxLat: lat + latDelta,
		MinLng: ClampLng(lng - lngDelta),
		MaxLng: ClampLng(lng + lngDelta),
	}
}

// Contains reports whether the point lies inside the box. Boxes whose
// longitude range wrapped across the antimeridian are handled by treating
// MinLng > MaxLng as a wrapped interval.
func (b BoundingBox) Contains(lat, lng float64) bool {
	if lat < b.MinLat || lat > b.MaxLat {
		return false
	}
	lng = ClampLng(lng)
	if b.MinLng <= b.MaxLng {
		return lng >= b.MinLng && lng <= b.MaxLng
	}
	return lng >= b.MinLng || lng <= b.MaxLng
}
