package utils

import (
	"math"
	"testing"
)

// Office used across cases: Bangalore city center.
var office = Coordinate{Latitude: 12.9716, Longitude: 77.5946}

func TestCalculateHaversineDistance_SamePoint(t *testing.T) {
	d := CalculateHaversineDistance(office.Latitude, office.Longitude, office.Latitude, office.Longitude)
	if d != 0 {
		t.Errorf("distance between identical points = %v, want 0", d)
	}
}

func TestCalculateHaversineDistance_KnownDistance(t *testing.T) {
	// One degree of latitude is roughly 111.2 km.
	d := CalculateHaversineDistance(12.9716, 77.5946, 13.9716, 77.5946)
	if math.Abs(d-111195) > 500 {
		t.Errorf("one-degree latitude distance = %v, want ~111195m", d)
	}
}

func TestWithinRadius_Boundary(t *testing.T) {
	// Walk north until the point sits just past / just inside 200m.
	// 1m of latitude is ~1/111195 degrees.
	const meterInDegrees = 1.0 / 111195.0

	cases := []struct {
		name    string
		offsetM float64
		radius  float64
		want    bool
	}{
		{"inside", 50, 200, true},
		{"exactly at radius", 200, 200.5, true},
		{"just outside", 201, 200, false},
		{"far outside", 5000, 200, false},
	}

	for _, c := range cases {
		current := Coordinate{
			Latitude:  office.Latitude + c.offsetM*meterInDegrees,
			Longitude: office.Longitude,
		}
		got := WithinRadius(current, office, c.radius)
		if got != c.want {
			d := CalculateHaversineDistance(current.Latitude, current.Longitude, office.Latitude, office.Longitude)
			t.Errorf("%s: WithinRadius = %v (distance %.1fm, radius %.1fm), want %v", c.name, got, d, c.radius, c.want)
		}
	}
}

func TestWithinRadius_InclusiveAtExactRadius(t *testing.T) {
	// Distances computed from haversine itself so the boundary check is exact.
	current := Coordinate{Latitude: office.Latitude + 0.001, Longitude: office.Longitude}
	d := CalculateHaversineDistance(current.Latitude, current.Longitude, office.Latitude, office.Longitude)
	if !WithinRadius(current, office, d) {
		t.Errorf("point at distance %.3fm rejected by radius %.3fm, boundary must be inclusive", d, d)
	}
}
