package domain

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	astana := Coordinates{Latitude: 51.1605, Longitude: 71.4704}
	almaty := Coordinates{Latitude: 43.2380, Longitude: 76.8829}

	tests := []struct {
		name      string
		a, b      Coordinates
		wantKm    float64
		tolerance float64
	}{
		{name: "same point", a: astana, b: astana, wantKm: 0, tolerance: 0.001},
		{name: "astana to almaty", a: astana, b: almaty, wantKm: 970, tolerance: 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.a, tt.b)
			if math.Abs(got-tt.wantKm) > tt.tolerance {
				t.Errorf("Distance() = %.2f km, want %.2f ± %.2f", got, tt.wantKm, tt.tolerance)
			}
			if rev := Distance(tt.b, tt.a); math.Abs(rev-got) > 0.001 {
				t.Errorf("Distance is not symmetric: %f vs %f", got, rev)
			}
		})
	}
}
