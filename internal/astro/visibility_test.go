package astro

import "testing"

func TestVisible_ThresholdBoundary(t *testing.T) {
	tests := []struct {
		name string
		el   float64
		min  float64
		want bool
	}{
		{"above horizon", 45, 0, true},
		{"exactly at horizon", 0, 0, true},
		{"just below horizon", -0.0001, 0, false},
		{"deep below horizon", -5, 0, false},
		{"exactly at raised cutoff", 10, 10, true},
		{"below raised cutoff", 9.999, 10, false},
		{"above raised cutoff", 10.001, 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Visible(tt.el, tt.min); got != tt.want {
				t.Errorf("Visible(%v, %v) = %v, want %v", tt.el, tt.min, got, tt.want)
			}
		})
	}
}

func TestGetElevationTier(t *testing.T) {
	tests := []struct {
		el   float64
		want ElevationTier
	}{
		{-10, ElevationNone},
		{0, ElevationLow},
		{10, ElevationLow},
		{15, ElevationMedium},
		{44.9, ElevationMedium},
		{45, ElevationHigh},
		{90, ElevationHigh},
	}

	for _, tt := range tests {
		if got := GetElevationTier(tt.el); got != tt.want {
			t.Errorf("GetElevationTier(%v) = %v, want %v", tt.el, got, tt.want)
		}
	}
}
