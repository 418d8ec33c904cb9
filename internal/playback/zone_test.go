package playback

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		x    float64
		want Zone
	}{
		{0, ZoneBack},
		{29.9, ZoneBack},
		{30, ZoneToggle},
		{50, ZoneToggle},
		{70, ZoneToggle},
		{70.1, ZoneForward},
		{100, ZoneForward},
	}
	for _, tt := range tests {
		if got := DefaultZoning.Classify(tt.x); got != tt.want {
			t.Errorf("Classify(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestPercentX(t *testing.T) {
	if got := PercentX(90, 300); got != 30 {
		t.Fatalf("expected 30, got %v", got)
	}
	if got := PercentX(10, 0); got != 50 {
		t.Fatalf("zero width should land in the middle, got %v", got)
	}
}
