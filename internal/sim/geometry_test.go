package sim

import "testing"

var spikes = Hazard{X: 100, Y: 200, Width: 50, Height: 40} // spans x 100..150, y 160..200

func TestCircleRect_CentreInside(t *testing.T) {
	if !CircleIntersectsRect(spikes, 125, 180, 5) {
		t.Fatal("circle centred inside the rect should intersect")
	}
}

func TestCircleRect_ClearAbove(t *testing.T) {
	// Nearest point is the spike tip line at y=160; distance 30 > r.
	if CircleIntersectsRect(spikes, 125, 130, 28) {
		t.Fatal("circle 30 above the tips should not intersect with r=28")
	}
}

func TestCircleRect_ExactlyTouching_NotHit(t *testing.T) {
	// Distance equals radius: contact needs to be strictly closer.
	if CircleIntersectsRect(spikes, 125, 132, 28) {
		t.Fatal("circle exactly touching should not count as contact")
	}
}

func TestCircleRect_CornerDiagonal(t *testing.T) {
	// Corner (150,160); centre offset (3,-4) is distance 5.
	if !CircleIntersectsRect(spikes, 153, 156, 5.5) {
		t.Fatal("expected corner hit at distance 5 with r=5.5")
	}
	if CircleIntersectsRect(spikes, 153, 156, 4.5) {
		t.Fatal("expected corner miss at distance 5 with r=4.5")
	}
}

func TestPointInRect_EdgesInclusive(t *testing.T) {
	cases := []struct {
		x, y float64
		want bool
	}{
		{100, 200, true},
		{150, 160, true},
		{125, 180, true},
		{99.9, 180, false},
		{125, 159.9, false},
		{125, 200.1, false},
	}
	for _, c := range cases {
		if got := PointInRect(spikes, c.x, c.y); got != c.want {
			t.Errorf("PointInRect(%.1f,%.1f) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestZeroSizeHazard_NoPanic(t *testing.T) {
	h := Hazard{X: 10, Y: 10}
	_ = CircleIntersectsRect(h, 10, 10, 1)
	_ = PointInRect(h, 10, 10)
}
