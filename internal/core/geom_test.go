package core

import "testing"

func TestRectFIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     RectF
		expected bool
	}{
		{
			name:     "overlapping",
			a:        NewRectF(0, 0, 30, 30),
			b:        NewRectF(20, 20, 40, 40),
			expected: true,
		},
		{
			name:     "touching right edge",
			a:        NewRectF(10, 0, 30, 30),
			b:        NewRectF(40, 0, 40, 40),
			expected: false,
		},
		{
			name:     "touching bottom edge",
			a:        NewRectF(0, 10, 30, 30),
			b:        NewRectF(0, 40, 40, 40),
			expected: false,
		},
		{
			name:     "sub-unit overlap",
			a:        NewRectF(0, 0, 30, 30),
			b:        NewRectF(29.9, 29.9, 40, 40),
			expected: true,
		},
		{
			name:     "contained",
			a:        NewRectF(0, 0, 40, 40),
			b:        NewRectF(5, 5, 30, 30),
			expected: true,
		},
		{
			name:     "negative coordinates apart",
			a:        NewRectF(-100, -100, 30, 30),
			b:        NewRectF(0, 0, 40, 40),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectFEdges(t *testing.T) {
	r := NewRectF(40, 80, 30, 30)

	if r.Right() != 70 {
		t.Errorf("Right() = %f, expected 70", r.Right())
	}
	if r.Bottom() != 110 {
		t.Errorf("Bottom() = %f, expected 110", r.Bottom())
	}
	cx, cy := r.Center()
	if cx != 55 || cy != 95 {
		t.Errorf("Center() = (%f, %f), expected (55, 95)", cx, cy)
	}
}

func TestRectIntersects(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	if !a.Intersects(NewRect(5, 5, 10, 10)) {
		t.Error("overlapping rects should intersect")
	}
	if a.Intersects(NewRect(10, 0, 10, 10)) {
		t.Error("adjacent rects should not intersect")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{105, 0.0, 100.0, 100.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}
