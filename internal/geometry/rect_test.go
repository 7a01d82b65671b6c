package geometry

import "testing"

func TestNewRect(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.X != 5 {
		t.Errorf("NewRect().X = %v, want 5", r.X)
	}
	if r.Y != 10 {
		t.Errorf("NewRect().Y = %v, want 10", r.Y)
	}
	if r.Width != 20 {
		t.Errorf("NewRect().Width = %v, want 20", r.Width)
	}
	if r.Height != 15 {
		t.Errorf("NewRect().Height = %v, want 15", r.Height)
	}
}

func TestRect_RightBottom(t *testing.T) {
	type tc struct {
		rect   Rect
		right  float64
		bottom float64
	}

	tests := map[string]tc{
		"standard rect": {
			rect:   NewRect(5, 10, 20, 15),
			right:  25,
			bottom: 25,
		},
		"zero position": {
			rect:   NewRect(0, 0, 10, 10),
			right:  10,
			bottom: 10,
		},
		"negative position": {
			rect:   NewRect(-5, -5, 10, 10),
			right:  5,
			bottom: 5,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Right(); got != tt.right {
				t.Errorf("Right() = %v, want %v", got, tt.right)
			}
			if got := tt.rect.Bottom(); got != tt.bottom {
				t.Errorf("Bottom() = %v, want %v", got, tt.bottom)
			}
		})
	}
}

func TestRect_Contains(t *testing.T) {
	type tc struct {
		rect     Rect
		p        Point
		expected bool
	}

	tests := map[string]tc{
		"inside": {
			rect:     NewRect(10, 10, 20, 20),
			p:        Point{X: 15, Y: 15},
			expected: true,
		},
		"top-left corner inclusive": {
			rect:     NewRect(10, 10, 20, 20),
			p:        Point{X: 10, Y: 10},
			expected: true,
		},
		"bottom-right corner exclusive": {
			rect:     NewRect(10, 10, 20, 20),
			p:        Point{X: 30, Y: 30},
			expected: false,
		},
		"outside": {
			rect:     NewRect(10, 10, 20, 20),
			p:        Point{X: 5, Y: 15},
			expected: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Contains(tt.p); got != tt.expected {
				t.Errorf("Contains(%+v) = %v, want %v", tt.p, got, tt.expected)
			}
		})
	}
}

func TestRect_ShiftInto(t *testing.T) {
	type tc struct {
		rect     Rect
		bounds   Rect
		expected Point
	}

	tests := map[string]tc{
		"already inside": {
			rect:     NewRect(10, 10, 20, 20),
			bounds:   NewRect(0, 0, 100, 100),
			expected: Point{},
		},
		"overflow right and bottom": {
			rect:     NewRect(790, 590, 20, 20),
			bounds:   NewRect(0, 0, 800, 600),
			expected: Point{X: -10, Y: -10},
		},
		"overflow left and top": {
			rect:     NewRect(-5, -8, 20, 20),
			bounds:   NewRect(0, 0, 100, 100),
			expected: Point{X: 5, Y: 8},
		},
		"axes independent": {
			rect:     NewRect(95, 10, 20, 20),
			bounds:   NewRect(0, 0, 100, 100),
			expected: Point{X: -15, Y: 0},
		},
		"taller than bounds aligns top": {
			rect:     NewRect(10, 30, 20, 200),
			bounds:   NewRect(0, 0, 100, 100),
			expected: Point{X: 0, Y: -30},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.ShiftInto(tt.bounds); got != tt.expected {
				t.Errorf("ShiftInto(%+v) = %+v, want %+v", tt.bounds, got, tt.expected)
			}
		})
	}
}
