package components

import (
	"testing"

	"github.com/solarlune/resolv"
)

func TestOverlapsAt(t *testing.T) {
	floor := resolv.NewObject(0, 20, 100, 10)
	tests := []struct {
		name   string
		box    *resolv.Object
		dx, dy float64
		want   bool
	}{
		{"inside", resolv.NewObject(10, 15, 10, 10), 0, 0, true},
		{"resting on top", resolv.NewObject(10, 10, 10, 10), 0, 0, false},
		{"moved into", resolv.NewObject(10, 10, 10, 10), 0, 1, true},
		{"beside", resolv.NewObject(100, 20, 10, 10), 0, 0, false},
		{"moved beside", resolv.NewObject(120, 20, 10, 10), -20, 0, false},
		{"far above", resolv.NewObject(10, -50, 10, 10), 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OverlapsAt(tt.box, tt.dx, tt.dy, floor); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}

	// resolv counts shared edges as touching, which trigger zones rely on.
	resting := resolv.NewObject(10, 10, 10, 10)
	if !resting.Overlaps(floor) {
		t.Error("expected resolv to report a shared edge")
	}
}
