package animations

import "testing"

func TestFrameAtStaysInRange(t *testing.T) {
	for frames := 1; frames <= 16; frames++ {
		for tpf := 1; tpf <= 12; tpf++ {
			for tick := 0; tick < 500; tick++ {
				got := FrameAt(tick, frames, tpf)
				if got < 0 || got >= frames {
					t.Fatalf("FrameAt(%d, %d, %d) = %d, out of range", tick, frames, tpf, got)
				}
			}
		}
	}
}

func TestFrameAt(t *testing.T) {
	tests := []struct {
		name   string
		tick   int
		frames int
		tpf    int
		want   int
	}{
		{"first tick", 0, 5, 10, 0},
		{"end of first frame", 9, 5, 10, 0},
		{"second frame", 10, 5, 10, 1},
		{"last frame", 49, 5, 10, 4},
		{"overshoot wraps", 50, 5, 10, 0},
		{"zero frames", 7, 0, 10, 0},
		{"zero ticks per frame", 7, 5, 0, 0},
		{"negative tick", -3, 5, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FrameAt(tt.tick, tt.frames, tt.tpf); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestClockWrapsAndFlagsLoop(t *testing.T) {
	c := NewClock(3, 2)
	var frames []int
	loops := 0
	for i := 0; i < 12; i++ {
		c.Advance()
		if c.Looped {
			loops++
		}
		frames = append(frames, c.Frame())
	}

	want := []int{0, 1, 1, 2, 2, 0, 0, 1, 1, 2, 2, 0}
	for i := range want {
		if frames[i] != want[i] {
			t.Fatalf("tick %d: expected frame %d, got %d (sequence %v)", i+1, want[i], frames[i], frames)
		}
	}
	if loops != 2 {
		t.Errorf("expected 2 loops, got %d", loops)
	}
	if c.Tick() >= 3*2 {
		t.Errorf("expected counter below %d, got %d", 3*2, c.Tick())
	}
}

func TestClockRetargetKeepsFrameInRange(t *testing.T) {
	c := NewClock(9, 10)
	for i := 0; i < 80; i++ {
		c.Advance()
	}
	c.Retarget(5, 10)
	if f := c.Frame(); f < 0 || f >= 5 {
		t.Fatalf("expected frame in [0, 5) after retarget, got %d", f)
	}
	c.Advance()
	if c.Tick() != 0 || !c.Looped {
		t.Errorf("expected overshooting counter to wrap on advance, got tick %d looped %v", c.Tick(), c.Looped)
	}
}

func TestClockSyncWraps(t *testing.T) {
	c := NewClock(2, 4)
	c.Sync(5)
	if c.Tick() != 5 {
		t.Errorf("expected tick 5, got %d", c.Tick())
	}
	c.Sync(8)
	if c.Tick() != 0 {
		t.Errorf("expected tick 0, got %d", c.Tick())
	}
}
