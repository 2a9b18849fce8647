package animations

// FrameAt maps a tick counter to a frame index in [0, frames).
// Non-positive frames or ticksPerFrame yield frame 0.
func FrameAt(tick, frames, ticksPerFrame int) int {
	if frames <= 0 || ticksPerFrame <= 0 || tick < 0 {
		return 0
	}
	return (tick / ticksPerFrame) % frames
}

// Wrap returns the counter reset to 0 once it reaches frames*ticksPerFrame.
func Wrap(tick, frames, ticksPerFrame int) int {
	if tick < 0 || tick >= frames*ticksPerFrame {
		return 0
	}
	return tick
}

// Clock is a caller-driven frame counter shared by every animated part.
type Clock struct {
	Frames        int
	TicksPerFrame int
	tick          int
	Looped        bool // set on the Advance that wrapped the counter
}

func NewClock(frames, ticksPerFrame int) *Clock {
	return &Clock{
		Frames:        frames,
		TicksPerFrame: ticksPerFrame,
	}
}

// Advance moves the counter one tick forward and wraps it at the end of the sequence.
func (c *Clock) Advance() {
	c.tick++
	c.Looped = false
	if c.tick >= c.Frames*c.TicksPerFrame {
		c.tick = 0
		c.Looped = true
	}
}

func (c *Clock) Frame() int {
	return FrameAt(c.tick, c.Frames, c.TicksPerFrame)
}

func (c *Clock) Tick() int {
	return c.tick
}

// Sync copies another clock's counter, wrapped to this clock's length.
func (c *Clock) Sync(tick int) {
	c.tick = Wrap(tick, c.Frames, c.TicksPerFrame)
}

func (c *Clock) Reset() {
	c.tick = 0
	c.Looped = false
}

// Retarget switches the clock to a sequence of a different length without
// resetting the counter. A counter past the new end wraps on the next Advance.
func (c *Clock) Retarget(frames, ticksPerFrame int) {
	c.Frames = frames
	c.TicksPerFrame = ticksPerFrame
}
