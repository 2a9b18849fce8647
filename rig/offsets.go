package rig

import "fmt"

// Offset is a limb displacement from the body centre in unscaled art pixels.
// Y grows upward, the way the offsets were measured on the sprite sheets.
type Offset struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// OffsetTable holds one offset per (pose, frame). Idle is its own single-entry row.
type OffsetTable struct {
	rows [PoseCount][]Offset
}

func NewOffsetTable() *OffsetTable {
	return &OffsetTable{}
}

func (t *OffsetTable) Set(pose PoseID, offsets ...Offset) {
	t.rows[pose] = offsets
}

// At returns the offset for a frame. Poses without a row (firing is keyed by the
// body pose and never looked up) resolve to the zero offset.
func (t *OffsetTable) At(pose PoseID, frame int) Offset {
	row := t.rows[pose]
	if len(row) == 0 {
		return Offset{}
	}
	if frame < 0 || frame >= len(row) {
		frame = 0
	}
	return row[frame]
}

// Validate requires a full row for every listed pose.
func (t *OffsetTable) Validate(name string, timings *Timings, poses ...PoseID) error {
	for _, p := range poses {
		if got, want := len(t.rows[p]), timings[p].Frames; got != want {
			return fmt.Errorf("%w: %s offsets for %s have %d entries, expected %d",
				ErrAssetMissing, name, p, got, want)
		}
	}
	return nil
}
