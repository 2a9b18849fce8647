package rig

import (
	"errors"
	"fmt"
)

// ErrAssetMissing reports a pose or frame with no texture or offset entry.
var ErrAssetMissing = errors.New("rig: asset missing")

// TexturePair holds the right- and left-facing variants of one frame, indexed by Facing.
type TexturePair[T comparable] [2]T

func (p TexturePair[T]) For(f Facing) T {
	return p[f]
}

func (p TexturePair[T]) complete() bool {
	var zero T
	return p[0] != zero && p[1] != zero
}

// DirectionalTextureSet maps a pose to its ordered per-frame texture pairs.
type DirectionalTextureSet[T comparable] struct {
	poses [PoseCount][]TexturePair[T]
}

func NewDirectionalTextureSet[T comparable]() *DirectionalTextureSet[T] {
	return &DirectionalTextureSet[T]{}
}

func (s *DirectionalTextureSet[T]) Set(pose PoseID, frames ...TexturePair[T]) {
	s.poses[pose] = frames
}

func (s *DirectionalTextureSet[T]) Len(pose PoseID) int {
	return len(s.poses[pose])
}

func (s *DirectionalTextureSet[T]) Has(pose PoseID) bool {
	return len(s.poses[pose]) > 0
}

// At returns the texture for a frame, or false when the frame was never authored.
func (s *DirectionalTextureSet[T]) At(pose PoseID, frame int, facing Facing) (T, bool) {
	frames := s.poses[pose]
	if frame < 0 || frame >= len(frames) {
		var zero T
		return zero, false
	}
	return frames[frame][facing], true
}

// Clamped is At with out-of-range frames pinned to frame 0. A limb that authored
// fewer walk or run frames than the body lands here while the shared counter
// is past its last frame.
func (s *DirectionalTextureSet[T]) Clamped(pose PoseID, frame int, facing Facing) T {
	frames := s.poses[pose]
	if len(frames) == 0 {
		var zero T
		return zero
	}
	if frame < 0 || frame >= len(frames) {
		frame = 0
	}
	return frames[frame][facing]
}

// validate checks the authored frames of pose against its timing. Walk and run
// may author fewer frames than the timing (they clamp at runtime), every other
// pose must match exactly.
func (s *DirectionalTextureSet[T]) validate(limb LimbID, pose PoseID, timing PoseTiming) error {
	frames := s.poses[pose]
	if len(frames) == 0 {
		return fmt.Errorf("%w: %s has no %s frames", ErrAssetMissing, limb, pose)
	}
	clamps := pose == PoseWalk || pose == PoseRun
	if len(frames) > timing.Frames || (!clamps && len(frames) != timing.Frames) {
		return fmt.Errorf("%w: %s %s has %d frames, timing expects %d",
			ErrAssetMissing, limb, pose, len(frames), timing.Frames)
	}
	for i, pair := range frames {
		if !pair.complete() {
			return fmt.Errorf("%w: %s %s frame %d", ErrAssetMissing, limb, pose, i)
		}
	}
	return nil
}
