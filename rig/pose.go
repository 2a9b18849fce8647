package rig

// PoseID names an animation clip. Values index the dense texture and offset arrays.
type PoseID int

const (
	PoseIdle PoseID = iota
	PoseWalk
	PoseRun
	PoseJump
	PoseFall
	PoseClimb
	PoseFiring
	PoseIdleToJump
	PoseCount
)

var poseNames = [PoseCount]string{
	PoseIdle:       "idle",
	PoseWalk:       "walk",
	PoseRun:        "run",
	PoseJump:       "jump",
	PoseFall:       "fall",
	PoseClimb:      "climb",
	PoseFiring:     "firing",
	PoseIdleToJump: "idle_to_jump",
}

func (p PoseID) String() string {
	if p < 0 || p >= PoseCount {
		return "unknown"
	}
	return poseNames[p]
}

// ParsePose resolves a pose name as written in rig data files.
func ParsePose(name string) (PoseID, bool) {
	for i, n := range poseNames {
		if n == name {
			return PoseID(i), true
		}
	}
	return 0, false
}

// State is the runtime state of a limb. Each state selects exactly one pose.
type State int

const (
	StateIdle State = iota
	StateWalking
	StateRunning
	StateClimbing
	StateJumpTransition
	StateFiring
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWalking:
		return "walking"
	case StateRunning:
		return "running"
	case StateClimbing:
		return "climbing"
	case StateJumpTransition:
		return "jump_transition"
	case StateFiring:
		return "firing"
	}
	return "unknown"
}

// Facing indexes a TexturePair.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// Sign is +1 for Right and -1 for Left.
func (f Facing) Sign() float64 {
	if f == FacingLeft {
		return -1
	}
	return 1
}

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// LimbID identifies a rig part. The order is the draw order, back to front.
type LimbID int

const (
	LimbLegs LimbID = iota
	LimbBackArm
	LimbBody
	LimbHead
	LimbFrontArm
	LimbCount
)

var limbNames = [LimbCount]string{
	LimbLegs:     "legs",
	LimbBackArm:  "back_arm",
	LimbBody:     "body",
	LimbHead:     "head",
	LimbFrontArm: "front_arm",
}

func (l LimbID) String() string {
	if l < 0 || l >= LimbCount {
		return "unknown"
	}
	return limbNames[l]
}

// ParseLimb resolves a limb name as written in rig data files.
func ParseLimb(name string) (LimbID, bool) {
	for i, n := range limbNames {
		if n == name {
			return LimbID(i), true
		}
	}
	return 0, false
}

// PoseTiming is the frame count and hold of one pose, shared by every limb
// so that all parts of the rig advance in lockstep.
type PoseTiming struct {
	Frames        int
	TicksPerFrame int
	// Cues lists counter values at which a footstep is emitted. 0 is the wrap.
	Cues []int
}

type Timings [PoseCount]PoseTiming

// DefaultTimings mirrors the hand-tuned clip lengths of the player art.
func DefaultTimings(updatesPerFrame, gunUpdatesPerFrame int) Timings {
	var t Timings
	t[PoseIdle] = PoseTiming{Frames: 1, TicksPerFrame: 1}
	t[PoseWalk] = PoseTiming{Frames: 9, TicksPerFrame: updatesPerFrame, Cues: []int{0, 4 * updatesPerFrame}}
	t[PoseRun] = PoseTiming{Frames: 5, TicksPerFrame: updatesPerFrame, Cues: []int{0, 2 * updatesPerFrame}}
	t[PoseJump] = PoseTiming{Frames: 1, TicksPerFrame: 1}
	t[PoseFall] = PoseTiming{Frames: 1, TicksPerFrame: 1}
	t[PoseClimb] = PoseTiming{Frames: 2, TicksPerFrame: 4}
	t[PoseFiring] = PoseTiming{Frames: 5, TicksPerFrame: gunUpdatesPerFrame}
	t[PoseIdleToJump] = PoseTiming{Frames: 16, TicksPerFrame: updatesPerFrame}
	return t
}

func (t PoseTiming) isCue(tick int) bool {
	for _, c := range t.Cues {
		if c == tick {
			return true
		}
	}
	return false
}
