package rig

import (
	"fmt"
	"math"

	"github.com/automoto/unexplored/assets/animations"
)

// climbSpeed is the vertical speed above which the climb cycle advances.
const climbSpeed = 1.0

// AimMode controls when a limb rotates toward the aim target.
type AimMode int

const (
	AimNone AimMode = iota
	AimAlways
	AimWhenArmed
)

// LimbConfig is the per-part asset table a LimbController is built from.
type LimbConfig[T comparable] struct {
	ID       LimbID
	Textures *DirectionalTextureSet[T]
	// AimPair is a vertically mirrored pair shown while aiming, picked by the
	// side of the target rather than the body facing.
	AimPair TexturePair[T]
	AimMode AimMode
	CanFire bool
}

// LimbController selects a pose and texture for one rig part every tick.
type LimbController[T comparable] struct {
	cfg     LimbConfig[T]
	timings *Timings

	clock     *animations.Clock
	fireClock *animations.Clock
	advanced  bool

	state   State
	pose    PoseID
	frame   int
	texture T

	X, Y      float64
	Angle     float64 // radians, screen space
	Facing    Facing
	AimFacing Facing

	firing            bool
	equippedOneHanded bool
	equippedTwoHanded bool
}

func NewLimbController[T comparable](cfg LimbConfig[T], timings *Timings) *LimbController[T] {
	if cfg.Textures == nil {
		cfg.Textures = NewDirectionalTextureSet[T]()
	}
	idle := timings[PoseIdle]
	fire := timings[PoseFiring]
	l := &LimbController[T]{
		cfg:       cfg,
		timings:   timings,
		clock:     animations.NewClock(idle.Frames, idle.TicksPerFrame),
		fireClock: animations.NewClock(fire.Frames, fire.TicksPerFrame),
	}
	l.selectTexture()
	return l
}

func (l *LimbController[T]) validate() error {
	if l.cfg.AimMode == AimAlways {
		if !l.cfg.AimPair.complete() {
			return fmt.Errorf("%w: %s aim pair", ErrAssetMissing, l.cfg.ID)
		}
		return nil
	}
	for _, p := range l.requiredPoses() {
		if err := l.cfg.Textures.validate(l.cfg.ID, p, l.timings[p]); err != nil {
			return err
		}
	}
	if l.cfg.AimMode == AimWhenArmed && !l.cfg.AimPair.complete() {
		return fmt.Errorf("%w: %s aim pair", ErrAssetMissing, l.cfg.ID)
	}
	return nil
}

func (l *LimbController[T]) requiredPoses() []PoseID {
	poses := []PoseID{PoseIdle, PoseWalk, PoseRun, PoseClimb}
	if l.cfg.Textures.Has(PoseIdleToJump) || !(l.cfg.Textures.Has(PoseJump) || l.cfg.Textures.Has(PoseFall)) {
		poses = append(poses, PoseIdleToJump)
	} else {
		poses = append(poses, PoseJump, PoseFall)
	}
	if l.cfg.CanFire {
		poses = append(poses, PoseFiring)
	}
	return poses
}

// Update evaluates the state chain once, advances the clock and picks a texture.
func (l *LimbController[T]) Update(body BodyState) {
	l.Facing = body.Facing
	l.equippedOneHanded = body.EquippedOneHanded
	l.equippedTwoHanded = body.EquippedTwoHanded

	movement := movementState(body)
	l.advance(movement, body)

	if l.firing {
		l.state = StateFiring
		l.pose = PoseFiring
		l.frame = l.fireClock.Frame()
		if tex, ok := l.cfg.Textures.At(PoseFiring, l.frame, l.AimFacing); ok {
			l.texture = tex
		}
		l.fireClock.Advance()
		if l.fireClock.Looped {
			l.firing = false
		}
		return
	}

	l.state = movement
	l.selectTexture()
}

// movementState is the transition chain below Firing. First match wins.
func movementState(body BodyState) State {
	switch {
	case body.Climbing:
		return StateClimbing
	case body.Jumping:
		return StateJumpTransition
	case body.Idling:
		return StateIdle
	case body.Sprinting:
		return StateRunning
	default:
		return StateWalking
	}
}

func (l *LimbController[T]) poseFor(s State, vy float64) PoseID {
	switch s {
	case StateWalking:
		return PoseWalk
	case StateRunning:
		return PoseRun
	case StateClimbing:
		return PoseClimb
	case StateJumpTransition:
		if l.cfg.Textures.Has(PoseIdleToJump) || !l.cfg.Textures.Has(PoseJump) {
			return PoseIdleToJump
		}
		if vy < 0 {
			return PoseJump
		}
		return PoseFall
	case StateFiring:
		return PoseFiring
	}
	return PoseIdle
}

func (l *LimbController[T]) advance(s State, body BodyState) {
	l.pose = l.poseFor(s, body.VelocityY)
	t := l.timings[l.pose]
	l.clock.Retarget(t.Frames, t.TicksPerFrame)
	l.advanced = false

	switch s {
	case StateIdle:
		// Idle is a single static frame.
	case StateClimbing:
		if math.Abs(body.VelocityY) > climbSpeed {
			l.clock.Advance()
			l.advanced = true
		}
	default:
		l.clock.Advance()
		l.advanced = true
	}
	l.frame = l.clock.Frame()
}

func (l *LimbController[T]) aiming() bool {
	switch l.cfg.AimMode {
	case AimAlways:
		return true
	case AimWhenArmed:
		return l.equippedOneHanded || l.equippedTwoHanded
	}
	return false
}

func (l *LimbController[T]) selectTexture() {
	if l.aiming() {
		l.texture = l.cfg.AimPair.For(l.AimFacing)
		return
	}
	switch l.pose {
	case PoseWalk, PoseRun:
		l.texture = l.cfg.Textures.Clamped(l.pose, l.frame, l.Facing)
	default:
		if tex, ok := l.cfg.Textures.At(l.pose, l.frame, l.Facing); ok {
			l.texture = tex
		}
	}
}

// Aim turns the limb toward a world point. Facing follows the sign of dx and is
// left unchanged when the target is straight above or below.
func (l *LimbController[T]) Aim(targetX, targetY float64) {
	if l.cfg.AimMode == AimNone {
		return
	}
	dx := targetX - l.X
	dy := targetY - l.Y
	switch {
	case dx > 0:
		l.AimFacing = FacingRight
	case dx < 0:
		l.AimFacing = FacingLeft
	}
	l.Angle = math.Atan2(dy, dx)
}

// Forward reports whether the aim angle lies within ±90° of the positive x axis.
func (l *LimbController[T]) Forward() bool {
	return math.Abs(l.Angle) <= math.Pi/2
}

// Fire enters the sticky firing state. It is a no-op while already firing.
func (l *LimbController[T]) Fire() bool {
	if !l.cfg.CanFire || l.firing {
		return false
	}
	l.firing = true
	l.fireClock.Reset()
	return true
}

func (l *LimbController[T]) setEquipped(oneHanded, twoHanded bool) {
	l.equippedOneHanded = oneHanded
	l.equippedTwoHanded = twoHanded
	l.selectTexture()
}

func (l *LimbController[T]) reset() {
	l.clock.Reset()
	l.fireClock.Reset()
	l.firing = false
	l.state = StateIdle
	l.pose = PoseIdle
	l.frame = 0
	l.Angle = 0
	l.Facing = FacingRight
	l.AimFacing = FacingRight
	l.equippedOneHanded = false
	l.equippedTwoHanded = false
	l.selectTexture()
}

func (l *LimbController[T]) ID() LimbID     { return l.cfg.ID }
func (l *LimbController[T]) State() State   { return l.state }
func (l *LimbController[T]) Pose() PoseID   { return l.pose }
func (l *LimbController[T]) Frame() int     { return l.frame }
func (l *LimbController[T]) Texture() T     { return l.texture }
func (l *LimbController[T]) Firing() bool   { return l.firing }
func (l *LimbController[T]) Tick() int      { return l.clock.Tick() }
func (l *LimbController[T]) Advanced() bool { return l.advanced }

func (l *LimbController[T]) Equipped() (oneHanded, twoHanded bool) {
	return l.equippedOneHanded, l.equippedTwoHanded
}
