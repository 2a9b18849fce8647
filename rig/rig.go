package rig

import (
	"fmt"
	"math"
)

// Nudges applied on top of the offset tables, in unscaled art pixels. They keep
// the head and the armed front arm anchored on the torso when the aim crosses
// behind the body.
const (
	headNudge          = 2.0
	armSprintNudge     = 2.0
	armBackNudge       = 3.0
	armShoulderX       = 4.0
	armShoulderY       = 7.0
	unarmedArmNudge    = 1.0
	defaultWeaponReach = 10.0
)

// Config is shared by every limb of a rig.
type Config struct {
	Scale       float64
	Timings     Timings
	HeadOffsets *OffsetTable
	ArmOffsets  *OffsetTable
	// WeaponReach is the distance from the front arm pivot to the weapon grip.
	WeaponReach float64
}

// Parts is the art and layout a rig is assembled from. It is loaded once
// and shared by every rig built from it.
type Parts[T comparable] struct {
	HeadOffsets *OffsetTable
	ArmOffsets  *OffsetTable
	WeaponReach float64
	Limbs       [LimbCount]LimbConfig[T]
	Weapon      TexturePair[T]
}

// Build assembles a fresh rig over the shared parts.
func (p *Parts[T]) Build(scale float64, timings Timings) (*CharacterRig[T], error) {
	return New(Config{
		Scale:       scale,
		Timings:     timings,
		HeadOffsets: p.HeadOffsets,
		ArmOffsets:  p.ArmOffsets,
		WeaponReach: p.WeaponReach,
	}, p.Limbs, p.Weapon)
}

// Intent is the movement the player asked for this tick.
type Intent struct {
	MoveX, MoveY  float64
	Sprinting     bool
	JumpRequested bool
}

// PhysicsResult is what the collision collaborator resolved for the rig body.
type PhysicsResult struct {
	X, Y                 float64 // body centre
	VelocityX, VelocityY float64
	OnLadder             bool
	CanJump              bool
}

// BodyState is the body-level state propagated to every limb.
type BodyState struct {
	VelocityX, VelocityY float64
	Facing               Facing
	OnLadder             bool
	Climbing             bool
	Jumping              bool
	Idling               bool
	Sprinting            bool
	Firing               bool
	EquippedOneHanded    bool
	EquippedTwoHanded    bool
	Pose                 PoseID
	Frame                int
}

// Cue is a sound trigger raised by the rig.
type Cue int

const (
	CueFootstepWalk Cue = iota
	CueFootstepRun
	CueJump
	CueFire
)

// CharacterRig owns the five limbs of the player and positions them around the body.
type CharacterRig[T comparable] struct {
	cfg    Config
	limbs  [LimbCount]*LimbController[T]
	weapon TexturePair[T]

	body   BodyState
	intent Intent
	x, y   float64
	cues   []Cue

	weaponX, weaponY float64
}

// New builds a rig and validates every (pose, frame) it can produce against
// the textures and offset tables. Failures wrap ErrAssetMissing.
func New[T comparable](cfg Config, limbs [LimbCount]LimbConfig[T], weapon TexturePair[T]) (*CharacterRig[T], error) {
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	if cfg.WeaponReach == 0 {
		cfg.WeaponReach = defaultWeaponReach
	}
	if cfg.HeadOffsets == nil || cfg.ArmOffsets == nil {
		return nil, fmt.Errorf("%w: offset tables", ErrAssetMissing)
	}
	for p, t := range cfg.Timings {
		if t.Frames <= 0 || t.TicksPerFrame <= 0 {
			return nil, fmt.Errorf("%w: timing for %s", ErrAssetMissing, PoseID(p))
		}
	}

	r := &CharacterRig[T]{cfg: cfg, weapon: weapon}
	for i := range limbs {
		if limbs[i].ID != LimbID(i) {
			return nil, fmt.Errorf("rig: limb slot %s holds %s", LimbID(i), limbs[i].ID)
		}
		r.limbs[i] = NewLimbController(limbs[i], &r.cfg.Timings)
		if err := r.limbs[i].validate(); err != nil {
			return nil, err
		}
	}
	if !weapon.complete() {
		return nil, fmt.Errorf("%w: weapon pair", ErrAssetMissing)
	}

	bodyPoses := r.limbs[LimbBody].requiredPoses()
	if err := cfg.HeadOffsets.Validate("head", &r.cfg.Timings, bodyPoses...); err != nil {
		return nil, err
	}
	if err := cfg.ArmOffsets.Validate("arm", &r.cfg.Timings, bodyPoses...); err != nil {
		return nil, err
	}
	return r, nil
}

// UpdateIntent records movement intent. It does not move the rig.
func (r *CharacterRig[T]) UpdateIntent(moveX, moveY float64, sprinting, jumpRequested bool) {
	r.intent = Intent{
		MoveX:         moveX,
		MoveY:         moveY,
		Sprinting:     sprinting,
		JumpRequested: jumpRequested,
	}
}

func (r *CharacterRig[T]) Intent() Intent {
	return r.intent
}

// Resolve consumes the physics result, derives body flags, runs every limb
// state machine and positions the limbs relative to the body and aim target.
func (r *CharacterRig[T]) Resolve(res PhysicsResult, aimX, aimY float64) {
	r.x, r.y = res.X, res.Y
	r.deriveBody(res)

	if r.intent.JumpRequested && res.CanJump && !res.OnLadder {
		r.cues = append(r.cues, CueJump)
	}

	body := r.limbs[LimbBody]
	body.Update(r.body)
	r.body.Pose = body.Pose()
	r.body.Frame = body.Frame()
	if body.Advanced() {
		switch body.State() {
		case StateWalking:
			if r.cfg.Timings[PoseWalk].isCue(body.Tick()) {
				r.cues = append(r.cues, CueFootstepWalk)
			}
		case StateRunning:
			if r.cfg.Timings[PoseRun].isCue(body.Tick()) {
				r.cues = append(r.cues, CueFootstepRun)
			}
		}
	}

	r.positionLimbs(aimX, aimY)

	for _, id := range []LimbID{LimbLegs, LimbBackArm, LimbHead, LimbFrontArm} {
		r.limbs[id].Update(r.body)
	}
	r.body.Firing = r.limbs[LimbFrontArm].Firing()

	arm := r.limbs[LimbFrontArm]
	reach := r.cfg.WeaponReach * r.cfg.Scale
	r.weaponX = arm.X + math.Cos(arm.Angle)*reach
	r.weaponY = arm.Y + math.Sin(arm.Angle)*reach
}

func (r *CharacterRig[T]) deriveBody(res PhysicsResult) {
	vx, vy := res.VelocityX, res.VelocityY
	b := &r.body

	// Zero velocity never flips facing.
	if vx < 0 && b.Facing == FacingRight {
		b.Facing = FacingLeft
	} else if vx > 0 && b.Facing == FacingLeft {
		b.Facing = FacingRight
	}

	b.VelocityX, b.VelocityY = vx, vy
	b.OnLadder = res.OnLadder
	b.Climbing = res.OnLadder
	b.Jumping = vy != 0 && !res.OnLadder
	b.Idling = !b.Climbing && !b.Jumping && vx == 0
	b.Sprinting = r.intent.Sprinting
}

func (r *CharacterRig[T]) positionLimbs(aimX, aimY float64) {
	s := r.cfg.Scale
	sign := r.body.Facing.Sign()
	pose, frame := r.body.Pose, r.body.Frame

	for _, id := range []LimbID{LimbLegs, LimbBackArm, LimbBody} {
		l := r.limbs[id]
		l.X, l.Y, l.Angle = r.x, r.y, 0
	}

	// Idle keeps its own branch: the idle row was measured on a static frame.
	head := r.limbs[LimbHead]
	ho := r.cfg.HeadOffsets.At(pose, frame)
	head.X = r.x + sign*ho.X*s
	head.Y = r.y - ho.Y*s
	head.Aim(aimX, aimY)
	head.X += headAdjust(r.body.Facing, r.body.Idling, head.Forward()) * s

	arm := r.limbs[LimbFrontArm]
	if !r.body.EquippedOneHanded && !r.body.EquippedTwoHanded {
		arm.X = r.x - sign*unarmedArmNudge*s
		arm.Y = r.y + unarmedArmNudge*s
		arm.Angle = 0
		arm.AimFacing = r.body.Facing
		return
	}

	ao := r.cfg.ArmOffsets.At(pose, frame)
	arm.X = r.x + sign*ao.X*s
	arm.Y = r.y - ao.Y*s + armShoulderY*s
	arm.Aim(aimX, aimY)
	arm.X += armAdjust(r.body.Facing, r.body.Sprinting, arm.Forward()) * s
}

// headAdjust is the extra horizontal shift of the head. Facing right while
// moving mirrors facing left while idle, and the reverse.
func headAdjust(f Facing, idling, forward bool) float64 {
	if (f == FacingRight) != idling {
		if forward {
			return 0
		}
		return headNudge
	}
	if forward {
		return -headNudge
	}
	return 0
}

func armAdjust(f Facing, sprinting, forward bool) float64 {
	if f == FacingRight {
		adj := -armShoulderX
		switch {
		case !forward:
			adj -= armBackNudge
		case sprinting:
			adj -= armSprintNudge
		}
		return adj
	}
	adj := armShoulderX
	if sprinting && forward {
		adj += armSprintNudge
	}
	return adj
}

// ToggleWeapon flips the one-handed equip state and cascades it to both arms.
func (r *CharacterRig[T]) ToggleWeapon() {
	r.body.EquippedOneHanded = !r.body.EquippedOneHanded
	r.limbs[LimbFrontArm].setEquipped(r.body.EquippedOneHanded, r.body.EquippedTwoHanded)
	r.limbs[LimbBackArm].setEquipped(r.body.EquippedOneHanded, r.body.EquippedTwoHanded)
}

// Fire starts the front arm firing sequence. It returns false when unarmed or
// when a sequence is already playing.
func (r *CharacterRig[T]) Fire() bool {
	if !r.body.EquippedOneHanded {
		return false
	}
	if !r.limbs[LimbFrontArm].Fire() {
		return false
	}
	r.body.Firing = true
	r.cues = append(r.cues, CueFire)
	return true
}

// Reset places the rig at a spawn point with a fresh body state. The weapon stays equipped.
func (r *CharacterRig[T]) Reset(x, y float64) {
	equipped := r.body.EquippedOneHanded
	r.body = BodyState{EquippedOneHanded: equipped}
	r.intent = Intent{}
	r.cues = r.cues[:0]
	r.x, r.y = x, y
	for _, l := range r.limbs {
		l.reset()
		l.setEquipped(equipped, false)
		l.X, l.Y = x, y
	}
	r.weaponX, r.weaponY = x, y
}

func (r *CharacterRig[T]) Limb(id LimbID) *LimbController[T] {
	return r.limbs[id]
}

// Limbs returns the limbs in draw order.
func (r *CharacterRig[T]) Limbs() []*LimbController[T] {
	return r.limbs[:]
}

func (r *CharacterRig[T]) Body() BodyState {
	return r.body
}

func (r *CharacterRig[T]) Position() (x, y float64) {
	return r.x, r.y
}

// Muzzle is the pivot and angle projectiles leave from.
func (r *CharacterRig[T]) Muzzle() (x, y, angle float64) {
	arm := r.limbs[LimbFrontArm]
	return arm.X, arm.Y, arm.Angle
}

// Weapon returns the held weapon drawable. ok is false while unarmed.
func (r *CharacterRig[T]) Weapon() (tex T, x, y, angle float64, ok bool) {
	if !r.body.EquippedOneHanded {
		return tex, 0, 0, 0, false
	}
	arm := r.limbs[LimbFrontArm]
	return r.weapon.For(arm.AimFacing), r.weaponX, r.weaponY, arm.Angle, true
}

func (r *CharacterRig[T]) Scale() float64 {
	return r.cfg.Scale
}

// DrainCues returns the cues raised since the last call.
func (r *CharacterRig[T]) DrainCues() []Cue {
	if len(r.cues) == 0 {
		return nil
	}
	out := make([]Cue, len(r.cues))
	copy(out, r.cues)
	r.cues = r.cues[:0]
	return out
}
