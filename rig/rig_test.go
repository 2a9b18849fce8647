package rig

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

const testU = 10

func pair(name string) TexturePair[string] {
	return TexturePair[string]{name + "/r", name + "/l"}
}

func frames(limb LimbID, pose PoseID, n int) []TexturePair[string] {
	out := make([]TexturePair[string], n)
	for i := range out {
		out[i] = pair(fmt.Sprintf("%s/%s/%d", limb, pose, i))
	}
	return out
}

func testTimings() Timings {
	return DefaultTimings(testU, 3)
}

func fullTable(timings Timings, x, y float64) *OffsetTable {
	t := NewOffsetTable()
	for _, p := range []PoseID{PoseIdle, PoseWalk, PoseRun, PoseClimb, PoseIdleToJump} {
		row := make([]Offset, timings[p].Frames)
		for i := range row {
			row[i] = Offset{X: x, Y: y}
		}
		t.Set(p, row...)
	}
	return t
}

func testLimbs(timings Timings) [LimbCount]LimbConfig[string] {
	var limbs [LimbCount]LimbConfig[string]
	for id := LimbID(0); id < LimbCount; id++ {
		set := NewDirectionalTextureSet[string]()
		for _, p := range []PoseID{PoseIdle, PoseWalk, PoseRun, PoseClimb, PoseIdleToJump} {
			set.Set(p, frames(id, p, timings[p].Frames)...)
		}
		limbs[id] = LimbConfig[string]{ID: id, Textures: set}
	}
	limbs[LimbHead] = LimbConfig[string]{ID: LimbHead, AimPair: pair("head"), AimMode: AimAlways}
	limbs[LimbFrontArm].AimMode = AimWhenArmed
	limbs[LimbFrontArm].AimPair = pair("front_arm/hold")
	limbs[LimbFrontArm].CanFire = true
	limbs[LimbFrontArm].Textures.Set(PoseFiring, frames(LimbFrontArm, PoseFiring, timings[PoseFiring].Frames)...)
	return limbs
}

func newTestRig(t *testing.T) *CharacterRig[string] {
	t.Helper()
	timings := testTimings()
	r, err := New(Config{
		Scale:       1,
		Timings:     timings,
		HeadOffsets: fullTable(timings, 1, 23),
		ArmOffsets:  fullTable(timings, 1, 23),
	}, testLimbs(timings), pair("glock"))
	if err != nil {
		t.Fatalf("unexpected error building rig: %v", err)
	}
	return r
}

func idle() PhysicsResult { return PhysicsResult{} }

func TestNewRejectsMissingAssets(t *testing.T) {
	timings := testTimings()

	tests := []struct {
		name   string
		mutate func(limbs *[LimbCount]LimbConfig[string], head, arm *OffsetTable)
	}{
		{"missing idle frames", func(l *[LimbCount]LimbConfig[string], _, _ *OffsetTable) {
			l[LimbLegs].Textures.Set(PoseIdle)
		}},
		{"short jump sequence", func(l *[LimbCount]LimbConfig[string], _, _ *OffsetTable) {
			l[LimbBody].Textures.Set(PoseIdleToJump, frames(LimbBody, PoseIdleToJump, 15)...)
		}},
		{"too many run frames", func(l *[LimbCount]LimbConfig[string], _, _ *OffsetTable) {
			l[LimbBackArm].Textures.Set(PoseRun, frames(LimbBackArm, PoseRun, 6)...)
		}},
		{"empty texture in pair", func(l *[LimbCount]LimbConfig[string], _, _ *OffsetTable) {
			f := frames(LimbBody, PoseWalk, 9)
			f[4][FacingLeft] = ""
			l[LimbBody].Textures.Set(PoseWalk, f...)
		}},
		{"missing firing frames", func(l *[LimbCount]LimbConfig[string], _, _ *OffsetTable) {
			l[LimbFrontArm].Textures.Set(PoseFiring)
		}},
		{"missing head pair", func(l *[LimbCount]LimbConfig[string], _, _ *OffsetTable) {
			l[LimbHead].AimPair = TexturePair[string]{}
		}},
		{"short head offsets", func(_ *[LimbCount]LimbConfig[string], head, _ *OffsetTable) {
			head.Set(PoseWalk, make([]Offset, 8)...)
		}},
		{"missing arm idle offset", func(_ *[LimbCount]LimbConfig[string], _, arm *OffsetTable) {
			arm.Set(PoseIdle)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limbs := testLimbs(timings)
			head := fullTable(timings, 1, 23)
			arm := fullTable(timings, 1, 23)
			tt.mutate(&limbs, head, arm)

			_, err := New(Config{Scale: 1, Timings: timings, HeadOffsets: head, ArmOffsets: arm}, limbs, pair("glock"))
			if !errors.Is(err, ErrAssetMissing) {
				t.Errorf("expected ErrAssetMissing, got %v", err)
			}
		})
	}
}

func TestNewAllowsFewerRunFrames(t *testing.T) {
	timings := testTimings()
	limbs := testLimbs(timings)
	limbs[LimbLegs].Textures.Set(PoseRun, frames(LimbLegs, PoseRun, 3)...)

	r, err := New(Config{
		Scale:       1,
		Timings:     timings,
		HeadOffsets: fullTable(timings, 0, 0),
		ArmOffsets:  fullTable(timings, 0, 0),
	}, limbs, pair("glock"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r.UpdateIntent(1, 0, true, false)
	seen := map[string]bool{}
	for i := 0; i < 5*testU; i++ {
		r.Resolve(PhysicsResult{VelocityX: 9.3}, 100, 0)
		seen[r.Limb(LimbLegs).Texture()] = true
		if r.Limb(LimbBody).Frame() >= 3 && r.Limb(LimbLegs).Texture() != "legs/run/0/r" {
			t.Fatalf("expected legs to clamp to run frame 0, got %s", r.Limb(LimbLegs).Texture())
		}
	}
	if len(seen) != 3 {
		t.Errorf("expected 3 distinct leg textures, got %d", len(seen))
	}
}

func TestFacingHysteresis(t *testing.T) {
	tests := []struct {
		name string
		vxs  []float64
		want Facing
	}{
		{"starts right", nil, FacingRight},
		{"zero keeps right", []float64{0, 0}, FacingRight},
		{"negative flips left", []float64{-1}, FacingLeft},
		{"zero after left keeps left", []float64{-1, 0, 0}, FacingLeft},
		{"positive flips back", []float64{-1, 0, 2}, FacingRight},
		{"tiny positive flips", []float64{-4.6, 0.0001}, FacingRight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRig(t)
			r.Resolve(idle(), 100, 0)
			for _, vx := range tt.vxs {
				r.Resolve(PhysicsResult{VelocityX: vx}, 100, 0)
			}
			if got := r.Body().Facing; got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestStatePriority(t *testing.T) {
	tests := []struct {
		name      string
		res       PhysicsResult
		sprinting bool
		want      State
		pose      PoseID
	}{
		{"idle", PhysicsResult{}, false, StateIdle, PoseIdle},
		{"walking", PhysicsResult{VelocityX: 4.6}, false, StateWalking, PoseWalk},
		{"running", PhysicsResult{VelocityX: 9.3}, true, StateRunning, PoseRun},
		{"idle beats sprint", PhysicsResult{}, true, StateIdle, PoseIdle},
		{"airborne", PhysicsResult{VelocityX: 4.6, VelocityY: -20}, true, StateJumpTransition, PoseIdleToJump},
		{"falling", PhysicsResult{VelocityY: 3}, false, StateJumpTransition, PoseIdleToJump},
		{"ladder beats airborne", PhysicsResult{VelocityY: -4.6, OnLadder: true}, false, StateClimbing, PoseClimb},
		{"still on ladder", PhysicsResult{OnLadder: true}, false, StateClimbing, PoseClimb},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRig(t)
			r.UpdateIntent(0, 0, tt.sprinting, false)
			r.Resolve(tt.res, 100, 0)
			for _, id := range []LimbID{LimbBody, LimbLegs, LimbBackArm, LimbFrontArm} {
				l := r.Limb(id)
				if l.State() != tt.want {
					t.Errorf("%s: expected state %s, got %s", id, tt.want, l.State())
				}
				if l.Pose() != tt.pose {
					t.Errorf("%s: expected pose %s, got %s", id, tt.pose, l.Pose())
				}
			}
		})
	}
}

func TestLimbsAdvanceInLockstep(t *testing.T) {
	r := newTestRig(t)
	r.UpdateIntent(1, 0, false, false)
	for i := 0; i < 200; i++ {
		r.Resolve(PhysicsResult{VelocityX: 4.6}, 100, 0)
		body := r.Limb(LimbBody)
		for _, id := range []LimbID{LimbLegs, LimbBackArm, LimbFrontArm} {
			if r.Limb(id).Frame() != body.Frame() {
				t.Fatalf("tick %d: %s frame %d, body frame %d", i, id, r.Limb(id).Frame(), body.Frame())
			}
		}
		if want := fmt.Sprintf("body/walk/%d/r", body.Frame()); body.Texture() != want {
			t.Fatalf("tick %d: expected %s, got %s", i, want, body.Texture())
		}
	}
}

func TestClimbAdvancesOnlyWhenMoving(t *testing.T) {
	r := newTestRig(t)
	for i := 0; i < 10; i++ {
		r.Resolve(PhysicsResult{OnLadder: true, VelocityY: 0.5}, 100, 0)
	}
	if tick := r.Limb(LimbBody).Tick(); tick != 0 {
		t.Errorf("expected climb counter to stay at 0, got %d", tick)
	}
	for i := 0; i < 4; i++ {
		r.Resolve(PhysicsResult{OnLadder: true, VelocityY: -4.6}, 100, 0)
	}
	if f := r.Limb(LimbBody).Frame(); f != 1 {
		t.Errorf("expected climb frame 1 after 4 ticks, got %d", f)
	}
}

func TestFiringIsSticky(t *testing.T) {
	r := newTestRig(t)
	r.ToggleWeapon()
	r.Resolve(idle(), 100, 0)

	if !r.Fire() {
		t.Fatal("expected fire to start while armed")
	}
	if r.Fire() {
		t.Error("expected second fire during sequence to be a no-op")
	}

	timing := testTimings()[PoseFiring]
	total := timing.Frames * timing.TicksPerFrame
	inputs := []PhysicsResult{
		{VelocityX: 4.6},
		{VelocityY: -25},
		{OnLadder: true, VelocityY: -4.6},
		{},
	}
	var frames []int
	for i := 0; i < total; i++ {
		r.UpdateIntent(0, 0, i%2 == 0, false)
		r.Resolve(inputs[i%len(inputs)], 100, 0)
		arm := r.Limb(LimbFrontArm)
		if arm.State() != StateFiring {
			t.Fatalf("tick %d: expected firing, got %s", i, arm.State())
		}
		frames = append(frames, arm.Frame())
	}
	for f := 0; f < timing.Frames; f++ {
		count := 0
		for _, got := range frames {
			if got == f {
				count++
			}
		}
		if count != timing.TicksPerFrame {
			t.Errorf("expected firing frame %d for %d ticks, got %d (%v)", f, timing.TicksPerFrame, count, frames)
		}
	}

	r.Resolve(idle(), 100, 0)
	if s := r.Limb(LimbFrontArm).State(); s != StateIdle {
		t.Errorf("expected idle after the sequence, got %s", s)
	}
	if r.Body().Firing {
		t.Error("expected body firing flag to clear")
	}
	if !r.Fire() {
		t.Error("expected fire to be accepted again")
	}
}

func TestFireRequiresWeapon(t *testing.T) {
	r := newTestRig(t)
	r.Resolve(idle(), 100, 0)
	if r.Fire() {
		t.Error("expected fire to be refused while unarmed")
	}
	if cues := r.DrainCues(); len(cues) != 0 {
		t.Errorf("expected no cues, got %v", cues)
	}
}

func TestToggleWeaponRoundTrip(t *testing.T) {
	r := newTestRig(t)
	r.Resolve(idle(), 100, 0)

	arm := r.Limb(LimbFrontArm)
	back := r.Limb(LimbBackArm)
	frontBefore, _ := arm.Equipped()
	backBefore, _ := back.Equipped()
	texBefore := arm.Texture()
	poseBefore := arm.Pose()

	r.ToggleWeapon()
	if on, _ := arm.Equipped(); on == frontBefore {
		t.Fatal("expected toggle to cascade to the front arm")
	}
	if on, _ := back.Equipped(); on == backBefore {
		t.Fatal("expected toggle to cascade to the back arm")
	}
	if arm.Texture() != "front_arm/hold/r" {
		t.Errorf("expected armed texture, got %s", arm.Texture())
	}

	r.ToggleWeapon()
	r.Resolve(idle(), 100, 0)
	if on, _ := arm.Equipped(); on != frontBefore {
		t.Errorf("expected front arm equip %v, got %v", frontBefore, on)
	}
	if on, _ := back.Equipped(); on != backBefore {
		t.Errorf("expected back arm equip %v, got %v", backBefore, on)
	}
	if arm.Pose() != poseBefore || arm.Texture() != texBefore {
		t.Errorf("expected %s/%s, got %s/%s", poseBefore, texBefore, arm.Pose(), arm.Texture())
	}
}

func TestAimSetsAngleAndFacing(t *testing.T) {
	tests := []struct {
		name       string
		tx, ty     float64
		wantFacing Facing
		wantTex    string
	}{
		{"target right", 500, -23, FacingRight, "head/r"},
		{"target left", -500, -23, FacingLeft, "head/l"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRig(t)
			r.Resolve(idle(), tt.tx, tt.ty)
			head := r.Limb(LimbHead)
			if head.AimFacing != tt.wantFacing {
				t.Errorf("expected facing %s, got %s", tt.wantFacing, head.AimFacing)
			}
			if head.Texture() != tt.wantTex {
				t.Errorf("expected texture %s, got %s", tt.wantTex, head.Texture())
			}
		})
	}

	r := newTestRig(t)
	r.Resolve(idle(), -100, 0)
	head := r.Limb(LimbHead)
	// Straight above the head keeps the previous aim facing.
	r.Resolve(idle(), head.X, -500)
	if head.AimFacing != FacingLeft {
		t.Errorf("expected facing to stay left, got %s", head.AimFacing)
	}
}

func TestHeadOffsets(t *testing.T) {
	tests := []struct {
		name   string
		facing Facing
		moving bool
		aimX   float64
		wantX  float64
	}{
		{"right idle forward", FacingRight, false, 1000, 1 - 2},
		{"right idle back", FacingRight, false, -1000, 1},
		{"right moving forward", FacingRight, true, 1000, 1},
		{"right moving back", FacingRight, true, -1000, 1 + 2},
		{"left idle forward", FacingLeft, false, 1000, -1},
		{"left idle back", FacingLeft, false, -1000, -1 + 2},
		{"left moving forward", FacingLeft, true, 1000, -1 - 2},
		{"left moving back", FacingLeft, true, -1000, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRig(t)
			if tt.facing == FacingLeft {
				r.Resolve(PhysicsResult{VelocityX: -1}, 0, 0)
			}
			res := PhysicsResult{}
			if tt.moving {
				res.VelocityX = tt.facing.Sign() * 4.6
			}
			r.Resolve(res, tt.aimX, -23)
			head := r.Limb(LimbHead)
			if math.Abs(head.X-tt.wantX) > 1e-9 {
				t.Errorf("expected head x %v, got %v", tt.wantX, head.X)
			}
			if head.Y != -23 {
				t.Errorf("expected head y -23, got %v", head.Y)
			}
		})
	}
}

func TestFrontArmOffsets(t *testing.T) {
	tests := []struct {
		name      string
		facing    Facing
		sprinting bool
		aimX      float64
		wantX     float64
	}{
		{"right walk forward", FacingRight, false, 1000, 1 - 4},
		{"right walk back", FacingRight, false, -1000, 1 - 3 - 4},
		{"right sprint forward", FacingRight, true, 1000, 1 - 2 - 4},
		{"right sprint back", FacingRight, true, -1000, 1 - 3 - 4},
		{"left walk forward", FacingLeft, false, 1000, -1 + 4},
		{"left walk back", FacingLeft, false, -1000, -1 + 4},
		{"left sprint forward", FacingLeft, true, 1000, -1 + 2 + 4},
		{"left sprint back", FacingLeft, true, -1000, -1 + 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRig(t)
			r.ToggleWeapon()
			r.UpdateIntent(0, 0, tt.sprinting, false)
			r.Resolve(PhysicsResult{VelocityX: tt.facing.Sign() * 4.6}, tt.aimX, -16)
			arm := r.Limb(LimbFrontArm)
			if math.Abs(arm.X-tt.wantX) > 1e-9 {
				t.Errorf("expected arm x %v, got %v", tt.wantX, arm.X)
			}
			if arm.Y != -23+7 {
				t.Errorf("expected arm y %v, got %v", -23+7, arm.Y)
			}
		})
	}
}

func TestUnarmedFrontArmHugsBody(t *testing.T) {
	r := newTestRig(t)
	r.Resolve(PhysicsResult{X: 50, Y: 50}, 1000, -1000)
	arm := r.Limb(LimbFrontArm)
	if arm.X != 49 || arm.Y != 51 || arm.Angle != 0 {
		t.Errorf("expected (49, 51, 0), got (%v, %v, %v)", arm.X, arm.Y, arm.Angle)
	}
	r.Resolve(PhysicsResult{X: 50, Y: 50, VelocityX: -1}, 1000, -1000)
	if arm.X != 51 {
		t.Errorf("expected x 51 facing left, got %v", arm.X)
	}
}

func TestWeaponFollowsArm(t *testing.T) {
	r := newTestRig(t)
	if _, _, _, _, ok := r.Weapon(); ok {
		t.Fatal("expected no weapon while unarmed")
	}
	r.ToggleWeapon()
	r.Resolve(idle(), 1000, -16)
	tex, x, y, angle, ok := r.Weapon()
	if !ok {
		t.Fatal("expected weapon while armed")
	}
	arm := r.Limb(LimbFrontArm)
	if tex != "glock/r" {
		t.Errorf("expected glock/r, got %s", tex)
	}
	if math.Abs(x-(arm.X+10*math.Cos(angle))) > 1e-9 || math.Abs(y-(arm.Y+10*math.Sin(angle))) > 1e-9 {
		t.Errorf("expected weapon 10px along the arm, got (%v, %v) from (%v, %v)", x, y, arm.X, arm.Y)
	}
}

func TestFootstepAndJumpCues(t *testing.T) {
	r := newTestRig(t)
	r.UpdateIntent(1, 0, true, false)
	run := 0
	for i := 0; i < 5*testU; i++ {
		r.Resolve(PhysicsResult{VelocityX: 9.3}, 100, 0)
		for _, c := range r.DrainCues() {
			if c == CueFootstepRun {
				run++
			}
		}
	}
	if run != 2 {
		t.Errorf("expected 2 run footsteps per cycle, got %d", run)
	}

	r.UpdateIntent(0, -1, false, true)
	r.Resolve(PhysicsResult{VelocityY: -25, CanJump: true}, 100, 0)
	cues := r.DrainCues()
	if len(cues) != 1 || cues[0] != CueJump {
		t.Errorf("expected a jump cue, got %v", cues)
	}
}

func TestResetKeepsWeapon(t *testing.T) {
	r := newTestRig(t)
	r.ToggleWeapon()
	r.Resolve(PhysicsResult{VelocityX: -4.6}, -100, 0)
	r.Reset(250, 100)

	b := r.Body()
	if !b.EquippedOneHanded {
		t.Error("expected weapon to stay equipped")
	}
	if b.Facing != FacingRight {
		t.Errorf("expected facing right after reset, got %s", b.Facing)
	}
	if x, y := r.Position(); x != 250 || y != 100 {
		t.Errorf("expected (250, 100), got (%v, %v)", x, y)
	}
}

func TestPartsBuildIndependentRigs(t *testing.T) {
	timings := testTimings()
	parts := &Parts[string]{
		HeadOffsets: fullTable(timings, 1, 23),
		ArmOffsets:  fullTable(timings, 1, 23),
		Limbs:       testLimbs(timings),
		Weapon:      pair("glock"),
	}

	a, err := parts.Build(1, timings)
	if err != nil {
		t.Fatalf("unexpected error building rig: %v", err)
	}
	b, err := parts.Build(1, timings)
	if err != nil {
		t.Fatalf("unexpected error building rig: %v", err)
	}
	if a == b {
		t.Fatal("expected two rigs")
	}
	for id := LimbID(0); id < LimbCount; id++ {
		if a.Limb(id).cfg.Textures != b.Limb(id).cfg.Textures {
			t.Errorf("expected %s to share its texture set", id)
		}
	}

	a.ToggleWeapon()
	a.UpdateIntent(1, 0, false, false)
	for i := 0; i < 3; i++ {
		a.Resolve(PhysicsResult{VelocityX: 4.6}, 100, 0)
	}

	if b.Body().EquippedOneHanded {
		t.Error("expected the second rig unarmed")
	}
	if got := b.Limb(LimbLegs).Tick(); got != 0 {
		t.Errorf("expected the second rig at tick 0, got %d", got)
	}
	if got := a.Limb(LimbLegs).Tick(); got != 3 {
		t.Errorf("expected the first rig at tick 3, got %d", got)
	}
}
