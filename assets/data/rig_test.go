package data

import (
	"errors"
	"fmt"
	"testing"

	"github.com/automoto/unexplored/rig"
)

func TestEmbeddedRigParses(t *testing.T) {
	spec, err := LoadRig()
	if err != nil {
		t.Fatalf("expected embedded rig to parse, got %v", err)
	}
	if spec.WeaponReach != 10 {
		t.Errorf("expected weapon reach 10, got %v", spec.WeaponReach)
	}
	if spec.Weapon == "" {
		t.Error("expected a weapon image")
	}

	head, err := spec.OffsetTable("head")
	if err != nil {
		t.Fatalf("expected head offsets, got %v", err)
	}
	arm, err := spec.OffsetTable("arm")
	if err != nil {
		t.Fatalf("expected arm offsets, got %v", err)
	}
	if got := head.At(rig.PoseRun, 2); got != (rig.Offset{X: 16, Y: 23}) {
		t.Errorf("expected run frame 2 head offset (16,23), got %+v", got)
	}
	if got := arm.At(rig.PoseIdleToJump, 6); got != (rig.Offset{X: 2, Y: 30}) {
		t.Errorf("expected arm to share the head table, got %+v", got)
	}
}

// The embedded layout must satisfy the rig's startup validation with the
// default timings, otherwise the game refuses to start.
func TestEmbeddedRigBuildsAValidRig(t *testing.T) {
	spec, err := LoadRig()
	if err != nil {
		t.Fatal(err)
	}
	head, _ := spec.OffsetTable("head")
	arm, _ := spec.OffsetTable("arm")

	var limbs [rig.LimbCount]rig.LimbConfig[string]
	for id := rig.LimbID(0); id < rig.LimbCount; id++ {
		l := spec.Limb(id)
		mode, err := l.AimMode()
		if err != nil {
			t.Fatal(err)
		}
		set := rig.NewDirectionalTextureSet[string]()
		if l.Sheet != nil {
			for _, row := range l.Sheet.Rows {
				pose, _ := rig.ParsePose(row.Pose)
				set.Set(pose, stringFrames(fmt.Sprintf("%s/%d", l.Sheet.Path, row.Row), row.Frames)...)
			}
		}
		if l.Firing != nil {
			set.Set(rig.PoseFiring, stringFrames(l.Firing.Path, l.Firing.Frames)...)
		}
		cfg := rig.LimbConfig[string]{ID: id, Textures: set, AimMode: mode, CanFire: l.Firing != nil}
		if l.AimImage != "" {
			cfg.AimPair = rig.TexturePair[string]{l.AimImage + ":r", l.AimImage + ":l"}
		}
		limbs[id] = cfg
	}

	_, err = rig.New(rig.Config{
		Scale:       2,
		Timings:     rig.DefaultTimings(10, 3),
		HeadOffsets: head,
		ArmOffsets:  arm,
		WeaponReach: spec.WeaponReach,
	}, limbs, rig.TexturePair[string]{"glock:r", "glock:l"})
	if err != nil {
		t.Errorf("expected a valid rig, got %v", err)
	}
}

func stringFrames(prefix string, n int) []rig.TexturePair[string] {
	out := make([]rig.TexturePair[string], n)
	for i := range out {
		out[i] = rig.TexturePair[string]{fmt.Sprintf("%s#%d:r", prefix, i), fmt.Sprintf("%s#%d:l", prefix, i)}
	}
	return out
}

func TestParseRigRejects(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		missing bool
	}{
		{
			name:    "missing limb",
			yaml:    "limbs: {legs: {}, body: {}, head: {}, front_arm: {}}",
			missing: true,
		},
		{
			name: "unknown limb",
			yaml: "limbs: {legs: {}, back_arm: {}, body: {}, head: {}, front_arm: {}, tail: {}}",
		},
		{
			name: "unknown pose row",
			yaml: "limbs: {legs: {sheet: {rows: [{pose: swim, row: 0, frames: 1}]}}, back_arm: {}, body: {}, head: {}, front_arm: {}}",
		},
		{
			name: "empty row",
			yaml: "limbs: {legs: {sheet: {rows: [{pose: idle, row: 0, frames: 0}]}}, back_arm: {}, body: {}, head: {}, front_arm: {}}",
		},
		{
			name: "bad yaml",
			yaml: "limbs: [",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRig([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected an error, got nil")
			}
			if tt.missing && !errors.Is(err, rig.ErrAssetMissing) {
				t.Errorf("expected ErrAssetMissing, got %v", err)
			}
		})
	}
}

func TestOffsetTableErrors(t *testing.T) {
	spec, err := ParseRig([]byte(`
limbs: {legs: {}, back_arm: {}, body: {}, head: {}, front_arm: {}}
offsets:
  head:
    hop: [{x: 1, y: 1}]
`))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := spec.OffsetTable("arm"); !errors.Is(err, rig.ErrAssetMissing) {
		t.Errorf("expected ErrAssetMissing for absent table, got %v", err)
	}
	if _, err := spec.OffsetTable("head"); err == nil {
		t.Error("expected an error for an unknown pose key")
	}
}

func TestAimMode(t *testing.T) {
	tests := []struct {
		in   string
		want rig.AimMode
		err  bool
	}{
		{"", rig.AimNone, false},
		{"none", rig.AimNone, false},
		{"always", rig.AimAlways, false},
		{"armed", rig.AimWhenArmed, false},
		{"sometimes", rig.AimNone, true},
	}
	for _, tt := range tests {
		got, err := LimbSpec{Aim: tt.in}.AimMode()
		if (err != nil) != tt.err {
			t.Errorf("%q: expected error %v, got %v", tt.in, tt.err, err)
		}
		if got != tt.want {
			t.Errorf("%q: expected %v, got %v", tt.in, tt.want, got)
		}
	}
}
