package factory

import (
	"fmt"

	"github.com/automoto/unexplored/archetypes"
	"github.com/automoto/unexplored/assets"
	"github.com/automoto/unexplored/assets/data"
	"github.com/automoto/unexplored/components"
	cfg "github.com/automoto/unexplored/config"
	"github.com/automoto/unexplored/rig"
	"github.com/automoto/unexplored/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer places the player's feet at (x, y). The collision box is
// centred on the rig body.
func CreatePlayer(ecs *ecs.ECS, x, y float64, r *rig.CharacterRig[*ebiten.Image]) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := cfg.Player.CollisionWidth, cfg.Player.CollisionHeight
	obj := resolv.NewObject(x-w/2, y-h, w, h, "character", tags.ResolvPlayer)
	addObject(ecs, player, obj)

	cx, cy := components.Object.Get(player).Centre()
	r.Reset(cx, cy)

	components.Player.SetValue(player, components.PlayerData{
		Rig:    r,
		AimX:   cx + 1,
		AimY:   cy,
		SpawnX: x,
		SpawnY: y,
	})
	components.Physics.SetValue(player, components.PhysicsData{})

	return player
}

// LoadRigParts loads the embedded rig layout and mirrors its images. The
// parts are loaded once per process and shared by every player rig.
func LoadRigParts(images *assets.ImageLoader) (*rig.Parts[*ebiten.Image], error) {
	spec, err := data.LoadRig()
	if err != nil {
		return nil, err
	}
	parts := &rig.Parts[*ebiten.Image]{WeaponReach: spec.WeaponReach}
	if parts.HeadOffsets, err = spec.OffsetTable("head"); err != nil {
		return nil, err
	}
	if parts.ArmOffsets, err = spec.OffsetTable("arm"); err != nil {
		return nil, err
	}

	for id := rig.LimbID(0); id < rig.LimbCount; id++ {
		limb, err := buildLimb(images, id, spec.Limb(id))
		if err != nil {
			return nil, fmt.Errorf("rig %s: %w", id, err)
		}
		parts.Limbs[id] = limb
	}

	// Held items rotate with the arm, so their left variant flips vertically.
	if parts.Weapon, err = images.TexturePair(spec.Weapon, assets.MirrorVertical); err != nil {
		return nil, err
	}
	return parts, nil
}

// NewRig builds a player rig over the shared parts and validates it against
// the configured timings.
func NewRig(parts *rig.Parts[*ebiten.Image]) (*rig.CharacterRig[*ebiten.Image], error) {
	return parts.Build(cfg.Rig.Scale, rig.DefaultTimings(cfg.Rig.UpdatesPerFrame, cfg.Rig.GunUpdatesPerFrame))
}

func buildLimb(images *assets.ImageLoader, id rig.LimbID, l data.LimbSpec) (rig.LimbConfig[*ebiten.Image], error) {
	mode, err := l.AimMode()
	if err != nil {
		return rig.LimbConfig[*ebiten.Image]{}, err
	}
	out := rig.LimbConfig[*ebiten.Image]{
		ID:       id,
		Textures: rig.NewDirectionalTextureSet[*ebiten.Image](),
		AimMode:  mode,
		CanFire:  l.Firing != nil,
	}

	if s := l.Sheet; s != nil {
		for _, row := range s.Rows {
			pose, _ := rig.ParsePose(row.Pose)
			frames, err := images.Strip(s.Path, s.Width, s.Height, row.Row, row.Frames, assets.MirrorHorizontal)
			if err != nil {
				return out, err
			}
			out.Textures.Set(pose, frames...)
		}
	}
	if f := l.Firing; f != nil {
		frames, err := images.Strip(f.Path, f.Width, f.Height, 0, f.Frames, assets.MirrorVertical)
		if err != nil {
			return out, err
		}
		out.Textures.Set(rig.PoseFiring, frames...)
	}
	if l.AimImage != "" {
		pair, err := images.TexturePair(l.AimImage, assets.MirrorVertical)
		if err != nil {
			return out, err
		}
		out.AimPair = pair
	}
	return out, nil
}
