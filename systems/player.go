package systems

import (
	"github.com/automoto/unexplored/components"
	cfg "github.com/automoto/unexplored/config"
	"github.com/automoto/unexplored/rig"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer turns this tick's input into rig intent and the aim target.
// It does not move anything; physics resolves the body next.
func UpdatePlayer(e *ecs.ECS) {
	input := getOrCreateInput(e)

	var camX, camY float64
	if cameraEntry, ok := components.Camera.First(e.World); ok {
		camera := components.Camera.Get(cameraEntry)
		camX, camY = camera.Position.X, camera.Position.Y
	}

	components.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		handlePlayerInput(input, player)
		player.AimX = float64(input.CursorX) + camX
		player.AimY = float64(input.CursorY) + camY
	})
}

func handlePlayerInput(input *components.InputData, player *components.PlayerData) {
	moveX, moveY := 0.0, 0.0
	if GetAction(input, cfg.ActionMoveLeft).Pressed {
		moveX--
	}
	if GetAction(input, cfg.ActionMoveRight).Pressed {
		moveX++
	}
	// World y grows downward, so climbing up is negative.
	if GetAction(input, cfg.ActionMoveUp).Pressed {
		moveY--
	}
	if GetAction(input, cfg.ActionMoveDown).Pressed {
		moveY++
	}

	player.Rig.UpdateIntent(
		moveX, moveY,
		GetAction(input, cfg.ActionSprint).Pressed,
		GetAction(input, cfg.ActionJump).JustPressed,
	)

	if GetAction(input, cfg.ActionToggleWeapon).JustPressed {
		player.Rig.ToggleWeapon()
	}
}

// NewUpdateRig returns the system that hands the resolved body to the rig,
// fires on a fresh trigger press and plays the rig's sound cues.
func NewUpdateRig(projectiles *ProjectileSystem, audio *AudioRegistry) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)
		components.Player.Each(e.World, func(entry *donburi.Entry) {
			player := components.Player.Get(entry)
			physics := components.Physics.Get(entry)
			obj := components.Object.Get(entry)

			cx, cy := obj.Centre()
			player.Rig.Resolve(rig.PhysicsResult{
				X:         cx,
				Y:         cy,
				VelocityX: physics.SpeedX,
				VelocityY: physics.SpeedY,
				OnLadder:  physics.OnLadder,
				CanJump:   physics.CanJump,
			}, player.AimX, player.AimY)

			// One shot per press, and none while the firing cycle still plays.
			if GetAction(input, cfg.ActionFire).JustPressed && player.Rig.Fire() {
				mx, my, _ := player.Rig.Muzzle()
				projectiles.Fire(mx, my, player.AimX, player.AimY, physics.SpeedX)
			}

			audio.PlayCues(player.Rig.DrainCues())
		})
	}
}
