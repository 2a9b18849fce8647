package systems

import (
	"github.com/automoto/unexplored/components"
	cfg "github.com/automoto/unexplored/config"
	"github.com/automoto/unexplored/logger"
	"github.com/automoto/unexplored/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// NewUpdateCheckpoints returns the system that activates checkpoints the
// player walks through. The latest one becomes the respawn point.
func NewUpdateCheckpoints(sound SoundPlayer) ecs.System {
	return func(e *ecs.ECS) {
		playerEntry, ok := tags.Player.First(e.World)
		if !ok {
			return
		}
		playerObj := components.Object.Get(playerEntry)

		check := playerObj.Check(0, 0, tags.ResolvCheckpoint)
		if check == nil {
			return
		}

		for _, o := range check.ObjectsByTags(tags.ResolvCheckpoint) {
			if !playerObj.Overlaps(o) {
				continue
			}
			entry, ok := o.Data.(*donburi.Entry)
			if !ok || entry == nil || !entry.Valid() {
				continue
			}
			activateCheckpoint(e, entry, sound)
		}
	}
}

func activateCheckpoint(e *ecs.ECS, entry *donburi.Entry, sound SoundPlayer) {
	checkpoint := components.Checkpoint.Get(entry)
	if checkpoint.Activated {
		return
	}
	checkpoint.Activated = true

	level, ok := currentLevel(e)
	if !ok {
		return
	}
	level.ActiveCheckpoint = &components.ActiveCheckpointData{
		SpawnX:       checkpoint.SpawnX,
		SpawnY:       checkpoint.SpawnY,
		CheckpointID: checkpoint.CheckpointID,
	}
	if player, ok := tags.Player.First(e.World); ok {
		p := components.Player.Get(player)
		p.SpawnX, p.SpawnY = checkpoint.SpawnX, checkpoint.SpawnY
	}

	sound.Play(cfg.SoundCheckpoint)
	logger.Log.Debug("checkpoint reached", zap.Int("checkpoint", checkpoint.CheckpointID))
}
