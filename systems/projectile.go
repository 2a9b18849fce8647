package systems

import (
	"math"

	"github.com/automoto/unexplored/components"
	cfg "github.com/automoto/unexplored/config"
	"github.com/automoto/unexplored/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// ImpactSpawner places an effect where a projectile hit terrain.
type ImpactSpawner interface {
	SpawnImpact(x, y float64)
}

// DestructibleHitter resolves a projectile striking a destructible object.
type DestructibleHitter interface {
	HitDestructible(obj *resolv.Object)
}

// Projectile travels in a straight line from the muzzle.
type Projectile struct {
	X, Y   float64 // centre
	VX, VY float64
	Angle  float64
	obj    *resolv.Object
}

// ProjectileSystem owns every live projectile.
type ProjectileSystem struct {
	cfg           cfg.ProjectileConfig
	scale         float64
	space         *resolv.Space
	impacts       ImpactSpawner
	destructibles DestructibleHitter
	sound         SoundPlayer

	live []*Projectile
}

// NewProjectileSystem wires the system to the collision space and its
// collaborators. scale is the rig scale the muzzle distance and the
// projectile box are measured against.
func NewProjectileSystem(c cfg.ProjectileConfig, scale float64, space *resolv.Space, impacts ImpactSpawner, destructibles DestructibleHitter, sound SoundPlayer) *ProjectileSystem {
	if scale <= 0 {
		scale = 1
	}
	return &ProjectileSystem{
		cfg:           c,
		scale:         scale,
		space:         space,
		impacts:       impacts,
		destructibles: destructibles,
		sound:         sound,
	}
}

// Fire spawns a projectile heading from the origin toward the target. The
// spawn point is pushed forward along the aim so the shot leaves the barrel
// rather than the shoulder. carrierVX is only added when momentum
// inheritance is enabled.
func (p *ProjectileSystem) Fire(originX, originY, targetX, targetY, carrierVX float64) *Projectile {
	angle := math.Atan2(targetY-originY, targetX-originX)
	cos, sin := math.Cos(angle), math.Sin(angle)

	vx := cos * p.cfg.Speed
	if p.cfg.InheritMomentum {
		vx += carrierVX * p.cfg.MomentumFactor
	}
	muzzle := p.cfg.MuzzleDistance * p.scale

	pr := &Projectile{
		X:     originX + cos*muzzle,
		Y:     originY + sin*muzzle,
		VX:    vx,
		VY:    sin * p.cfg.Speed,
		Angle: angle,
	}
	w, h := p.size()
	pr.obj = resolv.NewObject(pr.X-w/2, pr.Y-h/2, w, h, tags.ResolvProjectile)
	pr.obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	pr.obj.Data = pr
	p.space.Add(pr.obj)

	p.live = append(p.live, pr)
	return pr
}

func (p *ProjectileSystem) size() (w, h float64) {
	return p.cfg.Width * p.scale, p.cfg.Height * p.scale
}

// Update moves every projectile and resolves its collisions. Culling is
// measured from the player's current position, not the spawn point.
func (p *ProjectileSystem) Update(playerX, playerY float64) {
	kept := p.live[:0]
	for _, pr := range p.live {
		if p.advance(pr) && !p.culled(pr, playerX, playerY) {
			kept = append(kept, pr)
			continue
		}
		p.space.Remove(pr.obj)
	}
	clear(p.live[len(kept):])
	p.live = kept
}

// advance integrates one tick of motion in sub-steps no longer than MaxStep
// so fast shots cannot pass through a thin wall. It returns false once the
// projectile hit something. Destructibles win over terrain within a step.
func (p *ProjectileSystem) advance(pr *Projectile) bool {
	steps := 1
	if p.cfg.MaxStep > 0 {
		steps = max(1, int(math.Ceil(math.Hypot(pr.VX, pr.VY)/p.cfg.MaxStep)))
	}
	sx, sy := pr.VX/float64(steps), pr.VY/float64(steps)
	w, h := p.size()

	for range steps {
		pr.X += sx
		pr.Y += sy
		pr.obj.X = pr.X - w/2
		pr.obj.Y = pr.Y - h/2
		pr.obj.Update()

		if hit := overlapping(pr.obj, tags.ResolvDestructible); hit != nil {
			p.destructibles.HitDestructible(hit)
			return false
		}
		if hit := overlapping(pr.obj, tags.ResolvSolid); hit != nil {
			p.impacts.SpawnImpact(pr.X, pr.Y)
			p.sound.Play(cfg.SoundImpact)
			return false
		}
	}
	return true
}

func (p *ProjectileSystem) culled(pr *Projectile, playerX, playerY float64) bool {
	d := p.cfg.CullDistance
	return pr.X > playerX+d || pr.X < playerX-d || pr.Y > playerY+d || pr.Y < playerY-d
}

// overlapping returns the first object with the tag whose box intersects obj.
func overlapping(obj *resolv.Object, tag string) *resolv.Object {
	check := obj.Check(0, 0, tag)
	if check == nil {
		return nil
	}
	for _, o := range check.ObjectsByTags(tag) {
		if components.OverlapsAt(obj, 0, 0, o) {
			return o
		}
	}
	return nil
}

func (p *ProjectileSystem) Projectiles() []*Projectile {
	return p.live
}

func (p *ProjectileSystem) Len() int {
	return len(p.live)
}

// Clear removes every projectile from the world.
func (p *ProjectileSystem) Clear() {
	for _, pr := range p.live {
		p.space.Remove(pr.obj)
	}
	clear(p.live)
	p.live = p.live[:0]
}

// NewUpdateProjectiles returns the system that advances projectiles around
// the player's current centre.
func NewUpdateProjectiles(p *ProjectileSystem) ecs.System {
	return func(e *ecs.ECS) {
		playerEntry, ok := tags.Player.First(e.World)
		if !ok {
			return
		}
		p.Update(components.Object.Get(playerEntry).Centre())
	}
}
