package systems

import (
	"fmt"
	"math"
	"testing"

	cfg "github.com/automoto/unexplored/config"
	"github.com/automoto/unexplored/tags"
	"github.com/solarlune/resolv"
)

type fakeImpacts struct{ hits [][2]float64 }

func (f *fakeImpacts) SpawnImpact(x, y float64) { f.hits = append(f.hits, [2]float64{x, y}) }

type fakeHitter struct{ hit []*resolv.Object }

func (f *fakeHitter) HitDestructible(obj *resolv.Object) { f.hit = append(f.hit, obj) }

type fakeSound struct{ played []cfg.SoundID }

func (f *fakeSound) Play(id cfg.SoundID) { f.played = append(f.played, id) }

type projectileFixture struct {
	space   *resolv.Space
	impacts *fakeImpacts
	hitter  *fakeHitter
	sound   *fakeSound
	sys     *ProjectileSystem
}

func newProjectileFixture(maxStep float64) *projectileFixture {
	f := &projectileFixture{
		space:   resolv.NewSpace(4000, 1000, 16, 16),
		impacts: &fakeImpacts{},
		hitter:  &fakeHitter{},
		sound:   &fakeSound{},
	}
	f.sys = NewProjectileSystem(cfg.ProjectileConfig{
		Speed:          50,
		MuzzleDistance: 16,
		Width:          8,
		Height:         4,
		CullDistance:   2000,
		MomentumFactor: 1,
		MaxStep:        maxStep,
	}, 1, f.space, f.impacts, f.hitter, f.sound)
	return f
}

func (f *projectileFixture) add(x, y, w, h float64, tag string) *resolv.Object {
	obj := resolv.NewObject(x, y, w, h, tag)
	f.space.Add(obj)
	return obj
}

func TestFireHorizontal(t *testing.T) {
	f := newProjectileFixture(12)
	pr := f.sys.Fire(100, 100, 300, 100, 7)

	if math.Abs(pr.VX-50) > 1e-9 || math.Abs(pr.VY) > 1e-9 {
		t.Errorf("expected velocity (50,0), got (%v,%v)", pr.VX, pr.VY)
	}
	if math.Abs(pr.X-116) > 1e-9 || math.Abs(pr.Y-100) > 1e-9 {
		t.Errorf("expected muzzle at (116,100), got (%v,%v)", pr.X, pr.Y)
	}
	if pr.Angle != 0 {
		t.Errorf("expected angle 0, got %v", pr.Angle)
	}
	if f.sys.Len() != 1 {
		t.Errorf("expected 1 projectile, got %d", f.sys.Len())
	}
}

func TestFireInheritsMomentumWhenEnabled(t *testing.T) {
	f := newProjectileFixture(12)
	f.sys.cfg.InheritMomentum = true
	pr := f.sys.Fire(100, 100, 100, 300, 9)

	if math.Abs(pr.VX-9) > 1e-9 || math.Abs(pr.VY-50) > 1e-9 {
		t.Errorf("expected velocity (9,50), got (%v,%v)", pr.VX, pr.VY)
	}
}

func TestProjectileTravelsSpeedPerTick(t *testing.T) {
	for _, maxStep := range []float64{12, 0} {
		t.Run(fmt.Sprintf("max step %v", maxStep), func(t *testing.T) {
			f := newProjectileFixture(maxStep)
			pr := f.sys.Fire(100, 100, 300, 100, 0)

			const ticks = 10
			for i := 0; i < ticks; i++ {
				f.sys.Update(100+float64(i)*4.6, 100)
			}

			if f.sys.Len() != 1 {
				t.Fatalf("expected the projectile in flight, got %d", f.sys.Len())
			}
			if want := 116 + 50.0*ticks; math.Abs(pr.X-want) > 1e-6 {
				t.Errorf("expected x %v, got %v", want, pr.X)
			}
			if pr.Y != 100 {
				t.Errorf("expected y 100, got %v", pr.Y)
			}
		})
	}
}

func TestProjectileCulledAroundCurrentPlayer(t *testing.T) {
	f := newProjectileFixture(12)
	f.sys.Fire(100, 100, 300, 100, 0)

	f.sys.Update(100, 100)
	if f.sys.Len() != 1 {
		t.Fatalf("expected the projectile kept near the player, got %d", f.sys.Len())
	}

	// The shooter ran far ahead of the shot.
	f.sys.Update(3000, 100)
	if f.sys.Len() != 0 {
		t.Errorf("expected the projectile culled, got %d", f.sys.Len())
	}
	if len(f.impacts.hits) != 0 {
		t.Errorf("expected no impact for a culled shot, got %d", len(f.impacts.hits))
	}
}

func TestProjectileHitsThinWallBetweenTicks(t *testing.T) {
	tests := []struct {
		name    string
		maxStep float64
		hit     bool
	}{
		{"sub-stepped", 12, true},
		{"single step tunnels", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newProjectileFixture(tt.maxStep)
			f.add(150, 50, 4, 100, tags.ResolvSolid)
			f.sys.Fire(100, 100, 300, 100, 0)

			f.sys.Update(100, 100)

			if got := len(f.impacts.hits) == 1; got != tt.hit {
				t.Fatalf("expected impact %v, got %d impacts", tt.hit, len(f.impacts.hits))
			}
			if tt.hit {
				if f.sys.Len() != 0 {
					t.Errorf("expected the projectile removed, got %d", f.sys.Len())
				}
				if len(f.sound.played) != 1 || f.sound.played[0] != cfg.SoundImpact {
					t.Errorf("expected the impact sound, got %v", f.sound.played)
				}
			}
		})
	}
}

func TestProjectilePrefersDestructibleOverTerrain(t *testing.T) {
	f := newProjectileFixture(12)
	f.add(150, 50, 4, 100, tags.ResolvSolid)
	barrel := f.add(150, 80, 24, 40, tags.ResolvDestructible)
	f.sys.Fire(100, 100, 300, 100, 0)

	f.sys.Update(100, 100)

	if len(f.hitter.hit) != 1 || f.hitter.hit[0] != barrel {
		t.Fatalf("expected the barrel hit once, got %v", f.hitter.hit)
	}
	if len(f.impacts.hits) != 0 {
		t.Errorf("expected no terrain impact, got %d", len(f.impacts.hits))
	}
	if f.sys.Len() != 0 {
		t.Errorf("expected the projectile removed, got %d", f.sys.Len())
	}
}

func TestProjectileClear(t *testing.T) {
	f := newProjectileFixture(12)
	f.sys.Fire(100, 100, 300, 100, 0)
	f.sys.Fire(100, 100, 300, 200, 0)
	f.sys.Clear()

	if f.sys.Len() != 0 {
		t.Errorf("expected no projectiles, got %d", f.sys.Len())
	}
	f.sys.Update(100, 100)
	if len(f.impacts.hits)+len(f.hitter.hit) != 0 {
		t.Error("expected cleared projectiles to hit nothing")
	}
}
