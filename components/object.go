package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// Centre returns the middle of the collision box.
func (o ObjectData) Centre() (x, y float64) {
	return o.X + o.W/2, o.Y + o.H/2
}

// OverlapsAt tests a moved by (dx, dy) against b. Unlike resolv's
// Object.Overlaps, boxes that only share an edge do not overlap, so a body
// resting on the floor or standing beside a ladder is not inside it.
func OverlapsAt(a *resolv.Object, dx, dy float64, b *resolv.Object) bool {
	ax, ay := a.X+dx, a.Y+dy
	return ax < b.X+b.W && ax+a.W > b.X && ay < b.Y+b.H && ay+a.H > b.Y
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()
