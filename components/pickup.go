package components

import "github.com/yohamta/donburi"

type CoinData struct {
	Points int
	BaseY  float64
}

var Coin = donburi.NewComponentType[CoinData]()

type DestructibleData struct {
	HP        int
	Explosive bool
}

var Destructible = donburi.NewComponentType[DestructibleData]()
