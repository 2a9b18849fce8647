package components

import "github.com/yohamta/donburi"

// HintData is a text prompt placed in the level.
type HintData struct {
	Text string
	X, Y float64 // centre
}

var Hint = donburi.NewComponentType[HintData]()

// MessageStateData is a singleton tracking the active hint
type MessageStateData struct {
	Active       *HintData
	DisplayTimer int // Frames remaining to display current hint
}

var MessageState = donburi.NewComponentType[MessageStateData]()
