package component

// WhiteFlash blinks an entity white every Interval frames while its
// controller is invincible.
type WhiteFlash struct {
	Interval int
	Timer    int
	On       bool
}

var WhiteFlashComponent = NewComponent[WhiteFlash]()
