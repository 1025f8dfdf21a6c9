package component

// GroundProbe is the small circle under the character's feet used to decide
// whether it stands on something.
type GroundProbe struct {
	OffsetX float64
	OffsetY float64
	Radius  float64
}

var GroundProbeComponent = NewComponent[GroundProbe]()
