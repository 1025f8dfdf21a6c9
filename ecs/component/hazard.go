package component

// Hazard hurts characters overlapping it.
type Hazard struct {
	Damage int
	// DropPercentage is the share of the victim's wallet lost per hit.
	DropPercentage float64
}

var HazardComponent = NewComponent[Hazard]()
