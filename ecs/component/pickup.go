package component

type PickupKind string

const (
	PickupUmbrella PickupKind = "umbrella"
	PickupCoin     PickupKind = "coin"
)

// Pickup is collected when a character touches it.
type Pickup struct {
	Kind  PickupKind
	Value int
}

var PickupComponent = NewComponent[Pickup]()
