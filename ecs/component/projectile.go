package component

type Projectile struct{}

var ProjectileComponent = NewComponent[Projectile]()
