package messages

// ProjectileAdd announces a projectile fired by Owner. ID lies in the owner's
// private id range.
type ProjectileAdd struct {
	ID    int
	Owner int
	X, Y  float64
	Angle float64
}

// ProjectileRemove announces that a projectile hit something or left the field.
type ProjectileRemove struct {
	ID    int
	Owner int
}
