package messages

// TankState is the authoritative state of a client's own tank, sent once per
// tick. The server stores it and syncs it to every other client.
type TankState struct {
	X, Y         float64
	Angle        float64
	HP           float64
	TurretAngle  float64
	ShieldActive bool
}
