package messages

import "github.com/leap-fish/necs/esync"

// JoinRequest is sent by a client after connecting to request a tank slot.
type JoinRequest struct {
	Version    string
	PlayerName string
	Tank       string // loadout name, mirrored to the other clients
}

// JoinAccepted is sent by the server when a client's join request is accepted.
// PlayerNo selects the client's projectile id range.
type JoinAccepted struct {
	PlayerNo   int
	NetworkID  esync.NetworkId
	ServerName string
	Level      string
	TickRate   int
}

// JoinRejected is sent by the server when a client's join request is rejected.
type JoinRejected struct {
	Reason string
}

// PlayerLeft is broadcast when a player disconnects; clients kill that tank.
type PlayerLeft struct {
	PlayerNo int
}
