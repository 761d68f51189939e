// Package netconfig defines lightweight constants and types shared between the
// client and the relay server. It must have zero dependencies on ebiten or any
// graphics library so the dedicated server binary stays headless.
package netconfig

const (
	// GameVersion must match between client and server for a join to succeed.
	GameVersion = "1.0"

	// DefaultPort is the relay server's websocket port.
	DefaultPort = 2137

	// MaxPlayers is the number of tank slots a server hands out (player numbers 0..MaxPlayers-1).
	MaxPlayers = 4

	// MaxProjectilesPerPlayer sizes each player's private projectile id range.
	MaxProjectilesPerPlayer = 64

	// World size in pixels. Board tiles are TileSize x TileSize.
	WorldWidth  = 800
	WorldHeight = 600
	TileSize    = 50

	// DefaultTickRate is the server snapshot rate (snapshots per second).
	DefaultTickRate = 30
)

// NoOwner marks an entity that is not owned by any player.
const NoOwner = -1

// ProjectileRange returns the half-open id range [lo, hi) reserved for playerNo.
func ProjectileRange(playerNo int) (lo, hi int) {
	lo = playerNo * MaxProjectilesPerPlayer
	return lo, lo + MaxProjectilesPerPlayer
}

// ProjectileOwner returns the player number whose range contains id.
func ProjectileOwner(id int) int {
	if id < 0 {
		return NoOwner
	}
	return id / MaxProjectilesPerPlayer
}
