package combat

import "github.com/distracted-programming/tanks/shared/netconfig"

// ProjectileID identifies a projectile on the wire. Every player owns the
// contiguous range [playerNo*size, (playerNo+1)*size).
type ProjectileID int

// OwnerOf returns the player whose range contains id.
func OwnerOf(id ProjectileID) int { return netconfig.ProjectileOwner(int(id)) }

// idAllocator hands out ids from one player's range. The sequence is
// monotonic; the wire id is the sequence folded into the range.
type idAllocator struct {
	base int
	size int
	seq  uint64
}

func newIDAllocator(playerNo, size int) idAllocator {
	if size <= 0 {
		size = netconfig.MaxProjectilesPerPlayer
	}
	return idAllocator{base: playerNo * size, size: size}
}

// next returns the next id not held by a live projectile, along with the
// sequence number it was issued for. ok is false when the whole range is live.
func (a *idAllocator) next(live func(ProjectileID) bool) (id ProjectileID, seq uint64, ok bool) {
	for range a.size {
		seq = a.seq
		id = ProjectileID(a.base + int(seq%uint64(a.size)))
		a.seq++
		if !live(id) {
			return id, seq, true
		}
	}
	return 0, 0, false
}

func (a *idAllocator) contains(id ProjectileID) bool {
	return int(id) >= a.base && int(id) < a.base+a.size
}
