package network

import (
	"math"

	"github.com/distracted-programming/tanks/combat"
)

const (
	sentHistorySize = 64

	// heartbeatTicks forces a resend of an unchanged state so the server's
	// copy never goes stale for long.
	heartbeatTicks = 30
)

// SentRecord is one tank state that went out on the wire.
type SentRecord struct {
	Seq   uint32
	State combat.TankState
}

// SentStates is a ring buffer of the last tank states sent to the server. It
// suppresses resending identical states every tick.
type SentStates struct {
	history   [sentHistorySize]SentRecord
	nextSeq   uint32
	last      combat.TankState
	hasLast   bool
	unchanged int
}

func NewSentStates() *SentStates {
	return &SentStates{}
}

// Changed reports whether s should be sent: it differs from the last sent
// state or the heartbeat is due.
func (ss *SentStates) Changed(s combat.TankState) bool {
	if !ss.hasLast || s != ss.last {
		return true
	}
	ss.unchanged++
	return ss.unchanged >= heartbeatTicks
}

// Record stores a state that was sent successfully.
func (ss *SentStates) Record(s combat.TankState) {
	ss.history[ss.nextSeq%sentHistorySize] = SentRecord{Seq: ss.nextSeq, State: s}
	ss.nextSeq++
	ss.last = s
	ss.hasLast = true
	ss.unchanged = 0
}

// Get retrieves a stored record by sequence number. Returns false if not found
// or if the slot has been overwritten.
func (ss *SentStates) Get(seq uint32) (SentRecord, bool) {
	r := ss.history[seq%sentHistorySize]
	if r.Seq != seq || seq >= ss.nextSeq {
		return SentRecord{}, false
	}
	return r, true
}

// NextSeq returns the sequence number the next record will get.
func (ss *SentStates) NextSeq() uint32 {
	return ss.nextSeq
}

// Last returns the most recently sent state.
func (ss *SentStates) Last() (combat.TankState, bool) {
	return ss.last, ss.hasLast
}

// Divergence is the distance between the last sent position and (x, y), the
// position the server reports for the same tank.
func (ss *SentStates) Divergence(x, y float64) float64 {
	if !ss.hasLast {
		return 0
	}
	return math.Hypot(ss.last.X-x, ss.last.Y-y)
}
