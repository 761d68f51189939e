package protocol

import (
	"github.com/distracted-programming/tanks/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
)

// Sync ID constants - ID 1 is reserved by necs for NetworkId
const (
	SyncIDNetTank uint = 20
)

// Interpolation IDs (uint8 for WithInterpFn)
const (
	InterpIDNetTank uint8 = 20
)

// RegisterComponents registers all network components with necs for serialization.
// This must be called by both server and client before any network operations.
func RegisterComponents() error {
	if err := esync.RegisterComponent(
		SyncIDNetTank,
		netcomponents.NetTankData{},
		netcomponents.NetTank,
		esync.WithInterpFn(InterpIDNetTank, netcomponents.LerpNetTank),
	); err != nil {
		return err
	}

	return nil
}
