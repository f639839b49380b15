package healthgate

import "context"

//go:generate mockgen -destination=../mock/healthgate/mock_healthgate.go -package=mock_healthgate . Source

// Source supplies raw hardware subsystem snapshots for one target host.
// Implemented by the redfish adapter; constructed per target.
type Source interface {
	Power(ctx context.Context) (PowerInfo, error)
	Thermal(ctx context.Context) (ThermalInfo, error)
	Storage(ctx context.Context) (StorageInfo, error)
	Memory(ctx context.Context) (MemoryInfo, error)
	Network(ctx context.Context) (NetworkInfo, error)
	FirmwareReadiness(ctx context.Context) (FirmwareReadiness, error)
	SecurityPosture(ctx context.Context) (SecurityPosture, error)
}
