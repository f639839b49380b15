package protocol

import "context"

//go:generate mockgen -destination=../mock/protocol/mock_protocol.go -package=mock_protocol . Client,Detector,TaskTracker

// Client is implemented once per management protocol. DetectCapability
// and HealthCheck never return errors; every failure mode is folded into
// the returned value so fleet-wide scans survive individual bad hosts.
// PerformFirmwareUpdate is the one operation allowed to fail, with a
// typed exception.Error driving retry and fallback decisions.
type Client interface {
	Protocol() ID
	Priority() int
	DetectCapability(ctx context.Context, identity ServerIdentity, creds Credentials) Capability
	HealthCheck(ctx context.Context, identity ServerIdentity, creds Credentials) Health
	PerformFirmwareUpdate(ctx context.Context, req *UpdateRequest) (*UpdateResult, error)
	Close() error
}

// Detector is the capability-scan surface consumed by callers; satisfied
// by Manager and by DetectionCache in front of it
type Detector interface {
	Detect(ctx context.Context, identity ServerIdentity, creds Credentials) *DetectionResult
}

// TaskTracker is implemented by clients whose updates complete
// asynchronously through a pollable controller task. TrackTask blocks
// until the task reaches a terminal state, the poll budget runs out,
// or ctx is canceled.
type TaskTracker interface {
	TrackTask(ctx context.Context, req *UpdateRequest, taskRef string) (*UpdateResult, error)
}
