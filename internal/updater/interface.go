package updater

import (
	"context"

	"github.com/rackops/fwctl/internal/healthgate"
	"github.com/rackops/fwctl/internal/protocol"
)

//go:generate mockgen -destination=../mock/updater/mock_updater.go -package=mock_updater . Orchestrator,Runner,Gate

// Orchestrator is the cluster-side collaborator that drains and
// restores a host around an update. EnterMaintenanceMode must be
// idempotent: entering on a host already in maintenance is a no-op
// success returning an empty task ref. A non-empty task ref is awaited
// via AwaitTask before the next phase starts. The timeout bounds how
// long the scheduler may take to drain the host.
type Orchestrator interface {
	EnterMaintenanceMode(ctx context.Context, host string, evacuateVMs bool, timeoutMinutes int) (string, error)
	ExitMaintenanceMode(ctx context.Context, host string) (string, error)
	AwaitTask(ctx context.Context, taskRef string) error
}

// Runner executes and tracks updates; satisfied by protocol.Manager
type Runner interface {
	RunUpdate(ctx context.Context, req *protocol.UpdateRequest) (*protocol.UpdateResult, error)
	Track(ctx context.Context, id protocol.ID, req *protocol.UpdateRequest, taskRef string) (*protocol.UpdateResult, error)
}

// Gate evaluates hardware readiness for the target host; satisfied by
// healthgate.Evaluator
type Gate interface {
	Evaluate(ctx context.Context) *healthgate.Result
}
