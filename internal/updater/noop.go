package updater

import "context"

// NoopOrchestrator is used for standalone hosts that no cluster
// scheduler manages. Maintenance phases become immediate no-ops, which
// keeps the phase walk identical for clustered and standalone targets.
type NoopOrchestrator struct{}

// NewNoopOrchestrator returns a new NoopOrchestrator
func NewNoopOrchestrator() *NoopOrchestrator {
	return &NoopOrchestrator{}
}

// EnterMaintenanceMode implements Orchestrator
func (o *NoopOrchestrator) EnterMaintenanceMode(ctx context.Context, host string, evacuateVMs bool, timeoutMinutes int) (string, error) {
	return "", nil
}

// ExitMaintenanceMode implements Orchestrator
func (o *NoopOrchestrator) ExitMaintenanceMode(ctx context.Context, host string) (string, error) {
	return "", nil
}

// AwaitTask implements Orchestrator
func (o *NoopOrchestrator) AwaitTask(ctx context.Context, taskRef string) error {
	return nil
}
