package redfish

import (
	"context"
	"fmt"
	"time"

	"github.com/rackops/fwctl/internal/exception"
	"github.com/rackops/fwctl/internal/protocol"

	gfredfish "github.com/stmcginnis/gofish/redfish"
)

// TrackTask implements protocol.TaskTracker. It polls the task resource
// at the configured interval until the task finishes, the poll budget
// runs out, or ctx is canceled. Cancellation is honored only between
// polls; a poll in flight is never interrupted mid-request.
func (c *Client) TrackTask(ctx context.Context, req *protocol.UpdateRequest, taskRef string) (*protocol.UpdateResult, error) {
	api, err := c.connect(req.Host, req.Credentials, c.conf.CallTimeout)

	if err != nil {
		return nil, connectError("track", err)
	}

	defer api.Logout()

	result := &protocol.UpdateResult{
		Protocol:  protocol.Redfish,
		TaskRef:   taskRef,
		Status:    protocol.StatusInProgress,
		StartedAt: time.Now(),
		Messages:  []string{},
	}

	for attempt := 1; attempt <= c.conf.PollMaxAttempts; attempt++ {
		task, err := gfredfish.GetTask(api.Service.GetClient(), taskRef)

		if err != nil {
			return nil, exception.Transient(string(protocol.Redfish), "track", err)
		}

		c.log.Debug().
			Str("host", req.Host).
			Str("task", taskRef).
			Str("state", string(task.TaskState)).
			Int("attempt", attempt).
			Msg("polling update task")

		if isTaskFinished(task) {
			result.CompletedAt = time.Now()

			if task.TaskState == gfredfish.CompletedTaskState {
				result.Status = protocol.StatusCompleted
				result.Messages = append(result.Messages, "task completed")
				return result, nil
			}

			result.Status = protocol.StatusFailed
			result.Messages = append(
				result.Messages,
				fmt.Sprintf("task ended in state %s", task.TaskState),
			)

			return result, exception.Permanent(
				string(protocol.Redfish),
				"track",
				fmt.Errorf("task %s ended in state %s", taskRef, task.TaskState),
			)
		}

		select {
		case <-ctx.Done():
			return nil, exception.Transient(string(protocol.Redfish), "track", ctx.Err())
		case <-time.After(c.conf.PollInterval):
		}
	}

	return nil, exception.Transient(
		string(protocol.Redfish),
		"track",
		fmt.Errorf("task %s did not finish within %d polls", taskRef, c.conf.PollMaxAttempts),
	)
}

// isTaskFinished reports whether the task reached a terminal state
func isTaskFinished(task *gfredfish.Task) bool {
	switch task.TaskState {
	case gfredfish.CompletedTaskState,
		gfredfish.ExceptionTaskState,
		gfredfish.KilledTaskState,
		gfredfish.CancelledTaskState,
		gfredfish.InterruptedTaskState,
		gfredfish.SuspendedTaskState:
		return true
	default:
		return false
	}
}
