package protocol

import "strings"

// QueueStatus classifies a controller job queue ahead of update issuance
type QueueStatus string

const (
	QueueAvailable QueueStatus = "available"
	QueueBusy      QueueStatus = "busy"
	QueueError     QueueStatus = "error"
	QueueUnknown   QueueStatus = "unknown"
)

// JobSummary is a minimal view of one controller job
type JobSummary struct {
	ID    string
	Name  string
	State string
}

// ClassifyJobQueue reduces a controller job list to a single queue
// status. Any failed job wins over busy; a non-available queue is a
// blocking precondition for update issuance.
func ClassifyJobQueue(jobs []JobSummary) QueueStatus {
	busy := false

	for _, job := range jobs {
		switch strings.ToLower(job.State) {
		case "failed", "exception", "killed":
			return QueueError
		case "running", "scheduled", "downloading", "new", "starting", "pending":
			busy = true
		}
	}

	if busy {
		return QueueBusy
	}

	return QueueAvailable
}
