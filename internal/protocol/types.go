package protocol

import (
	"io"
	"time"
)

// ID identifies one management protocol
type ID string

const (
	Redfish   ID = "redfish"
	Soap      ID = "soap"
	VendorCLI ID = "vendor-cli"
	IPMI      ID = "ipmi"
)

// ServerIdentity is an immutable addressing snapshot for a single target.
// Discovery owns these; we never mutate them.
type ServerIdentity struct {
	Host            string
	FQDN            string
	Model           string
	ServiceTag      string
	Generation      Generation
	FirmwareVersion string
}

// Credentials passed by value into protocol calls, never persisted here
type Credentials struct {
	Username   string
	Password   string
	PrivateKey string
	Port       int
}

// UpdateMode represents how a firmware payload is delivered
type UpdateMode string

const (
	ModeSimpleImage     UpdateMode = "simple-image"
	ModeInstallFromRepo UpdateMode = "install-from-repository"
	ModeMultipart       UpdateMode = "multipart-stream"
	ModeOSDriver        UpdateMode = "os-driver"
	ModeCustom          UpdateMode = "custom"
)

// ApplyTime represents when a submitted update takes effect
type ApplyTime string

const (
	ApplyImmediate           ApplyTime = "immediate"
	ApplyOnReset             ApplyTime = "on-reset"
	ApplyAtMaintenanceWindow ApplyTime = "at-maintenance-window"
)

// Capability is the canonical result of capability detection. Produced
// fresh on every detection call; caching belongs to DetectionCache.
type Capability struct {
	Protocol        ID
	Supported       bool
	FirmwareVersion string
	ManagerType     string
	Generation      Generation
	LicenseTier     LicenseTier
	UpdateModes     []UpdateMode
	Diagnostic      string
}

// SupportsMode reports whether the detected capability includes mode
func (c Capability) SupportsMode(mode UpdateMode) bool {
	for _, m := range c.UpdateModes {
		if m == mode {
			return true
		}
	}

	return false
}

// HealthStatus represents one protocol endpoint's reachability
type HealthStatus string

const (
	Healthy     HealthStatus = "healthy"
	Degraded    HealthStatus = "degraded"
	Unreachable HealthStatus = "unreachable"
)

// Health is the transient result of a single protocol health check
type Health struct {
	Protocol  ID
	Status    HealthStatus
	Latency   time.Duration
	CheckedAt time.Time
	ErrorKind string
}

// Component is one firmware payload within an update request
type Component struct {
	ID       string
	ImageURI string
	Stream   io.Reader
	Filename string
	Checksum string
}

// Window bounds a maintenance window
type Window struct {
	Start time.Time
	End   time.Time
}

// UpdateRequest describes one firmware update for one target host
type UpdateRequest struct {
	Host          string
	Credentials   Credentials
	Mode          UpdateMode
	Components    []Component
	RepositoryURL string
	ApplyTime     ApplyTime
	Window        *Window
}

// UpdateStatus represents the lifecycle of a submitted update
type UpdateStatus string

const (
	StatusQueued     UpdateStatus = "queued"
	StatusInProgress UpdateStatus = "in-progress"
	StatusCompleted  UpdateStatus = "completed"
	StatusFailed     UpdateStatus = "failed"
)

// UpdateResult is the canonical outcome of an update execution
type UpdateResult struct {
	Protocol        ID
	TaskRef         string
	Status          UpdateStatus
	Messages        []string
	StartedAt       time.Time
	CompletedAt     time.Time
	InventoryDeltas map[string]string
}

// DetectionResult is the outcome of a full capability scan for one host
type DetectionResult struct {
	Host         string
	Capabilities []Capability
	Healthiest   *Capability
}

// FallbackNotice is the payload of a ProtocolFallback event
type FallbackNotice struct {
	Protocol ID
	Attempt  int
	Delay    time.Duration
	Kind     string
	Reason   string
}
