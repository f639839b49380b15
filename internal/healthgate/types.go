package healthgate

import (
	"time"

	"github.com/rackops/fwctl/internal/protocol"
)

// Category is one hardware subsystem evaluated by the gate
type Category string

const (
	CategoryPower    Category = "power"
	CategoryThermal  Category = "thermal"
	CategoryStorage  Category = "storage"
	CategoryMemory   Category = "memory"
	CategoryNetwork  Category = "network"
	CategoryFirmware Category = "firmware"
	CategorySecurity Category = "security"
)

// Status is the severity of a single check
type Status string

const (
	StatusOK       Status = "ok"
	StatusWarning  Status = "warning"
	StatusCritical Status = "critical"
	StatusUnknown  Status = "unknown"
)

// OverallHealth is the aggregate tier across all checks
type OverallHealth string

const (
	OverallHealthy  OverallHealth = "healthy"
	OverallDegraded OverallHealth = "degraded"
	OverallCritical OverallHealth = "critical"
)

// Check is one hardware health finding
type Check struct {
	Category       Category
	Component      string
	Status         Status
	Message        string
	Blocking       bool
	Recommendation string
	Details        map[string]string
}

// Result is the gate's readiness verdict
type Result struct {
	Passed            bool
	OverallHealth     OverallHealth
	ReadinessScore    int
	Checks            []Check
	BlockingIssues    []Check
	Warnings          []Check
	Counts            map[Status]int
	Recommendations   []string
	EstimatedDuration time.Duration
	RebootRequired    bool
}

// PSU is one power supply's vendor health view
type PSU struct {
	Name   string
	Health string
}

// PowerInfo is the raw power subsystem snapshot
type PowerInfo struct {
	State    string
	Supplies []PSU
}

// TemperatureSensor is one thermal reading with its critical threshold
type TemperatureSensor struct {
	Name              string
	ReadingCelsius    float64
	CriticalThreshold float64
}

// Fan is one fan's vendor health view
type Fan struct {
	Name   string
	Health string
}

// ThermalInfo is the raw thermal subsystem snapshot
type ThermalInfo struct {
	Sensors []TemperatureSensor
	Fans    []Fan
}

// Drive is one physical drive attached to a controller
type Drive struct {
	Name   string
	Health string
}

// Controller is one storage controller with its drives
type Controller struct {
	Name   string
	Health string
	Drives []Drive
}

// StorageInfo is the raw storage subsystem snapshot
type StorageInfo struct {
	Controllers []Controller
}

// MemoryModule is one DIMM's state and vendor health
type MemoryModule struct {
	Name    string
	Health  string
	Enabled bool
}

// MemoryInfo is the raw memory subsystem snapshot
type MemoryInfo struct {
	Modules []MemoryModule
}

// NetworkInterface is one NIC's vendor health view
type NetworkInterface struct {
	Name   string
	Health string
}

// NetworkInfo is the raw network subsystem snapshot
type NetworkInfo struct {
	Interfaces []NetworkInterface
}

// FirmwareReadiness is the update-service readiness snapshot
type FirmwareReadiness struct {
	QueueStatus     protocol.QueueStatus
	NetworkEligible bool
	Generation      protocol.Generation
	LicenseTier     protocol.LicenseTier
}

// SecurityPosture is the security snapshot; findings here are
// informational only
type SecurityPosture struct {
	CertificateValid  bool
	CertificateExpiry time.Time
	LicenseTier       protocol.LicenseTier
}
