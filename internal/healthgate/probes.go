package healthgate

import (
	"fmt"
	"strings"
	"time"

	"github.com/rackops/fwctl/internal/protocol"
)

// statusFromVendor reduces a vendor health string to our check status
func statusFromVendor(health string) Status {
	switch strings.ToLower(health) {
	case "ok", "good":
		return StatusOK
	case "warning", "degraded":
		return StatusWarning
	case "critical", "error":
		return StatusCritical
	default:
		return StatusUnknown
	}
}

// powerChecks requires the system to be powered on and every PSU healthy
func powerChecks(info PowerInfo) []Check {
	checks := []Check{}

	if info.State == "On" {
		checks = append(checks, Check{
			Category:  CategoryPower,
			Component: "system",
			Status:    StatusOK,
			Message:   "system power is on",
		})
	} else {
		checks = append(checks, Check{
			Category:       CategoryPower,
			Component:      "system",
			Status:         StatusCritical,
			Blocking:       true,
			Message:        fmt.Sprintf("system power state is %q, expected On", info.State),
			Recommendation: "power the system on before attempting a firmware update",
		})
	}

	for _, psu := range info.Supplies {
		status := statusFromVendor(psu.Health)

		check := Check{
			Category:  CategoryPower,
			Component: psu.Name,
			Status:    status,
			Message:   fmt.Sprintf("power supply health: %s", psu.Health),
		}

		if status == StatusCritical {
			check.Blocking = true
			check.Recommendation = "replace the failed power supply before updating"
		}

		checks = append(checks, check)
	}

	return checks
}

// thermalChecks compares each sensor against its critical threshold and
// 90% of it, and maps fan health straight through
func thermalChecks(info ThermalInfo) []Check {
	checks := []Check{}

	for _, sensor := range info.Sensors {
		check := Check{
			Category:  CategoryThermal,
			Component: sensor.Name,
			Status:    StatusOK,
			Message: fmt.Sprintf(
				"reading %.1fC against critical threshold %.1fC",
				sensor.ReadingCelsius,
				sensor.CriticalThreshold,
			),
			Details: map[string]string{
				"reading":   fmt.Sprintf("%.1f", sensor.ReadingCelsius),
				"threshold": fmt.Sprintf("%.1f", sensor.CriticalThreshold),
			},
		}

		switch {
		case sensor.CriticalThreshold <= 0:
			check.Status = StatusUnknown
			check.Message = "no critical threshold reported"
		case sensor.ReadingCelsius >= sensor.CriticalThreshold:
			check.Status = StatusCritical
			check.Blocking = true
			check.Recommendation = "resolve the thermal condition before updating"
		case sensor.ReadingCelsius >= 0.9*sensor.CriticalThreshold:
			check.Status = StatusWarning
			check.Recommendation = "investigate elevated temperature"
		}

		checks = append(checks, check)
	}

	for _, fan := range info.Fans {
		status := statusFromVendor(fan.Health)

		check := Check{
			Category:  CategoryThermal,
			Component: fan.Name,
			Status:    status,
			Message:   fmt.Sprintf("fan health: %s", fan.Health),
		}

		if status == StatusCritical {
			check.Blocking = true
			check.Recommendation = "replace the failed fan before updating"
		}

		checks = append(checks, check)
	}

	return checks
}

// storageChecks walks controllers and, recursively, their drives;
// critical health at either level blocks
func storageChecks(info StorageInfo) []Check {
	checks := []Check{}

	for _, controller := range info.Controllers {
		status := statusFromVendor(controller.Health)

		check := Check{
			Category:  CategoryStorage,
			Component: controller.Name,
			Status:    status,
			Message:   fmt.Sprintf("controller health: %s", controller.Health),
		}

		if status == StatusCritical {
			check.Blocking = true
			check.Recommendation = "resolve the storage controller fault before updating"
		}

		checks = append(checks, check)

		for _, drive := range controller.Drives {
			driveStatus := statusFromVendor(drive.Health)

			driveCheck := Check{
				Category:  CategoryStorage,
				Component: fmt.Sprintf("%s/%s", controller.Name, drive.Name),
				Status:    driveStatus,
				Message:   fmt.Sprintf("drive health: %s", drive.Health),
			}

			if driveStatus == StatusCritical {
				driveCheck.Blocking = true
				driveCheck.Recommendation = "replace the failed drive before updating"
			}

			checks = append(checks, driveCheck)
		}
	}

	return checks
}

// memoryChecks evaluates installed and enabled modules only
func memoryChecks(info MemoryInfo) []Check {
	checks := []Check{}

	for _, module := range info.Modules {
		if !module.Enabled {
			continue
		}

		status := statusFromVendor(module.Health)

		check := Check{
			Category:  CategoryMemory,
			Component: module.Name,
			Status:    status,
			Message:   fmt.Sprintf("module health: %s", module.Health),
		}

		if status == StatusCritical {
			check.Blocking = true
			check.Recommendation = "replace the failed memory module before updating"
		}

		checks = append(checks, check)
	}

	return checks
}

// networkChecks surfaces interface health but never blocks; network
// issues do not halt a firmware operation
func networkChecks(info NetworkInfo) []Check {
	checks := []Check{}

	for _, iface := range info.Interfaces {
		checks = append(checks, Check{
			Category:  CategoryNetwork,
			Component: iface.Name,
			Status:    statusFromVendor(iface.Health),
			Message:   fmt.Sprintf("interface health: %s", iface.Health),
		})
	}

	return checks
}

// firmwareChecks gates on job-queue state and network-update
// eligibility; generation detection is informational only
func firmwareChecks(info FirmwareReadiness) []Check {
	checks := []Check{}

	queueCheck := Check{
		Category:  CategoryFirmware,
		Component: "job-queue",
		Status:    StatusOK,
		Message:   fmt.Sprintf("job queue is %s", info.QueueStatus),
	}

	if info.QueueStatus != protocol.QueueAvailable {
		queueCheck.Status = StatusCritical
		queueCheck.Blocking = true
		queueCheck.Recommendation = "clear or wait out the controller job queue before updating"
	}

	checks = append(checks, queueCheck)

	eligibilityCheck := Check{
		Category:  CategoryFirmware,
		Component: "network-update",
		Status:    StatusOK,
		Message:   "target is eligible for network firmware updates",
	}

	if !info.NetworkEligible {
		eligibilityCheck.Status = StatusCritical
		eligibilityCheck.Blocking = true
		eligibilityCheck.Message = fmt.Sprintf(
			"generation %s with %s license is not eligible for network updates",
			info.Generation,
			info.LicenseTier,
		)
		eligibilityCheck.Recommendation = "upgrade the controller license or update out-of-band via local media"
	}

	checks = append(checks, eligibilityCheck)

	generationCheck := Check{
		Category:  CategoryFirmware,
		Component: "generation",
		Status:    StatusOK,
		Message:   fmt.Sprintf("detected platform generation %s", info.Generation),
	}

	if info.Generation == protocol.GenerationUnknown {
		generationCheck.Status = StatusUnknown
		generationCheck.Message = "platform generation could not be detected"
	}

	checks = append(checks, generationCheck)

	return checks
}

// securityChecks surfaces certificate and license posture as warnings
// only, never blocking
func securityChecks(info SecurityPosture) []Check {
	checks := []Check{}

	certCheck := Check{
		Category:  CategorySecurity,
		Component: "certificate",
		Status:    StatusOK,
		Message:   "management certificate is valid",
	}

	if !info.CertificateValid {
		certCheck.Status = StatusWarning
		certCheck.Message = "management certificate is invalid or expired"
		certCheck.Recommendation = "renew the management controller certificate"
	} else if !info.CertificateExpiry.IsZero() && time.Until(info.CertificateExpiry) < 30*24*time.Hour {
		certCheck.Status = StatusWarning
		certCheck.Message = "management certificate expires within 30 days"
		certCheck.Recommendation = "renew the management controller certificate"
	}

	checks = append(checks, certCheck)

	licenseCheck := Check{
		Category:  CategorySecurity,
		Component: "license",
		Status:    StatusOK,
		Message:   fmt.Sprintf("controller license tier: %s", info.LicenseTier),
	}

	if info.LicenseTier == protocol.LicenseUnknown || info.LicenseTier == protocol.LicenseBasic {
		licenseCheck.Status = StatusWarning
		licenseCheck.Recommendation = "a higher license tier unlocks additional update paths"
	}

	checks = append(checks, licenseCheck)

	return checks
}
