package protocol

import (
	"strconv"
	"strings"
)

// Generation is a coarse hardware-platform era derived from the
// management controller firmware version
type Generation int

const (
	GenerationUnknown Generation = iota
	Gen11
	Gen12
	Gen13
	Gen14
	Gen15
	Gen16
)

var generationNames = map[Generation]string{
	GenerationUnknown: "unknown",
	Gen11:             "gen11",
	Gen12:             "gen12",
	Gen13:             "gen13",
	Gen14:             "gen14",
	Gen15:             "gen15",
	Gen16:             "gen16",
}

func (g Generation) String() string {
	if name, ok := generationNames[g]; ok {
		return name
	}

	return "unknown"
}

// ParseGeneration classifies a controller firmware version string into a
// platform generation based on its major version. Pure function: same
// input always yields the same tier, unknown input never panics.
func ParseGeneration(firmwareVersion string) Generation {
	version := strings.TrimSpace(firmwareVersion)

	if version == "" {
		return GenerationUnknown
	}

	major, err := strconv.Atoi(strings.SplitN(version, ".", 2)[0])

	if err != nil || major < 0 {
		return GenerationUnknown
	}

	switch {
	case major <= 2:
		return Gen11
	case major == 3:
		return Gen12
	case major == 4:
		return Gen13
	case major == 5:
		return Gen14
	case major == 6:
		return Gen15
	default:
		return Gen16
	}
}

// LicenseTier is a controller license/feature level. Ordering matters:
// later constants unlock more update paths.
type LicenseTier int

const (
	LicenseUnknown LicenseTier = iota
	LicenseBasic
	LicenseExpress
	LicenseEnterprise
	LicenseDatacenter
)

var licenseNames = map[LicenseTier]string{
	LicenseUnknown:    "unknown",
	LicenseBasic:      "basic",
	LicenseExpress:    "express",
	LicenseEnterprise: "enterprise",
	LicenseDatacenter: "datacenter",
}

func (l LicenseTier) String() string {
	if name, ok := licenseNames[l]; ok {
		return name
	}

	return "unknown"
}

// InferLicenseTier approximates the license level from the count of
// enabled feature flags when explicit license metadata is absent. The
// express tier is never inferred; only an explicit license names it.
func InferLicenseTier(enabledFeatures int) LicenseTier {
	switch {
	case enabledFeatures > 10:
		return LicenseDatacenter
	case enabledFeatures > 5:
		return LicenseEnterprise
	case enabledFeatures > 0:
		return LicenseBasic
	default:
		return LicenseUnknown
	}
}

// NetworkUpdateEligible is the decision table gating network-based
// firmware updates by (generation, license). The oldest platform can
// never take a network update; the two newest always can.
func NetworkUpdateEligible(gen Generation, license LicenseTier) bool {
	switch gen {
	case Gen11:
		return false
	case Gen12, Gen13:
		return license >= LicenseEnterprise
	case Gen15, Gen16:
		return true
	default:
		// gen14 and anything unclassified need the two highest tiers
		return license == LicenseEnterprise || license == LicenseDatacenter
	}
}
