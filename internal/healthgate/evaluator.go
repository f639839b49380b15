package healthgate

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rackops/fwctl/internal/logger"
	"github.com/rackops/fwctl/internal/protocol"
)

// Evaluator runs all category probes for one target and produces a
// readiness verdict. Probes run concurrently and independently; a probe
// failure is folded into a synthesized check for its category and the
// evaluator always waits for every probe before aggregating.
type Evaluator struct {
	log    logger.Logger
	source Source
}

// NewEvaluator returns an Evaluator over a per-target source
func NewEvaluator(source Source) *Evaluator {
	return &Evaluator{
		log:    logger.New(),
		source: source,
	}
}

// one concurrent category probe
type probe struct {
	category Category
	run      func(ctx context.Context) ([]Check, error)
}

// Evaluate runs the seven category probes and aggregates the verdict
func (e *Evaluator) Evaluate(ctx context.Context) *Result {
	var readiness FirmwareReadiness
	var readinessSeen bool

	probes := []probe{
		{CategoryPower, func(ctx context.Context) ([]Check, error) {
			info, err := e.source.Power(ctx)
			if err != nil {
				return nil, err
			}
			return powerChecks(info), nil
		}},
		{CategoryThermal, func(ctx context.Context) ([]Check, error) {
			info, err := e.source.Thermal(ctx)
			if err != nil {
				return nil, err
			}
			return thermalChecks(info), nil
		}},
		{CategoryStorage, func(ctx context.Context) ([]Check, error) {
			info, err := e.source.Storage(ctx)
			if err != nil {
				return nil, err
			}
			return storageChecks(info), nil
		}},
		{CategoryMemory, func(ctx context.Context) ([]Check, error) {
			info, err := e.source.Memory(ctx)
			if err != nil {
				return nil, err
			}
			return memoryChecks(info), nil
		}},
		{CategoryNetwork, func(ctx context.Context) ([]Check, error) {
			info, err := e.source.Network(ctx)
			if err != nil {
				return nil, err
			}
			return networkChecks(info), nil
		}},
		{CategoryFirmware, func(ctx context.Context) ([]Check, error) {
			info, err := e.source.FirmwareReadiness(ctx)
			if err != nil {
				return nil, err
			}
			readiness = info
			readinessSeen = true
			return firmwareChecks(info), nil
		}},
		{CategorySecurity, func(ctx context.Context) ([]Check, error) {
			info, err := e.source.SecurityPosture(ctx)
			if err != nil {
				return nil, err
			}
			return securityChecks(info), nil
		}},
	}

	perProbe := make([][]Check, len(probes))

	wg := sync.WaitGroup{}

	for i, p := range probes {
		wg.Add(1)

		go func(i int, p probe) {
			defer wg.Done()

			perProbe[i] = e.safeProbe(ctx, p)
		}(i, p)
	}

	wg.Wait()

	checks := []Check{}

	for _, probeChecks := range perProbe {
		checks = append(checks, probeChecks...)
	}

	result := aggregate(checks)

	if readinessSeen {
		result.EstimatedDuration = estimateDuration(readiness)
		result.Recommendations = dedupe(append(
			result.Recommendations,
			tierRecommendations(readiness)...,
		))
	}

	return result
}

// safeProbe runs one probe, converting an error or panic into a single
// synthesized unknown check so the other categories still evaluate
func (e *Evaluator) safeProbe(ctx context.Context, p probe) (checks []Check) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error().
				Str("category", string(p.category)).
				Msgf("health probe panicked: %v", r)

			checks = []Check{synthesizedFailure(p.category, fmt.Sprintf("probe panic: %v", r))}
		}
	}()

	probed, err := p.run(ctx)

	if err != nil {
		e.log.Warn().
			Err(err).
			Str("category", string(p.category)).
			Msg("health probe failed")

		return []Check{synthesizedFailure(p.category, err.Error())}
	}

	return probed
}

func synthesizedFailure(category Category, reason string) Check {
	return Check{
		Category:  category,
		Component: "probe",
		Status:    StatusUnknown,
		Message:   fmt.Sprintf("probe did not complete: %s", reason),
	}
}

// aggregate derives the verdict from the full check list
func aggregate(checks []Check) *Result {
	result := &Result{
		Checks:          checks,
		BlockingIssues:  []Check{},
		Warnings:        []Check{},
		Counts:          map[Status]int{},
		Recommendations: []string{},
		RebootRequired:  true,
	}

	score := 100
	criticalNonBlocking := 0
	recommendations := []string{}

	for _, check := range checks {
		result.Counts[check.Status]++

		if check.Recommendation != "" {
			recommendations = append(recommendations, check.Recommendation)
		}

		switch {
		case check.Blocking:
			result.BlockingIssues = append(result.BlockingIssues, check)
			score -= 50
		case check.Status == StatusCritical:
			criticalNonBlocking++
			score -= 20
		case check.Status == StatusWarning:
			result.Warnings = append(result.Warnings, check)
			score -= 10
		case check.Status == StatusUnknown:
			score -= 5
		}
	}

	if score < 0 {
		score = 0
	}

	result.ReadinessScore = score
	result.Passed = len(result.BlockingIssues) == 0
	result.Recommendations = dedupe(recommendations)

	switch {
	case len(result.BlockingIssues) > 0 || criticalNonBlocking > 2:
		result.OverallHealth = OverallCritical
	case result.Counts[StatusCritical] > 0 || len(result.Warnings) > 3:
		result.OverallHealth = OverallDegraded
	default:
		result.OverallHealth = OverallHealthy
	}

	return result
}

// estimateDuration adjusts a base window upward for older platforms and
// for feature-dense datacenter-licensed controllers
func estimateDuration(readiness FirmwareReadiness) time.Duration {
	duration := 30 * time.Minute

	if readiness.Generation != protocol.GenerationUnknown && readiness.Generation <= protocol.Gen12 {
		duration += 15 * time.Minute
	}

	if readiness.LicenseTier == protocol.LicenseDatacenter {
		duration += 10 * time.Minute
	}

	return duration
}

func tierRecommendations(readiness FirmwareReadiness) []string {
	recommendations := []string{}

	if readiness.Generation != protocol.GenerationUnknown && readiness.Generation <= protocol.Gen12 {
		recommendations = append(
			recommendations,
			"older platform generation: schedule a longer maintenance window",
		)
	}

	if readiness.LicenseTier == protocol.LicenseUnknown {
		recommendations = append(
			recommendations,
			"controller license could not be determined; verify before updating",
		)
	}

	return recommendations
}

func dedupe(values []string) []string {
	seen := map[string]bool{}
	out := []string{}

	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}

	return out
}
