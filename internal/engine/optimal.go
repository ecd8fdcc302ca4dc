package engine

import (
	"sort"
	"time"
)

// OptimalSamples builds the synthetic "scientifically optimal" metric set:
// one sample per calibrated kind, each at its research-backed best value.
// Feeding the result to Project yields the canonical what-if comparison
// against current habits.
func (e *Engine) OptimalSamples(profile Profile, at time.Time) []MetricSample {
	kinds := make([]MetricKind, 0, len(e.cal.Metrics))
	for kind := range e.cal.Metrics {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	samples := make([]MetricSample, 0, len(kinds))
	for _, kind := range kinds {
		samples = append(samples, MetricSample{
			Kind:       kind,
			Value:      fromCurveUnits(kind, e.cal.Metrics[kind].OptimalValue, profile),
			ObservedAt: at,
			Provenance: ProvenanceSelfReported,
		})
	}
	return samples
}

// ProjectOptimal is Project over the scientifically-optimal synthetic set.
func (e *Engine) ProjectOptimal(profile Profile) (LifeProjection, error) {
	return e.Project(e.OptimalSamples(profile, time.Unix(0, 0).UTC()), profile)
}

// ProjectImproved is the personalized what-if variant: only metrics whose
// current impact is negative are moved, and each only by its capped realistic
// action delta.
func (e *Engine) ProjectImproved(samples []MetricSample, profile Profile) (LifeProjection, error) {
	reps := representativeValues(samples, PeriodDay)

	kinds := make([]MetricKind, 0, len(reps))
	for kind := range reps {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	at := time.Unix(0, 0).UTC()
	improved := make([]MetricSample, 0, len(kinds))
	for _, kind := range kinds {
		value := reps[kind]
		impact, err := e.ImpactOf(kind, value, profile)
		if err != nil {
			return LifeProjection{}, err
		}
		if impact.MinutesPerDay < 0 {
			rec, err := e.BenefitOf(kind, value, profile)
			if err != nil {
				return LifeProjection{}, err
			}
			value = rec.TargetValue
		}
		improved = append(improved, MetricSample{
			Kind:       kind,
			Value:      value,
			ObservedAt: at,
			Provenance: ProvenanceSelfReported,
		})
	}

	return e.Project(improved, profile)
}
