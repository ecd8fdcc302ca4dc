package engine

import (
	"sort"
)

// Aggregate combines every metric kind that has data in the period into a
// single signed impact total and a normalized battery level.
//
// Kinds with no sample in the window are excluded from the sum entirely,
// never defaulted to zero. An empty sample set yields a zero total with the
// NoData tag set so callers can tell it apart from a genuinely balanced set.
func (e *Engine) Aggregate(samples []MetricSample, period PeriodType, profile Profile) (AggregatedImpact, error) {
	reps := representativeValues(samples, period)
	if len(reps) == 0 {
		return AggregatedImpact{
			PeriodType:          period,
			BatteryLevelPercent: 50,
			NoData:              true,
		}, nil
	}

	// Stable kind order keeps the output deterministic regardless of
	// sample ordering.
	kinds := make([]MetricKind, 0, len(reps))
	for kind := range reps {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	factor := periodFactor(period)
	impacts := make([]MetricImpact, 0, len(kinds))
	var total float64
	for _, kind := range kinds {
		impact, err := e.ImpactOf(kind, reps[kind], profile)
		if err != nil {
			return AggregatedImpact{}, err
		}
		impacts = append(impacts, impact)
		total += impact.MinutesPerDay * factor
	}

	return AggregatedImpact{
		TotalImpactMinutes:  total,
		PeriodType:          period,
		BatteryLevelPercent: e.BatteryLevel(impacts, period),
		Impacts:             impacts,
	}, nil
}

// BatteryLevel normalizes a set of per-kind impacts into the 0-100 battery
// figure, against the period-scaled symmetric envelope. This is the only
// place the envelope constant is applied.
func (e *Engine) BatteryLevel(impacts []MetricImpact, period PeriodType) float64 {
	factor := periodFactor(period)
	var total float64
	for _, impact := range impacts {
		total += impact.MinutesPerDay * factor
	}
	envelope := e.cal.BatteryEnvelopeMinutes * factor
	return clamp(50+total/envelope*50, 0, 100)
}

// representativeValues reduces the period's samples to one value per kind:
// cumulative kinds use the per-day share of the period total, state kinds the
// most recent reading, ordinal kinds the latest self-report.
func representativeValues(samples []MetricSample, period PeriodType) map[MetricKind]float64 {
	days := periodFactor(period)

	sums := make(map[MetricKind]float64)
	latest := make(map[MetricKind]MetricSample)
	for _, s := range samples {
		if _, known := kindClasses[s.Kind]; !known {
			// Unknown kinds still flow through so the calculator can
			// report the missing calibration entry.
			latest[s.Kind] = s
			continue
		}
		switch kindClasses[s.Kind] {
		case classCumulative:
			sums[s.Kind] += s.Value
		default:
			prev, seen := latest[s.Kind]
			if !seen || s.ObservedAt.After(prev.ObservedAt) {
				latest[s.Kind] = s
			}
		}
	}

	reps := make(map[MetricKind]float64, len(sums)+len(latest))
	for kind, sum := range sums {
		reps[kind] = sum / days
	}
	for kind, s := range latest {
		reps[kind] = s.Value
	}
	return reps
}
