package engine

import (
	"fmt"
	"math"
	"strconv"
)

const improvementShareAtOptimal = 0.20

// BenefitOf quantifies the payoff of one boundedly-realistic change to a
// metric.
//
// When the current impact is negative, the neutral point is located with
// SolveNeutral, the required move is capped to the kind's realistic action
// size, and the reported benefit is impact(current+delta) - impact(current).
// When the current impact is already non-negative there is no neutral point
// to aim for; a flat 20% improvement figure is reported with generic
// "increase further" text.
func (e *Engine) BenefitOf(kind MetricKind, currentValue float64, profile Profile) (Recommendation, error) {
	mc, ok := e.cal.Metrics[kind]
	if !ok {
		return Recommendation{}, fmt.Errorf("%w: %s", ErrNoCalibration, kind)
	}

	current, err := e.ImpactOf(kind, currentValue, profile)
	if err != nil {
		return Recommendation{}, err
	}

	if current.MinutesPerDay >= 0 {
		return Recommendation{
			Kind:               kind,
			Action:             fmt.Sprintf("Keep going: push your %s a little further", mc.Unit),
			IncrementalMinutes: improvementShareAtOptimal * current.MinutesPerDay,
			TargetValue:        currentValue,
		}, nil
	}

	optimal := fromCurveUnits(kind, mc.OptimalValue, profile)
	lo := math.Min(currentValue, optimal)
	hi := math.Max(currentValue, optimal)

	solved, err := e.SolveNeutral(kind, currentValue, profile, lo, hi)
	if err != nil {
		return Recommendation{}, err
	}

	delta := solved.Value - currentValue
	maxDelta := fromCurveUnits(kind, mc.MaxActionDelta, profile)
	if delta > maxDelta {
		delta = maxDelta
	}
	if delta < -maxDelta {
		delta = -maxDelta
	}
	target := currentValue + delta

	after, err := e.ImpactOf(kind, target, profile)
	if err != nil {
		return Recommendation{}, err
	}

	deltaCurve := toCurveUnits(kind, target, profile) - toCurveUnits(kind, currentValue, profile)
	return Recommendation{
		Kind:               kind,
		Action:             fmt.Sprintf(mc.ActionTemplate, formatAmount(math.Abs(deltaCurve))),
		IncrementalMinutes: after.MinutesPerDay - current.MinutesPerDay,
		TargetValue:        target,
		UsedFallback:       solved.UsedFallback,
	}, nil
}

// formatAmount renders an action delta for the template: whole numbers for
// large magnitudes, one decimal for small ones.
func formatAmount(v float64) string {
	if v >= 10 {
		return strconv.FormatFloat(math.Round(v), 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}
