package engine

import (
	"fmt"
	"math"
)

const (
	// solverToleranceMinutes is the convergence tolerance on the impact of
	// the candidate value, in minutes per day.
	solverToleranceMinutes = 0.5
	solverMaxIterations    = 20
)

// SolveNeutral binary-searches [lowerBound, upperBound] for the metric value
// at which the kind's impact crosses zero. The calculator must be monotonic
// inside the bracket; callers must never hand it the non-monotonic span of a
// U-shaped curve.
//
// When the bracket holds no sign change, or the iteration limit runs out
// before reaching tolerance, the kind's calibrated optimal is returned with
// the UsedFallback tag set instead of an error.
func (e *Engine) SolveNeutral(kind MetricKind, currentValue float64, profile Profile, lowerBound, upperBound float64) (SolveResult, error) {
	mc, ok := e.cal.Metrics[kind]
	if !ok {
		return SolveResult{}, fmt.Errorf("%w: %s", ErrNoCalibration, kind)
	}

	lo, hi := lowerBound, upperBound
	if lo > hi {
		lo, hi = hi, lo
	}

	fLo, err := e.impactAt(kind, lo, profile)
	if err != nil {
		return SolveResult{}, err
	}
	fHi, err := e.impactAt(kind, hi, profile)
	if err != nil {
		return SolveResult{}, err
	}

	// Either end already within tolerance counts as solved.
	if math.Abs(fLo) <= solverToleranceMinutes {
		return SolveResult{Value: lo, Converged: true}, nil
	}
	if math.Abs(fHi) <= solverToleranceMinutes {
		return SolveResult{Value: hi, Converged: true}, nil
	}

	if (fLo < 0) == (fHi < 0) {
		return e.fallbackResult(mc, kind, profile, 0), nil
	}

	for i := 1; i <= solverMaxIterations; i++ {
		mid := (lo + hi) / 2
		f, err := e.impactAt(kind, mid, profile)
		if err != nil {
			return SolveResult{}, err
		}
		if math.Abs(f) <= solverToleranceMinutes {
			return SolveResult{Value: mid, Iterations: i, Converged: true}, nil
		}
		if (f < 0) == (fLo < 0) {
			lo, fLo = mid, f
		} else {
			hi = mid
		}
	}

	return e.fallbackResult(mc, kind, profile, solverMaxIterations), nil
}

func (e *Engine) fallbackResult(mc *MetricCalibration, kind MetricKind, profile Profile, iterations int) SolveResult {
	return SolveResult{
		Value:        fromCurveUnits(kind, mc.OptimalValue, profile),
		Iterations:   iterations,
		UsedFallback: true,
	}
}

func (e *Engine) impactAt(kind MetricKind, value float64, profile Profile) (float64, error) {
	impact, err := e.ImpactOf(kind, value, profile)
	if err != nil {
		return 0, err
	}
	return impact.MinutesPerDay, nil
}
