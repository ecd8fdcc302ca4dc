// Package engine converts raw health-metric readings into lifespan-minutes
// impact scores, aggregates them into a period-level "battery" figure, and
// projects an adjusted life expectancy from a baseline actuarial table.
//
// Every operation is a pure function of its explicit arguments and the
// read-only calibration table; nothing here performs I/O, holds mutable
// state, or reads ambient configuration. Identical inputs always produce
// identical outputs, so everything is safe to call concurrently.
package engine

import (
	"fmt"
)

// Engine evaluates the calibrated dose-response curves. It is immutable after
// construction and safe for concurrent use.
type Engine struct {
	cal *Calibration
}

// NewEngine builds an engine around a validated calibration table. Passing
// nil selects the compiled-in default table.
func NewEngine(cal *Calibration) (*Engine, error) {
	if cal == nil {
		cal = DefaultCalibration()
	}
	if err := cal.Validate(); err != nil {
		return nil, fmt.Errorf("calibration rejected: %w", err)
	}
	return &Engine{cal: cal}, nil
}

// Calibration exposes the table the engine was built with.
func (e *Engine) Calibration() *Calibration {
	return e.cal
}

// ImpactOf maps one metric value to its signed lifespan impact in minutes per
// day. Out-of-range values are clamped to the kind's physiological bounds and
// the result is annotated rather than rejected. The only error is a metric
// kind missing from the calibration table.
func (e *Engine) ImpactOf(kind MetricKind, value float64, profile Profile) (MetricImpact, error) {
	mc, ok := e.cal.Metrics[kind]
	if !ok {
		return MetricImpact{}, fmt.Errorf("%w: %s", ErrNoCalibration, kind)
	}

	v := toCurveUnits(kind, value, profile)
	lo, hi := mc.bounds()
	clamped := clamp(v, lo, hi)

	var minutes float64
	var label string
	switch mc.Shape {
	case ShapePlateau:
		minutes, label = evalPlateau(mc.Plateau, clamped)
	case ShapeU:
		minutes, label = evalU(mc.U, clamped)
	default:
		minutes, label = evalOrdinal(mc.Ordinal, clamped)
	}

	return MetricImpact{
		Kind:            kind,
		MinutesPerDay:   minutes,
		ComparisonLabel: label,
		StudyReference:  mc.StudyReference,
		ValueUsed:       clamped,
		Clamped:         clamped != v,
	}, nil
}

// toCurveUnits converts a raw sample value into the units the calibrated
// curve is expressed in. Only body mass needs conversion: samples carry
// kilograms, the curve is calibrated over BMI.
func toCurveUnits(kind MetricKind, value float64, profile Profile) float64 {
	if kind != KindBodyMass {
		return value
	}
	h := defaultHeightCm
	if profile.HeightCm != nil && *profile.HeightCm > 0 {
		h = *profile.HeightCm
	}
	meters := h / 100
	return value / (meters * meters)
}

// fromCurveUnits is the inverse of toCurveUnits, used when a curve-unit
// target (an optimal BMI) has to be turned back into a sample value.
func fromCurveUnits(kind MetricKind, value float64, profile Profile) float64 {
	if kind != KindBodyMass {
		return value
	}
	h := defaultHeightCm
	if profile.HeightCm != nil && *profile.HeightCm > 0 {
		h = *profile.HeightCm
	}
	meters := h / 100
	return value * meters * meters
}
