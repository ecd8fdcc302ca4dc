package engine

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrNoCalibration is returned when a metric kind has no entry in the
// calibration table. This is a deployment defect, not a data condition, and
// it is the only error class that aborts a computation.
var ErrNoCalibration = errors.New("no calibration entry for metric kind")

// CurveShape selects the dose-response family a metric is calibrated with.
type CurveShape string

const (
	ShapePlateau CurveShape = "plateau"
	ShapeU       CurveShape = "ushape"
	ShapeOrdinal CurveShape = "ordinal"
)

// PlateauCurve models metrics whose benefit grows up to an optimal threshold
// and flattens past it, with a compounding (power-law) penalty below the
// neutral point.
type PlateauCurve struct {
	Floor             float64 `yaml:"floor"`
	Ceil              float64 `yaml:"ceil"`
	Neutral           float64 `yaml:"neutral"`
	Optimal           float64 `yaml:"optimal"`
	MaxBenefitMinutes float64 `yaml:"max_benefit_minutes"`
	MaxPenaltyMinutes float64 `yaml:"max_penalty_minutes"`
	PenaltyExponent   float64 `yaml:"penalty_exponent"`
}

// UCurve models metrics with an optimal band and degradation on both sides.
// Penalty depths and exponents may differ per side (short sleep is punished
// harder than long sleep).
type UCurve struct {
	Floor              float64 `yaml:"floor"`
	Ceil               float64 `yaml:"ceil"`
	OptimalLow         float64 `yaml:"optimal_low"`
	OptimalHigh        float64 `yaml:"optimal_high"`
	MaxBenefitMinutes  float64 `yaml:"max_benefit_minutes"`
	LowPenaltyMinutes  float64 `yaml:"low_penalty_minutes"`
	HighPenaltyMinutes float64 `yaml:"high_penalty_minutes"`
	LowExponent        float64 `yaml:"low_exponent"`
	HighExponent       float64 `yaml:"high_exponent"`
}

// OrdinalPoint is one breakpoint of a piecewise-linear ordinal mapping.
type OrdinalPoint struct {
	Score   float64 `yaml:"score"`
	Minutes float64 `yaml:"minutes"`
}

// OrdinalCurve maps a 1-10 lifestyle score to minutes by linear interpolation
// between breakpoints. Points must be sorted by ascending score and monotonic
// in the healthier direction.
type OrdinalCurve struct {
	Points []OrdinalPoint `yaml:"points"`
}

// MetricCalibration is everything the engine knows about one metric kind:
// curve shape and parameters, the research-optimal value, the cap on
// realistic single-action deltas, and presentation metadata.
type MetricCalibration struct {
	Shape   CurveShape    `yaml:"shape"`
	Plateau *PlateauCurve `yaml:"plateau,omitempty"`
	U       *UCurve       `yaml:"ushape,omitempty"`
	Ordinal *OrdinalCurve `yaml:"ordinal,omitempty"`

	// OptimalValue is the research-backed best value, in curve units
	// (BMI for body mass, raw sample units otherwise). It seeds the
	// optimal-habits sample factory and the solver fallback.
	OptimalValue float64 `yaml:"optimal_value"`

	// MaxActionDelta caps how far a single recommendation may move the
	// metric, in curve units.
	MaxActionDelta float64 `yaml:"max_action_delta"`

	// ActionTemplate is an fmt template with one %s verb for the formatted
	// delta, e.g. "Walk %s more steps each day".
	ActionTemplate string `yaml:"action_template"`

	Unit           string `yaml:"unit"`
	StudyReference string `yaml:"study_reference,omitempty"`
}

// Calibration is the versioned configuration table injected into the engine.
// It is read-only at call time; updated research ships as a new table, never
// as calculator code edits.
type Calibration struct {
	Version string `yaml:"version"`

	// MinutesPerDayPerLifeYear converts a sustained daily-minutes impact
	// into whole years of life expectancy adjustment.
	MinutesPerDayPerLifeYear float64 `yaml:"minutes_per_day_per_life_year"`

	// BatteryEnvelopeMinutes is the symmetric +-minutes/day normalization
	// envelope behind the 0-100 battery level. Nothing else in the system
	// may duplicate this constant.
	BatteryEnvelopeMinutes float64 `yaml:"battery_envelope_minutes"`

	Metrics map[MetricKind]*MetricCalibration `yaml:"metrics"`
}

// LoadCalibration reads and validates a calibration table from a YAML file.
func LoadCalibration(path string) (*Calibration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read calibration file: %w", err)
	}

	var cal Calibration
	if err := yaml.Unmarshal(data, &cal); err != nil {
		return nil, fmt.Errorf("failed to parse calibration: %w", err)
	}

	if err := cal.Validate(); err != nil {
		return nil, fmt.Errorf("invalid calibration: %w", err)
	}
	return &cal, nil
}

// Validate checks structural soundness of the table. It does not require
// every known kind to be present; a missing kind surfaces later as
// ErrNoCalibration when something actually asks for it.
func (c *Calibration) Validate() error {
	if c.Version == "" {
		return fmt.Errorf("version cannot be empty")
	}
	if c.MinutesPerDayPerLifeYear <= 0 {
		return fmt.Errorf("minutes_per_day_per_life_year must be positive")
	}
	if c.BatteryEnvelopeMinutes <= 0 {
		return fmt.Errorf("battery_envelope_minutes must be positive")
	}

	for kind, mc := range c.Metrics {
		if err := mc.validate(); err != nil {
			return fmt.Errorf("metric %q: %w", kind, err)
		}
	}
	return nil
}

func (mc *MetricCalibration) validate() error {
	switch mc.Shape {
	case ShapePlateau:
		p := mc.Plateau
		if p == nil {
			return fmt.Errorf("plateau shape requires plateau parameters")
		}
		if !(p.Floor < p.Neutral && p.Neutral < p.Optimal && p.Optimal <= p.Ceil) {
			return fmt.Errorf("plateau curve requires floor < neutral < optimal <= ceil")
		}
		if p.MaxBenefitMinutes < 0 || p.MaxPenaltyMinutes <= 0 {
			return fmt.Errorf("plateau curve requires non-negative benefit and positive penalty")
		}
		if p.PenaltyExponent < 1 {
			return fmt.Errorf("plateau penalty exponent must be >= 1")
		}
	case ShapeU:
		u := mc.U
		if u == nil {
			return fmt.Errorf("ushape shape requires ushape parameters")
		}
		if !(u.Floor < u.OptimalLow && u.OptimalLow <= u.OptimalHigh && u.OptimalHigh <= u.Ceil) {
			return fmt.Errorf("u curve requires floor < optimal_low <= optimal_high <= ceil")
		}
		if u.LowExponent < 1 || u.HighExponent < 1 {
			return fmt.Errorf("u curve exponents must be >= 1")
		}
	case ShapeOrdinal:
		o := mc.Ordinal
		if o == nil || len(o.Points) < 2 {
			return fmt.Errorf("ordinal shape requires at least two breakpoints")
		}
		for i := 1; i < len(o.Points); i++ {
			if o.Points[i].Score <= o.Points[i-1].Score {
				return fmt.Errorf("ordinal breakpoints must have strictly ascending scores")
			}
			if o.Points[i].Minutes < o.Points[i-1].Minutes {
				return fmt.Errorf("ordinal breakpoints must be monotonic toward the healthier end")
			}
		}
	default:
		return fmt.Errorf("unknown curve shape %q", mc.Shape)
	}

	if mc.MaxActionDelta <= 0 {
		return fmt.Errorf("max_action_delta must be positive")
	}
	if mc.ActionTemplate == "" {
		return fmt.Errorf("action_template cannot be empty")
	}
	return nil
}

// bounds returns the physiological clamp range for the metric, in curve units.
func (mc *MetricCalibration) bounds() (lo, hi float64) {
	switch mc.Shape {
	case ShapePlateau:
		return mc.Plateau.Floor, mc.Plateau.Ceil
	case ShapeU:
		return mc.U.Floor, mc.U.Ceil
	default:
		pts := mc.Ordinal.Points
		return pts[0].Score, pts[len(pts)-1].Score
	}
}
